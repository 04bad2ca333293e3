package routes

import (
	"mechbid/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs = "/jobs"
)

func addJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	bidHandler *handlers.BidHandler,
	escrowHandler *handlers.EscrowHandler,
	changeOrderHandler *handlers.ChangeOrderHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PATCH("/:job_id/schedule/confirm", jobHandler.ConfirmSchedule)
		jobs.PATCH("/:job_id/schedule/reject", jobHandler.RejectSchedule)
		jobs.PATCH("/:job_id/start", jobHandler.StartWork)
		jobs.PATCH("/:job_id/complete", jobHandler.CompleteWork)
		jobs.PATCH("/:job_id/cancel", jobHandler.CancelJob)
		jobs.POST("/:job_id/sweep", jobHandler.SweepExpired)

		jobs.POST("/:job_id/bids", bidHandler.SubmitBid)
		jobs.GET("/:job_id/bids", bidHandler.ListBids)
		jobs.PATCH("/:job_id/bids/:bid_id/accept", bidHandler.AcceptBid)
		jobs.PATCH("/:job_id/bids/:bid_id/withdraw", bidHandler.WithdrawBid)

		jobs.POST("/:job_id/escrow", escrowHandler.AuthorizeEscrow)
		jobs.PATCH("/:job_id/escrow/capture", escrowHandler.CaptureEscrow)

		jobs.POST("/:job_id/change-orders", changeOrderHandler.CreateChangeOrder)
		jobs.PATCH("/:job_id/change-orders/:change_order_id/approve", changeOrderHandler.ApproveChangeOrder)
		jobs.PATCH("/:job_id/change-orders/:change_order_id/reject", changeOrderHandler.RejectChangeOrder)
	}
}

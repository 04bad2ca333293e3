package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "mechbid/internal/adapter/http/dto/request"
	response "mechbid/internal/adapter/http/dto/response"
	"mechbid/internal/domain/entities"
	"mechbid/internal/domain/money"
	"mechbid/internal/usecase"
	"mechbid/pkg"
)

var errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// BidHandler handles HTTP requests for bids on a job.

type BidHandler struct {
	usecase usecase.IJobLifecycleUseCase
}

func NewBidHandler(uc usecase.IJobLifecycleUseCase) *BidHandler {
	return &BidHandler{usecase: uc}
}

// SubmitBid places a mechanic's bid on an open job.
func (h *BidHandler) SubmitBid(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.BidSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[bid][handler] submit invalid payload job_id=%s err=%v", jobID, err)
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bid, err := h.usecase.SubmitBid(c.Request.Context(), jobID, payload.MechanicID, money.FromFloat(payload.Amount), payload.Message, payload.EstimatedDurationMinutes)
	if err != nil {
		log.Printf("[bid][handler] submit failed job_id=%s mechanic_id=%s err=%v", jobID, payload.MechanicID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[bid][handler] submit success job_id=%s bid_id=%s mechanic_id=%s", jobID, bid.ID, bid.MechanicID)

	c.JSON(http.StatusCreated, response.FromBid(bid))
}

// ListBids returns every bid on the job, flagging the lowest pending one.
func (h *BidHandler) ListBids(c *gin.Context) {
	jobID := c.Param("job_id")

	bids, err := h.usecase.ListBids(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[bid][handler] list failed job_id=%s err=%v", jobID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBids(bids))
}

// AcceptBid accepts one pending bid and rejects every other pending bid on
// the job in the same update.
func (h *BidHandler) AcceptBid(c *gin.Context) {
	h.patchBidStatus(c, "accept", h.usecase.AcceptBid)
}

// WithdrawBid lets a mechanic retract a pending bid.
func (h *BidHandler) WithdrawBid(c *gin.Context) {
	h.patchBidStatus(c, "withdraw", h.usecase.WithdrawBid)
}

func (h *BidHandler) patchBidStatus(
	c *gin.Context,
	op string,
	updater func(ctx context.Context, jobID, bidID string) (entities.Job, error),
) {
	jobID := c.Param("job_id")
	bidID := c.Param("bid_id")

	job, err := updater(c.Request.Context(), jobID, bidID)
	if err != nil {
		log.Printf("[bid][handler] %s failed job_id=%s bid_id=%s err=%v", op, jobID, bidID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[bid][handler] %s success job_id=%s bid_id=%s status=%s", op, jobID, bidID, job.Status)

	policy := h.usecase.Policy()
	c.JSON(http.StatusOK, response.FromJob(job, time.Now().UTC(), policy.JobExpiryWindow, policy.ExpiringSoonHint))
}

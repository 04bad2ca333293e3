package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "mechbid/internal/adapter/http/dto/request"
	response "mechbid/internal/adapter/http/dto/response"
	"mechbid/internal/domain/money"
	"mechbid/internal/usecase"
	"mechbid/pkg"
)

var errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// ChangeOrderHandler handles HTTP requests for mid-work scope changes.

type ChangeOrderHandler struct {
	usecase usecase.IJobLifecycleUseCase
}

func NewChangeOrderHandler(uc usecase.IJobLifecycleUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

// CreateChangeOrder proposes additional work on an in-progress job. Work
// pauses until the customer answers or the approval window lapses.
func (h *ChangeOrderHandler) CreateChangeOrder(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.ChangeOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[change_order][handler] create invalid payload job_id=%s err=%v", jobID, err)
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	co, err := h.usecase.CreateChangeOrder(c.Request.Context(), jobID, usecase.ChangeOrderInput{
		Title:        payload.Title,
		Description:  payload.Description,
		Reason:       payload.Reason,
		TotalAmount:  money.FromFloat(payload.TotalAmount),
		MechanicName: payload.MechanicName,
	})
	if err != nil {
		log.Printf("[change_order][handler] create failed job_id=%s err=%v", jobID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[change_order][handler] create success job_id=%s change_order_id=%s", jobID, co.ID)

	c.JSON(http.StatusCreated, response.FromChangeOrder(co))
}

// ApproveChangeOrder folds the change order cost into the job and resumes
// work.
func (h *ChangeOrderHandler) ApproveChangeOrder(c *gin.Context) {
	jobID := c.Param("job_id")
	changeOrderID := c.Param("change_order_id")

	var payload request.ChangeOrderApproveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[change_order][handler] approve invalid payload job_id=%s change_order_id=%s err=%v", jobID, changeOrderID, err)
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.ApproveChangeOrder(c.Request.Context(), jobID, changeOrderID, payload.ApproverID)
	if err != nil {
		log.Printf("[change_order][handler] approve failed job_id=%s change_order_id=%s err=%v", jobID, changeOrderID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[change_order][handler] approve success job_id=%s change_order_id=%s status=%s", jobID, changeOrderID, job.Status)

	policy := h.usecase.Policy()
	c.JSON(http.StatusOK, response.FromJob(job, time.Now().UTC(), policy.JobExpiryWindow, policy.ExpiringSoonHint))
}

// RejectChangeOrder declines the proposal and resumes work at the original
// scope.
func (h *ChangeOrderHandler) RejectChangeOrder(c *gin.Context) {
	jobID := c.Param("job_id")
	changeOrderID := c.Param("change_order_id")

	var payload request.ChangeOrderRejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[change_order][handler] reject invalid payload job_id=%s change_order_id=%s err=%v", jobID, changeOrderID, err)
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.RejectChangeOrder(c.Request.Context(), jobID, changeOrderID, payload.ApproverID, payload.Reason)
	if err != nil {
		log.Printf("[change_order][handler] reject failed job_id=%s change_order_id=%s err=%v", jobID, changeOrderID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[change_order][handler] reject success job_id=%s change_order_id=%s status=%s", jobID, changeOrderID, job.Status)

	policy := h.usecase.Policy()
	c.JSON(http.StatusOK, response.FromJob(job, time.Now().UTC(), policy.JobExpiryWindow, policy.ExpiringSoonHint))
}

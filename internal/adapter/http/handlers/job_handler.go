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

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// JobHandler handles HTTP requests for the job lifecycle: posting, schedule
// confirmation, work progress, cancellation and the expiry sweep.

type JobHandler struct {
	usecase usecase.IJobLifecycleUseCase
}

func NewJobHandler(uc usecase.IJobLifecycleUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob posts a new repair job open for bidding.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[job][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), payload.CustomerID, payload.Category, money.FromFloat(payload.EstimatedCost))
	if err != nil {
		log.Printf("[job][handler] create failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] create success job_id=%s customer_id=%s", job.ID, job.CustomerID)

	c.JSON(http.StatusCreated, h.jobResponse(job))
}

// GetJob returns the full job aggregate, with expiry fields derived at read
// time.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.usecase.GetJob(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[job][handler] get failed job_id=%s err=%v", jobID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, h.jobResponse(job))
}

// ConfirmSchedule moves an accepted job to scheduled.
func (h *JobHandler) ConfirmSchedule(c *gin.Context) {
	h.patchJobStatus(c, "confirm-schedule", h.usecase.ConfirmSchedule)
}

// RejectSchedule records a failed scheduling attempt. The job stays
// renegotiable until confirmed or cancelled.
func (h *JobHandler) RejectSchedule(c *gin.Context) {
	h.patchJobStatus(c, "reject-schedule", h.usecase.RejectSchedule)
}

// StartWork moves a scheduled job to in progress.
func (h *JobHandler) StartWork(c *gin.Context) {
	h.patchJobStatus(c, "start-work", h.usecase.StartWork)
}

// CompleteWork moves an in-progress job to completed.
func (h *JobHandler) CompleteWork(c *gin.Context) {
	h.patchJobStatus(c, "complete-work", h.usecase.CompleteWork)
}

// SweepExpired applies the time-based expiry rules to a single job.
func (h *JobHandler) SweepExpired(c *gin.Context) {
	h.patchJobStatus(c, "sweep-expired", h.usecase.SweepExpired)
}

// CancelJob cancels a job with an explicit reason. The "expired" reason is
// reserved for the sweep.
func (h *JobHandler) CancelJob(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.JobCancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[job][handler] cancel invalid payload job_id=%s err=%v", jobID, err)
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	reason := entities.CancellationReason(payload.Reason)
	if reason != entities.CancellationReasonCustomerRequest && reason != entities.CancellationReasonMechanicUnavailable {
		log.Printf("[job][handler] cancel invalid reason job_id=%s reason=%s", jobID, payload.Reason)
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CancelJob(c.Request.Context(), jobID, reason)
	if err != nil {
		log.Printf("[job][handler] cancel failed job_id=%s err=%v", jobID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] cancel success job_id=%s reason=%s", job.ID, job.CancellationReason)

	c.JSON(http.StatusOK, h.jobResponse(job))
}

func (h *JobHandler) patchJobStatus(
	c *gin.Context,
	op string,
	updater func(ctx context.Context, jobID string) (entities.Job, error),
) {
	jobID := c.Param("job_id")

	job, err := updater(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[job][handler] %s failed job_id=%s err=%v", op, jobID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] %s success job_id=%s status=%s", op, job.ID, job.Status)

	c.JSON(http.StatusOK, h.jobResponse(job))
}

func (h *JobHandler) jobResponse(job entities.Job) response.JobResponse {
	policy := h.usecase.Policy()
	return response.FromJob(job, time.Now().UTC(), policy.JobExpiryWindow, policy.ExpiringSoonHint)
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "mechbid/internal/adapter/http/dto/request"
	response "mechbid/internal/adapter/http/dto/response"
	"mechbid/internal/usecase"
	"mechbid/pkg"
)

var errInvalidEscrowPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// EscrowHandler handles HTTP requests for the deposit escrow attached to an
// accepted bid.

type EscrowHandler struct {
	usecase usecase.IJobLifecycleUseCase
}

func NewEscrowHandler(uc usecase.IJobLifecycleUseCase) *EscrowHandler {
	return &EscrowHandler{usecase: uc}
}

// AuthorizeEscrow creates (or returns the existing) deposit authorization for
// the accepted bid. Retrying after a declined attempt starts a fresh intent.
func (h *EscrowHandler) AuthorizeEscrow(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.EscrowAuthorizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[escrow][handler] authorize invalid payload job_id=%s err=%v", jobID, err)
		c.JSON(errInvalidEscrowPayload.HTTPStatus, errInvalidEscrowPayload.ToHTTPError())
		return
	}

	tx, err := h.usecase.AuthorizeEscrow(c.Request.Context(), jobID, payload.BidID)
	if err != nil {
		log.Printf("[escrow][handler] authorize failed job_id=%s bid_id=%s err=%v", jobID, payload.BidID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[escrow][handler] authorize success job_id=%s bid_id=%s intent_id=%s status=%s", jobID, tx.BidID, tx.PaymentIntentID, tx.Status)

	c.JSON(http.StatusCreated, response.FromEscrow(tx))
}

// CaptureEscrow settles the pending deposit with the payment provider.
func (h *EscrowHandler) CaptureEscrow(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.EscrowCaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[escrow][handler] capture invalid payload job_id=%s err=%v", jobID, err)
		c.JSON(errInvalidEscrowPayload.HTTPStatus, errInvalidEscrowPayload.ToHTTPError())
		return
	}

	tx, err := h.usecase.CaptureEscrow(c.Request.Context(), jobID, payload.PaymentIntentID)
	if err != nil {
		log.Printf("[escrow][handler] capture failed job_id=%s intent_id=%s err=%v", jobID, payload.PaymentIntentID, err)
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[escrow][handler] capture success job_id=%s intent_id=%s status=%s", jobID, tx.PaymentIntentID, tx.Status)

	c.JSON(http.StatusOK, response.FromEscrow(tx))
}

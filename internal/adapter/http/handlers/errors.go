package handlers

import (
	"errors"
	"net/http"

	"mechbid/internal/domain/entities"
	"mechbid/internal/usecase"
	"mechbid/pkg"
)

// mapLifecycleError translates use case and domain errors into the stable
// error envelope. Every handler funnels through here so a given failure maps
// to the same code and status on every route.
func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobInput),
		errors.Is(err, usecase.ErrInvalidBidInput),
		errors.Is(err, usecase.ErrInvalidChangeOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrBidNotPending):
		return pkg.NewDomainErrorSimple("BID_NOT_PENDING", "Bid is no longer pending", http.StatusConflict)
	case errors.Is(err, entities.ErrDuplicatePendingBid):
		return pkg.NewDomainErrorSimple("DUPLICATE_PENDING_BID", "Mechanic already has a pending bid on this job", http.StatusConflict)
	case errors.Is(err, entities.ErrJobNotAcceptingBids):
		return pkg.NewDomainErrorSimple("JOB_NOT_ACCEPTING_BIDS", "Job is not accepting bids", http.StatusConflict)
	case errors.Is(err, entities.ErrChangeOrderNotPending):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_PENDING", "Change order is no longer pending", http.StatusConflict)
	case errors.Is(err, entities.ErrChangeOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_ALREADY_EXISTS", "Job already has a pending change order", http.StatusConflict)
	case errors.Is(err, entities.ErrPaymentAlreadyCaptured):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_CAPTURED", "Escrow deposit already captured", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", "Operation not allowed in the current job state", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAuthorizationFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_AUTHORIZATION_FAILED", "Payment authorization failed", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Job was modified concurrently, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package entities

import "errors"

// Domain-rule errors returned by aggregate methods. A failed guard leaves the
// aggregate unchanged; callers map these to stable API error codes.
var (
	ErrInvalidStateTransition = errors.New("invalid state transition")

	ErrBidNotFound        = errors.New("bid not found")
	ErrBidNotPending      = errors.New("bid not pending")
	ErrDuplicatePendingBid = errors.New("mechanic already has a pending bid on this job")
	ErrJobNotAcceptingBids = errors.New("job not accepting bids")

	ErrChangeOrderNotPending    = errors.New("change order not pending")
	ErrChangeOrderAlreadyExists = errors.New("job already has a pending change order")

	ErrPaymentAlreadyCaptured = errors.New("escrow payment already captured")
)

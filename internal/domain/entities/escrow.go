package entities

import (
	"time"

	"mechbid/internal/domain/money"
)

type EscrowStatus string

const (
	EscrowStatusPending  EscrowStatus = "pending"
	EscrowStatusCaptured EscrowStatus = "captured"
	EscrowStatusFailed   EscrowStatus = "failed"
)

// EscrowTransaction records the upfront deposit collected for an accepted
// bid. PaymentIntentID is the opaque reference issued by the payment
// provider; the core never sees card data.
//
// DepositAmount + FinalBalance always equals the accepted bid amount exactly:
// the balance is the remainder of the subtraction, not a second rounding.

type EscrowTransaction struct {
	JobID           string       `json:"job_id"`
	BidID           string       `json:"bid_id"`
	DepositAmount   money.Money  `json:"deposit_amount_cents"`
	FinalBalance    money.Money  `json:"final_balance_cents"`
	PaymentIntentID string       `json:"payment_intent_id"`
	Status          EscrowStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// ComputeDeposit splits a bid amount into the upfront deposit (rate in basis
// points, rounded half up to cents) and the remaining balance due on
// completion.
func ComputeDeposit(bidAmount money.Money, rateBps int64) (deposit, finalBalance money.Money) {
	return money.Split(bidAmount, rateBps)
}

// BeginEscrow records a freshly created payment intent as the job's pending
// escrow transaction, replacing a previously failed one. Idempotency checks
// happen in the caller before the intent is created.
func (j *Job) BeginEscrow(bidID, paymentIntentID string, deposit, finalBalance money.Money, now time.Time) EscrowTransaction {
	tx := EscrowTransaction{
		JobID:           j.ID,
		BidID:           bidID,
		DepositAmount:   deposit,
		FinalBalance:    finalBalance,
		PaymentIntentID: paymentIntentID,
		Status:          EscrowStatusPending,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}
	j.Escrow = &tx
	j.touch(now)
	return tx
}

// ResolveEscrow applies the provider outcome to the pending transaction.
// Capturing is terminal; a resolved-again transaction reports
// ErrPaymentAlreadyCaptured. A failed outcome touches only the transaction;
// the job status stays put so the customer can retry.
func (j *Job) ResolveEscrow(paymentIntentID string, approved bool, now time.Time) (EscrowTransaction, error) {
	if j.Escrow == nil || j.Escrow.PaymentIntentID != paymentIntentID {
		return EscrowTransaction{}, ErrInvalidStateTransition
	}
	if j.Escrow.Status == EscrowStatusCaptured {
		return EscrowTransaction{}, ErrPaymentAlreadyCaptured
	}
	if approved {
		j.Escrow.Status = EscrowStatusCaptured
	} else {
		j.Escrow.Status = EscrowStatusFailed
	}
	j.Escrow.UpdatedAt = now.UTC()
	j.touch(now)
	return *j.Escrow, nil
}

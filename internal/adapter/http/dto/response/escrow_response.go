package response

import (
	"time"

	"mechbid/internal/domain/entities"
)

type EscrowResponse struct {
	JobID           string    `json:"job_id"`
	BidID           string    `json:"bid_id"`
	DepositAmount   float64   `json:"deposit_amount"`
	FinalBalance    float64   `json:"final_balance"`
	PaymentIntentID string    `json:"payment_intent_id"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromEscrow(tx entities.EscrowTransaction) EscrowResponse {
	return EscrowResponse{
		JobID:           tx.JobID,
		BidID:           tx.BidID,
		DepositAmount:   tx.DepositAmount.Float64(),
		FinalBalance:    tx.FinalBalance.Float64(),
		PaymentIntentID: tx.PaymentIntentID,
		Status:          string(tx.Status),
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

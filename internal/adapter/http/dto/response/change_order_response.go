package response

import (
	"time"

	"mechbid/internal/domain/entities"
)

type ChangeOrderResponse struct {
	ID              string    `json:"id"`
	JobID           string    `json:"job_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status"`
	MechanicName    string    `json:"mechanic_name,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func FromChangeOrder(co entities.ChangeOrder) ChangeOrderResponse {
	return ChangeOrderResponse{
		ID:              co.ID,
		JobID:           co.JobID,
		Title:           co.Title,
		Description:     co.Description,
		Reason:          co.Reason,
		TotalAmount:     co.TotalAmount.Float64(),
		Status:          string(co.Status),
		MechanicName:    co.MechanicName,
		RejectionReason: co.RejectionReason,
		CreatedAt:       co.CreatedAt,
		ExpiresAt:       co.ExpiresAt,
	}
}

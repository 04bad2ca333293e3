package response

import (
	"time"

	"mechbid/internal/domain/entities"
)

type BidResponse struct {
	ID                       string    `json:"id"`
	JobID                    string    `json:"job_id"`
	MechanicID               string    `json:"mechanic_id"`
	Amount                   float64   `json:"amount"`
	Message                  string    `json:"message,omitempty"`
	EstimatedDurationMinutes int       `json:"estimated_duration_minutes"`
	Status                   string    `json:"status"`
	LowestPending            bool      `json:"lowest_pending"`
	CreatedAt                time.Time `json:"created_at"`
}

func FromBid(b entities.Bid) BidResponse {
	return fromBid(b, false)
}

// FromBids marks the lowest pending bid so clients can highlight the current
// best offer without re-deriving it.
func FromBids(bids []entities.Bid) []BidResponse {
	lowestID := ""
	var lowestAmount int64
	for i := range bids {
		if bids[i].Status != entities.BidStatusPending {
			continue
		}
		if lowestID == "" || bids[i].Amount.Cents() < lowestAmount {
			lowestID = bids[i].ID
			lowestAmount = bids[i].Amount.Cents()
		}
	}
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, fromBid(b, b.ID == lowestID))
	}
	return out
}

func fromBid(b entities.Bid, lowestPending bool) BidResponse {
	return BidResponse{
		ID:                       b.ID,
		JobID:                    b.JobID,
		MechanicID:               b.MechanicID,
		Amount:                   b.Amount.Float64(),
		Message:                  b.Message,
		EstimatedDurationMinutes: b.EstimatedDurationMinutes,
		Status:                   string(b.Status),
		LowestPending:            lowestPending,
		CreatedAt:                b.CreatedAt,
	}
}

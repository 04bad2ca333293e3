package response

import (
	"time"

	"mechbid/internal/domain/entities"
)

// JobResponse is the outward view of a job aggregate. Amounts are rendered in
// whole currency units, and expiry fields are derived from the job state at
// read time rather than stored.

type JobResponse struct {
	ID                 string  `json:"id"`
	CustomerID         string  `json:"customer_id"`
	Category           string  `json:"category"`
	Status             string  `json:"status"`
	EstimatedCost      float64 `json:"estimated_cost"`
	TotalCost          float64 `json:"total_cost"`
	SelectedMechanicID string  `json:"selected_mechanic_id,omitempty"`
	SelectedBidID      string  `json:"selected_bid_id,omitempty"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`

	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	ExpiringSoon bool       `json:"expiring_soon"`

	Bids         []BidResponse         `json:"bids,omitempty"`
	ChangeOrders []ChangeOrderResponse `json:"change_orders,omitempty"`
	Escrow       *EscrowResponse       `json:"escrow,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}

func FromJob(j entities.Job, now time.Time, expiryWindow, expiringSoonHint time.Duration) JobResponse {
	resp := JobResponse{
		ID:                 j.ID,
		CustomerID:         j.CustomerID,
		Category:           j.Category,
		Status:             string(j.Status),
		EstimatedCost:      j.EstimatedCost.Float64(),
		TotalCost:          j.TotalCost().Float64(),
		SelectedMechanicID: j.SelectedMechanicID,
		SelectedBidID:      j.SelectedBidID,
		CancellationReason: string(j.CancellationReason),
		ExpiringSoon:       j.ExpiringSoon(now, expiryWindow, expiringSoonHint),
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
		Version:            j.Version,
	}

	if j.Expirable() {
		expiresAt := j.ExpiresAt(expiryWindow)
		resp.ExpiresAt = &expiresAt
	}

	lowest := j.LowestPendingBid()
	for _, b := range j.Bids {
		resp.Bids = append(resp.Bids, fromBid(b, lowest != nil && lowest.ID == b.ID))
	}
	for _, co := range j.ChangeOrders {
		resp.ChangeOrders = append(resp.ChangeOrders, FromChangeOrder(co))
	}
	if j.Escrow != nil {
		escrow := FromEscrow(*j.Escrow)
		resp.Escrow = &escrow
	}

	return resp
}

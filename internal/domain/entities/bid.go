package entities

import (
	"time"

	"mechbid/internal/domain/money"
)

type BidStatus string

const (
	BidStatusPending   BidStatus = "pending"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
	BidStatusWithdrawn BidStatus = "withdrawn"
)

// Bid is a mechanic's priced offer against a job. Bids live inside the Job
// aggregate; once a bid leaves pending it is immutable except for the
// bulk-reject applied when a sibling is accepted.

type Bid struct {
	ID                       string      `json:"id"`
	JobID                    string      `json:"job_id"`
	MechanicID               string      `json:"mechanic_id"`
	Amount                   money.Money `json:"amount_cents"`
	Message                  string      `json:"message,omitempty"`
	EstimatedDurationMinutes int         `json:"estimated_duration_minutes"`
	Status                   BidStatus   `json:"status"`
	CreatedAt                time.Time   `json:"created_at"`
}

func (j *Job) BidByID(bidID string) *Bid {
	for i := range j.Bids {
		if j.Bids[i].ID == bidID {
			return &j.Bids[i]
		}
	}
	return nil
}

// SubmitBid appends a pending bid and moves a posted job into bidding.
// A mechanic may hold at most one pending bid per job; re-bidding requires a
// prior withdrawal or rejection.
func (j *Job) SubmitBid(bidID, mechanicID string, amount money.Money, message string, durationMinutes int, now time.Time) (Bid, error) {
	if j.Status != JobStatusPosted && j.Status != JobStatusBidding {
		return Bid{}, ErrJobNotAcceptingBids
	}
	for i := range j.Bids {
		if j.Bids[i].MechanicID == mechanicID && j.Bids[i].Status == BidStatusPending {
			return Bid{}, ErrDuplicatePendingBid
		}
	}

	b := Bid{
		ID:                       bidID,
		JobID:                    j.ID,
		MechanicID:               mechanicID,
		Amount:                   amount,
		Message:                  message,
		EstimatedDurationMinutes: durationMinutes,
		Status:                   BidStatusPending,
		CreatedAt:                now.UTC(),
	}
	j.Bids = append(j.Bids, b)
	j.Status = JobStatusBidding
	j.touch(now)
	return b, nil
}

// AcceptBid marks the chosen bid accepted, rejects every other pending bid
// and advances the job, all as one in-memory mutation. Persisting the
// aggregate afterwards commits the four effects as a unit.
//
// The bid guard runs before the job guard so that the loser of a race
// observes ErrBidNotPending (its bid was bulk-rejected), not a status error.
func (j *Job) AcceptBid(bidID string, now time.Time) (Bid, error) {
	b := j.BidByID(bidID)
	if b == nil {
		return Bid{}, ErrBidNotFound
	}
	if b.Status != BidStatusPending {
		return Bid{}, ErrBidNotPending
	}
	if j.Status != JobStatusBidding {
		return Bid{}, ErrInvalidStateTransition
	}

	b.Status = BidStatusAccepted
	for i := range j.Bids {
		if j.Bids[i].ID != bidID && j.Bids[i].Status == BidStatusPending {
			j.Bids[i].Status = BidStatusRejected
		}
	}
	j.Status = JobStatusAccepted
	j.SelectedMechanicID = b.MechanicID
	j.SelectedBidID = b.ID
	j.touch(now)
	return *b, nil
}

func (j *Job) WithdrawBid(bidID string, now time.Time) error {
	b := j.BidByID(bidID)
	if b == nil {
		return ErrBidNotFound
	}
	if b.Status != BidStatusPending {
		return ErrBidNotPending
	}
	b.Status = BidStatusWithdrawn
	j.touch(now)
	return nil
}

// LowestPendingBid is a read-only helper for the "lowest bid" highlight. It
// has no effect on acceptance, which is always an explicit customer choice.
func (j *Job) LowestPendingBid() *Bid {
	var lowest *Bid
	for i := range j.Bids {
		if j.Bids[i].Status != BidStatusPending {
			continue
		}
		if lowest == nil || j.Bids[i].Amount < lowest.Amount {
			lowest = &j.Bids[i]
		}
	}
	return lowest
}

package entities

import (
	"time"

	"mechbid/internal/domain/money"
)

// JobStatus is the lifecycle position of a repair job.
//
// Flow: posted → bidding → accepted → scheduled → in_progress ⇄ pending
// (change-order approval) → completed. Any non-terminal status may move to
// cancelled; posted/bidding jobs additionally expire via the sweep.
// scheduled → schedule_rejected is a dead end that re-enters accepted on the
// next schedule confirmation.

type JobStatus string

const (
	JobStatusPosted           JobStatus = "posted"
	JobStatusBidding          JobStatus = "bidding"
	JobStatusAccepted         JobStatus = "accepted"
	JobStatusScheduled        JobStatus = "scheduled"
	JobStatusScheduleRejected JobStatus = "schedule_rejected"
	JobStatusInProgress       JobStatus = "in_progress"
	JobStatusPendingApproval  JobStatus = "pending"
	JobStatusCompleted        JobStatus = "completed"
	JobStatusCancelled        JobStatus = "cancelled"
)

type CancellationReason string

const (
	CancellationReasonExpired             CancellationReason = "expired"
	CancellationReasonCustomerRequest     CancellationReason = "customer_request"
	CancellationReasonMechanicUnavailable CancellationReason = "mechanic_unavailable"
)

// Job is the aggregate root of the coordination core. It exclusively owns its
// bid ledger, change-order list and escrow transaction; all invariants are
// job-scoped, so the job is also the unit of locking and persistence.
//
// Storage model (DynamoDB):
//   - PK: id
//   - bids, change_orders and escrow are embedded in the item
//   - version drives the optimistic write condition
//
// SelectedMechanicID and SelectedBidID are set together or not at all.

type Job struct {
	ID                 string             `json:"id"`
	CustomerID         string             `json:"customer_id"`
	Category           string             `json:"category"`
	Status             JobStatus          `json:"status"`
	EstimatedCost      money.Money        `json:"estimated_cost_cents"`
	SelectedMechanicID string             `json:"selected_mechanic_id,omitempty"`
	SelectedBidID      string             `json:"selected_bid_id,omitempty"`
	CancellationReason CancellationReason `json:"cancellation_reason,omitempty"`

	Bids         []Bid              `json:"bids,omitempty"`
	ChangeOrders []ChangeOrder      `json:"change_orders,omitempty"`
	Escrow       *EscrowTransaction `json:"escrow,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}

func NewJob(id, customerID, category string, estimatedCost money.Money, now time.Time) Job {
	return Job{
		ID:            id,
		CustomerID:    customerID,
		Category:      category,
		Status:        JobStatusPosted,
		EstimatedCost: estimatedCost,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}
}

func (j *Job) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusCancelled
}

// ExpiresAt is the moment an unattended posted/bidding job lapses. Derived
// from CreatedAt and the policy window; never stored.
func (j *Job) ExpiresAt(window time.Duration) time.Time {
	return j.CreatedAt.Add(window)
}

func (j *Job) Expirable() bool {
	return j.Status == JobStatusPosted || j.Status == JobStatusBidding
}

func (j *Job) Expired(now time.Time, window time.Duration) bool {
	return j.Expirable() && !now.Before(j.ExpiresAt(window))
}

// ExpiringSoon is a read-time hint for the UI; it never mutates state.
func (j *Job) ExpiringSoon(now time.Time, window, hint time.Duration) bool {
	if !j.Expirable() {
		return false
	}
	remaining := j.ExpiresAt(window).Sub(now)
	return remaining > 0 && remaining <= hint
}

func (j *Job) ConfirmSchedule(now time.Time) error {
	if j.Status != JobStatusAccepted && j.Status != JobStatusScheduleRejected {
		return ErrInvalidStateTransition
	}
	j.Status = JobStatusScheduled
	j.touch(now)
	return nil
}

func (j *Job) RejectSchedule(now time.Time) error {
	if j.Status != JobStatusScheduled {
		return ErrInvalidStateTransition
	}
	j.Status = JobStatusScheduleRejected
	j.touch(now)
	return nil
}

func (j *Job) StartWork(now time.Time) error {
	if j.Status != JobStatusScheduled {
		return ErrInvalidStateTransition
	}
	j.Status = JobStatusInProgress
	j.touch(now)
	return nil
}

func (j *Job) CompleteWork(now time.Time) error {
	if j.Status != JobStatusInProgress {
		return ErrInvalidStateTransition
	}
	j.Status = JobStatusCompleted
	j.touch(now)
	return nil
}

func (j *Job) Cancel(reason CancellationReason, now time.Time) error {
	if j.Terminal() {
		return ErrInvalidStateTransition
	}
	j.Status = JobStatusCancelled
	j.CancellationReason = reason
	j.touch(now)
	return nil
}

// SweepExpiry applies the time-based cancellation for unattended jobs. It is
// idempotent: calling it on an already-expired (or non-expirable) job is a
// no-op and reports false.
func (j *Job) SweepExpiry(now time.Time, window time.Duration) bool {
	if !j.Expired(now, window) {
		return false
	}
	j.Status = JobStatusCancelled
	j.CancellationReason = CancellationReasonExpired
	j.touch(now)
	return true
}

// TotalCost is the customer-entered baseline plus every approved change
// order. Rejected and expired change orders never contribute.
func (j *Job) TotalCost() money.Money {
	total := j.EstimatedCost
	for _, co := range j.ChangeOrders {
		if co.Status == ChangeOrderStatusApproved {
			total = total.Add(co.TotalAmount)
		}
	}
	return total
}

func (j *Job) touch(now time.Time) {
	j.UpdatedAt = now.UTC()
}

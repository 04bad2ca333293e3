package entities

import (
	"time"

	"mechbid/internal/domain/money"
)

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
	ChangeOrderStatusExpired  ChangeOrderStatus = "expired"
)

// ChangeOrder is a mid-job request for additional paid work. While one is
// pending the owning job sits in the pending status and further mechanic work
// is not authorized. At most one change order may be pending per job.
//
// TotalAmount is additive to the job's estimated cost and only counts once
// approved. Once resolved (approved/rejected/expired) a change order is
// immutable.

type ChangeOrder struct {
	ID              string            `json:"id"`
	JobID           string            `json:"job_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	Reason          string            `json:"reason,omitempty"`
	TotalAmount     money.Money       `json:"total_amount_cents"`
	Status          ChangeOrderStatus `json:"status"`
	MechanicName    string            `json:"mechanic_name,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	ExpiresAt       time.Time         `json:"expires_at"`
}

func (j *Job) ChangeOrderByID(changeOrderID string) *ChangeOrder {
	for i := range j.ChangeOrders {
		if j.ChangeOrders[i].ID == changeOrderID {
			return &j.ChangeOrders[i]
		}
	}
	return nil
}

func (j *Job) PendingChangeOrder() *ChangeOrder {
	for i := range j.ChangeOrders {
		if j.ChangeOrders[i].Status == ChangeOrderStatusPending {
			return &j.ChangeOrders[i]
		}
	}
	return nil
}

// CreateChangeOrder opens an approval gate: the job leaves in_progress and
// waits in pending until the customer resolves the request or it expires.
func (j *Job) CreateChangeOrder(id, title, description, reason string, totalAmount money.Money, mechanicName string, now time.Time, window time.Duration) (ChangeOrder, error) {
	if j.Status != JobStatusInProgress {
		return ChangeOrder{}, ErrInvalidStateTransition
	}
	if j.PendingChangeOrder() != nil {
		return ChangeOrder{}, ErrChangeOrderAlreadyExists
	}

	co := ChangeOrder{
		ID:           id,
		JobID:        j.ID,
		Title:        title,
		Description:  description,
		Reason:       reason,
		TotalAmount:  totalAmount,
		Status:       ChangeOrderStatusPending,
		MechanicName: mechanicName,
		CreatedAt:    now.UTC(),
		ExpiresAt:    now.UTC().Add(window),
	}
	j.ChangeOrders = append(j.ChangeOrders, co)
	j.Status = JobStatusPendingApproval
	j.touch(now)
	return co, nil
}

// ApproveChangeOrder authorizes the extra work; the job resumes and the
// change-order amount starts counting toward TotalCost.
//
// A change order whose window already lapsed is expired in place and the call
// reports ErrChangeOrderNotPending, so a late approval after a sweep and a
// double-submitted approval behave identically.
func (j *Job) ApproveChangeOrder(changeOrderID string, now time.Time) error {
	co, err := j.resolvableChangeOrder(changeOrderID, now)
	if err != nil {
		return err
	}
	co.Status = ChangeOrderStatusApproved
	j.resumeAfterChangeOrder(now)
	return nil
}

// RejectChangeOrder declines the extra work; the job resumes and cost is
// unaffected.
func (j *Job) RejectChangeOrder(changeOrderID, reason string, now time.Time) error {
	co, err := j.resolvableChangeOrder(changeOrderID, now)
	if err != nil {
		return err
	}
	co.Status = ChangeOrderStatusRejected
	co.RejectionReason = reason
	j.resumeAfterChangeOrder(now)
	return nil
}

// SweepChangeOrders expires a pending change order whose window lapsed.
// Equivalent to a rejection for cost purposes. Idempotent.
func (j *Job) SweepChangeOrders(now time.Time) (string, bool) {
	co := j.PendingChangeOrder()
	if co == nil || now.Before(co.ExpiresAt) {
		return "", false
	}
	co.Status = ChangeOrderStatusExpired
	j.resumeAfterChangeOrder(now)
	return co.ID, true
}

func (j *Job) resolvableChangeOrder(changeOrderID string, now time.Time) (*ChangeOrder, error) {
	co := j.ChangeOrderByID(changeOrderID)
	if co == nil || co.Status != ChangeOrderStatusPending {
		return nil, ErrChangeOrderNotPending
	}
	if !now.Before(co.ExpiresAt) {
		co.Status = ChangeOrderStatusExpired
		j.resumeAfterChangeOrder(now)
		return nil, ErrChangeOrderNotPending
	}
	return co, nil
}

func (j *Job) resumeAfterChangeOrder(now time.Time) {
	if j.Status == JobStatusPendingApproval {
		j.Status = JobStatusInProgress
	}
	j.touch(now)
}

package entities

import "time"

// Domain event types published after a committed transition. Delivery is
// fire-and-forget; a publish failure never rolls back the transition.
const (
	EventJobCreated          = "job.created"
	EventJobCancelled        = "job.cancelled"
	EventJobExpired          = "job.expired"
	EventScheduleConfirmed   = "job.schedule_confirmed"
	EventScheduleRejected    = "job.schedule_rejected"
	EventWorkStarted         = "job.work_started"
	EventWorkCompleted       = "job.work_completed"
	EventBidSubmitted        = "bid.submitted"
	EventBidAccepted         = "bid.accepted"
	EventBidWithdrawn        = "bid.withdrawn"
	EventEscrowAuthorized    = "escrow.authorized"
	EventEscrowCaptured      = "escrow.captured"
	EventEscrowFailed        = "escrow.failed"
	EventChangeOrderCreated  = "change_order.created"
	EventChangeOrderApproved = "change_order.approved"
	EventChangeOrderRejected = "change_order.rejected"
	EventChangeOrderExpired  = "change_order.expired"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	JobID      string         `json:"job_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

func NewDomainEvent(eventType, jobID string, now time.Time, payload map[string]any) DomainEvent {
	return DomainEvent{
		Type:       eventType,
		JobID:      jobID,
		OccurredAt: now.UTC(),
		Payload:    payload,
	}
}

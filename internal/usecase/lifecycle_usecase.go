package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mechbid/internal/domain/clock"
	"mechbid/internal/domain/entities"
	"mechbid/internal/domain/money"
	"mechbid/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound                = errors.New("job not found")
	ErrConcurrentModification     = errors.New("concurrent modification")
	ErrPaymentAuthorizationFailed = errors.New("payment authorization failed")
	ErrInvalidJobInput            = errors.New("invalid job input")
	ErrInvalidBidInput            = errors.New("invalid bid input")
	ErrInvalidChangeOrderInput    = errors.New("invalid change order input")
)

// ChangeOrderInput is the mechanic-provided payload for a new change order.
type ChangeOrderInput struct {
	Title        string
	Description  string
	Reason       string
	TotalAmount  money.Money
	MechanicName string
}

// IJobLifecycleUseCase is the single entry point for every mutating intent on
// a job. Each call loads the aggregate, serializes against concurrent
// mutation of the same job id, delegates to the aggregate, persists
// atomically and publishes domain events after the commit.

type IJobLifecycleUseCase interface {
	CreateJob(ctx context.Context, customerID, category string, estimatedCost money.Money) (entities.Job, error)
	GetJob(ctx context.Context, jobID string) (entities.Job, error)
	ListBids(ctx context.Context, jobID string) ([]entities.Bid, error)
	SubmitBid(ctx context.Context, jobID, mechanicID string, amount money.Money, message string, durationMinutes int) (entities.Bid, error)
	WithdrawBid(ctx context.Context, jobID, bidID string) (entities.Job, error)
	AcceptBid(ctx context.Context, jobID, bidID string) (entities.Job, error)
	ConfirmSchedule(ctx context.Context, jobID string) (entities.Job, error)
	RejectSchedule(ctx context.Context, jobID string) (entities.Job, error)
	StartWork(ctx context.Context, jobID string) (entities.Job, error)
	CompleteWork(ctx context.Context, jobID string) (entities.Job, error)
	AuthorizeEscrow(ctx context.Context, jobID, bidID string) (entities.EscrowTransaction, error)
	CaptureEscrow(ctx context.Context, jobID, paymentIntentID string) (entities.EscrowTransaction, error)
	CreateChangeOrder(ctx context.Context, jobID string, input ChangeOrderInput) (entities.ChangeOrder, error)
	ApproveChangeOrder(ctx context.Context, jobID, changeOrderID, approverID string) (entities.Job, error)
	RejectChangeOrder(ctx context.Context, jobID, changeOrderID, approverID, reason string) (entities.Job, error)
	CancelJob(ctx context.Context, jobID string, reason entities.CancellationReason) (entities.Job, error)
	SweepExpired(ctx context.Context, jobID string) (entities.Job, error)
	Policy() Policy
}

type JobLifecycleUseCase struct {
	repo      interfaces.IJobRepository
	gateway   interfaces.IPaymentGateway
	publisher interfaces.IEventPublisher
	clk       clock.Clock
	policy    Policy
	locks     *jobLocks
}

var _ IJobLifecycleUseCase = (*JobLifecycleUseCase)(nil)

func NewJobLifecycleUseCase(repo interfaces.IJobRepository, gateway interfaces.IPaymentGateway, publisher interfaces.IEventPublisher, clk clock.Clock, policy Policy) *JobLifecycleUseCase {
	if clk == nil {
		clk = clock.System()
	}
	return &JobLifecycleUseCase{
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		clk:       clk,
		policy:    policy,
		locks:     newJobLocks(),
	}
}

func (u *JobLifecycleUseCase) Policy() Policy {
	return u.policy
}

// eventBatch collects the domain events of one committed mutation. A
// non-empty batch is the signal that the aggregate changed and must be saved.
type eventBatch struct {
	events []entities.DomainEvent
}

func (b *eventBatch) add(e entities.DomainEvent) {
	b.events = append(b.events, e)
}

// mutate runs the load → serialize → delegate → persist cycle shared by every
// mutating intent.
//
// The operation function may mutate the aggregate even when it returns an
// error (an expiry sweep applied on the way to a failed guard); any recorded
// events are persisted and published before the error is surfaced, so the
// failed intent never loses a time-based transition. A version conflict on
// save is retried once against a fresh load before surfacing as
// ErrConcurrentModification.
func (u *JobLifecycleUseCase) mutate(ctx context.Context, jobID, op string, fn func(job *entities.Job, now time.Time, ev *eventBatch) error) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	unlock := u.locks.lock(jobID)
	defer unlock()

	for attempt := 1; attempt <= 2; attempt++ {
		job, err := u.repo.GetByID(ctx, jobID)
		if err != nil {
			return entities.Job{}, err
		}
		if job.ID == "" {
			return entities.Job{}, ErrJobNotFound
		}

		now := u.clk.Now()
		ev := &eventBatch{}
		opErr := fn(&job, now, ev)

		if len(ev.events) == 0 {
			// Nothing changed; no write, no events.
			if opErr != nil {
				return entities.Job{}, opErr
			}
			return job, nil
		}

		saved, err := u.repo.Save(ctx, job)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[lifecycle][usecase] %s version conflict job_id=%s attempt=%d", op, jobID, attempt)
			continue
		}
		if err != nil {
			return entities.Job{}, err
		}

		u.publish(ctx, ev.events)
		if opErr != nil {
			return entities.Job{}, opErr
		}
		return saved, nil
	}

	log.Printf("[lifecycle][usecase] %s giving up after version conflicts job_id=%s", op, jobID)
	return entities.Job{}, ErrConcurrentModification
}

// applySweeps runs both time-based rules before an intent is evaluated, so
// guards always see the aggregate as the clock does. Both sweeps are
// idempotent.
func (u *JobLifecycleUseCase) applySweeps(job *entities.Job, now time.Time, ev *eventBatch) {
	if job.SweepExpiry(now, u.policy.JobExpiryWindow) {
		log.Printf("[lifecycle][usecase] job expired job_id=%s created_at=%s", job.ID, job.CreatedAt.Format(time.RFC3339))
		ev.add(entities.NewDomainEvent(entities.EventJobExpired, job.ID, now, map[string]any{
			"reason": string(entities.CancellationReasonExpired),
		}))
	}
	if coID, swept := job.SweepChangeOrders(now); swept {
		log.Printf("[lifecycle][usecase] change order expired job_id=%s change_order_id=%s", job.ID, coID)
		ev.add(entities.NewDomainEvent(entities.EventChangeOrderExpired, job.ID, now, map[string]any{
			"change_order_id": coID,
		}))
	}
}

func (u *JobLifecycleUseCase) publish(ctx context.Context, events []entities.DomainEvent) {
	if u.publisher == nil {
		return
	}
	for _, e := range events {
		if err := u.publisher.Publish(ctx, e); err != nil {
			log.Printf("[lifecycle][usecase] event publish failed type=%s job_id=%s err=%v", e.Type, e.JobID, err)
		}
	}
}

func (u *JobLifecycleUseCase) CreateJob(ctx context.Context, customerID, category string, estimatedCost money.Money) (entities.Job, error) {
	customerID = strings.TrimSpace(customerID)
	category = strings.TrimSpace(category)
	if customerID == "" || category == "" || estimatedCost.IsNegative() {
		return entities.Job{}, ErrInvalidJobInput
	}

	now := u.clk.Now()
	job := entities.NewJob(uuid.NewString(), customerID, category, estimatedCost, now)

	created, err := u.repo.Create(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[lifecycle][usecase] job created job_id=%s customer_id=%s category=%s", created.ID, customerID, category)

	u.publish(ctx, []entities.DomainEvent{entities.NewDomainEvent(entities.EventJobCreated, created.ID, now, map[string]any{
		"customer_id": customerID,
		"category":    category,
	})})
	return created, nil
}

// GetJob serves reads from the last-committed snapshot without taking the
// job lock; readers never block writers.
func (u *JobLifecycleUseCase) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobLifecycleUseCase) ListBids(ctx context.Context, jobID string) ([]entities.Bid, error) {
	job, err := u.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return job.Bids, nil
}

func (u *JobLifecycleUseCase) SubmitBid(ctx context.Context, jobID, mechanicID string, amount money.Money, message string, durationMinutes int) (entities.Bid, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" || amount.Cents() <= 0 || durationMinutes < 0 {
		return entities.Bid{}, ErrInvalidBidInput
	}

	var bid entities.Bid
	_, err := u.mutate(ctx, jobID, "submit-bid", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		u.applySweeps(job, now, ev)
		b, err := job.SubmitBid(uuid.NewString(), mechanicID, amount, message, durationMinutes, now)
		if err != nil {
			return err
		}
		bid = b
		ev.add(entities.NewDomainEvent(entities.EventBidSubmitted, job.ID, now, map[string]any{
			"bid_id":       b.ID,
			"mechanic_id":  b.MechanicID,
			"amount_cents": b.Amount.Cents(),
		}))
		return nil
	})
	if err != nil {
		return entities.Bid{}, err
	}
	return bid, nil
}

func (u *JobLifecycleUseCase) WithdrawBid(ctx context.Context, jobID, bidID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, "withdraw-bid", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		if err := job.WithdrawBid(bidID, now); err != nil {
			return err
		}
		ev.add(entities.NewDomainEvent(entities.EventBidWithdrawn, job.ID, now, map[string]any{"bid_id": bidID}))
		return nil
	})
}

// AcceptBid commits four effects as one unit: the chosen bid becomes
// accepted, every sibling pending bid becomes rejected, and the job advances
// recording the selected mechanic and bid. The loser of two concurrent
// accepts observes BidNotPending.
func (u *JobLifecycleUseCase) AcceptBid(ctx context.Context, jobID, bidID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, "accept-bid", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		u.applySweeps(job, now, ev)
		b, err := job.AcceptBid(bidID, now)
		if err != nil {
			return err
		}
		log.Printf("[lifecycle][usecase] bid accepted job_id=%s bid_id=%s mechanic_id=%s amount_cents=%d", job.ID, b.ID, b.MechanicID, b.Amount.Cents())
		ev.add(entities.NewDomainEvent(entities.EventBidAccepted, job.ID, now, map[string]any{
			"bid_id":       b.ID,
			"mechanic_id":  b.MechanicID,
			"amount_cents": b.Amount.Cents(),
		}))
		return nil
	})
}

func (u *JobLifecycleUseCase) ConfirmSchedule(ctx context.Context, jobID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, "confirm-schedule", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		if err := job.ConfirmSchedule(now); err != nil {
			return err
		}
		ev.add(entities.NewDomainEvent(entities.EventScheduleConfirmed, job.ID, now, nil))
		return nil
	})
}

func (u *JobLifecycleUseCase) RejectSchedule(ctx context.Context, jobID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, "reject-schedule", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		if err := job.RejectSchedule(now); err != nil {
			return err
		}
		ev.add(entities.NewDomainEvent(entities.EventScheduleRejected, job.ID, now, nil))
		return nil
	})
}

func (u *JobLifecycleUseCase) StartWork(ctx context.Context, jobID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, "start-work", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		if err := job.StartWork(now); err != nil {
			return err
		}
		ev.add(entities.NewDomainEvent(entities.EventWorkStarted, job.ID, now, nil))
		return nil
	})
}

func (u *JobLifecycleUseCase) CompleteWork(ctx context.Context, jobID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, "complete-work", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		if err := job.CompleteWork(now); err != nil {
			return err
		}
		ev.add(entities.NewDomainEvent(entities.EventWorkCompleted, job.ID, now, map[string]any{
			"total_cost_cents": job.TotalCost().Cents(),
		}))
		return nil
	})
}

// AuthorizeEscrow creates the deposit payment intent for an accepted bid.
// Re-invoking while the transaction is pending returns the existing
// transaction rather than creating a duplicate charge; a failed transaction
// is replaced by a fresh intent.
func (u *JobLifecycleUseCase) AuthorizeEscrow(ctx context.Context, jobID, bidID string) (entities.EscrowTransaction, error) {
	if u.gateway == nil {
		return entities.EscrowTransaction{}, errors.New("payment gateway not configured")
	}

	var tx entities.EscrowTransaction
	_, err := u.mutate(ctx, jobID, "authorize-escrow", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		b := job.BidByID(bidID)
		if b == nil {
			return entities.ErrBidNotFound
		}
		if b.Status != entities.BidStatusAccepted {
			return entities.ErrInvalidStateTransition
		}
		if job.Escrow != nil && job.Escrow.BidID == b.ID {
			switch job.Escrow.Status {
			case entities.EscrowStatusCaptured:
				return entities.ErrPaymentAlreadyCaptured
			case entities.EscrowStatusPending:
				tx = *job.Escrow
				return nil
			}
		}

		deposit, finalBalance := entities.ComputeDeposit(b.Amount, u.policy.EscrowDepositBps)

		pctx, cancel := context.WithTimeout(ctx, u.policy.PaymentTimeout)
		defer cancel()
		intentRef, err := u.gateway.CreatePaymentIntent(pctx, deposit.Cents(), u.policy.Currency, map[string]string{
			"job_id": job.ID,
			"bid_id": b.ID,
		})
		if err != nil {
			log.Printf("[lifecycle][usecase] payment intent create failed job_id=%s bid_id=%s err=%v", job.ID, b.ID, err)
			return ErrPaymentAuthorizationFailed
		}

		tx = job.BeginEscrow(b.ID, intentRef, deposit, finalBalance, now)
		log.Printf("[lifecycle][usecase] escrow authorized job_id=%s bid_id=%s intent=%s deposit_cents=%d", job.ID, b.ID, intentRef, deposit.Cents())
		ev.add(entities.NewDomainEvent(entities.EventEscrowAuthorized, job.ID, now, map[string]any{
			"bid_id":              b.ID,
			"payment_intent_id":   intentRef,
			"deposit_cents":       deposit.Cents(),
			"final_balance_cents": finalBalance.Cents(),
		}))
		return nil
	})
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	return tx, nil
}

// CaptureEscrow confirms the pending intent with the payment provider. A
// declined outcome marks the transaction failed and leaves the job status
// untouched; the customer may retry with a fresh Authorize. A provider I/O
// error leaves the transaction pending for a later retry.
func (u *JobLifecycleUseCase) CaptureEscrow(ctx context.Context, jobID, paymentIntentID string) (entities.EscrowTransaction, error) {
	if u.gateway == nil {
		return entities.EscrowTransaction{}, errors.New("payment gateway not configured")
	}
	paymentIntentID = strings.TrimSpace(paymentIntentID)

	var tx entities.EscrowTransaction
	_, err := u.mutate(ctx, jobID, "capture-escrow", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		if job.Escrow == nil || job.Escrow.PaymentIntentID != paymentIntentID {
			return entities.ErrInvalidStateTransition
		}
		if job.Escrow.Status == entities.EscrowStatusCaptured {
			return entities.ErrPaymentAlreadyCaptured
		}

		pctx, cancel := context.WithTimeout(ctx, u.policy.PaymentTimeout)
		defer cancel()
		outcome, err := u.gateway.ConfirmPaymentIntent(pctx, paymentIntentID)
		if err != nil {
			log.Printf("[lifecycle][usecase] payment confirm failed job_id=%s intent=%s err=%v", job.ID, paymentIntentID, err)
			return err
		}

		resolved, err := job.ResolveEscrow(paymentIntentID, outcome == interfaces.PaymentOutcomeApproved, now)
		if err != nil {
			return err
		}
		tx = resolved

		eventType := entities.EventEscrowCaptured
		if resolved.Status == entities.EscrowStatusFailed {
			eventType = entities.EventEscrowFailed
		}
		log.Printf("[lifecycle][usecase] escrow capture resolved job_id=%s intent=%s status=%s", job.ID, paymentIntentID, resolved.Status)
		ev.add(entities.NewDomainEvent(eventType, job.ID, now, map[string]any{
			"payment_intent_id": paymentIntentID,
			"deposit_cents":     resolved.DepositAmount.Cents(),
		}))
		return nil
	})
	if err != nil {
		return entities.EscrowTransaction{}, err
	}
	return tx, nil
}

func (u *JobLifecycleUseCase) CreateChangeOrder(ctx context.Context, jobID string, input ChangeOrderInput) (entities.ChangeOrder, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || input.TotalAmount.IsNegative() {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderInput
	}

	var co entities.ChangeOrder
	_, err := u.mutate(ctx, jobID, "create-change-order", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		u.applySweeps(job, now, ev)
		created, err := job.CreateChangeOrder(uuid.NewString(), input.Title, input.Description, input.Reason, input.TotalAmount, input.MechanicName, now, u.policy.ChangeOrderWindow)
		if err != nil {
			return err
		}
		co = created
		ev.add(entities.NewDomainEvent(entities.EventChangeOrderCreated, job.ID, now, map[string]any{
			"change_order_id":    created.ID,
			"title":              created.Title,
			"total_amount_cents": created.TotalAmount.Cents(),
			"expires_at":         created.ExpiresAt.Format(time.RFC3339Nano),
		}))
		return nil
	})
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	return co, nil
}

func (u *JobLifecycleUseCase) ApproveChangeOrder(ctx context.Context, jobID, changeOrderID, approverID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, "approve-change-order", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		u.applySweeps(job, now, ev)
		if err := job.ApproveChangeOrder(changeOrderID, now); err != nil {
			return err
		}
		ev.add(entities.NewDomainEvent(entities.EventChangeOrderApproved, job.ID, now, map[string]any{
			"change_order_id":  changeOrderID,
			"approver_id":      approverID,
			"total_cost_cents": job.TotalCost().Cents(),
		}))
		return nil
	})
}

func (u *JobLifecycleUseCase) RejectChangeOrder(ctx context.Context, jobID, changeOrderID, approverID, reason string) (entities.Job, error) {
	return u.mutate(ctx, jobID, "reject-change-order", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		u.applySweeps(job, now, ev)
		if err := job.RejectChangeOrder(changeOrderID, reason, now); err != nil {
			return err
		}
		ev.add(entities.NewDomainEvent(entities.EventChangeOrderRejected, job.ID, now, map[string]any{
			"change_order_id": changeOrderID,
			"approver_id":     approverID,
			"reason":          reason,
		}))
		return nil
	})
}

func (u *JobLifecycleUseCase) CancelJob(ctx context.Context, jobID string, reason entities.CancellationReason) (entities.Job, error) {
	if reason == "" {
		reason = entities.CancellationReasonCustomerRequest
	}
	return u.mutate(ctx, jobID, "cancel-job", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		if err := job.Cancel(reason, now); err != nil {
			return err
		}
		ev.add(entities.NewDomainEvent(entities.EventJobCancelled, job.ID, now, map[string]any{
			"reason": string(reason),
		}))
		return nil
	})
}

// SweepExpired applies both time-based rules. Safe to invoke repeatedly or
// concurrently; a sweep with nothing to do is a no-op, not an error.
func (u *JobLifecycleUseCase) SweepExpired(ctx context.Context, jobID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, "sweep-expired", func(job *entities.Job, now time.Time, ev *eventBatch) error {
		u.applySweeps(job, now, ev)
		return nil
	})
}

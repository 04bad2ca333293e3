package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mechbid/internal/domain/entities"
	"mechbid/internal/domain/money"
	"mechbid/internal/usecase/interfaces"
	mock_interfaces "mechbid/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func testPolicy() Policy {
	p := DefaultPolicy()
	p.PaymentTimeout = time.Second
	return p
}

// memStore wires the repository mock to an in-memory job so multi-step
// scenarios observe their own writes, version checks included.
func memStore(t *testing.T, repo *mock_interfaces.MockIJobRepository, job *entities.Job) {
	t.Helper()
	repo.EXPECT().GetByID(gomock.Any(), job.ID).DoAndReturn(
		func(_ context.Context, _ string) (entities.Job, error) {
			return *job, nil
		},
	).AnyTimes()
	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
		func(_ context.Context, j entities.Job) (entities.Job, error) {
			if j.Version != job.Version {
				return entities.Job{}, interfaces.ErrVersionConflict
			}
			j.Version++
			*job = j
			return j, nil
		},
	).AnyTimes()
}

func quietPublisher(ctrl *gomock.Controller) *mock_interfaces.MockIEventPublisher {
	pub := mock_interfaces.NewMockIEventPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return pub
}

func TestCreateJob(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewJobLifecycleUseCase(nil, nil, nil, &stepClock{now: t0}, testPolicy())
		if _, err := uc.CreateJob(context.Background(), "  ", "brakes", money.FromCents(1000)); !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
		if _, err := uc.CreateJob(context.Background(), "cust-1", "brakes", money.FromCents(-1)); !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput for negative cost, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil, quietPublisher(ctrl), &stepClock{now: t0}, testPolicy())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.Status != entities.JobStatusPosted || j.CustomerID != "cust-1" {
					t.Fatalf("unexpected job: %+v", j)
				}
				return j, nil
			},
		)

		job, err := uc.CreateJob(context.Background(), "cust-1", "brakes", money.FromCents(50000))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if !job.CreatedAt.Equal(t0) {
			t.Fatalf("expected clock-driven created_at, got %s", job.CreatedAt)
		}
	})
}

func TestSubmitBid(t *testing.T) {
	t.Run("unknown job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil, nil, &stepClock{now: t0}, testPolicy())

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Job{}, nil)

		if _, err := uc.SubmitBid(context.Background(), "missing", "mech-1", money.FromCents(1000), "", 60); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("expired job stops accepting bids and the expiry is persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		clk := &stepClock{now: t0.Add(25 * time.Hour)}
		uc := NewJobLifecycleUseCase(repo, nil, quietPublisher(ctrl), clk, testPolicy())

		job := entities.NewJob("job-1", "cust-1", "brakes", money.FromCents(50000), t0)
		memStore(t, repo, &job)

		_, err := uc.SubmitBid(context.Background(), "job-1", "mech-1", money.FromCents(1000), "", 60)
		if !errors.Is(err, entities.ErrJobNotAcceptingBids) {
			t.Fatalf("expected ErrJobNotAcceptingBids, got %v", err)
		}
		if job.Status != entities.JobStatusCancelled || job.CancellationReason != entities.CancellationReasonExpired {
			t.Fatalf("sweep not persisted: %+v", job)
		}
	})
}

func TestAcceptBidSingleAcceptance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	clk := &stepClock{now: t0.Add(time.Hour)}
	uc := NewJobLifecycleUseCase(repo, nil, quietPublisher(ctrl), clk, testPolicy())

	job := entities.NewJob("job-1", "cust-1", "brakes", money.FromCents(50000), t0)
	job.SubmitBid("bid-100", "mech-1", money.FromCents(10000), "", 60, t0.Add(10*time.Minute))
	job.SubmitBid("bid-150", "mech-2", money.FromCents(15000), "", 90, t0.Add(20*time.Minute))
	memStore(t, repo, &job)

	updated, err := uc.AcceptBid(context.Background(), "job-1", "bid-150")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if updated.Status != entities.JobStatusAccepted || updated.SelectedBidID != "bid-150" || updated.SelectedMechanicID != "mech-2" {
		t.Fatalf("unexpected job: %+v", updated)
	}

	// The loser observes BidNotPending, never a second acceptance.
	if _, err := uc.AcceptBid(context.Background(), "job-1", "bid-100"); !errors.Is(err, entities.ErrBidNotPending) {
		t.Fatalf("expected ErrBidNotPending, got %v", err)
	}
	accepted := 0
	for _, b := range job.Bids {
		if b.Status == entities.BidStatusAccepted {
			accepted++
		}
	}
	if accepted != 1 {
		t.Fatalf("expected exactly one accepted bid, got %d", accepted)
	}
}

func TestSweepExpiredIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	clk := &stepClock{now: t0.Add(25 * time.Hour)}
	uc := NewJobLifecycleUseCase(repo, nil, quietPublisher(ctrl), clk, testPolicy())

	job := entities.NewJob("job-1", "cust-1", "brakes", money.FromCents(50000), t0)
	memStore(t, repo, &job)

	swept, err := uc.SweepExpired(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if swept.Status != entities.JobStatusCancelled || swept.CancellationReason != entities.CancellationReasonExpired {
		t.Fatalf("unexpected job after sweep: %+v", swept)
	}

	clk.now = t0.Add(30 * time.Hour)
	versionBefore := job.Version
	again, err := uc.SweepExpired(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if again.Status != swept.Status || job.Version != versionBefore {
		t.Fatalf("second sweep was not a no-op")
	}
}

func TestAuthorizeEscrow(t *testing.T) {
	setup := func(t *testing.T) (*JobLifecycleUseCase, *mock_interfaces.MockIPaymentGateway, *entities.Job, *stepClock) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		clk := &stepClock{now: t0.Add(time.Hour)}
		uc := NewJobLifecycleUseCase(repo, gateway, quietPublisher(ctrl), clk, testPolicy())

		job := entities.NewJob("job-1", "cust-1", "brakes", money.FromCents(50000), t0)
		job.SubmitBid("bid-1", "mech-1", money.FromCents(20000), "", 60, t0.Add(30*time.Minute))
		job.SubmitBid("bid-2", "mech-2", money.FromCents(10000), "", 60, t0.Add(40*time.Minute))
		job.AcceptBid("bid-1", t0.Add(time.Hour))
		jp := &job
		memStore(t, repo, jp)
		return uc, gateway, jp, clk
	}

	t.Run("deposit split for a 200.00 bid", func(t *testing.T) {
		uc, gateway, _, _ := setup(t)
		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), int64(3000), "BRL", gomock.Any()).Return("intent-1", nil)

		tx, err := uc.AuthorizeEscrow(context.Background(), "job-1", "bid-1")
		if err != nil {
			t.Fatalf("authorize: %v", err)
		}
		if tx.DepositAmount.Cents() != 3000 || tx.FinalBalance.Cents() != 17000 {
			t.Fatalf("unexpected split: %d / %d", tx.DepositAmount.Cents(), tx.FinalBalance.Cents())
		}
		if tx.Status != entities.EscrowStatusPending || tx.PaymentIntentID != "intent-1" {
			t.Fatalf("unexpected transaction: %+v", tx)
		}
	})

	t.Run("no double charge while pending", func(t *testing.T) {
		uc, gateway, _, _ := setup(t)
		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), int64(3000), "BRL", gomock.Any()).Return("intent-1", nil).Times(1)

		first, err := uc.AuthorizeEscrow(context.Background(), "job-1", "bid-1")
		if err != nil {
			t.Fatalf("first authorize: %v", err)
		}
		second, err := uc.AuthorizeEscrow(context.Background(), "job-1", "bid-1")
		if err != nil {
			t.Fatalf("second authorize: %v", err)
		}
		if second.PaymentIntentID != first.PaymentIntentID {
			t.Fatalf("expected the same transaction, got %s and %s", first.PaymentIntentID, second.PaymentIntentID)
		}
	})

	t.Run("failed transaction is replaced on retry", func(t *testing.T) {
		uc, gateway, _, _ := setup(t)
		gomock.InOrder(
			gateway.EXPECT().CreatePaymentIntent(gomock.Any(), int64(3000), "BRL", gomock.Any()).Return("intent-1", nil),
			gateway.EXPECT().ConfirmPaymentIntent(gomock.Any(), "intent-1").Return(interfaces.PaymentOutcomeDeclined, nil),
			gateway.EXPECT().CreatePaymentIntent(gomock.Any(), int64(3000), "BRL", gomock.Any()).Return("intent-2", nil),
		)

		if _, err := uc.AuthorizeEscrow(context.Background(), "job-1", "bid-1"); err != nil {
			t.Fatalf("authorize: %v", err)
		}
		tx, err := uc.CaptureEscrow(context.Background(), "job-1", "intent-1")
		if err != nil {
			t.Fatalf("capture: %v", err)
		}
		if tx.Status != entities.EscrowStatusFailed {
			t.Fatalf("expected failed, got %s", tx.Status)
		}

		retried, err := uc.AuthorizeEscrow(context.Background(), "job-1", "bid-1")
		if err != nil {
			t.Fatalf("retry authorize: %v", err)
		}
		if retried.PaymentIntentID != "intent-2" || retried.Status != entities.EscrowStatusPending {
			t.Fatalf("unexpected retried transaction: %+v", retried)
		}
	})

	t.Run("gateway error surfaces as authorization failure", func(t *testing.T) {
		uc, gateway, job, _ := setup(t)
		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), int64(3000), "BRL", gomock.Any()).Return("", errors.New("provider down"))

		if _, err := uc.AuthorizeEscrow(context.Background(), "job-1", "bid-1"); !errors.Is(err, ErrPaymentAuthorizationFailed) {
			t.Fatalf("expected ErrPaymentAuthorizationFailed, got %v", err)
		}
		if job.Escrow != nil {
			t.Fatalf("failed authorization must not attach a transaction")
		}
	})

	t.Run("non-accepted bid refused", func(t *testing.T) {
		uc, _, _, _ := setup(t)
		// bid-2 was bulk-rejected when bid-1 was accepted.
		if _, err := uc.AuthorizeEscrow(context.Background(), "job-1", "bid-2"); !errors.Is(err, entities.ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
		if _, err := uc.AuthorizeEscrow(context.Background(), "job-1", "bid-9"); !errors.Is(err, entities.ErrBidNotFound) {
			t.Fatalf("expected ErrBidNotFound, got %v", err)
		}
	})
}

func TestCaptureEscrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	clk := &stepClock{now: t0.Add(2 * time.Hour)}
	uc := NewJobLifecycleUseCase(repo, gateway, quietPublisher(ctrl), clk, testPolicy())

	job := entities.NewJob("job-1", "cust-1", "brakes", money.FromCents(50000), t0)
	job.SubmitBid("bid-1", "mech-1", money.FromCents(20000), "", 60, t0)
	job.AcceptBid("bid-1", t0.Add(time.Hour))
	job.BeginEscrow("bid-1", "intent-1", money.FromCents(3000), money.FromCents(17000), t0.Add(time.Hour))
	memStore(t, repo, &job)

	t.Run("unknown intent", func(t *testing.T) {
		if _, err := uc.CaptureEscrow(context.Background(), "job-1", "intent-9"); !errors.Is(err, entities.ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("approved outcome captures", func(t *testing.T) {
		gateway.EXPECT().ConfirmPaymentIntent(gomock.Any(), "intent-1").Return(interfaces.PaymentOutcomeApproved, nil)

		tx, err := uc.CaptureEscrow(context.Background(), "job-1", "intent-1")
		if err != nil {
			t.Fatalf("capture: %v", err)
		}
		if tx.Status != entities.EscrowStatusCaptured {
			t.Fatalf("expected captured, got %s", tx.Status)
		}
		if job.Status != entities.JobStatusAccepted {
			t.Fatalf("capture must not move the job, got %s", job.Status)
		}
	})

	t.Run("double capture refused", func(t *testing.T) {
		if _, err := uc.CaptureEscrow(context.Background(), "job-1", "intent-1"); !errors.Is(err, entities.ErrPaymentAlreadyCaptured) {
			t.Fatalf("expected ErrPaymentAlreadyCaptured, got %v", err)
		}
	})
}

func TestChangeOrderLifecycle(t *testing.T) {
	newUC := func(t *testing.T, clk *stepClock) (*JobLifecycleUseCase, *entities.Job) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil, quietPublisher(ctrl), clk, testPolicy())

		job := entities.NewJob("job-1", "cust-1", "brakes", money.FromCents(50000), t0)
		job.SubmitBid("bid-1", "mech-1", money.FromCents(20000), "", 60, t0)
		job.AcceptBid("bid-1", t0.Add(time.Hour))
		job.ConfirmSchedule(t0.Add(2 * time.Hour))
		job.StartWork(t0.Add(3 * time.Hour))
		jp := &job
		memStore(t, repo, jp)
		return uc, jp
	}

	t.Run("invalid input", func(t *testing.T) {
		uc, _ := newUC(t, &stepClock{now: t0.Add(4 * time.Hour)})
		_, err := uc.CreateChangeOrder(context.Background(), "job-1", ChangeOrderInput{Title: "  ", TotalAmount: money.FromCents(100)})
		if !errors.Is(err, ErrInvalidChangeOrderInput) {
			t.Fatalf("expected ErrInvalidChangeOrderInput, got %v", err)
		}
		_, err = uc.CreateChangeOrder(context.Background(), "job-1", ChangeOrderInput{Title: "x", TotalAmount: money.FromCents(-1)})
		if !errors.Is(err, ErrInvalidChangeOrderInput) {
			t.Fatalf("expected ErrInvalidChangeOrderInput for negative amount, got %v", err)
		}
	})

	t.Run("expired change order excludes its cost", func(t *testing.T) {
		clk := &stepClock{now: t0.Add(4 * time.Hour)}
		uc, job := newUC(t, clk)

		co, err := uc.CreateChangeOrder(context.Background(), "job-1", ChangeOrderInput{Title: "extra pads", TotalAmount: money.FromCents(5000), MechanicName: "Sam"})
		if err != nil {
			t.Fatalf("create change order: %v", err)
		}
		if job.Status != entities.JobStatusPendingApproval {
			t.Fatalf("expected pending, got %s", job.Status)
		}

		clk.now = co.ExpiresAt.Add(time.Minute)
		swept, err := uc.SweepExpired(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("sweep: %v", err)
		}
		if swept.Status != entities.JobStatusInProgress {
			t.Fatalf("job should resume after expiry, got %s", swept.Status)
		}
		if swept.TotalCost().Cents() != 50000 {
			t.Fatalf("expired change order must not count, got %d", swept.TotalCost().Cents())
		}

		// Late approval after the sweep is a clean no-op error.
		if _, err := uc.ApproveChangeOrder(context.Background(), "job-1", co.ID, "cust-1"); !errors.Is(err, entities.ErrChangeOrderNotPending) {
			t.Fatalf("expected ErrChangeOrderNotPending, got %v", err)
		}
	})

	t.Run("late approval both expires and reports not pending", func(t *testing.T) {
		clk := &stepClock{now: t0.Add(4 * time.Hour)}
		uc, job := newUC(t, clk)

		co, err := uc.CreateChangeOrder(context.Background(), "job-1", ChangeOrderInput{Title: "extra", TotalAmount: money.FromCents(5000)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		clk.now = co.ExpiresAt.Add(time.Minute)
		if _, err := uc.ApproveChangeOrder(context.Background(), "job-1", co.ID, "cust-1"); !errors.Is(err, entities.ErrChangeOrderNotPending) {
			t.Fatalf("expected ErrChangeOrderNotPending, got %v", err)
		}
		// The sweep applied on the way to the failed guard was persisted.
		if job.ChangeOrderByID(co.ID).Status != entities.ChangeOrderStatusExpired {
			t.Fatalf("expected expired change order, got %s", job.ChangeOrderByID(co.ID).Status)
		}
		if job.Status != entities.JobStatusInProgress {
			t.Fatalf("expected in_progress, got %s", job.Status)
		}
	})

	t.Run("approve adds cost", func(t *testing.T) {
		clk := &stepClock{now: t0.Add(4 * time.Hour)}
		uc, _ := newUC(t, clk)

		co, err := uc.CreateChangeOrder(context.Background(), "job-1", ChangeOrderInput{Title: "extra", TotalAmount: money.FromCents(5000)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		clk.now = clk.now.Add(time.Hour)
		updated, err := uc.ApproveChangeOrder(context.Background(), "job-1", co.ID, "cust-1")
		if err != nil {
			t.Fatalf("approve: %v", err)
		}
		if updated.TotalCost().Cents() != 55000 {
			t.Fatalf("expected 55000, got %d", updated.TotalCost().Cents())
		}
	})
}

func TestMutateRetriesVersionConflictOnce(t *testing.T) {
	t.Run("retry succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil, quietPublisher(ctrl), &stepClock{now: t0.Add(time.Hour)}, testPolicy())

		// Each load must be independent: the repository contract returns a
		// fresh value per GetByID, and returning the same Job twice would
		// alias the Bids backing array across attempts.
		freshJob := func(context.Context, string) (entities.Job, error) {
			job := entities.NewJob("job-1", "cust-1", "brakes", money.FromCents(50000), t0)
			job.SubmitBid("bid-1", "mech-1", money.FromCents(20000), "", 60, t0)
			return job, nil
		}

		repo.EXPECT().GetByID(gomock.Any(), "job-1").DoAndReturn(freshJob).Times(2)
		gomock.InOrder(
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Job{}, interfaces.ErrVersionConflict),
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
			),
		)

		if _, err := uc.AcceptBid(context.Background(), "job-1", "bid-1"); err != nil {
			t.Fatalf("expected retry to succeed, got %v", err)
		}
	})

	t.Run("second conflict surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobLifecycleUseCase(repo, nil, nil, &stepClock{now: t0.Add(time.Hour)}, testPolicy())

		freshJob := func(context.Context, string) (entities.Job, error) {
			job := entities.NewJob("job-1", "cust-1", "brakes", money.FromCents(50000), t0)
			job.SubmitBid("bid-1", "mech-1", money.FromCents(20000), "", 60, t0)
			return job, nil
		}

		repo.EXPECT().GetByID(gomock.Any(), "job-1").DoAndReturn(freshJob).Times(2)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Job{}, interfaces.ErrVersionConflict).Times(2)

		if _, err := uc.AcceptBid(context.Background(), "job-1", "bid-1"); !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestPublishFailureDoesNotRollBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	pub := mock_interfaces.NewMockIEventPublisher(ctrl)
	uc := NewJobLifecycleUseCase(repo, nil, pub, &stepClock{now: t0.Add(time.Hour)}, testPolicy())

	job := entities.NewJob("job-1", "cust-1", "brakes", money.FromCents(50000), t0)
	job.SubmitBid("bid-1", "mech-1", money.FromCents(20000), "", 60, t0)
	memStore(t, repo, &job)

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("sink down")).AnyTimes()

	updated, err := uc.AcceptBid(context.Background(), "job-1", "bid-1")
	if err != nil {
		t.Fatalf("publish failure must not fail the transition: %v", err)
	}
	if updated.Status != entities.JobStatusAccepted {
		t.Fatalf("unexpected status %s", updated.Status)
	}
}

package entities

import (
	"errors"
	"testing"
	"time"

	"mechbid/internal/domain/money"
)

const approvalWindow = 24 * time.Hour

func newInProgressJob() Job {
	j := newTestJob()
	j.SubmitBid("bid-1", "mech-1", money.FromCents(20000), "", 60, t0)
	j.AcceptBid("bid-1", t0.Add(time.Hour))
	j.ConfirmSchedule(t0.Add(2 * time.Hour))
	j.StartWork(t0.Add(3 * time.Hour))
	return j
}

func TestCreateChangeOrder(t *testing.T) {
	t.Run("job gates on approval", func(t *testing.T) {
		j := newInProgressJob()
		now := t0.Add(4 * time.Hour)
		co, err := j.CreateChangeOrder("co-1", "replace rotor", "rotor below spec", "found during service", money.FromCents(5000), "Sam", now, approvalWindow)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if co.Status != ChangeOrderStatusPending || !co.ExpiresAt.Equal(now.Add(approvalWindow)) {
			t.Fatalf("unexpected change order: %+v", co)
		}
		if j.Status != JobStatusPendingApproval {
			t.Fatalf("expected pending, got %s", j.Status)
		}
	})

	t.Run("second pending change order refused", func(t *testing.T) {
		j := newInProgressJob()
		j.CreateChangeOrder("co-1", "a", "", "", money.FromCents(5000), "Sam", t0.Add(4*time.Hour), approvalWindow)
		// job now pending, so status guard fires first
		_, err := j.CreateChangeOrder("co-2", "b", "", "", money.FromCents(1000), "Sam", t0.Add(4*time.Hour), approvalWindow)
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("exclusivity when a pending sibling lingers", func(t *testing.T) {
		j := newInProgressJob()
		j.CreateChangeOrder("co-1", "a", "", "", money.FromCents(5000), "Sam", t0.Add(4*time.Hour), approvalWindow)
		// Force the status back without resolving, as a concurrent writer would see it.
		j.Status = JobStatusInProgress
		_, err := j.CreateChangeOrder("co-2", "b", "", "", money.FromCents(1000), "Sam", t0.Add(5*time.Hour), approvalWindow)
		if !errors.Is(err, ErrChangeOrderAlreadyExists) {
			t.Fatalf("expected ErrChangeOrderAlreadyExists, got %v", err)
		}
	})

	t.Run("not allowed outside in_progress", func(t *testing.T) {
		j := newTestJob()
		_, err := j.CreateChangeOrder("co-1", "a", "", "", money.FromCents(5000), "Sam", t0, approvalWindow)
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})
}

func TestResolveChangeOrder(t *testing.T) {
	create := func() (Job, ChangeOrder) {
		j := newInProgressJob()
		co, _ := j.CreateChangeOrder("co-1", "extra", "", "", money.FromCents(5000), "Sam", t0.Add(4*time.Hour), approvalWindow)
		return j, co
	}

	t.Run("approve resumes job and adds cost", func(t *testing.T) {
		j, co := create()
		if err := j.ApproveChangeOrder(co.ID, t0.Add(5*time.Hour)); err != nil {
			t.Fatalf("approve: %v", err)
		}
		if j.Status != JobStatusInProgress {
			t.Fatalf("expected in_progress, got %s", j.Status)
		}
		if j.TotalCost() != money.FromCents(55000) {
			t.Fatalf("expected cost 55000, got %d", j.TotalCost().Cents())
		}
	})

	t.Run("reject resumes job without cost", func(t *testing.T) {
		j, co := create()
		if err := j.RejectChangeOrder(co.ID, "too expensive", t0.Add(5*time.Hour)); err != nil {
			t.Fatalf("reject: %v", err)
		}
		if j.Status != JobStatusInProgress {
			t.Fatalf("expected in_progress, got %s", j.Status)
		}
		if j.TotalCost() != money.FromCents(50000) {
			t.Fatalf("rejected change order must not count, got %d", j.TotalCost().Cents())
		}
		if j.ChangeOrderByID(co.ID).RejectionReason != "too expensive" {
			t.Fatalf("rejection reason not recorded")
		}
	})

	t.Run("double resolution is refused", func(t *testing.T) {
		j, co := create()
		j.ApproveChangeOrder(co.ID, t0.Add(5*time.Hour))
		if err := j.ApproveChangeOrder(co.ID, t0.Add(5*time.Hour)); !errors.Is(err, ErrChangeOrderNotPending) {
			t.Fatalf("expected ErrChangeOrderNotPending, got %v", err)
		}
		if err := j.RejectChangeOrder(co.ID, "", t0.Add(5*time.Hour)); !errors.Is(err, ErrChangeOrderNotPending) {
			t.Fatalf("expected ErrChangeOrderNotPending, got %v", err)
		}
	})

	t.Run("late approval expires in place", func(t *testing.T) {
		j, co := create()
		err := j.ApproveChangeOrder(co.ID, t0.Add(4*time.Hour).Add(approvalWindow))
		if !errors.Is(err, ErrChangeOrderNotPending) {
			t.Fatalf("expected ErrChangeOrderNotPending, got %v", err)
		}
		if j.ChangeOrderByID(co.ID).Status != ChangeOrderStatusExpired {
			t.Fatalf("late approval should expire the change order")
		}
		if j.Status != JobStatusInProgress {
			t.Fatalf("job should resume after expiry, got %s", j.Status)
		}
	})
}

func TestSweepChangeOrders(t *testing.T) {
	j := newInProgressJob()
	created := t0.Add(4 * time.Hour)
	co, _ := j.CreateChangeOrder("co-1", "extra", "", "", money.FromCents(5000), "Sam", created, approvalWindow)

	t.Run("before the window nothing happens", func(t *testing.T) {
		if _, swept := j.SweepChangeOrders(created.Add(time.Hour)); swept {
			t.Fatalf("unexpected sweep inside the window")
		}
	})

	t.Run("after the window the order expires and cost is excluded", func(t *testing.T) {
		id, swept := j.SweepChangeOrders(created.Add(approvalWindow))
		if !swept || id != co.ID {
			t.Fatalf("expected sweep of %s, got %q %v", co.ID, id, swept)
		}
		if j.Status != JobStatusInProgress {
			t.Fatalf("job should return to in_progress, got %s", j.Status)
		}
		if j.TotalCost() != money.FromCents(50000) {
			t.Fatalf("expired change order must not count, got %d", j.TotalCost().Cents())
		}
	})

	t.Run("repeat sweep is a no-op", func(t *testing.T) {
		if _, swept := j.SweepChangeOrders(created.Add(2 * approvalWindow)); swept {
			t.Fatalf("expected no-op on second sweep")
		}
	})
}

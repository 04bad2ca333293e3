package entities

import (
	"errors"
	"testing"
	"time"

	"mechbid/internal/domain/money"
)

func TestSubmitBid(t *testing.T) {
	t.Run("first bid moves job into bidding", func(t *testing.T) {
		j := newTestJob()
		b, err := j.SubmitBid("bid-1", "mech-1", money.FromCents(10000), "can do today", 120, t0.Add(time.Minute))
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if b.Status != BidStatusPending || b.JobID != "job-1" {
			t.Fatalf("unexpected bid: %+v", b)
		}
		if j.Status != JobStatusBidding {
			t.Fatalf("expected bidding, got %s", j.Status)
		}
	})

	t.Run("duplicate pending bid per mechanic refused", func(t *testing.T) {
		j := newTestJob()
		j.SubmitBid("bid-1", "mech-1", money.FromCents(10000), "", 60, t0)
		_, err := j.SubmitBid("bid-2", "mech-1", money.FromCents(9000), "", 60, t0)
		if !errors.Is(err, ErrDuplicatePendingBid) {
			t.Fatalf("expected ErrDuplicatePendingBid, got %v", err)
		}
		if len(j.Bids) != 1 {
			t.Fatalf("failed submit mutated ledger: %d bids", len(j.Bids))
		}
	})

	t.Run("re-bid allowed after withdrawal", func(t *testing.T) {
		j := newTestJob()
		j.SubmitBid("bid-1", "mech-1", money.FromCents(10000), "", 60, t0)
		if err := j.WithdrawBid("bid-1", t0.Add(time.Minute)); err != nil {
			t.Fatalf("withdraw: %v", err)
		}
		if _, err := j.SubmitBid("bid-2", "mech-1", money.FromCents(9500), "", 60, t0.Add(2*time.Minute)); err != nil {
			t.Fatalf("re-bid after withdrawal: %v", err)
		}
	})

	t.Run("non-bidding job refuses bids", func(t *testing.T) {
		j := newTestJob()
		j.Cancel(CancellationReasonCustomerRequest, t0)
		_, err := j.SubmitBid("bid-1", "mech-1", money.FromCents(10000), "", 60, t0)
		if !errors.Is(err, ErrJobNotAcceptingBids) {
			t.Fatalf("expected ErrJobNotAcceptingBids, got %v", err)
		}
	})
}

func TestAcceptBid(t *testing.T) {
	setup := func() Job {
		j := newTestJob()
		j.SubmitBid("bid-100", "mech-1", money.FromCents(10000), "", 60, t0)
		j.SubmitBid("bid-150", "mech-2", money.FromCents(15000), "", 90, t0)
		return j
	}

	t.Run("accept rejects every sibling in the same operation", func(t *testing.T) {
		j := setup()
		accepted, err := j.AcceptBid("bid-150", t0.Add(time.Hour))
		if err != nil {
			t.Fatalf("accept: %v", err)
		}
		if accepted.Status != BidStatusAccepted {
			t.Fatalf("unexpected accepted bid: %+v", accepted)
		}
		if j.Status != JobStatusAccepted || j.SelectedBidID != "bid-150" || j.SelectedMechanicID != "mech-2" {
			t.Fatalf("unexpected job: %+v", j)
		}
		if j.BidByID("bid-100").Status != BidStatusRejected {
			t.Fatalf("sibling bid not rejected")
		}
	})

	t.Run("second accept observes BidNotPending", func(t *testing.T) {
		j := setup()
		if _, err := j.AcceptBid("bid-150", t0.Add(time.Hour)); err != nil {
			t.Fatalf("first accept: %v", err)
		}
		_, err := j.AcceptBid("bid-100", t0.Add(time.Hour))
		if !errors.Is(err, ErrBidNotPending) {
			t.Fatalf("expected ErrBidNotPending, got %v", err)
		}
	})

	t.Run("at most one accepted bid ever", func(t *testing.T) {
		j := setup()
		j.AcceptBid("bid-150", t0.Add(time.Hour))
		j.AcceptBid("bid-100", t0.Add(time.Hour))
		acceptedCount := 0
		for _, b := range j.Bids {
			if b.Status == BidStatusAccepted {
				acceptedCount++
			}
		}
		if acceptedCount != 1 {
			t.Fatalf("expected exactly one accepted bid, got %d", acceptedCount)
		}
	})

	t.Run("unknown bid", func(t *testing.T) {
		j := setup()
		_, err := j.AcceptBid("bid-missing", t0)
		if !errors.Is(err, ErrBidNotFound) {
			t.Fatalf("expected ErrBidNotFound, got %v", err)
		}
	})

	t.Run("withdrawn bid cannot be accepted", func(t *testing.T) {
		j := setup()
		j.WithdrawBid("bid-100", t0)
		_, err := j.AcceptBid("bid-100", t0)
		if !errors.Is(err, ErrBidNotPending) {
			t.Fatalf("expected ErrBidNotPending, got %v", err)
		}
		if j.Status != JobStatusBidding {
			t.Fatalf("failed accept mutated job: %s", j.Status)
		}
	})
}

func TestLowestPendingBid(t *testing.T) {
	j := newTestJob()
	if j.LowestPendingBid() != nil {
		t.Fatalf("empty ledger has no lowest bid")
	}
	j.SubmitBid("bid-1", "mech-1", money.FromCents(15000), "", 60, t0)
	j.SubmitBid("bid-2", "mech-2", money.FromCents(10000), "", 60, t0)
	j.SubmitBid("bid-3", "mech-3", money.FromCents(12000), "", 60, t0)
	j.WithdrawBid("bid-2", t0)

	lowest := j.LowestPendingBid()
	if lowest == nil || lowest.ID != "bid-3" {
		t.Fatalf("expected bid-3 as lowest pending, got %+v", lowest)
	}
}

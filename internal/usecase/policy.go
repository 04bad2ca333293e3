package usecase

import (
	"os"
	"strconv"
	"time"
)

// Policy carries the product constants of the marketplace as named, testable
// parameters. Defaults match the launch product rules: 15% escrow deposit,
// 24h bidding window, 24h change-order approval window, 2h "expiring soon"
// hint.

type Policy struct {
	EscrowDepositBps  int64
	JobExpiryWindow   time.Duration
	ChangeOrderWindow time.Duration
	ExpiringSoonHint  time.Duration
	PaymentTimeout    time.Duration
	Currency          string
}

func DefaultPolicy() Policy {
	return Policy{
		EscrowDepositBps:  1500,
		JobExpiryWindow:   24 * time.Hour,
		ChangeOrderWindow: 24 * time.Hour,
		ExpiringSoonHint:  2 * time.Hour,
		PaymentTimeout:    10 * time.Second,
		Currency:          "BRL",
	}
}

// PolicyFromEnv overlays environment overrides on the defaults.
//
// Supported env vars:
//   - ESCROW_DEPOSIT_BPS (basis points, default 1500)
//   - JOB_EXPIRY_HOURS (default 24)
//   - CHANGE_ORDER_WINDOW_HOURS (default 24)
//   - PAYMENT_TIMEOUT_SECONDS (default 10)
//   - CURRENCY (default BRL)
func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	if v := getenvInt64("ESCROW_DEPOSIT_BPS"); v > 0 {
		p.EscrowDepositBps = v
	}
	if v := getenvInt64("JOB_EXPIRY_HOURS"); v > 0 {
		p.JobExpiryWindow = time.Duration(v) * time.Hour
	}
	if v := getenvInt64("CHANGE_ORDER_WINDOW_HOURS"); v > 0 {
		p.ChangeOrderWindow = time.Duration(v) * time.Hour
	}
	if v := getenvInt64("PAYMENT_TIMEOUT_SECONDS"); v > 0 {
		p.PaymentTimeout = time.Duration(v) * time.Second
	}
	if v := os.Getenv("CURRENCY"); v != "" {
		p.Currency = v
	}
	return p
}

func getenvInt64(key string) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

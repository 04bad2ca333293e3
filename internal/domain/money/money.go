package money

import (
	"fmt"
	"math"
)

// Money is an amount in integer minor units (cents).
//
// All marketplace accounting runs on Money; float64 appears only at the API
// boundary. Arithmetic on Money is exact, so sums of splits always equal the
// original amount.

type Money int64

func FromCents(c int64) Money {
	return Money(c)
}

// FromFloat converts an API-facing amount in whole currency units to cents,
// rounding half away from zero.
func FromFloat(v float64) Money {
	return Money(int64(math.Round(v * 100)))
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Add(o Money) Money {
	return m + o
}

func (m Money) Sub(o Money) Money {
	return m - o
}

// MulBasisPoints multiplies by rate/10000 and rounds half up.
// Amounts are expected to be non-negative.
func (m Money) MulBasisPoints(bps int64) Money {
	return Money((m.Cents()*bps + 5000) / 10000)
}

func (m Money) Float64() float64 {
	return float64(m) / 100
}

func (m Money) IsZero() bool {
	return m == 0
}

func (m Money) IsNegative() bool {
	return m < 0
}

func (m Money) String() string {
	c := int64(m)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// Split takes a rate share (in basis points) of amount, rounded half up, and
// returns it together with the exact remainder. deposit+remainder == amount
// always holds; the remainder is defined by subtraction, never by a second
// rounding.
func Split(amount Money, rateBps int64) (deposit, remainder Money) {
	deposit = amount.MulBasisPoints(rateBps)
	return deposit, amount.Sub(deposit)
}

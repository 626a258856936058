package expense

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RemainderPolicy decides what happens to the cents lost when a total does
// not divide evenly among participants.
type RemainderPolicy string

const (
	// RemainderNone gives every participant the identical rounded share.
	// The shares may then sum to slightly more or less than the total.
	RemainderNone RemainderPolicy = "none"
	// RemainderFirst hands out the leftover cents one at a time, starting
	// with the first participant, so the shares sum to the total rounded to
	// cents. No share differs from another by more than one cent.
	RemainderFirst RemainderPolicy = "first"
)

// Policies lists the accepted remainder policies.
var Policies = []RemainderPolicy{RemainderNone, RemainderFirst}

// ParsePolicy converts a config value to a RemainderPolicy.
// An empty string selects RemainderNone.
func ParsePolicy(s string) (RemainderPolicy, error) {
	switch RemainderPolicy(s) {
	case "", RemainderNone:
		return RemainderNone, nil
	case RemainderFirst:
		return RemainderFirst, nil
	}
	return "", fmt.Errorf("unknown remainder policy %q (want none or first)", s)
}

// SplitEqually divides amount into n shares rounded to cents, half away
// from zero. n must be positive.
func SplitEqually(amount decimal.Decimal, n int, policy RemainderPolicy) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	if policy == RemainderFirst {
		return spreadCents(amount.Round(2), n)
	}

	share := amount.Div(decimal.NewFromInt(int64(n))).Round(2)
	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = share
	}
	return shares
}

// spreadCents splits total (already in whole cents) into n shares whose
// magnitudes differ by at most one cent. The earlier shares take the extra
// cents, and every share keeps the sign of total.
func spreadCents(total decimal.Decimal, n int) []decimal.Decimal {
	cents := total.Shift(2).IntPart()
	sign := int64(1)
	if cents < 0 {
		sign, cents = -1, -cents
	}
	base, extra := cents/int64(n), cents%int64(n)

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		c := base
		if int64(i) < extra {
			c++
		}
		shares[i] = decimal.New(sign*c, -2)
	}
	return shares
}

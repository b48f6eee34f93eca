package model

import (
	"fmt"
	"math"
)

// HBC is an amount of the in-world currency expressed in hundredths of
// one HBC (cents).  Balances, ticket prices and revenue counters all use
// this integer representation so that splitting a price between two
// parties never leaks a fraction.
type HBC int64

// HBCFromUnits converts a whole-and-fraction amount (e.g. 10.5) into HBC
// cents, rounding half away from zero.
func HBCFromUnits(units float64) HBC {
	return HBC(math.Round(units * 100))
}

// Units returns the amount as a float in whole HBC.  It is intended for
// display only.
func (h HBC) Units() float64 { return float64(h) / 100 }

// MaxTicketPrice bounds ticket prices so that price*split is computed
// exactly in float64.
const MaxTicketPrice HBC = 1 << 53

// Share returns round(h * fraction) for a fraction in [0,1].  The result
// is clamped to [0, h] for non-negative h.  The caller derives the
// remainder by subtraction.
func (h HBC) Share(fraction float64) HBC {
	f := math.Round(float64(h) * fraction)
	if h >= 0 {
		if f >= float64(h) {
			return h
		}
		if f <= 0 {
			return 0
		}
	}
	return HBC(f)
}

// Add returns h+d and false if the sum overflows.
func (h HBC) Add(d HBC) (HBC, bool) {
	sum, ok := AddInt64(int64(h), int64(d))
	return HBC(sum), ok
}

// AddInt64 returns a+b and false if the sum overflows.
func AddInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// AddInt returns a+b and false if the sum overflows int.
func AddInt(a, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, false
	}
	return a + b, true
}

// String formats the amount as "12.34".
func (h HBC) String() string {
	sign := ""
	v := int64(h)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

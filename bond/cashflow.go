package bond

import (
	"fmt"
	"math"
)

// Schedule is an ordered bond cash-flow schedule under discrete compounding.
//
// Index k holds the payment of period k+1 (one payment per compounding
// period). Schedules built from bond terms carry the redemption in the final
// element: schedule[n-1] == coupon + par. A Schedule is never mutated after
// construction.
type Schedule []float64

// BuildSchedule returns the cash-flow schedule of a bullet bond paying
// years*m equal coupons of par*couponRate/m, with par redeemed alongside the
// final coupon.
//
// A non-positive tenor or compounding frequency yields an empty schedule;
// this is a defined result, not an error.
func BuildSchedule(par, couponRate float64, years, m int) Schedule {
	if m <= 0 || years <= 0 {
		return Schedule{}
	}

	n := years * m
	c := par * couponRate / float64(m)

	cf := make(Schedule, n)
	for i := range cf {
		cf[i] = c
	}
	cf[n-1] += par
	return cf
}

// PresentValue discounts a cash-flow schedule at annualYield compounded m
// times per year.
//
// With levelAnnuity, schedule[0] is treated as a constant per-period coupon
// over n = years*m periods and the closed-form annuity factor is used, plus
// the discounted redemption of par. Otherwise every element is discounted at
// its own period index, and if the schedule is shorter than n the redemption
// of par is additionally discounted at period n.
func PresentValue(schedule Schedule, annualYield, par float64, years, m int, levelAnnuity bool) (float64, error) {
	if years < 0 || m <= 0 {
		return 0, fmt.Errorf("PresentValue: years must be >= 0 and m > 0: %w", ErrInvalidInput)
	}

	n := years * m
	r := annualYield / float64(m)
	if r <= -1 {
		return 0, fmt.Errorf("PresentValue: rate <= -100%% per period: %w", ErrInvalidInput)
	}

	if levelAnnuity {
		if n <= 0 || len(schedule) == 0 {
			return 0, nil
		}
		c := schedule[0]
		dfN := math.Pow(1+r, -float64(n))
		annuity := float64(n)
		if r != 0 {
			annuity = (1 - dfN) / r
		}
		return c*annuity + par*dfN, nil
	}

	pv := 0.0
	for k, cf := range schedule {
		pv += cf * math.Pow(1+r, -float64(k+1))
	}

	// Redemption top-up when the schedule carries coupons only.
	if n > 0 && len(schedule) < n {
		pv += par * math.Pow(1+r, -float64(n))
	}
	return pv, nil
}

// PriceFromYield discounts a schedule at annualYield compounded m times per
// year using a running discount factor. It is the inverse of
// InternalRateReturn for a fixed schedule.
func PriceFromYield(schedule Schedule, annualYield float64, m int) float64 {
	r := annualYield / float64(m)

	pv := 0.0
	disc := 1.0
	for _, cf := range schedule {
		disc *= 1 + r
		pv += cf / disc
	}
	return pv
}

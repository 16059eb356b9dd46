package bond

import (
	"fmt"
	"math"
)

const (
	// irrMaxExpand bounds the bracket-expansion search.
	irrMaxExpand = 128
	// irrMaxBisect bounds the bisection refinement.
	irrMaxBisect = 256
	// irrRateCeiling caps the per-period rate search range (1000%/period).
	irrRateCeiling = 10.0
	// irrTolerance is the relative bracket width at which refinement stops
	// (a few bits above machine epsilon).
	irrTolerance = 1e-13
)

// InternalRateReturn solves for the annualized yield that reprices a bond
// cash-flow schedule to an observed price.
//
// When schedule is empty it is synthesized from the bond terms with
// couponRate as the coupon. The solver works on the per-period rate rp: it
// expands a bracket around the initial guess couponRate/m until the pricing
// residual changes sign, refines the bracket by bisection, and annualizes
// the bracket midpoint via (1+rp)^m - 1.
//
// A price incompatible with any per-period rate in (-1, 10] yields
// ErrNoConvergence; the solver never returns an unbracketed best guess.
func InternalRateReturn(schedule Schedule, price, couponRate, par float64, years, m int) (float64, error) {
	if m <= 0 {
		m = 1
	}

	cf := schedule
	if len(cf) == 0 {
		cf = BuildSchedule(par, couponRate, years, m)
	}
	if len(cf) == 0 {
		return 0, fmt.Errorf("InternalRateReturn: no cash flows: %w", ErrInvalidInput)
	}
	if price <= 0 {
		return 0, fmt.Errorf("InternalRateReturn: price must be > 0: %w", ErrInvalidInput)
	}

	// Pricing residual over the per-period rate. Strictly decreasing in rp
	// for non-negative cash flows; infeasible rates price at +Inf so the
	// search never crosses rp = -1.
	f := func(rp float64) float64 {
		if rp <= -1 {
			return math.Inf(1)
		}
		v := 0.0
		df := 1.0
		inv := 1 / (1 + rp)
		for _, c := range cf {
			df *= inv
			v += c * df
		}
		return v - price
	}

	guess := couponRate / float64(m)
	if math.IsNaN(guess) || math.IsInf(guess, 0) {
		guess = 0.05 / float64(m)
	}
	if guess <= -0.9 {
		guess = -0.5
	}
	guess = math.Min(math.Max(guess, -1+1e-12), irrRateCeiling)

	lo, hi, err := bracketRate(f, guess)
	if err != nil {
		return 0, err
	}
	lo, hi, err = bisectRate(f, lo, hi)
	if err != nil {
		return 0, err
	}

	rp := (lo + hi) / 2
	return math.Pow(1+rp, float64(m)) - 1, nil
}

// ---------------------------------------------------------------------------
// bracketing root-finder (unexported)
// ---------------------------------------------------------------------------

// bracketRate expands an interval from guess, doubling the step each round,
// until the residual changes sign. The residual is decreasing, so a positive
// value sends the search up and a negative value sends it down toward the
// rp = -1 asymptote.
func bracketRate(f func(float64) float64, guess float64) (float64, float64, error) {
	fg := f(guess)
	if fg == 0 {
		return guess, guess, nil
	}

	step := math.Max(math.Abs(guess), 0.0625)

	if fg > 0 {
		lo, hi := guess, guess
		for i := 0; i < irrMaxExpand; i++ {
			lo = hi
			hi = math.Min(hi+step, irrRateCeiling)
			if f(hi) <= 0 {
				return lo, hi, nil
			}
			if hi >= irrRateCeiling {
				break
			}
			step *= 2
		}
		return 0, 0, fmt.Errorf("InternalRateReturn: no sign change up to rate %g: %w", irrRateCeiling, ErrNoConvergence)
	}

	lo, hi := guess, guess
	for i := 0; i < irrMaxExpand; i++ {
		hi = lo
		lo = math.Max(lo-step, -1+1e-15)
		if f(lo) >= 0 {
			return lo, hi, nil
		}
		if lo <= -1+1e-15 {
			break
		}
		step *= 2
	}
	return 0, 0, fmt.Errorf("InternalRateReturn: no sign change down to rate -100%%: %w", ErrNoConvergence)
}

// bisectRate refines a bracket with f(lo) >= 0 >= f(hi) until its relative
// width reaches irrTolerance.
func bisectRate(f func(float64) float64, lo, hi float64) (float64, float64, error) {
	if lo == hi {
		return lo, hi, nil
	}

	for i := 0; i < irrMaxBisect; i++ {
		if hi-lo <= irrTolerance*math.Max(1, math.Max(math.Abs(lo), math.Abs(hi))) {
			return lo, hi, nil
		}
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			// Interval no longer splittable in float64.
			return lo, hi, nil
		}
		fm := f(mid)
		switch {
		case fm == 0:
			return mid, mid, nil
		case fm > 0:
			lo = mid
		default:
			hi = mid
		}
	}
	return 0, 0, fmt.Errorf("InternalRateReturn: bracket not refined after %d bisections: %w", irrMaxBisect, ErrNoConvergence)
}

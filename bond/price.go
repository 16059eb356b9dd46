package bond

import (
	"fmt"
	"math"
)

// Per-period rates with magnitude below rateEpsilon are treated as zero in
// the dirty-price closed form, which otherwise divides by r.
const rateEpsilon = 1e-15

// ZeroCouponPrice prices a zero-coupon bond redeeming par after
// yearsToMaturity years at annualYield compounded m times per year.
//
// Integral period counts use explicit power accumulation; fractional
// maturities fall back to real exponentiation.
func ZeroCouponPrice(par, annualYield, yearsToMaturity float64, m int) (float64, error) {
	if par <= 0 {
		return 0, fmt.Errorf("ZeroCouponPrice: par must be > 0: %w", ErrInvalidInput)
	}
	if yearsToMaturity < 0 {
		return 0, fmt.Errorf("ZeroCouponPrice: yearsToMaturity must be >= 0: %w", ErrInvalidInput)
	}
	if m <= 0 {
		return 0, fmt.Errorf("ZeroCouponPrice: m must be > 0: %w", ErrInvalidInput)
	}

	r := annualYield / float64(m)
	n := float64(m) * yearsToMaturity

	if n == math.Trunc(n) {
		df := 1.0
		for i := 0; i < int(n); i++ {
			df *= 1 + r
		}
		return par / df, nil
	}
	return par / math.Pow(1+r, n), nil
}

// CouponBondPrice prices a coupon bond by discounting floor(T*m) full coupon
// periods and, when a fractional stub period remains, a final payment of
// par + coupon*frac at the stub date.
func CouponBondPrice(par, couponRate, annualYield, yearsToMaturity float64, m int) (float64, error) {
	if par <= 0 {
		return 0, fmt.Errorf("CouponBondPrice: par must be > 0: %w", ErrInvalidInput)
	}
	if couponRate < 0 {
		return 0, fmt.Errorf("CouponBondPrice: couponRate must be >= 0: %w", ErrInvalidInput)
	}
	if yearsToMaturity < 0 {
		return 0, fmt.Errorf("CouponBondPrice: yearsToMaturity must be >= 0: %w", ErrInvalidInput)
	}
	if m <= 0 {
		return 0, fmt.Errorf("CouponBondPrice: m must be > 0: %w", ErrInvalidInput)
	}

	r := annualYield / float64(m)
	c := par * couponRate / float64(m)

	periods := yearsToMaturity * float64(m)
	full := int(math.Floor(periods))
	frac := periods - float64(full)

	pv := 0.0
	disc := 1.0
	for k := 0; k < full; k++ {
		disc *= 1 + r
		pv += c / disc
	}

	if frac > 0 {
		pv += (par + c*frac) * math.Pow(1+r, -periods)
	} else {
		pv += par / disc
	}
	return pv, nil
}

// ForwardValue grows price at the continuously compounded annualYield for
// years. Defined for all finite inputs.
func ForwardValue(price, annualYield, years float64) float64 {
	return price * math.Exp(annualYield*years)
}

// YieldFromForward recovers the continuously compounded yield implied by a
// spot price and its forward value after years.
func YieldFromForward(price, forward, years float64) (float64, error) {
	if price <= 0 || forward <= 0 {
		return 0, fmt.Errorf("YieldFromForward: price and forward must be > 0: %w", ErrInvalidInput)
	}
	if years <= 0 {
		return 0, fmt.Errorf("YieldFromForward: years must be > 0: %w", ErrInvalidInput)
	}
	return math.Log(forward/price) / years, nil
}

// AccruedInterest returns the coupon accrued since the last coupon date,
// where alpha in [0,1) is the elapsed fraction of the current coupon period.
func AccruedInterest(par, couponRate float64, m int, alpha float64) (float64, error) {
	if par <= 0 {
		return 0, fmt.Errorf("AccruedInterest: par must be > 0: %w", ErrInvalidInput)
	}
	if couponRate < 0 {
		return 0, fmt.Errorf("AccruedInterest: couponRate must be >= 0: %w", ErrInvalidInput)
	}
	if m <= 0 {
		return 0, fmt.Errorf("AccruedInterest: m must be > 0: %w", ErrInvalidInput)
	}
	if alpha < 0 || alpha >= 1 {
		return 0, fmt.Errorf("AccruedInterest: alpha must lie in [0,1): %w", ErrInvalidInput)
	}
	return par * couponRate / float64(m) * alpha, nil
}

// DirtyCouponPrice prices a coupon bond between coupon dates, discounting n
// remaining coupons and the redemption at shifted exponents (k - alpha):
//
//	dirty = Σ_{k=1..n} C·(1+r)^-(k-α) + par·(1+r)^-(n-α)
//
// When the per-period rate is numerically zero the closed form degenerates
// to C·n + par.
func DirtyCouponPrice(par, couponRate, annualYield float64, n, m int, alpha float64) (float64, error) {
	if par <= 0 {
		return 0, fmt.Errorf("DirtyCouponPrice: par must be > 0: %w", ErrInvalidInput)
	}
	if couponRate < 0 {
		return 0, fmt.Errorf("DirtyCouponPrice: couponRate must be >= 0: %w", ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("DirtyCouponPrice: n must be >= 0: %w", ErrInvalidInput)
	}
	if m <= 0 {
		return 0, fmt.Errorf("DirtyCouponPrice: m must be > 0: %w", ErrInvalidInput)
	}
	if alpha < 0 || alpha >= 1 {
		return 0, fmt.Errorf("DirtyCouponPrice: alpha must lie in [0,1): %w", ErrInvalidInput)
	}

	r := annualYield / float64(m)
	if r <= -1 {
		return 0, fmt.Errorf("DirtyCouponPrice: rate <= -100%% per period: %w", ErrInvalidInput)
	}
	c := par * couponRate / float64(m)

	if math.Abs(r) < rateEpsilon {
		return c*float64(n) + par, nil
	}

	dfN := math.Pow(1+r, -float64(n))
	annuity := (1 - dfN) / r
	shift := math.Pow(1+r, alpha)
	return shift * (c*annuity + par*dfN), nil
}

// CleanCouponPrice is the dirty price net of accrued interest.
func CleanCouponPrice(par, couponRate, annualYield float64, n, m int, alpha float64) (float64, error) {
	dirty, err := DirtyCouponPrice(par, couponRate, annualYield, n, m, alpha)
	if err != nil {
		return 0, err
	}
	accrued, err := AccruedInterest(par, couponRate, m, alpha)
	if err != nil {
		return 0, err
	}
	return dirty - accrued, nil
}

// DirtyCouponPriceFromT derives the remaining coupon count and accrued
// fraction from a fractional maturity and delegates to DirtyCouponPrice.
func DirtyCouponPriceFromT(par, couponRate, annualYield, yearsToMaturity float64, m int) (float64, error) {
	if yearsToMaturity < 0 {
		return 0, fmt.Errorf("DirtyCouponPriceFromT: yearsToMaturity must be >= 0: %w", ErrInvalidInput)
	}
	if m <= 0 {
		return 0, fmt.Errorf("DirtyCouponPriceFromT: m must be > 0: %w", ErrInvalidInput)
	}
	n, alpha := periodsAndAccrual(yearsToMaturity, m)
	return DirtyCouponPrice(par, couponRate, annualYield, n, m, alpha)
}

// CleanCouponPriceFromT derives the remaining coupon count and accrued
// fraction from a fractional maturity and delegates to CleanCouponPrice.
func CleanCouponPriceFromT(par, couponRate, annualYield, yearsToMaturity float64, m int) (float64, error) {
	if yearsToMaturity < 0 {
		return 0, fmt.Errorf("CleanCouponPriceFromT: yearsToMaturity must be >= 0: %w", ErrInvalidInput)
	}
	if m <= 0 {
		return 0, fmt.Errorf("CleanCouponPriceFromT: m must be > 0: %w", ErrInvalidInput)
	}
	n, alpha := periodsAndAccrual(yearsToMaturity, m)
	return CleanCouponPrice(par, couponRate, annualYield, n, m, alpha)
}

// periodsAndAccrual maps a fractional maturity T to n = ceil(T*m) remaining
// coupons and accrued fraction alpha = 1 - frac(T*m).
//
// An exact integral T*m means settlement falls on a coupon date, so alpha is
// forced to zero; without this boundary rule the coupon count would be off
// by one.
func periodsAndAccrual(yearsToMaturity float64, m int) (int, float64) {
	periods := yearsToMaturity * float64(m)
	n := int(math.Ceil(periods))
	frac := periods - math.Floor(periods)

	alpha := 0.0
	if math.Abs(frac) >= 1e-12 {
		alpha = 1 - frac
	}
	return n, alpha
}

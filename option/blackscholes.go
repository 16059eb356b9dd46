package option

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput reports a violated precondition (non-positive spot or
// strike, vanishing volatility or time to maturity).
var ErrInvalidInput = errors.New("invalid input")

// Volatility and maturity below these floors leave the closed form without a
// usable denominator.
const (
	minVolatility = 1e-9
	minMaturity   = 1e-9
)

// D1 is the standardized log-moneyness term of the Black-Scholes formula
// with continuous dividend yield q:
//
//	d1 = [ln(S/K) + (r - q + σ²/2)·T] / (σ·√T)
//
// The caller must ensure sigma > 0 and t > 0.
func D1(s, k, sigma, r, q, t float64) float64 {
	return (math.Log(s/k) + (r-q+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
}

// D2 is d1 - σ·√T.
func D2(s, k, sigma, r, q, t float64) float64 {
	return D1(s, k, sigma, r, q, t) - sigma*math.Sqrt(t)
}

// BlackScholesCall prices a European call under Black-Scholes with spot s,
// strike k, volatility sigma, risk-free rate r, continuous dividend yield q,
// and time to maturity t in years.
func BlackScholesCall(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("BlackScholesCall", s, k, sigma, t); err != nil {
		return 0, err
	}
	d1 := D1(s, k, sigma, r, q, t)
	d2 := d1 - sigma*math.Sqrt(t)
	return s*math.Exp(-q*t)*NormCDF(d1) - k*math.Exp(-r*t)*NormCDF(d2), nil
}

// BlackScholesPut prices a European put under Black-Scholes. The direct
// closed form is used; it agrees with put-call parity
// put = call - S·e^(-qT) + K·e^(-rT).
func BlackScholesPut(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("BlackScholesPut", s, k, sigma, t); err != nil {
		return 0, err
	}
	d1 := D1(s, k, sigma, r, q, t)
	d2 := d1 - sigma*math.Sqrt(t)
	return k*math.Exp(-r*t)*NormCDF(-d2) - s*math.Exp(-q*t)*NormCDF(-d1), nil
}

func validateContract(fn string, s, k, sigma, t float64) error {
	if s <= 0 {
		return fmt.Errorf("%s: spot must be > 0: %w", fn, ErrInvalidInput)
	}
	if k <= 0 {
		return fmt.Errorf("%s: strike must be > 0: %w", fn, ErrInvalidInput)
	}
	if sigma < minVolatility || t < minMaturity {
		return fmt.Errorf("%s: volatility and time to maturity must be positive: %w", fn, ErrInvalidInput)
	}
	return nil
}

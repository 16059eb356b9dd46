package option

import "math"

// Black-Scholes sensitivities with continuous dividend yield q. Theta is
// quoted per year and vega/rho per unit change of volatility/rate; per-point
// (1/100) or per-day quoting is a presentation concern left to callers.

// CallDelta is e^(-qT)·Φ(d1).
func CallDelta(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("CallDelta", s, k, sigma, t); err != nil {
		return 0, err
	}
	return math.Exp(-q*t) * NormCDF(D1(s, k, sigma, r, q, t)), nil
}

// PutDelta is e^(-qT)·(Φ(d1) - 1).
func PutDelta(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("PutDelta", s, k, sigma, t); err != nil {
		return 0, err
	}
	return math.Exp(-q*t) * (NormCDF(D1(s, k, sigma, r, q, t)) - 1), nil
}

// Gamma is e^(-qT)·φ(d1)/(S·σ·√T), identical for calls and puts.
func Gamma(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("Gamma", s, k, sigma, t); err != nil {
		return 0, err
	}
	d1 := D1(s, k, sigma, r, q, t)
	return math.Exp(-q*t) * NormPDF(d1) / (s * sigma * math.Sqrt(t)), nil
}

// Vega is S·e^(-qT)·φ(d1)·√T, identical for calls and puts.
func Vega(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("Vega", s, k, sigma, t); err != nil {
		return 0, err
	}
	d1 := D1(s, k, sigma, r, q, t)
	return s * math.Exp(-q*t) * NormPDF(d1) * math.Sqrt(t), nil
}

// CallTheta is the per-year time decay of a call: the -S·σ·e^(-qT)·φ(d1)/(2√T)
// decay term less the discounted-strike carry plus the dividend carry.
func CallTheta(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("CallTheta", s, k, sigma, t); err != nil {
		return 0, err
	}
	d1 := D1(s, k, sigma, r, q, t)
	d2 := d1 - sigma*math.Sqrt(t)
	decay := -(s * sigma * math.Exp(-q*t) * NormPDF(d1)) / (2 * math.Sqrt(t))
	return decay - r*k*math.Exp(-r*t)*NormCDF(d2) + q*s*math.Exp(-q*t)*NormCDF(d1), nil
}

// PutTheta is the per-year time decay of a put, with the carry terms
// sign-flipped relative to CallTheta.
func PutTheta(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("PutTheta", s, k, sigma, t); err != nil {
		return 0, err
	}
	d1 := D1(s, k, sigma, r, q, t)
	d2 := d1 - sigma*math.Sqrt(t)
	decay := -(s * sigma * math.Exp(-q*t) * NormPDF(d1)) / (2 * math.Sqrt(t))
	return decay + r*k*math.Exp(-r*t)*NormCDF(-d2) - q*s*math.Exp(-q*t)*NormCDF(-d1), nil
}

// CallRho is K·T·e^(-rT)·Φ(d2).
func CallRho(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("CallRho", s, k, sigma, t); err != nil {
		return 0, err
	}
	d2 := D2(s, k, sigma, r, q, t)
	return k * t * math.Exp(-r*t) * NormCDF(d2), nil
}

// PutRho is -K·T·e^(-rT)·Φ(-d2).
func PutRho(s, k, sigma, r, q, t float64) (float64, error) {
	if err := validateContract("PutRho", s, k, sigma, t); err != nil {
		return 0, err
	}
	d2 := D2(s, k, sigma, r, q, t)
	return -k * t * math.Exp(-r*t) * NormCDF(-d2), nil
}

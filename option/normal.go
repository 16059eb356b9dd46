package option

import "gonum.org/v1/gonum/stat/distuv"

var stdNormal = distuv.UnitNormal

// NormPDF is the standard normal probability density exp(-x²/2)/√(2π).
func NormPDF(x float64) float64 {
	return stdNormal.Prob(x)
}

// NormCDF is the standard normal cumulative distribution 0.5·(1+erf(x/√2)).
// Greeks amplify CDF error in the tails, so this delegates to gonum's
// erf-based implementation rather than a series approximation.
func NormCDF(x float64) float64 {
	return stdNormal.CDF(x)
}

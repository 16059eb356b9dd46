package option

import (
	"fmt"
	"math"
)

// Payoff maps an underlying price and a strike to an exercise value. The
// lattice engine evaluates it at every terminal node and, for American
// options, at every interior node.
type Payoff interface {
	Value(price, strike float64) float64
}

// PayoffFunc adapts a plain function to the Payoff interface for custom
// exercise profiles.
type PayoffFunc func(price, strike float64) float64

func (f PayoffFunc) Value(price, strike float64) float64 {
	return f(price, strike)
}

// Built-in vanilla payoffs.
var (
	Call Payoff = PayoffFunc(func(price, strike float64) float64 {
		return math.Max(price-strike, 0)
	})
	Put Payoff = PayoffFunc(func(price, strike float64) float64 {
		return math.Max(strike-price, 0)
	})
)

// BinomialEuropean prices a European option on a Cox-Ross-Rubinstein lattice
// with the given number of time steps, discounting the payoff backward from
// maturity under the risk-neutral measure.
func BinomialEuropean(s, k, sigma, r float64, steps int, t float64, payoff Payoff) (float64, error) {
	if err := validateLattice("BinomialEuropean", s, k, sigma, t, steps, payoff); err != nil {
		return 0, err
	}

	dt := t / float64(steps)
	u := math.Exp(sigma * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp(r*dt) - d) / (u - d)
	disc := math.Exp(-r * dt)

	values := terminalValues(s, k, u, d, steps, payoff)

	for i := steps; i > 0; i-- {
		for j := 0; j < i; j++ {
			values[j] = disc * (p*values[j+1] + (1-p)*values[j])
		}
	}
	return values[0], nil
}

// BinomialAmerican prices an American option on a Cox-Ross-Rubinstein
// lattice. At every interior node the continuation value is compared with
// the immediate exercise value at that node's underlying price S·u^j·d^(i-j),
// and the larger propagates backward.
func BinomialAmerican(s, k, sigma, r float64, steps int, t float64, payoff Payoff) (float64, error) {
	if err := validateLattice("BinomialAmerican", s, k, sigma, t, steps, payoff); err != nil {
		return 0, err
	}

	dt := t / float64(steps)
	u := math.Exp(sigma * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp(r*dt) - d) / (u - d)
	disc := math.Exp(-r * dt)

	values := terminalValues(s, k, u, d, steps, payoff)

	for i := steps - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			cont := disc * (p*values[j+1] + (1-p)*values[j])
			node := s * math.Pow(u, float64(j)) * math.Pow(d, float64(i-j))
			values[j] = math.Max(cont, payoff.Value(node, k))
		}
	}
	return values[0], nil
}

// terminalValues builds the maturity layer of the lattice: for up-move count
// j the underlying ends at S·u^j·d^(steps-j), accumulated with running up and
// down factors, and the payoff is applied per node.
func terminalValues(s, k, u, d float64, steps int, payoff Payoff) []float64 {
	values := make([]float64, steps+1)

	up := 1.0
	dn := math.Pow(d, float64(steps))
	for j := 0; j <= steps; j++ {
		values[j] = payoff.Value(s*up*dn, k)
		up *= u
		dn /= d
	}
	return values
}

func validateLattice(fn string, s, k, sigma, t float64, steps int, payoff Payoff) error {
	if s <= 0 {
		return fmt.Errorf("%s: spot must be > 0: %w", fn, ErrInvalidInput)
	}
	if k <= 0 {
		return fmt.Errorf("%s: strike must be > 0: %w", fn, ErrInvalidInput)
	}
	if sigma <= 0 {
		return fmt.Errorf("%s: volatility must be > 0: %w", fn, ErrInvalidInput)
	}
	if t <= 0 {
		return fmt.Errorf("%s: time to maturity must be > 0: %w", fn, ErrInvalidInput)
	}
	if steps <= 0 {
		return fmt.Errorf("%s: steps must be > 0: %w", fn, ErrInvalidInput)
	}
	if payoff == nil {
		return fmt.Errorf("%s: payoff is required: %w", fn, ErrInvalidInput)
	}
	return nil
}

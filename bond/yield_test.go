package bond_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntsonev/gofi/bond"
)

func TestInternalRateReturn_ParBond(t *testing.T) {
	t.Parallel()

	// A bond priced at par yields its coupon.
	const par, coupon = 1000.0, 0.06
	const years, m = 5, 1

	cf := bond.BuildSchedule(par, coupon, years, m)

	irr, err := bond.InternalRateReturn(cf, par, coupon, par, years, m)
	require.NoError(t, err)
	assert.InDelta(t, coupon, irr, 1e-10)
	assert.InDelta(t, par, bond.PriceFromYield(cf, irr, m), 1e-9)
}

func TestInternalRateReturn_PremiumDiscount(t *testing.T) {
	t.Parallel()

	const par, coupon = 1000.0, 0.06
	const years, m = 7, 1

	cf := bond.BuildSchedule(par, coupon, years, m)

	for _, yTrue := range []float64{0.07, 0.05} {
		price := bond.PriceFromYield(cf, yTrue, m)
		irr, err := bond.InternalRateReturn(cf, price, coupon, par, years, m)
		require.NoError(t, err)
		assert.InDelta(t, yTrue, irr, 1e-10, "yTrue=%v", yTrue)
	}
}

func TestInternalRateReturn_SynthesizedSchedule(t *testing.T) {
	t.Parallel()

	// An empty schedule is rebuilt from the bond terms; semiannual
	// compounding exercises the (1+rp)^m - 1 annualization.
	const par, coupon = 1000.0, 0.04
	const years, m = 10, 2
	const yTrue = 0.055

	price := bond.PriceFromYield(bond.BuildSchedule(par, coupon, years, m), yTrue, m)

	irr, err := bond.InternalRateReturn(nil, price, coupon, par, years, m)
	require.NoError(t, err)

	want := math.Pow(1+yTrue/m, m) - 1
	assert.InDelta(t, want, irr, 1e-10)
}

func TestInternalRateReturn_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coupon float64
		years  int
		m      int
		yTrue  float64
	}{
		{"annual at par rate", 0.06, 5, 1, 0.06},
		{"quarterly premium", 0.08, 3, 4, 0.05},
		{"monthly discount", 0.02, 2, 12, 0.07},
		{"zero coupon", 0.0, 4, 1, 0.03},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cf := bond.BuildSchedule(1000, tc.coupon, tc.years, tc.m)
			if tc.coupon == 0 {
				// Coupon-free schedule still carries the redemption.
				require.Equal(t, 1000.0, cf[len(cf)-1])
			}
			price := bond.PriceFromYield(cf, tc.yTrue, tc.m)

			irr, err := bond.InternalRateReturn(cf, price, tc.coupon, 1000, tc.years, tc.m)
			require.NoError(t, err)
			assert.InDelta(t, math.Pow(1+tc.yTrue/float64(tc.m), float64(tc.m))-1, irr, 1e-10)
		})
	}
}

func TestInternalRateReturn_InvalidInputs(t *testing.T) {
	t.Parallel()

	// Nothing to synthesize from a zero-year bond.
	_, err := bond.InternalRateReturn(nil, 1000, 0.06, 1000, 0, 1)
	require.ErrorIs(t, err, bond.ErrInvalidInput)

	_, err = bond.InternalRateReturn(bond.Schedule{1060}, 0, 0.06, 1000, 1, 1)
	require.ErrorIs(t, err, bond.ErrInvalidInput)

	_, err = bond.InternalRateReturn(bond.Schedule{1060}, -10, 0.06, 1000, 1, 1)
	require.ErrorIs(t, err, bond.ErrInvalidInput)
}

func TestInternalRateReturn_NoBracket(t *testing.T) {
	t.Parallel()

	// A near-zero price needs a per-period rate beyond the search ceiling;
	// the solver must fail loudly instead of returning its best guess.
	_, err := bond.InternalRateReturn(bond.BuildSchedule(1000, 0.06, 5, 1), 1e-9, 0.06, 1000, 5, 1)
	require.ErrorIs(t, err, bond.ErrNoConvergence)

	// Worthless cash flows cannot reproduce a positive price at any rate.
	_, err = bond.InternalRateReturn(bond.Schedule{0, 0, 0}, 10, 0, 0, 3, 1)
	require.ErrorIs(t, err, bond.ErrNoConvergence)
}

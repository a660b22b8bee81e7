package rmhd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHLLFluxConsistency checks the Riemann-solver consistency property:
// when left and right states coincide, HLLFlux must reproduce the exact
// flux of that state (no numerical diffusion introduced by an identical
// state pair).
func TestHLLFluxConsistency(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	p := Cell{Rho: 1, Pre: 1, Vx: 0.2, Bx: 0.3, By: 0.4}
	u := PrimToConsPoint(p, ctx.Config().AdiabaticGamma)
	want, _, _ := ctx.FluxAndEval(u, p, AxisX)

	_, got := ctx.HLLFlux(p, p, AxisX, 0.0)
	for k := 0; k < NFields; k++ {
		near(t, want[k], got[k], 1e-10, "HLL flux of identical states should reduce to the exact flux")
	}
}

// TestHLLCFallsBackToHLLWhenMagnetized checks that HLLCFlux defers to
// HLLFlux once the face-normal field exceeds the small-Bn threshold this
// module's HLLC implementation is scoped to.
func TestHLLCFallsBackToHLLWhenMagnetized(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	pl := Cell{Rho: 1, Pre: 1, Bx: 0.5, By: 1.0}
	pr := Cell{Rho: 0.125, Pre: 0.1, Bx: 0.5, By: -1.0}

	_, wantHLL := ctx.HLLFlux(pl, pr, AxisX, 0.0)
	_, gotHLLC := ctx.HLLCFlux(pl, pr, AxisX, 0.0)
	assert.Equal(t, wantHLL, gotHLLC, "HLLC with |Bn| above threshold should fall back to HLL exactly")
}

// TestHLLCMassFluxFiniteUnmagnetized checks the unmagnetized limit: with
// Bn=0, HLLC takes its star-state path, and the mass flux it returns must
// be finite (not NaN).
func TestHLLCMassFluxFiniteUnmagnetized(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	pl := Cell{Rho: 1, Pre: 1, Vx: 0.4}
	pr := Cell{Rho: 0.125, Pre: 0.1, Vx: 0.1}

	_, f := ctx.HLLCFlux(pl, pr, AxisX, 0.0)
	assert.False(t, math.IsNaN(f[D]), "mass flux must not be NaN")
}

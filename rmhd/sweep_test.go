package rmhd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBrioWuShockTubeStep checks a 400-cell 1D Brio-Wu RMHD shock tube
// (left rho=1,p=1,B=(0.5,1,0); right rho=0.125,p=0.1,B=(0.5,-1,0),
// Gamma=2) stepped once through DUdt1D with PLM3Velocity + HLL + minmod:
// it must produce a finite L at every interior cell, zero recovery
// failures, and max_lambda <= 1.
func TestBrioWuShockTubeStep(t *testing.T) {
	const nx = 404
	cfg := DefaultConfig()
	cfg.Recon = ReconPLM3Velocity
	cfg.Riemann = RiemannHLL
	cfg.Limiter = LimiterMinmod
	cfg.AdiabaticGamma = 2.0

	p := make([]float64, nx*NFields)
	for i := 0; i < nx; i++ {
		var c Cell
		if i < nx/2 {
			c = Cell{Rho: 1, Pre: 1, Bx: 0.5, By: 1.0}
		} else {
			c = Cell{Rho: 0.125, Pre: 0.1, Bx: 0.5, By: -1.0}
		}
		PutCellAt(p, i*NFields, c)
	}

	ctx := NewContext(cfg)
	assert.NoError(t, ctx.Initialize(p, nx, 1, 1, 1, 1, 1, true))

	cons := PrimToConsArray(p, cfg.AdiabaticGamma)
	l, res := ctx.DUdt1D(cons)

	assert.Equal(t, 0, res.FailureCount)
	for i := ctx.Grid().S.X; i < len(l)-ctx.Grid().S.X; i++ {
		assert.Falsef(t, math.IsNaN(l[i]) || math.IsInf(l[i], 0), "L[%d] must be finite, got %v", i, l[i])
	}
	assert.LessOrEqual(t, ctx.MaxLambda, 1.0+1e-9)
}

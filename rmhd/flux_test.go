package rmhd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWavespeedBoundsClamped covers the wavespeed-bounds property: for
// any physically valid cell, |a+| and |a-| are at most 1 after the
// light-cone clamp. FluxAndEval never writes through *Context — it
// returns ap, am directly and leaves running-maximum bookkeeping to the
// caller — so this test reads the bound off those return values rather
// than off ctx.MaxLambda, which FluxAndEval alone never changes.
func TestWavespeedBoundsClamped(t *testing.T) {
	ctx := NewContext(DefaultConfig())
	cells := []Cell{
		{Rho: 1, Pre: 1},
		{Rho: 1, Pre: 1, Vx: 0.5, Bx: 0.5, By: 1.0},
		{Rho: 0.125, Pre: 0.1, Bx: 0.5, By: -1.0},
		{Rho: 1, Pre: 1, Vx: 0.9},
	}
	gamma := ctx.Config().AdiabaticGamma
	for _, p := range cells {
		u := PrimToConsPoint(p, gamma)
		_, ap, am := ctx.FluxAndEval(u, p, AxisX)
		assert.LessOrEqualf(t, math.Abs(ap), 1.0, "ap out of light cone for %+v", p)
		assert.LessOrEqualf(t, math.Abs(am), 1.0, "am out of light cone for %+v", p)
		assert.Zero(t, ctx.MaxLambda, "FluxAndEval alone must never write through *Context")
	}
}

// TestFiphReportsGrowingMaxSignalSpeed covers the running-maximum
// property DUdt1D/2D/3D rely on: Fiph's own returned maxLambda grows as
// faces with larger signal speeds (from a bulk velocity Doppler-shifting
// the characteristic speeds) are folded in.
func TestFiphReportsGrowingMaxSignalSpeed(t *testing.T) {
	cfg := DefaultConfig()

	restCtx := NewContext(cfg)
	const nx = 6
	rest := make([]float64, nx*NFields)
	for i := 0; i < nx; i++ {
		PutCellAt(rest, i*NFields, Cell{Rho: 1, Pre: 1})
	}
	assert.NoError(t, restCtx.Initialize(rest, nx, 1, 1, 1, 1, 1, true))
	_, mlRest := restCtx.Fiph(rest, AxisX)

	movingCtx := NewContext(cfg)
	moving := make([]float64, nx*NFields)
	for i := 0; i < nx; i++ {
		vx := 0.0
		if i >= nx/2 {
			vx = 0.9
		}
		PutCellAt(moving, i*NFields, Cell{Rho: 1, Pre: 1, Vx: vx})
	}
	assert.NoError(t, movingCtx.Initialize(moving, nx, 1, 1, 1, 1, 1, true))
	_, mlMoving := movingCtx.Fiph(moving, AxisX)
	assert.Greater(t, mlMoving, mlRest, "a mixed-velocity profile must report a larger running max than the static case")
}

func TestTotalPressureMatchesGasPressureWhenUnmagnetized(t *testing.T) {
	p := Cell{Rho: 1, Pre: 1.5}
	near(t, 1.5, totalPressure(p, 5.0/3.0), 1e-12, "totalPressure with B=0 reduces to gas pressure")
}

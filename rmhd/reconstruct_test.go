package rmhd

import (
	"math"
	"testing"
)

// TestReconstructionSymmetryPiecewiseConstant covers the reconstruction
// symmetry property: piecewise-constant reconstruction reproduces the
// cell-centered state on both sides of every interior face.
func TestReconstructionSymmetryPiecewiseConstant(t *testing.T) {
	p := make([]float64, 3*NFields)
	PutCellAt(p, 0, Cell{Rho: 1, Pre: 1})
	PutCellAt(p, NFields, Cell{Rho: 2, Pre: 3})
	PutCellAt(p, 2*NFields, Cell{Rho: 4, Pre: 5})

	pl := CellAt(p, NFields)
	pr := CellAt(p, 2*NFields)
	for k := 0; k < NFields; k++ {
		near(t, p[NFields+k], pl[k], 0, "piecewise-constant left state")
		near(t, p[2*NFields+k], pr[k], 0, "piecewise-constant right state")
	}
}

// TestReconstructPLM3VelocityLinearProfile checks that for a linear
// primitive profile across five cells, PLM reconstruction with minmod
// returns the exact linear interpolants at both edges of a face to
// within 1e-12.
func TestReconstructPLM3VelocityLinearProfile(t *testing.T) {
	const slope = 0.1
	p := make([]float64, 5*NFields)
	for c := 0; c < 5; c++ {
		rho := 1.0 + float64(c)*slope
		PutCellAt(p, c*NFields, Cell{Rho: rho, Pre: 1})
	}

	limiter := limiterFunc(LimiterMinmod, 2.0)
	i := 1 * NFields
	pl, pr := reconstructPLM3Velocity(p, i, NFields, limiter)

	wantFace := 1.0 + 1.5*slope
	near(t, wantFace, pl[Rho], 1e-12, "left-extrapolated face value")
	near(t, wantFace, pr[Rho], 1e-12, "right-extrapolated face value")
}

// TestReconstructPLM4VelocityLinearProfile checks the 4-velocity path:
// rho is reconstructed with plain minmod regardless of the configured
// limiter, and the cached 4-velocity ux is reconstructed with the
// configured limiter before being reconverted to a 3-velocity through
// W = sqrt(1+u.u). For a linear rho and linear ux profile across five
// cells, both give the exact linear-interpolated face value, so pl[Vx]
// and pr[Vx] must agree and equal uxFace/sqrt(1+uxFace^2).
func TestReconstructPLM4VelocityLinearProfile(t *testing.T) {
	const rhoSlope = 0.1
	const uxSlope = 0.2
	p := make([]float64, 5*NFields)
	ux := make([]float64, 5)
	uy := make([]float64, 5)
	uz := make([]float64, 5)
	for c := 0; c < 5; c++ {
		rho := 1.0 + float64(c)*rhoSlope
		PutCellAt(p, c*NFields, Cell{Rho: rho, Pre: 1})
		ux[c] = float64(c) * uxSlope
	}

	theta := 2.0
	limiter := limiterFunc(LimiterMinmod, theta)
	i := 1 * NFields
	pl, pr := reconstructPLM4Velocity(p, i, NFields, ux, uy, uz, 1, theta, limiter)

	wantRhoFace := 1.0 + 1.5*rhoSlope
	near(t, wantRhoFace, pl[Rho], 1e-12, "left-extrapolated rho face value")
	near(t, wantRhoFace, pr[Rho], 1e-12, "right-extrapolated rho face value")

	uxFace := 1.5 * uxSlope
	wantVx := uxFace / math.Sqrt(1.0+uxFace*uxFace)
	near(t, wantVx, pl[Vx], 1e-12, "left-extrapolated vx after 4-velocity reconversion")
	near(t, wantVx, pr[Vx], 1e-12, "right-extrapolated vx after 4-velocity reconversion")
	near(t, 0.0, pl[Vy], 1e-12, "zero uy reconstructs to zero vy")
	near(t, 0.0, pr[Vz], 1e-12, "zero uz reconstructs to zero vz")
}

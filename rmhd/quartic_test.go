package rmhd

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSolveQuarticExactFourRealRoots checks (x-1)(x-2)(x-3)(x-4) = x^4 -
// 10x^3 + 35x^2 - 50x + 24, which has four real roots split across both
// quadratic factors.
func TestSolveQuarticExactFourRealRoots(t *testing.T) {
	roots, nr12, nr34 := SolveQuarticExact(1, -10, 35, -50, 24)
	assert.Equal(t, 2, nr12)
	assert.Equal(t, 2, nr34)

	got := roots[:]
	sort.Float64s(got)
	want := []float64{1, 2, 3, 4}
	for i := range want {
		near(t, want[i], got[i], 1e-8, "quartic root")
	}
}

// TestSolveQuarticExactBiquadratic checks the q~=0 branch: x^4 - 5x^2 + 4
// = (x^2-1)(x^2-4), roots +-1, +-2.
func TestSolveQuarticExactBiquadratic(t *testing.T) {
	roots, nr12, nr34 := SolveQuarticExact(1, 0, -5, 0, 4)
	assert.Equal(t, 2, nr12)
	assert.Equal(t, 2, nr34)

	got := append([]float64{}, roots[:]...)
	sort.Float64s(got)
	want := []float64{-2, -1, 1, 2}
	for i := range want {
		near(t, want[i], got[i], 1e-8, "biquadratic root")
	}
}

func TestSolveQuarticApprox1RefinesRootInPlace(t *testing.T) {
	// x^4 - 10x^3 + 35x^2 - 50x + 24, seeded near x=4.
	x := 3.9
	SolveQuarticApprox1(1, -10, 35, -50, 24, &x)
	near(t, 4.0, x, 1e-6, "Newton-refined root")
}

// TestSolveQuarticViaEigenAgreesWithExact backs the QuarticExactEigen
// dispatch case in solveWavespeeds: the companion-matrix eigensolve on
// (x-1)(x-2)(x-3)(x-4) must recover the same four roots as the
// closed-form Ferrari solver, up to the eigensolver's looser numerical
// precision.
func TestSolveQuarticViaEigenAgreesWithExact(t *testing.T) {
	wantRoots, wantNr12, wantNr34 := SolveQuarticExact(1, -10, 35, -50, 24)
	gotRoots, gotNr12, gotNr34 := solveQuarticViaEigen(1, -10, 35, -50, 24)

	assert.Equal(t, 2, gotNr12)
	assert.Equal(t, 2, gotNr34)
	assert.Equal(t, wantNr12+wantNr34, gotNr12+gotNr34)

	want := append([]float64{}, wantRoots[:]...)
	got := append([]float64{}, gotRoots[:]...)
	sort.Float64s(want)
	sort.Float64s(got)
	for i := range want {
		near(t, want[i], got[i], 1e-6, "eigensolver root vs closed-form root")
	}
}

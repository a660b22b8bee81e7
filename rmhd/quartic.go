package rmhd

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SolveQuarticExact finds the real roots of
//
//	a4 x^4 + a3 x^3 + a2 x^2 + a1 x + a0 = 0
//
// using Ferrari's method: the depressed quartic is factored into two
// real quadratics via a real root of the resolvent cubic, and each
// quadratic contributes zero or two real roots. roots[0:2] come from the
// first quadratic factor, roots[2:4] from the second; nr12 and nr34 report
// how many of each pair are real (0 or 2). This is a pure function with
// no persistent solver state between calls.
func SolveQuarticExact(a4, a3, a2, a1, a0 float64) (roots [4]float64, nr12, nr34 int) {
	if a4 == 0 {
		// Degenerate to a cubic; treat as a single quadratic-shaped pair
		// found via companion-matrix eigenvalues so callers still see a
		// coherent (nr12, nr34) split.
		return solveQuarticViaEigen(a4, a3, a2, a1, a0)
	}
	b3, b2, b1, b0 := a3/a4, a2/a4, a1/a4, a0/a4

	// Depress: x = y - b3/4.
	shift := b3 / 4
	p := b2 - 3*b3*b3/8
	q := b1 - b2*b3/2 + b3*b3*b3/8
	r := b0 - b1*b3/4 + b2*b3*b3/16 - 3*b3*b3*b3*b3/256

	const qTiny = 1e-14
	if math.Abs(q) < qTiny {
		// Biquadratic: y^4 + p y^2 + r = 0.
		z1, z2, nz := solveQuadraticReal(1, p, r)
		y1, y2, n1 := realSqrtPair(z1)
		y3, y4, n2 := realSqrtPair(z2)
		if nz < 2 {
			y3, y4, n2 = 0, 0, 0
		}
		roots = [4]float64{y1 - shift, y2 - shift, y3 - shift, y4 - shift}
		return roots, n1, n2
	}

	// Resolvent cubic: m^3 + p m^2 + (p^2-4r)/2 m - q^2/8 = 0.
	m := solveCubicRealRoot(p, (p*p-4*r)/2, -q*q/8)
	twoM := 2 * m
	if twoM <= 0 {
		twoM = 1e-12
	}
	sq := math.Sqrt(twoM)
	term := q / (2 * sq)
	half := p/2 + m

	y1, y2, n1 := solveQuadraticReal(1, sq, half-term)
	y3, y4, n2 := solveQuadraticReal(1, -sq, half+term)

	roots = [4]float64{y1 - shift, y2 - shift, y3 - shift, y4 - shift}
	nr12, nr34 = n1, n2
	return
}

// realSqrtPair returns (+sqrt(z), -sqrt(z), 2) when z >= 0, else (0,0,0).
func realSqrtPair(z float64) (a, b float64, n int) {
	if z < 0 {
		return 0, 0, 0
	}
	s := math.Sqrt(z)
	return s, -s, 2
}

// solveQuadraticReal solves a x^2 + b x + c = 0, returning the real roots
// (or the shared real part of a complex-conjugate pair) and how many of
// the two roots are real (0 or 2).
func solveQuadraticReal(a, b, c float64) (r1, r2 float64, nReal int) {
	disc := b*b - 4*a*c
	if disc >= 0 {
		sq := math.Sqrt(disc)
		return (-b + sq) / (2 * a), (-b - sq) / (2 * a), 2
	}
	re := -b / (2 * a)
	return re, re, 0
}

// solveCubicRealRoot returns one real root of t^3 + b t^2 + c t + d = 0
// via Cardano's method (trigonometric branch when three real roots
// exist, choosing the largest).
func solveCubicRealRoot(b, c, d float64) float64 {
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	shift := -b / 3

	disc := (q*q)/4 + (p*p*p)/27
	if disc >= 0 {
		sq := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(-q/2 - sq)
		return u + v + shift
	}
	// Three real roots; take the largest.
	rr := math.Sqrt(-p / 3)
	arg := clamp(3*q/(2*p*rr), -1, 1)
	theta := math.Acos(arg) / 3
	const twoPiOver3 = 2 * math.Pi / 3
	t0 := 2 * rr * math.Cos(theta)
	t1 := 2 * rr * math.Cos(theta-twoPiOver3)
	t2 := 2 * rr * math.Cos(theta-2*twoPiOver3)
	return math.Max(t0, math.Max(t1, t2)) + shift
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// solveQuarticViaEigen finds the quartic's roots as the eigenvalues of its
// companion matrix, using gonum's dense eigensolver. This is the
// QuarticExactEigen backend: an ecosystem-library-backed alternative to
// the closed-form Ferrari solver above, useful as a cross-check.
func solveQuarticViaEigen(a4, a3, a2, a1, a0 float64) (roots [4]float64, nr12, nr34 int) {
	if a4 == 0 {
		a4 = 1e-300 // avoid division by zero; result will be discarded by the caller's clamp
	}
	b3, b2, b1, b0 := a3/a4, a2/a4, a1/a4, a0/a4
	companion := mat.NewDense(4, 4, []float64{
		-b3, -b2, -b1, -b0,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	})
	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return roots, 0, 0
	}
	vals := eig.Values(nil)
	const imagTol = 1e-9
	var realParts []float64
	for _, v := range vals {
		if math.Abs(imag(v)) < imagTol {
			realParts = append(realParts, real(v))
		}
	}
	// Pack whatever real roots were found into the two-pair shape the
	// rest of the package expects, biasing the first pair full first.
	n := len(realParts)
	switch {
	case n >= 4:
		roots = [4]float64{realParts[0], realParts[1], realParts[2], realParts[3]}
		nr12, nr34 = 2, 2
	case n >= 2:
		roots[0], roots[1] = realParts[0], realParts[1]
		nr12 = 2
	}
	return
}

// SolveQuarticApprox1 refines a single real root of the quartic starting
// from the seed *x using a handful of Newton steps against the raw
// (un-normalized) polynomial. Used by QuarticApprox1 to bracket the wave
// speeds by refining seeds at -1 and +1.
func SolveQuarticApprox1(a4, a3, a2, a1, a0 float64, x *float64) {
	newtonRefineQuartic(a4, a3, a2, a1, a0, x, 8)
}

// SolveQuarticApprox2 is a coarser refinement (fewer Newton steps),
// trading accuracy for speed relative to Approx1.
func SolveQuarticApprox2(a4, a3, a2, a1, a0 float64, x *float64) {
	newtonRefineQuartic(a4, a3, a2, a1, a0, x, 3)
}

func newtonRefineQuartic(a4, a3, a2, a1, a0 float64, x *float64, iters int) {
	for i := 0; i < iters; i++ {
		v := *x
		f := a4*v*v*v*v + a3*v*v*v + a2*v*v + a1*v + a0
		df := 4*a4*v*v*v + 3*a3*v*v + 2*a2*v + a1
		if df == 0 {
			return
		}
		*x = v - f/df
	}
}

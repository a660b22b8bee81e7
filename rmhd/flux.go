package rmhd

import "math"

// totalPressure returns the fluid-frame gas pressure plus the magnetic
// pressure term b^2/2 that enters the momentum and energy fluxes, per the
// p_ term of rmhd_flux_and_eval.
func totalPressure(p Cell, gamma float64) float64 {
	v2 := p[Vx]*p[Vx] + p[Vy]*p[Vy] + p[Vz]*p[Vz]
	B2 := p[Bx]*p[Bx] + p[By]*p[By] + p[Bz]*p[Bz]
	Bv := p[Bx]*p[Vx] + p[By]*p[Vy] + p[Bz]*p[Vz]
	W2 := 1.0 / (1.0 - v2)
	b0 := math.Sqrt(W2) * Bv
	b2 := (B2 + b0*b0) / W2
	return p[Pre] + 0.5*b2
}

// FluxAndEval computes the physical flux of the conserved cell u (with
// primitive companion p) along axis, plus the fastest right- and
// left-going signal speeds ap, am. The wavespeeds come from the quartic
// in the fluid-frame magnetosonic dispersion relation; which solver
// produces its roots is chosen by cfg.Quartic. It reads c.cfg but never
// writes through c, so concurrent axis sweeps can call it safely; callers
// that want the running MaxLambda must fold ap,am in themselves.
func (c *Context) FluxAndEval(u, p Cell, axis Axis) (f Cell, ap, am float64) {
	gamma := c.cfg.AdiabaticGamma

	v2 := p[Vx]*p[Vx] + p[Vy]*p[Vy] + p[Vz]*p[Vz]
	B2 := p[Bx]*p[Bx] + p[By]*p[By] + p[Bz]*p[Bz]
	Bv := p[Bx]*p[Vx] + p[By]*p[Vy] + p[Bz]*p[Vz]
	W := 1.0 / math.Sqrt(1.0-v2)
	W2 := W * W
	b0 := W * Bv
	b2 := (B2 + b0*b0) / W2
	bx := (p[Bx] + b0*W*p[Vx]) / W
	by := (p[By] + b0*W*p[Vy]) / W
	bz := (p[Bz] + b0*W*p[Vz]) / W
	e := EOSSpecificInternalEnergy(p[Rho], p[Pre], gamma)
	h := 1.0 + e + p[Pre]/p[Rho]
	pTot := p[Pre] + 0.5*b2

	switch axis {
	case AxisX:
		f[D] = u[D] * p[Vx]
		f[Tau] = u[Tau]*p[Vx] - b0*p[Bx]/W + pTot*p[Vx]
		f[Sx] = u[Sx]*p[Vx] - bx*p[Bx]/W + pTot
		f[Sy] = u[Sy]*p[Vx] - by*p[Bx]/W
		f[Sz] = u[Sz]*p[Vx] - bz*p[Bx]/W
		f[Bx] = 0.0
		f[By] = p[Vx]*p[By] - p[Vy]*p[Bx]
		f[Bz] = p[Vx]*p[Bz] - p[Vz]*p[Bx]
	case AxisY:
		f[D] = u[D] * p[Vy]
		f[Tau] = u[Tau]*p[Vy] - b0*p[By]/W + pTot*p[Vy]
		f[Sx] = u[Sx]*p[Vy] - bx*p[By]/W
		f[Sy] = u[Sy]*p[Vy] - by*p[By]/W + pTot
		f[Sz] = u[Sz]*p[Vy] - bz*p[By]/W
		f[Bx] = p[Vy]*p[Bx] - p[Vx]*p[By]
		f[By] = 0.0
		f[Bz] = p[Vy]*p[Bz] - p[Vz]*p[By]
	case AxisZ:
		f[D] = u[D] * p[Vz]
		f[Tau] = u[Tau]*p[Vz] - b0*p[Bz]/W + pTot*p[Vz]
		f[Sx] = u[Sx]*p[Vz] - bx*p[Bz]/W
		f[Sy] = u[Sy]*p[Vz] - by*p[Bz]/W
		f[Sz] = u[Sz]*p[Vz] - bz*p[Bz]/W + pTot
		f[Bx] = p[Vz]*p[Bx] - p[Vx]*p[Bz]
		f[By] = p[Vz]*p[By] - p[Vy]*p[Bz]
		f[Bz] = 0.0
	}

	var vi, bi float64
	switch axis {
	case AxisX:
		vi, bi = p[Vx], bx
	case AxisY:
		vi, bi = p[Vy], by
	case AxisZ:
		vi, bi = p[Vz], bz
	}

	W4 := W2 * W2
	cs2 := EOSSoundSpeedSquared(p[Rho], p[Pre], gamma)
	V2 := vi * vi
	V3 := vi * V2
	V4 := vi * V3

	K := p[Rho] * h * (1.0/cs2 - 1.0) * W4
	L := -(p[Rho]*h + b2/cs2) * W2

	A4 := K - L - b0*b0
	A3 := -4*K*vi + L*vi*2 + 2*b0*bi
	A2 := 6*K*V2 + L*(1.0-V2) + b0*b0 - bi*bi
	A1 := -4*K*V3 - L*vi*2 - 2*b0*bi
	A0 := K*V4 + L*V2 + bi*bi

	ap, am = c.solveWavespeeds(A4, A3, A2, A1, A0)

	if math.Abs(ap) > 1.0 || math.Abs(am) > 1.0 {
		am, ap = -1.0, 1.0
	}

	return f, ap, am
}

// solveWavespeeds dispatches to the configured quartic solver and reduces
// its roots to the (ap, am) pair used by the Riemann solvers.
func (c *Context) solveWavespeeds(a4, a3, a2, a1, a0 float64) (ap, am float64) {
	switch c.cfg.Quartic {
	case QuarticExact:
		roots, nr12, nr34 := SolveQuarticExact(a4, a3, a2, a1, a0)
		return reduceQuarticRoots(roots, nr12, nr34)
	case QuarticExactEigen:
		roots, nr12, nr34 := solveQuarticViaEigen(a4, a3, a2, a1, a0)
		return reduceQuarticRoots(roots, nr12, nr34)
	case QuarticApprox1:
		am, ap = -1.0, 1.0
		SolveQuarticApprox1(a4, a3, a2, a1, a0, &am)
		SolveQuarticApprox1(a4, a3, a2, a1, a0, &ap)
		return ap, am
	case QuarticApprox2:
		am, ap = -1.0, 1.0
		SolveQuarticApprox2(a4, a3, a2, a1, a0, &am)
		SolveQuarticApprox2(a4, a3, a2, a1, a0, &ap)
		return ap, am
	default: // QuarticNone
		return 1.0, -1.0
	}
}

// reduceQuarticRoots picks the max/min real root across whichever
// quadratic factor(s) actually produced real roots, handling the case
// where only one factor is real.
func reduceQuarticRoots(roots [4]float64, nr12, nr34 int) (ap, am float64) {
	nr := nr12 + nr34
	ap12, am12 := math.Max(roots[0], roots[1]), math.Min(roots[0], roots[1])
	ap34, am34 := math.Max(roots[2], roots[3]), math.Min(roots[2], roots[3])

	if nr == 2 {
		if nr12 == 2 {
			return ap12, am12
		}
		return ap34, am34
	}
	if nr == 0 {
		return 1.0, -1.0
	}
	return math.Max(ap12, ap34), math.Min(am12, am34)
}

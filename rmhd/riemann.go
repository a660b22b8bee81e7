package rmhd

import "math"

// axisSlots returns the conserved-array slot of velocity/momentum/field
// components normal and transverse to axis, used to keep the Riemann
// solvers axis-generic instead of hard-coding the x sweep.
func axisSlots(axis Axis) (vn, vp1, vp2, sn, sp1, sp2, bn, bp1, bp2 int) {
	switch axis {
	case AxisY:
		return Vy, Vz, Vx, Sy, Sz, Sx, By, Bz, Bx
	case AxisZ:
		return Vz, Vx, Vy, Sz, Sx, Sy, Bz, Bx, By
	default:
		return Vx, Vy, Vz, Sx, Sy, Sz, Bx, By, Bz
	}
}

// HLLFlux is the two-wave approximate Riemann solver: it brackets the
// exact solution between the fastest left- and right-going signal speeds
// and averages the flux and state in between. s is the ray speed along
// which the flux is evaluated; the axis sweep always calls with s=0.
func (c *Context) HLLFlux(pl, pr Cell, axis Axis, s float64) (uStar, fStar Cell) {
	uStar, fStar, _, _ = c.hllFluxEval(pl, pr, axis, s)
	return uStar, fStar
}

// hllFluxEval is HLLFlux plus the bracketing signal speeds ap, am, so a
// caller sweeping many faces can track its own running maximum without
// writing through the Context.
func (c *Context) hllFluxEval(pl, pr Cell, axis Axis, s float64) (uStar, fStar Cell, ap, am float64) {
	gamma := c.cfg.AdiabaticGamma

	ul := PrimToConsPoint(pl, gamma)
	ur := PrimToConsPoint(pr, gamma)

	fl, epl, eml := c.FluxAndEval(ul, pl, axis)
	fr, epr, emr := c.FluxAndEval(ur, pr, axis)

	ap = math.Max(epl, epr)
	am = math.Min(eml, emr)

	var uHLL, fHLL Cell
	for i := 0; i < NFields; i++ {
		uHLL[i] = (ap*ur[i] - am*ul[i] + (fl[i] - fr[i])) / (ap - am)
		fHLL[i] = (ap*fl[i] - am*fr[i] + ap*am*(ur[i]-ul[i])) / (ap - am)
	}

	switch {
	case s <= am:
		return ul, fl, ap, am
	case s <= ap:
		return uHLL, fHLL, ap, am
	default:
		return ur, fr, ap, am
	}
}

// HLLCFlux is the three-wave Riemann solver that additionally resolves
// the contact discontinuity. It implements the Mignone & Bodo (2006)
// construction for the case where the face-normal field Bn is
// negligible, in which the magnetic and hydrodynamic contact jump
// conditions decouple to the unmagnetized relativistic HLLC of Mignone &
// Bodo (2005). When |Bn| exceeds a small threshold, it falls back to
// HLLFlux: the general magnetized contact-wave quadratic is not
// implemented.
func (c *Context) HLLCFlux(pl, pr Cell, axis Axis, s float64) (uStar, fStar Cell) {
	uStar, fStar, _, _ = c.hllcFluxEval(pl, pr, axis, s)
	return uStar, fStar
}

// hllcFluxEval is HLLCFlux plus the outer bracketing signal speeds ap, am
// (the same pair hllFluxEval reports), for callers tracking their own
// running maximum signal speed.
func (c *Context) hllcFluxEval(pl, pr Cell, axis Axis, s float64) (uStar, fStar Cell, ap, am float64) {
	vn, _, _, sn, _, _, bn, _, _ := axisSlots(axis)
	const bnTiny = 1e-10
	if math.Abs(pl[bn]) > bnTiny || math.Abs(pr[bn]) > bnTiny {
		return c.hllFluxEval(pl, pr, axis, s)
	}

	gamma := c.cfg.AdiabaticGamma
	ul := PrimToConsPoint(pl, gamma)
	ur := PrimToConsPoint(pr, gamma)
	fl, epl, eml := c.FluxAndEval(ul, pl, axis)
	fr, epr, emr := c.FluxAndEval(ur, pr, axis)

	ap = math.Max(epl, epr)
	am = math.Min(eml, emr)

	var uHLL, fHLL Cell
	for i := 0; i < NFields; i++ {
		uHLL[i] = (ap*ur[i] - am*ul[i] + (fl[i] - fr[i])) / (ap - am)
		fHLL[i] = (ap*fl[i] - am*fr[i] + ap*am*(ur[i]-ul[i])) / (ap - am)
	}

	// Quadratic for the contact speed, Mignone & Bodo (2005) eq. 18:
	// FE*vn*^2 - (E_hll+FSn)*vn* + S_hll = 0, where E = D+tau.
	fe := fHLL[Tau] + fHLL[D]
	ehll := uHLL[Tau] + uHLL[D]
	fsn := fHLL[sn]
	shll := uHLL[sn]

	a := fe
	b := -(ehll + fsn)
	cc := shll

	var vstar float64
	if math.Abs(a) < 1e-14 {
		vstar = -cc / b
	} else {
		disc := b*b - 4*a*cc
		if disc < 0 {
			disc = 0
		}
		sq := math.Sqrt(disc)
		r1 := (-b - sq) / (2 * a)
		r2 := (-b + sq) / (2 * a)
		if r1 >= am && r1 <= ap {
			vstar = r1
		} else {
			vstar = r2
		}
	}

	pStar := fsn - fe*vstar

	// starSide builds the star-region conserved state on one side of the
	// contact (Toro's HLLC star-state relations): transverse quantities
	// are advected by (speed-vSide)/(speed-vstar), while the normal
	// momentum and energy also pick up the jump from the side's own
	// total pressure pSide to the shared contact pressure pStar.
	starSide := func(u Cell, speed, vSide, pSide float64) Cell {
		denom := speed - vstar
		if math.Abs(denom) < 1e-14 {
			return u
		}
		factor := (speed - vSide) / denom
		var us Cell
		for i := 0; i < NFields; i++ {
			us[i] = u[i] * factor
		}
		us[sn] = (u[sn]*(speed-vSide) + pStar - pSide) / denom
		eSide := u[Tau] + u[D]
		eStar := (eSide*(speed-vSide) + pStar*vstar - pSide*vSide) / denom
		us[Tau] = eStar - us[D]
		return us
	}

	pSideL := totalPressure(pl, gamma)
	pSideR := totalPressure(pr, gamma)

	uStarL := starSide(ul, am, pl[vn], pSideL)
	uStarR := starSide(ur, ap, pr[vn], pSideR)

	fStarL := addScaled(fl, am, uStarL, ul)
	fStarR := addScaled(fr, ap, uStarR, ur)

	switch {
	case s <= am:
		return ul, fl, ap, am
	case s <= vstar:
		return uStarL, fStarL, ap, am
	case s <= ap:
		return uStarR, fStarR, ap, am
	default:
		return ur, fr, ap, am
	}
}

// addScaled returns f + speed*(uStar-u), the standard HLLC star flux.
func addScaled(f Cell, speed float64, uStar, u Cell) (out Cell) {
	for i := 0; i < NFields; i++ {
		out[i] = f[i] + speed*(uStar[i]-u[i])
	}
	return
}

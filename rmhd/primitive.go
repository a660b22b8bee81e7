package rmhd

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// RecoveryResult summarizes a batch ConsToPrim call: how many cells failed
// to converge even after the pressure-floor restart, and the cell index
// (flat index / NFields) of the first such cell (useful for diagnostics;
// -1 when every cell converged).
type RecoveryResult struct {
	FailureCount    int
	FirstFailingIdx int
}

// PrimToConsPoint converts one primitive cell to conserved form: the
// fluid-frame magnetic four-vector (b0, bx, by, bz) is formed from the
// lab-frame field and 3-velocity, folded into an effective enthalpy and
// pressure, and used to build the momentum and energy densities.
func PrimToConsPoint(p Cell, gamma float64) Cell {
	rho, pre := p[Rho], p[Pre]
	vx, vy, vz := p[Vx], p[Vy], p[Vz]
	bxL, byL, bzL := p[Bx], p[By], p[Bz]

	v2 := vx*vx + vy*vy + vz*vz
	bLsq := bxL*bxL + byL*byL + bzL*bzL
	bv := bxL*vx + byL*vy + bzL*vz

	W2 := 1.0 / (1.0 - v2)
	W := math.Sqrt(W2)
	b0 := W * bv
	b2 := (bLsq + b0*b0) / W2
	bx := (bxL + b0*W*vx) / W
	by := (byL + b0*W*vy) / W
	bz := (bzL + b0*W*vz) / W

	e := EOSSpecificInternalEnergy(rho, pre, gamma)
	eTot := e + 0.5*b2/rho
	pTot := pre + 0.5*b2
	hTot := 1.0 + eTot + pTot/rho

	var u Cell
	u[D] = rho * W
	u[Tau] = rho*hTot*W2 - pTot - b0*b0 - u[D]
	u[Sx] = rho*hTot*W2*vx - b0*bx
	u[Sy] = rho*hTot*W2*vy - b0*by
	u[Sz] = rho*hTot*W2*vz - b0*bz
	u[Bx], u[By], u[Bz] = bxL, byL, bzL
	return u
}

// PrimToConsArray converts every cell of a flat primitive array to a flat
// conserved array of the same length.
func PrimToConsArray(prim []float64, gamma float64) []float64 {
	cons := make([]float64, len(prim))
	for i := 0; i+NFields <= len(prim); i += NFields {
		u := PrimToConsPoint(CellAt(prim, i), gamma)
		PutCellAt(cons, i, u)
	}
	return cons
}

// invert2x2 inverts the Jacobian J of the two residuals used by
// ConsToPrimPoint, in closed form.
func invert2x2(j [2][2]float64) (inv [2][2]float64) {
	det := j[0][0]*j[1][1] - j[1][0]*j[0][1]
	inv[0][0] = j[1][1] / det
	inv[1][1] = j[0][0] / det
	inv[0][1] = -j[0][1] / det
	inv[1][0] = -j[1][0] / det
	return
}

// ConsToPrimPoint recovers the primitive state for one conserved cell,
// wrapping consToPrimPoint's Newton iteration behind the public
// error-returning signature. err is non-nil only when both the initial
// pass and the pressure-floor restart fail to converge within the
// iteration cap.
func (c *Context) ConsToPrimPoint(u Cell, guess Cell) (p Cell, err error) {
	p, _, _, ok := c.consToPrimPoint(u, guess)
	if !ok {
		err = errConsToPrimFailed
	}
	return p, err
}

// consToPrimPoint is the Newton iteration itself: two-dimensional
// iteration on (Z, W), Z = rho*h*W^2. pguess seeds the closed-form guess
// (h_guess, W_guess) used when Config.UseEstimate is false; when it is
// true, the iteration instead starts from the conserved-only estimate
// W = sqrt(S^2/D^2 + 1), Z = D*W.
// On failure to converge within the iteration cap it restarts once,
// pinned to the pressure floor, and reports non-convergence only if that
// second pass also fails. wCache is the recovered Lorentz factor, needed
// by PLM4Velocity reconstruction.
func (c *Context) consToPrimPoint(u Cell, pguess Cell) (p Cell, wCache float64, iters int, ok bool) {
	const presFloor = pressureFloor
	const errTol = newtonTolerance
	const maxIter = newtonMaxIters

	gamma := c.cfg.AdiabaticGamma
	gamf := (gamma - 1.0) / gamma

	D_, Tau_ := u[D], u[Tau]
	S2 := u[Sx]*u[Sx] + u[Sy]*u[Sy] + u[Sz]*u[Sz]
	B2 := u[Bx]*u[Bx] + u[By]*u[By] + u[Bz]*u[Bz]
	BS := u[Bx]*u[Sx] + u[By]*u[Sy] + u[Bz]*u[Sz]
	BS2 := BS * BS

	est := c.cfg.UseEstimate
	v2 := pguess[Vx]*pguess[Vx] + pguess[Vy]*pguess[Vy] + pguess[Vz]*pguess[Vz]
	hGuess := 1.0 + EOSSpecificInternalEnergy(pguess[Rho], pguess[Pre], gamma) + pguess[Pre]/pguess[Rho]
	wGuess := 1.0 / math.Sqrt(1.0-v2)

	seed := func() (Z, W float64) {
		if est {
			W = math.Sqrt(S2/(D_*D_) + 1.0)
			Z = D_ * W
		} else {
			W = wGuess
			Z = pguess[Rho] * hGuess * wGuess * wGuess
		}
		return
	}

	Z, W := seed()

	const bigZ = zClampBig
	const bigW = wClampBig
	const smlW = wClampSmall

	usePresFloor := false
	solnFound := false
	nIter := 0
	var pre float64

	for !solnFound {
		Z2 := Z * Z
		Z3 := Z * Z2
		W2 := W * W
		W3 := W * W2

		if usePresFloor {
			pre = presFloor
		} else {
			pre = (D_ / W) * (Z/(D_*W) - 1.0) * gamf
		}

		f1 := -S2 + (Z+B2)*(Z+B2)*(W2-1) / W2 - (2*Z+B2)*BS2/Z2
		f2 := -Tau_ + Z + B2 - pre - 0.5*B2/W2 - 0.5*BS2/Z2 - D_

		df1dZ := 2 * (B2 + Z) * (BS2*W2 + (W2-1)*Z3) / (W2 * Z3)
		df1dW := 2 * (B2 + Z) * (B2 + Z) / W3
		df2dZ := 1 + BS2/Z3 - gamf/W2
		df2dW := B2/W3 + (2*Z-D_*W)/W3*gamf

		j := [2][2]float64{{df1dZ, df1dW}, {df2dZ, df2dW}}
		var dZ, dW float64
		if c.cfg.UseGonumSolve {
			A := mat.NewDense(2, 2, []float64{df1dZ, df1dW, df2dZ, df2dW})
			b := mat.NewVecDense(2, []float64{f1, f2})
			var x mat.VecDense
			if err := x.SolveVec(A, b); err == nil {
				dZ, dW = x.AtVec(0), x.AtVec(1)
			} else {
				g := invert2x2(j)
				dZ = g[0][0]*f1 + g[0][1]*f2
				dW = g[1][0]*f1 + g[1][1]*f2
			}
		} else {
			g := invert2x2(j)
			dZ = g[0][0]*f1 + g[0][1]*f2
			dW = g[1][0]*f1 + g[1][1]*f2
		}

		Znew := Z - dZ
		Wnew := W - dW

		if Znew <= 0 {
			Znew = -Znew
		}
		if Znew >= bigZ {
			Znew = Z
		}
		if Wnew < smlW {
			Wnew = smlW
		}
		if Wnew > bigW {
			Wnew = bigW
		}

		Z, W = Znew, Wnew
		iters++
		c.NewtonIterations++

		if math.Abs(dZ/Z)+math.Abs(dW/W) < errTol {
			if pre >= presFloor {
				solnFound = true
			} else {
				nIter = 0
				usePresFloor = true
				Z, W = seed()
			}
		}
		if nIter == maxIter {
			if !usePresFloor {
				nIter = 0
				usePresFloor = true
				Z, W = seed()
			} else {
				p, wCache = primFromZW(u, gamma, gamf, Z, W, usePresFloor, presFloor)
				return p, wCache, iters, false
			}
		}
		nIter++
	}

	p, wCache = primFromZW(u, gamma, gamf, Z, W, usePresFloor, presFloor)
	return p, wCache, iters, true
}

func primFromZW(u Cell, gamma, gamf, Z, W float64, usePresFloor bool, presFloor float64) (p Cell, wCache float64) {
	D_ := u[D]
	B2 := u[Bx]*u[Bx] + u[By]*u[By] + u[Bz]*u[Bz]
	bs := u[Bx]*u[Sx] + u[By]*u[Sy] + u[Bz]*u[Sz]
	b0 := bs * W / Z

	p[Rho] = D_ / W
	if usePresFloor {
		p[Pre] = presFloor
	} else {
		p[Pre] = (D_ / W) * (Z/(D_*W) - 1.0) * gamf
	}
	p[Vx] = (u[Sx] + b0*u[Bx]/W) / (Z + B2)
	p[Vy] = (u[Sy] + b0*u[By]/W) / (Z + B2)
	p[Vz] = (u[Sz] + b0*u[Bz]/W) / (Z + B2)
	p[Bx], p[By], p[Bz] = u[Bx], u[By], u[Bz]
	return p, W
}

var errConsToPrimFailed = errors.New("rmhd: cons_to_prim did not converge")

// ConsToPrimArray recovers primitives for every cell of a flat conserved
// array. Each cell's Newton iteration is seeded from the corresponding
// cell of the context's own cached primitive state (the previous step's
// recovered primitives in Alive mode; the zero Cell in Dead mode, which
// only matters when Config.UseEstimate is false). It reports how many
// cells failed to converge after the pressure-floor restart. When the context's
// reconstruction mode is PLM4Velocity, it also refreshes the cached
// 4-velocity scratch buffers (ux, uy, uz) that reconstruct_use_4vel-
// equivalent code consumes.
func (c *Context) ConsToPrimArray(cons []float64) (prim []float64, res RecoveryResult) {
	prevPrim := c.sc.primitive
	prim = make([]float64, len(cons))
	res.FirstFailingIdx = -1
	fourVel := c.cfg.Recon == ReconPLM4Velocity && c.mode == Alive
	for i := 0; i+NFields <= len(cons); i += NFields {
		u := CellAt(cons, i)
		var guess Cell
		if i+NFields <= len(prevPrim) {
			guess = CellAt(prevPrim, i)
		}
		p, w, _, ok := c.consToPrimPoint(u, guess)
		PutCellAt(prim, i, p)
		if !ok {
			res.FailureCount++
			if res.FirstFailingIdx < 0 {
				res.FirstFailingIdx = i / NFields
			}
		}
		if fourVel {
			cellIdx := i / NFields
			c.sc.ux[cellIdx] = w * p[Vx]
			c.sc.uy[cellIdx] = w * p[Vy]
			c.sc.uz[cellIdx] = w * p[Vz]
		}
	}
	if c.mode == Alive {
		c.sc.primitive = prim
	}
	return prim, res
}

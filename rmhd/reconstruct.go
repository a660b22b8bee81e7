package rmhd

import "math"

// reconstructPLM3Velocity applies the configured limiter directly to
// every primitive field. p0 is the flat primitive array, i the flat
// index of the center cell, and stride the per-cell stride along the
// sweep axis.
func reconstructPLM3Velocity(p0 []float64, i, stride int, limiter func(ul, u0, ur float64) float64) (pl, pr Cell) {
	for k := 0; k < NFields; k++ {
		pr[k] = p0[i+stride+k] - 0.5*limiter(p0[i+k], p0[i+stride+k], p0[i+2*stride+k])
		pl[k] = p0[i+k] + 0.5*limiter(p0[i-stride+k], p0[i+k], p0[i+stride+k])
	}
	return
}

// reconstructPLM4Velocity limits rho, pre, and the B field with plain
// minmod (regardless of the configured limiter), and limits the cached
// 4-velocity components ux, uy, uz with the configured limiter, then
// converts the reconstructed 4-velocity back to a 3-velocity via
// W = sqrt(1+u.u). Grounded on reconstruct_use_4vel.
func reconstructPLM4Velocity(p0 []float64, i, stride int, ux, uy, uz []float64, cellStride int, theta float64, limiter func(ul, u0, ur float64) float64) (pl, pr Cell) {
	for _, k := range []int{Rho, Pre, Bx, By, Bz} {
		pr[k] = p0[i+stride+k] - 0.5*minmod(theta, p0[i+k], p0[i+stride+k], p0[i+2*stride+k])
		pl[k] = p0[i+k] + 0.5*minmod(theta, p0[i-stride+k], p0[i+k], p0[i+stride+k])
	}

	c := i / NFields
	U, V := cellStride, 2*cellStride

	uxR := ux[c+U] - 0.5*limiter(ux[c], ux[c+U], ux[c+V])
	uxL := ux[c] + 0.5*limiter(ux[c-U], ux[c], ux[c+U])

	uyR := uy[c+U] - 0.5*limiter(uy[c], uy[c+U], uy[c+V])
	uyL := uy[c] + 0.5*limiter(uy[c-U], uy[c], uy[c+U])

	uzR := uz[c+U] - 0.5*limiter(uz[c], uz[c+U], uz[c+V])
	uzL := uz[c] + 0.5*limiter(uz[c-U], uz[c], uz[c+U])

	wr := math.Sqrt(1.0 + uxR*uxR + uyR*uyR + uzR*uzR)
	wl := math.Sqrt(1.0 + uxL*uxL + uyL*uyL + uzL*uzL)

	pr[Vx], pr[Vy], pr[Vz] = uxR/wr, uyR/wr, uzR/wr
	pl[Vx], pl[Vy], pl[Vz] = uxL/wl, uyL/wl, uzL/wl
	return
}

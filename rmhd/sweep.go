package rmhd

import "math"

// Fiph computes the interface flux array F along axis from the primitive
// array p: for every interior face it reconstructs left/right states
// from the configured scheme and resolves them with the configured
// Riemann solver. The face of the first cell along the axis and the faces
// of the last two cells carry zero flux (the reconstruction stencil would
// reach past the buffer there). It also returns the largest |signal speed| seen across every
// face it evaluated, so a caller running several axes concurrently can
// combine each axis's local maximum itself instead of racing on a shared
// field.
func (c *Context) Fiph(p []float64, axis Axis) (f []float64, maxLambda float64) {
	s := c.grid.S
	stride := s.Of(axis)
	total := s.Total

	f = make([]float64, total)
	limiter := limiterFunc(c.cfg.Limiter, c.cfg.PlmTheta)

	for i := stride; i < total-2*stride; i += NFields {
		var pl, pr Cell
		switch c.cfg.Recon {
		case ReconPiecewiseConstant:
			pl = CellAt(p, i)
			pr = CellAt(p, i+stride)
		case ReconPLM4Velocity:
			cellStride := stride / NFields
			pl, pr = reconstructPLM4Velocity(p, i, stride, c.sc.ux, c.sc.uy, c.sc.uz, cellStride, c.cfg.PlmTheta, limiter)
		default: // ReconPLM3Velocity
			pl, pr = reconstructPLM3Velocity(p, i, stride, limiter)
		}

		var flux Cell
		var ap, am float64
		switch c.cfg.Riemann {
		case RiemannHLLC:
			_, flux, ap, am = c.hllcFluxEval(pl, pr, axis, 0.0)
		default:
			_, flux, ap, am = c.hllFluxEval(pl, pr, axis, 0.0)
		}
		PutCellAt(f, i, flux)

		if ml := math.Max(math.Abs(ap), math.Abs(am)); ml > maxLambda {
			maxLambda = ml
		}
	}
	return f, maxLambda
}

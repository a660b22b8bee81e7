package rmhd

// ConstraintTransport2D overwrites the transverse magnetic-field flux
// components of fx (x-sweep) and fy (y-sweep) with corner-centered EMF
// averages. This is what keeps the discrete divergence of B exactly zero
// under a 2D update; the averaging weights must be reproduced exactly,
// not merely approximated.
func (c *Context) ConstraintTransport2D(fx, fy []float64) {
	s := c.grid.S
	total := s.Total
	sx, sy := s.X, s.Y

	nCells := total / NFields
	fxBy := make([]float64, nCells)
	fyBx := make([]float64, nCells)

	for i := sx; i < total-sx; i += NFields {
		fxBy[i/NFields] = (2*at(fx, i+By, 0) + at(fx, i+By, sy) + at(fx, i+By, -sy) -
			at(fy, i+Bx, 0) - at(fy, i+Bx, sx) - at(fy, i+Bx, -sy) - at(fy, i+Bx, sx-sy)) * 0.125
		fyBx[i/NFields] = (2*at(fy, i+Bx, 0) + at(fy, i+Bx, sx) + at(fy, i+Bx, -sx) -
			at(fx, i+By, 0) - at(fx, i+By, sy) - at(fx, i+By, -sx) - at(fx, i+By, -sx+sy)) * 0.125
	}

	for i := 0; i < total; i += NFields {
		fx[i+Bx], fx[i+By] = 0.0, fxBy[i/NFields]
		fy[i+Bx], fy[i+By] = fyBx[i/NFields], 0.0
	}
}

// ConstraintTransport3D is the three-dimensional analogue of
// ConstraintTransport2D, cyclically averaging all three transverse EMF
// pairs.
func (c *Context) ConstraintTransport3D(fx, fy, fz []float64) {
	s := c.grid.S
	total := s.Total
	sx, sy, sz := s.X, s.Y, s.Z

	nCells := total / NFields
	fxBy := make([]float64, nCells)
	fxBz := make([]float64, nCells)
	fyBz := make([]float64, nCells)
	fyBx := make([]float64, nCells)
	fzBx := make([]float64, nCells)
	fzBy := make([]float64, nCells)

	for i := sx; i < total-sx; i += NFields {
		fxBy[i/NFields] = (2*at(fx, i+By, 0) + at(fx, i+By, sy) + at(fx, i+By, -sy) -
			at(fy, i+Bx, 0) - at(fy, i+Bx, sx) - at(fy, i+Bx, -sy) - at(fy, i+Bx, sx-sy)) * 0.125
		fyBx[i/NFields] = (2*at(fy, i+Bx, 0) + at(fy, i+Bx, sx) + at(fy, i+Bx, -sx) -
			at(fx, i+By, 0) - at(fx, i+By, sy) - at(fx, i+By, -sx) - at(fx, i+By, -sx+sy)) * 0.125

		fyBz[i/NFields] = (2*at(fy, i+Bz, 0) + at(fy, i+Bz, sz) + at(fy, i+Bz, -sz) -
			at(fz, i+By, 0) - at(fz, i+By, sy) - at(fz, i+By, -sz) - at(fz, i+By, sy-sz)) * 0.125
		fzBy[i/NFields] = (2*at(fz, i+By, 0) + at(fz, i+By, sy) + at(fz, i+By, -sy) -
			at(fy, i+Bz, 0) - at(fy, i+Bz, sz) - at(fy, i+Bz, -sy) - at(fy, i+Bz, -sy+sz)) * 0.125

		fzBx[i/NFields] = (2*at(fz, i+Bx, 0) + at(fz, i+Bx, sx) + at(fz, i+Bx, -sx) -
			at(fx, i+Bz, 0) - at(fx, i+Bz, sz) - at(fx, i+Bz, -sx) - at(fx, i+Bz, sz-sx)) * 0.125
		fxBz[i/NFields] = (2*at(fx, i+Bz, 0) + at(fx, i+Bz, sz) + at(fx, i+Bz, -sz) -
			at(fz, i+Bx, 0) - at(fz, i+Bx, sx) - at(fz, i+Bx, -sz) - at(fz, i+Bx, -sz+sx)) * 0.125
	}

	for i := 0; i < total; i += NFields {
		fx[i+Bx], fx[i+By], fx[i+Bz] = 0.0, fxBy[i/NFields], fxBz[i/NFields]
		fy[i+Bx], fy[i+By], fy[i+Bz] = fyBx[i/NFields], 0.0, fyBz[i/NFields]
		fz[i+Bx], fz[i+By], fz[i+Bz] = fzBx[i/NFields], fzBy[i/NFields], 0.0
	}
}

// at safely indexes buf at i+offset, returning 0 outside its bounds; the
// interior loop in ConstraintTransport{2,3}D never actually reaches out
// of bounds given the two-cell ghost width, but the helper keeps the
// index arithmetic above readable.
func at(buf []float64, i, offset int) float64 {
	idx := i + offset
	if idx < 0 || idx >= len(buf) {
		return 0
	}
	return buf[idx]
}

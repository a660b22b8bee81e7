package rmhd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintTransport2DZeroesOwnComponent(t *testing.T) {
	s := NewStrides(6, 6, 1)
	fx := make([]float64, s.Total)
	fy := make([]float64, s.Total)
	for i := 0; i < s.Total; i += NFields {
		PutCellAt(fx, i, Cell{Bx: 1.0, By: 2.0})
		PutCellAt(fy, i, Cell{Bx: 3.0, By: 4.0})
	}

	ctx := NewContext(DefaultConfig())
	ctx.grid = Grid{Nx: 6, Ny: 6, Nz: 1, S: s}
	ctx.ConstraintTransport2D(fx, fy)

	for i := 0; i < s.Total; i += NFields {
		assert.Zero(t, fx[i+Bx], "x-sweep flux carries no Bx component after CT")
		assert.Zero(t, fy[i+By], "y-sweep flux carries no By component after CT")
	}
}

func TestConstraintTransport3DZeroesOwnComponent(t *testing.T) {
	s := NewStrides(6, 6, 6)
	fx := make([]float64, s.Total)
	fy := make([]float64, s.Total)
	fz := make([]float64, s.Total)
	for i := 0; i < s.Total; i += NFields {
		PutCellAt(fx, i, Cell{Bx: 1.0, By: 2.0, Bz: 3.0})
		PutCellAt(fy, i, Cell{Bx: 4.0, By: 5.0, Bz: 6.0})
		PutCellAt(fz, i, Cell{Bx: 7.0, By: 8.0, Bz: 9.0})
	}

	ctx := NewContext(DefaultConfig())
	ctx.grid = Grid{Nx: 6, Ny: 6, Nz: 6, S: s}
	ctx.ConstraintTransport3D(fx, fy, fz)

	for i := 0; i < s.Total; i += NFields {
		assert.Zero(t, fx[i+Bx], "x-sweep flux carries no Bx component after 3D CT")
		assert.Zero(t, fy[i+By], "y-sweep flux carries no By component after 3D CT")
		assert.Zero(t, fz[i+Bz], "z-sweep flux carries no Bz component after 3D CT")
	}
}

func TestAtHelperClampsOutOfBounds(t *testing.T) {
	buf := []float64{1, 2, 3}
	assert.Equal(t, 0.0, at(buf, 0, -5))
	assert.Equal(t, 0.0, at(buf, 2, 5))
	assert.Equal(t, 2.0, at(buf, 1, 0))
}

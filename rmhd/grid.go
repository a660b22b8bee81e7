package rmhd

import (
	"errors"
	"fmt"
)

// Mode is the operating mode of a Context: Alive owns grid geometry and
// scratch buffers; Dead exposes only point-wise conversions and flux/
// wavespeed/Riemann evaluation.
type Mode uint8

const (
	Dead Mode = iota
	Alive
)

func (m Mode) String() string {
	if m == Alive {
		return "Alive"
	}
	return "Dead"
}

// Grid describes the physical and logical dimensions of a structured mesh.
type Grid struct {
	Nx, Ny, Nz int
	Lx, Ly, Lz float64
	Dx, Dy, Dz float64
	S          Strides
}

// scratch holds the buffers owned exclusively by an Alive Context: a
// cached primitive array, one flux buffer per axis, and the 4-velocity
// cache used by PLM4Velocity reconstruction.
type scratch struct {
	primitive        []float64
	fluxX, fluxY, fluxZ []float64
	ux, uy, uz       []float64
}

// Context carries every piece of state a solver run needs, explicitly:
// grid geometry, stride table, mode, the mutable Config, running
// counters, and (only when Alive) scratch buffers. Every rmhd entry point
// that needs solver state takes a *Context instead of touching
// package-level state; pure helpers such as PrimToConsPoint and
// SolveQuarticExact take their parameters directly.
type Context struct {
	mode Mode
	grid Grid
	cfg  Config

	// NewtonIterations is the cumulative count of Newton iterations spent
	// in ConsToPrim across the life of the Context.
	NewtonIterations int
	// MaxLambda is the largest in-range signal speed magnitude observed
	// since the last ResetMaxLambda call.
	MaxLambda float64

	sc scratch
}

// NewContext constructs a Dead context with the given configuration. Call
// Initialize to allocate a grid and scratch buffers and enter Alive mode.
func NewContext(cfg Config) *Context {
	return &Context{mode: Dead, cfg: cfg}
}

// Config returns a copy of the current configuration.
func (c *Context) Config() Config { return c.cfg }

// SetConfig replaces the configuration wholesale, mirroring set_state.
func (c *Context) SetConfig(cfg Config) { c.cfg = cfg }

// Mode reports whether the context is Alive or Dead.
func (c *Context) Mode() Mode { return c.mode }

// Grid returns the grid geometry; the zero value in Dead mode.
func (c *Context) Grid() Grid { return c.grid }

// ResetMaxLambda zeroes the tracked largest signal speed.
func (c *Context) ResetMaxLambda() { c.MaxLambda = 0 }

var errAlreadyAlive = errors.New("rmhd: Initialize called on an Alive context")
var errNotAlive = errors.New("rmhd: operation requires an Alive context")

// Initialize allocates scratch and transitions Dead -> Alive. p0 is a
// caller-owned primitive snapshot of length nx*ny*nz*NFields; it is
// copied, not retained.
func (c *Context) Initialize(p0 []float64, nx, ny, nz int, lx, ly, lz float64, quiet bool) error {
	if c.mode == Alive {
		return errAlreadyAlive
	}
	s := NewStrides(nx, ny, nz)
	if len(p0) != s.Total {
		return fmt.Errorf("rmhd: initial primitive array has length %d, want %d", len(p0), s.Total)
	}
	c.grid = Grid{
		Nx: nx, Ny: ny, Nz: nz,
		Lx: lx, Ly: ly, Lz: lz,
		Dx: lx / float64(nx-2*GhostWidth),
		Dy: ly / float64(ny-2*GhostWidth),
		Dz: lz / float64(nz-2*GhostWidth),
		S:  s,
	}
	c.sc.primitive = append([]float64(nil), p0...)
	c.sc.fluxX = make([]float64, s.Total)
	c.sc.fluxY = make([]float64, s.Total)
	c.sc.fluxZ = make([]float64, s.Total)
	nCells := s.Total / NFields
	c.sc.ux = make([]float64, nCells)
	c.sc.uy = make([]float64, nCells)
	c.sc.uz = make([]float64, nCells)
	c.mode = Alive
	if !quiet {
		fmt.Printf("gorelmhd: initialized Alive context, grid (%d,%d,%d), domain (%.3f,%.3f,%.3f)\n",
			nx, ny, nz, lx, ly, lz)
	}
	return nil
}

// Finalize releases scratch and transitions Alive -> Dead.
func (c *Context) Finalize() error {
	if c.mode != Alive {
		return errNotAlive
	}
	c.sc = scratch{}
	c.grid = Grid{}
	c.mode = Dead
	return nil
}

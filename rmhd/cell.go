// Package rmhd implements the relativistic magnetohydrodynamics
// finite-volume backend: primitive-variable recovery, characteristic
// wavespeeds, reconstruction, Riemann solvers, constraint transport, and
// the dU/dt driver for a structured Nx x Ny x Nz grid.
package rmhd

// Slot indices shared by both the conserved and primitive layouts. Only
// the first five slots differ in meaning between U and P; the magnetic
// field occupies the same three slots in both.
const (
	D   = 0 // conserved: rest-mass density x Lorentz factor
	Tau = 1 // conserved: total energy minus D
	Sx  = 2
	Sy  = 3
	Sz  = 4
	Bx  = 5
	By  = 6
	Bz  = 7

	Rho = 0 // primitive: rest density
	Pre = 1 // primitive: gas pressure
	Vx  = 2
	Vy  = 3
	Vz  = 4
)

// NFields is the fixed number of doubles carried by every cell.
const NFields = 8

// Cell is one cell's worth of state, primitive or conserved depending on
// context. It exists so index arithmetic over the flat grid buffer is
// centralized in one place; the wire layout is still a flat []float64.
type Cell [NFields]float64

// Axis selects which spatial direction a flux, reconstruction, or sweep
// operates along. It is an explicit parameter threaded through every
// call rather than a mutated package-level variable.
type Axis int

const (
	AxisX Axis = iota + 1
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Strides holds the per-axis stride table for a flat grid buffer: Total
// is the size of the whole buffer, X/Y/Z are the per-axis cell strides
// in units of float64, and NFields (8) is the innermost stride.
type Strides struct {
	Total  int // Nx*Ny*Nz*NFields
	X      int // Ny*Nz*NFields
	Y      int // Nz*NFields
	Z      int // NFields
}

// Of returns the stride associated with the given axis.
func (s Strides) Of(axis Axis) int {
	switch axis {
	case AxisX:
		return s.X
	case AxisY:
		return s.Y
	case AxisZ:
		return s.Z
	default:
		panic("rmhd: invalid axis")
	}
}

// NewStrides builds the stride table for an Nx x Ny x Nz grid of
// NFields-wide cells.
func NewStrides(nx, ny, nz int) Strides {
	return Strides{
		Total: nx * ny * nz * NFields,
		X:     ny * nz * NFields,
		Y:     nz * NFields,
		Z:     NFields,
	}
}

// CellAt reads the 8-field cell starting at flat index i.
func CellAt(data []float64, i int) (c Cell) {
	copy(c[:], data[i:i+NFields])
	return
}

// PutCellAt writes an 8-field cell starting at flat index i.
func PutCellAt(data []float64, i int, c Cell) {
	copy(data[i:i+NFields], c[:])
}

// GhostWidth is the number of ghost cells required on each side of every
// active dimension by the reconstruction/Riemann stencil.
const GhostWidth = 2

package rmhd

import (
	"math"
	"sync"
)

// ModeMisuseFailureCount is the RecoveryResult.FailureCount sentinel
// returned by DUdt1D/2D/3D when called on a Dead context. It is negative
// so callers can distinguish "wrong mode, nothing was touched" from an
// ordinary non-negative per-cell recovery failure count.
const ModeMisuseFailureCount = -1

// DUdt1D computes L = -dF/dx for the conserved array cons. The context
// must be Alive; its cached primitive array seeds the
// conservative-to-primitive recovery and is then replaced by the newly
// recovered primitives. Called on
// a Dead context it returns immediately without allocating or touching
// cons.
func (c *Context) DUdt1D(cons []float64) (l []float64, res RecoveryResult) {
	if c.mode != Alive {
		return nil, RecoveryResult{FailureCount: ModeMisuseFailureCount, FirstFailingIdx: -1}
	}
	prim, res := c.ConsToPrimArray(cons)

	f, ml := c.Fiph(prim, AxisX)
	if ml > c.MaxLambda {
		c.MaxLambda = ml
	}
	sx := c.grid.S.X

	l = make([]float64, len(cons))
	for i := sx; i < len(cons); i++ {
		l[i] = -(f[i] - f[i-sx]) / c.grid.Dx
	}
	return l, res
}

// DUdt2D computes L = -dF/dx - dG/dy, running the two axis sweeps
// concurrently (they read the same primitive array and write disjoint
// scratch buffers) before applying constraint transport and differencing.
// The goroutine-per-axis, WaitGroup-barrier shape mirrors how the
// axis-sweep stages are fanned out per partition elsewhere in this
// codebase.
func (c *Context) DUdt2D(cons []float64) (l []float64, res RecoveryResult) {
	if c.mode != Alive {
		return nil, RecoveryResult{FailureCount: ModeMisuseFailureCount, FirstFailingIdx: -1}
	}
	prim, res := c.ConsToPrimArray(cons)

	var fx, fy []float64
	var mlx, mly float64
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); fx, mlx = c.Fiph(prim, AxisX) }()
	go func() { defer wg.Done(); fy, mly = c.Fiph(prim, AxisY) }()
	wg.Wait()

	if ml := math.Max(mlx, mly); ml > c.MaxLambda {
		c.MaxLambda = ml
	}

	c.ConstraintTransport2D(fx, fy)

	sx, sy := c.grid.S.X, c.grid.S.Y
	l = make([]float64, len(cons))
	for i := sx; i < len(cons); i++ {
		l[i] = -(fx[i]-fx[i-sx])/c.grid.Dx - (fy[i]-fy[i-sy])/c.grid.Dy
	}
	return l, res
}

// DUdt3D is the three-dimensional analogue of DUdt2D, sweeping all three
// axes concurrently before 3D constraint transport.
func (c *Context) DUdt3D(cons []float64) (l []float64, res RecoveryResult) {
	if c.mode != Alive {
		return nil, RecoveryResult{FailureCount: ModeMisuseFailureCount, FirstFailingIdx: -1}
	}
	prim, res := c.ConsToPrimArray(cons)

	var fx, fy, fz []float64
	var mlx, mly, mlz float64
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); fx, mlx = c.Fiph(prim, AxisX) }()
	go func() { defer wg.Done(); fy, mly = c.Fiph(prim, AxisY) }()
	go func() { defer wg.Done(); fz, mlz = c.Fiph(prim, AxisZ) }()
	wg.Wait()

	if ml := math.Max(mlx, math.Max(mly, mlz)); ml > c.MaxLambda {
		c.MaxLambda = ml
	}

	c.ConstraintTransport3D(fx, fy, fz)

	sx, sy, sz := c.grid.S.X, c.grid.S.Y, c.grid.S.Z
	l = make([]float64, len(cons))
	for i := sx; i < len(cons); i++ {
		l[i] = -(fx[i]-fx[i-sx])/c.grid.Dx - (fy[i]-fy[i-sy])/c.grid.Dy - (fz[i]-fz[i-sz])/c.grid.Dz
	}
	return l, res
}

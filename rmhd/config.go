package rmhd

import (
	"fmt"
	"strings"
)

// RiemannMode selects the approximate Riemann solver used at each face.
type RiemannMode uint8

const (
	RiemannHLL RiemannMode = iota
	RiemannHLLC
)

var (
	riemannNames = map[string]RiemannMode{
		"hll":  RiemannHLL,
		"hllc": RiemannHLLC,
	}
	riemannPrintNames = []string{"HLL", "HLLC"}
)

func (m RiemannMode) String() string { return riemannPrintNames[m] }

// NewRiemannMode parses a case-insensitive solver name.
func NewRiemannMode(label string) (m RiemannMode, err error) {
	m, ok := riemannNames[strings.ToLower(label)]
	if !ok {
		err = fmt.Errorf("rmhd: unknown Riemann solver %q", label)
	}
	return
}

// ReconMode selects the reconstruction scheme feeding the Riemann solver.
type ReconMode uint8

const (
	ReconPiecewiseConstant ReconMode = iota
	ReconPLM3Velocity
	ReconPLM4Velocity
)

var (
	reconNames = map[string]ReconMode{
		"piecewiseconstant": ReconPiecewiseConstant,
		"plm3velocity":      ReconPLM3Velocity,
		"plm4velocity":      ReconPLM4Velocity,
	}
	reconPrintNames = []string{"Piecewise Constant", "PLM 3-Velocity", "PLM 4-Velocity"}
)

func (m ReconMode) String() string { return reconPrintNames[m] }

// NewReconMode parses a case-insensitive reconstruction name.
func NewReconMode(label string) (m ReconMode, err error) {
	m, ok := reconNames[strings.ToLower(label)]
	if !ok {
		err = fmt.Errorf("rmhd: unknown reconstruction mode %q", label)
	}
	return
}

// LimiterMode selects the slope limiter used by PLM reconstruction.
type LimiterMode uint8

const (
	LimiterMinmod LimiterMode = iota
	LimiterMonotonizedCentral
	LimiterHarmonicMean
)

var (
	limiterNames = map[string]LimiterMode{
		"minmod":              LimiterMinmod,
		"monotonizedcentral":  LimiterMonotonizedCentral,
		"harmonicmean":        LimiterHarmonicMean,
	}
	limiterPrintNames = []string{"Minmod", "Monotonized Central", "Harmonic Mean"}
)

func (m LimiterMode) String() string { return limiterPrintNames[m] }

// NewLimiterMode parses a case-insensitive limiter name.
func NewLimiterMode(label string) (m LimiterMode, err error) {
	m, ok := limiterNames[strings.ToLower(label)]
	if !ok {
		err = fmt.Errorf("rmhd: unknown slope limiter %q", label)
	}
	return
}

// QuarticMode selects the wavespeed quartic solver.
type QuarticMode uint8

const (
	QuarticExact QuarticMode = iota
	QuarticExactEigen
	QuarticApprox1
	QuarticApprox2
	QuarticNone
)

var (
	quarticNames = map[string]QuarticMode{
		"exact":      QuarticExact,
		"exacteigen": QuarticExactEigen,
		"approx1":    QuarticApprox1,
		"approx2":    QuarticApprox2,
		"none":       QuarticNone,
	}
	quarticPrintNames = []string{"Exact (Ferrari)", "Exact (gonum eigen)", "Approx1", "Approx2", "None"}
)

func (m QuarticMode) String() string { return quarticPrintNames[m] }

// NewQuarticMode parses a case-insensitive quartic-solver name.
func NewQuarticMode(label string) (m QuarticMode, err error) {
	m, ok := quarticNames[strings.ToLower(label)]
	if !ok {
		err = fmt.Errorf("rmhd: unknown quartic solver %q", label)
	}
	return
}

// Config carries every tunable of the solver: physical parameters, mode
// selectors, and diagnostic flags. It is a plain value copied in and out
// of a Context by SetConfig/Config, mirroring set_state/get_state.
type Config struct {
	Riemann    RiemannMode
	Recon      ReconMode
	Limiter    LimiterMode
	Quartic    QuarticMode

	AdiabaticGamma float64
	PlmTheta       float64

	UseEstimate bool
	Verbose     bool

	// UseGonumSolve routes the Newton 2x2 Jacobian solve through
	// gonum.org/v1/gonum/mat.Dense.Solve instead of the closed-form
	// inverse, as a cross-check path (see rmhd/primitive.go).
	UseGonumSolve bool
}

// DefaultConfig returns the library's default solver selectors: HLL,
// PLM 3-velocity reconstruction, minmod, the exact quartic solver, and
// Gamma=1.4.
func DefaultConfig() Config {
	return Config{
		Riemann:        RiemannHLL,
		Recon:          ReconPLM3Velocity,
		Limiter:        LimiterMinmod,
		Quartic:        QuarticExact,
		AdiabaticGamma: 1.4,
		PlmTheta:       2.0,
	}
}

const (
	pressureFloor      = 1e-10
	newtonTolerance    = 1e-6
	newtonMaxIters     = 25
	zClampBig          = 1e20
	wClampSmall        = 1.0
	wClampBig          = 1e12
)

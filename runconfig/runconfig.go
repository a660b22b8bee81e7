// Package runconfig loads the YAML run description consumed by the
// gorelmhd CLI: a flat, yaml-tagged struct with a Parse and a Print
// method.
package runconfig

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/jzrake/gorelmhd/rmhd"
)

// RunParameters is the on-disk description of one solver run: which
// scenario to seed, how long to run it, and which Config knobs to set.
// Field names mirror rmhd.Config's selectors so Parse needs no
// translation layer beyond string-to-enum, which happens in ToConfig.
type RunParameters struct {
	Title string `yaml:"Title"`

	Scenario string `yaml:"Scenario"`
	Nx       int    `yaml:"Nx"`
	Ny       int    `yaml:"Ny"`
	Nz       int    `yaml:"Nz"`
	Lx       float64 `yaml:"Lx"`
	Ly       float64 `yaml:"Ly"`
	Lz       float64 `yaml:"Lz"`

	CFL           float64 `yaml:"CFL"`
	FinalTime     float64 `yaml:"FinalTime"`
	MaxIterations int     `yaml:"MaxIterations"`

	Gamma    float64 `yaml:"Gamma"`
	PlmTheta float64 `yaml:"PlmTheta"`

	RiemannSolver  string `yaml:"RiemannSolver"`
	Reconstruction string `yaml:"Reconstruction"`
	SlopeLimiter   string `yaml:"SlopeLimiter"`
	QuarticSolver  string `yaml:"QuarticSolver"`

	UseEstimate bool `yaml:"UseEstimate"`
	Verbose     bool `yaml:"Verbose"`
}

// Default returns the parameters of the Brio-Wu shock tube, the CLI's
// out-of-the-box run.
func Default() RunParameters {
	return RunParameters{
		Title:          "Brio-Wu shock tube",
		Scenario:       "briowu",
		Nx:             404,
		Ny:             1,
		Nz:             1,
		Lx:             1.0,
		Ly:             1.0,
		Lz:             1.0,
		CFL:            0.4,
		FinalTime:      0.2,
		MaxIterations:  10000,
		Gamma:          2.0,
		PlmTheta:       2.0,
		RiemannSolver:  "hll",
		Reconstruction: "plm3velocity",
		SlopeLimiter:   "minmod",
		QuarticSolver:  "exact",
	}
}

// Parse unmarshals YAML bytes into rp.
func (rp *RunParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

// ToConfig translates the string-tagged solver selectors into an
// rmhd.Config, returning the first parse error encountered.
func (rp *RunParameters) ToConfig() (rmhd.Config, error) {
	cfg := rmhd.DefaultConfig()
	cfg.AdiabaticGamma = rp.Gamma
	cfg.PlmTheta = rp.PlmTheta
	cfg.UseEstimate = rp.UseEstimate
	cfg.Verbose = rp.Verbose

	riemann, err := rmhd.NewRiemannMode(rp.RiemannSolver)
	if err != nil {
		return cfg, err
	}
	recon, err := rmhd.NewReconMode(rp.Reconstruction)
	if err != nil {
		return cfg, err
	}
	limiter, err := rmhd.NewLimiterMode(rp.SlopeLimiter)
	if err != nil {
		return cfg, err
	}
	quartic, err := rmhd.NewQuarticMode(rp.QuarticSolver)
	if err != nil {
		return cfg, err
	}
	cfg.Riemann, cfg.Recon, cfg.Limiter, cfg.Quartic = riemann, recon, limiter, quartic
	return cfg, nil
}

// Print writes a tabular summary of rp to stdout, in the reference
// project's key/value listing style.
func (rp *RunParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%s]\t\t= Scenario\n", rp.Scenario)
	fmt.Printf("(%d,%d,%d)\t\t= Nx,Ny,Nz\n", rp.Nx, rp.Ny, rp.Nz)
	fmt.Printf("(%.3f,%.3f,%.3f)\t= Lx,Ly,Lz\n", rp.Lx, rp.Ly, rp.Lz)
	fmt.Printf("%8.5f\t\t= CFL\n", rp.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", rp.FinalTime)
	fmt.Printf("%d\t\t\t= MaxIterations\n", rp.MaxIterations)
	fmt.Printf("%8.5f\t\t= Gamma\n", rp.Gamma)
	fmt.Printf("[%s]\t\t= RiemannSolver\n", rp.RiemannSolver)
	fmt.Printf("[%s]\t= Reconstruction\n", rp.Reconstruction)
	fmt.Printf("[%s]\t\t= SlopeLimiter\n", rp.SlopeLimiter)
	fmt.Printf("[%s]\t\t= QuarticSolver\n", rp.QuarticSolver)
}

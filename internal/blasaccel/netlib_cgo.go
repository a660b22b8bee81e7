//go:build cgo
// +build cgo

// Package blasaccel swaps gonum's pure-Go BLAS implementation for netlib
// when cgo is available, accelerating the dense linear algebra the
// solver's Newton cross-check and quartic companion-matrix eigensolve
// route through gonum.org/v1/gonum/mat.
package blasaccel

/*
#cgo LDFLAGS: -lblas -llapacke -lgfortran -lm
#include <cblas.h>
#include <lapacke.h>
*/
import "C"

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("gorelmhd: using netlib to accelerate BLAS")
}

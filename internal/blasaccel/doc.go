// Package blasaccel is imported for its init side effect only: on cgo
// builds it swaps gonum's BLAS backend to netlib (see netlib_cgo.go). On
// non-cgo builds it does nothing, and gonum falls back to its pure-Go
// BLAS implementation.
package blasaccel

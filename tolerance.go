// Package cliffnet tolerance-based verification for floating-point comparisons
package cliffnet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int

	// CheckNaN determines if NaN values should be considered equal
	CheckNaN bool

	// CheckInf determines if Inf values of the same sign should be considered equal
	CheckInf bool
}

// DefaultTolerance returns default tolerance configuration
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   TestToleranceNormal,
		RelTol:   TestToleranceNormal,
		ULPTol:   4,
		CheckNaN: true,
		CheckInf: true,
	}
}

// StrictTolerance returns tolerance for exact algebraic identities
func StrictTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   TestToleranceStrict,
		RelTol:   TestToleranceStrict,
		ULPTol:   1,
		CheckNaN: true,
		CheckInf: true,
	}
}

// RelaxedTolerance returns tolerance for accumulated layer outputs
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   TestToleranceRelaxed,
		RelTol:   TestToleranceRelaxed,
		ULPTol:   64,
		CheckNaN: true,
		CheckInf: true,
	}
}

// NearEqual checks if two float64 values are equal within tolerance
func NearEqual(a, b float64, tol ToleranceConfig) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return tol.CheckInf && a == b
	}
	if scalar.EqualWithinAbsOrRel(a, b, tol.AbsTol, tol.RelTol) {
		return true
	}
	return tol.ULPTol > 0 && ULPDiff(a, b) <= uint64(tol.ULPTol)
}

// ULPDiff computes the difference in ULPs between two float64 values.
// Values of different sign report math.MaxUint64.
func ULPDiff(a, b float64) uint64 {
	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)
	if (aBits^bBits)>>63 != 0 {
		return math.MaxUint64
	}
	if aBits > bBits {
		return aBits - bBits
	}
	return bBits - aBits
}

// VerificationResult summarises an element-wise comparison
type VerificationResult struct {
	MaxAbsError float64
	MaxRelError float64
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifySlice compares two float64 slices and returns detailed results
func VerifySlice(expected, actual []float64, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}

	for i := range expected {
		if NearEqual(expected[i], actual[i], tol) {
			continue
		}
		result.NumErrors++
		if result.FirstError == -1 {
			result.FirstError = i
		}

		absDiff := math.Abs(expected[i] - actual[i])
		if absDiff > result.MaxAbsError || math.IsNaN(absDiff) {
			result.MaxAbsError = absDiff
		}
		if expected[i] != 0 {
			relDiff := absDiff / math.Abs(expected[i])
			if relDiff > result.MaxRelError {
				result.MaxRelError = relDiff
			}
		}
	}

	return result
}

// VerifyTensor compares two tensors of the same shape
func VerifyTensor(expected, actual *Tensor, tol ToleranceConfig) (VerificationResult, error) {
	if expected == nil || actual == nil {
		return VerificationResult{}, ErrNilTensor
	}
	if expected.batch != actual.batch {
		return VerificationResult{}, NewShapeError("VerifyTensor", "batch", expected.batch, actual.batch)
	}
	if expected.features != actual.features {
		return VerificationResult{}, NewShapeError("VerifyTensor", "features", expected.features, actual.features)
	}
	return VerifySlice(expected.data, actual.data, tol), nil
}

// Passed returns true if no element differed beyond tolerance
func (r VerificationResult) Passed() bool {
	return r.NumErrors == 0
}

// String formats the verification result for display
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return "PASS: All values match within tolerance"
	}

	errorRate := float64(r.NumErrors) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  Max relative error: %e\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.MaxRelError,
		r.FirstError)
}

// CheckFinite returns ErrNonFinite wrapped with the first offending
// position if t contains NaN or Inf. Forward never calls it; non-finite
// values are valid results.
func CheckFinite(t *Tensor) error {
	if t == nil {
		return ErrNilTensor
	}
	for i, v := range t.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b, f, k := t.unravel(i)
			return &Error{
				Type:    ErrTypeNumerical,
				Op:      "CheckFinite",
				Message: fmt.Sprintf("non-finite value %v at (%d, %d, %d)", v, b, f, k),
				Err:     ErrNonFinite,
				Context: [3]int{b, f, k},
			}
		}
	}
	return nil
}

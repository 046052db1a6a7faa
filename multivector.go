package cliffnet

import (
	"fmt"
	"math"
	"strings"
)

// Multivector is an element of Cl(3,0). Components are ordered
// s, e1, e2, e3, e12, e13, e23, e123. It is a value type; every operation
// returns a new Multivector.
type Multivector [NumComponents]float64

// Basis blades
var (
	One  = Multivector{IdxScalar: 1}
	E1   = Multivector{IdxE1: 1}
	E2   = Multivector{IdxE2: 1}
	E3   = Multivector{IdxE3: 1}
	E12  = Multivector{IdxE12: 1}
	E13  = Multivector{IdxE13: 1}
	E23  = Multivector{IdxE23: 1}
	E123 = Multivector{IdxPseudoscalar: 1}
)

var bladeNames = [NumComponents]string{"", "e1", "e2", "e3", "e12", "e13", "e23", "e123"}

// Basis returns the unit blade with index i. It panics if i is out of range.
func Basis(i int) Multivector {
	var m Multivector
	m[i] = 1
	return m
}

// Scalar returns a multivector with only a scalar part.
func Scalar(s float64) Multivector {
	return Multivector{IdxScalar: s}
}

// Vector returns the grade-1 multivector x*e1 + y*e2 + z*e3.
func Vector(x, y, z float64) Multivector {
	return Multivector{IdxE1: x, IdxE2: y, IdxE3: z}
}

// Product returns the geometric product a*b. The product is bilinear and
// associative but not commutative. Non-finite components propagate under
// IEEE arithmetic. Each output component is summed in ascending order of
// the left operand's blade index.
func Product(a, b Multivector) Multivector {
	var c Multivector
	for _, t := range cayley {
		c[t.Out] += t.Sign * a[t.Left] * b[t.Right]
	}
	return c
}

// Mul returns the geometric product m*b.
func (m Multivector) Mul(b Multivector) Multivector {
	return Product(m, b)
}

// Add returns m + b.
func (m Multivector) Add(b Multivector) Multivector {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

// Sub returns m - b.
func (m Multivector) Sub(b Multivector) Multivector {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

// Scale returns alpha*m.
func (m Multivector) Scale(alpha float64) Multivector {
	for i := range m {
		m[i] *= alpha
	}
	return m
}

// Neg returns -m.
func (m Multivector) Neg() Multivector {
	return m.Scale(-1)
}

// Reverse reverses the order of basis vectors in every blade, negating the
// bivector and pseudoscalar parts.
func (m Multivector) Reverse() Multivector {
	for i := IdxE12; i < NumComponents; i++ {
		m[i] = -m[i]
	}
	return m
}

// Scalar returns the grade-0 part.
func (m Multivector) Scalar() float64 { return m[IdxScalar] }

// Vector returns the e1, e2, e3 coefficients.
func (m Multivector) Vector() [3]float64 {
	return [3]float64{m[IdxE1], m[IdxE2], m[IdxE3]}
}

// Bivector returns the e12, e13, e23 coefficients.
func (m Multivector) Bivector() [3]float64 {
	return [3]float64{m[IdxE12], m[IdxE13], m[IdxE23]}
}

// Pseudoscalar returns the e123 coefficient.
func (m Multivector) Pseudoscalar() float64 { return m[IdxPseudoscalar] }

// Equal reports whether all eight components are identical.
func (m Multivector) Equal(b Multivector) bool {
	return m == b
}

// EqualApprox reports whether every component of m and b is equal within
// tol.
func (m Multivector) EqualApprox(b Multivector, tol ToleranceConfig) bool {
	for i := range m {
		if !NearEqual(m[i], b[i], tol) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is NaN or infinite.
func (m Multivector) IsFinite() bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// String formats m as a sum of blades, omitting zero terms.
func (m Multivector) String() string {
	var sb strings.Builder
	for i, v := range m {
		if v == 0 {
			continue
		}
		if sb.Len() > 0 {
			if v < 0 {
				sb.WriteString(" - ")
				v = -v
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(fmt.Sprintf("%g%s", v, bladeNames[i]))
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

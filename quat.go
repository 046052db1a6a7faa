package cliffnet

import "gonum.org/v1/gonum/num/quat"

// The even subalgebra of Cl(3,0) (scalar plus bivectors) is isomorphic to
// the quaternions under
//
//	1 ↔ 1,  -e23 ↔ i,  e13 ↔ j,  -e12 ↔ k
//
// so rotors compose exactly like unit quaternions.

// ToQuat returns the quaternion of m's even part. Vector and pseudoscalar
// components are dropped.
func ToQuat(m Multivector) quat.Number {
	return quat.Number{
		Real: m[IdxScalar],
		Imag: -m[IdxE23],
		Jmag: m[IdxE13],
		Kmag: -m[IdxE12],
	}
}

// FromQuat returns the even multivector corresponding to q.
func FromQuat(q quat.Number) Multivector {
	return Multivector{
		IdxScalar: q.Real,
		IdxE23:    -q.Imag,
		IdxE13:    q.Jmag,
		IdxE12:    -q.Kmag,
	}
}

// Even returns the scalar and bivector part of m.
func (m Multivector) Even() Multivector {
	return Multivector{
		IdxScalar: m[IdxScalar],
		IdxE12:    m[IdxE12],
		IdxE13:    m[IdxE13],
		IdxE23:    m[IdxE23],
	}
}

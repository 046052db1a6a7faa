package cliffnet

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 100; n++ {
		a := randomMultivector(rng)
		assert.Equal(t, a, Product(a, One), "a*1")
		assert.Equal(t, a, Product(One, a), "1*a")
	}
}

func TestBasisVectorsSquareToOne(t *testing.T) {
	for _, e := range []Multivector{E1, E2, E3} {
		assert.Equal(t, One, Product(e, e), "%v squared", e)
	}
}

func TestBasisBivectorsSquareToMinusOne(t *testing.T) {
	for _, e := range []Multivector{E12, E13, E23, E123} {
		assert.Equal(t, One.Neg(), Product(e, e), "%v squared", e)
	}
}

func TestAnticommutation(t *testing.T) {
	tests := []struct {
		name string
		a, b Multivector
		want Multivector
	}{
		{"e1e2", E1, E2, E12},
		{"e1e3", E1, E3, E13},
		{"e2e3", E2, E3, E23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Product(tt.a, tt.b)
			ba := Product(tt.b, tt.a)
			assert.Equal(t, tt.want, ab)
			assert.Equal(t, tt.want.Neg(), ba)
			assert.False(t, ab.Equal(ba), "product must not commute")
		})
	}
}

func TestPseudoscalar(t *testing.T) {
	assert.Equal(t, E123, Product(E1, Product(E2, E3)))
	assert.Equal(t, E123, Product(Product(E1, E2), E3))
	assert.Equal(t, Multivector{IdxPseudoscalar: 1}, E123)
}

func TestBladeCompositions(t *testing.T) {
	tests := []struct {
		name string
		a, b Multivector
		want Multivector
	}{
		{"e1*e12 = e2", E1, E12, E2},
		{"e12*e1 = -e2", E12, E1, E2.Neg()},
		{"e12*e13 = -e23", E12, E13, E23.Neg()},
		{"e13*e12 = e23", E13, E12, E23},
		{"e12*e23 = e13", E12, E23, E13},
		{"e123*e1 = e23", E123, E1, E23},
		{"e1*e23 = e123", E1, E23, E123},
		{"e2*e13 = -e123", E2, E13, E123.Neg()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Product(tt.a, tt.b))
		})
	}
}

func TestProductBilinearity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tol := DefaultTolerance()

	for n := 0; n < 200; n++ {
		a, b, c := randomMultivector(rng), randomMultivector(rng), randomMultivector(rng)
		alpha, beta := rng.NormFloat64(), rng.NormFloat64()

		left := Product(a.Scale(alpha).Add(b.Scale(beta)), c)
		wantLeft := Product(a, c).Scale(alpha).Add(Product(b, c).Scale(beta))
		require.True(t, left.EqualApprox(wantLeft, tol), "left linearity: %v != %v", left, wantLeft)

		right := Product(c, a.Scale(alpha).Add(b.Scale(beta)))
		wantRight := Product(c, a).Scale(alpha).Add(Product(c, b).Scale(beta))
		require.True(t, right.EqualApprox(wantRight, tol), "right linearity: %v != %v", right, wantRight)
	}
}

func TestProductAssociativity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tol := DefaultTolerance()

	for n := 0; n < 200; n++ {
		a, b, c := randomMultivector(rng), randomMultivector(rng), randomMultivector(rng)
		lhs := Product(Product(a, b), c)
		rhs := Product(a, Product(b, c))
		require.True(t, lhs.EqualApprox(rhs, tol), "(ab)c = %v, a(bc) = %v", lhs, rhs)
	}
}

func TestProductAssociativityOnBasis(t *testing.T) {
	for i := 0; i < NumComponents; i++ {
		for j := 0; j < NumComponents; j++ {
			for k := 0; k < NumComponents; k++ {
				a, b, c := Basis(i), Basis(j), Basis(k)
				assert.Equal(t, Product(Product(a, b), c), Product(a, Product(b, c)),
					"blades %d %d %d", i, j, k)
			}
		}
	}
}

func TestProductNonFinitePropagates(t *testing.T) {
	a := One
	a[IdxE1] = math.NaN()
	got := Product(a, E1)
	assert.True(t, math.IsNaN(got[IdxScalar]), "NaN should reach the scalar part")
	assert.False(t, got.IsFinite())

	b := Scalar(math.Inf(1))
	got = Product(b, E2)
	assert.True(t, math.IsInf(got[IdxE2], 1))
}

func TestMulMatchesProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a, b := randomMultivector(rng), randomMultivector(rng)
	assert.Equal(t, Product(a, b), a.Mul(b))
}

func TestReverse(t *testing.T) {
	m := Multivector{1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, Multivector{1, 2, 3, 4, -5, -6, -7, -8}, m.Reverse())

	// A vector times itself reversed is its squared length.
	v := Vector(1, 2, 2)
	assert.Equal(t, Scalar(9), Product(v, v.Reverse()))
}

func TestAccessors(t *testing.T) {
	m := Multivector{1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, 1.0, m.Scalar())
	assert.Equal(t, [3]float64{2, 3, 4}, m.Vector())
	assert.Equal(t, [3]float64{5, 6, 7}, m.Bivector())
	assert.Equal(t, 8.0, m.Pseudoscalar())
	assert.Equal(t, Multivector{1, 0, 0, 0, 5, 6, 7, 0}, m.Even())
}

func TestValueSemantics(t *testing.T) {
	m := Multivector{1, 2, 3, 4, 5, 6, 7, 8}
	orig := m
	_ = m.Add(One)
	_ = m.Scale(3)
	_ = m.Neg()
	_ = m.Reverse()
	assert.Equal(t, orig, m)
}

func TestBasis(t *testing.T) {
	all := []Multivector{One, E1, E2, E3, E12, E13, E23, E123}
	for i, want := range all {
		assert.Equal(t, want, Basis(i))
	}
	assert.Panics(t, func() { Basis(NumComponents) })
}

func TestMultivectorString(t *testing.T) {
	tests := []struct {
		m    Multivector
		want string
	}{
		{Multivector{}, "0"},
		{One, "1"},
		{Multivector{1, 2, 0, -3}, "1 + 2e1 - 3e3"},
		{E123.Scale(0.5), "0.5e123"},
		{Multivector{IdxE12: -1}, "-1e12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.m.String())
	}
}

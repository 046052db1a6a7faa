package cliffnet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureConstantsShape(t *testing.T) {
	table := StructureConstants()
	require.Len(t, table, NumComponents*NumComponents)

	// Every (left, right) pair appears once and every output blade
	// receives exactly eight terms.
	perOut := make([]int, NumComponents)
	for n, c := range table {
		assert.Equal(t, n/NumComponents, c.Left)
		assert.Equal(t, n%NumComponents, c.Right)
		assert.Contains(t, []float64{-1, 1}, c.Sign)
		perOut[c.Out]++
	}
	for k, n := range perOut {
		assert.Equal(t, NumComponents, n, "terms for blade %d", k)
	}
}

func TestStructureConstantsCopy(t *testing.T) {
	table := StructureConstants()
	table[0].Sign = -1
	out, sign := BladeProduct(0, 0)
	assert.Equal(t, IdxScalar, out)
	assert.Equal(t, 1.0, sign)
}

func TestBladeProductMatchesReference(t *testing.T) {
	ref := Reference{}
	for i := 0; i < NumComponents; i++ {
		for j := 0; j < NumComponents; j++ {
			out, sign := BladeProduct(i, j)
			want := ref.GeometricProduct(Basis(i), Basis(j))
			assert.Equal(t, Basis(out).Scale(sign), want, "blade %d * blade %d", i, j)
		}
	}
}

func TestProductMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ref := Reference{}
	tol := StrictTolerance()

	for n := 0; n < 500; n++ {
		a, b := randomMultivector(rng), randomMultivector(rng)
		got := Product(a, b)
		want := ref.GeometricProduct(a, b)
		require.True(t, got.EqualApprox(want, tol), "a=%v b=%v: got %v, want %v", a, b, got, want)
	}
}

func TestReorderSign(t *testing.T) {
	tests := []struct {
		a, b uint8
		want float64
	}{
		{0b001, 0b001, 1},  // e1 e1
		{0b001, 0b010, 1},  // e1 e2
		{0b010, 0b001, -1}, // e2 e1
		{0b011, 0b011, -1}, // e12 e12
		{0b111, 0b111, -1}, // e123 e123
		{0b100, 0b011, 1},  // e3 e12
		{0b110, 0b001, 1},  // e23 e1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reorderSign(tt.a, tt.b), "%03b * %03b", tt.a, tt.b)
	}
}

package cliffnet

import (
	"math/rand"
	"testing"
)

// randomMultivector draws every component from N(0, 1).
func randomMultivector(rng *rand.Rand) Multivector {
	var m Multivector
	for i := range m {
		m[i] = rng.NormFloat64()
	}
	return m
}

// randomTensor returns a (batch, features, 8) tensor of N(0, 1) values.
func randomTensor(rng *rand.Rand, batch, features int) *Tensor {
	t := newTensor(batch, features)
	for i := range t.data {
		t.data[i] = rng.NormFloat64()
	}
	return t
}

// NewLayerOrFail creates a layer and fails the test if unsuccessful
func NewLayerOrFail(t testing.TB, in, out int, opts ...LayerOption) *GeometricLayer {
	t.Helper()
	l, err := NewGeometricLayer(in, out, opts...)
	if err != nil {
		t.Fatalf("NewGeometricLayer(%d, %d) failed: %v", in, out, err)
	}
	return l
}

// ForwardOrFail runs a layer and fails the test if unsuccessful
func ForwardOrFail(t testing.TB, l *GeometricLayer, x *Tensor) *Tensor {
	t.Helper()
	y, err := l.Forward(x)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	return y
}

// dyadicInitializer fills parameters with small multiples of 1/8 from a
// counter shared by every call, so the values are exactly representable
// and every product in a small network is computed without rounding.
type dyadicInitializer struct {
	n int
}

func (d *dyadicInitializer) Init(params []float64) {
	for i := range params {
		params[i] = float64((d.n*7)%17-8) / 8
		d.n++
	}
}

package cliffnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTensor(t *testing.T) {
	x, err := NewTensor(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 3, NumComponents}, x.Dims())
	assert.Len(t, x.Data(), 2*3*NumComponents)

	_, err = NewTensor(-1, 3)
	assert.True(t, IsInvalidArgError(err), "got %v", err)
}

func TestNewTensorFrom(t *testing.T) {
	data := make([]float64, 2*NumComponents)
	data[NumComponents+IdxE2] = 5

	x, err := NewTensorFrom(1, 2, data)
	require.NoError(t, err)
	assert.Equal(t, E2.Scale(5), x.At(0, 1))

	_, err = NewTensorFrom(1, 3, data)
	assert.True(t, IsShapeError(err), "got %v", err)
}

func TestTensorAtSet(t *testing.T) {
	x, err := NewTensor(2, 2)
	require.NoError(t, err)

	m := Multivector{1, 2, 3, 4, 5, 6, 7, 8}
	x.Set(1, 0, m)
	assert.Equal(t, m, x.At(1, 0))
	assert.Equal(t, Multivector{}, x.At(0, 1))

	// Stored row-major: (b, f, k).
	assert.Equal(t, 1.0, x.Data()[(1*2+0)*NumComponents])

	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.Set(0, -1, m) })
}

func TestTensorCloneIsDeep(t *testing.T) {
	x, _ := NewTensor(1, 1)
	x.Set(0, 0, One)
	c := x.Clone()
	c.Set(0, 0, E1)
	assert.Equal(t, One, x.At(0, 0))
}

func TestTensorArithmetic(t *testing.T) {
	x, _ := NewTensor(1, 2)
	y, _ := NewTensor(1, 2)
	x.Set(0, 0, One)
	y.Set(0, 0, E1)
	y.Set(0, 1, E2)

	sum, err := x.Add(y)
	require.NoError(t, err)
	assert.Equal(t, Multivector{1, 1}, sum.At(0, 0))
	assert.Equal(t, E2, sum.At(0, 1))

	assert.Equal(t, E2.Scale(-2), y.Scale(-2).At(0, 1))

	z, _ := NewTensor(2, 2)
	_, err = x.Add(z)
	assert.True(t, IsShapeError(err))
	_, err = x.Add(nil)
	assert.ErrorIs(t, err, ErrNilTensor)
}

func TestTensorComponents(t *testing.T) {
	x, _ := NewTensor(2, 3)
	for b := 0; b < 2; b++ {
		for f := 0; f < 3; f++ {
			x.Set(b, f, Multivector{float64(b*10 + f), 0, 0, 0, 0, 0, 0, float64(-f)})
		}
	}

	s := x.Scalars()
	r, c := s.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 12.0, s.At(1, 2))

	p := x.Component(IdxPseudoscalar)
	assert.Equal(t, -2.0, p.At(0, 2))

	empty, _ := NewTensor(0, 3)
	assert.True(t, empty.Scalars().IsEmpty())

	assert.Panics(t, func() { x.Component(NumComponents) })
}

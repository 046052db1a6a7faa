package cliffnet

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tensor is a batch of multivector features with shape (batch, features, 8),
// stored row-major. It is the interchange format between layers.
type Tensor struct {
	batch    int
	features int
	data     []float64
}

// NewTensor returns a zero tensor of shape (batch, features, 8).
func NewTensor(batch, features int) (*Tensor, error) {
	if batch < 0 || features < 0 {
		return nil, NewInvalidArgError("NewTensor",
			fmt.Sprintf("negative dimension: batch=%d features=%d", batch, features))
	}
	return newTensor(batch, features), nil
}

func newTensor(batch, features int) *Tensor {
	return &Tensor{
		batch:    batch,
		features: features,
		data:     make([]float64, batch*features*NumComponents),
	}
}

// NewTensorFrom wraps data, which must hold batch*features*8 values. The
// tensor shares data with the caller.
func NewTensorFrom(batch, features int, data []float64) (*Tensor, error) {
	if batch < 0 || features < 0 {
		return nil, NewInvalidArgError("NewTensorFrom",
			fmt.Sprintf("negative dimension: batch=%d features=%d", batch, features))
	}
	if want := batch * features * NumComponents; len(data) != want {
		return nil, NewShapeError("NewTensorFrom", "data length", want, len(data))
	}
	return &Tensor{batch: batch, features: features, data: data}, nil
}

// Shape returns the batch and feature dimensions.
func (t *Tensor) Shape() (batch, features int) {
	return t.batch, t.features
}

// Dims returns the full shape (batch, features, 8).
func (t *Tensor) Dims() [3]int {
	return [3]int{t.batch, t.features, NumComponents}
}

// Data returns the backing slice in row-major order.
func (t *Tensor) Data() []float64 {
	return t.data
}

func (t *Tensor) offset(b, f int) int {
	if b < 0 || b >= t.batch || f < 0 || f >= t.features {
		panic(fmt.Sprintf("cliffnet: index (%d, %d) out of range for shape (%d, %d)", b, f, t.batch, t.features))
	}
	return (b*t.features + f) * NumComponents
}

func (t *Tensor) unravel(i int) (b, f, k int) {
	k = i % NumComponents
	i /= NumComponents
	return i / t.features, i % t.features, k
}

// At returns the multivector at (b, f).
func (t *Tensor) At(b, f int) Multivector {
	var m Multivector
	copy(m[:], t.data[t.offset(b, f):])
	return m
}

// Set stores m at (b, f).
func (t *Tensor) Set(b, f int, m Multivector) {
	copy(t.data[t.offset(b, f):], m[:])
}

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	c := newTensor(t.batch, t.features)
	copy(c.data, t.data)
	return c
}

// Add returns t + u element-wise.
func (t *Tensor) Add(u *Tensor) (*Tensor, error) {
	if u == nil {
		return nil, ErrNilTensor
	}
	if t.batch != u.batch || t.features != u.features {
		return nil, NewShapeError("Tensor.Add", "size", len(t.data), len(u.data))
	}
	out := t.Clone()
	floats.Add(out.data, u.data)
	return out, nil
}

// Scale returns alpha*t.
func (t *Tensor) Scale(alpha float64) *Tensor {
	out := t.Clone()
	floats.Scale(alpha, out.data)
	return out
}

// Component returns blade k of every multivector as a batch×features
// matrix. An empty tensor yields an empty matrix.
func (t *Tensor) Component(k int) *mat.Dense {
	if k < 0 || k >= NumComponents {
		panic(fmt.Sprintf("cliffnet: component %d out of range", k))
	}
	if t.batch == 0 || t.features == 0 {
		return &mat.Dense{}
	}
	vals := make([]float64, t.batch*t.features)
	for i := range vals {
		vals[i] = t.data[i*NumComponents+k]
	}
	return mat.NewDense(t.batch, t.features, vals)
}

// Scalars returns the scalar part of every multivector as a
// batch×features matrix.
func (t *Tensor) Scalars() *mat.Dense {
	return t.Component(IdxScalar)
}

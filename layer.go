package cliffnet

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"
)

// GeometricLayer is a dense layer over multivectors. Output feature i of
// batch row b is
//
//	sum_j Product(x[b, j], W[i, j]) + bias[i]
//
// The input is always the left operand; the product does not commute.
type GeometricLayer struct {
	in      int
	out     int
	weight  []float64 // (out, in, 8)
	bias    []float64 // (out, 8)
	workers int
}

type layerConfig struct {
	init    Initializer
	workers int
}

// LayerOption configures a GeometricLayer or Network at construction.
type LayerOption func(*layerConfig)

// WithSource draws initial parameters from N(0, 1) using src.
func WithSource(src rand.Source) LayerOption {
	return func(c *layerConfig) {
		c.init = NormalInitializer{Mu: DefaultInitMean, Sigma: DefaultInitStdDev, Src: src}
	}
}

// WithInitializer sets how parameters are initialised.
func WithInitializer(init Initializer) LayerOption {
	return func(c *layerConfig) {
		c.init = init
	}
}

// WithWorkers sets how many goroutines Forward may use. Zero or negative
// means one per CPU. Results do not depend on the worker count.
func WithWorkers(n int) LayerOption {
	return func(c *layerConfig) {
		c.workers = n
	}
}

func newLayerConfig(opts []LayerOption) layerConfig {
	c := layerConfig{
		init:    NormalInitializer{Mu: DefaultInitMean, Sigma: DefaultInitStdDev},
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewGeometricLayer creates a layer mapping in multivector features to out.
// Weights are initialised before biases.
func NewGeometricLayer(in, out int, opts ...LayerOption) (*GeometricLayer, error) {
	return newGeometricLayer(in, out, newLayerConfig(opts))
}

func newGeometricLayer(in, out int, cfg layerConfig) (*GeometricLayer, error) {
	if in <= 0 || out <= 0 {
		return nil, NewInvalidArgError("NewGeometricLayer",
			fmt.Sprintf("features must be positive: in=%d out=%d", in, out))
	}
	l := &GeometricLayer{
		in:      in,
		out:     out,
		weight:  make([]float64, out*in*NumComponents),
		bias:    make([]float64, out*NumComponents),
		workers: resolveWorkers(cfg.workers),
	}
	cfg.init.Init(l.weight)
	cfg.init.Init(l.bias)
	return l, nil
}

// InFeatures returns the number of input features.
func (l *GeometricLayer) InFeatures() int { return l.in }

// OutFeatures returns the number of output features.
func (l *GeometricLayer) OutFeatures() int { return l.out }

// Weight returns W[i, j].
func (l *GeometricLayer) Weight(i, j int) Multivector {
	var m Multivector
	copy(m[:], l.weight[l.weightOffset(i, j):])
	return m
}

// SetWeight sets W[i, j].
func (l *GeometricLayer) SetWeight(i, j int, m Multivector) {
	copy(l.weight[l.weightOffset(i, j):], m[:])
}

// Bias returns the bias of output feature i.
func (l *GeometricLayer) Bias(i int) Multivector {
	var m Multivector
	copy(m[:], l.bias[l.biasOffset(i):])
	return m
}

// SetBias sets the bias of output feature i.
func (l *GeometricLayer) SetBias(i int, m Multivector) {
	copy(l.bias[l.biasOffset(i):], m[:])
}

// Parameters returns the live weight (out, in, 8) and bias (out, 8) slices
// in row-major order. Writes through them update the layer; this is how
// optimisers apply gradient steps.
func (l *GeometricLayer) Parameters() (weight, bias []float64) {
	return l.weight, l.bias
}

func (l *GeometricLayer) weightOffset(i, j int) int {
	if i < 0 || i >= l.out || j < 0 || j >= l.in {
		panic(fmt.Sprintf("cliffnet: weight index (%d, %d) out of range for (%d, %d)", i, j, l.out, l.in))
	}
	return (i*l.in + j) * NumComponents
}

func (l *GeometricLayer) biasOffset(i int) int {
	if i < 0 || i >= l.out {
		panic(fmt.Sprintf("cliffnet: bias index %d out of range for %d", i, l.out))
	}
	return i * NumComponents
}

// Forward maps x of shape (batch, in, 8) to (batch, out, 8).
func (l *GeometricLayer) Forward(x *Tensor) (*Tensor, error) {
	return l.ForwardContext(context.Background(), x)
}

// ForwardContext is Forward with cancellation checked between blocks of
// output features. A feature-count mismatch is rejected before any work.
func (l *GeometricLayer) ForwardContext(ctx context.Context, x *Tensor) (*Tensor, error) {
	if x == nil {
		return nil, ErrNilTensor
	}
	if x.features != l.in {
		return nil, NewShapeError("GeometricLayer.Forward", "in_features", l.in, x.features)
	}

	y := newTensor(x.batch, l.out)
	err := parallelRange(ctx, l.out, l.workers, func(lo, hi int) {
		l.contract(x, y, lo, hi)
	})
	if err != nil {
		return nil, err
	}
	return y, nil
}

// contract computes output features [lo, hi) for every batch row as one
// contraction of input, weight and the structure constants. Terms are
// accumulated in a fixed order: input feature, then table order.
func (l *GeometricLayer) contract(x, y *Tensor, lo, hi int) {
	for b := 0; b < x.batch; b++ {
		xrow := x.data[b*l.in*NumComponents : (b+1)*l.in*NumComponents]
		for i := lo; i < hi; i++ {
			acc := y.data[(b*l.out+i)*NumComponents : (b*l.out+i+1)*NumComponents]
			for j := 0; j < l.in; j++ {
				xv := xrow[j*NumComponents : (j+1)*NumComponents]
				w := l.weight[(i*l.in+j)*NumComponents : (i*l.in+j+1)*NumComponents]
				for _, t := range cayley {
					acc[t.Out] += t.Sign * xv[t.Left] * w[t.Right]
				}
			}
			bias := l.bias[i*NumComponents : (i+1)*NumComponents]
			for k := range acc {
				acc[k] += bias[k]
			}
		}
	}
}

package cliffnet

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Network is a stack of GeometricLayers with ReLU between consecutive
// layers. The final layer's output is left unrectified.
type Network struct {
	layers []*GeometricLayer
}

// NewNetwork builds layers sizes[0]→sizes[1]→…→sizes[n-1]. All layers
// share the options, so a seeded source yields the same parameters on
// every call: layer by layer, weights before biases.
func NewNetwork(sizes []int, opts ...LayerOption) (*Network, error) {
	if len(sizes) < 2 {
		return nil, NewInvalidArgError("NewNetwork",
			fmt.Sprintf("need at least two sizes, got %d", len(sizes)))
	}
	cfg := newLayerConfig(opts)
	n := &Network{layers: make([]*GeometricLayer, 0, len(sizes)-1)}
	for i := 0; i+1 < len(sizes); i++ {
		l, err := newGeometricLayer(sizes[i], sizes[i+1], cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		n.layers = append(n.layers, l)
	}
	return n, nil
}

// NewPointCloudNetwork returns the 3→16→32→numClasses classifier over
// three lifted points per sample.
func NewPointCloudNetwork(numClasses int, opts ...LayerOption) (*Network, error) {
	return NewNetwork([]int{3, 16, 32, numClasses}, opts...)
}

// Layers returns the layers in evaluation order.
func (n *Network) Layers() []*GeometricLayer {
	return n.layers
}

// Sizes returns the feature count at every boundary, input first.
func (n *Network) Sizes() []int {
	sizes := make([]int, 0, len(n.layers)+1)
	sizes = append(sizes, n.layers[0].in)
	for _, l := range n.layers {
		sizes = append(sizes, l.out)
	}
	return sizes
}

// InFeatures returns the input feature count of the first layer.
func (n *Network) InFeatures() int { return n.layers[0].in }

// NumClasses returns the output feature count of the last layer.
func (n *Network) NumClasses() int { return n.layers[len(n.layers)-1].out }

// Forward evaluates every layer and returns the final (batch, classes, 8)
// tensor.
func (n *Network) Forward(x *Tensor) (*Tensor, error) {
	return n.ForwardContext(context.Background(), x)
}

// ForwardContext is Forward with cancellation.
func (n *Network) ForwardContext(ctx context.Context, x *Tensor) (*Tensor, error) {
	var err error
	for i, l := range n.layers {
		x, err = l.ForwardContext(ctx, x)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i)
		}
		if i < len(n.layers)-1 {
			ReLUInPlace(x)
		}
	}
	return x, nil
}

// Logits returns the scalar part of the final output as a batch×classes
// matrix.
func (n *Network) Logits(x *Tensor) (*mat.Dense, error) {
	y, err := n.Forward(x)
	if err != nil {
		return nil, err
	}
	return y.Scalars(), nil
}

// Classify returns the index of the largest logit for every batch row.
// Ties resolve to the lowest index.
func (n *Network) Classify(x *Tensor) ([]int, error) {
	logits, err := n.Logits(x)
	if err != nil {
		return nil, err
	}
	rows, _ := logits.Dims()
	classes := make([]int, rows)
	for r := range classes {
		classes[r] = floats.MaxIdx(logits.RawRowView(r))
	}
	return classes, nil
}

package cliffnet

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// checkpointVersion is bumped whenever the encoded layout changes.
const checkpointVersion = 1

type checkpoint struct {
	Version int          `msgpack:"version"`
	Layers  []layerState `msgpack:"layers"`
}

type layerState struct {
	In     int       `msgpack:"in"`
	Out    int       `msgpack:"out"`
	Weight []float64 `msgpack:"weight"`
	Bias   []float64 `msgpack:"bias"`
}

// MarshalBinary encodes every layer's parameters with msgpack.
func (n *Network) MarshalBinary() ([]byte, error) {
	ckpt := checkpoint{Version: checkpointVersion, Layers: make([]layerState, len(n.layers))}
	for i, l := range n.layers {
		ckpt.Layers[i] = layerState{In: l.in, Out: l.out, Weight: l.weight, Bias: l.bias}
	}
	data, err := msgpack.Marshal(&ckpt)
	if err != nil {
		return nil, NewIOError("Network.MarshalBinary", "encode checkpoint", err)
	}
	return data, nil
}

// UnmarshalBinary replaces n's layers with the decoded ones. Worker
// settings of existing layers are kept where the layer count matches.
func (n *Network) UnmarshalBinary(data []byte) error {
	var ckpt checkpoint
	if err := msgpack.Unmarshal(data, &ckpt); err != nil {
		return NewIOError("Network.UnmarshalBinary", "decode checkpoint", err)
	}
	layers, err := ckpt.layers()
	if err != nil {
		return err
	}
	if len(layers) == len(n.layers) {
		for i := range layers {
			layers[i].workers = n.layers[i].workers
		}
	}
	n.layers = layers
	return nil
}

func (c checkpoint) layers() ([]*GeometricLayer, error) {
	const op = "Network.UnmarshalBinary"
	if c.Version != checkpointVersion {
		return nil, NewIOError(op, fmt.Sprintf("unsupported checkpoint version %d", c.Version), nil)
	}
	if len(c.Layers) == 0 {
		return nil, NewIOError(op, "checkpoint has no layers", nil)
	}
	layers := make([]*GeometricLayer, len(c.Layers))
	for i, s := range c.Layers {
		if s.In <= 0 || s.Out <= 0 {
			return nil, NewIOError(op, fmt.Sprintf("layer %d: invalid size %dx%d", i, s.In, s.Out), nil)
		}
		if i > 0 && s.In != c.Layers[i-1].Out {
			return nil, NewShapeError(op, fmt.Sprintf("layer %d in_features", i), c.Layers[i-1].Out, s.In)
		}
		if want := s.Out * s.In * NumComponents; len(s.Weight) != want {
			return nil, NewShapeError(op, fmt.Sprintf("layer %d weight length", i), want, len(s.Weight))
		}
		if want := s.Out * NumComponents; len(s.Bias) != want {
			return nil, NewShapeError(op, fmt.Sprintf("layer %d bias length", i), want, len(s.Bias))
		}
		layers[i] = &GeometricLayer{
			in:      s.In,
			out:     s.Out,
			weight:  s.Weight,
			bias:    s.Bias,
			workers: DefaultWorkers,
		}
	}
	return layers, nil
}

// SaveCheckpoint writes the network's parameters to w.
func (n *Network) SaveCheckpoint(w io.Writer) error {
	data, err := n.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return NewIOError("Network.SaveCheckpoint", "write checkpoint", err)
	}
	return nil
}

// LoadCheckpoint reads a network written by SaveCheckpoint.
func LoadCheckpoint(r io.Reader, opts ...LayerOption) (*Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewIOError("LoadCheckpoint", "read checkpoint", err)
	}
	n := &Network{}
	if err := n.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	cfg := newLayerConfig(opts)
	for _, l := range n.layers {
		l.workers = resolveWorkers(cfg.workers)
	}
	return n, nil
}

package cliffnet

// ReLUFloat64 returns max(0, x). NaN is returned unchanged.
func ReLUFloat64(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// ReLU applies the rectifier to each of the eight components of every
// multivector independently and returns a new tensor. It does not use the
// algebra; blades are treated as plain numbers.
func ReLU(x *Tensor) *Tensor {
	out := x.Clone()
	ReLUInPlace(out)
	return out
}

// ReLUInPlace is ReLU overwriting x.
func ReLUInPlace(x *Tensor) {
	for i, v := range x.data {
		x.data[i] = ReLUFloat64(v)
	}
}

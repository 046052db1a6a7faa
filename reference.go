// Package cliffnet reference implementations for verification
package cliffnet

// Reference contains simple, obviously-correct implementations used to
// verify the table-driven kernels.
type Reference struct{}

// GeometricProduct expands the Cl(3,0) product component by component.
func (r Reference) GeometricProduct(a, b Multivector) Multivector {
	return Multivector{
		a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3] - a[4]*b[4] - a[5]*b[5] - a[6]*b[6] - a[7]*b[7],
		a[0]*b[1] + a[1]*b[0] - a[2]*b[4] - a[3]*b[5] + a[4]*b[2] + a[5]*b[3] - a[6]*b[7] - a[7]*b[6],
		a[0]*b[2] + a[1]*b[4] + a[2]*b[0] - a[3]*b[6] - a[4]*b[1] + a[5]*b[7] + a[6]*b[3] + a[7]*b[5],
		a[0]*b[3] + a[1]*b[5] + a[2]*b[6] + a[3]*b[0] - a[4]*b[7] - a[5]*b[1] - a[6]*b[2] - a[7]*b[4],
		a[0]*b[4] + a[1]*b[2] - a[2]*b[1] + a[3]*b[7] + a[4]*b[0] - a[5]*b[6] + a[6]*b[5] + a[7]*b[3],
		a[0]*b[5] + a[1]*b[3] - a[2]*b[7] - a[3]*b[1] + a[4]*b[6] + a[5]*b[0] - a[6]*b[4] - a[7]*b[2],
		a[0]*b[6] + a[1]*b[7] + a[2]*b[3] - a[3]*b[2] - a[4]*b[5] + a[5]*b[4] + a[6]*b[0] + a[7]*b[1],
		a[0]*b[7] + a[1]*b[6] - a[2]*b[5] + a[3]*b[4] + a[4]*b[3] - a[5]*b[2] + a[6]*b[1] + a[7]*b[0],
	}
}

// LayerForward evaluates a GeometricLayer one multivector pair at a time.
func (r Reference) LayerForward(l *GeometricLayer, x *Tensor) *Tensor {
	y := newTensor(x.batch, l.out)
	for b := 0; b < x.batch; b++ {
		for i := 0; i < l.out; i++ {
			var acc Multivector
			for j := 0; j < l.in; j++ {
				acc = acc.Add(r.GeometricProduct(x.At(b, j), l.Weight(i, j)))
			}
			y.Set(b, i, acc.Add(l.Bias(i)))
		}
	}
	return y
}

// ReLU applies max(0, x) in place.
func (r Reference) ReLU(x []float64) {
	for i := range x {
		if x[i] < 0 {
			x[i] = 0
		}
	}
}

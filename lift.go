package cliffnet

import "fmt"

// Point is a Euclidean point (x, y, z).
type Point [3]float64

// LiftPoint embeds p as 1 + x*e1 + y*e2 + z*e3.
func LiftPoint(p Point) Multivector {
	return Multivector{IdxScalar: 1, IdxE1: p[0], IdxE2: p[1], IdxE3: p[2]}
}

// Lift converts a batch of point sets to a (batch, numPoints, 8) tensor.
// Every row must hold the same number of points.
func Lift(points [][]Point) (*Tensor, error) {
	if len(points) == 0 {
		return newTensor(0, 0), nil
	}
	numPoints := len(points[0])
	t := newTensor(len(points), numPoints)
	for b, row := range points {
		if len(row) != numPoints {
			return nil, NewShapeError("Lift", fmt.Sprintf("points in batch row %d", b), numPoints, len(row))
		}
		for p, pt := range row {
			t.Set(b, p, LiftPoint(pt))
		}
	}
	return t, nil
}

// LiftDense is Lift for coordinates stored as a flat (batch, numPoints, 3)
// row-major slice.
func LiftDense(batch, numPoints int, coords []float64) (*Tensor, error) {
	if batch < 0 || numPoints < 0 {
		return nil, NewInvalidArgError("LiftDense",
			fmt.Sprintf("negative dimension: batch=%d points=%d", batch, numPoints))
	}
	if want := batch * numPoints * 3; len(coords) != want {
		return nil, NewShapeError("LiftDense", "coordinate count", want, len(coords))
	}
	t := newTensor(batch, numPoints)
	for i := 0; i < batch*numPoints; i++ {
		o := i * NumComponents
		t.data[o+IdxScalar] = 1
		t.data[o+IdxE1] = coords[3*i]
		t.data[o+IdxE2] = coords[3*i+1]
		t.data[o+IdxE3] = coords[3*i+2]
	}
	return t, nil
}

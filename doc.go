// Copyright ©2024 The GUDA Authors. All rights reserved.
// Copyright ©2025 The Cliffnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliffnet provides a geometric-algebra neural network core for CPU
// execution.
//
// Values are multivectors of the 3-D Euclidean Clifford algebra Cl(3,0):
// eight coefficients ordered as
//
//	s, e1, e2, e3, e12, e13, e23, e123
//
// The geometric product is evaluated from a frozen table of structure
// constants and is used as the multiply-accumulate primitive of a dense
// layer. The package includes:
//   - Multivector values and the geometric product
//   - Batch tensors of shape (batch, features, 8)
//   - GeometricLayer, a dense layer over multivectors
//   - ReLU and the point-to-multivector lift
//   - Network, a stack of layers producing scalar logits
//   - Parameter checkpoints and tolerance-based verification
//
// Example usage:
//
//	net, err := cliffnet.NewNetwork([]int{3, 16, 32, 10},
//		cliffnet.WithSource(rand.NewSource(42)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	x, _ := cliffnet.Lift(points) // (batch, 3, 8)
//	logits, err := net.Logits(x)  // (batch, 10)
package cliffnet

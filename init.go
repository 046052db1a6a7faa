package cliffnet

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer fills freshly allocated layer parameters. A layer calls Init
// twice on construction: once for its weights, then once for its biases.
type Initializer interface {
	Init(params []float64)
}

// InitFunc adapts a function to the Initializer interface.
type InitFunc func(params []float64)

// Init calls f(params).
func (f InitFunc) Init(params []float64) { f(params) }

// NormalInitializer draws every parameter from N(Mu, Sigma²). A nil Src
// uses the global source of golang.org/x/exp/rand.
type NormalInitializer struct {
	Mu    float64
	Sigma float64
	Src   rand.Source
}

// Init fills params with normal samples.
func (n NormalInitializer) Init(params []float64) {
	dist := distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: n.Src}
	for i := range params {
		params[i] = dist.Rand()
	}
}

// ConstantInitializer sets every parameter to Value.
type ConstantInitializer struct {
	Value float64
}

// Init fills params with c.Value.
func (c ConstantInitializer) Init(params []float64) {
	for i := range params {
		params[i] = c.Value
	}
}

package cliffnet

// NumComponents is the number of blade coefficients of a Cl(3,0) multivector.
const NumComponents = 8

// Blade indices into a Multivector.
const (
	IdxScalar       = 0
	IdxE1           = 1
	IdxE2           = 2
	IdxE3           = 3
	IdxE12          = 4
	IdxE13          = 5
	IdxE23          = 6
	IdxPseudoscalar = 7
)

// Layer construction defaults
const (
	// DefaultInitMean and DefaultInitStdDev parameterise the normal
	// distribution used for weights and biases.
	DefaultInitMean   = 0.0
	DefaultInitStdDev = 1.0

	// DefaultWorkers evaluates Forward on the calling goroutine.
	DefaultWorkers = 1
)

// Test tolerance levels for float64 comparisons
const (
	TestToleranceStrict  = 1e-12 // exact algebra on small inputs
	TestToleranceNormal  = 1e-9  // random inputs, a few products deep
	TestToleranceRelaxed = 1e-6  // accumulated layer outputs
)

package fluids

import (
	"fmt"
	"math"

	"github.com/procflow/procflow/units"
)

const (
	// LaminarCutoff is the Reynolds number below which f = 64/Re applies.
	LaminarCutoff = 2000.0

	colebrookInitialGuess = 0.02
	colebrookTolerance    = 1e-6
	colebrookMaxIter      = 100
)

// FrictionFactor computes the Darcy friction factor for pipe flow. Below
// the laminar cutoff it returns 64/Re; otherwise it solves the
// Colebrook–White equation.
func FrictionFactor(re float64, roughness units.Length, d units.Diameter) (units.Dimensionless, error) {
	f, _, err := FrictionFactorIterations(re, roughness, d)
	return f, err
}

// FrictionFactorIterations is FrictionFactor exposing the number of solver
// passes taken (zero in the laminar regime).
func FrictionFactorIterations(re float64, roughness units.Length, d units.Diameter) (units.Dimensionless, int, error) {
	if re <= 0 {
		return units.Dimensionless{}, 0, fmt.Errorf("reynolds number must be positive, got %g", re)
	}
	if d.Value() <= 0 {
		return units.Dimensionless{}, 0, fmt.Errorf("diameter must be positive, got %v", d)
	}
	if re < LaminarCutoff {
		return units.NewDimensionless(64.0 / re), 0, nil
	}
	f, n := Colebrook(re, roughness.Value()/d.Value())
	return units.NewDimensionless(f), n, nil
}

// Colebrook solves 1/√f = −2·log10(rel/3.7 + 2.51/(Re·√f)) by fixed-point
// iteration from f₀ = 0.02 with a 1e-6 tolerance and a 100-pass cap. When
// the cap is reached the last iterate is returned without error; callers
// that care can observe the returned iteration count.
func Colebrook(re, relativeRoughness float64) (f float64, iterations int) {
	return ColebrookTuned(re, relativeRoughness, colebrookTolerance, colebrookMaxIter)
}

// ColebrookTuned is Colebrook with a caller-supplied convergence tolerance
// and iteration cap.
func ColebrookTuned(re, relativeRoughness, tolerance float64, maxIter int) (f float64, iterations int) {
	f = colebrookInitialGuess
	for iterations = 1; iterations <= maxIter; iterations++ {
		rhs := -2.0 * math.Log10(relativeRoughness/3.7+2.51/(re*math.Sqrt(f)))
		next := 1.0 / (rhs * rhs)
		if math.Abs(next-f) < tolerance {
			return next, iterations
		}
		f = next
	}
	return f, maxIter
}

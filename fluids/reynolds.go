package fluids

import (
	"fmt"

	"github.com/procflow/procflow/units"
)

// Reynolds computes the Reynolds number Re = ρvD/μ. A kinematic viscosity
// is accepted directly as Re = vD/ν.
func Reynolds(rho units.Density, v units.Velocity, d units.Diameter, mu units.Viscosity) (units.Dimensionless, error) {
	if d.Value() <= 0 {
		return units.Dimensionless{}, fmt.Errorf("diameter must be positive, got %v", d)
	}
	if mu.Value() <= 0 {
		return units.Dimensionless{}, fmt.Errorf("viscosity must be positive, got %v", mu)
	}
	if mu.Kind() == units.Kinematic {
		return units.NewDimensionless(v.Value() * d.Value() / mu.Value()), nil
	}
	if rho.Value() <= 0 {
		return units.Dimensionless{}, fmt.Errorf("density must be positive, got %v", rho)
	}
	return units.NewDimensionless(rho.Value() * v.Value() * d.Value() / mu.Value()), nil
}

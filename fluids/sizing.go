package fluids

import (
	"fmt"
	"math"

	"github.com/procflow/procflow/units"
)

// OptimumDiameter estimates an economic pipe diameter from the empirical
// correlation D_opt[mm] = 293·W^0.53·ρ^-0.37, where W is the mass flow in
// kg/s. The result is a continuous value; snap it to a catalog size with
// standards.NearestDiameter.
func OptimumDiameter(q units.VolumetricFlowRate, rho units.Density) (units.Diameter, error) {
	if q.Value() <= 0 {
		return units.Diameter{}, fmt.Errorf("flow rate must be positive, got %v", q)
	}
	if rho.Value() <= 0 {
		return units.Diameter{}, fmt.Errorf("density must be positive, got %v", rho)
	}
	massFlow := q.Value() * rho.Value()
	mm := 293 * math.Pow(massFlow, 0.53) * math.Pow(rho.Value(), -0.37)
	return units.DiameterMillimeters(mm), nil
}

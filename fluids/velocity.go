package fluids

import (
	"fmt"
	"math"

	"github.com/procflow/procflow/units"
)

// CrossSectionalArea returns the flow area of a circular bore, A = πD²/4.
func CrossSectionalArea(d units.Diameter) float64 {
	return math.Pi * d.Value() * d.Value() / 4
}

// FluidVelocity computes the mean velocity v = Q/A for a circular pipe.
func FluidVelocity(q units.VolumetricFlowRate, d units.Diameter) (units.Velocity, error) {
	if d.Value() <= 0 {
		return units.Velocity{}, fmt.Errorf("diameter must be positive, got %v", d)
	}
	return units.MetersPerSecond(q.Value() / CrossSectionalArea(d)), nil
}

// FlowFromVelocity is the duality inverse of FluidVelocity: Q = v·A.
func FlowFromVelocity(v units.Velocity, d units.Diameter) (units.VolumetricFlowRate, error) {
	if d.Value() <= 0 {
		return units.VolumetricFlowRate{}, fmt.Errorf("diameter must be positive, got %v", d)
	}
	return units.CubicMetersPerSecond(v.Value() * CrossSectionalArea(d)), nil
}

// DiameterForVelocity returns the bore that carries flow q at velocity v,
// from A = Q/v.
func DiameterForVelocity(q units.VolumetricFlowRate, v units.Velocity) (units.Diameter, error) {
	if v.Value() <= 0 {
		return units.Diameter{}, fmt.Errorf("velocity must be positive, got %v", v)
	}
	area := q.Value() / v.Value()
	return units.DiameterMeters(math.Sqrt(4 * area / math.Pi)), nil
}

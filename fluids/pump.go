package fluids

import (
	"fmt"

	"github.com/procflow/procflow/units"
)

// PumpPower holds the hydraulic power imparted to the fluid and the shaft
// power required to drive the pump.
type PumpPower struct {
	Hydraulic units.Power
	Shaft     units.Power
}

// PumpPowerFromHead computes P_h = ρgQH and P_shaft = P_h/η.
func PumpPowerFromHead(q units.VolumetricFlowRate, head units.Length, rho units.Density, efficiency float64) (PumpPower, error) {
	if efficiency <= 0 || efficiency > 1 {
		return PumpPower{}, fmt.Errorf("efficiency must be in (0, 1], got %g", efficiency)
	}
	hydraulic := rho.Value() * Gravity * q.Value() * head.Value()
	return PumpPower{
		Hydraulic: units.Watts(hydraulic),
		Shaft:     units.Watts(hydraulic / efficiency),
	}, nil
}

// PumpPowerFromPressure computes pump power from a pressure rise,
// P_h = ΔP·Q.
func PumpPowerFromPressure(q units.VolumetricFlowRate, rise units.Pressure, efficiency float64) (PumpPower, error) {
	if efficiency <= 0 || efficiency > 1 {
		return PumpPower{}, fmt.Errorf("efficiency must be in (0, 1], got %g", efficiency)
	}
	hydraulic := rise.Value() * q.Value()
	return PumpPower{
		Hydraulic: units.Watts(hydraulic),
		Shaft:     units.Watts(hydraulic / efficiency),
	}, nil
}

package fluids

import (
	"fmt"
	"math"

	"github.com/procflow/procflow/units"
)

// Gravity is the standard gravitational acceleration, m/s².
const Gravity = 9.80665

// PressureDropDarcy computes the Darcy–Weisbach major loss
// ΔP = f·(L/D)·(ρv²/2).
func PressureDropDarcy(f units.Dimensionless, length units.Length, d units.Diameter, rho units.Density, v units.Velocity) (units.Pressure, error) {
	if d.Value() <= 0 {
		return units.Pressure{}, fmt.Errorf("diameter must be positive, got %v", d)
	}
	dp := f.Value() * (length.Value() / d.Value()) * (rho.Value() * v.Value() * v.Value() / 2)
	return units.Pascals(dp), nil
}

// PressureDropFanning computes the Fanning-form major loss
// ΔP = 4·f_F·(L/D)·(ρv²/2), where f_F is the Fanning friction factor
// (one quarter of the Darcy factor).
func PressureDropFanning(fanning units.Dimensionless, length units.Length, d units.Diameter, rho units.Density, v units.Velocity) (units.Pressure, error) {
	if d.Value() <= 0 {
		return units.Pressure{}, fmt.Errorf("diameter must be positive, got %v", d)
	}
	dp := 4 * fanning.Value() * (length.Value() / d.Value()) * (rho.Value() * v.Value() * v.Value() / 2)
	return units.Pascals(dp), nil
}

// PressureDropHazenWilliams computes the Hazen–Williams head loss
// h = 10.67·L·Q^1.852/(C^1.852·D^4.87) and converts it to a pressure drop
// ΔP = ρ·g·h. C is the dimensionless Hazen–Williams coefficient.
func PressureDropHazenWilliams(c float64, q units.VolumetricFlowRate, d units.Diameter, length units.Length, rho units.Density) (units.Pressure, error) {
	if c <= 0 {
		return units.Pressure{}, fmt.Errorf("hazen-williams coefficient must be positive, got %g", c)
	}
	if d.Value() <= 0 {
		return units.Pressure{}, fmt.Errorf("diameter must be positive, got %v", d)
	}
	head := 10.67 * length.Value() * math.Pow(q.Value(), 1.852) /
		(math.Pow(c, 1.852) * math.Pow(d.Value(), 4.87))
	return units.Pascals(rho.Value() * Gravity * head), nil
}

// MinorLossK computes a fitting loss from a velocity-head coefficient:
// ΔP = K·½ρv².
func MinorLossK(k float64, rho units.Density, v units.Velocity) units.Pressure {
	return units.Pascals(k * 0.5 * rho.Value() * v.Value() * v.Value())
}

// HeadToPressure converts a liquid column head to pressure, ΔP = ρgh.
func HeadToPressure(head units.Length, rho units.Density) units.Pressure {
	return units.Pascals(rho.Value() * Gravity * head.Value())
}

// PressureToHead converts a pressure difference to a liquid column head.
func PressureToHead(p units.Pressure, rho units.Density) (units.Length, error) {
	if rho.Value() <= 0 {
		return units.Length{}, fmt.Errorf("density must be positive, got %v", rho)
	}
	return units.Meters(p.Value() / (rho.Value() * Gravity)), nil
}

package units

import "fmt"

var volumetricFlowUnits = conversionTable{
	"m3/s":  1,
	"m3/h":  1.0 / 3600,
	"L/s":   1e-3,
	"L/min": 1e-3 / 60,
	"gpm":   6.30902e-5,
}

// VolumetricFlowRate is a volume per unit time. Base unit: m³/s.
type VolumetricFlowRate struct {
	v float64
}

// NewVolumetricFlowRate constructs a VolumetricFlowRate from a value and
// unit symbol.
func NewVolumetricFlowRate(value float64, unit string) (VolumetricFlowRate, error) {
	if err := nonNegative(value, "volumetric flow rate"); err != nil {
		return VolumetricFlowRate{}, err
	}
	base, err := volumetricFlowUnits.toBase(value, unit, "VolumetricFlowRate")
	if err != nil {
		return VolumetricFlowRate{}, err
	}
	return VolumetricFlowRate{v: base}, nil
}

// CubicMetersPerSecond constructs a VolumetricFlowRate directly in the base
// unit.
func CubicMetersPerSecond(v float64) VolumetricFlowRate { return VolumetricFlowRate{v: v} }

// Value returns the flow rate in m³/s.
func (q VolumetricFlowRate) Value() float64 { return q.v }

// To converts the flow rate to the given unit.
func (q VolumetricFlowRate) To(unit string) (float64, error) {
	return volumetricFlowUnits.fromBase(q.v, unit, "VolumetricFlowRate")
}

// Add returns the sum of two flow rates.
func (q VolumetricFlowRate) Add(o VolumetricFlowRate) VolumetricFlowRate {
	return VolumetricFlowRate{v: q.v + o.v}
}

// IsZero reports whether the flow rate is unset.
func (q VolumetricFlowRate) IsZero() bool { return q.v == 0 }

func (q VolumetricFlowRate) String() string { return fmt.Sprintf("%g m3/s", q.v) }

var massFlowUnits = conversionTable{
	"kg/s": 1,
	"kg/h": 1.0 / 3600,
	"t/h":  1000.0 / 3600,
	"lb/h": 0.45359237 / 3600,
}

// MassFlowRate is a mass per unit time. Base unit: kg/s.
type MassFlowRate struct {
	v float64
}

// NewMassFlowRate constructs a MassFlowRate from a value and unit symbol.
func NewMassFlowRate(value float64, unit string) (MassFlowRate, error) {
	if err := nonNegative(value, "mass flow rate"); err != nil {
		return MassFlowRate{}, err
	}
	base, err := massFlowUnits.toBase(value, unit, "MassFlowRate")
	if err != nil {
		return MassFlowRate{}, err
	}
	return MassFlowRate{v: base}, nil
}

// KilogramsPerSecond constructs a MassFlowRate directly in the base unit.
func KilogramsPerSecond(v float64) MassFlowRate { return MassFlowRate{v: v} }

// Value returns the mass flow in kg/s.
func (m MassFlowRate) Value() float64 { return m.v }

// To converts the mass flow to the given unit.
func (m MassFlowRate) To(unit string) (float64, error) {
	return massFlowUnits.fromBase(m.v, unit, "MassFlowRate")
}

// Add returns the sum of two mass flows.
func (m MassFlowRate) Add(o MassFlowRate) MassFlowRate { return MassFlowRate{v: m.v + o.v} }

// Volumetric converts the mass flow to a volumetric flow at the given
// density.
func (m MassFlowRate) Volumetric(rho Density) (VolumetricFlowRate, error) {
	if rho.Value() <= 0 {
		return VolumetricFlowRate{}, fmt.Errorf("density must be positive to convert mass flow, got %v", rho)
	}
	return VolumetricFlowRate{v: m.v / rho.Value()}, nil
}

// IsZero reports whether the mass flow is unset.
func (m MassFlowRate) IsZero() bool { return m.v == 0 }

func (m MassFlowRate) String() string { return fmt.Sprintf("%g kg/s", m.v) }

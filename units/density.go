package units

import "fmt"

var densityUnits = conversionTable{
	"kg/m3": 1,
	"g/cm3": 1000,
	"g/ml":  1000,
	"lb/ft3": 16.01846,
}

// Density is a mass per unit volume. Base unit: kg/m³.
type Density struct {
	v float64
}

// NewDensity constructs a Density from a value and unit symbol.
func NewDensity(value float64, unit string) (Density, error) {
	if err := nonNegative(value, "density"); err != nil {
		return Density{}, err
	}
	base, err := densityUnits.toBase(value, unit, "Density")
	if err != nil {
		return Density{}, err
	}
	return Density{v: base}, nil
}

// KilogramsPerCubicMeter constructs a Density directly in the base unit.
func KilogramsPerCubicMeter(v float64) Density { return Density{v: v} }

// Value returns the density in kg/m³.
func (d Density) Value() float64 { return d.v }

// To converts the density to the given unit.
func (d Density) To(unit string) (float64, error) {
	return densityUnits.fromBase(d.v, unit, "Density")
}

// Add returns the sum of two densities.
func (d Density) Add(o Density) Density { return Density{v: d.v + o.v} }

// IsZero reports whether the density is unset.
func (d Density) IsZero() bool { return d.v == 0 }

func (d Density) String() string { return fmt.Sprintf("%g kg/m3", d.v) }

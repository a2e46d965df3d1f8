package units

import "fmt"

var pressureUnits = conversionTable{
	"Pa":   1,
	"kPa":  1e3,
	"MPa":  1e6,
	"bar":  1e5,
	"mbar": 1e2,
	"atm":  101325,
	"psi":  6894.757,
}

// Pressure is a fluid pressure or pressure difference. Base unit: Pa.
type Pressure struct {
	v float64
}

// NewPressure constructs a Pressure from a value and unit symbol.
func NewPressure(value float64, unit string) (Pressure, error) {
	base, err := pressureUnits.toBase(value, unit, "Pressure")
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{v: base}, nil
}

// Pascals constructs a Pressure directly in the base unit.
func Pascals(v float64) Pressure { return Pressure{v: v} }

// Value returns the pressure in Pa.
func (p Pressure) Value() float64 { return p.v }

// To converts the pressure to the given unit.
func (p Pressure) To(unit string) (float64, error) {
	return pressureUnits.fromBase(p.v, unit, "Pressure")
}

// Add returns the sum of two pressures.
func (p Pressure) Add(o Pressure) Pressure { return Pressure{v: p.v + o.v} }

// Sub returns the difference of two pressures.
func (p Pressure) Sub(o Pressure) Pressure { return Pressure{v: p.v - o.v} }

// IsZero reports whether the pressure is unset.
func (p Pressure) IsZero() bool { return p.v == 0 }

func (p Pressure) String() string { return fmt.Sprintf("%g Pa", p.v) }

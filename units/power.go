package units

import "fmt"

var powerUnits = conversionTable{
	"W":  1,
	"kW": 1e3,
	"MW": 1e6,
	"hp": 745.699872,
}

// Power is an energy rate. Base unit: W.
type Power struct {
	v float64
}

// NewPower constructs a Power from a value and unit symbol.
func NewPower(value float64, unit string) (Power, error) {
	base, err := powerUnits.toBase(value, unit, "Power")
	if err != nil {
		return Power{}, err
	}
	return Power{v: base}, nil
}

// Watts constructs a Power directly in the base unit.
func Watts(v float64) Power { return Power{v: v} }

// Value returns the power in W.
func (p Power) Value() float64 { return p.v }

// To converts the power to the given unit.
func (p Power) To(unit string) (float64, error) {
	return powerUnits.fromBase(p.v, unit, "Power")
}

// Add returns the sum of two powers.
func (p Power) Add(o Power) Power { return Power{v: p.v + o.v} }

func (p Power) String() string { return fmt.Sprintf("%g W", p.v) }

// Dimensionless is a bare ratio such as a Reynolds number or friction
// factor.
type Dimensionless struct {
	v float64
}

// NewDimensionless wraps a plain number.
func NewDimensionless(v float64) Dimensionless { return Dimensionless{v: v} }

// Value returns the underlying number.
func (d Dimensionless) Value() float64 { return d.v }

// Add returns the sum of two dimensionless values.
func (d Dimensionless) Add(o Dimensionless) Dimensionless { return Dimensionless{v: d.v + o.v} }

func (d Dimensionless) String() string { return fmt.Sprintf("%g", d.v) }

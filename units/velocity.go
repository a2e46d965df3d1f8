package units

import "fmt"

var velocityUnits = conversionTable{
	"m/s":  1,
	"cm/s": 0.01,
	"km/h": 1.0 / 3.6,
	"ft/s": 0.3048,
}

// Velocity is a linear fluid speed. Base unit: m/s.
type Velocity struct {
	v float64
}

// NewVelocity constructs a Velocity from a value and unit symbol.
func NewVelocity(value float64, unit string) (Velocity, error) {
	base, err := velocityUnits.toBase(value, unit, "Velocity")
	if err != nil {
		return Velocity{}, err
	}
	return Velocity{v: base}, nil
}

// MetersPerSecond constructs a Velocity directly in the base unit.
func MetersPerSecond(v float64) Velocity { return Velocity{v: v} }

// Value returns the velocity in m/s.
func (v Velocity) Value() float64 { return v.v }

// To converts the velocity to the given unit.
func (v Velocity) To(unit string) (float64, error) {
	return velocityUnits.fromBase(v.v, unit, "Velocity")
}

// Add returns the sum of two velocities.
func (v Velocity) Add(o Velocity) Velocity { return Velocity{v: v.v + o.v} }

// IsZero reports whether the velocity is unset.
func (v Velocity) IsZero() bool { return v.v == 0 }

func (v Velocity) String() string { return fmt.Sprintf("%g m/s", v.v) }

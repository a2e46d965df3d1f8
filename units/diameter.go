package units

import "fmt"

var diameterUnits = conversionTable{
	"m":  1,
	"cm": 0.01,
	"mm": 0.001,
	"in": 0.0254,
	"ft": 0.3048,
}

// Diameter is a pipe bore or catalog designation. Base unit: meters.
// Distinct from Length so that nominal sizes and linear runs cannot be
// mixed accidentally.
type Diameter struct {
	v float64
}

// NewDiameter constructs a Diameter from a value and unit symbol.
func NewDiameter(value float64, unit string) (Diameter, error) {
	if err := nonNegative(value, "diameter"); err != nil {
		return Diameter{}, err
	}
	base, err := diameterUnits.toBase(value, unit, "Diameter")
	if err != nil {
		return Diameter{}, err
	}
	return Diameter{v: base}, nil
}

// DiameterMeters constructs a Diameter directly in meters.
func DiameterMeters(v float64) Diameter { return Diameter{v: v} }

// DiameterMillimeters constructs a Diameter from millimeters.
func DiameterMillimeters(v float64) Diameter { return Diameter{v: v * 0.001} }

// Value returns the diameter in meters.
func (d Diameter) Value() float64 { return d.v }

// To converts the diameter to the given unit.
func (d Diameter) To(unit string) (float64, error) {
	return diameterUnits.fromBase(d.v, unit, "Diameter")
}

// Add returns the sum of two diameters.
func (d Diameter) Add(o Diameter) Diameter { return Diameter{v: d.v + o.v} }

// IsZero reports whether the diameter is unset.
func (d Diameter) IsZero() bool { return d.v == 0 }

func (d Diameter) String() string { return fmt.Sprintf("%g mm", d.v*1000) }

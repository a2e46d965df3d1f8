package units

import "fmt"

var lengthUnits = conversionTable{
	"m":  1,
	"cm": 0.01,
	"mm": 0.001,
	"km": 1000,
	"in": 0.0254,
	"ft": 0.3048,
}

// Length is a linear extent. Base unit: meters.
type Length struct {
	v float64
}

// NewLength constructs a Length from a value and unit symbol.
func NewLength(value float64, unit string) (Length, error) {
	if err := nonNegative(value, "length"); err != nil {
		return Length{}, err
	}
	base, err := lengthUnits.toBase(value, unit, "Length")
	if err != nil {
		return Length{}, err
	}
	return Length{v: base}, nil
}

// Meters constructs a Length directly in the base unit.
func Meters(v float64) Length { return Length{v: v} }

// Millimeters constructs a Length from millimeters.
func Millimeters(v float64) Length { return Length{v: v * 0.001} }

// Value returns the length in meters.
func (l Length) Value() float64 { return l.v }

// To converts the length to the given unit.
func (l Length) To(unit string) (float64, error) {
	return lengthUnits.fromBase(l.v, unit, "Length")
}

// Add returns the sum of two lengths.
func (l Length) Add(o Length) Length { return Length{v: l.v + o.v} }

func (l Length) String() string { return fmt.Sprintf("%g m", l.v) }

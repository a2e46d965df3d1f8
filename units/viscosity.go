package units

import "fmt"

// ViscosityKind distinguishes dynamic from kinematic viscosity.
type ViscosityKind int

const (
	Dynamic   ViscosityKind = iota // Pa·s
	Kinematic                      // m²/s
)

var dynamicViscosityUnits = conversionTable{
	"Pa.s":  1,
	"Pa·s":  1,
	"mPa.s": 1e-3,
	"cP":    1e-3,
	"P":     0.1,
}

var kinematicViscosityUnits = conversionTable{
	"m2/s": 1,
	"St":   1e-4,
	"cSt":  1e-6,
}

// Viscosity is a fluid viscosity, dynamic (Pa·s) or kinematic (m²/s).
type Viscosity struct {
	v    float64
	kind ViscosityKind
}

// NewViscosity constructs a Viscosity, inferring the kind from the unit
// symbol (cP, Pa·s → dynamic; cSt, m2/s → kinematic).
func NewViscosity(value float64, unit string) (Viscosity, error) {
	if err := nonNegative(value, "viscosity"); err != nil {
		return Viscosity{}, err
	}
	if base, err := dynamicViscosityUnits.toBase(value, unit, "Viscosity"); err == nil {
		return Viscosity{v: base, kind: Dynamic}, nil
	}
	base, err := kinematicViscosityUnits.toBase(value, unit, "Viscosity")
	if err != nil {
		return Viscosity{}, fmt.Errorf("%q is not a valid unit for Viscosity (valid: %s, %s)",
			unit, dynamicViscosityUnits.valid(), kinematicViscosityUnits.valid())
	}
	return Viscosity{v: base, kind: Kinematic}, nil
}

// PascalSeconds constructs a dynamic Viscosity directly in Pa·s.
func PascalSeconds(v float64) Viscosity { return Viscosity{v: v, kind: Dynamic} }

// SquareMetersPerSecond constructs a kinematic Viscosity directly in m²/s.
func SquareMetersPerSecond(v float64) Viscosity { return Viscosity{v: v, kind: Kinematic} }

// Value returns the viscosity in its base unit (Pa·s or m²/s by kind).
func (m Viscosity) Value() float64 { return m.v }

// Kind reports whether the viscosity is dynamic or kinematic.
func (m Viscosity) Kind() ViscosityKind { return m.kind }

// To converts the viscosity to the given unit within its own kind.
func (m Viscosity) To(unit string) (float64, error) {
	if m.kind == Dynamic {
		return dynamicViscosityUnits.fromBase(m.v, unit, "Viscosity")
	}
	return kinematicViscosityUnits.fromBase(m.v, unit, "Viscosity")
}

// Dynamic returns the dynamic form, converting via density when kinematic.
func (m Viscosity) Dynamic(rho Density) Viscosity {
	if m.kind == Dynamic {
		return m
	}
	return Viscosity{v: m.v * rho.Value(), kind: Dynamic}
}

// Add returns the sum of two viscosities of the same kind.
func (m Viscosity) Add(o Viscosity) (Viscosity, error) {
	if m.kind != o.kind {
		return Viscosity{}, fmt.Errorf("cannot add dynamic and kinematic viscosities")
	}
	return Viscosity{v: m.v + o.v, kind: m.kind}, nil
}

// IsZero reports whether the viscosity is unset.
func (m Viscosity) IsZero() bool { return m.v == 0 }

func (m Viscosity) String() string {
	if m.kind == Dynamic {
		return fmt.Sprintf("%g Pa.s", m.v)
	}
	return fmt.Sprintf("%g m2/s", m.v)
}

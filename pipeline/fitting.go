package pipeline

import (
	"fmt"

	"github.com/procflow/procflow/standards"
	"github.com/procflow/procflow/units"
)

// Fitting is a minor-loss element: a valve, bend, tee, entrance or exit.
// It exposes both loss representations because the formulas differ: the
// K-factor method is ΔP = K·½ρv², while the equivalent-length method runs
// the fitting through Darcy–Weisbach with L replaced by Le (and therefore
// needs a friction factor from the flow context).
type Fitting struct {
	fittingType string
	diameter    units.Diameter // optional; needed for equivalent length
	quantity    int
	node        *Node
}

// NewFitting constructs a fitting of the given catalog type. A zero
// diameter is allowed but leaves diameter-dependent properties
// unavailable. Quantity defaults to 1.
func NewFitting(fittingType string, diameter units.Diameter, quantity int) (*Fitting, error) {
	if !standards.KnownFitting(fittingType) {
		return nil, fmt.Errorf("%w: unknown fitting type %q", ErrUnsupported, fittingType)
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: fitting quantity must be positive, got %d", ErrInvalidValue, quantity)
	}
	return &Fitting{fittingType: fittingType, diameter: diameter, quantity: quantity}, nil
}

// Type returns the catalog fitting type.
func (f *Fitting) Type() string { return f.fittingType }

// Diameter returns the fitting bore, zero if unset.
func (f *Fitting) Diameter() units.Diameter { return f.diameter }

// Quantity returns the number of identical fittings represented.
func (f *Fitting) Quantity() int { return f.quantity }

// Label implements Element.
func (f *Fitting) Label() string {
	if f.quantity > 1 {
		return fmt.Sprintf("%s x%d", f.fittingType, f.quantity)
	}
	return f.fittingType
}

// KFactor returns the total velocity-head coefficient for the fitting(s).
func (f *Fitting) KFactor() (units.Dimensionless, error) {
	k, err := standards.KFactor(f.fittingType)
	if err != nil {
		return units.Dimensionless{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return units.NewDimensionless(k * float64(f.quantity)), nil
}

// EquivalentLength returns the total straight-pipe length producing the
// same loss. The L/D factor is diameter-dependent, so a fitting without a
// diameter cannot answer.
func (f *Fitting) EquivalentLength() (units.Length, error) {
	factor, err := standards.EquivalentLengthFactor(f.fittingType)
	if err != nil {
		return units.Length{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	if f.diameter.IsZero() {
		return units.Length{}, fmt.Errorf("%w: equivalent length of %q is diameter-dependent and no diameter was supplied",
			ErrUnsupported, f.fittingType)
	}
	return units.Meters(factor * f.diameter.Value() * float64(f.quantity)), nil
}

// withDiameter returns a copy of the fitting with the bore set. The
// engine uses it to hand a bare fitting the host pipe's diameter; the
// receiver is never mutated.
func (f *Fitting) withDiameter(d units.Diameter) *Fitting {
	clone := *f
	clone.diameter = d
	return &clone
}

func (f *Fitting) String() string {
	return fmt.Sprintf("Fitting(%s, D=%v, qty=%d)", f.fittingType, f.diameter, f.quantity)
}

package units

import (
	"fmt"
	"sort"
	"strings"
)

// conversionTable maps a unit symbol to its factor relative to the SI base
// unit of the quantity.
type conversionTable map[string]float64

// toBase converts value expressed in unit into the base unit.
func (t conversionTable) toBase(value float64, unit, kind string) (float64, error) {
	f, ok := t[unit]
	if !ok {
		return 0, fmt.Errorf("%q is not a valid unit for %s (valid: %s)", unit, kind, t.valid())
	}
	return value * f, nil
}

// fromBase converts a base-unit value into unit.
func (t conversionTable) fromBase(base float64, unit, kind string) (float64, error) {
	f, ok := t[unit]
	if !ok {
		return 0, fmt.Errorf("%q is not a valid unit for %s (valid: %s)", unit, kind, t.valid())
	}
	return base / f, nil
}

func (t conversionTable) valid() string {
	names := make([]string, 0, len(t))
	for u := range t {
		names = append(names, u)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func nonNegative(value float64, kind string) error {
	if value < 0 {
		return fmt.Errorf("%s must be non-negative, got %g", kind, value)
	}
	return nil
}

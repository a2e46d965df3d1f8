package standards

import "fmt"

// Fitting loss data. K factors are velocity-head coefficients; equivalent
// length factors are L/D ratios, so the resulting length scales with the
// pipe bore.

var kFactors = map[string]float64{
	"elbow_90_std":      0.75,
	"elbow_90_long":     0.45,
	"elbow_45":          0.40,
	"tee_run":           0.40,
	"tee_branch":        1.00,
	"gate_valve_open":   0.17,
	"globe_valve_open":  6.00,
	"angle_valve_open":  2.00,
	"check_valve_swing": 2.00,
	"butterfly_valve":   0.90,
	"ball_valve_open":   0.05,
	"entrance_sharp":    0.50,
	"entrance_rounded":  0.04,
	"exit":              1.00,
	"coupling":          0.08,
	"strainer":          2.50,
}

var equivalentLengthFactors = map[string]float64{
	"elbow_90_std":      30,
	"elbow_90_long":     16,
	"elbow_45":          16,
	"tee_run":           20,
	"tee_branch":        60,
	"gate_valve_open":   8,
	"globe_valve_open":  340,
	"angle_valve_open":  150,
	"check_valve_swing": 100,
	"butterfly_valve":   45,
	"ball_valve_open":   3,
	"coupling":          2,
	"strainer":          85,
	// Miter bends are tabulated by equivalent length only.
	"miter_bend_90": 60,
}

// KnownFitting reports whether the given fitting name is in the catalog.
func KnownFitting(fitting string) bool {
	_, k := kFactors[fitting]
	_, le := equivalentLengthFactors[fitting]
	return k || le
}

// KFactor returns the velocity-head loss coefficient for a fitting type.
func KFactor(fitting string) (float64, error) {
	k, ok := kFactors[fitting]
	if !ok {
		return 0, fmt.Errorf("no K factor data for fitting %q", fitting)
	}
	return k, nil
}

// EquivalentLengthFactor returns the L/D ratio for a fitting type. The
// equivalent length itself is diameter-dependent: Le = factor × D.
func EquivalentLengthFactor(fitting string) (float64, error) {
	le, ok := equivalentLengthFactors[fitting]
	if !ok {
		return 0, fmt.Errorf("no equivalent length data for fitting %q", fitting)
	}
	return le, nil
}

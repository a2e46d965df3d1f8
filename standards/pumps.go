package standards

// DefaultPumpEfficiency applies to pump types without catalog data.
const DefaultPumpEfficiency = 0.70

var pumpEfficiencies = map[string]float64{
	"centrifugal":           0.70,
	"positive_displacement": 0.85,
	"gear":                  0.75,
	"screw":                 0.70,
	"diaphragm":             0.60,
	"reciprocating":         0.80,
}

// PumpEfficiency returns a representative efficiency fraction for a pump
// type, falling back to DefaultPumpEfficiency when the type is unknown.
func PumpEfficiency(pumpType string) float64 {
	if eff, ok := pumpEfficiencies[pumpType]; ok {
		return eff
	}
	return DefaultPumpEfficiency
}

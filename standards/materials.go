package standards

import "github.com/procflow/procflow/units"

// MaterialProperties describes a pipe material. Representative values;
// actual figures vary with grade and standard.
type MaterialProperties struct {
	Density             units.Density // solid density
	ThermalConductivity float64       // W/m·K
	RoughnessMM         float64       // absolute roughness, mm
	MaxTemperatureC     float64
	AllowableStressMPa  float64
	Notes               string
}

var materials = map[string]MaterialProperties{
	"CS": {
		Density:             units.KilogramsPerCubicMeter(7850),
		ThermalConductivity: 54,
		RoughnessMM:         0.045,
		MaxTemperatureC:     425,
		AllowableStressMPa:  138,
		Notes:               "Standard carbon steel, general process piping.",
	},
	"SS304": {
		Density:             units.KilogramsPerCubicMeter(8000),
		ThermalConductivity: 16.2,
		RoughnessMM:         0.015,
		MaxTemperatureC:     870,
		AllowableStressMPa:  137,
		Notes:               "Good corrosion resistance, general chemical service.",
	},
	"SS316": {
		Density:             units.KilogramsPerCubicMeter(8000),
		ThermalConductivity: 16.3,
		RoughnessMM:         0.015,
		MaxTemperatureC:     925,
		AllowableStressMPa:  137,
		Notes:               "Better corrosion resistance than SS304.",
	},
	"PVC": {
		Density:             units.KilogramsPerCubicMeter(1380),
		ThermalConductivity: 0.19,
		RoughnessMM:         0.0015,
		MaxTemperatureC:     60,
		AllowableStressMPa:  13.8,
		Notes:               "Water and low-pressure service.",
	},
	"CPVC": {
		Density:             units.KilogramsPerCubicMeter(1500),
		ThermalConductivity: 0.14,
		RoughnessMM:         0.0015,
		MaxTemperatureC:     90,
		AllowableStressMPa:  17,
		Notes:               "Higher temperature resistance than PVC.",
	},
	"HDPE": {
		Density:             units.KilogramsPerCubicMeter(950),
		ThermalConductivity: 0.42,
		RoughnessMM:         0.007,
		MaxTemperatureC:     60,
		AllowableStressMPa:  5,
		Notes:               "Corrosion resistant, low-pressure applications.",
	},
	"Copper": {
		Density:             units.KilogramsPerCubicMeter(8960),
		ThermalConductivity: 401,
		RoughnessMM:         0.0015,
		MaxTemperatureC:     200,
		AllowableStressMPa:  70,
		Notes:               "Heat exchanger and utility tubing.",
	},
	"Concrete": {
		Density:             units.KilogramsPerCubicMeter(2400),
		ThermalConductivity: 1.7,
		RoughnessMM:         0.3,
		MaxTemperatureC:     300,
		AllowableStressMPa:  3,
		Notes:               "Large-bore water transport.",
	},
	"Glass": {
		Density:             units.KilogramsPerCubicMeter(2500),
		ThermalConductivity: 1.0,
		RoughnessMM:         0.001,
		MaxTemperatureC:     150,
		AllowableStressMPa:  7,
		Notes:               "Corrosive service, lined piping.",
	},
}

// defaultRoughnessMM applies to unknown materials.
const defaultRoughnessMM = 0.05

// Roughness returns the absolute roughness for a material code, falling
// back to a documented default for unknown materials.
func Roughness(material string) units.Length {
	if m, ok := materials[material]; ok {
		return units.Millimeters(m.RoughnessMM)
	}
	return units.Millimeters(defaultRoughnessMM)
}

// Material returns the property record for a material code.
func Material(code string) (MaterialProperties, bool) {
	m, ok := materials[code]
	return m, ok
}

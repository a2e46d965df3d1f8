package components

import "github.com/procflow/procflow/units"

// Air is dry air at atmospheric pressure and 25 °C.
type Air struct{}

func (Air) Name() string { return "Air" }

func (Air) ServiceType() string { return "air" }

func (Air) Density() units.Density { return units.KilogramsPerCubicMeter(1.184) }

func (Air) Viscosity() units.Viscosity { return units.PascalSeconds(1.849e-5) }

// SaturatedSteam is saturated steam at the given absolute pressure in bar.
// Properties are coarse saturation-line values adequate for line sizing.
type SaturatedSteam struct {
	PressureBar float64
}

// steam saturation data: pressure bar(a) → density kg/m³, viscosity Pa·s.
var steamTable = []struct {
	pressureBar float64
	density     float64
	viscosity   float64
}{
	{1, 0.590, 1.22e-5},
	{2, 1.129, 1.27e-5},
	{5, 2.668, 1.34e-5},
	{10, 5.147, 1.42e-5},
	{20, 10.05, 1.53e-5},
	{40, 20.10, 1.68e-5},
}

func (s SaturatedSteam) Name() string { return "Saturated Steam" }

func (s SaturatedSteam) ServiceType() string { return "steam_saturated" }

func (s SaturatedSteam) Density() units.Density {
	return units.KilogramsPerCubicMeter(s.interp(func(i int) float64 { return steamTable[i].density }))
}

func (s SaturatedSteam) Viscosity() units.Viscosity {
	return units.PascalSeconds(s.interp(func(i int) float64 { return steamTable[i].viscosity }))
}

func (s SaturatedSteam) interp(col func(int) float64) float64 {
	p := s.PressureBar
	if p <= steamTable[0].pressureBar {
		return col(0)
	}
	for i := 1; i < len(steamTable); i++ {
		if p <= steamTable[i].pressureBar {
			lo, hi := steamTable[i-1].pressureBar, steamTable[i].pressureBar
			frac := (p - lo) / (hi - lo)
			return col(i-1) + frac*(col(i)-col(i-1))
		}
	}
	return col(len(steamTable) - 1)
}

// Brine is a calcium chloride brine near -5 °C, a common refrigeration
// carrier.
type Brine struct{}

func (Brine) Name() string { return "CaCl2 Brine" }

func (Brine) ServiceType() string { return "brine" }

func (Brine) Density() units.Density { return units.KilogramsPerCubicMeter(1190) }

func (Brine) Viscosity() units.Viscosity { return units.PascalSeconds(4.0e-3) }

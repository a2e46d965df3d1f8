package components

import "github.com/procflow/procflow/units"

// waterProps holds density (kg/m³) and dynamic viscosity (mPa·s) at a
// temperature in °C.
type waterProps struct {
	tempC     float64
	density   float64
	viscosity float64
}

// Liquid water at atmospheric pressure, 0–100 °C.
var waterTable = []waterProps{
	{0, 999.8, 1.792},
	{10, 999.7, 1.307},
	{20, 998.2, 1.002},
	{25, 997.0, 0.890},
	{30, 995.7, 0.798},
	{40, 992.2, 0.653},
	{50, 988.0, 0.547},
	{60, 983.2, 0.467},
	{70, 977.8, 0.404},
	{80, 971.8, 0.355},
	{90, 965.3, 0.315},
	{100, 958.4, 0.282},
}

// Water is liquid water with temperature-dependent properties.
type Water struct {
	TemperatureC float64
}

// NewWater returns water at the given temperature, clamped to 0–100 °C.
func NewWater(temperatureC float64) Water {
	if temperatureC < 0 {
		temperatureC = 0
	}
	if temperatureC > 100 {
		temperatureC = 100
	}
	return Water{TemperatureC: temperatureC}
}

func (w Water) Name() string { return "Water" }

func (w Water) ServiceType() string { return "water" }

func (w Water) Density() units.Density {
	return units.KilogramsPerCubicMeter(w.interp(func(p waterProps) float64 { return p.density }))
}

func (w Water) Viscosity() units.Viscosity {
	return units.PascalSeconds(w.interp(func(p waterProps) float64 { return p.viscosity }) * 1e-3)
}

// interp linearly interpolates a property column at the water temperature.
func (w Water) interp(col func(waterProps) float64) float64 {
	t := w.TemperatureC
	if t <= waterTable[0].tempC {
		return col(waterTable[0])
	}
	for i := 1; i < len(waterTable); i++ {
		if t <= waterTable[i].tempC {
			lo, hi := waterTable[i-1], waterTable[i]
			frac := (t - lo.tempC) / (hi.tempC - lo.tempC)
			return col(lo) + frac*(col(hi)-col(lo))
		}
	}
	return col(waterTable[len(waterTable)-1])
}

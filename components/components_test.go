package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procflow/procflow/units"
)

func TestWaterAtTablePoints(t *testing.T) {
	w := NewWater(25)
	assert.InDelta(t, 997.0, w.Density().Value(), 1e-6)
	assert.InDelta(t, 0.890e-3, w.Viscosity().Value(), 1e-9)
	assert.Equal(t, units.Dynamic, w.Viscosity().Kind())
	assert.Equal(t, "water", w.ServiceType())
}

func TestWaterInterpolatesBetweenPoints(t *testing.T) {
	w := NewWater(35)
	// Midway between the 30 and 40 °C rows.
	assert.InDelta(t, (995.7+992.2)/2, w.Density().Value(), 1e-6)
	assert.InDelta(t, (0.798+0.653)/2*1e-3, w.Viscosity().Value(), 1e-9)
}

func TestWaterClampsTemperature(t *testing.T) {
	cold := NewWater(-20)
	assert.InDelta(t, 999.8, cold.Density().Value(), 1e-6)

	hot := NewWater(150)
	assert.InDelta(t, 958.4, hot.Density().Value(), 1e-6)
}

func TestAir(t *testing.T) {
	a := Air{}
	assert.InDelta(t, 1.184, a.Density().Value(), 1e-9)
	assert.InDelta(t, 1.849e-5, a.Viscosity().Value(), 1e-12)
	assert.Equal(t, "air", a.ServiceType())
}

func TestSaturatedSteamInterpolation(t *testing.T) {
	s := SaturatedSteam{PressureBar: 10}
	assert.InDelta(t, 5.147, s.Density().Value(), 1e-6)

	mid := SaturatedSteam{PressureBar: 3.5}
	// Midway between the 2 and 5 bar rows.
	assert.InDelta(t, (1.129+2.668)/2, mid.Density().Value(), 1e-6)

	// Out-of-table pressures clamp to the nearest row.
	low := SaturatedSteam{PressureBar: 0.2}
	assert.InDelta(t, 0.590, low.Density().Value(), 1e-6)
	assert.Equal(t, "steam_saturated", s.ServiceType())
}

func TestCustomFluid(t *testing.T) {
	c := Custom{
		FluidName: "glycol 30%",
		Rho:       units.KilogramsPerCubicMeter(1040),
		Mu:        units.PascalSeconds(2.5e-3),
		Service:   "cooling_water",
	}
	assert.Equal(t, "glycol 30%", c.Name())
	assert.InDelta(t, 1040, c.Density().Value(), 1e-9)
	assert.Equal(t, "cooling_water", c.ServiceType())
}

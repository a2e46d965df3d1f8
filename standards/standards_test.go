package standards

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procflow/procflow/units"
)

func TestInternalDiameterLookup(t *testing.T) {
	d, ok := InternalDiameter(units.DiameterMillimeters(50), "40")
	require.True(t, ok)
	assert.InDelta(t, 0.0525, d.Value(), 1e-9)

	d, ok = InternalDiameter(units.DiameterMillimeters(100), "80")
	require.True(t, ok)
	assert.InDelta(t, 0.0972, d.Value(), 1e-9)
}

func TestScheduleAliases(t *testing.T) {
	std, ok := InternalDiameter(units.DiameterMillimeters(80), "STD")
	require.True(t, ok)
	sch40, _ := InternalDiameter(units.DiameterMillimeters(80), "40")
	assert.Equal(t, sch40, std)

	xs, ok := InternalDiameter(units.DiameterMillimeters(80), "XS")
	require.True(t, ok)
	sch80, _ := InternalDiameter(units.DiameterMillimeters(80), "80")
	assert.Equal(t, sch80, xs)
}

func TestInternalDiameterUnknownPair(t *testing.T) {
	_, ok := InternalDiameter(units.DiameterMillimeters(33), "40")
	assert.False(t, ok)
	_, ok = InternalDiameter(units.DiameterMillimeters(50), "160")
	assert.False(t, ok)
}

func TestWallThickness(t *testing.T) {
	w, ok := WallThickness(units.DiameterMillimeters(150), "80")
	require.True(t, ok)
	assert.InDelta(t, 0.01097, w.Value(), 1e-9)
}

func TestNominalSizesAscending(t *testing.T) {
	sizes := NominalSizes()
	require.NotEmpty(t, sizes)
	for i := 1; i < len(sizes); i++ {
		assert.Less(t, sizes[i-1].Value(), sizes[i].Value())
	}
}

func TestNearestDiameterSnapsToCatalog(t *testing.T) {
	got := NearestDiameter(units.DiameterMillimeters(77))
	assert.InDelta(t, 0.080, got.Value(), 1e-9)

	got = NearestDiameter(units.DiameterMillimeters(30))
	assert.InDelta(t, 0.025, got.Value(), 1e-9)

	// Beyond the catalog clamps to the largest size.
	got = NearestDiameter(units.DiameterMillimeters(900))
	assert.InDelta(t, 0.300, got.Value(), 1e-9)
}

func TestNearestDiameterMinimizesDifference(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("snapped size is never farther than any catalog size", prop.ForAll(
		func(mm float64) bool {
			computed := units.DiameterMillimeters(mm)
			best := NearestDiameter(computed)
			bestDiff := math.Abs(best.Value() - computed.Value())
			for _, s := range NominalSizes() {
				if math.Abs(s.Value()-computed.Value()) < bestDiff {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1, 500),
	))

	properties.TestingRun(t)
}

func TestRoughnessByMaterial(t *testing.T) {
	assert.InDelta(t, 0.045e-3, Roughness("CS").Value(), 1e-12)
	// Unknown materials fall back to the generic value.
	assert.InDelta(t, 0.05e-3, Roughness("unobtainium").Value(), 1e-12)
	assert.InDelta(t, 0.05e-3, Roughness("").Value(), 1e-12)
}

func TestFittingCatalog(t *testing.T) {
	assert.True(t, KnownFitting("elbow_90_std"))
	assert.False(t, KnownFitting("teleporter"))

	k, err := KFactor("globe_valve_open")
	require.NoError(t, err)
	assert.InDelta(t, 6.0, k, 1e-9)

	le, err := EquivalentLengthFactor("gate_valve_open")
	require.NoError(t, err)
	assert.InDelta(t, 8, le, 1e-9)

	_, err = KFactor("teleporter")
	assert.Error(t, err)

	// Miter bends carry only equivalent-length data.
	assert.True(t, KnownFitting("miter_bend_90"))
	_, err = KFactor("miter_bend_90")
	assert.Error(t, err)
	le, err = EquivalentLengthFactor("miter_bend_90")
	require.NoError(t, err)
	assert.InDelta(t, 60, le, 1e-9)
}

func TestVelocityBands(t *testing.T) {
	band, ok := RecommendedVelocity("water")
	require.True(t, ok)
	assert.True(t, band.Range)
	assert.True(t, band.Contains(units.MetersPerSecond(2.0), 0.1))
	assert.False(t, band.Contains(units.MetersPerSecond(3.5), 0.1))
	assert.InDelta(t, 2.0, band.Midpoint().Value(), 1e-9)

	target, ok := RecommendedVelocity("condensate")
	require.True(t, ok)
	assert.False(t, target.Range)
	assert.True(t, target.Contains(units.MetersPerSecond(1.05), 0.1))
	assert.False(t, target.Contains(units.MetersPerSecond(1.25), 0.1))
	assert.InDelta(t, 1.0, target.Midpoint().Value(), 1e-9)

	_, ok = RecommendedVelocity("molten_salt")
	assert.False(t, ok)
}

func TestPumpEfficiencyDefaults(t *testing.T) {
	assert.InDelta(t, 0.70, PumpEfficiency("centrifugal"), 1e-9)
	assert.InDelta(t, DefaultPumpEfficiency, PumpEfficiency("unknown-type"), 1e-9)
}

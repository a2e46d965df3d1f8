package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthConversions(t *testing.T) {
	l, err := NewLength(2500, "mm")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, l.Value(), 1e-12)

	ft, err := l.To("ft")
	require.NoError(t, err)
	assert.InDelta(t, 8.2021, ft, 1e-3)
}

func TestLengthRejectsUnknownUnit(t *testing.T) {
	_, err := NewLength(1, "furlong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "furlong")
}

func TestLengthRejectsNegative(t *testing.T) {
	_, err := NewLength(-1, "m")
	assert.Error(t, err)
}

func TestDiameterMillimeters(t *testing.T) {
	d := DiameterMillimeters(52.5)
	assert.InDelta(t, 0.0525, d.Value(), 1e-12)
	assert.False(t, d.IsZero())
	assert.True(t, Diameter{}.IsZero())
}

func TestPressureConversions(t *testing.T) {
	p, err := NewPressure(2, "bar")
	require.NoError(t, err)
	assert.InDelta(t, 200000, p.Value(), 1e-9)

	psi, err := p.To("psi")
	require.NoError(t, err)
	assert.InDelta(t, 29.0075, psi, 1e-3)

	assert.InDelta(t, 50000, p.Sub(Pascals(150000)).Value(), 1e-9)
}

func TestFlowRateConversions(t *testing.T) {
	q, err := NewVolumetricFlowRate(36, "m3/h")
	require.NoError(t, err)
	assert.InDelta(t, 0.01, q.Value(), 1e-12)

	lps, err := q.To("L/s")
	require.NoError(t, err)
	assert.InDelta(t, 10, lps, 1e-9)
}

func TestMassFlowVolumetric(t *testing.T) {
	m := KilogramsPerSecond(5)
	q, err := m.Volumetric(KilogramsPerCubicMeter(1000))
	require.NoError(t, err)
	assert.InDelta(t, 0.005, q.Value(), 1e-12)

	_, err = m.Volumetric(Density{})
	assert.Error(t, err)
}

func TestViscosityKindInference(t *testing.T) {
	dyn, err := NewViscosity(1.0, "cP")
	require.NoError(t, err)
	assert.Equal(t, Dynamic, dyn.Kind())
	assert.InDelta(t, 1e-3, dyn.Value(), 1e-12)

	kin, err := NewViscosity(1.0, "cSt")
	require.NoError(t, err)
	assert.Equal(t, Kinematic, kin.Kind())
	assert.InDelta(t, 1e-6, kin.Value(), 1e-15)
}

func TestViscosityKinematicToDynamic(t *testing.T) {
	kin := SquareMetersPerSecond(1e-6)
	dyn := kin.Dynamic(KilogramsPerCubicMeter(998))
	assert.Equal(t, Dynamic, dyn.Kind())
	assert.InDelta(t, 9.98e-4, dyn.Value(), 1e-9)
}

func TestViscosityAddAcrossKinds(t *testing.T) {
	_, err := PascalSeconds(1e-3).Add(SquareMetersPerSecond(1e-6))
	assert.Error(t, err)
}

func TestPowerConversions(t *testing.T) {
	p, err := NewPower(1.5, "kW")
	require.NoError(t, err)
	hp, err := p.To("hp")
	require.NoError(t, err)
	assert.InDelta(t, 2.0115, hp, 1e-3)
}

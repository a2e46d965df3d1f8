package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procflow/procflow/internal/config"
)

const networkYAML = `
fluid:
  kind: water
  temperature_c: 25
flow:
  volumetric_m3h: 72
network:
  name: main
  connection: series
  elements:
    - pipe:
        name: feed
        nominal_mm: 80
        schedule: "40"
        material: CS
        length_m: 25
    - equipment:
        name: hx
        drop_kpa: 25
        description: plate exchanger
    - pump:
        name: p-101
        type: centrifugal
        head_m: 20
    - network:
        name: split
        connection: parallel
        elements:
          - pipe:
              name: north
              nominal_mm: 50
              material: CS
              length_m: 15
          - pipe:
              name: south
              nominal_mm: 50
              material: CS
              length_m: 15
flow_splits:
  split: [0.012, 0.008]
include_schematic: true
`

func TestLoadDefinitionNetwork(t *testing.T) {
	def, err := LoadDefinition(strings.NewReader(networkYAML))
	require.NoError(t, err)

	req, err := def.Build()
	require.NoError(t, err)

	require.NotNil(t, req.Network)
	assert.Equal(t, "main", req.Network.Name())
	require.Len(t, req.Network.Elements(), 4)
	assert.Equal(t, "Water", req.Fluid.Name())
	assert.InDelta(t, 0.02, req.FlowRate.Value(), 1e-12)
	assert.Equal(t, []float64{0.012, 0.008}, req.FlowSplits["split"])
	assert.True(t, req.IncludeSchematic)

	sub, ok := req.Network.Elements()[3].(*Network)
	require.True(t, ok)
	assert.Equal(t, Parallel, sub.ConnectionType())

	// The loaded request runs end to end.
	res, err := New(WithConfig(config.Default())).Run(req)
	require.NoError(t, err)
	assert.Equal(t, "network", res.Mode)
	assert.Len(t, res.Branches, 2)
	assert.NotEmpty(t, res.Schematic)
}

func TestLoadDefinitionSinglePipe(t *testing.T) {
	const src = `
fluid:
  kind: custom
  name: glycol
  density_kg_m3: 1040
  viscosity_pas: 0.0025
flow:
  mass_kgh: 37440
pipe:
  nominal_mm: 50
  material: CS
  length_m: 30
fittings:
  - type: elbow_90_std
    quantity: 2
  - type: gate_valve_open
`
	def, err := LoadDefinition(strings.NewReader(src))
	require.NoError(t, err)

	req, err := def.Build()
	require.NoError(t, err)
	require.NotNil(t, req.Pipe)
	require.Len(t, req.Fittings, 2)
	assert.Equal(t, 2, req.Fittings[0].Quantity())
	assert.InDelta(t, 10.4, req.MassFlowRate.Value(), 1e-9)

	res, err := New(WithConfig(config.Default())).Run(req)
	require.NoError(t, err)
	assert.Equal(t, "pipe", res.Mode)
	assert.InDelta(t, 0.01, res.Summary.InletFlowM3S, 1e-9)
	assert.Len(t, res.Elements, 3)
}

func TestLoadDefinitionRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"no pipe or network": `
fluid:
  kind: water
flow:
  volumetric_m3h: 10
`,
		"both pipe and network": `
fluid:
  kind: water
pipe:
  nominal_mm: 50
network:
  name: main
  elements:
    - pipe:
        nominal_mm: 50
`,
		"unknown fluid kind": `
fluid:
  kind: mercury
pipe:
  nominal_mm: 50
`,
		"bad connection type": `
fluid:
  kind: water
network:
  name: main
  connection: mesh
  elements:
    - pipe:
        nominal_mm: 50
`,
		"empty network": `
fluid:
  kind: water
network:
  name: main
  connection: series
  elements: []
`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadDefinition(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestLoadDefinitionCustomFluidNeedsProperties(t *testing.T) {
	const src = `
fluid:
  kind: custom
  density_kg_m3: 1000
pipe:
  nominal_mm: 50
`
	def, err := LoadDefinition(strings.NewReader(src))
	require.NoError(t, err)
	_, err = def.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingInput)
	assert.Contains(t, err.Error(), "viscosity")
}

func TestLoadDefinitionElementUnionIsExclusive(t *testing.T) {
	const src = `
fluid:
  kind: water
network:
  name: main
  elements:
    - pipe:
        nominal_mm: 50
      pump:
        name: p1
        head_m: 10
`
	def, err := LoadDefinition(strings.NewReader(src))
	require.NoError(t, err)
	_, err = def.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

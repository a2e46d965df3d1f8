package pipeline

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/procflow/procflow/components"
	"github.com/procflow/procflow/units"
)

// Definition is the YAML form of a flow-resolution request. One of Pipe
// and Network must be present.
type Definition struct {
	Fluid    FluidDef     `yaml:"fluid" validate:"required"`
	Flow     FlowDef      `yaml:"flow"`
	Pipe     *PipeDef     `yaml:"pipe" validate:"omitempty"`
	Fittings []FittingDef `yaml:"fittings" validate:"omitempty,dive"`
	Network  *NetworkDef  `yaml:"network" validate:"omitempty"`

	FlowSplits       map[string][]float64 `yaml:"flow_splits"`
	IncludeSchematic bool                 `yaml:"include_schematic"`
}

// FluidDef selects a fluid model. Custom fluids carry their own
// properties; the built-in kinds derive them.
type FluidDef struct {
	Kind         string  `yaml:"kind" validate:"required,oneof=water air steam brine custom"`
	TemperatureC float64 `yaml:"temperature_c" validate:"omitempty,gte=-50,lte=400"`
	PressureBar  float64 `yaml:"pressure_bar" validate:"omitempty,gt=0"`

	// Custom-kind fields.
	Name          string  `yaml:"name"`
	Service       string  `yaml:"service"`
	DensityKgM3   float64 `yaml:"density_kg_m3" validate:"omitempty,gt=0"`
	ViscosityPaS  float64 `yaml:"viscosity_pas" validate:"omitempty,gt=0"`
	KinematicM2S  float64 `yaml:"kinematic_m2s" validate:"omitempty,gt=0"`
}

// FlowDef gives at most one flow specification; the engine resolves the
// rest.
type FlowDef struct {
	VolumetricM3H float64 `yaml:"volumetric_m3h" validate:"omitempty,gt=0"`
	MassKgH       float64 `yaml:"mass_kgh" validate:"omitempty,gt=0"`
	VelocityMS    float64 `yaml:"velocity_ms" validate:"omitempty,gt=0"`
}

// PipeDef is the YAML form of a pipe segment.
type PipeDef struct {
	Name       string  `yaml:"name"`
	NominalMM  float64 `yaml:"nominal_mm" validate:"omitempty,gt=0"`
	InternalMM float64 `yaml:"internal_mm" validate:"omitempty,gt=0"`
	Schedule   string  `yaml:"schedule"`
	Material   string  `yaml:"material"`
	LengthM    float64 `yaml:"length_m" validate:"omitempty,gt=0"`
}

// FittingDef is the YAML form of a minor-loss fitting.
type FittingDef struct {
	Type       string  `yaml:"type" validate:"required"`
	DiameterMM float64 `yaml:"diameter_mm" validate:"omitempty,gt=0"`
	Quantity   int     `yaml:"quantity" validate:"omitempty,gte=1"`
}

// PumpDef is the YAML form of a pump.
type PumpDef struct {
	Name         string  `yaml:"name"`
	Type         string  `yaml:"type"`
	HeadM        float64 `yaml:"head_m" validate:"omitempty,gt=0"`
	InletBar     float64 `yaml:"inlet_bar" validate:"omitempty,gt=0"`
	OutletBar    float64 `yaml:"outlet_bar" validate:"omitempty,gt=0"`
	Efficiency   float64 `yaml:"efficiency" validate:"omitempty,gt=0,lte=1"`
	FlowM3H      float64 `yaml:"flow_m3h" validate:"omitempty,gt=0"`
}

// EquipmentDef is the YAML form of fixed-drop equipment.
type EquipmentDef struct {
	Name        string  `yaml:"name" validate:"required"`
	DropKPa     float64 `yaml:"drop_kpa" validate:"gte=0"`
	Description string  `yaml:"description"`
}

// ElementDef is a tagged union: exactly one member is set per list entry.
type ElementDef struct {
	Pipe      *PipeDef      `yaml:"pipe"`
	Fitting   *FittingDef   `yaml:"fitting"`
	Pump      *PumpDef      `yaml:"pump"`
	Equipment *EquipmentDef `yaml:"equipment"`
	Network   *NetworkDef   `yaml:"network"`
}

// NetworkDef is the YAML form of a series or parallel block.
type NetworkDef struct {
	Name       string       `yaml:"name" validate:"required"`
	Connection string       `yaml:"connection" validate:"omitempty,oneof=series parallel"`
	Elements   []ElementDef `yaml:"elements" validate:"required,min=1,dive"`
}

// LoadDefinition decodes and validates a YAML request definition.
func LoadDefinition(r io.Reader) (*Definition, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("%w: parse definition: %v", ErrInvalidValue, err)
	}
	if err := validator.New().Struct(&def); err != nil {
		return nil, fmt.Errorf("%w: validate definition: %v", ErrInvalidValue, err)
	}
	if def.Pipe == nil && def.Network == nil {
		return nil, fmt.Errorf("%w: definition needs a pipe or a network", ErrMissingInput)
	}
	if def.Pipe != nil && def.Network != nil {
		return nil, fmt.Errorf("%w: definition cannot carry both a pipe and a network", ErrInvalidValue)
	}
	return &def, nil
}

// Build turns a validated definition into an engine request.
func (d *Definition) Build() (Request, error) {
	req := Request{
		FlowSplits:       d.FlowSplits,
		IncludeSchematic: d.IncludeSchematic,
	}

	fluid, err := d.Fluid.build()
	if err != nil {
		return Request{}, err
	}
	req.Fluid = fluid

	if d.Flow.VolumetricM3H > 0 {
		q, qErr := units.NewVolumetricFlowRate(d.Flow.VolumetricM3H, "m3/h")
		if qErr != nil {
			return Request{}, qErr
		}
		req.FlowRate = q
	}
	if d.Flow.MassKgH > 0 {
		m, mErr := units.NewMassFlowRate(d.Flow.MassKgH, "kg/h")
		if mErr != nil {
			return Request{}, mErr
		}
		req.MassFlowRate = m
	}
	if d.Flow.VelocityMS > 0 {
		req.Velocity = units.MetersPerSecond(d.Flow.VelocityMS)
	}

	if d.Pipe != nil {
		pipe, pErr := d.Pipe.build()
		if pErr != nil {
			return Request{}, pErr
		}
		req.Pipe = pipe
		for _, fd := range d.Fittings {
			fit, fErr := fd.build()
			if fErr != nil {
				return Request{}, fErr
			}
			req.Fittings = append(req.Fittings, fit)
		}
	}

	if d.Network != nil {
		net, nErr := d.Network.build()
		if nErr != nil {
			return Request{}, nErr
		}
		req.Network = net
	}
	return req, nil
}

func (fd *FluidDef) build() (components.Fluid, error) {
	switch fd.Kind {
	case "water":
		return components.NewWater(fd.TemperatureC), nil
	case "air":
		return components.Air{}, nil
	case "steam":
		p := fd.PressureBar
		if p == 0 {
			p = 1
		}
		return components.SaturatedSteam{PressureBar: p}, nil
	case "brine":
		return components.Brine{}, nil
	case "custom":
		if fd.DensityKgM3 <= 0 {
			return nil, fmt.Errorf("%w: custom fluid needs density_kg_m3", ErrMissingInput)
		}
		var mu units.Viscosity
		switch {
		case fd.ViscosityPaS > 0:
			mu = units.PascalSeconds(fd.ViscosityPaS)
		case fd.KinematicM2S > 0:
			mu = units.SquareMetersPerSecond(fd.KinematicM2S)
		default:
			return nil, fmt.Errorf("%w: custom fluid needs viscosity_pas or kinematic_m2s", ErrMissingInput)
		}
		name := fd.Name
		if name == "" {
			name = "custom"
		}
		return components.Custom{
			FluidName: name,
			Rho:       units.KilogramsPerCubicMeter(fd.DensityKgM3),
			Mu:        mu,
			Service:   fd.Service,
		}, nil
	}
	return nil, fmt.Errorf("%w: fluid kind %q", ErrUnsupported, fd.Kind)
}

func (pd *PipeDef) build() (*Pipe, error) {
	return NewPipe(PipeSpec{
		Name:             pd.Name,
		NominalDiameter:  units.DiameterMillimeters(pd.NominalMM),
		InternalDiameter: units.DiameterMillimeters(pd.InternalMM),
		Schedule:         pd.Schedule,
		Material:         pd.Material,
		Length:           units.Meters(pd.LengthM),
	})
}

func (fd *FittingDef) build() (*Fitting, error) {
	return NewFitting(fd.Type, units.DiameterMillimeters(fd.DiameterMM), fd.Quantity)
}

func (pd *PumpDef) build() (*Pump, error) {
	spec := PumpSpec{
		Name:       pd.Name,
		Type:       pd.Type,
		Head:       units.Meters(pd.HeadM),
		Efficiency: pd.Efficiency,
	}
	if pd.InletBar > 0 {
		p, err := units.NewPressure(pd.InletBar, "bar")
		if err != nil {
			return nil, err
		}
		spec.InletPressure = &p
	}
	if pd.OutletBar > 0 {
		p, err := units.NewPressure(pd.OutletBar, "bar")
		if err != nil {
			return nil, err
		}
		spec.OutletPressure = &p
	}
	if pd.FlowM3H > 0 {
		q, err := units.NewVolumetricFlowRate(pd.FlowM3H, "m3/h")
		if err != nil {
			return nil, err
		}
		spec.FlowRate = q
	}
	return NewPump(spec)
}

func (ed *EquipmentDef) build() *Equipment {
	return NewEquipment(ed.Name, units.Pascals(ed.DropKPa*1e3), ed.Description)
}

func (nd *NetworkDef) build() (*Network, error) {
	conn := ConnectionType(nd.Connection)
	net, err := NewNetwork(nd.Name, conn)
	if err != nil {
		return nil, err
	}
	for i, ed := range nd.Elements {
		el, eErr := ed.build()
		if eErr != nil {
			return nil, fmt.Errorf("network %q element %d: %w", nd.Name, i+1, eErr)
		}
		net.Add(el)
	}
	return net, nil
}

func (ed *ElementDef) build() (Element, error) {
	set := 0
	for _, present := range []bool{ed.Pipe != nil, ed.Fitting != nil, ed.Pump != nil, ed.Equipment != nil, ed.Network != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: each element entry must set exactly one of pipe, fitting, pump, equipment, network", ErrInvalidValue)
	}
	switch {
	case ed.Pipe != nil:
		return ed.Pipe.build()
	case ed.Fitting != nil:
		return ed.Fitting.build()
	case ed.Pump != nil:
		return ed.Pump.build()
	case ed.Equipment != nil:
		return ed.Equipment.build(), nil
	default:
		return ed.Network.build()
	}
}

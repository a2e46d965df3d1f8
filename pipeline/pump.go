package pipeline

import (
	"fmt"

	"github.com/procflow/procflow/fluids"
	"github.com/procflow/procflow/standards"
	"github.com/procflow/procflow/units"
)

// PumpSpec describes a pump. Either Head or both inlet and outlet
// pressures must be given.
type PumpSpec struct {
	Name           string
	Type           string                   // e.g. "centrifugal"
	Head           units.Length
	InletPressure  *units.Pressure
	OutletPressure *units.Pressure
	Efficiency     float64                  // 0 means look up by type
	FlowRate       units.VolumetricFlowRate // optional design flow
}

// Pump adds energy to the fluid. In network evaluation its head gain is
// converted to pressure and subtracted from the accumulated drop.
type Pump struct {
	name           string
	pumpType       string
	head           units.Length
	inletPressure  *units.Pressure
	outletPressure *units.Pressure
	efficiency     float64
	flowRate       units.VolumetricFlowRate
	startNode      *Node
	endNode        *Node
}

// NewPump validates a spec and builds a Pump. Efficiency defaults from
// the standards catalog for the pump type.
func NewPump(spec PumpSpec) (*Pump, error) {
	hasPressures := spec.InletPressure != nil && spec.OutletPressure != nil
	if spec.Head.Value() == 0 && !hasPressures {
		return nil, fmt.Errorf("%w: pump %q needs a head or both inlet and outlet pressures",
			ErrMissingInput, spec.Name)
	}
	if spec.Head.Value() < 0 {
		return nil, fmt.Errorf("%w: pump %q head must be non-negative, got %g m",
			ErrInvalidValue, spec.Name, spec.Head.Value())
	}
	if hasPressures && spec.OutletPressure.Value() < spec.InletPressure.Value() {
		return nil, fmt.Errorf("%w: pump %q outlet pressure below inlet pressure", ErrInvalidValue, spec.Name)
	}
	eff := spec.Efficiency
	if eff == 0 {
		eff = standards.PumpEfficiency(spec.Type)
	}
	if eff <= 0 || eff > 1 {
		return nil, fmt.Errorf("%w: pump %q efficiency must be in (0, 1], got %g", ErrInvalidValue, spec.Name, eff)
	}
	return &Pump{
		name:           spec.Name,
		pumpType:       spec.Type,
		head:           spec.Head,
		inletPressure:  spec.InletPressure,
		outletPressure: spec.OutletPressure,
		efficiency:     eff,
		flowRate:       spec.FlowRate,
	}, nil
}

// Name returns the pump's label.
func (p *Pump) Name() string { return p.name }

// Label implements Element.
func (p *Pump) Label() string {
	if p.name == "" {
		return "pump"
	}
	return p.name
}

// Type returns the pump type designation.
func (p *Pump) Type() string { return p.pumpType }

// Efficiency returns the pump efficiency fraction.
func (p *Pump) Efficiency() float64 { return p.efficiency }

// HeadGain returns the head added to the fluid. When the pump was defined
// by inlet/outlet pressures, the head is derived at the given density.
func (p *Pump) HeadGain(rho units.Density) (units.Length, error) {
	if p.head.Value() > 0 {
		return p.head, nil
	}
	if p.inletPressure == nil || p.outletPressure == nil {
		return units.Length{}, fmt.Errorf("%w: pump %q has neither a head nor both terminal pressures",
			ErrMissingInput, p.Label())
	}
	rise := p.outletPressure.Sub(*p.inletPressure)
	return fluids.PressureToHead(rise, rho)
}

// HydraulicPower returns ρgQH for the design flow, or an error when no
// design flow was set.
func (p *Pump) HydraulicPower(rho units.Density) (units.Power, error) {
	pw, err := p.power(rho)
	return pw.Hydraulic, err
}

// BrakePower returns the shaft power at the pump's efficiency.
func (p *Pump) BrakePower(rho units.Density) (units.Power, error) {
	pw, err := p.power(rho)
	return pw.Shaft, err
}

func (p *Pump) power(rho units.Density) (fluids.PumpPower, error) {
	if p.flowRate.IsZero() {
		return fluids.PumpPower{}, fmt.Errorf("%w: pump %q has no design flow rate", ErrMissingInput, p.Label())
	}
	head, err := p.HeadGain(rho)
	if err != nil {
		return fluids.PumpPower{}, err
	}
	return fluids.PumpPowerFromHead(p.flowRate, head, rho, p.efficiency)
}

func (p *Pump) String() string {
	return fmt.Sprintf("Pump(%s, type=%s, head=%v, eff=%g)", p.Label(), p.pumpType, p.head, p.efficiency)
}

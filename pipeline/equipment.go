package pipeline

import (
	"fmt"

	"github.com/procflow/procflow/units"
)

// Equipment is generic inline process equipment with a fixed pressure
// drop: a filter, heat exchanger, orifice, or other unit operation.
type Equipment struct {
	name         string
	pressureDrop units.Pressure
	description  string
	inletNodes   []*Node
	outletNodes  []*Node
}

// NewEquipment constructs inline equipment with a known pressure drop.
func NewEquipment(name string, pressureDrop units.Pressure, description string) *Equipment {
	return &Equipment{name: name, pressureDrop: pressureDrop, description: description}
}

// Name returns the equipment label.
func (e *Equipment) Name() string { return e.name }

// Label implements Element.
func (e *Equipment) Label() string {
	if e.name == "" {
		return "equipment"
	}
	return e.name
}

// PressureDrop returns the fixed drop across the equipment.
func (e *Equipment) PressureDrop() units.Pressure { return e.pressureDrop }

// Description returns the free-text description.
func (e *Equipment) Description() string { return e.description }

// AddInlet attaches an inlet node.
func (e *Equipment) AddInlet(n *Node) { e.inletNodes = append(e.inletNodes, n) }

// AddOutlet attaches an outlet node.
func (e *Equipment) AddOutlet(n *Node) { e.outletNodes = append(e.outletNodes, n) }

// InletNodes returns the attached inlet nodes.
func (e *Equipment) InletNodes() []*Node { return e.inletNodes }

// OutletNodes returns the attached outlet nodes.
func (e *Equipment) OutletNodes() []*Node { return e.outletNodes }

func (e *Equipment) String() string {
	return fmt.Sprintf("Equipment(%s, dP=%v, %s)", e.Label(), e.pressureDrop, e.description)
}

// Vessel is a storage or process vessel. It participates in topology as a
// multi-port element but carries no flow-resistance model; placing one in
// an evaluated series or parallel block is a type-mismatch error.
type Vessel struct {
	name         string
	Volume       float64 // m³
	Pressure     units.Pressure
	TemperatureC float64
	inletNodes   []*Node
	outletNodes  []*Node
}

// NewVessel constructs a vessel.
func NewVessel(name string, volume float64, pressure units.Pressure, temperatureC float64) *Vessel {
	return &Vessel{name: name, Volume: volume, Pressure: pressure, TemperatureC: temperatureC}
}

// Name returns the vessel label.
func (v *Vessel) Name() string { return v.name }

// Label implements Element.
func (v *Vessel) Label() string {
	if v.name == "" {
		return "vessel"
	}
	return v.name
}

// AddInlet attaches an inlet node.
func (v *Vessel) AddInlet(n *Node) { v.inletNodes = append(v.inletNodes, n) }

// AddOutlet attaches an outlet node.
func (v *Vessel) AddOutlet(n *Node) { v.outletNodes = append(v.outletNodes, n) }

// InletNodes returns the attached inlet nodes.
func (v *Vessel) InletNodes() []*Node { return v.inletNodes }

// OutletNodes returns the attached outlet nodes.
func (v *Vessel) OutletNodes() []*Node { return v.outletNodes }

func (v *Vessel) String() string {
	return fmt.Sprintf("Vessel(%s, V=%g m3)", v.Label(), v.Volume)
}

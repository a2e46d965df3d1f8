package pipeline

import (
	"fmt"
	"math"

	"github.com/procflow/procflow/fluids"
	"github.com/procflow/procflow/standards"
	"github.com/procflow/procflow/units"
)

// defaultPipeLength applies when a pipe is constructed without a length.
var defaultPipeLength = units.Meters(1.0)

// PipeSpec describes a pipe segment. At least one of NominalDiameter and
// InternalDiameter must be set.
type PipeSpec struct {
	Name             string
	NominalDiameter  units.Diameter
	InternalDiameter units.Diameter
	Schedule         string // e.g. "40", "80", "STD"
	Material         string // e.g. "CS", "SS316"
	Length           units.Length
	InletPressure    *units.Pressure
	OutletPressure   *units.Pressure
}

// Pipe is an immutable description of a pipe segment. Roughness is
// resolved from the material once at construction; derived geometry is
// computed on demand.
type Pipe struct {
	name            string
	nominal         units.Diameter
	internal        units.Diameter
	schedule        string
	material        string
	length          units.Length
	roughness       units.Length
	inletPressure   *units.Pressure
	outletPressure  *units.Pressure
	startNode       *Node
	endNode         *Node
}

// NewPipe validates a spec and builds a Pipe. A pipe with neither a
// nominal nor an internal diameter is a configuration error; the
// engine-side optimum-diameter fallback applies only to auto-constructed
// pipes in single-pipe mode.
func NewPipe(spec PipeSpec) (*Pipe, error) {
	if spec.NominalDiameter.IsZero() && spec.InternalDiameter.IsZero() {
		return nil, fmt.Errorf("%w: pipe %q needs a nominal or internal diameter", ErrInvalidValue, spec.Name)
	}
	length := spec.Length
	if length.Value() == 0 {
		length = defaultPipeLength
	}
	schedule := spec.Schedule
	if schedule == "" {
		schedule = "40"
	}
	return &Pipe{
		name:           spec.Name,
		nominal:        spec.NominalDiameter,
		internal:       spec.InternalDiameter,
		schedule:       schedule,
		material:       spec.Material,
		length:         length,
		roughness:      standards.Roughness(spec.Material),
		inletPressure:  spec.InletPressure,
		outletPressure: spec.OutletPressure,
	}, nil
}

// Name returns the pipe's label, defaulting to "pipe".
func (p *Pipe) Name() string {
	if p.name == "" {
		return "pipe"
	}
	return p.name
}

// Label implements Element.
func (p *Pipe) Label() string { return p.Name() }

// NominalDiameter returns the catalog designation, zero if unset.
func (p *Pipe) NominalDiameter() units.Diameter { return p.nominal }

// Schedule returns the wall schedule designation.
func (p *Pipe) Schedule() string { return p.schedule }

// Material returns the material code.
func (p *Pipe) Material() string { return p.material }

// Length returns the pipe run length.
func (p *Pipe) Length() units.Length { return p.length }

// Roughness returns the absolute roughness resolved from the material.
func (p *Pipe) Roughness() units.Length { return p.roughness }

// InletPressure returns the explicit inlet pressure, if any.
func (p *Pipe) InletPressure() *units.Pressure { return p.inletPressure }

// OutletPressure returns the explicit outlet pressure, if any.
func (p *Pipe) OutletPressure() *units.Pressure { return p.outletPressure }

// InternalDiameter resolves the bore: an explicit internal diameter wins,
// then a schedule-table lookup by (nominal, schedule). The second return
// is false when neither resolves.
func (p *Pipe) InternalDiameter() (units.Diameter, bool) {
	if !p.internal.IsZero() {
		return p.internal, true
	}
	if !p.nominal.IsZero() {
		if d, ok := standards.InternalDiameter(p.nominal, p.schedule); ok {
			return d, true
		}
	}
	return units.Diameter{}, false
}

// CrossSectionalArea returns the flow area in m².
func (p *Pipe) CrossSectionalArea() (float64, error) {
	d, ok := p.InternalDiameter()
	if !ok {
		return 0, fmt.Errorf("%w: internal diameter of pipe %q", ErrUnresolvable, p.Name())
	}
	return fluids.CrossSectionalArea(d), nil
}

// SurfaceArea returns the external surface area in m², for heat-loss
// estimates. Uses the nominal diameter when present, else the bore.
func (p *Pipe) SurfaceArea() float64 {
	d := p.nominal
	if d.IsZero() {
		d = p.internal
	}
	return math.Pi * d.Value() * p.length.Value()
}

// withBore returns a copy of the pipe resized to a new catalog size and
// bore. Used by the engine for recommended-velocity auto-sizing; the
// receiver is never mutated. A zero nominal keeps the original one.
func (p *Pipe) withBore(nominal, internal units.Diameter) *Pipe {
	clone := *p
	if !nominal.IsZero() {
		clone.nominal = nominal
	}
	clone.internal = internal
	return &clone
}

func (p *Pipe) String() string {
	d, _ := p.InternalDiameter()
	return fmt.Sprintf("Pipe(%s, ID=%v, L=%v, %s)", p.Name(), d, p.length, p.material)
}

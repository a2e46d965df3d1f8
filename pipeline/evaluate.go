package pipeline

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/procflow/procflow/fluids"
	"github.com/procflow/procflow/internal/config"
	"github.com/procflow/procflow/internal/logging"
	"github.com/procflow/procflow/internal/monitoring"
	"github.com/procflow/procflow/units"
)

// Flow regime boundaries used for advisory warnings. The solver itself
// switches to 64/Re at the stricter laminar cutoff from configuration.
const (
	regimeLaminarRe      = 2300.0
	regimeTransitionalRe = 4000.0
)

// runContext carries the per-run resolution state: the fluid properties
// fixed at the start of the run, tuning knobs, and accumulators for
// branch summaries and pump power. Elements read from it and never write
// back to the request.
type runContext struct {
	cfg     *config.Config
	log     *logging.Logger
	metrics *monitoring.Metrics
	req     *Request

	rho units.Density
	mu  units.Viscosity

	branches   []BranchSummary
	pumpShaftW float64
	warnings   []string
}

func (rc *runContext) warn(format string, args ...any) {
	rc.warnings = append(rc.warnings, fmt.Sprintf(format, args...))
}

// frictionFactor selects the flow regime and solves for the Darcy factor,
// recording solver effort.
func (rc *runContext) frictionFactor(re float64, roughness units.Length, d units.Diameter) (units.Dimensionless, error) {
	if re <= 0 {
		return units.Dimensionless{}, fmt.Errorf("%w: reynolds number must be positive, got %g", ErrInvalidValue, re)
	}
	if re < rc.cfg.Solver.LaminarCutoff {
		return units.NewDimensionless(64.0 / re), nil
	}
	f, n := fluids.ColebrookTuned(re, roughness.Value()/d.Value(),
		rc.cfg.Solver.FrictionTolerance, rc.cfg.Solver.FrictionMaxIter)
	rc.metrics.RecordSolve(n, rc.cfg.Solver.FrictionMaxIter)
	if n >= rc.cfg.Solver.FrictionMaxIter {
		rc.warn("friction solve hit the %d-iteration cap at Re=%.4g", rc.cfg.Solver.FrictionMaxIter, re)
	}
	return units.NewDimensionless(f), nil
}

func regimeWarnings(re float64) []string {
	switch {
	case re < regimeLaminarRe:
		return []string{fmt.Sprintf("laminar flow regime (Re=%.0f)", re)}
	case re < regimeTransitionalRe:
		return []string{fmt.Sprintf("transitional flow (Re=%.0f): friction factor correlations are unreliable between Re 2300 and 4000", re)}
	}
	return nil
}

// evaluate computes the Darcy–Weisbach drop across the pipe at flow q.
// When both terminal pressures are known, their measured difference joins
// the accumulated drop and is reported separately from the computed one.
func (p *Pipe) evaluate(rc *runContext, q units.VolumetricFlowRate) (units.Pressure, []ElementReport, error) {
	d, ok := p.InternalDiameter()
	if !ok {
		return units.Pressure{}, nil, fmt.Errorf("%w: internal diameter of pipe %q", ErrUnresolvable, p.Name())
	}
	v, err := fluids.FluidVelocity(q, d)
	if err != nil {
		return units.Pressure{}, nil, err
	}
	re, err := fluids.Reynolds(rc.rho, v, d, rc.mu)
	if err != nil {
		return units.Pressure{}, nil, err
	}
	f, err := rc.frictionFactor(re.Value(), p.roughness, d)
	if err != nil {
		return units.Pressure{}, nil, err
	}
	drop, err := fluids.PressureDropDarcy(f, p.length, d, rc.rho, v)
	if err != nil {
		return units.Pressure{}, nil, err
	}

	report := ElementReport{
		Name:           p.Name(),
		Kind:           KindPipe,
		DiameterM:      d.Value(),
		FlowM3S:        q.Value(),
		VelocityMS:     v.Value(),
		Reynolds:       re.Value(),
		FrictionFactor: f.Value(),
		PressureDropPa: drop.Value(),
		Warnings:       regimeWarnings(re.Value()),
	}
	if p.inletPressure != nil && p.outletPressure != nil {
		boundary := p.inletPressure.Sub(*p.outletPressure)
		report.BoundaryDropPa = boundary.Value()
		drop = drop.Add(boundary)
	}
	return drop, []ElementReport{report}, nil
}

// evaluate computes the fitting's minor loss at flow q. The K-factor form
// is preferred; the equivalent-length form runs the loss through
// Darcy–Weisbach and so needs a friction solve. Either way the fitting
// needs its own bore to turn flow into velocity.
func (f *Fitting) evaluate(rc *runContext, q units.VolumetricFlowRate) (units.Pressure, []ElementReport, error) {
	if f.diameter.IsZero() {
		return units.Pressure{}, nil, fmt.Errorf("%w: fitting %q needs a diameter to be evaluated in a network",
			ErrMissingInput, f.fittingType)
	}
	v, err := fluids.FluidVelocity(q, f.diameter)
	if err != nil {
		return units.Pressure{}, nil, err
	}

	var drop units.Pressure
	if k, kErr := f.KFactor(); kErr == nil {
		drop = fluids.MinorLossK(k.Value(), rc.rho, v)
	} else {
		le, leErr := f.EquivalentLength()
		if leErr != nil {
			return units.Pressure{}, nil, leErr
		}
		re, rErr := fluids.Reynolds(rc.rho, v, f.diameter, rc.mu)
		if rErr != nil {
			return units.Pressure{}, nil, rErr
		}
		fr, fErr := rc.frictionFactor(re.Value(), units.Meters(0), f.diameter)
		if fErr != nil {
			return units.Pressure{}, nil, fErr
		}
		drop, err = fluids.PressureDropDarcy(fr, le, f.diameter, rc.rho, v)
		if err != nil {
			return units.Pressure{}, nil, err
		}
	}

	report := ElementReport{
		Name:           f.Label(),
		Kind:           KindFitting,
		DiameterM:      f.diameter.Value(),
		FlowM3S:        q.Value(),
		VelocityMS:     v.Value(),
		PressureDropPa: drop.Value(),
	}
	return drop, []ElementReport{report}, nil
}

// evaluate reports the pump's head gain as a negative pressure drop and
// accumulates the shaft power needed to drive the local flow.
func (p *Pump) evaluate(rc *runContext, q units.VolumetricFlowRate) (units.Pressure, []ElementReport, error) {
	head, err := p.HeadGain(rc.rho)
	if err != nil {
		return units.Pressure{}, nil, err
	}
	gain := fluids.HeadToPressure(head, rc.rho)

	if !q.IsZero() {
		pw, pErr := fluids.PumpPowerFromHead(q, head, rc.rho, p.efficiency)
		if pErr != nil {
			return units.Pressure{}, nil, pErr
		}
		rc.pumpShaftW += pw.Shaft.Value()
	}

	report := ElementReport{
		Name:           p.Label(),
		Kind:           KindPump,
		FlowM3S:        q.Value(),
		HeadM:          head.Value(),
		PressureDropPa: -gain.Value(),
	}
	return units.Pascals(-gain.Value()), []ElementReport{report}, nil
}

// evaluate returns the equipment's fixed pressure drop.
func (e *Equipment) evaluate(_ *runContext, q units.VolumetricFlowRate) (units.Pressure, []ElementReport, error) {
	report := ElementReport{
		Name:           e.Label(),
		Kind:           KindEquipment,
		FlowM3S:        q.Value(),
		PressureDropPa: e.pressureDrop.Value(),
	}
	return e.pressureDrop, []ElementReport{report}, nil
}

// evaluate always fails: a vessel is a topology endpoint, not a flow
// resistance.
func (v *Vessel) evaluate(_ *runContext, _ units.VolumetricFlowRate) (units.Pressure, []ElementReport, error) {
	return units.Pressure{}, nil, fmt.Errorf("%w: vessel %q has no flow-resistance model and cannot sit inside an evaluated block",
		ErrTypeMismatch, v.Label())
}

// evaluate resolves the block: series blocks pass the full flow through
// every element and sum the drops; parallel blocks apportion the flow
// across branches and take the worst branch drop as the block drop.
func (n *Network) evaluate(rc *runContext, q units.VolumetricFlowRate) (units.Pressure, []ElementReport, error) {
	if len(n.elements) == 0 {
		return units.Pressure{}, nil, fmt.Errorf("%w: network %q has no elements", ErrMissingInput, n.name)
	}
	if n.connectionType == Parallel {
		return n.evaluateParallel(rc, q)
	}
	return n.evaluateSeries(rc, q)
}

func (n *Network) evaluateSeries(rc *runContext, q units.VolumetricFlowRate) (units.Pressure, []ElementReport, error) {
	var total units.Pressure
	var reports []ElementReport
	for i, el := range n.elements {
		if el == nil {
			return units.Pressure{}, nil, fmt.Errorf("%w: element %d of network %q is nil", ErrTypeMismatch, i, n.name)
		}
		drop, sub, err := el.evaluate(rc, q)
		if err != nil {
			return units.Pressure{}, nil, fmt.Errorf("network %q element %q: %w", n.name, el.Label(), err)
		}
		total = total.Add(drop)
		for j := range sub {
			if sub[j].Network == "" {
				sub[j].Network = n.name
			}
		}
		reports = append(reports, sub...)
	}
	return total, reports, nil
}

func (n *Network) evaluateParallel(rc *runContext, q units.VolumetricFlowRate) (units.Pressure, []ElementReport, error) {
	flows, err := n.branchFlows(rc, q)
	if err != nil {
		return units.Pressure{}, nil, err
	}

	drops := make([]float64, len(n.elements))
	var reports []ElementReport
	for i, branch := range n.elements {
		if branch == nil {
			return units.Pressure{}, nil, fmt.Errorf("%w: branch %d of network %q is nil", ErrTypeMismatch, i, n.name)
		}
		drop, sub, bErr := branch.evaluate(rc, flows[i])
		if bErr != nil {
			return units.Pressure{}, nil, fmt.Errorf("network %q branch %q: %w", n.name, branch.Label(), bErr)
		}
		drops[i] = drop.Value()
		for j := range sub {
			if sub[j].Network == "" {
				sub[j].Network = n.name
			}
		}
		reports = append(reports, sub...)
		rc.branches = append(rc.branches, BranchSummary{
			Network:        n.name,
			Branch:         branch.Label(),
			FlowM3S:        flows[i].Value(),
			PressureDropPa: drop.Value(),
		})
	}
	return units.Pascals(floats.Max(drops)), reports, nil
}

// branchFlows apportions the incoming flow across the block's branches.
// User splits whose sum clearly exceeds the incoming flow are read as
// absolute flows in m³/s; otherwise they are relative weights. With no
// splits the flow divides equally.
func (n *Network) branchFlows(rc *runContext, q units.VolumetricFlowRate) ([]units.VolumetricFlowRate, error) {
	count := len(n.elements)
	flows := make([]units.VolumetricFlowRate, count)

	splits := rc.req.FlowSplits[n.name]
	if splits == nil {
		for i := range flows {
			flows[i] = units.CubicMetersPerSecond(q.Value() / float64(count))
		}
		return flows, nil
	}
	if len(splits) != count {
		return nil, fmt.Errorf("%w: network %q has %d branches but %d split values",
			ErrInvalidValue, n.name, count, len(splits))
	}
	sum := floats.Sum(splits)
	if sum <= 0 {
		return nil, fmt.Errorf("%w: split values for network %q must sum to a positive value", ErrInvalidValue, n.name)
	}
	for _, s := range splits {
		if s < 0 {
			return nil, fmt.Errorf("%w: split values for network %q must be non-negative", ErrInvalidValue, n.name)
		}
	}

	if sum > rc.cfg.Engine.AbsoluteSplitFactor*q.Value() {
		// Absolute flows; they replace the incoming flow entirely.
		for i, s := range splits {
			flows[i] = units.CubicMetersPerSecond(s)
		}
		return flows, nil
	}
	for i, s := range splits {
		flows[i] = units.CubicMetersPerSecond(q.Value() * s / sum)
	}
	return flows, nil
}

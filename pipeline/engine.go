package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/procflow/procflow/components"
	"github.com/procflow/procflow/fluids"
	"github.com/procflow/procflow/internal/config"
	"github.com/procflow/procflow/internal/logging"
	"github.com/procflow/procflow/internal/monitoring"
	"github.com/procflow/procflow/standards"
	"github.com/procflow/procflow/units"
)

// Request is an immutable description of one flow-resolution problem.
// Exactly one of the two modes applies: when Network is set the request
// is evaluated as a network, otherwise as a single pipe. Explicit scalar
// properties (Density, Viscosity) win over the Fluid's own values.
type Request struct {
	Fluid     components.Fluid
	Density   *units.Density
	Viscosity *units.Viscosity

	FlowRate     units.VolumetricFlowRate
	MassFlowRate units.MassFlowRate
	Velocity     units.Velocity

	// Single-pipe mode: either a pre-built Pipe, or a Diameter (nominal)
	// plus Length to build one, or nothing to size one from the flow.
	Pipe     *Pipe
	Diameter units.Diameter
	Length   units.Length
	Material string
	Schedule string
	Fittings []*Fitting

	// Network mode.
	Network    *Network
	FlowSplits map[string][]float64

	IncludeSchematic bool
}

// Engine evaluates requests. It is safe for concurrent use; each run
// keeps its state in a private context.
type Engine struct {
	cfg     *config.Config
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig overrides the engine configuration.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithLogger attaches a logger. The default engine is silent.
func WithLogger(log *logging.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithConfiguredLogger builds the logger from the configuration's logging
// section. Apply it after WithConfig so the right section is read; an
// unparseable level keeps the silent default.
func WithConfiguredLogger() Option {
	return func(e *Engine) {
		log, err := logging.New(logging.Config{
			Level:       e.cfg.Logging.Level,
			Development: e.cfg.Logging.Development,
			OutputPaths: []string{"stdout"},
		})
		if err != nil {
			return
		}
		e.log = log
	}
}

// WithMetrics attaches a Prometheus metrics collector.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New builds an Engine with environment-derived configuration and any
// overrides applied.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg: config.LoadOrDefault(),
		log: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates one request and returns an immutable result. The request
// is never mutated; auto-sizing produces an adjusted pipe copy that is
// reported in Results.Pipe.
func (e *Engine) Run(req Request) (*Results, error) {
	start := time.Now()
	mode := "pipe"
	if req.Network != nil {
		mode = "network"
	}

	res, err := e.run(&req, mode)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	e.metrics.RecordRun(mode, outcome, time.Since(start))
	if err != nil {
		e.log.Error("run failed", zap.String("mode", mode), zap.Error(err))
		return nil, err
	}
	e.log.Info("run complete",
		zap.String("run_id", res.RunID),
		zap.String("mode", mode),
		zap.Float64("total_drop_pa", res.Summary.TotalPressureDropPa),
		zap.Duration("duration", time.Since(start)))
	return res, nil
}

func (e *Engine) run(req *Request, mode string) (*Results, error) {
	rc := &runContext{
		cfg:     e.cfg,
		log:     e.log,
		metrics: e.metrics,
		req:     req,
	}

	// Fluid properties resolve first: a run that cannot name its density
	// or viscosity fails before any numerics are attempted.
	if err := rc.resolveProperties(); err != nil {
		return nil, err
	}

	res := &Results{
		RunID: uuid.NewString(),
		Mode:  mode,
	}
	if req.Fluid != nil {
		res.Fluid = req.Fluid.Name()
	}

	var err error
	if mode == "network" {
		err = e.runNetwork(rc, res)
	} else {
		err = e.runPipe(rc, res)
	}
	if err != nil {
		return nil, err
	}
	res.Warnings = rc.warnings
	return res, nil
}

func (rc *runContext) resolveProperties() error {
	switch {
	case rc.req.Density != nil:
		rc.rho = *rc.req.Density
	case rc.req.Fluid != nil:
		rc.rho = rc.req.Fluid.Density()
	}
	if rc.rho.Value() <= 0 {
		return fmt.Errorf("%w: fluid density: supply Density or a Fluid", ErrUnresolvable)
	}

	switch {
	case rc.req.Viscosity != nil:
		rc.mu = *rc.req.Viscosity
	case rc.req.Fluid != nil:
		rc.mu = rc.req.Fluid.Viscosity()
	}
	if rc.mu.Value() <= 0 {
		return fmt.Errorf("%w: fluid viscosity: supply Viscosity or a Fluid", ErrUnresolvable)
	}
	return nil
}

// resolveFlow settles the flow-velocity duality against the pipe bore:
// an explicit volumetric flow wins, then a mass flow at the resolved
// density, then a velocity converted through the bore area.
func (rc *runContext) resolveFlow(d units.Diameter) (units.VolumetricFlowRate, error) {
	if !rc.req.FlowRate.IsZero() {
		return rc.req.FlowRate, nil
	}
	if !rc.req.MassFlowRate.IsZero() {
		return rc.req.MassFlowRate.Volumetric(rc.rho)
	}
	if !rc.req.Velocity.IsZero() {
		if d.IsZero() {
			return units.VolumetricFlowRate{}, fmt.Errorf("%w: flow rate: a velocity alone needs a resolvable diameter",
				ErrUnresolvable)
		}
		return fluids.FlowFromVelocity(rc.req.Velocity, d)
	}
	return units.VolumetricFlowRate{}, fmt.Errorf("%w: flow rate: supply FlowRate, MassFlowRate, or Velocity",
		ErrUnresolvable)
}

func (e *Engine) runNetwork(rc *runContext, res *Results) error {
	net := rc.req.Network
	if err := net.Validate(); err != nil {
		return err
	}

	q, err := rc.resolveFlow(units.Diameter{})
	if err != nil {
		return err
	}

	drop, reports, err := net.evaluate(rc, q)
	if err != nil {
		return err
	}
	head, err := fluids.PressureToHead(drop, rc.rho)
	if err != nil {
		return err
	}

	res.Elements = reports
	res.Branches = rc.branches
	res.Summary = Summary{
		InletFlowM3S:        q.Value(),
		TotalPressureDropPa: drop.Value(),
		TotalHeadM:          head.Value(),
		PumpShaftPowerKW:    rc.pumpShaftW / 1e3,
	}
	if rc.req.IncludeSchematic {
		res.Schematic = net.Schematic()
	}
	return nil
}

func (e *Engine) runPipe(rc *runContext, res *Results) error {
	pipe, sized, err := rc.resolvePipe()
	if err != nil {
		return err
	}
	d, ok := pipe.InternalDiameter()
	if !ok {
		return fmt.Errorf("%w: internal diameter of pipe %q", ErrUnresolvable, pipe.Name())
	}

	q, err := rc.resolveFlow(d)
	if err != nil {
		return err
	}

	// Check the service velocity band before committing to this bore. An
	// out-of-band velocity resizes an adjusted copy; the original pipe is
	// untouched.
	if band, found := rc.serviceBand(); found {
		v, vErr := fluids.FluidVelocity(q, d)
		if vErr != nil {
			return vErr
		}
		if !band.Contains(v, rc.cfg.Engine.VelocityTolerance) {
			target := band.Midpoint()
			exact, dErr := fluids.DiameterForVelocity(q, target)
			if dErr != nil {
				return dErr
			}
			// Snap to the nearest catalog size; fall back to the exact bore
			// when the (nominal, schedule) pair has no table entry.
			nominal := standards.NearestDiameter(exact)
			bore := exact
			if id, ok := standards.InternalDiameter(nominal, pipe.Schedule()); ok {
				bore = id
			}
			rc.warn("pipe %q resized from %.4g m to DN%.0f (%.4g m bore): %.3g m/s was outside the recommended band around %.3g m/s",
				pipe.Name(), d.Value(), nominal.Value()*1e3, bore.Value(), v.Value(), target.Value())
			pipe = pipe.withBore(nominal, bore)
			d = bore
			sized = true
			rc.metrics.RecordAutoSize()
		}
	}

	drop, reports, err := pipe.evaluate(rc, q)
	if err != nil {
		return err
	}
	pipeReport := reports[0]

	// Minor losses ride on the pipe's flow context: a fitting without its
	// own bore uses the pipe's.
	total := drop
	for _, fit := range rc.req.Fittings {
		if fit.Diameter().IsZero() {
			fit = fit.withDiameter(d)
		}
		fDrop, fReports, fErr := fit.evaluate(rc, q)
		if fErr != nil {
			return fErr
		}
		total = total.Add(fDrop)
		reports = append(reports, fReports...)
	}

	head, err := fluids.PressureToHead(total, rc.rho)
	if err != nil {
		return err
	}

	res.Elements = reports
	res.Summary = Summary{
		InletFlowM3S:        q.Value(),
		TotalPressureDropPa: total.Value(),
		TotalHeadM:          head.Value(),
		PumpShaftPowerKW:    rc.pumpShaftW / 1e3,
	}
	res.Pipe = &PipeInfo{
		Name:              pipe.Name(),
		NominalDiameterMM: pipe.NominalDiameter().Value() * 1e3,
		InternalDiameterM: d.Value(),
		LengthM:           pipe.Length().Value(),
		Schedule:          pipe.Schedule(),
		Material:          pipe.Material(),
		AutoSized:         sized,
	}
	res.VelocityMS = pipeReport.VelocityMS
	res.Reynolds = pipeReport.Reynolds
	res.FrictionFactor = pipeReport.FrictionFactor
	res.PressureDropPa = drop.Value()
	return nil
}

// resolvePipe settles the single-pipe geometry: an explicit Pipe wins,
// then a nominal diameter and length from the request, then an
// optimum-diameter estimate from the flow snapped to the nearest catalog
// size. The second return reports whether the pipe was auto-built.
func (rc *runContext) resolvePipe() (*Pipe, bool, error) {
	if rc.req.Pipe != nil {
		return rc.req.Pipe, false, nil
	}
	if !rc.req.Diameter.IsZero() {
		p, err := NewPipe(PipeSpec{
			Name:            "pipe",
			NominalDiameter: rc.req.Diameter,
			Schedule:        rc.req.Schedule,
			Material:        rc.req.Material,
			Length:          rc.pipeLength(),
		})
		return p, false, err
	}

	// No geometry at all: size from the flow.
	q, err := rc.resolveFlow(units.Diameter{})
	if err != nil {
		return nil, false, err
	}
	dOpt, err := fluids.OptimumDiameter(q, rc.rho)
	if err != nil {
		return nil, false, err
	}
	nominal := standards.NearestDiameter(dOpt)
	rc.warn("no pipe given: sized DN%.0f from the optimum-diameter estimate %.1f mm",
		nominal.Value()*1e3, dOpt.Value()*1e3)
	p, err := NewPipe(PipeSpec{
		Name:            fmt.Sprintf("pipe-dn%.0f", nominal.Value()*1e3),
		NominalDiameter: nominal,
		Schedule:        rc.req.Schedule,
		Material:        rc.req.Material,
		Length:          rc.pipeLength(),
	})
	return p, true, err
}

func (rc *runContext) pipeLength() units.Length {
	if rc.req.Length.Value() > 0 {
		return rc.req.Length
	}
	return units.Meters(rc.cfg.Engine.DefaultPipeLengthM)
}

// serviceBand looks up the recommended velocity band for the request's
// fluid service, if any.
func (rc *runContext) serviceBand() (standards.VelocityBand, bool) {
	if rc.req.Fluid == nil {
		return standards.VelocityBand{}, false
	}
	service := rc.req.Fluid.ServiceType()
	if service == "" {
		return standards.VelocityBand{}, false
	}
	return standards.RecommendedVelocity(service)
}

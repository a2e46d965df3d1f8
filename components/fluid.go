package components

import "github.com/procflow/procflow/units"

// Fluid supplies the transport properties the pipeline engine needs.
type Fluid interface {
	Name() string
	Density() units.Density
	Viscosity() units.Viscosity
	// ServiceType names the piping service for recommended-velocity
	// lookups; empty means no service limit applies.
	ServiceType() string
}

// Custom is an explicit-property fluid for cases with no component model.
type Custom struct {
	FluidName string
	Rho       units.Density
	Mu        units.Viscosity
	Service   string
}

func (c Custom) Name() string { return c.FluidName }

func (c Custom) Density() units.Density { return c.Rho }

func (c Custom) Viscosity() units.Viscosity { return c.Mu }

func (c Custom) ServiceType() string { return c.Service }

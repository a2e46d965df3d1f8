package standards

import "github.com/procflow/procflow/units"

// VelocityBand is a recommended service velocity: either a [Min, Max]
// range or a single Target value.
type VelocityBand struct {
	Min    units.Velocity
	Max    units.Velocity
	Target units.Velocity
	Range  bool
}

// Contains reports whether v lies inside the band. For a single-target
// band, v must be within the tolerance fraction of the target.
func (b VelocityBand) Contains(v units.Velocity, tolerance float64) bool {
	if b.Range {
		return v.Value() >= b.Min.Value() && v.Value() <= b.Max.Value()
	}
	t := b.Target.Value()
	return v.Value() >= t*(1-tolerance) && v.Value() <= t*(1+tolerance)
}

// Midpoint returns the sizing target for the band.
func (b VelocityBand) Midpoint() units.Velocity {
	if !b.Range {
		return b.Target
	}
	return units.MetersPerSecond((b.Min.Value() + b.Max.Value()) / 2)
}

func rangeBand(min, max float64) VelocityBand {
	return VelocityBand{
		Min:   units.MetersPerSecond(min),
		Max:   units.MetersPerSecond(max),
		Range: true,
	}
}

func targetBand(target float64) VelocityBand {
	return VelocityBand{Target: units.MetersPerSecond(target)}
}

var recommendedVelocities = map[string]VelocityBand{
	"water":             rangeBand(1.0, 3.0),
	"cooling_water":     rangeBand(1.5, 2.5),
	"boiler_feed_water": rangeBand(1.5, 2.5),
	"condensate":        targetBand(1.0),
	"brine":             rangeBand(1.5, 2.5),
	"steam_saturated":   rangeBand(20, 30),
	"steam_superheated": rangeBand(30, 50),
	"air":               rangeBand(15, 20),
	"natural_gas":       targetBand(15),
	"viscous_oil":       rangeBand(0.5, 1.0),
	"light_hydrocarbon": rangeBand(1.5, 3.0),
}

// RecommendedVelocity returns the recommended velocity band for a named
// service, if the service is known.
func RecommendedVelocity(service string) (VelocityBand, bool) {
	b, ok := recommendedVelocities[service]
	return b, ok
}

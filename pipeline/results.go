package pipeline

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// Element kinds reported in results.
const (
	KindPipe      = "pipe"
	KindFitting   = "fitting"
	KindPump      = "pump"
	KindEquipment = "equipment"
	KindNetwork   = "network"
)

// ElementReport is the per-element breakdown of one evaluation. Fields
// that do not apply to the element kind are zero and omitted from JSON.
type ElementReport struct {
	Name           string   `json:"name"`
	Kind           string   `json:"kind"`
	Network        string   `json:"network,omitempty"`
	DiameterM      float64  `json:"diameter_m,omitempty"`
	FlowM3S        float64  `json:"flow_m3s,omitempty"`
	VelocityMS     float64  `json:"velocity_ms,omitempty"`
	Reynolds       float64  `json:"reynolds,omitempty"`
	FrictionFactor float64  `json:"friction_factor,omitempty"`
	PressureDropPa float64  `json:"pressure_drop_pa"`
	BoundaryDropPa float64  `json:"boundary_drop_pa,omitempty"`
	HeadM          float64  `json:"head_m,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

// BranchSummary is the flow apportionment of one parallel branch.
type BranchSummary struct {
	Network        string  `json:"network"`
	Branch         string  `json:"branch"`
	FlowM3S        float64 `json:"flow_m3s"`
	PressureDropPa float64 `json:"pressure_drop_pa"`
}

// PipeInfo describes the pipe a single-pipe run resolved, including any
// auto-sizing adjustment.
type PipeInfo struct {
	Name              string  `json:"name"`
	NominalDiameterMM float64 `json:"nominal_diameter_mm,omitempty"`
	InternalDiameterM float64 `json:"internal_diameter_m"`
	LengthM           float64 `json:"length_m"`
	Schedule          string  `json:"schedule,omitempty"`
	Material          string  `json:"material,omitempty"`
	AutoSized         bool    `json:"auto_sized,omitempty"`
}

// Summary holds the run-level aggregates.
type Summary struct {
	InletFlowM3S        float64 `json:"inlet_flow_m3s"`
	TotalPressureDropPa float64 `json:"total_pressure_drop_pa"`
	TotalHeadM          float64 `json:"total_head_m"`
	PumpShaftPowerKW    float64 `json:"pump_shaft_power_kw,omitempty"`
}

// Results is the immutable outcome of one engine run.
type Results struct {
	RunID    string          `json:"run_id"`
	Mode     string          `json:"mode"`
	Fluid    string          `json:"fluid,omitempty"`
	Summary  Summary         `json:"summary"`
	Elements []ElementReport `json:"elements"`
	Branches []BranchSummary `json:"branches,omitempty"`

	// Single-pipe mode details.
	Pipe           *PipeInfo `json:"pipe,omitempty"`
	VelocityMS     float64   `json:"velocity_ms,omitempty"`
	Reynolds       float64   `json:"reynolds,omitempty"`
	FrictionFactor float64   `json:"friction_factor,omitempty"`
	PressureDropPa float64   `json:"pressure_drop_pa,omitempty"`

	Schematic string   `json:"schematic,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// JSON serializes the results.
func (r *Results) JSON() ([]byte, error) {
	return sonic.Marshal(r)
}

// String renders a human-readable report.
func (r *Results) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Run %s (%s mode)\n", r.RunID, r.Mode)
	if r.Fluid != "" {
		fmt.Fprintf(&b, "  fluid:            %s\n", r.Fluid)
	}
	fmt.Fprintf(&b, "  inlet flow:       %.6g m3/s\n", r.Summary.InletFlowM3S)
	fmt.Fprintf(&b, "  total drop:       %.6g Pa (%.4g m head)\n",
		r.Summary.TotalPressureDropPa, r.Summary.TotalHeadM)
	if r.Summary.PumpShaftPowerKW > 0 {
		fmt.Fprintf(&b, "  pump shaft power: %.4g kW\n", r.Summary.PumpShaftPowerKW)
	}
	if r.Pipe != nil {
		fmt.Fprintf(&b, "  pipe:             %s ID=%.5g m, L=%g m", r.Pipe.Name,
			r.Pipe.InternalDiameterM, r.Pipe.LengthM)
		if r.Pipe.AutoSized {
			b.WriteString(" (auto-sized)")
		}
		b.WriteByte('\n')
		fmt.Fprintf(&b, "  velocity:         %.4g m/s\n", r.VelocityMS)
		fmt.Fprintf(&b, "  reynolds:         %.6g\n", r.Reynolds)
		fmt.Fprintf(&b, "  friction factor:  %.5g\n", r.FrictionFactor)
	}
	if len(r.Elements) > 0 {
		b.WriteString("  elements:\n")
		for _, el := range r.Elements {
			fmt.Fprintf(&b, "    %-24s %-10s dP=%.6g Pa", el.Name, el.Kind, el.PressureDropPa)
			if el.HeadM != 0 {
				fmt.Fprintf(&b, " head=%.4g m", el.HeadM)
			}
			b.WriteByte('\n')
		}
	}
	if len(r.Branches) > 0 {
		b.WriteString("  branches:\n")
		for _, br := range r.Branches {
			fmt.Fprintf(&b, "    %s/%s: Q=%.6g m3/s, dP=%.6g Pa\n",
				br.Network, br.Branch, br.FlowM3S, br.PressureDropPa)
		}
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  warning: %s\n", w)
	}
	if r.Schematic != "" {
		b.WriteString(r.Schematic)
		b.WriteByte('\n')
	}
	return b.String()
}

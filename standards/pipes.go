package standards

import (
	"math"
	"sort"

	"github.com/procflow/procflow/units"
)

// scheduleEntry holds wall thickness and internal diameter in millimeters
// for one (nominal size, schedule) pair.
type scheduleEntry struct {
	thicknessMM float64
	internalMM  float64
}

// pipeSchedules is keyed by nominal diameter in millimeters, then schedule
// designation.
var pipeSchedules = map[int]map[string]scheduleEntry{
	25:  {"40": {3.38, 21.3}, "80": {4.55, 20.2}},
	40:  {"40": {3.68, 40.9}, "80": {5.08, 38.1}},
	50:  {"40": {3.91, 52.5}, "80": {5.54, 50.3}},
	80:  {"40": {5.49, 77.9}, "80": {7.62, 73.7}},
	100: {"40": {6.02, 102.3}, "80": {8.56, 97.2}},
	150: {"40": {7.11, 154.1}, "80": {10.97, 146.3}},
	200: {"40": {8.18, 202.7}, "80": {12.70, 193.7}},
	250: {"40": {9.27, 254.5}, "80": {15.09, 242.8}},
	300: {"40": {10.31, 303.2}, "80": {17.48, 289.0}},
}

// scheduleAliases maps trade designations onto table keys.
var scheduleAliases = map[string]string{
	"STD": "40",
	"XS":  "80",
}

func normalizeSchedule(schedule string) string {
	if alias, ok := scheduleAliases[schedule]; ok {
		return alias
	}
	return schedule
}

// NominalSizes returns the catalog nominal diameters in ascending order.
func NominalSizes() []units.Diameter {
	keys := make([]int, 0, len(pipeSchedules))
	for k := range pipeSchedules {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]units.Diameter, len(keys))
	for i, k := range keys {
		out[i] = units.DiameterMillimeters(float64(k))
	}
	return out
}

// Schedules returns the schedule designations carried by the catalog.
func Schedules() []string { return []string{"40", "80"} }

// InternalDiameter looks up the bore for a nominal size and schedule. The
// second return is false when the pair is not in the catalog.
func InternalDiameter(nominal units.Diameter, schedule string) (units.Diameter, bool) {
	entry, ok := lookupSchedule(nominal, schedule)
	if !ok {
		return units.Diameter{}, false
	}
	return units.DiameterMillimeters(entry.internalMM), true
}

// WallThickness looks up the wall thickness for a nominal size and schedule.
func WallThickness(nominal units.Diameter, schedule string) (units.Length, bool) {
	entry, ok := lookupSchedule(nominal, schedule)
	if !ok {
		return units.Length{}, false
	}
	return units.Millimeters(entry.thicknessMM), true
}

func lookupSchedule(nominal units.Diameter, schedule string) (scheduleEntry, bool) {
	key := int(math.Round(nominal.Value() * 1000))
	schedules, ok := pipeSchedules[key]
	if !ok {
		return scheduleEntry{}, false
	}
	entry, ok := schedules[normalizeSchedule(schedule)]
	return entry, ok
}

// NearestDiameter snaps a computed diameter to the catalog nominal size
// minimizing the absolute difference. Ties resolve to the first-listed
// (smaller) candidate.
func NearestDiameter(computed units.Diameter) units.Diameter {
	sizes := NominalSizes()
	best := sizes[0]
	bestDiff := math.Abs(sizes[0].Value() - computed.Value())
	for _, s := range sizes[1:] {
		diff := math.Abs(s.Value() - computed.Value())
		if diff < bestDiff {
			best, bestDiff = s, diff
		}
	}
	return best
}

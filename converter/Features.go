package converter

import (
	"fmt"
	"sort"

	"github.com/sc2rl/sc2conv/lookups"
)

// screenFeatureScale holds the number of distinct values of each screen
// feature plane. The plane's spec range is [0, scale-1].
var screenFeatureScale = map[string]int32{
	"height_map":            256,
	"visibility_map":        4,
	"creep":                 2,
	"power":                 2,
	"player_id":             17,
	"player_relative":       5,
	"unit_type":             lookups.MaxUnitType() + 1,
	"selected":              2,
	"unit_hit_points_ratio": 256,
	"unit_energy_ratio":     256,
	"unit_shields_ratio":    256,
	"unit_density":          16,
	"unit_density_aa":       256,
	"effects":               16,
	"hallucinations":        2,
	"cloaked":               2,
	"blip":                  2,
	"active":                2,
	"buffs":                 lookups.MaxBuff() + 1,
	"buff_duration":         256,
	"build_progress":        256,
	"pathable":              2,
	"buildable":             2,
}

var minimapFeatureScale = map[string]int32{
	"height_map":      256,
	"visibility_map":  4,
	"creep":           2,
	"camera":          2,
	"player_id":       17,
	"player_relative": 5,
	"selected":        2,
	"alerts":          2,
	"pathable":        2,
	"buildable":       2, // Cheating.
	"unit_type":       lookups.MaxUnitType() + 1, // Cheating.
}

// ScreenFeatures returns the names of every supported screen feature
// plane, sorted.
func ScreenFeatures() []string {
	features := make([]string, 0, len(screenFeatureScale))
	for name := range screenFeatureScale {
		features = append(features, name)
	}
	sort.Strings(features)
	return features
}

// MinimapFeatures returns the names of the supported minimap feature
// planes, sorted. The cheating planes are left out.
func MinimapFeatures() []string {
	features := make([]string, 0, len(minimapFeatureScale))
	for name := range minimapFeatureScale {
		if name == "buildable" || name == "unit_type" {
			continue
		}
		features = append(features, name)
	}
	sort.Strings(features)
	return features
}

// ScreenFeatureScale returns the value count of the named screen
// feature plane.
func ScreenFeatureScale(name string) (int32, error) {
	scale, ok := screenFeatureScale[name]
	if !ok {
		return 0, fmt.Errorf("unknown screen feature %q", name)
	}
	return scale, nil
}

// MinimapFeatureScale returns the value count of the named minimap
// feature plane.
func MinimapFeatureScale(name string) (int32, error) {
	scale, ok := minimapFeatureScale[name]
	if !ok {
		return 0, fmt.Errorf("unknown minimap feature %q", name)
	}
	return scale, nil
}

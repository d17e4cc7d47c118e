package converter

import (
	"encoding/binary"
	"fmt"

	"github.com/aiseeq/s2l/protocol/api"
	"gorgonia.org/tensor"

	"github.com/sc2rl/sc2conv/lookups"
	"github.com/sc2rl/sc2conv/tensorutil"
)

// screenLayer resolves a screen feature name to its image in the
// protocol's render message.
var screenLayer = map[string]func(*api.FeatureLayers) *api.ImageData{
	"height_map":            func(l *api.FeatureLayers) *api.ImageData { return l.HeightMap },
	"visibility_map":        func(l *api.FeatureLayers) *api.ImageData { return l.VisibilityMap },
	"creep":                 func(l *api.FeatureLayers) *api.ImageData { return l.Creep },
	"power":                 func(l *api.FeatureLayers) *api.ImageData { return l.Power },
	"player_id":             func(l *api.FeatureLayers) *api.ImageData { return l.PlayerId },
	"player_relative":       func(l *api.FeatureLayers) *api.ImageData { return l.PlayerRelative },
	"unit_type":             func(l *api.FeatureLayers) *api.ImageData { return l.UnitType },
	"selected":              func(l *api.FeatureLayers) *api.ImageData { return l.Selected },
	"unit_hit_points_ratio": func(l *api.FeatureLayers) *api.ImageData { return l.UnitHitPointsRatio },
	"unit_energy_ratio":     func(l *api.FeatureLayers) *api.ImageData { return l.UnitEnergyRatio },
	"unit_shields_ratio":    func(l *api.FeatureLayers) *api.ImageData { return l.UnitShieldsRatio },
	"unit_density":          func(l *api.FeatureLayers) *api.ImageData { return l.UnitDensity },
	"unit_density_aa":       func(l *api.FeatureLayers) *api.ImageData { return l.UnitDensityAa },
	"effects":               func(l *api.FeatureLayers) *api.ImageData { return l.Effects },
	"hallucinations":        func(l *api.FeatureLayers) *api.ImageData { return l.Hallucinations },
	"cloaked":               func(l *api.FeatureLayers) *api.ImageData { return l.Cloaked },
	"blip":                  func(l *api.FeatureLayers) *api.ImageData { return l.Blip },
	"active":                func(l *api.FeatureLayers) *api.ImageData { return l.Active },
	"buffs":                 func(l *api.FeatureLayers) *api.ImageData { return l.Buffs },
	"buff_duration":         func(l *api.FeatureLayers) *api.ImageData { return l.BuffDuration },
	"build_progress":        func(l *api.FeatureLayers) *api.ImageData { return l.BuildProgress },
	"pathable":              func(l *api.FeatureLayers) *api.ImageData { return l.Pathable },
	"buildable":             func(l *api.FeatureLayers) *api.ImageData { return l.Buildable },
}

var minimapLayer = map[string]func(*api.FeatureLayersMinimap) *api.ImageData{
	"height_map":      func(l *api.FeatureLayersMinimap) *api.ImageData { return l.HeightMap },
	"visibility_map":  func(l *api.FeatureLayersMinimap) *api.ImageData { return l.VisibilityMap },
	"creep":           func(l *api.FeatureLayersMinimap) *api.ImageData { return l.Creep },
	"camera":          func(l *api.FeatureLayersMinimap) *api.ImageData { return l.Camera },
	"player_id":       func(l *api.FeatureLayersMinimap) *api.ImageData { return l.PlayerId },
	"player_relative": func(l *api.FeatureLayersMinimap) *api.ImageData { return l.PlayerRelative },
	"selected":        func(l *api.FeatureLayersMinimap) *api.ImageData { return l.Selected },
	"alerts":          func(l *api.FeatureLayersMinimap) *api.ImageData { return l.Alerts },
	"pathable":        func(l *api.FeatureLayersMinimap) *api.ImageData { return l.Pathable },
	"buildable":       func(l *api.FeatureLayersMinimap) *api.ImageData { return l.Buildable },
	"unit_type":       func(l *api.FeatureLayersMinimap) *api.ImageData { return l.UnitType },
}

// layerTransform returns the per-pixel compaction applied to the named
// plane, or nil when values pass through unchanged.
func layerTransform(name string) func(int32) int32 {
	switch name {
	case "unit_type":
		return func(v int32) int32 { return lookups.CompactUnitType(api.UnitTypeID(v)) }
	case "buffs":
		return func(v int32) int32 { return lookups.CompactBuff(api.BuffID(v)) }
	}
	return nil
}

// ScreenPlane rasterizes the named screen feature plane to uint8.
func ScreenPlane(layers *api.FeatureLayers, name string) *tensor.Dense {
	access, ok := screenLayer[name]
	if !ok {
		panic(fmt.Sprintf("converter: no screen feature named %q", name))
	}
	return rasterize(access(layers), layerTransform(name))
}

// MinimapPlane rasterizes the named minimap feature plane to uint8.
func MinimapPlane(layers *api.FeatureLayersMinimap, name string) *tensor.Dense {
	access, ok := minimapLayer[name]
	if !ok {
		panic(fmt.Sprintf("converter: no minimap feature named %q", name))
	}
	return rasterize(access(layers), layerTransform(name))
}

// rasterize unpacks a protocol image into a uint8 matrix of the image's
// size, applying transform per pixel when given. 1, 8 and 32 bits per
// pixel are supported; 1-bit images cannot carry a transform.
func rasterize(img *api.ImageData, transform func(int32) int32) *tensor.Dense {
	if img == nil || img.Size_ == nil || img.Size_.X <= 0 || img.Size_.Y <= 0 {
		panic("converter: feature plane image is empty")
	}
	rows := int(img.Size_.Y)
	cols := int(img.Size_.X)
	out := make([]uint8, rows*cols)

	switch img.BitsPerPixel {
	case 1:
		if transform != nil {
			panic("converter: transform not supported for 1 bit images")
		}
		if len(img.Data)*8 != len(out) {
			panic(fmt.Sprintf("converter: 1 bit image carries %d bytes for %d pixels",
				len(img.Data), len(out)))
		}
		for i, b := range img.Data {
			for j := 0; j < 8; j++ {
				out[i*8+j] = (b >> (7 - j)) & 1
			}
		}

	case 8:
		if len(img.Data) != len(out) {
			panic(fmt.Sprintf("converter: 8 bit image carries %d bytes for %d pixels",
				len(img.Data), len(out)))
		}
		if transform == nil {
			copy(out, img.Data)
		} else {
			for i, b := range img.Data {
				out[i] = uint8(transform(int32(b)))
			}
		}

	case 32:
		if len(img.Data) != 4*len(out) {
			panic(fmt.Sprintf("converter: 32 bit image carries %d bytes for %d pixels",
				len(img.Data), len(out)))
		}
		for i := range out {
			v := int32(binary.LittleEndian.Uint32(img.Data[4*i:]))
			if transform != nil {
				v = transform(v)
			}
			out[i] = uint8(v)
		}

	default:
		panic(fmt.Sprintf("converter: cannot rasterize %d bits per pixel",
			img.BitsPerPixel))
	}

	return tensorutil.Uint8Matrix(out, rows, cols)
}

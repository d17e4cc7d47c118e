// Package transform converts between the game's world coordinates and
// the pixel coordinates of observation planes.
//
// World space has its origin at the bottom left of the map with y
// growing upward. Pixel space has its origin at the top left with y
// growing downward, so every conversion flips the y axis. Maps are
// rarely square; both axes share one scale derived from the longer map
// dimension, leaving the short axis letterboxed.
package transform

import (
	"math"

	"github.com/aiseeq/s2l/protocol/api"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/sc2rl/sc2conv/tensorutil"
)

func maxDim(mapSize *api.Size2DI) float64 {
	if mapSize.X > mapSize.Y {
		return float64(mapSize.X)
	}
	return float64(mapSize.Y)
}

// WorldToPixel maps a world point to pixel coordinates at the given
// resolution, flooring to the containing pixel.
func WorldToPixel(p r2.Vec, mapSize, resolution *api.Size2DI) (x, y int32) {
	fx := p.X
	fy := float64(mapSize.Y) - p.Y
	m := maxDim(mapSize)
	x = tensorutil.ToInt32(math.Floor(fx * float64(resolution.X) / m))
	y = tensorutil.ToInt32(math.Floor(fy * float64(resolution.Y) / m))
	return x, y
}

// WorldToDistance scales a world-space distance to pixels.
func WorldToDistance(distance float64, mapSize, resolution *api.Size2DI) int32 {
	return tensorutil.ToInt32(distance * float64(resolution.X) / maxDim(mapSize))
}

// IndexToWorld maps a flat pixel index to the center of that pixel in
// world space.
func IndexToWorld(index, resolution int32, mapSize *api.Size2DI) r2.Vec {
	x := float64(index%resolution) + 0.5
	y := float64(index/resolution) + 0.5
	scale := float64(resolution) / maxDim(mapSize)
	return r2.Vec{X: x / scale, Y: float64(mapSize.Y) - y/scale}
}

// WorldToIndex maps a world point to the flat index of the pixel that
// contains it. Points below the bottom edge of the map clamp onto the
// bottom row.
func WorldToIndex(p r2.Vec, resolution int32, mapSize *api.Size2DI) int32 {
	scale := float64(resolution) / maxDim(mapSize)
	x := int32(scale * p.X)
	y := int32(scale * (float64(mapSize.Y) - math.Max(0.5, p.Y)))
	return resolution*y + x
}

package transform

import (
	"fmt"

	"github.com/aiseeq/s2l/protocol/api"
	"gonum.org/v1/gonum/spatial/r2"
	"gorgonia.org/tensor"

	"github.com/sc2rl/sc2conv/tensorutil"
)

// Camera tracks the world-space view rectangle used to decide which
// units are on screen when the game itself is not rendering. Extents
// are measured from the camera center; top extends toward lower world
// y, which is higher on the map as the player sees it.
type Camera struct {
	x, y                     float64
	left, right, top, bottom float64
}

// NewCamera positions a camera at (x, y) with the given extents. All
// extents must be positive.
func NewCamera(x, y, left, right, top, bottom float64) *Camera {
	if left <= 0 || right <= 0 || top <= 0 || bottom <= 0 {
		panic(fmt.Sprintf("camera extents must be positive, got %v %v %v %v",
			left, right, top, bottom))
	}
	return &Camera{x: x, y: y, left: left, right: right, top: top, bottom: bottom}
}

// Move recenters the camera.
func (c *Camera) Move(x, y float64) {
	c.x = x
	c.y = y
}

// X returns the camera center's world x coordinate.
func (c *Camera) X() float64 { return c.x }

// Y returns the camera center's world y coordinate.
func (c *Camera) Y() float64 { return c.y }

// Contains reports whether the world point (x, y) is on screen.
func (c *Camera) Contains(x, y float64) bool {
	yMin := c.y - c.top
	yMax := c.y + c.bottom
	return c.x-c.left <= x && x <= c.x+c.right && yMin <= y && y <= yMax
}

// Render rasterizes the camera rectangle into an int32 plane of shape
// {resolution.Y, resolution.X}. Every pixel the camera edges cross is
// included.
func (c *Camera) Render(mapSize, resolution *api.Size2DI) *tensor.Dense {
	left, _ := WorldToPixel(r2.Vec{X: c.x - c.left, Y: c.y}, mapSize, resolution)
	right, _ := WorldToPixel(r2.Vec{X: c.x + c.right, Y: c.y}, mapSize, resolution)
	_, top := WorldToPixel(r2.Vec{X: c.x, Y: c.y - c.top}, mapSize, resolution)
	_, bottom := WorldToPixel(r2.Vec{X: c.x, Y: c.y + c.bottom}, mapSize, resolution)

	// The y flip swaps top and bottom in pixel space.
	if left >= right || bottom >= top {
		panic(fmt.Sprintf("degenerate camera rectangle: left %d right %d top %d bottom %d",
			left, right, top, bottom))
	}

	plane := tensorutil.ZeroMatrix(int(resolution.Y), int(resolution.X))
	data := tensorutil.Int32s(plane)
	for y := int32(0); y < resolution.Y; y++ {
		for x := int32(0); x < resolution.X; x++ {
			if left <= x && x <= right && bottom <= y && y <= top {
				data[y*resolution.X+x] = 1
			}
		}
	}
	return plane
}

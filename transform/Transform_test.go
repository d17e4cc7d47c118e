package transform

import (
	"testing"

	"github.com/aiseeq/s2l/protocol/api"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/sc2rl/sc2conv/tensorutil"
)

func size(x, y int32) *api.Size2DI {
	return &api.Size2DI{X: x, Y: y}
}

func TestWorldToPixelCorners(t *testing.T) {
	mapSize := size(128, 128)
	res := size(64, 64)
	cases := []struct {
		p    r2.Vec
		x, y int32
	}{
		{r2.Vec{X: 0, Y: 128}, 0, 0},  // top left of the map
		{r2.Vec{X: 0, Y: 0}, 0, 64},   // bottom left, one past the last row
		{r2.Vec{X: 127.9, Y: 0.1}, 63, 63},
		{r2.Vec{X: 64, Y: 64}, 32, 32},
	}
	for _, c := range cases {
		x, y := WorldToPixel(c.p, mapSize, res)
		if x != c.x || y != c.y {
			t.Errorf("WorldToPixel(%v) = (%d, %d), want (%d, %d)", c.p, x, y, c.x, c.y)
		}
	}
}

func TestWorldToPixelRectangularMap(t *testing.T) {
	// Scale comes from the longer dimension, letterboxing the short axis.
	mapSize := size(64, 128)
	res := size(64, 64)
	x, y := WorldToPixel(r2.Vec{X: 63.9, Y: 0.1}, mapSize, res)
	if x != 31 || y != 63 {
		t.Errorf("got (%d, %d), want (31, 63)", x, y)
	}
}

func TestWorldToDistance(t *testing.T) {
	if d := WorldToDistance(16, size(128, 128), size(64, 64)); d != 8 {
		t.Errorf("WorldToDistance(16) = %d, want 8", d)
	}
}

func TestIndexToWorldPixelCenter(t *testing.T) {
	// Pixel 5 of the top row on a 128 world map at resolution 128 maps
	// to the center of that pixel.
	p := IndexToWorld(5, 128, size(128, 128))
	if p.X != 5.5 || p.Y != 127.5 {
		t.Errorf("IndexToWorld(5) = %v, want (5.5, 127.5)", p)
	}
}

func TestWorldIndexRoundTrip(t *testing.T) {
	// Rows past map height * scale are letterboxed; stay within the map.
	mapSize := size(100, 80)
	for _, idx := range []int32{0, 1, 63, 64*31 + 7, 64*50 + 63} {
		p := IndexToWorld(idx, 64, mapSize)
		if got := WorldToIndex(p, 64, mapSize); got != idx {
			t.Errorf("WorldToIndex(IndexToWorld(%d)) = %d", idx, got)
		}
	}
}

func TestWorldToIndexClampsBottomEdge(t *testing.T) {
	mapSize := size(128, 128)
	got := WorldToIndex(r2.Vec{X: 1, Y: 0}, 64, mapSize)
	want := WorldToIndex(r2.Vec{X: 1, Y: 0.5}, 64, mapSize)
	if got != want {
		t.Errorf("bottom edge index %d, want clamped %d", got, want)
	}
}

func TestCameraContains(t *testing.T) {
	c := NewCamera(50, 50, 12, 12, 8, 8)
	cases := []struct {
		x, y float64
		want bool
	}{
		{50, 50, true},
		{38, 50, true},
		{62.1, 50, false},
		{50, 58, true},
		{50, 58.5, false},
		{37.9, 50, false},
	}
	for _, cse := range cases {
		if got := c.Contains(cse.x, cse.y); got != cse.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", cse.x, cse.y, got, cse.want)
		}
	}
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(10, 10, 5, 5, 5, 5)
	c.Move(90, 20)
	if c.X() != 90 || c.Y() != 20 {
		t.Errorf("camera at (%v, %v), want (90, 20)", c.X(), c.Y())
	}
	if c.Contains(10, 10) {
		t.Error("camera still contains old position after move")
	}
}

func TestCameraRender(t *testing.T) {
	mapSize := size(64, 64)
	res := size(64, 64)
	c := NewCamera(32, 32, 4, 4, 4, 4)
	plane := c.Render(mapSize, res)
	if s := plane.Shape(); s[0] != 64 || s[1] != 64 {
		t.Fatalf("plane shape %v, want (64, 64)", s)
	}
	data := tensorutil.Int32s(plane)
	if data[32*64+32] != 1 {
		t.Error("camera center pixel not set")
	}
	if data[0] != 0 {
		t.Error("far corner pixel set")
	}
	// Edge pixels crossed by the rectangle are included.
	if data[28*64+28] != 1 {
		t.Error("edge pixel not set")
	}
	count := 0
	for _, v := range data {
		count += int(v)
	}
	if count != 9*9 {
		t.Errorf("camera covers %d pixels, want 81", count)
	}
}

func TestNewCameraRejectsNonPositiveExtents(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for non-positive extent")
		}
	}()
	NewCamera(0, 0, 0, 1, 1, 1)
}

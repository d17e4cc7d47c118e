package converter

import (
	"testing"

	"github.com/aiseeq/s2l/protocol/api"

	"github.com/sc2rl/sc2conv/tensorutil"
)

func image(bpp int32, x, y int32, data []byte) *api.ImageData {
	return &api.ImageData{
		BitsPerPixel: bpp,
		Size_:        &api.Size2DI{X: x, Y: y},
		Data:         data,
	}
}

func TestRasterizeOneBit(t *testing.T) {
	// 0xA1 unpacks most significant bit first.
	layers := &api.FeatureLayersMinimap{
		Creep: image(1, 8, 2, []byte{0xA1, 0xFF}),
	}
	plane := MinimapPlane(layers, "creep")
	if s := plane.Shape(); s[0] != 2 || s[1] != 8 {
		t.Fatalf("shape = %v, want [2 8]", s)
	}
	got := tensorutil.Uint8s(plane)
	want := []uint8{1, 0, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("plane = %v, want %v", got, want)
		}
	}
}

func TestRasterizeEightBit(t *testing.T) {
	layers := &api.FeatureLayersMinimap{
		HeightMap: image(8, 2, 2, []byte{0, 127, 200, 255}),
	}
	got := tensorutil.Uint8s(MinimapPlane(layers, "height_map"))
	want := []uint8{0, 127, 200, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("plane = %v, want %v", got, want)
		}
	}
}

func TestRasterizeCompactsUnitType(t *testing.T) {
	// InfestedTerran (7) compacts to dense id 4; the ground stays 0.
	data := make([]byte, 8)
	data[0] = 7
	layers := &api.FeatureLayers{
		UnitType: image(32, 2, 1, data),
	}
	got := tensorutil.Uint8s(ScreenPlane(layers, "unit_type"))
	if got[0] != 4 || got[1] != 0 {
		t.Errorf("plane = %v, want [4 0]", got)
	}
}

func TestRasterizeThirtyTwoBitLittleEndian(t *testing.T) {
	layers := &api.FeatureLayersMinimap{
		Alerts: image(32, 1, 1, []byte{2, 0, 0, 0}),
	}
	got := tensorutil.Uint8s(MinimapPlane(layers, "alerts"))
	if got[0] != 2 {
		t.Errorf("pixel = %d, want 2", got[0])
	}
}

func TestRasterizeRejectsShortData(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for truncated image data")
		}
	}()
	rasterize(image(8, 4, 4, []byte{1, 2, 3}), nil)
}

func TestUnknownFeaturePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for an unknown feature name")
		}
	}()
	ScreenPlane(&api.FeatureLayers{}, "no_such_plane")
}

package converter

import (
	"os"
	"path/filepath"
	"testing"
)

const settingsYAML = `
raw:
  resolution:
    x: 128
    y: 128
  max_unit_count: 512
  num_unit_features: 46
  max_unit_selection_size: 64
  shuffle_unit_tags: true
  use_virtual_camera: true
  virtual_camera_dimensions:
    left: 12
    right: 12
    top: 8
    bottom: 10
num_action_types: 564
num_unit_types: 243
num_upgrade_types: 86
max_num_upgrades: 40
minimap:
  x: 128
  y: 128
minimap_features:
  - height_map
  - camera
camera_width_world_units: 24
supervised: true
mmr: 3500
`

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "converter.yaml")
	if err := os.WriteFile(path, []byte(settingsYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}

	if s.Raw == nil {
		t.Fatal("raw settings not loaded")
	}
	if s.Visual != nil {
		t.Error("visual settings set, want unset")
	}
	if s.Raw.Resolution.X != 128 || s.Raw.MaxUnitCount != 512 {
		t.Errorf("raw = %+v", *s.Raw)
	}
	if !s.Raw.ShuffleUnitTags || !s.Raw.UseVirtualCamera {
		t.Errorf("raw flags = %+v", *s.Raw)
	}
	dims := s.Raw.VirtualCameraDimensions
	if dims == nil || dims.Left != 12 || dims.Bottom != 10 {
		t.Errorf("camera dimensions = %+v", dims)
	}
	if s.NumActionTypes != 564 || s.MaxNumUpgrades != 40 {
		t.Errorf("settings = %+v", *s)
	}
	if len(s.MinimapFeatures) != 2 || s.MinimapFeatures[1] != "camera" {
		t.Errorf("minimap features = %v", s.MinimapFeatures)
	}
	if !s.Supervised || s.MMR != 3500 {
		t.Errorf("settings = %+v", *s)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("no error for a missing file")
	}
}

func TestFeatureScales(t *testing.T) {
	if scale, err := MinimapFeatureScale("camera"); err != nil || scale != 2 {
		t.Errorf("camera scale = %d, %v, want 2", scale, err)
	}
	if scale, err := ScreenFeatureScale("unit_type"); err != nil || scale != 244 {
		t.Errorf("unit_type scale = %d, %v, want 244", scale, err)
	}
	if _, err := ScreenFeatureScale("no_such_feature"); err == nil {
		t.Error("no error for an unknown feature")
	}
}

func TestMinimapFeatureListExcludesCheats(t *testing.T) {
	for _, name := range MinimapFeatures() {
		if name == "buildable" || name == "unit_type" {
			t.Errorf("%q listed as an observable minimap feature", name)
		}
	}
	if _, err := MinimapFeatureScale("buildable"); err != nil {
		t.Error("buildable should still resolve a scale for replays")
	}
}

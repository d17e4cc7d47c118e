// Package converter turns the game's protocol observations into the
// fixed-shape tensors an agent consumes and agent action tensors back
// into protocol requests.
//
// A Converter is built once per episode from Settings and the game
// info, holds the per-episode state the translation needs (virtual
// camera, last commanded units, observed opponent race) and exposes
// the observation and action specs as pure functions of its settings.
package converter

import (
	"fmt"
	"os"

	"github.com/aiseeq/s2l/protocol/api"
	"gopkg.in/yaml.v3"
)

// Size2D is a width/height pair, YAML-loadable.
type Size2D struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

func (s Size2D) proto() *api.Size2DI {
	return &api.Size2DI{X: s.X, Y: s.Y}
}

// CameraDimensions are the four half-extents of the virtual camera,
// measured in world units from its center.
type CameraDimensions struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// RawSettings configures the entity-addressed interface.
type RawSettings struct {
	Resolution              Size2D            `yaml:"resolution"`
	MaxUnitCount            int32             `yaml:"max_unit_count"`
	NumUnitFeatures         int32             `yaml:"num_unit_features"`
	MaxUnitSelectionSize    int32             `yaml:"max_unit_selection_size"`
	ShuffleUnitTags         bool              `yaml:"shuffle_unit_tags"`
	EnableActionRepeat      bool              `yaml:"enable_action_repeat"`
	UseCameraPosition       bool              `yaml:"use_camera_position"`
	Camera                  bool              `yaml:"camera"`
	UseVirtualCamera        bool              `yaml:"use_virtual_camera"`
	VirtualCameraDimensions *CameraDimensions `yaml:"virtual_camera_dimensions"`
	MaskOffscreenEnemies    bool              `yaml:"mask_offscreen_enemies"`
	AddEffectsToUnits       bool              `yaml:"add_effects_to_units"`
	AddCargoToUnits         bool              `yaml:"add_cargo_to_units"`
}

// VisualSettings configures the pixel and user-interface addressed
// interface.
type VisualSettings struct {
	Screen         Size2D   `yaml:"screen"`
	ScreenFeatures []string `yaml:"screen_features"`
}

// Settings selects and configures one of the two interfaces. Exactly
// one of Raw and Visual must be set.
type Settings struct {
	Raw    *RawSettings    `yaml:"raw,omitempty"`
	Visual *VisualSettings `yaml:"visual,omitempty"`

	NumActionTypes  int32 `yaml:"num_action_types"`
	NumUnitTypes    int32 `yaml:"num_unit_types"`
	NumUpgradeTypes int32 `yaml:"num_upgrade_types"`
	MaxNumUpgrades  int32 `yaml:"max_num_upgrades"`

	Minimap         Size2D   `yaml:"minimap"`
	MinimapFeatures []string `yaml:"minimap_features"`

	CameraWidthWorldUnits float64 `yaml:"camera_width_world_units"`
	AddOpponentFeatures   bool    `yaml:"add_opponent_features"`
	Supervised            bool    `yaml:"supervised"`
	MMR                   int32   `yaml:"mmr"`
}

// LoadSettings reads Settings from a YAML file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %v: %w", path, err)
	}
	return &s, nil
}

// EnvironmentInfo carries the per-game protocol data the converter
// needs alongside its settings: the game info always, replay info when
// converting a replay.
type EnvironmentInfo struct {
	GameInfo   *api.ResponseGameInfo
	ReplayInfo *api.ResponseReplayInfo
}

// Observation is one step's input: the converting player's protocol
// observation, optionally the opponent's for opponent features, and
// the forced ground-truth action and delay in supervised mode.
type Observation struct {
	Player           *api.ResponseObservation
	Opponent         *api.ResponseObservation
	ForceAction      *api.RequestAction
	ForceActionDelay int32
}

// Action is one step's converted output: the protocol request to issue
// plus the number of game loops to skip before the next observation.
type Action struct {
	RequestAction *api.RequestAction
	Delay         int32
}

func (s *Settings) validate(info EnvironmentInfo) error {
	nonObservers := 0
	if info.GameInfo != nil {
		for _, p := range info.GameInfo.PlayerInfo {
			if p.Type != api.PlayerType_Observer {
				nonObservers++
			}
		}
	}
	if nonObservers != 2 {
		return fmt.Errorf("the converter requires the game to be configured with "+
			"2 non-observer players, got %d", nonObservers)
	}

	if (s.Raw == nil) == (s.Visual == nil) {
		return fmt.Errorf("specify either visual or raw settings")
	}
	if s.NumActionTypes < 539 {
		return fmt.Errorf("num_action_types must be at least 539, got %d",
			s.NumActionTypes)
	}
	if s.NumUnitTypes < 217 {
		return fmt.Errorf("num_unit_types must be at least 217, got %d",
			s.NumUnitTypes)
	}
	if s.NumUpgradeTypes < 86 {
		return fmt.Errorf("num_upgrade_types must be at least 86, got %d",
			s.NumUpgradeTypes)
	}
	if s.MaxNumUpgrades <= 0 {
		return fmt.Errorf("max_num_upgrades must be positive; it is the length " +
			"of the upgrades_fixed_length observation, typically 40")
	}

	if len(s.MinimapFeatures) > 0 || s.Visual != nil {
		if s.Minimap.X <= 0 || s.Minimap.Y <= 0 {
			return fmt.Errorf("specify the minimap size")
		}
		if s.Minimap.X != s.Minimap.Y {
			return fmt.Errorf("only a square minimap is supported, got %dx%d",
				s.Minimap.X, s.Minimap.Y)
		}
	}

	if s.Visual != nil {
		if s.Visual.Screen.X <= 0 || s.Visual.Screen.Y <= 0 {
			return fmt.Errorf("specify the screen size")
		}
		if s.Visual.Screen.X != s.Visual.Screen.Y {
			return fmt.Errorf("only a square screen is supported, got %dx%d",
				s.Visual.Screen.X, s.Visual.Screen.Y)
		}
		return nil
	}

	if s.Raw.NumUnitFeatures < 39 {
		return fmt.Errorf("num_unit_features must be at least 39, got %d",
			s.Raw.NumUnitFeatures)
	}
	if s.Raw.MaxUnitSelectionSize < 16 {
		return fmt.Errorf("max_unit_selection_size must be at least 16, got %d",
			s.Raw.MaxUnitSelectionSize)
	}
	if s.Raw.MaxUnitCount <= 0 {
		return fmt.Errorf("max_unit_count must be positive, got %d",
			s.Raw.MaxUnitCount)
	}
	if s.Raw.Resolution.X <= 0 {
		return fmt.Errorf("specify the resolution in the raw settings")
	}
	if s.Raw.Resolution.X != s.Raw.Resolution.Y {
		return fmt.Errorf("only a square raw resolution is supported, got %dx%d",
			s.Raw.Resolution.X, s.Raw.Resolution.Y)
	}
	if info.GameInfo.StartRaw == nil || info.GameInfo.StartRaw.MapSize == nil ||
		info.GameInfo.StartRaw.MapSize.X <= 0 || info.GameInfo.StartRaw.MapSize.Y <= 0 {
		return fmt.Errorf("the raw converter needs the game's map size; it is " +
			"part of the game info returned by the API")
	}
	return nil
}

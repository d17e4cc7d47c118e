package converter

import (
	"fmt"

	"github.com/aiseeq/s2l/protocol/api"

	"github.com/sc2rl/sc2conv/tensorutil"
	"github.com/sc2rl/sc2conv/transform"
)

// rawConverter drives the entity-addressed interface. It keeps the
// per-episode state raw conversion needs: the latest observation for
// index resolution, the last commanded selection and target, and the
// virtual camera once seeded.
type rawConverter struct {
	settings Settings
	info     EnvironmentInfo
	encoder  *rawEncoder

	currentObservation *api.ResponseObservation
	lastUnitTags       map[api.UnitTag]bool
	lastTargetUnitTag  int64
	camera             *transform.Camera
}

func newRawConverter(settings Settings, info EnvironmentInfo) *rawConverter {
	raw := settings.Raw
	return &rawConverter{
		settings: settings,
		info:     info,
		encoder: &rawEncoder{
			mapSize:          info.GameInfo.StartRaw.MapSize,
			resolution:       raw.Resolution.proto(),
			maxUnitCount:     raw.MaxUnitCount,
			maxSelectionSize: raw.MaxUnitSelectionSize,
			numActionTypes:   settings.NumActionTypes,
			shuffleUnitTags:  raw.ShuffleUnitTags,
			actionRepeat:     raw.EnableActionRepeat,
		},
		lastUnitTags:      make(map[api.UnitTag]bool),
		lastTargetUnitTag: -1,
	}
}

func (c *rawConverter) ObservationSpec() tensorutil.Specs {
	raw := c.settings.Raw
	spec := tensorutil.Specs{
		"raw_units": RawUnitsSpec(raw.MaxUnitCount, raw.NumUnitFeatures,
			c.settings.NumActionTypes),
	}
	if raw.UseCameraPosition {
		spec["camera_position"] = tensorutil.Int32Spec("camera_position",
			raw.Resolution.X, 2)
		spec["camera_size"] = tensorutil.Int32Spec("camera_size",
			raw.Resolution.X, 2)
	}
	if raw.Camera {
		spec["camera"] = tensorutil.Int32Spec("camera", 1,
			int(raw.Resolution.Y), int(raw.Resolution.X))
	}
	if c.settings.Supervised {
		for k, v := range c.ActionSpec() {
			label := "action/" + k
			v.Name = label
			spec[label] = v
		}
	}
	return spec
}

// seedCamera creates the virtual camera at the position the game
// reports on the first observation. Runs once per episode.
func (c *rawConverter) seedCamera(obs *api.Observation) error {
	raw := c.settings.Raw
	if c.camera != nil || !raw.UseVirtualCamera {
		return nil
	}
	pos := obs.RawData.Player.Camera
	if dims := raw.VirtualCameraDimensions; dims != nil {
		if dims.Left <= 0 || dims.Right <= 0 || dims.Top <= 0 || dims.Bottom <= 0 {
			return fmt.Errorf("virtual_camera_dimensions must be fully specified, "+
				"got %+v", *dims)
		}
		c.camera = transform.NewCamera(float64(pos.X), float64(pos.Y),
			dims.Left, dims.Right, dims.Top, dims.Bottom)
	} else {
		half := c.settings.CameraWidthWorldUnits / 2
		c.camera = transform.NewCamera(float64(pos.X), float64(pos.Y),
			half, half, half, half)
	}
	return nil
}

func (c *rawConverter) ConvertObservation(observation Observation) (tensorutil.Tensors, error) {
	c.currentObservation = observation.Player

	raw := c.settings.Raw
	mapSize := c.info.GameInfo.StartRaw.MapSize
	resolution := raw.Resolution.proto()
	obs := observation.Player.Observation

	if err := c.seedCamera(obs); err != nil {
		return nil, err
	}

	output := tensorutil.Tensors{}
	if raw.UseCameraPosition {
		output["camera_position"] = CameraPosition(obs, mapSize, resolution, c.camera)
		output["camera_size"] = CameraSize(resolution, mapSize,
			c.settings.CameraWidthWorldUnits)
	}
	if raw.Camera {
		if raw.UseVirtualCamera {
			output["camera"] = c.camera.Render(mapSize, resolution)
		} else {
			output["camera"] = SeparateCamera(output["camera_position"],
				output["camera_size"], resolution)
		}
	}

	output["raw_units"] = RawUnitsToUint8(RawUnits(obs.RawData, RawUnitsOptions{
		MaxUnitCount:         raw.MaxUnitCount,
		NumUnitFeatures:      raw.NumUnitFeatures,
		NumUnitTypes:         c.settings.NumUnitTypes,
		NumActionTypes:       c.settings.NumActionTypes,
		IsRaw:                true,
		MapSize:              mapSize,
		Resolution:           resolution,
		MaskOffscreenEnemies: raw.MaskOffscreenEnemies,
		AddEffectsToUnits:    raw.AddEffectsToUnits,
		AddCargoToUnits:      raw.AddCargoToUnits,
		Camera:               c.camera,
		LastUnitTags:         c.lastUnitTags,
		LastTargetUnitTag:    c.lastTargetUnitTag,
	}), raw.NumUnitFeatures)

	if c.settings.Supervised {
		if observation.ForceAction == nil {
			return nil, fmt.Errorf("need force_action to be present in the " +
				"observation when supervised is enabled")
		}
		action := c.encoder.Decode(observation.Player, observation.ForceAction)
		funcID := tensorutil.ScalarValue(action["function"])
		if funcID < 0 {
			return nil, fmt.Errorf("`function` must be >= 0, but is %d", funcID)
		}
		if funcID >= c.settings.NumActionTypes {
			return nil, fmt.Errorf("`function` must be < num_action_types (%d), "+
				"but is %d", c.settings.NumActionTypes, funcID)
		}
		for k, v := range action {
			output["action/"+k] = v
		}
	}

	return output, nil
}

func (c *rawConverter) ActionSpec() tensorutil.Specs {
	raw := c.settings.Raw
	spec := tensorutil.Specs{
		"function": tensorutil.Int32ScalarSpec("function", c.settings.NumActionTypes),
		"unit_tags": tensorutil.Int32Spec("unit_tags", raw.MaxUnitCount,
			int(raw.MaxUnitSelectionSize)),
		"target_unit_tag": tensorutil.Int32ScalarSpec("target_unit_tag",
			raw.MaxUnitCount),
		"world": tensorutil.Int32ScalarSpec("world",
			raw.Resolution.X*raw.Resolution.Y),
		"queued": tensorutil.Int32ScalarSpec("queued", 2),
	}
	if raw.EnableActionRepeat {
		spec["repeat"] = tensorutil.Int32ScalarSpec("repeat", maxActionRepeat+1)
	}
	return spec
}

func (c *rawConverter) ConvertAction(action tensorutil.Tensors) (*api.RequestAction, error) {
	output, err := c.encoder.Encode(c.currentObservation, action)
	if err != nil {
		return nil, err
	}

	// Track the commanded selection for the selected/targeted unit
	// flags. Camera moves and no-ops leave it untouched.
	if len(output.Actions) > 0 && output.Actions[0].ActionRaw != nil {
		if cmd, ok := output.Actions[0].ActionRaw.Action.(*api.ActionRaw_UnitCommand); ok {
			c.lastUnitTags = make(map[api.UnitTag]bool, len(cmd.UnitCommand.UnitTags))
			for _, tag := range cmd.UnitCommand.UnitTags {
				c.lastUnitTags[tag] = true
			}
			if target, ok := cmd.UnitCommand.Target.(*api.ActionRawUnitCommand_TargetUnitTag); ok {
				c.lastTargetUnitTag = int64(target.TargetUnitTag)
			} else {
				c.lastTargetUnitTag = -1
			}
		}
	}

	if c.camera != nil && len(output.Actions) > 0 && output.Actions[0].ActionRaw != nil {
		if move, ok := output.Actions[0].ActionRaw.Action.(*api.ActionRaw_CameraMove); ok {
			// The virtual camera tracks what an agent would see, even
			// when replaying recorded games.
			pos := move.CameraMove.CenterWorldSpace
			c.camera.Move(float64(pos.X), float64(pos.Y))
		}
	}

	return output, nil
}

func (c *rawConverter) DecodeAction(action *api.RequestAction) tensorutil.Tensors {
	return c.encoder.Decode(c.currentObservation, action)
}

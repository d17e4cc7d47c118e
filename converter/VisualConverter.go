package converter

import (
	"fmt"

	log "bitbucket.org/aisee/minilog"
	"github.com/aiseeq/s2l/protocol/api"
	"gorgonia.org/tensor"

	"github.com/sc2rl/sc2conv/actions"
	"github.com/sc2rl/sc2conv/tensorutil"
)

const (
	numControlGroups   = 10
	numBuildQueueSlots = 10

	// Panel slot counts the game never documents a bound for.
	panelSlotBound = 500

	// The protocol's UI enums are 1-based; their largest values bound
	// the 0-based option arguments.
	controlGroupActMax = 5 // ActionControlGroup.ControlGroupAction
	selectPointActMax  = 4 // ActionSpatialUnitSelectionPoint.Type
	selectUnitActMax   = 4 // ActionMultiPanel.Type
	selectWorkerMax    = 4 // ActionSelectIdleWorker.Type
)

// visualConverter drives the pixel and user-interface addressed
// interface. Its only state is the cached settings.
type visualConverter struct {
	settings Settings
}

func newVisualConverter(settings Settings) *visualConverter {
	return &visualConverter{settings: settings}
}

func (c *visualConverter) context() actions.Context {
	return actions.Context{
		ScreenWidth:  c.settings.Visual.Screen.X,
		MinimapWidth: c.settings.Minimap.X,
		NumFunctions: c.settings.NumActionTypes,
	}
}

// availableActions marks every function the agent could issue this
// step: the user-interface selections whose preconditions hold plus
// every catalog entry reachable from the game's reported abilities.
func availableActions(obs *api.Observation, numActionTypes int32) *tensor.Dense {
	out := tensorutil.ZeroVector(int(numActionTypes))
	v := tensorutil.Int32s(out)

	v[actions.NoOp] = 1
	v[actions.MoveCamera] = 1
	v[actions.SelectPoint] = 1
	v[actions.SelectRect] = 1
	v[actions.SelectControlGroup] = 1
	if hasMultiPanel(obs.UiData) {
		v[actions.SelectUnit] = 1
	}
	if obs.PlayerCommon.IdleWorkerCount > 0 {
		v[actions.SelectIdleWorker] = 1
	}
	if obs.PlayerCommon.ArmyCount > 0 {
		v[actions.SelectArmy] = 1
	}
	if obs.PlayerCommon.WarpGateCount > 0 {
		v[actions.SelectWarpGates] = 1
	}
	if obs.PlayerCommon.LarvaCount > 0 {
		v[actions.SelectLarva] = 1
	}
	if hasCargoPanel(obs.UiData) {
		v[actions.Unload] = 1
	}
	if hasProductionPanel(obs.UiData) {
		v[actions.BuildQueue] = 1
	}

	available := make(map[int32]bool)
	for _, ability := range obs.Abilities {
		abilityID := int32(ability.AbilityId)
		var entries []actions.Function
		if actions.HasVisualAbility(abilityID) {
			entries = actions.VisualForAbility(abilityID)
		}
		foundApplicable := false
		for _, action := range entries {
			if !action.IsApplicable(ability.RequiresPoint) {
				continue
			}
			if action.GeneralID == 0 {
				available[action.ID] = true
				foundApplicable = true
				continue
			}
			for _, general := range actions.VisualForAbility(action.GeneralID) {
				if general.Type == action.Type {
					available[general.ID] = true
					foundApplicable = true
					break
				}
			}
		}
		if !foundApplicable {
			panic(fmt.Sprintf("converter: no applicable function for available "+
				"ability %d (requires point: %v)", abilityID, ability.RequiresPoint))
		}
	}
	for id := range available {
		if id < numActionTypes {
			v[id] = 1
		}
	}

	return out
}

func hasMultiPanel(ui *api.ObservationUI) bool {
	if ui == nil {
		return false
	}
	_, ok := ui.Panel.(*api.ObservationUI_Multi)
	return ok
}

func hasCargoPanel(ui *api.ObservationUI) bool {
	if ui == nil {
		return false
	}
	_, ok := ui.Panel.(*api.ObservationUI_Cargo)
	return ok
}

func hasProductionPanel(ui *api.ObservationUI) bool {
	if ui == nil {
		return false
	}
	_, ok := ui.Panel.(*api.ObservationUI_Production)
	return ok
}

func (c *visualConverter) ObservationSpec() tensorutil.Specs {
	spec := tensorutil.Specs{
		"available_actions": tensorutil.Int32Spec("available_actions", 1,
			int(c.settings.NumActionTypes)),
	}

	visual := c.settings.Visual
	for _, feature := range visual.ScreenFeatures {
		scale, err := ScreenFeatureScale(feature)
		if err != nil {
			panic(err)
		}
		name := "screen_" + feature
		spec[name] = tensorutil.Uint8Spec(name, scale-1,
			int(visual.Screen.X), int(visual.Screen.Y))
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

func (c *visualConverter) ConvertObservation(observation Observation) (tensorutil.Tensors, error) {
	obs := observation.Player.Observation
	output := tensorutil.Tensors{
		"available_actions": availableActions(obs, c.settings.NumActionTypes),
	}

	visual := c.settings.Visual
	if len(visual.ScreenFeatures) > 0 {
		layers := obs.FeatureLayerData.Renders
		for _, feature := range visual.ScreenFeatures {
			output["screen_"+feature] = ScreenPlane(layers, feature)
		}
	}

	if c.settings.Supervised {
		if observation.ForceAction == nil {
			return nil, fmt.Errorf("need force_action to be present in the " +
				"observation when supervised is enabled")
		}
		action := c.DecodeAction(observation.ForceAction)

		funcID := tensorutil.ScalarValue(action["function"])
		if funcID < 0 {
			return nil, fmt.Errorf("`function` must be >= 0, instead was %d", funcID)
		}
		if funcID >= c.settings.NumActionTypes {
			return nil, fmt.Errorf("`function` must be < num_action_types, "+
				"instead was %d", funcID)
		}
		for k, v := range action {
			output["action/"+k] = v
		}

		available := tensorutil.Int32s(output["available_actions"])
		if available[funcID] != 1 {
			// Ground truth must never be structurally excluded from the
			// action space it supervises.
			log.Infof("action %d was not found among the available ones, "+
				"marking as available", funcID)
			available[funcID] = 1
		}
	}
	return output, nil
}

func (c *visualConverter) ActionSpec() tensorutil.Specs {
	visual := c.settings.Visual
	screen := visual.Screen.X * visual.Screen.Y
	minimap := c.settings.Minimap.X * c.settings.Minimap.Y
	return tensorutil.Specs{
		"function":          tensorutil.Int32ScalarSpec("function", c.settings.NumActionTypes),
		"screen":            tensorutil.Int32ScalarSpec("screen", screen),
		"minimap":           tensorutil.Int32ScalarSpec("minimap", minimap),
		"screen2":           tensorutil.Int32ScalarSpec("screen2", screen),
		"queued":            tensorutil.Int32ScalarSpec("queued", 2),
		"control_group_act": tensorutil.Int32ScalarSpec("control_group_act", controlGroupActMax),
		"control_group_id":  tensorutil.Int32ScalarSpec("control_group_id", numControlGroups),
		"select_point_act":  tensorutil.Int32ScalarSpec("select_point_act", selectPointActMax),
		"select_add":        tensorutil.Int32ScalarSpec("select_add", 2),
		"select_unit_act":   tensorutil.Int32ScalarSpec("select_unit_act", selectUnitActMax),
		"select_unit_id":    tensorutil.Int32ScalarSpec("select_unit_id", panelSlotBound),
		"select_worker":     tensorutil.Int32ScalarSpec("select_worker", selectWorkerMax),
		"build_queue_id":    tensorutil.Int32ScalarSpec("build_queue_id", numBuildQueueSlots),
		"unload_id":         tensorutil.Int32ScalarSpec("unload_id", panelSlotBound),
	}
}

func (c *visualConverter) ConvertAction(action tensorutil.Tensors) (*api.RequestAction, error) {
	function, ok := action["function"]
	if !ok {
		return nil, fmt.Errorf("`function` must be specified for visual actions")
	}
	request := &api.RequestAction{}
	funcID := tensorutil.ScalarValue(function)
	f := actions.Visual(funcID)
	if f.Type == actions.NoOp {
		return request, nil
	}
	if len(action) > 1 {
		request.Actions = append(request.Actions, f.Encode(action, c.context()))
	}
	return request, nil
}

func (c *visualConverter) DecodeAction(action *api.RequestAction) tensorutil.Tensors {
	return actions.DecodeVisual(action, c.context())
}

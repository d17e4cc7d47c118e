package converter

import (
	"testing"

	"github.com/aiseeq/s2l/protocol/api"

	"github.com/sc2rl/sc2conv/actions"
	"github.com/sc2rl/sc2conv/tensorutil"
)

func testVisualSettings() Settings {
	return Settings{
		NumActionTypes:        actions.NumVisual(),
		NumUnitTypes:          243,
		NumUpgradeTypes:       86,
		MaxNumUpgrades:        40,
		CameraWidthWorldUnits: 24,
		Minimap:               Size2D{X: 64, Y: 64},
		Visual: &VisualSettings{
			Screen: Size2D{X: 64, Y: 64},
		},
	}
}

func TestAvailableActionsBaseline(t *testing.T) {
	obs := &api.Observation{PlayerCommon: &api.PlayerCommon{}}
	v := tensorutil.Int32s(availableActions(obs, actions.NumVisual()))

	alwaysOn := []actions.FunctionType{
		actions.NoOp, actions.MoveCamera, actions.SelectPoint,
		actions.SelectRect, actions.SelectControlGroup,
	}
	for _, id := range alwaysOn {
		if v[id] != 1 {
			t.Errorf("function %d unavailable, want always available", id)
		}
	}
	conditional := []actions.FunctionType{
		actions.SelectUnit, actions.SelectIdleWorker, actions.SelectArmy,
		actions.SelectWarpGates, actions.SelectLarva, actions.Unload,
		actions.BuildQueue,
	}
	for _, id := range conditional {
		if v[id] != 0 {
			t.Errorf("function %d available with no precondition met", id)
		}
	}
}

func TestAvailableActionsPreconditions(t *testing.T) {
	obs := &api.Observation{
		PlayerCommon: &api.PlayerCommon{
			IdleWorkerCount: 2,
			ArmyCount:       5,
			WarpGateCount:   1,
			LarvaCount:      3,
		},
		UiData: &api.ObservationUI{Panel: &api.ObservationUI_Multi{
			Multi: &api.MultiPanel{},
		}},
	}
	v := tensorutil.Int32s(availableActions(obs, actions.NumVisual()))
	for _, id := range []actions.FunctionType{
		actions.SelectUnit, actions.SelectIdleWorker, actions.SelectArmy,
		actions.SelectWarpGates, actions.SelectLarva,
	} {
		if v[id] != 1 {
			t.Errorf("function %d unavailable with its precondition met", id)
		}
	}
	if v[actions.Unload] != 0 || v[actions.BuildQueue] != 0 {
		t.Error("cargo or production functions available without their panel")
	}
}

func TestAvailableActionsFromAbilities(t *testing.T) {
	obs := &api.Observation{
		PlayerCommon: &api.PlayerCommon{},
		Abilities: []*api.AvailableAbility{
			{AbilityId: 3674, RequiresPoint: true}, // Attack
		},
	}
	v := tensorutil.Int32s(availableActions(obs, actions.NumVisual()))
	// Attack_screen sits at 12 in the catalog.
	if v[12] != 1 {
		t.Error("attack unavailable despite the game reporting its ability")
	}
}

func TestVisualActionSpecFields(t *testing.T) {
	c := newVisualConverter(testVisualSettings())
	spec := c.ActionSpec()
	if len(spec) != 14 {
		t.Errorf("action spec has %d fields, want 14", len(spec))
	}
	for _, name := range []string{
		"function", "screen", "minimap", "screen2", "queued",
		"control_group_act", "control_group_id", "select_point_act",
		"select_add", "select_unit_act", "select_unit_id", "select_worker",
		"build_queue_id", "unload_id",
	} {
		if _, ok := spec[name]; !ok {
			t.Errorf("action spec missing %q", name)
		}
	}
}

func TestVisualConvertAction(t *testing.T) {
	c := newVisualConverter(testVisualSettings())

	if _, err := c.ConvertAction(tensorutil.Tensors{}); err == nil {
		t.Error("no error for a missing function")
	}

	request, err := c.ConvertAction(tensorutil.Tensors{
		"function": tensorutil.Scalar(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(request.Actions) != 0 {
		t.Errorf("no-op produced %d actions", len(request.Actions))
	}

	request, err = c.ConvertAction(tensorutil.Tensors{
		"function":         tensorutil.Scalar(int32(actions.SelectPoint)),
		"screen":           tensorutil.Scalar(5*64 + 7),
		"select_point_act": tensorutil.Scalar(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(request.Actions) != 1 {
		t.Fatalf("select point produced %d actions, want 1", len(request.Actions))
	}
}

func TestVisualSupervisedMarksForcedAvailable(t *testing.T) {
	settings := testVisualSettings()
	settings.Supervised = true
	c := newVisualConverter(settings)

	// Selecting the army with no army: the forced action must still be
	// marked available.
	force := &api.RequestAction{Actions: []*api.Action{{
		ActionUi: &api.ActionUI{Action: &api.ActionUI_SelectArmy{
			SelectArmy: &api.ActionSelectArmy{},
		}},
	}}}
	obs, err := c.ConvertObservation(Observation{
		Player: &api.ResponseObservation{Observation: &api.Observation{
			PlayerCommon: &api.PlayerCommon{},
		}},
		ForceAction: force,
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := tensorutil.ScalarValue(obs["action/function"]); got != int32(actions.SelectArmy) {
		t.Errorf("action/function = %d, want %d", got, actions.SelectArmy)
	}
	available := tensorutil.Int32s(obs["available_actions"])
	if available[actions.SelectArmy] != 1 {
		t.Error("forced action not marked available")
	}
}

func TestVisualSupervisedRequiresForceAction(t *testing.T) {
	settings := testVisualSettings()
	settings.Supervised = true
	c := newVisualConverter(settings)
	_, err := c.ConvertObservation(Observation{
		Player: &api.ResponseObservation{Observation: &api.Observation{
			PlayerCommon: &api.PlayerCommon{},
		}},
	})
	if err == nil {
		t.Error("no error for a missing forced action")
	}
}

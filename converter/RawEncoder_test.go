package converter

import (
	"testing"

	"github.com/aiseeq/s2l/protocol/api"

	"github.com/sc2rl/sc2conv/actions"
	"github.com/sc2rl/sc2conv/tensorutil"
)

func testEncoder() *rawEncoder {
	return &rawEncoder{
		mapSize:          &api.Size2DI{X: 128, Y: 128},
		resolution:       &api.Size2DI{X: 128, Y: 128},
		maxUnitCount:     16,
		maxSelectionSize: 4,
		numActionTypes:   actions.NumRaw(),
	}
}

// Eight units with tags 1000 through 1007.
func encoderObs() *api.ResponseObservation {
	units := make([]*api.Unit, 8)
	for i := range units {
		units[i] = testUnit(api.UnitTag(1000+i), 48, api.Alliance_Self)
	}
	return &api.ResponseObservation{Observation: &api.Observation{
		RawData: &api.ObservationRaw{Units: units},
	}}
}

func smartPtCall(unitIndex, world int32) tensorutil.Tensors {
	return tensorutil.Tensors{
		"function":  tensorutil.Scalar(1), // Smart_pt
		"unit_tags": tensorutil.Vector([]int32{unitIndex, 16, 16, 16}),
		"world":     tensorutil.Scalar(world),
		"queued":    tensorutil.Scalar(0),
	}
}

func TestEncodeSmartPt(t *testing.T) {
	e := testEncoder()
	request, err := e.Encode(encoderObs(), smartPtCall(4, 5))
	if err != nil {
		t.Fatal(err)
	}
	if len(request.Actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(request.Actions))
	}

	cmd := request.Actions[0].ActionRaw.Action.(*api.ActionRaw_UnitCommand).UnitCommand
	if cmd.AbilityId != 1 {
		t.Errorf("ability = %d, want 1", cmd.AbilityId)
	}
	if len(cmd.UnitTags) != 1 || cmd.UnitTags[0] != 1004 {
		t.Errorf("unit tags = %v, want [1004]", cmd.UnitTags)
	}
	if cmd.QueueCommand {
		t.Error("command queued, want immediate")
	}
	pos := cmd.Target.(*api.ActionRawUnitCommand_TargetWorldSpacePos).TargetWorldSpacePos
	if pos.X != 5.5 || pos.Y != 127.5 {
		t.Errorf("target (%v, %v), want (5.5, 127.5)", pos.X, pos.Y)
	}
}

func TestEncodeNoOp(t *testing.T) {
	e := testEncoder()
	request, err := e.Encode(encoderObs(), tensorutil.Tensors{
		"function": tensorutil.Scalar(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(request.Actions) != 0 {
		t.Errorf("no-op produced %d actions", len(request.Actions))
	}
}

func TestEncodeRequiresFunction(t *testing.T) {
	e := testEncoder()
	if _, err := e.Encode(encoderObs(), tensorutil.Tensors{}); err == nil {
		t.Error("no error for a missing function")
	}
}

func TestEncodeOutOfRangeFunctionIsDropped(t *testing.T) {
	e := testEncoder()
	request, err := e.Encode(encoderObs(), tensorutil.Tensors{
		"function": tensorutil.Scalar(100000),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(request.Actions) != 0 {
		t.Errorf("out-of-range function produced %d actions", len(request.Actions))
	}
}

func TestEncodeTargetUnit(t *testing.T) {
	e := testEncoder()
	request, err := e.Encode(encoderObs(), tensorutil.Tensors{
		"function":        tensorutil.Scalar(3), // Attack_unit
		"unit_tags":       tensorutil.Vector([]int32{0, 1, 16, 16}),
		"target_unit_tag": tensorutil.Scalar(2),
		"queued":          tensorutil.Scalar(1),
	})
	if err != nil {
		t.Fatal(err)
	}
	cmd := request.Actions[0].ActionRaw.Action.(*api.ActionRaw_UnitCommand).UnitCommand
	target := cmd.Target.(*api.ActionRawUnitCommand_TargetUnitTag)
	if target.TargetUnitTag != 1002 {
		t.Errorf("target tag = %d, want 1002", target.TargetUnitTag)
	}
	if !cmd.QueueCommand {
		t.Error("command not queued")
	}
	if len(cmd.UnitTags) != 2 {
		t.Errorf("unit tags = %v, want two entries", cmd.UnitTags)
	}
}

func TestEncodeNegativeTargetIsDropped(t *testing.T) {
	e := testEncoder()
	request, err := e.Encode(encoderObs(), tensorutil.Tensors{
		"function":        tensorutil.Scalar(3),
		"unit_tags":       tensorutil.Vector([]int32{0, 16, 16, 16}),
		"target_unit_tag": tensorutil.Scalar(-1),
		"queued":          tensorutil.Scalar(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(request.Actions) != 0 {
		t.Errorf("negative target produced %d actions", len(request.Actions))
	}
}

func TestEncodeCameraMove(t *testing.T) {
	e := testEncoder()
	request, err := e.Encode(encoderObs(), tensorutil.Tensors{
		"function": tensorutil.Scalar(168), // raw_move_camera
		"world":    tensorutil.Scalar(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	move := request.Actions[0].ActionRaw.Action.(*api.ActionRaw_CameraMove).CameraMove
	if move.CenterWorldSpace.X != 0.5 || move.CenterWorldSpace.Y != 127.5 {
		t.Errorf("camera center (%v, %v), want (0.5, 127.5)",
			move.CenterWorldSpace.X, move.CenterWorldSpace.Y)
	}
}

func TestEncodeRepeatEmitsCopies(t *testing.T) {
	e := testEncoder()
	e.actionRepeat = true
	request, err := e.Encode(encoderObs(), tensorutil.Tensors{
		"function":  tensorutil.Scalar(17), // HoldPosition_quick
		"unit_tags": tensorutil.Vector([]int32{0, 16, 16, 16}),
		"queued":    tensorutil.Scalar(0),
		"repeat":    tensorutil.Scalar(2),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(request.Actions) != 3 {
		t.Fatalf("repeat 2 produced %d actions, want 3", len(request.Actions))
	}

	// Targeted commands never repeat.
	call := smartPtCall(0, 5)
	call["repeat"] = tensorutil.Scalar(2)
	request, err = e.Encode(encoderObs(), call)
	if err != nil {
		t.Fatal(err)
	}
	if len(request.Actions) != 1 {
		t.Errorf("targeted command repeated into %d actions", len(request.Actions))
	}
}

func TestDecodeSmartPtRoundTrip(t *testing.T) {
	e := testEncoder()
	obs := encoderObs()
	request, err := e.Encode(obs, smartPtCall(4, 5))
	if err != nil {
		t.Fatal(err)
	}

	call := e.Decode(obs, request)
	if got := tensorutil.ScalarValue(call["function"]); got != 1 {
		t.Errorf("function = %d, want 1", got)
	}
	if got := tensorutil.ScalarValue(call["world"]); got != 5 {
		t.Errorf("world = %d, want 5", got)
	}
	tags := tensorutil.Int32s(call["unit_tags"])
	want := []int32{4, 16, 16, 16}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("unit tags = %v, want %v", tags, want)
		}
	}
}

func TestDecodeEmptyRequestIsNoOpCall(t *testing.T) {
	e := testEncoder()
	call := e.Decode(encoderObs(), &api.RequestAction{})
	if got := tensorutil.ScalarValue(call["function"]); got != 0 {
		t.Errorf("function = %d, want 0", got)
	}
	// The no-op pads its selection with zeros, not the sentinel.
	for _, tag := range tensorutil.Int32s(call["unit_tags"]) {
		if tag != 0 {
			t.Errorf("no-op unit tags = %v, want zeros", tensorutil.Int32s(call["unit_tags"]))
			break
		}
	}
}

func TestDecodeSkipsMissingTarget(t *testing.T) {
	e := testEncoder()
	request := &api.RequestAction{Actions: []*api.Action{{
		ActionRaw: &api.ActionRaw{Action: &api.ActionRaw_UnitCommand{
			UnitCommand: &api.ActionRawUnitCommand{
				AbilityId: 3674,
				UnitTags:  []api.UnitTag{1000},
				Target: &api.ActionRawUnitCommand_TargetUnitTag{
					TargetUnitTag: 99999,
				},
			}}},
	}}}
	call := e.Decode(encoderObs(), request)
	if got := tensorutil.ScalarValue(call["function"]); got != 0 {
		t.Errorf("function = %d, want the no-op", got)
	}
}

func TestDecodeRepeatedCommands(t *testing.T) {
	e := testEncoder()
	e.actionRepeat = true
	cmd := &api.Action{ActionRaw: &api.ActionRaw{Action: &api.ActionRaw_UnitCommand{
		UnitCommand: &api.ActionRawUnitCommand{
			AbilityId: 3793, // HoldPosition
			UnitTags:  []api.UnitTag{1002},
		}}}}
	request := &api.RequestAction{Actions: []*api.Action{cmd, cmd, cmd}}

	call := e.Decode(encoderObs(), request)
	if got := tensorutil.ScalarValue(call["function"]); got != 17 {
		t.Errorf("function = %d, want 17", got)
	}
	if got := tensorutil.ScalarValue(call["repeat"]); got != 2 {
		t.Errorf("repeat = %d, want 2", got)
	}
}

func TestResolveTagDuality(t *testing.T) {
	raw := encoderObs().Observation.RawData
	if got := resolveTag(4, raw); got != 1004 {
		t.Errorf("resolveTag(4) = %d, want the indexed unit's tag 1004", got)
	}
	// Values past the unit list are tags already.
	if got := resolveTag(1002, raw); got != 1002 {
		t.Errorf("resolveTag(1002) = %d, want 1002", got)
	}
}

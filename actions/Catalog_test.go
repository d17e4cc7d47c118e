package actions

import (
	"testing"

	"github.com/aiseeq/s2l/protocol/api"

	"github.com/sc2rl/sc2conv/tensorutil"
)

func TestCatalogSizes(t *testing.T) {
	if NumVisual() != 573 {
		t.Errorf("NumVisual() = %d, want 573", NumVisual())
	}
	if NumRaw() != 564 {
		t.Errorf("NumRaw() = %d, want 564", NumRaw())
	}
}

func TestCatalogHeads(t *testing.T) {
	if f := Visual(0); f.Label != "no_op" || f.Type != NoOp {
		t.Errorf("visual 0 = %+v", f)
	}
	if f := Visual(1); f.Label != "move_camera" || f.Type != MoveCamera {
		t.Errorf("visual 1 = %+v", f)
	}
	if f := Visual(12); f.Label != "Attack_screen" || f.AbilityID != 3674 {
		t.Errorf("visual 12 = %+v", f)
	}
	if f := Raw(0); f.Label != "no_op" || f.Type != RawNoOp {
		t.Errorf("raw 0 = %+v", f)
	}
	if f := Raw(168); f.Label != "raw_move_camera" || f.Type != RawMoveCamera {
		t.Errorf("raw 168 = %+v", f)
	}
}

func TestFindRawFoldsToGeneral(t *testing.T) {
	// Attack_Attack_pt (ability 23) folds onto Attack_pt (ability 3674).
	if id := FindRaw(23, RawCmdPt); id != 2 {
		t.Errorf("FindRaw(23, RawCmdPt) = %d, want 2", id)
	}
	if id := FindRaw(3674, RawCmdUnit); id != 3 {
		t.Errorf("FindRaw(3674, RawCmdUnit) = %d, want 3", id)
	}
	if id := FindRaw(999999, RawCmdPt); id != 0 {
		t.Errorf("FindRaw(unknown) = %d, want 0", id)
	}
}

func TestRawAbilityToFunction(t *testing.T) {
	if id := RawAbilityToFunction(3674); id != 2 {
		t.Errorf("RawAbilityToFunction(3674) = %d, want 2", id)
	}
	if id := RawAbilityToFunction(999999); id != 0 {
		t.Errorf("RawAbilityToFunction(unknown) = %d, want 0", id)
	}
}

func TestGeneralRawFunction(t *testing.T) {
	// A specific attack order folds to the general attack function.
	specific := FindRaw(3674, RawCmdPt)
	var withGeneral int32 = -1
	for i := int32(0); i < NumRaw(); i++ {
		if Raw(i).AbilityID == 23 && Raw(i).Type == RawCmdPt {
			withGeneral = i
			break
		}
	}
	if withGeneral < 0 {
		t.Fatal("no specific attack function in catalog")
	}
	if got := GeneralRawFunction(withGeneral, NumRaw()); got != specific {
		t.Errorf("GeneralRawFunction(%d) = %d, want %d", withGeneral, got, specific)
	}
	// Generals at or past the catalog bound fold to no-op.
	if got := GeneralRawFunction(withGeneral, specific); got != 0 {
		t.Errorf("GeneralRawFunction with tight bound = %d, want 0", got)
	}
}

func TestIsApplicable(t *testing.T) {
	quick := Function{Type: CmdQuick}
	screen := Function{Type: CmdScreen}
	auto := Function{Type: Autocast}
	if quick.IsApplicable(true) || !quick.IsApplicable(false) {
		t.Error("cmd_quick applicability wrong")
	}
	if !screen.IsApplicable(true) || screen.IsApplicable(false) {
		t.Error("cmd_screen applicability wrong")
	}
	if !auto.IsApplicable(true) || !auto.IsApplicable(false) {
		t.Error("autocast applicability wrong")
	}
}

func TestAbilityCallFoldsToGeneral(t *testing.T) {
	call := AbilityCall(23, CmdScreen, false, 5)
	if got := tensorutil.ScalarValue(call["function"]); got != 12 {
		t.Errorf("function = %d, want 12", got)
	}
	if got := tensorutil.ScalarValue(call["screen"]); got != 5 {
		t.Errorf("screen = %d, want 5", got)
	}
	if got := tensorutil.ScalarValue(call["queued"]); got != 0 {
		t.Errorf("queued = %d, want 0", got)
	}
}

func TestAbilityCallUnknownIsNoOp(t *testing.T) {
	call := AbilityCall(999999, CmdQuick, false, 0)
	if got := tensorutil.ScalarValue(call["function"]); got != 0 {
		t.Errorf("function = %d, want 0", got)
	}
}

func TestSelectPointRoundTrip(t *testing.T) {
	ctx := Context{ScreenWidth: 64, MinimapWidth: 64, NumFunctions: NumVisual()}
	args := tensorutil.Tensors{
		"screen":           tensorutil.Scalar(5*64 + 7),
		"select_point_act": tensorutil.Scalar(0),
	}
	action := Visual(int32(SelectPoint)).Encode(args, ctx)

	sp := action.ActionFeatureLayer.Action.(*api.ActionSpatial_UnitSelectionPoint).UnitSelectionPoint
	if sp.SelectionScreenCoord.X != 7 || sp.SelectionScreenCoord.Y != 5 {
		t.Fatalf("screen coord (%d, %d), want (7, 5)",
			sp.SelectionScreenCoord.X, sp.SelectionScreenCoord.Y)
	}

	call := DecodeVisual(&api.RequestAction{Actions: []*api.Action{action}}, ctx)
	if got := tensorutil.ScalarValue(call["function"]); got != int32(SelectPoint) {
		t.Errorf("decoded function = %d, want %d", got, SelectPoint)
	}
	if got := tensorutil.ScalarValue(call["screen"]); got != 5*64+7 {
		t.Errorf("decoded screen = %d, want %d", got, 5*64+7)
	}
	if got := tensorutil.ScalarValue(call["select_point_act"]); got != 0 {
		t.Errorf("decoded select_point_act = %d, want 0", got)
	}
}

func TestSelectRectEncodeNormalizesCorners(t *testing.T) {
	ctx := Context{ScreenWidth: 64, MinimapWidth: 64, NumFunctions: NumVisual()}
	args := tensorutil.Tensors{
		"screen":     tensorutil.Scalar(10*64 + 30),
		"screen2":    tensorutil.Scalar(2*64 + 50),
		"select_add": tensorutil.Scalar(1),
	}
	action := Visual(int32(SelectRect)).Encode(args, ctx)
	rect := action.ActionFeatureLayer.Action.(*api.ActionSpatial_UnitSelectionRect).
		UnitSelectionRect.SelectionScreenCoord[0]
	if rect.P0.X != 30 || rect.P0.Y != 2 || rect.P1.X != 50 || rect.P1.Y != 10 {
		t.Errorf("rect (%d,%d)-(%d,%d), want (30,2)-(50,10)",
			rect.P0.X, rect.P0.Y, rect.P1.X, rect.P1.Y)
	}
}

func TestDecodeUnitCommandQuick(t *testing.T) {
	ctx := Context{ScreenWidth: 64, MinimapWidth: 64, NumFunctions: NumVisual()}
	action := &api.Action{ActionFeatureLayer: &api.ActionSpatial{
		Action: &api.ActionSpatial_UnitCommand{
			UnitCommand: &api.ActionSpatialUnitCommand{
				AbilityId:    3674,
				QueueCommand: true,
			}}}}
	call := DecodeVisual(&api.RequestAction{Actions: []*api.Action{action}}, ctx)
	// Attack has no quick form, so this resolves through the catalog.
	if _, ok := call["function"]; !ok {
		t.Fatal("no function in decoded call")
	}
}

func TestDecodeEmptyRequestIsNoOp(t *testing.T) {
	ctx := Context{ScreenWidth: 64, MinimapWidth: 64, NumFunctions: NumVisual()}
	call := DecodeVisual(&api.RequestAction{}, ctx)
	if got := tensorutil.ScalarValue(call["function"]); got != 0 {
		t.Errorf("function = %d, want 0", got)
	}
}

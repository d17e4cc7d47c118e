package actions

import (
	"fmt"

	log "bitbucket.org/aisee/minilog"
	"github.com/aiseeq/s2l/protocol/api"

	"github.com/sc2rl/sc2conv/tensorutil"
)

// Context carries the resolution and catalog bounds needed to encode
// and decode visual function calls.
type Context struct {
	ScreenWidth  int32
	MinimapWidth int32
	NumFunctions int32
}

// MakeCall assembles a function call from a function id and its scalar
// arguments.
func MakeCall(id int32, args map[string]int32) tensorutil.Tensors {
	call := tensorutil.Tensors{"function": tensorutil.Scalar(id)}
	for k, v := range args {
		call[k] = tensorutil.Scalar(v)
	}
	return call
}

// NoOpCall returns the function call that does nothing.
func NoOpCall() tensorutil.Tensors {
	return MakeCall(int32(NoOp), nil)
}

// AbilityCall resolves a game ability to a visual function call of the
// given argument form, folding onto the ability's general version.
// Unknown abilities, such as dances, cheers and map specific abilities,
// decode to a no-op with a warning.
func AbilityCall(abilityID int32, t FunctionType, queued bool, coord int32) tensorutil.Tensors {
	if !HasVisualAbility(abilityID) {
		log.Warningf("unknown ability id %d, treating as a no-op", abilityID)
		return NoOpCall()
	}

	fns := VisualForAbility(abilityID)
	generalID := fns[0].GeneralID
	if generalID == 0 {
		generalID = abilityID
	}

	q := int32(0)
	if queued {
		q = 1
	}
	for _, general := range VisualForAbility(generalID) {
		if general.Type != t {
			continue
		}
		switch t {
		case CmdScreen:
			return MakeCall(general.ID, map[string]int32{"queued": q, "screen": coord})
		case CmdMinimap:
			return MakeCall(general.ID, map[string]int32{"queued": q, "minimap": coord})
		case CmdQuick:
			return MakeCall(general.ID, map[string]int32{"queued": q})
		case Autocast:
			return MakeCall(general.ID, nil)
		default:
			panic(fmt.Sprintf("actions: unhandled ability function type %d", t))
		}
	}

	log.Errorf("no function for ability id %d with type %d", abilityID, t)
	return NoOpCall()
}

func arg(args tensorutil.Tensors, name, context string) int32 {
	t, ok := args[name]
	if !ok {
		panic(fmt.Sprintf("actions: %s is required for the %s action", name, context))
	}
	return tensorutil.ScalarValue(t)
}

// option converts a 0-based tensor argument to the 1-based value used
// by the game's enums.
func option(args tensorutil.Tensors, name, context string) int32 {
	return arg(args, name, context) + 1
}

func point(index, width int32) *api.PointI {
	return &api.PointI{X: index % width, Y: index / width}
}

func pointIndex(p *api.PointI, width int32) int32 {
	return p.Y*width + p.X
}

func spatial(a *api.ActionSpatial) *api.Action {
	return &api.Action{ActionFeatureLayer: a}
}

func ui(a *api.ActionUI) *api.Action {
	return &api.Action{ActionUi: a}
}

// Encode translates a visual function call's arguments into the game
// action this function issues. Calling Encode on the no-op panics.
func (f Function) Encode(args tensorutil.Tensors, ctx Context) *api.Action {
	switch f.Type {
	case MoveCamera:
		return spatial(&api.ActionSpatial{Action: &api.ActionSpatial_CameraMove{
			CameraMove: &api.ActionSpatialCameraMove{
				CenterMinimap: point(arg(args, "minimap", "move camera"), ctx.MinimapWidth),
			}}})

	case SelectPoint:
		return spatial(&api.ActionSpatial{Action: &api.ActionSpatial_UnitSelectionPoint{
			UnitSelectionPoint: &api.ActionSpatialUnitSelectionPoint{
				Type: api.ActionSpatialUnitSelectionPoint_Type(
					option(args, "select_point_act", "select point")),
				SelectionScreenCoord: point(arg(args, "screen", "select point"), ctx.ScreenWidth),
			}}})

	case SelectRect:
		p0 := point(arg(args, "screen", "select rect"), ctx.ScreenWidth)
		p1 := point(arg(args, "screen2", "select rect"), ctx.ScreenWidth)
		rect := &api.RectangleI{
			P0: &api.PointI{X: minInt32(p0.X, p1.X), Y: minInt32(p0.Y, p1.Y)},
			P1: &api.PointI{X: maxInt32(p0.X, p1.X), Y: maxInt32(p0.Y, p1.Y)},
		}
		return spatial(&api.ActionSpatial{Action: &api.ActionSpatial_UnitSelectionRect{
			UnitSelectionRect: &api.ActionSpatialUnitSelectionRect{
				SelectionScreenCoord: []*api.RectangleI{rect},
				SelectionAdd:         arg(args, "select_add", "select rect") != 0,
			}}})

	case SelectControlGroup:
		return ui(&api.ActionUI{Action: &api.ActionUI_ControlGroup{
			ControlGroup: &api.ActionControlGroup{
				Action: api.ActionControlGroup_ControlGroupAction(
					option(args, "control_group_act", "select control group")),
				ControlGroupIndex: uint32(arg(args, "control_group_id", "select control group")),
			}}})

	case SelectUnit:
		return ui(&api.ActionUI{Action: &api.ActionUI_MultiPanel{
			MultiPanel: &api.ActionMultiPanel{
				Type:      api.ActionMultiPanel_Type(option(args, "select_unit_act", "select unit")),
				UnitIndex: arg(args, "select_unit_id", "select unit"),
			}}})

	case SelectIdleWorker:
		return ui(&api.ActionUI{Action: &api.ActionUI_SelectIdleWorker{
			SelectIdleWorker: &api.ActionSelectIdleWorker{
				Type: api.ActionSelectIdleWorker_Type(
					option(args, "select_worker", "select idle worker")),
			}}})

	case SelectArmy:
		return ui(&api.ActionUI{Action: &api.ActionUI_SelectArmy{
			SelectArmy: &api.ActionSelectArmy{
				SelectionAdd: arg(args, "select_add", "select army") != 0,
			}}})

	case SelectWarpGates:
		return ui(&api.ActionUI{Action: &api.ActionUI_SelectWarpGates{
			SelectWarpGates: &api.ActionSelectWarpGates{
				SelectionAdd: arg(args, "select_add", "select warp gates") != 0,
			}}})

	case SelectLarva:
		return ui(&api.ActionUI{Action: &api.ActionUI_SelectLarva{
			SelectLarva: &api.ActionSelectLarva{},
		}})

	case Unload:
		return ui(&api.ActionUI{Action: &api.ActionUI_CargoPanel{
			CargoPanel: &api.ActionCargoPanelUnload{
				UnitIndex: arg(args, "unload_id", "unload"),
			}}})

	case BuildQueue:
		return ui(&api.ActionUI{Action: &api.ActionUI_ProductionPanel{
			ProductionPanel: &api.ActionProductionPanelRemoveFromQueue{
				UnitIndex: arg(args, "build_queue_id", "build queue"),
			}}})

	case CmdScreen:
		return spatial(&api.ActionSpatial{Action: &api.ActionSpatial_UnitCommand{
			UnitCommand: &api.ActionSpatialUnitCommand{
				AbilityId:    api.AbilityID(f.AbilityID),
				QueueCommand: arg(args, "queued", "cmd screen") != 0,
				Target: &api.ActionSpatialUnitCommand_TargetScreenCoord{
					TargetScreenCoord: point(arg(args, "screen", "cmd screen"), ctx.ScreenWidth),
				}}}})

	case CmdMinimap:
		return spatial(&api.ActionSpatial{Action: &api.ActionSpatial_UnitCommand{
			UnitCommand: &api.ActionSpatialUnitCommand{
				AbilityId:    api.AbilityID(f.AbilityID),
				QueueCommand: arg(args, "queued", "cmd minimap") != 0,
				Target: &api.ActionSpatialUnitCommand_TargetMinimapCoord{
					TargetMinimapCoord: point(arg(args, "minimap", "cmd minimap"), ctx.MinimapWidth),
				}}}})

	case CmdQuick:
		return spatial(&api.ActionSpatial{Action: &api.ActionSpatial_UnitCommand{
			UnitCommand: &api.ActionSpatialUnitCommand{
				AbilityId:    api.AbilityID(f.AbilityID),
				QueueCommand: arg(args, "queued", "cmd quick") != 0,
			}}})

	case Autocast:
		return ui(&api.ActionUI{Action: &api.ActionUI_ToggleAutocast{
			ToggleAutocast: &api.ActionToggleAutocast{
				AbilityId: api.AbilityID(f.AbilityID),
			}}})
	}

	panic(fmt.Sprintf("actions: cannot encode function type %d", f.Type))
}

// DecodeVisual translates the first recognized game action of a request
// into a visual function call. Unit commands whose function falls at or
// beyond the catalog bound are skipped. When nothing is recognized the
// call is a no-op.
func DecodeVisual(request *api.RequestAction, ctx Context) tensorutil.Tensors {
	for _, action := range request.Actions {
		if actUI := action.ActionUi; actUI != nil {
			switch a := actUI.Action.(type) {
			case *api.ActionUI_MultiPanel:
				return MakeCall(int32(SelectUnit), map[string]int32{
					"select_unit_act": int32(a.MultiPanel.Type) - 1,
					"select_unit_id":  a.MultiPanel.UnitIndex,
				})
			case *api.ActionUI_ControlGroup:
				return MakeCall(int32(SelectControlGroup), map[string]int32{
					"control_group_act": int32(a.ControlGroup.Action) - 1,
					"control_group_id":  int32(a.ControlGroup.ControlGroupIndex),
				})
			case *api.ActionUI_SelectIdleWorker:
				return MakeCall(int32(SelectIdleWorker), map[string]int32{
					"select_worker": int32(a.SelectIdleWorker.Type) - 1,
				})
			case *api.ActionUI_SelectArmy:
				return MakeCall(int32(SelectArmy), map[string]int32{
					"select_add": boolToInt32(a.SelectArmy.SelectionAdd),
				})
			case *api.ActionUI_SelectWarpGates:
				return MakeCall(int32(SelectWarpGates), map[string]int32{
					"select_add": boolToInt32(a.SelectWarpGates.SelectionAdd),
				})
			case *api.ActionUI_SelectLarva:
				return MakeCall(int32(SelectLarva), nil)
			case *api.ActionUI_CargoPanel:
				return MakeCall(int32(Unload), map[string]int32{
					"unload_id": a.CargoPanel.UnitIndex,
				})
			case *api.ActionUI_ProductionPanel:
				return MakeCall(int32(BuildQueue), map[string]int32{
					"build_queue_id": a.ProductionPanel.UnitIndex,
				})
			case *api.ActionUI_ToggleAutocast:
				return AbilityCall(int32(a.ToggleAutocast.AbilityId), Autocast, false, 0)
			}
		} else if actSp := action.ActionFeatureLayer; actSp != nil {
			switch a := actSp.Action.(type) {
			case *api.ActionSpatial_CameraMove:
				return MakeCall(int32(MoveCamera), map[string]int32{
					"minimap": pointIndex(a.CameraMove.CenterMinimap, ctx.MinimapWidth),
				})
			case *api.ActionSpatial_UnitSelectionPoint:
				return MakeCall(int32(SelectPoint), map[string]int32{
					"screen": pointIndex(
						a.UnitSelectionPoint.SelectionScreenCoord, ctx.ScreenWidth),
					"select_point_act": int32(a.UnitSelectionPoint.Type) - 1,
				})
			case *api.ActionSpatial_UnitSelectionRect:
				rect := a.UnitSelectionRect.SelectionScreenCoord[0]
				return MakeCall(int32(SelectRect), map[string]int32{
					"screen":  pointIndex(rect.P0, ctx.ScreenWidth),
					"screen2": pointIndex(rect.P1, ctx.ScreenWidth),
				})
			case *api.ActionSpatial_UnitCommand:
				cmd := a.UnitCommand
				var call tensorutil.Tensors
				switch target := cmd.Target.(type) {
				case *api.ActionSpatialUnitCommand_TargetScreenCoord:
					call = AbilityCall(int32(cmd.AbilityId), CmdScreen, cmd.QueueCommand,
						pointIndex(target.TargetScreenCoord, ctx.ScreenWidth))
				case *api.ActionSpatialUnitCommand_TargetMinimapCoord:
					call = AbilityCall(int32(cmd.AbilityId), CmdMinimap, cmd.QueueCommand,
						pointIndex(target.TargetMinimapCoord, ctx.MinimapWidth))
				default:
					call = AbilityCall(int32(cmd.AbilityId), CmdQuick, cmd.QueueCommand, 0)
				}
				if tensorutil.ScalarValue(call["function"]) >= ctx.NumFunctions {
					continue
				}
				return call
			}
		}
	}

	return NoOpCall()
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

package converter

import (
	"fmt"
	"sort"

	log "bitbucket.org/aisee/minilog"
	"github.com/aiseeq/s2l/protocol/api"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/sc2rl/sc2conv/actions"
	"github.com/sc2rl/sc2conv/tensorutil"
	"github.com/sc2rl/sc2conv/transform"
)

// rawEncoder translates between agent function calls and raw protocol
// actions. It is stateless; the observation passed to each call
// resolves unit indices against the units present that step.
type rawEncoder struct {
	mapSize          *api.Size2DI
	resolution       *api.Size2DI
	maxUnitCount     int32
	maxSelectionSize int32
	numActionTypes   int32
	shuffleUnitTags  bool
	actionRepeat     bool
}

// A unit command may be repeated at most this many extra times.
const maxActionRepeat = 2

// resolveTag maps one element of the unit_tags tensor to a persistent
// unit tag. Small values are indices into the current observation's
// unit list; values at or past the number of units present are taken
// to be tags already. Ground-truth recordings and agent actions share
// the tensor field, which forces this dual reading; keep it here only.
func resolveTag(index int32, raw *api.ObservationRaw) api.UnitTag {
	if int(index) >= len(raw.Units) {
		return api.UnitTag(index)
	}
	return raw.Units[index].Tag
}

// selectedTags resolves the agent's selection to unit tags. The pad
// value maxUnitCount ends the selection; negative entries abort it.
func (e *rawEncoder) selectedTags(raw *api.ObservationRaw, indices []int32) []api.UnitTag {
	tags := make([]api.UnitTag, 0, len(indices))
	for _, index := range indices {
		if index == e.maxUnitCount {
			continue
		}
		if index < 0 {
			log.Warningf("invalid selection index %d", index)
			return tags
		}
		tags = append(tags, resolveTag(index, raw))
	}
	return tags
}

// selectionIndices inverts selectedTags, mapping tags back to indices
// within the observation's unit list.
func selectionIndices(raw *api.ObservationRaw, tags []api.UnitTag) []int32 {
	selected := make(map[api.UnitTag]bool, len(tags))
	for _, tag := range tags {
		selected[tag] = true
	}
	indices := make([]int32, 0, len(tags))
	for i, u := range raw.Units {
		if selected[u.Tag] {
			indices = append(indices, int32(i))
		}
	}
	return indices
}

// makeFunctionCall assembles the raw action tensor set. The unit_tags
// vector pads with the out-of-range index, except for the no-op which
// pads with zeros.
func (e *rawEncoder) makeFunctionCall(functionID, world, queued int32,
	unitTags []int32, targetUnitTag, repeat int32) tensorutil.Tensors {

	pad := e.maxUnitCount
	if functionID == 0 {
		pad = 0
	}
	tags := make([]int32, e.maxSelectionSize)
	for i := range tags {
		if i < len(unitTags) {
			tags[i] = unitTags[i]
		} else {
			tags[i] = pad
		}
	}

	call := tensorutil.Tensors{
		"function":        tensorutil.Scalar(functionID),
		"world":           tensorutil.Scalar(world),
		"queued":          tensorutil.Scalar(queued),
		"unit_tags":       tensorutil.Vector(tags),
		"target_unit_tag": tensorutil.Scalar(targetUnitTag),
	}
	if e.actionRepeat {
		call["repeat"] = tensorutil.Scalar(repeat)
	}
	return call
}

func (e *rawEncoder) worldToIndex(x, y float32) int32 {
	return transform.WorldToIndex(
		r2.Vec{X: float64(x), Y: float64(y)}, e.resolution.X, e.mapSize)
}

// Decode converts the first recognized raw action of a request into
// the agent's tensor vocabulary. Actions naming units or functions the
// agent cannot address are skipped entirely. With nothing recognized
// the result is a no-op call.
func (e *rawEncoder) Decode(observation *api.ResponseObservation,
	request *api.RequestAction) tensorutil.Tensors {

	for _, action := range request.Actions {
		if action.ActionRaw == nil {
			continue
		}
		raw := observation.Observation.RawData

		var functionIdx, world, queued int32
		var unitIndices []int32
		var targetUnitIndex int32
		isCameraMove := false
		isUnitCommand := false
		var abilityID api.AbilityID

		switch a := action.ActionRaw.Action.(type) {
		case *api.ActionRaw_UnitCommand:
			cmd := a.UnitCommand
			isUnitCommand = true
			abilityID = cmd.AbilityId

			t := actions.RawCmd
			switch target := cmd.Target.(type) {
			case *api.ActionRawUnitCommand_TargetUnitTag:
				t = actions.RawCmdUnit
				found := false
				for i, u := range raw.Units {
					if u.Tag == target.TargetUnitTag {
						targetUnitIndex = int32(i)
						found = true
						break
					}
				}
				if !found {
					// The targeted unit does not exist (yet); skip the
					// whole action.
					continue
				}
			case *api.ActionRawUnitCommand_TargetWorldSpacePos:
				t = actions.RawCmdPt
				world = e.worldToIndex(target.TargetWorldSpacePos.X,
					target.TargetWorldSpacePos.Y)
			}

			functionIdx = actions.FindRaw(int32(cmd.AbilityId), t)
			unitIndices = selectionIndices(raw, cmd.UnitTags)
			if cmd.QueueCommand {
				queued = 1
			}

		case *api.ActionRaw_CameraMove:
			isCameraMove = true
			functionIdx = moveCameraFunction()
			p := a.CameraMove.CenterWorldSpace
			world = e.worldToIndex(p.X, p.Y)

		case *api.ActionRaw_ToggleAutocast:
			abilityID = a.ToggleAutocast.AbilityId
			functionIdx = actions.FindRaw(int32(abilityID), actions.RawAutocast)
			unitIndices = selectionIndices(raw, a.ToggleAutocast.UnitTags)

		default:
			continue
		}

		if functionIdx >= e.numActionTypes {
			// The agent is not supposed to know about this function.
			continue
		}

		addressable := unitIndices[:0]
		for _, index := range unitIndices {
			if index < e.maxUnitCount {
				addressable = append(addressable, index)
			}
		}
		unitIndices = addressable

		if !isCameraMove {
			if len(unitIndices) == 0 {
				// No addressable unit was selected.
				continue
			}
			if targetUnitIndex >= e.maxUnitCount {
				continue
			}
		}

		if e.shuffleUnitTags {
			rand.Shuffle(len(unitIndices), func(i, j int) {
				unitIndices[i], unitIndices[j] = unitIndices[j], unitIndices[i]
			})
		}

		repeat := int32(0)
		if isUnitCommand {
			sameAbility := 0
			for _, other := range request.Actions {
				if other.ActionRaw == nil {
					continue
				}
				if cmd, ok := other.ActionRaw.Action.(*api.ActionRaw_UnitCommand); ok &&
					cmd.UnitCommand.AbilityId == abilityID {
					sameAbility++
				}
			}
			if sameAbility > 3 {
				sameAbility = 3
			}
			repeat = int32(sameAbility) - 1
		}

		return e.makeFunctionCall(functionIdx, world, queued, unitIndices,
			targetUnitIndex, repeat)
	}

	return e.makeFunctionCall(0, 0, 0, nil, 0, 0)
}

// Encode converts an agent's raw function call into the protocol
// request to issue. A unit command with repeat r is emitted r+1 times.
func (e *rawEncoder) Encode(observation *api.ResponseObservation,
	action tensorutil.Tensors) (*api.RequestAction, error) {

	function, ok := action["function"]
	if !ok {
		return nil, fmt.Errorf("`function` must be specified on all actions")
	}
	functionIdx := tensorutil.ScalarValue(function)

	output := &api.RequestAction{}
	if functionIdx < 0 || functionIdx >= actions.NumRaw() {
		log.Warningf("invalid action index %d", functionIdx)
		return output, nil
	}
	f := actions.Raw(functionIdx)
	if f.Type == actions.RawNoOp {
		return output, nil
	}

	rawObs := observation.Observation.RawData

	if f.Type == actions.RawMoveCamera {
		world, ok := action["world"]
		if !ok {
			return nil, fmt.Errorf("`world` must be specified for raw move camera")
		}
		p := transform.IndexToWorld(tensorutil.ScalarValue(world),
			e.resolution.X, e.mapSize)
		output.Actions = append(output.Actions, &api.Action{
			ActionRaw: &api.ActionRaw{Action: &api.ActionRaw_CameraMove{
				CameraMove: &api.ActionRawCameraMove{
					// The protocol point is 3D; z stays unset.
					CenterWorldSpace: &api.Point{X: float32(p.X), Y: float32(p.Y)},
				}}}})
		return output, nil
	}

	unitTags, ok := action["unit_tags"]
	if !ok {
		return nil, fmt.Errorf("action requires `unit_tags`, but has keys %v, "+
			"function is %d", actionKeys(action), functionIdx)
	}
	selected := e.selectedTags(rawObs, tensorutil.Int32s(unitTags))

	if f.Type == actions.RawAutocast {
		output.Actions = append(output.Actions, &api.Action{
			ActionRaw: &api.ActionRaw{Action: &api.ActionRaw_ToggleAutocast{
				ToggleAutocast: &api.ActionRawToggleAutocast{
					AbilityId: api.AbilityID(f.AbilityID),
					UnitTags:  selected,
				}}}})
		return output, nil
	}

	command := &api.ActionRawUnitCommand{
		AbilityId: api.AbilityID(f.AbilityID),
		UnitTags:  selected,
	}
	queued, ok := action["queued"]
	if !ok {
		return nil, fmt.Errorf("`queued` must be specified for this action")
	}
	command.QueueCommand = tensorutil.ScalarValue(queued) != 0

	switch f.Type {
	case actions.RawCmdPt:
		world, ok := action["world"]
		if !ok {
			return nil, fmt.Errorf("`world` must be specified for raw command point")
		}
		p := transform.IndexToWorld(tensorutil.ScalarValue(world),
			e.resolution.X, e.mapSize)
		command.Target = &api.ActionRawUnitCommand_TargetWorldSpacePos{
			TargetWorldSpacePos: &api.Point2D{X: float32(p.X), Y: float32(p.Y)},
		}

	case actions.RawCmdUnit:
		target, ok := action["target_unit_tag"]
		if !ok {
			return nil, fmt.Errorf("`target_unit_tag` must be specified for raw command unit")
		}
		targetIndex := tensorutil.ScalarValue(target)
		if targetIndex < 0 {
			log.Warningf("invalid target index %d", targetIndex)
			return output, nil
		}
		command.Target = &api.ActionRawUnitCommand_TargetUnitTag{
			TargetUnitTag: resolveTag(targetIndex, rawObs),
		}
	}

	emissions := 1
	if e.actionRepeat {
		repeat, ok := action["repeat"]
		if !ok {
			return nil, fmt.Errorf("action repeat is enabled so `repeat` must be " +
				"specified on the action")
		}
		emissions = int(tensorutil.ScalarValue(repeat)) + 1
	}
	if f.Type != actions.RawCmd {
		// Repeating is only supported for untargeted unit commands.
		emissions = 1
	}
	for i := 0; i < emissions; i++ {
		output.Actions = append(output.Actions, &api.Action{
			ActionRaw: &api.ActionRaw{Action: &api.ActionRaw_UnitCommand{
				UnitCommand: command,
			}}})
	}
	return output, nil
}

// moveCameraFunction returns the id of the single camera move entry of
// the raw catalog.
func moveCameraFunction() int32 {
	for i := int32(0); i < actions.NumRaw(); i++ {
		if actions.Raw(i).Type == actions.RawMoveCamera {
			return i
		}
	}
	panic("converter: no raw camera move function in the catalog")
}

func actionKeys(action tensorutil.Tensors) []string {
	keys := make([]string, 0, len(action))
	for k := range action {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

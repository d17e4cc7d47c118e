// Package actions holds the static catalogs of agent-facing functions
// and their correspondence with game abilities.
//
// Agents address actions by dense function ids. Each function pairs an
// id with the game ability it issues and the argument form it takes.
// Specific abilities (a ghost's cloak, a banshee's cloak) carry the id
// of the general ability they specialize; folding onto the general
// entry is one level deep at most.
package actions

import (
	"fmt"
	"sort"
)

// FunctionType identifies the argument form of a visual function. The
// explicit values correspond to the function ids of the fixed
// user-interface actions at the head of the catalog.
type FunctionType int

const (
	NoOp FunctionType = iota
	MoveCamera
	SelectPoint
	SelectRect
	SelectControlGroup
	SelectUnit
	SelectIdleWorker
	SelectArmy
	SelectWarpGates
	SelectLarva
	Unload
	BuildQueue
	CmdScreen
	CmdMinimap
	CmdQuick
	Autocast
)

// RawFunctionType identifies the argument form of a raw function.
type RawFunctionType int

const (
	RawNoOp RawFunctionType = iota
	RawCmdPt
	RawCmdUnit
	RawCmd
	RawMoveCamera
	RawAutocast
)

// Function is one entry of the visual catalog.
type Function struct {
	ID        int32
	Label     string
	Type      FunctionType
	AbilityID int32
	GeneralID int32
}

// RawFunction is one entry of the raw catalog. Its id is its position
// in the catalog.
type RawFunction struct {
	Label     string
	Type      RawFunctionType
	AbilityID int32
	GeneralID int32
}

var (
	visualByAbility map[int32][]Function
	rawByAbility    map[int32][]int32
	orderToGeneral  map[int32]int32
)

func init() {
	sort.Slice(visualFunctions, func(i, j int) bool {
		return visualFunctions[i].ID < visualFunctions[j].ID
	})
	for i, f := range visualFunctions {
		if f.ID != int32(i) {
			panic(fmt.Sprintf("actions: non-contiguous visual catalog at %d", i))
		}
	}

	visualByAbility = make(map[int32][]Function)
	for _, f := range visualFunctions {
		visualByAbility[f.AbilityID] = append(visualByAbility[f.AbilityID], f)
	}

	rawByAbility = make(map[int32][]int32)
	for i, f := range rawFunctions {
		rawByAbility[f.AbilityID] = append(rawByAbility[f.AbilityID], int32(i))
	}

	// Map every raw function onto the function of its general ability
	// with the same argument form. General entries have GeneralID 0.
	type key struct {
		t       RawFunctionType
		ability int32
	}
	generals := make(map[key]int32)
	for i, f := range rawFunctions {
		if f.GeneralID == 0 {
			k := key{f.Type, f.AbilityID}
			if _, dup := generals[k]; dup {
				panic(fmt.Sprintf("actions: duplicate general (%d, %d)", f.Type, f.AbilityID))
			}
			generals[k] = int32(i)
		}
	}
	orderToGeneral = make(map[int32]int32, len(rawFunctions))
	for i, f := range rawFunctions {
		generalID := f.GeneralID
		if generalID == 0 {
			generalID = f.AbilityID
		}
		orderToGeneral[int32(i)] = generals[key{f.Type, generalID}]
	}
}

// NumVisual returns the size of the visual catalog.
func NumVisual() int32 { return int32(len(visualFunctions)) }

// NumRaw returns the size of the raw catalog.
func NumRaw() int32 { return int32(len(rawFunctions)) }

// Visual returns the visual function with the given id.
func Visual(id int32) Function { return visualFunctions[id] }

// Raw returns the raw function with the given id.
func Raw(id int32) RawFunction { return rawFunctions[id] }

// VisualForAbility returns the visual catalog entries issuing the given
// ability. The ability must be in the catalog.
func VisualForAbility(abilityID int32) []Function {
	fns, ok := visualByAbility[abilityID]
	if !ok {
		panic(fmt.Sprintf("actions: ability %d not in visual catalog", abilityID))
	}
	return fns
}

// HasVisualAbility reports whether the visual catalog covers abilityID.
func HasVisualAbility(abilityID int32) bool {
	_, ok := visualByAbility[abilityID]
	return ok
}

// FindRaw resolves a game ability and argument form to a raw function
// id, folding specific abilities onto their general version. Unmatched
// abilities resolve to 0, the no-op.
func FindRaw(abilityID int32, t RawFunctionType) int32 {
	return findRaw(abilityID, t, true)
}

func findRaw(abilityID int32, t RawFunctionType, mapToGeneral bool) int32 {
	for i, f := range rawFunctions {
		if f.AbilityID != abilityID {
			continue
		}
		if mapToGeneral && f.GeneralID != 0 {
			// Fold once only, in case the catalog is cyclic.
			return findRaw(f.GeneralID, t, false)
		}
		if f.Type == t {
			return int32(i)
		}
	}
	return 0
}

// RawAbilityToFunction maps a game ability id to the lowest raw function
// id that issues it, or 0 when no function does.
func RawAbilityToFunction(abilityID int32) int32 {
	ids, ok := rawByAbility[abilityID]
	if !ok || len(ids) == 0 {
		return 0
	}
	min := ids[0]
	for _, id := range ids[1:] {
		if id < min {
			min = id
		}
	}
	return min
}

// GeneralRawFunction folds a raw function id onto the id of its general
// version. Ids with no general mapping, and generals at or beyond
// numActionTypes, fold to 0.
func GeneralRawFunction(orderID, numActionTypes int32) int32 {
	general, ok := orderToGeneral[orderID]
	if !ok || general >= numActionTypes {
		return 0
	}
	return general
}

// IsApplicable reports whether the function can express an available
// ability given whether that ability requires a point.
func (f Function) IsApplicable(requiresPoint bool) bool {
	if requiresPoint {
		switch f.Type {
		case CmdScreen, CmdMinimap, Autocast:
			return true
		}
		return false
	}
	switch f.Type {
	case Autocast, CmdQuick:
		return true
	}
	return false
}

// Package lookups maps the sparse identifiers used by the game onto the
// dense ids carried in observation tensors.
//
// Unit type, buff and upgrade ids are compacted into contiguous 1-based
// ranges small enough for uint8 feature planes. Dense id 0 is reserved
// for the ground, where there is no unit. A handful of map decoration
// unit types that are visually interchangeable fold onto a single
// representative before compaction.
package lookups

import (
	"fmt"

	"github.com/aiseeq/s2l/protocol/api"
)

var (
	unitIndex    map[api.UnitTypeID]int32
	buffIndex    map[api.BuffID]int32
	upgradeIndex map[api.UpgradeID]int32
)

func init() {
	unitIndex = make(map[api.UnitTypeID]int32, len(unitList))
	for i, id := range unitList {
		unitIndex[id] = int32(i) + 1
	}
	buffIndex = make(map[api.BuffID]int32, len(buffList))
	for i, id := range buffList {
		buffIndex[id] = int32(i) + 1
	}
	upgradeIndex = make(map[api.UpgradeID]int32, len(upgradeList))
	for i, id := range upgradeList {
		upgradeIndex[id] = int32(i) + 1
	}
}

// MaxUnitType returns the largest dense unit type id.
func MaxUnitType() int32 { return int32(len(unitList)) }

// MaxBuff returns the largest dense buff id.
func MaxBuff() int32 { return int32(len(buffList)) }

// MaxUpgrade returns the largest dense upgrade id.
func MaxUpgrade() int32 { return int32(len(upgradeList)) }

// CompactUnitType maps a game unit type id to its dense id. Id 0 maps to
// 0. Unknown ids panic: every unit type the game can report must be in
// the table.
func CompactUnitType(id api.UnitTypeID) int32 {
	if id == 0 {
		return 0
	}
	if rep, ok := redundantUnits[id]; ok {
		id = rep
	}
	dense, ok := unitIndex[id]
	if !ok {
		panic(fmt.Sprintf("lookups: unknown unit type id %d", id))
	}
	return dense
}

// ExpandUnitType inverts CompactUnitType. Dense ids outside
// [0, MaxUnitType] panic.
func ExpandUnitType(dense int32) api.UnitTypeID {
	if dense == 0 {
		return 0
	}
	if dense < 1 || dense > MaxUnitType() {
		panic(fmt.Sprintf("lookups: dense unit type id %d out of range", dense))
	}
	return unitList[dense-1]
}

// CompactBuff maps a game buff id to its dense id. Id 0 maps to 0.
// Unknown ids panic.
func CompactBuff(id api.BuffID) int32 {
	if id == 0 {
		return 0
	}
	dense, ok := buffIndex[id]
	if !ok {
		panic(fmt.Sprintf("lookups: unknown buff id %d", id))
	}
	return dense
}

// CompactUpgrade maps a game upgrade id to its dense id. Id 0 maps to 0.
// Unknown ids panic.
func CompactUpgrade(id api.UpgradeID) int32 {
	if id == 0 {
		return 0
	}
	dense, ok := upgradeIndex[id]
	if !ok {
		panic(fmt.Sprintf("lookups: unknown upgrade id %d", id))
	}
	return dense
}

// ExpandUpgrade inverts CompactUpgrade. Dense ids outside
// [0, MaxUpgrade] panic.
func ExpandUpgrade(dense int32) api.UpgradeID {
	if dense == 0 {
		return 0
	}
	if dense < 1 || dense > MaxUpgrade() {
		panic(fmt.Sprintf("lookups: dense upgrade id %d out of range", dense))
	}
	return upgradeList[dense-1]
}

// RaceOf resolves a unit type id to the race that fields it. Neutral
// units resolve to NoRace. Unknown ids panic.
func RaceOf(id api.UnitTypeID) api.Race {
	race, ok := unitRace[id]
	if !ok {
		panic(fmt.Sprintf("lookups: unknown unit type id %d", id))
	}
	return race
}

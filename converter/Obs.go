package converter

import (
	"math"
	"sort"

	"github.com/aiseeq/s2l/protocol/api"
	"gonum.org/v1/gonum/spatial/r2"
	"gorgonia.org/tensor"

	"github.com/sc2rl/sc2conv/actions"
	"github.com/sc2rl/sc2conv/lookups"
	"github.com/sc2rl/sc2conv/tensorutil"
	"github.com/sc2rl/sc2conv/transform"
)

const numPlayerFeatures = 11

// maskedUnitType replaces the unit type of visible enemies outside the
// camera when offscreen masking is on.
const maskedUnitType = 254

// unitColumnsToMask lists the raw unit columns hidden for visible
// enemies outside the camera. Position, radius, display type, owner,
// selection and blip state stay observable, as they would be for a
// human playing with the minimap.
var unitColumnsToMask = []int32{
	2, 3, 4, 5, 6, 7, 8, 9, 14, 16, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28,
	30, 31, 32, 33, 34, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45,
}

// GameLoop returns the step counter as a length-1 tensor.
func GameLoop(obs *api.Observation) *tensor.Dense {
	return tensorutil.Scalar(int32(obs.GameLoop))
}

// PlayerCommon copies the player's resource and army counters into an
// 11-element vector, player id first.
func PlayerCommon(obs *api.Observation) *tensor.Dense {
	p := obs.PlayerCommon
	return tensorutil.Vector([]int32{
		int32(p.PlayerId),
		int32(p.Minerals),
		int32(p.Vespene),
		int32(p.FoodUsed),
		int32(p.FoodCap),
		int32(p.FoodArmy),
		int32(p.FoodWorkers),
		int32(p.IdleWorkerCount),
		int32(p.ArmyCount),
		int32(p.WarpGateCount),
		int32(p.LarvaCount),
	})
}

// MapPlayerIDToOne overwrites the player id element with the constant
// 1, so agents see themselves as player one regardless of start slot.
func MapPlayerIDToOne(player *tensor.Dense) *tensor.Dense {
	tensorutil.Int32s(player)[0] = 1
	return player
}

// Upgrades returns the player's completed upgrade ids as reported.
func Upgrades(obs *api.Observation) []api.UpgradeID {
	return obs.RawData.Player.UpgradeIds
}

// UpgradesFixedLength compacts a sparse upgrade list into a zero padded
// vector of length max. Upgrades past the cap are dropped.
func UpgradesFixedLength(upgrades []api.UpgradeID, max int32) *tensor.Dense {
	out := tensorutil.ZeroVector(int(max))
	data := tensorutil.Int32s(out)
	for i, id := range upgrades {
		if i >= int(max) {
			break
		}
		data[i] = lookups.CompactUpgrade(id)
	}
	return out
}

// rawUnitColumnMax bounds each raw unit feature column. Columns past
// the configured feature count are cut; two flag columns follow.
func rawUnitColumnMax(numActionTypes int32) [46]int32 {
	return [46]int32{
		maskedUnitType,       // 0, unit type.
		4,                    // 1, alliance (Alliance enum).
		10000,                // 2, health.
		1000,                 // 3, shield.
		200,                  // 4, energy.
		8,                    // 5, cargo space.
		100,                  // 6, build progress.
		255,                  // 7, health ratio.
		255,                  // 8, shield ratio.
		255,                  // 9, energy ratio.
		4,                    // 10, display type (DisplayType enum).
		16,                   // 11, owner.
		256,                  // 12, minimap pos x.
		256,                  // 13, minimap pos y.
		7,                    // 14, facing.
		13,                   // 15, minimap radius.
		4,                    // 16, cloak state (CloakState enum).
		1,                    // 17, is selected.
		1,                    // 18, is blip.
		1,                    // 19, is powered.
		1800,                 // 20, mineral contents.
		2250,                 // 21, vespene contents.
		8,                    // 22, cargo space max.
		64,                   // 23, assigned harvesters.
		64,                   // 24, ideal harvesters.
		50,                   // 25, weapon cooldown.
		32,                   // 26, orders size.
		numActionTypes - 1,   // 27, order 0.
		numActionTypes - 1,   // 28, order 1.
		math.MaxInt32,        // 29, unit tag.
		1,                    // 30, is hallucination.
		lookups.MaxBuff(),    // 31, buff 0.
		lookups.MaxBuff(),    // 32, buff 1.
		42,                   // 33, add-on unit type.
		1,                    // 34, is active.
		1,                    // 35, is on screen.
		100,                  // 36, order 0 progress.
		100,                  // 37, order 1 progress.
		numActionTypes - 1,   // 38, order 2.
		numActionTypes - 1,   // 39, order 3.
		1,                    // 40, in cargo.
		4000,                 // 41, buff duration remain.
		4000,                 // 42, buff duration max.
		3,                    // 43, attack upgrade level.
		3,                    // 44, armor upgrade level.
		3,                    // 45, shield upgrade level.
	}
}

// RawUnitsSpec describes the raw units matrix: one row per addressable
// unit, the configured feature columns plus selected and targeted
// flags. Empty rows are all zero, so every minimum is zero.
func RawUnitsSpec(maxUnitCount, numUnitFeatures, numActionTypes int32) tensorutil.Spec {
	max := rawUnitColumnMax(numActionTypes)
	colMax := make([]int32, numUnitFeatures+2)
	copy(colMax, max[:numUnitFeatures])
	colMax[numUnitFeatures] = 1
	colMax[numUnitFeatures+1] = 1

	return tensorutil.Spec{
		Name:   "raw_units",
		Dtype:  tensor.Int32,
		Shape:  []int{int(maxUnitCount), int(numUnitFeatures + 2)},
		Min:    0,
		Max:    math.MaxInt32,
		ColMax: colMax,
	}
}

// RawUnitsOptions configures RawUnits.
type RawUnitsOptions struct {
	MaxUnitCount         int32
	NumUnitFeatures      int32
	NumUnitTypes         int32
	NumActionTypes       int32
	IsRaw                bool
	MapSize              *api.Size2DI
	Resolution           *api.Size2DI
	MaskOffscreenEnemies bool
	AddEffectsToUnits    bool
	AddCargoToUnits      bool

	// Camera overrides the game's own on-screen flag when set.
	Camera *transform.Camera

	// LastUnitTags and LastTargetUnitTag drive the two flag columns.
	LastUnitTags      map[api.UnitTag]bool
	LastTargetUnitTag int64
}

func worldToMinimapPx(p r2.Vec, mapSize, resolution *api.Size2DI) (int32, int32) {
	return transform.WorldToPixel(p, mapSize, resolution)
}

func pointVec(p *api.Point) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// generalOrder folds a unit order's ability onto the general raw
// function id exposed to agents.
func generalOrder(abilityID api.AbilityID, numActionTypes int32) int32 {
	return actions.GeneralRawFunction(
		actions.RawAbilityToFunction(int32(abilityID)), numActionTypes)
}

// RawUnits builds the per-unit feature matrix, one row per unit up to
// the row cap, optionally followed by cargo passenger and ground
// effect pseudo-rows. Unit type and buff columns hold game ids here;
// RawUnitsToUint8 compacts them afterwards.
func RawUnits(raw *api.ObservationRaw, opt RawUnitsOptions) *tensor.Dense {
	out := tensorutil.ZeroMatrix(int(opt.MaxUnitCount), int(opt.NumUnitFeatures+2))

	tagTypes := make(map[api.UnitTag]api.UnitTypeID, len(raw.Units))
	for _, u := range raw.Units {
		tagTypes[u.Tag] = u.UnitType
	}

	i := 0
	for ; i < len(raw.Units) && i < int(opt.MaxUnitCount); i++ {
		u := raw.Units[i]
		row := tensorutil.Row(out, i)

		posX, posY := worldToMinimapPx(pointVec(u.Pos), opt.MapSize, opt.Resolution)
		radius := transform.WorldToDistance(float64(u.Radius), opt.MapSize, opt.Resolution)

		row[0] = int32(u.UnitType)
		row[1] = int32(u.Alliance)
		row[2] = tensorutil.ToInt32(float64(u.Health))
		row[3] = tensorutil.ToInt32(float64(u.Shield))
		row[4] = tensorutil.ToInt32(float64(u.Energy))
		row[5] = u.CargoSpaceTaken
		row[6] = tensorutil.ToInt32(float64(u.BuildProgress) * 100)
		row[7] = ratio255(u.Health, u.HealthMax)
		row[8] = ratio255(u.Shield, u.ShieldMax)
		row[9] = ratio255(u.Energy, u.EnergyMax)
		row[10] = int32(u.DisplayType)
		row[11] = u.Owner
		row[12] = posX
		row[13] = posY
		row[14] = tensorutil.ToInt32(float64(u.Facing))
		row[15] = radius
		row[16] = int32(u.Cloak)
		row[17] = boolFeature(u.IsSelected)
		row[18] = boolFeature(u.IsBlip)
		row[19] = boolFeature(u.IsPowered)
		row[20] = u.MineralContents
		row[21] = u.VespeneContents

		// Only populated for the player's own units.
		row[22] = u.CargoSpaceMax
		row[23] = u.AssignedHarvesters
		row[24] = u.IdealHarvesters
		row[25] = tensorutil.ToInt32(float64(u.WeaponCooldown))
		row[26] = int32(len(u.Orders))
		if len(u.Orders) > 0 {
			row[27] = generalOrder(u.Orders[0].AbilityId, opt.NumActionTypes)
		}
		if len(u.Orders) > 1 {
			row[28] = generalOrder(u.Orders[1].AbilityId, opt.NumActionTypes)
		}
		if opt.IsRaw {
			row[29] = int32(u.Tag)
		}

		if opt.NumUnitFeatures > 33 {
			row[30] = boolFeature(u.IsHallucination)
			if len(u.BuffIds) >= 1 {
				row[31] = int32(u.BuffIds[0])
			}
			if len(u.BuffIds) >= 2 {
				row[32] = int32(u.BuffIds[1])
			}
			if u.AddOnTag != 0 {
				if addOnType, ok := tagTypes[u.AddOnTag]; ok {
					row[33] = int32(addOnType)
				}
			}
		}
		if opt.NumUnitFeatures > 34 {
			row[34] = boolFeature(u.IsActive)
		}

		onScreen := u.IsOnScreen
		if opt.Camera != nil {
			onScreen = opt.Camera.Contains(float64(u.Pos.X), float64(u.Pos.Y))
		}
		if opt.NumUnitFeatures > 35 {
			row[35] = boolFeature(onScreen)
		}

		if opt.NumUnitFeatures > 39 {
			if len(u.Orders) >= 1 {
				row[36] = tensorutil.ToInt32(float64(u.Orders[0].Progress) * 100)
			}
			if len(u.Orders) >= 2 {
				row[37] = tensorutil.ToInt32(float64(u.Orders[1].Progress) * 100)
			}
			if len(u.Orders) > 2 {
				row[38] = generalOrder(u.Orders[2].AbilityId, opt.NumActionTypes)
			}
			if len(u.Orders) > 3 {
				row[39] = generalOrder(u.Orders[3].AbilityId, opt.NumActionTypes)
			}
		}

		if opt.NumUnitFeatures > 45 {
			row[41] = u.BuffDurationRemain
			row[42] = u.BuffDurationMax
			row[43] = u.AttackUpgradeLevel
			row[44] = u.ArmorUpgradeLevel
			row[45] = u.ShieldUpgradeLevel
		}

		if opt.LastUnitTags[u.Tag] {
			row[opt.NumUnitFeatures] = 1
		}
		if opt.LastTargetUnitTag == int64(u.Tag) {
			row[opt.NumUnitFeatures+1] = 1
		}

		maskEnemy := opt.MaskOffscreenEnemies &&
			u.Alliance == api.Alliance_Enemy && !onScreen
		if maskEnemy && u.Cloak == api.CloakState_Cloaked {
			// An offscreen cloaked enemy is invisible; only the tag
			// survives, for bookkeeping.
			for j := range row {
				row[j] = 0
			}
			if opt.IsRaw {
				row[29] = int32(u.Tag)
			}
		}
		if maskEnemy && u.DisplayType == api.DisplayType_Visible {
			row[0] = maskedUnitType
			for _, col := range unitColumnsToMask {
				if col < opt.NumUnitFeatures+2 {
					row[col] = 0
				}
			}
		}
	}

	if opt.AddCargoToUnits {
		for _, u := range raw.Units {
			if i >= int(opt.MaxUnitCount) {
				break
			}
			posX, posY := worldToMinimapPx(pointVec(u.Pos), opt.MapSize, opt.Resolution)
			for _, p := range u.Passengers {
				if i >= int(opt.MaxUnitCount) {
					break
				}
				row := tensorutil.Row(out, i)
				row[0] = int32(p.UnitType)
				row[1] = int32(u.Alliance)
				row[2] = tensorutil.ToInt32(float64(p.Health))
				row[3] = tensorutil.ToInt32(float64(p.Shield))
				row[4] = tensorutil.ToInt32(float64(p.Energy))
				row[7] = ratio255(p.Health, p.HealthMax)
				row[8] = ratio255(p.Shield, p.ShieldMax)
				row[9] = ratio255(p.Energy, p.EnergyMax)
				row[11] = u.Owner
				row[12] = posX
				row[13] = posY
				if opt.IsRaw {
					row[29] = int32(p.Tag)
				}
				if 40 < opt.NumUnitFeatures+2 {
					row[40] = 1
				}
				i++
			}
		}
	}

	if opt.AddEffectsToUnits {
		for _, e := range raw.Effects {
			if i >= int(opt.MaxUnitCount) {
				break
			}
			for _, pos := range e.Pos {
				if i >= int(opt.MaxUnitCount) {
					break
				}
				posX, posY := worldToMinimapPx(
					r2.Vec{X: float64(pos.X), Y: float64(pos.Y)},
					opt.MapSize, opt.Resolution)

				row := tensorutil.Row(out, i)
				row[0] = int32(e.EffectId) + opt.NumUnitTypes
				row[1] = int32(e.Alliance)
				row[11] = e.Owner
				row[12] = posX
				row[13] = posY
				row[15] = tensorutil.ToInt32(float64(e.Radius))
				i++
			}
		}
	}

	return out
}

// RawUnitsToUint8 compacts the unit type and buff columns in place.
// The unit type column is only compacted for rows that are genuine
// units or cargo, identified by a display type or the in-cargo flag;
// effect pseudo-rows and masked types stay as they are.
func RawUnitsToUint8(units *tensor.Dense, numUnitFeatures int32) *tensor.Dense {
	rows := units.Shape()[0]
	for i := 0; i < rows; i++ {
		row := tensorutil.Row(units, i)
		if (row[10] > 0 && row[0] != maskedUnitType) ||
			(numUnitFeatures > 40 && row[40] == 1) {
			row[0] = lookups.CompactUnitType(api.UnitTypeID(row[0]))
		}
		if numUnitFeatures > 32 {
			row[31] = lookups.CompactBuff(api.BuffID(row[31]))
			row[32] = lookups.CompactBuff(api.BuffID(row[32]))
		}
	}
	return units
}

// CameraPosition projects the camera center onto the minimap. The
// virtual camera takes precedence over the position the game reports.
func CameraPosition(obs *api.Observation, mapSize, resolution *api.Size2DI,
	camera *transform.Camera) *tensor.Dense {

	var p r2.Vec
	if camera != nil {
		p = r2.Vec{X: camera.X(), Y: camera.Y()}
	} else {
		p = pointVec(obs.RawData.Player.Camera)
	}
	x, y := worldToMinimapPx(p, mapSize, resolution)
	return tensorutil.Vector([]int32{x, y})
}

// CameraSize returns the camera rectangle's extent in minimap pixels.
func CameraSize(resolution, mapSize *api.Size2DI, cameraWidthWorldUnits float64) *tensor.Dense {
	scale := cameraWidthWorldUnits / maxDim(mapSize)
	return tensorutil.Vector([]int32{
		int32(float64(resolution.X) * scale),
		int32(float64(resolution.Y) * scale),
	})
}

func maxDim(mapSize *api.Size2DI) float64 {
	if mapSize.X > mapSize.Y {
		return float64(mapSize.X)
	}
	return float64(mapSize.Y)
}

// SeparateCamera rasterizes a camera plane from a projected position
// and size, clamped to the resolution.
func SeparateCamera(position, size *tensor.Dense, resolution *api.Size2DI) *tensor.Dense {
	out := tensorutil.ZeroMatrix(int(resolution.Y), int(resolution.X))
	data := tensorutil.Int32s(out)

	pos := tensorutil.Int32s(position)
	sz := tensorutil.Int32s(size)
	yLower := clampInt32(pos[1]-sz[1]/2, 0, resolution.Y)
	yUpper := clampInt32(pos[1]+sz[1]/2, 0, resolution.Y)
	xLower := clampInt32(pos[0]-sz[0]/2, 0, resolution.X)
	xUpper := clampInt32(pos[0]+sz[0]/2, 0, resolution.X)

	for y := yLower; y < yUpper; y++ {
		for x := xLower; x < xUpper; x++ {
			data[y*resolution.X+x] = 1
		}
	}
	return out
}

// UnitCounts histograms the player's own units by type, sorted by
// ascending count.
func UnitCounts(obs *api.Observation, includeHallucinations, onlyFinished bool) [][2]int64 {
	counts := make(map[api.UnitTypeID]int64)
	for _, u := range obs.RawData.Units {
		if u.Alliance != api.Alliance_Self {
			continue
		}
		if !includeHallucinations && u.IsHallucination {
			continue
		}
		if onlyFinished && u.BuildProgress != 1.0 {
			continue
		}
		counts[u.UnitType]++
	}

	out := make([][2]int64, 0, len(counts))
	for unitType, count := range counts {
		out = append(out, [2]int64{int64(unitType), count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][1] < out[j][1] })
	return out
}

// UnitCountsBow scatters a unit count histogram into a fixed-length
// vector indexed by compacted unit type.
func UnitCountsBow(counts [][2]int64, numUnitTypes int32) *tensor.Dense {
	out := tensorutil.ZeroVector(int(numUnitTypes))
	data := tensorutil.Int32s(out)
	for _, pair := range counts {
		index := lookups.CompactUnitType(api.UnitTypeID(pair[0])) - 1
		if index >= 0 && index < numUnitTypes {
			data[index] = int32(pair[1])
		}
	}
	return out
}

func ratio255(value, max float32) int32 {
	if max <= 0 {
		return 0
	}
	return tensorutil.ToInt32(float64(value) / float64(max) * 255)
}

func boolFeature(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

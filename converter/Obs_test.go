package converter

import (
	"testing"

	"github.com/aiseeq/s2l/protocol/api"
	"github.com/aiseeq/s2l/protocol/enums/upgrade"

	"github.com/sc2rl/sc2conv/tensorutil"
	"github.com/sc2rl/sc2conv/transform"
)

func TestPlayerCommonOrder(t *testing.T) {
	obs := &api.Observation{PlayerCommon: &api.PlayerCommon{
		PlayerId:        2,
		Minerals:        100,
		Vespene:         75,
		FoodUsed:        30,
		FoodCap:         44,
		FoodArmy:        18,
		FoodWorkers:     12,
		IdleWorkerCount: 1,
		ArmyCount:       9,
		WarpGateCount:   4,
		LarvaCount:      3,
	}}
	want := []int32{2, 100, 75, 30, 44, 18, 12, 1, 9, 4, 3}
	got := tensorutil.Int32s(PlayerCommon(obs))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("player = %v, want %v", got, want)
		}
	}

	got = tensorutil.Int32s(MapPlayerIDToOne(PlayerCommon(obs)))
	if got[0] != 1 {
		t.Errorf("player id = %d after remapping, want 1", got[0])
	}
}

func TestUpgradesFixedLength(t *testing.T) {
	got := tensorutil.Int32s(UpgradesFixedLength([]api.UpgradeID{upgrade.Blink}, 4))
	want := []int32{5, 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("upgrades = %v, want %v", got, want)
		}
	}
}

func TestUpgradesFixedLengthTruncates(t *testing.T) {
	upgrades := []api.UpgradeID{
		upgrade.Blink, upgrade.Blink, upgrade.Blink, upgrade.Blink, upgrade.Blink,
	}
	got := UpgradesFixedLength(upgrades, 3)
	if n := got.Shape()[0]; n != 3 {
		t.Fatalf("length = %d, want 3", n)
	}
	for _, v := range tensorutil.Int32s(got) {
		if v != 5 {
			t.Errorf("entry = %d, want 5", v)
		}
	}
}

func TestRawUnitsSpecShape(t *testing.T) {
	spec := RawUnitsSpec(16, 46, 564)
	if spec.Shape[0] != 16 || spec.Shape[1] != 48 {
		t.Errorf("shape = %v, want [16 48]", spec.Shape)
	}
	if len(spec.ColMax) != 48 {
		t.Fatalf("ColMax has %d entries, want 48", len(spec.ColMax))
	}
	if spec.ColMax[0] != 254 {
		t.Errorf("unit type bound = %d, want 254", spec.ColMax[0])
	}
	if spec.ColMax[46] != 1 || spec.ColMax[47] != 1 {
		t.Errorf("flag bounds = %d, %d, want 1, 1", spec.ColMax[46], spec.ColMax[47])
	}
}

func rawUnitsOpts() RawUnitsOptions {
	return RawUnitsOptions{
		MaxUnitCount:    8,
		NumUnitFeatures: 46,
		NumUnitTypes:    243,
		NumActionTypes:  564,
		IsRaw:           true,
		MapSize:         &api.Size2DI{X: 128, Y: 128},
		Resolution:      &api.Size2DI{X: 64, Y: 64},
	}
}

func TestRawUnitsRow(t *testing.T) {
	u := testUnit(1234, 48, api.Alliance_Self)
	u.Pos = &api.Point{X: 10, Y: 10}
	u.IsSelected = true
	raw := &api.ObservationRaw{Units: []*api.Unit{u}}

	units := RawUnits(raw, rawUnitsOpts())
	row := tensorutil.Row(units, 0)

	if row[0] != 48 {
		t.Errorf("unit type = %d, want the game id 48 before compaction", row[0])
	}
	if row[1] != int32(api.Alliance_Self) {
		t.Errorf("alliance = %d, want %d", row[1], api.Alliance_Self)
	}
	if row[2] != 45 {
		t.Errorf("health = %d, want 45", row[2])
	}
	if row[7] != 191 { // 45/60 of 255, truncated.
		t.Errorf("health ratio = %d, want 191", row[7])
	}
	if row[10] != int32(api.DisplayType_Visible) {
		t.Errorf("display type = %d, want visible", row[10])
	}
	if row[12] != 5 || row[13] != 59 {
		t.Errorf("minimap pos = (%d, %d), want (5, 59)", row[12], row[13])
	}
	if row[17] != 1 {
		t.Errorf("is selected = %d, want 1", row[17])
	}
	if row[29] != 1234 {
		t.Errorf("tag = %d, want 1234", row[29])
	}

	// The second row stays zero.
	for _, v := range tensorutil.Row(units, 1) {
		if v != 0 {
			t.Fatalf("padding row not zero: %v", tensorutil.Row(units, 1))
		}
	}
}

func TestRawUnitsSelectionFlags(t *testing.T) {
	a := testUnit(1000, 48, api.Alliance_Self)
	b := testUnit(2000, 105, api.Alliance_Enemy)
	raw := &api.ObservationRaw{Units: []*api.Unit{a, b}}

	opt := rawUnitsOpts()
	opt.LastUnitTags = map[api.UnitTag]bool{1000: true}
	opt.LastTargetUnitTag = 2000
	units := RawUnits(raw, opt)

	if row := tensorutil.Row(units, 0); row[46] != 1 || row[47] != 0 {
		t.Errorf("commanded unit flags = (%d, %d), want (1, 0)", row[46], row[47])
	}
	if row := tensorutil.Row(units, 1); row[46] != 0 || row[47] != 1 {
		t.Errorf("targeted unit flags = (%d, %d), want (0, 1)", row[46], row[47])
	}
}

func TestRawUnitsMasksOffscreenEnemies(t *testing.T) {
	visible := testUnit(2000, 105, api.Alliance_Enemy)
	visible.Pos = &api.Point{X: 100, Y: 100}
	cloaked := testUnit(3000, 105, api.Alliance_Enemy)
	cloaked.Pos = &api.Point{X: 100, Y: 100}
	cloaked.Cloak = api.CloakState_Cloaked
	cloaked.DisplayType = api.DisplayType_Hidden
	raw := &api.ObservationRaw{Units: []*api.Unit{visible, cloaked}}

	opt := rawUnitsOpts()
	opt.MaskOffscreenEnemies = true
	opt.Camera = transform.NewCamera(20, 20, 12, 12, 12, 12)
	units := RawUnits(raw, opt)

	row := tensorutil.Row(units, 0)
	if row[0] != 254 {
		t.Errorf("masked unit type = %d, want 254", row[0])
	}
	if row[2] != 0 || row[16] != 0 {
		t.Errorf("health %d and cloak %d leaked through the mask", row[2], row[16])
	}
	if row[12] == 0 && row[13] == 0 {
		t.Error("position masked, want it observable")
	}

	// A cloaked enemy offscreen leaves only its tag.
	row = tensorutil.Row(units, 1)
	for i, v := range row {
		if i == 29 {
			if v != 3000 {
				t.Errorf("tag = %d, want 3000", v)
			}
			continue
		}
		if v != 0 {
			t.Errorf("column %d = %d for a cloaked offscreen enemy, want 0", i, v)
		}
	}
}

func TestRawUnitsCargoRows(t *testing.T) {
	carrier := testUnit(1000, 48, api.Alliance_Self)
	carrier.Passengers = []*api.PassengerUnit{{
		Tag:       5000,
		UnitType:  48,
		Health:    30,
		HealthMax: 45,
	}}
	raw := &api.ObservationRaw{Units: []*api.Unit{carrier}}

	opt := rawUnitsOpts()
	opt.AddCargoToUnits = true
	units := RawUnits(raw, opt)

	row := tensorutil.Row(units, 1)
	if row[0] != 48 || row[29] != 5000 {
		t.Errorf("passenger type %d tag %d, want 48 and 5000", row[0], row[29])
	}
	if row[40] != 1 {
		t.Errorf("in-cargo flag = %d, want 1", row[40])
	}
}

func TestRawUnitsEffectRows(t *testing.T) {
	raw := &api.ObservationRaw{
		Units: []*api.Unit{testUnit(1000, 48, api.Alliance_Self)},
		Effects: []*api.Effect{{
			EffectId: 4,
			Pos:      []*api.Point2D{{X: 30, Y: 30}},
			Radius:   1.5,
			Alliance: api.Alliance_Enemy,
			Owner:    2,
		}},
	}

	opt := rawUnitsOpts()
	opt.AddEffectsToUnits = true
	units := RawUnits(raw, opt)

	row := tensorutil.Row(units, 1)
	if row[0] != 4+243 {
		t.Errorf("effect pseudo type = %d, want %d", row[0], 4+243)
	}
	if row[1] != int32(api.Alliance_Enemy) || row[11] != 2 {
		t.Errorf("effect alliance %d owner %d, want enemy owned by 2", row[1], row[11])
	}
	if row[15] != 1 { // Radius stays in world units, truncated.
		t.Errorf("effect radius = %d, want 1", row[15])
	}
}

func TestRawUnitsToUint8Compacts(t *testing.T) {
	u := testUnit(1000, 7, api.Alliance_Self) // InfestedTerran compacts to 4.
	raw := &api.ObservationRaw{Units: []*api.Unit{u}}
	units := RawUnitsToUint8(RawUnits(raw, rawUnitsOpts()), 46)
	if row := tensorutil.Row(units, 0); row[0] != 4 {
		t.Errorf("compacted unit type = %d, want 4", row[0])
	}
}

func TestUnitCounts(t *testing.T) {
	obs := &api.Observation{RawData: &api.ObservationRaw{Units: []*api.Unit{
		testUnit(1, 48, api.Alliance_Self),
		testUnit(2, 48, api.Alliance_Self),
		testUnit(3, 7, api.Alliance_Self),
		testUnit(4, 105, api.Alliance_Enemy), // Not ours; ignored.
	}}}

	counts := UnitCounts(obs, true, false)
	if len(counts) != 2 {
		t.Fatalf("got %d type counts, want 2", len(counts))
	}
	// Ascending by count.
	if counts[0][0] != 7 || counts[0][1] != 1 {
		t.Errorf("counts[0] = %v, want [7 1]", counts[0])
	}
	if counts[1][0] != 48 || counts[1][1] != 2 {
		t.Errorf("counts[1] = %v, want [48 2]", counts[1])
	}

	bow := tensorutil.Int32s(UnitCountsBow(counts, 243))
	if bow[3] != 1 { // Dense id 4, scattered at 4-1.
		t.Errorf("bow[3] = %d, want 1", bow[3])
	}
	total := int32(0)
	for _, v := range bow {
		total += v
	}
	if total != 3 {
		t.Errorf("bow total = %d, want 3", total)
	}
}

func TestUnitCountsFilters(t *testing.T) {
	halluc := testUnit(1, 48, api.Alliance_Self)
	halluc.IsHallucination = true
	building := testUnit(2, 48, api.Alliance_Self)
	building.BuildProgress = 0.5
	obs := &api.Observation{RawData: &api.ObservationRaw{
		Units: []*api.Unit{halluc, building},
	}}

	if counts := UnitCounts(obs, false, false); len(counts) != 1 {
		t.Errorf("hallucination not filtered: %v", counts)
	}
	if counts := UnitCounts(obs, true, true); len(counts) != 1 {
		t.Errorf("unfinished building not filtered: %v", counts)
	}
}

func TestCameraSize(t *testing.T) {
	got := tensorutil.Int32s(CameraSize(
		&api.Size2DI{X: 64, Y: 64}, &api.Size2DI{X: 128, Y: 64}, 24))
	if got[0] != 12 || got[1] != 12 {
		t.Errorf("camera size = %v, want [12 12]", got)
	}
}

func TestSeparateCamera(t *testing.T) {
	plane := SeparateCamera(
		tensorutil.Vector([]int32{8, 8}),
		tensorutil.Vector([]int32{4, 4}),
		&api.Size2DI{X: 16, Y: 16})

	data := tensorutil.Int32s(plane)
	ones := 0
	for _, v := range data {
		ones += int(v)
	}
	if ones != 16 {
		t.Errorf("camera covers %d pixels, want 16", ones)
	}
	if data[6*16+6] != 1 || data[9*16+9] != 1 {
		t.Error("camera corners not set")
	}
	if data[5*16+5] != 0 || data[10*16+10] != 0 {
		t.Error("camera bleeds outside its rectangle")
	}
}

func TestSeparateCameraClampsAtEdges(t *testing.T) {
	plane := SeparateCamera(
		tensorutil.Vector([]int32{0, 0}),
		tensorutil.Vector([]int32{8, 8}),
		&api.Size2DI{X: 16, Y: 16})

	ones := 0
	for _, v := range tensorutil.Int32s(plane) {
		ones += int(v)
	}
	if ones != 16 {
		t.Errorf("corner camera covers %d pixels, want 16", ones)
	}
}

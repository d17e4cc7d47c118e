package lookups

import (
	"testing"

	"github.com/aiseeq/s2l/protocol/api"
	"github.com/aiseeq/s2l/protocol/enums/upgrade"
)

func TestTableSizes(t *testing.T) {
	if MaxUnitType() != 243 {
		t.Errorf("MaxUnitType() = %d, want 243", MaxUnitType())
	}
	if MaxBuff() != 47 {
		t.Errorf("MaxBuff() = %d, want 47", MaxBuff())
	}
	if MaxUpgrade() != 91 {
		t.Errorf("MaxUpgrade() = %d, want 91", MaxUpgrade())
	}
}

func TestCompactUnitTypeRoundTrip(t *testing.T) {
	for dense := int32(0); dense <= MaxUnitType(); dense++ {
		if got := CompactUnitType(ExpandUnitType(dense)); got != dense {
			t.Fatalf("Compact(Expand(%d)) = %d", dense, got)
		}
	}
}

func TestCompactUnitTypeGround(t *testing.T) {
	if got := CompactUnitType(0); got != 0 {
		t.Errorf("CompactUnitType(0) = %d, want 0", got)
	}
}

func TestCompactUnitTypeKnownIds(t *testing.T) {
	// InfestedTerran (7) sits fourth in the table.
	if got := CompactUnitType(7); got != 4 {
		t.Errorf("CompactUnitType(7) = %d, want 4", got)
	}
}

func TestRedundantUnitsFold(t *testing.T) {
	for from, to := range redundantUnits {
		if CompactUnitType(from) != CompactUnitType(to) {
			t.Errorf("redundant unit %d does not fold onto %d", from, to)
		}
	}
}

func TestCompactUnitTypeUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for unknown unit type")
		}
	}()
	CompactUnitType(999999)
}

func TestCompactUpgradeRoundTrip(t *testing.T) {
	for dense := int32(0); dense <= MaxUpgrade(); dense++ {
		if got := CompactUpgrade(ExpandUpgrade(dense)); got != dense {
			t.Fatalf("Compact(Expand(%d)) = %d", dense, got)
		}
	}
}

func TestCompactUpgradeBlink(t *testing.T) {
	if got := CompactUpgrade(upgrade.Blink); got != 5 {
		t.Errorf("CompactUpgrade(Blink) = %d, want 5", got)
	}
}

func TestCompactBuffDenseRange(t *testing.T) {
	seen := make(map[int32]bool)
	for _, id := range buffList {
		dense := CompactBuff(id)
		if dense < 1 || dense > MaxBuff() {
			t.Fatalf("CompactBuff(%d) = %d, out of range", id, dense)
		}
		if seen[dense] {
			t.Fatalf("dense buff id %d assigned twice", dense)
		}
		seen[dense] = true
	}
}

func TestRaceOf(t *testing.T) {
	cases := []struct {
		id   api.UnitTypeID
		want api.Race
	}{
		{48, api.Race_Terran},   // Marine
		{105, api.Race_Zerg},    // Zergling
		{74, api.Race_Protoss},  // Stalker
		{341, api.Race_NoRace},  // MineralField
		{135, api.Race_Protoss}, // ForceField
	}
	for _, c := range cases {
		if got := RaceOf(c.id); got != c.want {
			t.Errorf("RaceOf(%d) = %v, want %v", c.id, got, c.want)
		}
	}
}

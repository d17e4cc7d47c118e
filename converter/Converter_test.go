package converter

import (
	"testing"

	"github.com/aiseeq/s2l/protocol/api"

	"github.com/sc2rl/sc2conv/tensorutil"
)

func testGameInfo() EnvironmentInfo {
	return EnvironmentInfo{GameInfo: &api.ResponseGameInfo{
		PlayerInfo: []*api.PlayerInfo{
			{PlayerId: 1, Type: api.PlayerType_Participant, RaceRequested: api.Race_Terran},
			{PlayerId: 2, Type: api.PlayerType_Participant, RaceRequested: api.Race_Zerg},
		},
		StartRaw: &api.StartRaw{MapSize: &api.Size2DI{X: 128, Y: 128}},
	}}
}

func testRawSettings() Settings {
	return Settings{
		NumActionTypes:        564,
		NumUnitTypes:          243,
		NumUpgradeTypes:       86,
		MaxNumUpgrades:        40,
		CameraWidthWorldUnits: 24,
		MMR:                   4200,
		Raw: &RawSettings{
			Resolution:           Size2D{X: 128, Y: 128},
			MaxUnitCount:         16,
			NumUnitFeatures:      46,
			MaxUnitSelectionSize: 16,
		},
	}
}

func testUnit(tag api.UnitTag, unitType api.UnitTypeID, alliance api.Alliance) *api.Unit {
	return &api.Unit{
		Tag:         tag,
		UnitType:    unitType,
		Alliance:    alliance,
		DisplayType: api.DisplayType_Visible,
		Cloak:       api.CloakState_NotCloaked,
		Owner:       1,
		Pos:         &api.Point{X: 20, Y: 20},
		Health:      45,
		HealthMax:   60,
	}
}

func testResponseObs(units ...*api.Unit) *api.ResponseObservation {
	return &api.ResponseObservation{Observation: &api.Observation{
		GameLoop: 17,
		PlayerCommon: &api.PlayerCommon{
			PlayerId: 1,
			Minerals: 50,
			Vespene:  25,
			FoodUsed: 15,
			FoodCap:  23,
		},
		RawData: &api.ObservationRaw{
			Player: &api.PlayerRaw{Camera: &api.Point{X: 20, Y: 20}},
			Units:  units,
		},
	}}
}

func TestNewRejectsBadSettings(t *testing.T) {
	info := testGameInfo()
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"no mode", func(s *Settings) { s.Raw = nil }},
		{"both modes", func(s *Settings) { s.Visual = &VisualSettings{} }},
		{"action types", func(s *Settings) { s.NumActionTypes = 538 }},
		{"unit types", func(s *Settings) { s.NumUnitTypes = 216 }},
		{"upgrade types", func(s *Settings) { s.NumUpgradeTypes = 85 }},
		{"max upgrades", func(s *Settings) { s.MaxNumUpgrades = 0 }},
		{"unit features", func(s *Settings) { s.Raw.NumUnitFeatures = 38 }},
		{"selection size", func(s *Settings) { s.Raw.MaxUnitSelectionSize = 15 }},
		{"resolution", func(s *Settings) { s.Raw.Resolution = Size2D{X: 128, Y: 64} }},
		{"minimap", func(s *Settings) {
			s.MinimapFeatures = []string{"camera"}
			s.Minimap = Size2D{X: 64, Y: 32}
		}},
	}
	for _, c := range cases {
		settings := testRawSettings()
		c.mutate(&settings)
		if _, err := New(settings, info); err == nil {
			t.Errorf("%v: no error", c.name)
		}
	}
}

func TestNewRequiresTwoNonObservers(t *testing.T) {
	info := testGameInfo()
	info.GameInfo.PlayerInfo[1].Type = api.PlayerType_Observer
	if _, err := New(testRawSettings(), info); err == nil {
		t.Error("no error for a single non-observer player")
	}
}

func TestNewRejectsSquareScreenViolation(t *testing.T) {
	settings := testRawSettings()
	settings.Raw = nil
	settings.Visual = &VisualSettings{Screen: Size2D{X: 64, Y: 32}}
	settings.Minimap = Size2D{X: 64, Y: 64}
	if _, err := New(settings, testGameInfo()); err == nil {
		t.Error("no error for a rectangular screen")
	}
}

func TestObservationMatchesSpec(t *testing.T) {
	settings := testRawSettings()
	settings.Raw.UseCameraPosition = true
	settings.Raw.Camera = true
	settings.Raw.UseVirtualCamera = true
	c, err := New(settings, testGameInfo())
	if err != nil {
		t.Fatal(err)
	}

	obs, err := c.ConvertObservation(Observation{Player: testResponseObs(
		testUnit(100, 48, api.Alliance_Self),
		testUnit(200, 105, api.Alliance_Enemy),
	)})
	if err != nil {
		t.Fatal(err)
	}

	spec := c.ObservationSpec()
	if len(spec) != len(obs) {
		t.Errorf("spec has %d keys, observation has %d", len(spec), len(obs))
	}
	for name, s := range spec {
		tensor, ok := obs[name]
		if !ok {
			t.Errorf("%v in spec but not in observation", name)
			continue
		}
		if err := s.Check(tensor); err != nil {
			t.Errorf("%v does not match its spec: %v", name, err)
		}
	}
}

func TestUpgradesFixedLengthSpecBound(t *testing.T) {
	c, err := New(testRawSettings(), testGameInfo())
	if err != nil {
		t.Fatal(err)
	}
	spec := c.ObservationSpec()["upgrades_fixed_length"]
	// One past the configured upgrade type count, even though the dense
	// upgrade table is larger. Matches what trained agents expect.
	if spec.Max != 87 {
		t.Errorf("upgrades_fixed_length max = %d, want 87", spec.Max)
	}
	if spec.Shape[0] != 40 {
		t.Errorf("upgrades_fixed_length length = %d, want 40", spec.Shape[0])
	}
}

func TestSharedObservationFields(t *testing.T) {
	c, err := New(testRawSettings(), testGameInfo())
	if err != nil {
		t.Fatal(err)
	}
	obs, err := c.ConvertObservation(Observation{Player: testResponseObs()})
	if err != nil {
		t.Fatal(err)
	}

	if got := tensorutil.ScalarValue(obs["game_loop"]); got != 17 {
		t.Errorf("game_loop = %d, want 17", got)
	}
	player := tensorutil.Int32s(obs["player"])
	if player[0] != 1 {
		t.Errorf("player id not remapped to 1, got %d", player[0])
	}
	if player[1] != 50 || player[2] != 25 {
		t.Errorf("player resources = %d, %d, want 50, 25", player[1], player[2])
	}
	if got := tensorutil.ScalarValue(obs["home_race_requested"]); got != int32(api.Race_Terran) {
		t.Errorf("home_race_requested = %d, want Terran", got)
	}
	if got := tensorutil.ScalarValue(obs["away_race_requested"]); got != int32(api.Race_Zerg) {
		t.Errorf("away_race_requested = %d, want Zerg", got)
	}
	if got := tensorutil.ScalarValue(obs["mmr"]); got != 4200 {
		t.Errorf("mmr = %d, want the settings default 4200", got)
	}
}

func TestMMRFromReplayInfo(t *testing.T) {
	info := testGameInfo()
	info.ReplayInfo = &api.ResponseReplayInfo{
		PlayerInfo: []*api.PlayerInfoExtra{
			{PlayerInfo: &api.PlayerInfo{PlayerId: 1}, PlayerMmr: 5300},
			{PlayerInfo: &api.PlayerInfo{PlayerId: 2}, PlayerMmr: 5100},
		},
	}
	c, err := New(testRawSettings(), info)
	if err != nil {
		t.Fatal(err)
	}
	obs, err := c.ConvertObservation(Observation{Player: testResponseObs()})
	if err != nil {
		t.Fatal(err)
	}
	if got := tensorutil.ScalarValue(obs["mmr"]); got != 5300 {
		t.Errorf("mmr = %d, want the replay's 5300", got)
	}
}

func TestAwayRaceObservedIsCached(t *testing.T) {
	c, err := New(testRawSettings(), testGameInfo())
	if err != nil {
		t.Fatal(err)
	}

	obs, err := c.ConvertObservation(Observation{Player: testResponseObs()})
	if err != nil {
		t.Fatal(err)
	}
	if got := tensorutil.ScalarValue(obs["away_race_observed"]); got != int32(api.Race_Random) {
		t.Errorf("away_race_observed = %d before any enemy, want Random", got)
	}

	// A zergling shows up.
	obs, err = c.ConvertObservation(Observation{Player: testResponseObs(
		testUnit(200, 105, api.Alliance_Enemy),
	)})
	if err != nil {
		t.Fatal(err)
	}
	if got := tensorutil.ScalarValue(obs["away_race_observed"]); got != int32(api.Race_Zerg) {
		t.Errorf("away_race_observed = %d, want Zerg", got)
	}

	// The observation sticks even with no enemies in sight.
	obs, err = c.ConvertObservation(Observation{Player: testResponseObs()})
	if err != nil {
		t.Fatal(err)
	}
	if got := tensorutil.ScalarValue(obs["away_race_observed"]); got != int32(api.Race_Zerg) {
		t.Errorf("away_race_observed = %d after caching, want Zerg", got)
	}
}

func TestConvertActionRequiresDelay(t *testing.T) {
	c, err := New(testRawSettings(), testGameInfo())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.ConvertObservation(Observation{Player: testResponseObs()}); err != nil {
		t.Fatal(err)
	}

	action := tensorutil.Tensors{"function": tensorutil.Scalar(0)}
	if _, err := c.ConvertAction(action); err == nil {
		t.Error("no error for a missing delay")
	}

	action["delay"] = tensorutil.Scalar(3)
	converted, err := c.ConvertAction(action)
	if err != nil {
		t.Fatal(err)
	}
	if converted.Delay != 3 {
		t.Errorf("delay = %d, want 3", converted.Delay)
	}
	if len(converted.RequestAction.Actions) != 0 {
		t.Errorf("no-op issued %d protocol actions", len(converted.RequestAction.Actions))
	}
}

func TestSupervisedRequiresForcedFields(t *testing.T) {
	settings := testRawSettings()
	settings.Supervised = true
	c, err := New(settings, testGameInfo())
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.ConvertObservation(Observation{Player: testResponseObs()})
	if err == nil {
		t.Fatal("no error for a missing forced action")
	}

	obs, err := c.ConvertObservation(Observation{
		Player:           testResponseObs(),
		ForceAction:      &api.RequestAction{},
		ForceActionDelay: 5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := tensorutil.ScalarValue(obs["action/delay"]); got != 5 {
		t.Errorf("action/delay = %d, want 5", got)
	}
	if got := tensorutil.ScalarValue(obs["action/function"]); got != 0 {
		t.Errorf("action/function = %d, want the no-op", got)
	}
}

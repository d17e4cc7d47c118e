package converter

import (
	"fmt"
	"math"

	"github.com/aiseeq/s2l/protocol/api"
	"gorgonia.org/tensor"

	"github.com/sc2rl/sc2conv/lookups"
	"github.com/sc2rl/sc2conv/tensorutil"
)

// An observation may request waiting at most this many game loops
// before the next step.
const maxActionDelay = 127

// The matchmaking rating reported when a replay does not carry one.
const defaultMMR = 3500

// Converter translates protocol observations to agent tensors and
// agent action tensors to protocol requests for one episode. Build one
// per episode with New; instances are not safe for concurrent use.
type Converter struct {
	settings Settings
	info     EnvironmentInfo

	raw    *rawConverter
	visual *visualConverter

	requestedRaces   []api.Race
	awayRaceObserved api.Race
}

// New validates settings against the game info and builds a converter
// in the configured mode.
func New(settings Settings, info EnvironmentInfo) (*Converter, error) {
	if err := settings.validate(info); err != nil {
		return nil, err
	}

	c := &Converter{
		settings:         settings,
		info:             info,
		awayRaceObserved: api.Race_Random,
	}
	if settings.Raw != nil {
		c.raw = newRawConverter(settings, info)
	} else {
		c.visual = newVisualConverter(settings)
	}

	for _, p := range info.GameInfo.PlayerInfo {
		if p.Type != api.PlayerType_Observer {
			c.requestedRaces = append(c.requestedRaces, p.RaceRequested)
		}
	}
	if len(c.requestedRaces) != 2 {
		return nil, fmt.Errorf("must have 2 non-observer players, got %d",
			len(c.requestedRaces))
	}
	return c, nil
}

// ObservationSpec describes every tensor ConvertObservation emits. It
// depends only on the settings and may be queried before stepping.
func (c *Converter) ObservationSpec() tensorutil.Specs {
	var spec tensorutil.Specs
	if c.raw != nil {
		spec = c.raw.ObservationSpec()
	} else {
		spec = c.visual.ObservationSpec()
	}

	spec["game_loop"] = tensorutil.Int32Spec("game_loop", math.MaxInt32, 1)
	spec["player"] = tensorutil.Int32Spec("player", math.MaxInt32, numPlayerFeatures)
	spec["home_race_requested"] = tensorutil.Int32Spec("home_race_requested",
		int32(api.Race_Random), 1)
	spec["away_race_requested"] = tensorutil.Int32Spec("away_race_requested",
		int32(api.Race_Random), 1)
	spec["away_race_observed"] = tensorutil.Int32Spec("away_race_observed",
		int32(api.Race_Random), 1)
	spec["upgrades_fixed_length"] = tensorutil.Int32Spec("upgrades_fixed_length",
		c.settings.NumUpgradeTypes+1, int(c.settings.MaxNumUpgrades))
	spec["unit_counts_bow"] = tensorutil.Int32Spec("unit_counts_bow",
		math.MaxInt32, int(c.settings.NumUnitTypes))
	spec["mmr"] = tensorutil.Int32Spec("mmr", math.MaxInt32, 1)

	for _, feature := range c.settings.MinimapFeatures {
		scale, err := MinimapFeatureScale(feature)
		if err != nil {
			panic(err)
		}
		name := "minimap_" + feature
		spec[name] = tensorutil.Uint8Spec(name, scale-1,
			int(c.settings.Minimap.X), int(c.settings.Minimap.Y))
	}

	if c.settings.AddOpponentFeatures {
		spec["opponent_player"] = tensorutil.Int32Spec("opponent_player",
			math.MaxInt32, numPlayerFeatures-1)
		spec["opponent_unit_counts_bow"] = tensorutil.Int32Spec(
			"opponent_unit_counts_bow", math.MaxInt32, int(c.settings.NumUnitTypes))
		spec["opponent_upgrades_fixed_length"] = tensorutil.Int32Spec(
			"opponent_upgrades_fixed_length", c.settings.NumUpgradeTypes+1,
			int(c.settings.MaxNumUpgrades))
	}

	if c.settings.Supervised {
		spec["action/delay"] = tensorutil.RangedInt32Spec("action/delay",
			1, maxActionDelay, 1)
	}
	return spec
}

// ConvertObservation converts one step's protocol observation into the
// agent's tensor map. Mode-specific fields come first, then the fields
// both modes share.
func (c *Converter) ConvertObservation(observation Observation) (tensorutil.Tensors, error) {
	var output tensorutil.Tensors
	var err error
	if c.raw != nil {
		output, err = c.raw.ConvertObservation(observation)
	} else {
		output, err = c.visual.ConvertObservation(observation)
	}
	if err != nil {
		return nil, err
	}

	obs := observation.Player.Observation

	output["game_loop"] = GameLoop(obs)
	output["player"] = MapPlayerIDToOne(PlayerCommon(obs))
	output["home_race_requested"] = c.homeRaceRequested(observation)
	output["away_race_requested"] = c.awayRaceRequested(observation)
	output["away_race_observed"] = c.observeAwayRace(observation)
	output["upgrades_fixed_length"] = UpgradesFixedLength(Upgrades(obs),
		c.settings.MaxNumUpgrades)
	output["unit_counts_bow"] = UnitCountsBow(UnitCounts(obs, true, false),
		c.settings.NumUnitTypes)

	if len(c.settings.MinimapFeatures) > 0 {
		layers := obs.FeatureLayerData.MinimapRenders
		for _, feature := range c.settings.MinimapFeatures {
			output["minimap_"+feature] = MinimapPlane(layers, feature)
		}
	}

	if c.settings.AddOpponentFeatures {
		opponent := observation.Opponent.Observation
		full := tensorutil.Int32s(PlayerCommon(opponent))
		// Everything but the opponent's player id.
		output["opponent_player"] = tensorutil.Vector(full[1:])
		output["opponent_unit_counts_bow"] = UnitCountsBow(
			UnitCounts(opponent, true, false), c.settings.NumUnitTypes)
		output["opponent_upgrades_fixed_length"] = UpgradesFixedLength(
			Upgrades(opponent), c.settings.MaxNumUpgrades)
	}

	if c.settings.Supervised {
		if observation.ForceActionDelay == 0 {
			return nil, fmt.Errorf("need a nonzero force_action_delay in the " +
				"observation when supervised is enabled")
		}
		output["action/delay"] = tensorutil.Scalar(observation.ForceActionDelay)
	}

	output["mmr"] = c.mmr(observation)
	return output, nil
}

// ActionSpec describes every tensor ConvertAction accepts.
func (c *Converter) ActionSpec() tensorutil.Specs {
	var spec tensorutil.Specs
	if c.raw != nil {
		spec = c.raw.ActionSpec()
	} else {
		spec = c.visual.ActionSpec()
	}
	spec["delay"] = tensorutil.RangedInt32Spec("delay", 1, maxActionDelay, 1)
	return spec
}

// ConvertAction converts an agent's action tensors into the protocol
// request to issue plus the delay until the next observation.
func (c *Converter) ConvertAction(action tensorutil.Tensors) (Action, error) {
	var request *api.RequestAction
	var err error
	if c.raw != nil {
		request, err = c.raw.ConvertAction(action)
	} else {
		request, err = c.visual.ConvertAction(action)
	}
	if err != nil {
		return Action{}, err
	}

	delay, ok := action["delay"]
	if !ok {
		return Action{}, fmt.Errorf("specify delay, the number of game loops " +
			"to wait before receiving the next observation")
	}
	return Action{
		RequestAction: request,
		Delay:         tensorutil.ScalarValue(delay),
	}, nil
}

// DecodeAction expresses a protocol request in the agent's action
// tensor vocabulary.
func (c *Converter) DecodeAction(action *api.RequestAction) tensorutil.Tensors {
	if c.raw != nil {
		return c.raw.DecodeAction(action)
	}
	return c.visual.DecodeAction(action)
}

func (c *Converter) mmr(observation Observation) *tensor.Dense {
	playerID := observation.Player.Observation.PlayerCommon.PlayerId
	mmr := c.settings.MMR
	if c.info.ReplayInfo != nil {
		mmr = defaultMMR
		for _, info := range c.info.ReplayInfo.PlayerInfo {
			if info.PlayerInfo != nil && info.PlayerInfo.PlayerId == playerID {
				mmr = info.PlayerMmr
				break
			}
		}
	}
	return tensorutil.Scalar(mmr)
}

func (c *Converter) playerID(observation Observation) int {
	id := int(observation.Player.Observation.PlayerCommon.PlayerId)
	if id != 1 && id != 2 {
		panic(fmt.Sprintf("converter: player id is %d, must be 1 or 2", id))
	}
	return id
}

func (c *Converter) homeRaceRequested(observation Observation) *tensor.Dense {
	return tensorutil.Scalar(int32(c.requestedRaces[c.playerID(observation)-1]))
}

func (c *Converter) awayRaceRequested(observation Observation) *tensor.Dense {
	return tensorutil.Scalar(int32(c.requestedRaces[2-c.playerID(observation)]))
}

// observeAwayRace resolves the opponent's race from the first enemy
// unit seen and keeps it for the rest of the episode. Until then it
// reports Random.
func (c *Converter) observeAwayRace(observation Observation) *tensor.Dense {
	if c.awayRaceObserved == api.Race_Random {
		for _, u := range observation.Player.Observation.RawData.Units {
			if u.Alliance == api.Alliance_Enemy {
				c.awayRaceObserved = lookups.RaceOf(u.UnitType)
				break
			}
		}
	}
	return tensorutil.Scalar(int32(c.awayRaceObserved))
}


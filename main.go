// Command sc2conv prints the observation and action interface a
// converter configuration produces, as a quick check of a settings
// file before training against it.
package main

import (
	"flag"
	"fmt"
	"sort"

	log "bitbucket.org/aisee/minilog"
	"github.com/aiseeq/s2l/protocol/api"

	"github.com/sc2rl/sc2conv/converter"
	"github.com/sc2rl/sc2conv/tensorutil"
)

func main() {
	settingsPath := flag.String("settings", "", "YAML converter settings; omit for the default raw setup")
	flag.Parse()

	settings := defaultSettings()
	if *settingsPath != "" {
		loaded, err := converter.LoadSettings(*settingsPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		settings = *loaded
	}

	// A stand-in for the game info the API returns once a match starts.
	info := converter.EnvironmentInfo{GameInfo: &api.ResponseGameInfo{
		PlayerInfo: []*api.PlayerInfo{
			{PlayerId: 1, Type: api.PlayerType_Participant, RaceRequested: api.Race_Terran},
			{PlayerId: 2, Type: api.PlayerType_Participant, RaceRequested: api.Race_Zerg},
		},
		StartRaw: &api.StartRaw{MapSize: &api.Size2DI{X: 152, Y: 160}},
	}}

	c, err := converter.New(settings, info)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("Observations:")
	printSpecs(c.ObservationSpec())
	fmt.Println()
	fmt.Println("Actions:")
	printSpecs(c.ActionSpec())
}

func defaultSettings() converter.Settings {
	return converter.Settings{
		NumActionTypes:        564,
		NumUnitTypes:          243,
		NumUpgradeTypes:       86,
		MaxNumUpgrades:        40,
		Minimap:               converter.Size2D{X: 128, Y: 128},
		MinimapFeatures:       []string{"height_map", "visibility_map", "creep", "player_relative"},
		CameraWidthWorldUnits: 24,
		MMR:                   3500,
		Raw: &converter.RawSettings{
			Resolution:           converter.Size2D{X: 128, Y: 128},
			MaxUnitCount:         512,
			NumUnitFeatures:      46,
			MaxUnitSelectionSize: 64,
			ShuffleUnitTags:      true,
			UseCameraPosition:    true,
			Camera:               true,
			UseVirtualCamera:     true,
		},
	}
}

func printSpecs(specs tensorutil.Specs) {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := specs[name]
		fmt.Printf("  %-34s %v %v in [%d, %d]\n",
			s.Name, s.Dtype, s.Shape, s.Min, s.Max)
	}
}

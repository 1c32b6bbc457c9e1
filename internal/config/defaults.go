package config

import (
	_ "embed"
)

//go:embed defaults/island.yaml
var defaultIslandYAML []byte

// DefaultIsland returns the built-in island configuration.
func DefaultIsland() IslandConfig {
	return IslandConfig{
		Ramp: RampConfig{
			BaseMin: 2,
			BaseMax: 5,
			Steps: []RampStep{
				{Above: 3, Max: 9},
				{Above: 9, Max: 12},
			},
			MultiplierMin: 2,
			MultiplierMax: 12,
		},
		Boards: BoardsConfig{
			PatternStartMin: 2,
			PatternStartMax: 20,
			SkipOffsetMax:   5,
			MinGroups:       2,
			MaxGroups:       5,
			GridLimit:       9,
			FieldMinSize:    6,
		},
		Progression: ProgressionConfig{
			CheckpointAt:    10,
			FeedbackDelayMS: 800,
		},
		Arena: ArenaConfig{
			DurationSecs: 60,
			BasePoints:   100,
			ComboBonus:   10,
			FactorMin:    2,
			FactorMax:    12,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultIslandYAML
}

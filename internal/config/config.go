// Package config provides YAML-based configuration for the island game:
// the difficulty ramp, board limits, progression pacing and arena scoring.
package config

import (
	"errors"
	"fmt"
	"time"
)

// IslandConfig contains all tunable parameters of the island game.
type IslandConfig struct {
	Ramp        RampConfig        `yaml:"ramp"`
	Boards      BoardsConfig      `yaml:"boards"`
	Progression ProgressionConfig `yaml:"progression"`
	Arena       ArenaConfig       `yaml:"arena"`
}

// RampConfig defines the number ranges problems draw from and how the
// base range widens as the solved count grows.
type RampConfig struct {
	BaseMin       int        `yaml:"base_min"`
	BaseMax       int        `yaml:"base_max"` // Upper bound before any step applies
	Steps         []RampStep `yaml:"steps"`
	MultiplierMin int        `yaml:"multiplier_min"`
	MultiplierMax int        `yaml:"multiplier_max"`
}

// RampStep raises the base upper bound to Max once difficulty exceeds Above.
type RampStep struct {
	Above int `yaml:"above"`
	Max   int `yaml:"max"`
}

// BoardsConfig holds per-world generation limits.
type BoardsConfig struct {
	PatternStartMin int `yaml:"pattern_start_min"`
	PatternStartMax int `yaml:"pattern_start_max"`
	SkipOffsetMax   int `yaml:"skip_offset_max"` // Offset multiples of the step
	MinGroups       int `yaml:"min_groups"`
	MaxGroups       int `yaml:"max_groups"`
	GridLimit       int `yaml:"grid_limit"`     // Max rows/cols of an array problem
	FieldMinSize    int `yaml:"field_min_size"` // Smallest plantable field edge
}

// ProgressionConfig controls pacing inside a world.
type ProgressionConfig struct {
	CheckpointAt    int `yaml:"checkpoint_at"`
	FeedbackDelayMS int `yaml:"feedback_delay_ms"`
}

// FeedbackDelay returns the pause between a correct answer and the next problem.
func (p ProgressionConfig) FeedbackDelay() time.Duration {
	return time.Duration(p.FeedbackDelayMS) * time.Millisecond
}

// ArenaConfig defines the timed multiplication drill.
type ArenaConfig struct {
	DurationSecs int `yaml:"duration_secs"`
	BasePoints   int `yaml:"base_points"`
	ComboBonus   int `yaml:"combo_bonus"`
	FactorMin    int `yaml:"factor_min"`
	FactorMax    int `yaml:"factor_max"`
}

// MaxGridLimit is the largest array edge the field can show.
const MaxGridLimit = 9

// ErrInvalid is returned by Validate for configurations the game cannot run with.
var ErrInvalid = errors.New("config: invalid island config")

// Validate checks that every range is non-empty and every limit is usable.
func (c IslandConfig) Validate() error {
	r := c.Ramp
	switch {
	case r.BaseMin < 1 || r.BaseMax < r.BaseMin:
		return fmt.Errorf("%w: base range [%d,%d]", ErrInvalid, r.BaseMin, r.BaseMax)
	case r.MultiplierMin < 1 || r.MultiplierMax < r.MultiplierMin:
		return fmt.Errorf("%w: multiplier range [%d,%d]", ErrInvalid, r.MultiplierMin, r.MultiplierMax)
	}
	for i, s := range r.Steps {
		if s.Max < r.BaseMin {
			return fmt.Errorf("%w: ramp step %d max %d below base_min", ErrInvalid, i, s.Max)
		}
		if i > 0 && s.Above <= r.Steps[i-1].Above {
			return fmt.Errorf("%w: ramp steps must be ordered by 'above'", ErrInvalid)
		}
	}

	b := c.Boards
	switch {
	case b.PatternStartMax < b.PatternStartMin:
		return fmt.Errorf("%w: pattern start range [%d,%d]", ErrInvalid, b.PatternStartMin, b.PatternStartMax)
	case b.SkipOffsetMax < 0:
		return fmt.Errorf("%w: skip_offset_max %d", ErrInvalid, b.SkipOffsetMax)
	case b.MinGroups < 2 || b.MaxGroups < b.MinGroups:
		return fmt.Errorf("%w: group range [%d,%d]", ErrInvalid, b.MinGroups, b.MaxGroups)
	case b.GridLimit < 1 || b.GridLimit > MaxGridLimit:
		return fmt.Errorf("%w: grid_limit %d outside [1,%d]", ErrInvalid, b.GridLimit, MaxGridLimit)
	}

	if c.Progression.CheckpointAt < 1 {
		return fmt.Errorf("%w: checkpoint_at %d", ErrInvalid, c.Progression.CheckpointAt)
	}
	if c.Progression.FeedbackDelayMS < 0 {
		return fmt.Errorf("%w: feedback_delay_ms %d", ErrInvalid, c.Progression.FeedbackDelayMS)
	}

	a := c.Arena
	switch {
	case a.DurationSecs < 1:
		return fmt.Errorf("%w: arena duration %d", ErrInvalid, a.DurationSecs)
	case a.FactorMin < 1 || a.FactorMax < a.FactorMin:
		return fmt.Errorf("%w: arena factor range [%d,%d]", ErrInvalid, a.FactorMin, a.FactorMax)
	}
	return nil
}

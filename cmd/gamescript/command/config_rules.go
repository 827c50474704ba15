package command

import (
	"github.com/pixil98/go-gamescript/internal/game"
)

// RulesConfig toggles the ruleset features the resolver honours.
type RulesConfig struct {
	Rules3ED       bool `json:"rules_3ed"`
	AreaOverride   bool `json:"area_override"`
	AdditionalRect bool `json:"additional_rect"`
	// TimeStep is the game time added per driver tick; zero keeps the default.
	TimeStep uint32 `json:"time_step"`
	// StartTime is the game time the world starts at.
	StartTime uint32 `json:"start_time"`
}

func (c *RulesConfig) Features() game.Feature {
	var f game.Feature
	if c.Rules3ED {
		f |= game.FeatureRules3ED
	}
	if c.AreaOverride {
		f |= game.FeatureAreaOverride
	}
	if c.AdditionalRect {
		f |= game.FeatureAdditionalRect
	}
	return f
}

func (c *RulesConfig) gameOpts() []game.GameOpt {
	opts := []game.GameOpt{
		game.WithFeatures(c.Features()),
		game.WithGameTime(c.StartTime),
	}
	if c.TimeStep != 0 {
		opts = append(opts, game.WithTimeStep(c.TimeStep))
	}
	return opts
}

package config

import (
	_ "embed"
)

//go:embed defaults/catdash.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration, matching the embedded
// YAML. Used as the last-resort fallback if the embed fails to parse.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:       800,
			Height:      600,
			GroundLevel: 500,
		},
		Physics: PhysicsConfig{
			Gravity:          1.0,
			JumpForce:        -20,
			DoubleJumpFactor: 0.9,
			DeathBounce:      -8,
		},
		Actor: ActorConfig{
			X:              100,
			Width:          70,
			Height:         96,
			SlideHeight:    48,
			SlideDuration:  45,
			SlideCooldown:  90,
			AnimationSpeed: 6,
		},
		Projectile: ProjectileConfig{
			Speed:  12,
			Width:  12,
			Height: 6,
		},
		Spawn: SpawnConfig{
			BaseIntervalMS: 1500,
			MinIntervalMS:  800,
			IntervalStepMS: 50,
			StepEvery:      5,
			HistorySize:    3,
			SpeedJitter:    0.5,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed: 7,
			MaxSpeed:  15,
			SpeedStep: 0.2,
			StepEvery: 10,
		},
		Scoring: ScoringConfig{
			BasePoints:     1,
			BonusPoints:    2,
			ComboCalloutAt: 3,
			MilestoneEvery: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
// Used by the `catdash config` command to print a starting point.
func DefaultYAML() []byte {
	return defaultYAML
}

// Package config provides YAML-based game configuration loading and the
// score-driven difficulty curves for Cat Dash.
package config

// Config contains all tunables for the Cat Dash simulation.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Actor      ActorConfig      `yaml:"actor"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// WorldConfig defines the logical playfield. The simulation runs in these
// units regardless of terminal size; the renderer scales to cells.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GroundLevel float64 `yaml:"ground_level"`
}

// PhysicsConfig defines vertical physics for the actor.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`            // Added to velocity each airborne tick
	JumpForce        float64 `yaml:"jump_force"`         // Launch velocity (negative = up)
	DoubleJumpFactor float64 `yaml:"double_jump_factor"` // Multiplier on JumpForce for mid-air jumps
	DeathBounce      float64 `yaml:"death_bounce"`       // Upward impulse applied on death
}

// ActorConfig defines the runner's placement, hitbox, and action timing.
type ActorConfig struct {
	X              float64 `yaml:"x"`               // Fixed horizontal position (left edge of hitbox)
	Width          float64 `yaml:"width"`           // Hitbox width
	Height         float64 `yaml:"height"`          // Hitbox height when upright
	SlideHeight    float64 `yaml:"slide_height"`    // Hitbox height while sliding
	SlideDuration  int     `yaml:"slide_duration"`  // Slide length in ticks
	SlideCooldown  int     `yaml:"slide_cooldown"`  // Ticks before the next slide is allowed
	AnimationSpeed int     `yaml:"animation_speed"` // Ticks per animation frame
}

// ProjectileConfig defines the shot fired by the actor.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"` // World px per tick, rightward
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnConfig defines obstacle spawn timing and variety.
type SpawnConfig struct {
	BaseIntervalMS int     `yaml:"base_interval_ms"` // Interval between spawns at score 0
	MinIntervalMS  int     `yaml:"min_interval_ms"`  // Interval floor
	IntervalStepMS int     `yaml:"interval_step_ms"` // Reduction applied per step
	StepEvery      int     `yaml:"step_every"`       // Points per interval step
	HistorySize    int     `yaml:"history_size"`     // Anti-repeat memory (0 disables)
	SpeedJitter    float64 `yaml:"speed_jitter"`     // Half-width of per-obstacle speed noise
}

// DifficultyConfig defines the score-driven speed curve.
type DifficultyConfig struct {
	BaseSpeed float64 `yaml:"base_speed"` // Obstacle speed at score 0
	MaxSpeed  float64 `yaml:"max_speed"`  // Speed ceiling
	SpeedStep float64 `yaml:"speed_step"` // Increase applied per step
	StepEvery int     `yaml:"step_every"` // Points per speed step
}

// ScoringConfig defines point values and cosmetic thresholds.
type ScoringConfig struct {
	BasePoints     int `yaml:"base_points"`      // Award for passing a ground obstacle
	BonusPoints    int `yaml:"bonus_points"`     // Award for passing a hard-to-avoid obstacle
	ComboCalloutAt int `yaml:"combo_callout_at"` // Combo count that triggers the callout event
	MilestoneEvery int `yaml:"milestone_every"`  // Points between cosmetic milestone events
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	}
	return ""
}

package config

// Difficulty computes the per-frame game parameters from the current score.
// Both curves are pure clamped functions: they are recomputed from the score
// total on demand, never incremented, so difficulty can never drift.
type Difficulty struct {
	diff  DifficultyConfig
	spawn SpawnConfig
}

// NewDifficulty creates the curve evaluator for a loaded config.
func NewDifficulty(cfg *Config) *Difficulty {
	return &Difficulty{
		diff:  cfg.Difficulty,
		spawn: cfg.Spawn,
	}
}

// SpeedForScore returns the base horizontal speed applied to newly spawned
// obstacles, in world px per tick. Monotonically non-decreasing in score,
// clamped at MaxSpeed.
func (d *Difficulty) SpeedForScore(score int) float64 {
	if score < 0 {
		score = 0
	}
	speed := d.diff.BaseSpeed
	if d.diff.StepEvery > 0 {
		speed += float64(score/d.diff.StepEvery) * d.diff.SpeedStep
	}
	if speed > d.diff.MaxSpeed {
		speed = d.diff.MaxSpeed
	}
	return speed
}

// IntervalForScore returns the minimum elapsed time before the next spawn,
// in milliseconds. Monotonically non-increasing in score, floored at
// MinIntervalMS.
func (d *Difficulty) IntervalForScore(score int) float64 {
	if score < 0 {
		score = 0
	}
	interval := d.spawn.BaseIntervalMS
	if d.spawn.StepEvery > 0 {
		interval -= (score / d.spawn.StepEvery) * d.spawn.IntervalStepMS
	}
	if interval < d.spawn.MinIntervalMS {
		interval = d.spawn.MinIntervalMS
	}
	return float64(interval)
}

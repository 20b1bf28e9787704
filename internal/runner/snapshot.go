package runner

import "github.com/feliform/catdash/internal/core"

// Snapshot is a complete read-only view of one simulation frame. Rendering
// is a pure function of this value, so any frontend (terminal, SSH session,
// test harness) can draw the same frame without touching game internals.
type Snapshot struct {
	Tick      int
	Score     int
	HighScore int
	Combo     int
	Speed     float64
	GameOver  bool
	Theme     int

	Actor       ActorSnapshot
	Obstacles   []ObstacleSnapshot
	Projectiles []ProjectileSnapshot
	Particles   []ParticleSnapshot
}

// ActorSnapshot captures the actor's visible state.
type ActorSnapshot struct {
	X, Y        float64
	VelY        float64
	State       ActorState
	Frame       int
	OnGround    bool
	Sliding     bool
	Hitbox      core.Rect
	JumpCharges int
	ShotCharges int
}

// ObstacleSnapshot captures one live obstacle.
type ObstacleSnapshot struct {
	Type         ObstacleType
	X, Y, W, H   float64
	Speed        float64
	Scored       bool
	PaletteIndex int
}

// ProjectileSnapshot captures one in-flight projectile.
type ProjectileSnapshot struct {
	X, Y, W, H float64
}

// ParticleSnapshot captures one particle with its derived opacity.
type ParticleSnapshot struct {
	X, Y  float64
	Size  float64
	Color RGB
	Alpha float64
}

// Snapshot builds the frame view. The slices are freshly allocated so the
// caller can hold the value across ticks.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.highScore,
		Combo:     g.combo,
		Speed:     g.diff.SpeedForScore(g.score),
		GameOver:  g.gameOver,
		Theme:     g.theme,
		Actor: ActorSnapshot{
			X:           g.actor.X,
			Y:           g.actor.Y,
			VelY:        g.actor.VelY(),
			State:       g.actor.State(),
			Frame:       g.actor.Frame(),
			OnGround:    g.actor.OnGround(),
			Sliding:     g.actor.Sliding(),
			Hitbox:      g.actor.Hitbox(),
			JumpCharges: g.actor.JumpCharges(),
			ShotCharges: g.actor.ShotCharges(),
		},
	}

	obstacles := g.spawner.Obstacles()
	if len(obstacles) > 0 {
		snap.Obstacles = make([]ObstacleSnapshot, 0, len(obstacles))
		for _, o := range obstacles {
			snap.Obstacles = append(snap.Obstacles, ObstacleSnapshot{
				Type:         o.Type,
				X:            o.X,
				Y:            o.Y,
				W:            o.W,
				H:            o.H,
				Speed:        o.Speed,
				Scored:       o.Scored,
				PaletteIndex: o.PaletteIndex,
			})
		}
	}

	if len(g.projectiles) > 0 {
		snap.Projectiles = make([]ProjectileSnapshot, 0, len(g.projectiles))
		for _, p := range g.projectiles {
			snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{X: p.X, Y: p.Y, W: p.W, H: p.H})
		}
	}

	particles := g.particles.Particles()
	if len(particles) > 0 {
		snap.Particles = make([]ParticleSnapshot, 0, len(particles))
		for i := range particles {
			p := &particles[i]
			snap.Particles = append(snap.Particles, ParticleSnapshot{
				X:     p.X,
				Y:     p.Y,
				Size:  p.Size,
				Color: p.Color,
				Alpha: p.Alpha(),
			})
		}
	}

	return snap
}

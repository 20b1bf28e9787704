package runner

import (
	"github.com/feliform/catdash/internal/config"
	"github.com/feliform/catdash/internal/core"
)

const defaultTickRate = 60

// themeCount is the number of cosmetic palettes the renderer knows.
const themeCount = 4

// Game is the endless-runner simulation. It implements core.Game: a pure
// frame-stepped state machine with no knowledge of terminals, timers, or
// persistence.
type Game struct {
	cfg    config.Config
	diff   *config.Difficulty
	rt     core.RuntimeConfig
	preset config.DifficultyPreset

	actor       *Actor
	spawner     *Spawner
	particles   *ParticlePool
	projectiles []*Projectile

	score     int
	highScore int
	combo     int
	maxCombo  int
	gameOver  bool
	tick      int
	theme     int

	events []core.Event
}

// Option configures a Game before its first Reset.
type Option func(*Game)

// WithConfig replaces the loaded configuration.
func WithConfig(cfg config.Config) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithPreset applies a difficulty preset on top of the configuration.
func WithPreset(p config.DifficultyPreset) Option {
	return func(g *Game) { g.preset = p }
}

// New creates a Game with the default configuration. Call Reset before
// stepping.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.preset != "" {
		config.ApplyPreset(&g.cfg, g.preset)
	}
	return g
}

// ID returns the stable game identifier used for storage keys.
func (g *Game) ID() string { return "catdash" }

// Title returns the human-readable game name.
func (g *Game) Title() string { return "Cat Dash" }

// Reset starts a fresh run. The RNG streams for spawning and particles are
// derived from the runtime seed, so equal seeds replay identically. The high
// score survives resets.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = defaultTickRate
	}
	g.rt = rt
	g.diff = config.NewDifficulty(&g.cfg)
	if g.particles == nil {
		g.particles = NewParticlePool(rt.Seed + 1)
	} else {
		g.particles.Reset(rt.Seed + 1)
	}
	if g.spawner == nil {
		g.spawner = NewSpawner(rt.Seed, &g.cfg, g.diff)
	} else {
		g.spawner.Reset(rt.Seed)
	}
	g.actor = NewActor(&g.cfg, g.particles)
	g.projectiles = g.projectiles[:0]
	g.score = 0
	g.combo = 0
	g.maxCombo = 0
	g.gameOver = false
	g.tick = 0
	g.theme = 0
	g.events = g.events[:0]
}

// SetHighScore seeds the session high score, typically from storage. Lower
// values than the current high score are ignored.
func (g *Game) SetHighScore(v int) {
	if v > g.highScore {
		g.highScore = v
	}
}

// Step advances the simulation by exactly one tick. After game over only the
// death fall and particle decay keep running; all input is ignored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		g.actor.Update()
		g.particles.Update()
		return g.result()
	}

	g.tick++

	if in.Has(core.ActionTheme) {
		g.theme = (g.theme + 1) % themeCount
		// Reseeding on theme swap keeps the upcoming pattern unpredictable,
		// so cycling themes cannot be used to scout future spawns.
		g.spawner.ResetPattern(g.rt.Seed+int64(g.tick), g.nowMS())
	}
	if in.Has(core.ActionJump) {
		g.actor.Jump()
	}
	if in.Has(core.ActionSlide) {
		g.actor.Slide()
	}
	if in.Has(core.ActionShoot) && g.actor.Shoot() {
		g.fireProjectile()
	}

	g.spawner.TrySpawn(g.nowMS(), g.score)

	g.actor.Update()
	g.spawner.Update()
	g.updateProjectiles()

	g.resolve()
	g.spawner.RemoveDestroyed()
	g.pruneSpentProjectiles()

	g.particles.Update()

	return g.result()
}

// State returns the current summary state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Combo:     g.combo,
		Speed:     g.diff.SpeedForScore(g.score),
		GameOver:  g.gameOver,
	}
}

// MaxCombo returns the longest combo chain reached this run.
func (g *Game) MaxCombo() int { return g.maxCombo }

// Tick returns the number of simulated ticks this run.
func (g *Game) Tick() int { return g.tick }

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append(res.Events, g.events...)
	}
	return res
}

// nowMS is the simulation clock in milliseconds, derived from the tick
// counter. It never goes backwards and is unaffected by wall time.
func (g *Game) nowMS() float64 {
	return float64(g.tick) * 1000.0 / float64(g.rt.TickRate)
}

func (g *Game) fireProjectile() {
	hit := g.actor.Hitbox()
	pc := g.cfg.Projectile
	g.projectiles = append(g.projectiles, &Projectile{
		X:     hit.Right(),
		Y:     hit.Y + hit.H/2 - pc.Height/2,
		W:     pc.Width,
		H:     pc.Height,
		Speed: pc.Speed,
	})
}

// pruneSpentProjectiles drops projectiles consumed during collision
// resolution so they vanish the tick they hit.
func (g *Game) pruneSpentProjectiles() {
	alive := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.spent {
			continue
		}
		alive = append(alive, p)
	}
	g.projectiles = alive
}

func (g *Game) updateProjectiles() {
	alive := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.spent {
			continue
		}
		p.update()
		if p.X > g.cfg.World.Width {
			continue
		}
		alive = append(alive, p)
	}
	g.projectiles = alive
}

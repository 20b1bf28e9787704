package runner

import "math/rand"

// Particle physics constants.
const (
	particleGravity = 0.1 // Downward acceleration per tick
	particleShrink  = 0.5 // Size lost per tick in the fade-out phase
	fadeFraction    = 0.7 // Fraction of lifetime after which particles shrink
)

// RGB is a simulation-side color sample. The renderer maps it to whatever
// the terminal can show; the simulation only samples and stores it.
type RGB struct {
	R, G, B uint8
}

// Range is a half-open sampling interval for float properties.
type Range struct {
	Min, Max float64
}

// IntRange is an inclusive sampling interval for integer properties.
type IntRange struct {
	Min, Max int
}

// ColorRange bounds each RGB channel independently.
type ColorRange struct {
	R, G, B IntRange
}

// Particle is a short-lived visual cue. Particles age independently and are
// culled by the pool once their lifetime elapses.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Color    RGB
	Size     float64
	Age      int
	Lifetime int
}

// update advances position, applies gravity, ages the particle, and shrinks
// it once past the fade threshold.
func (p *Particle) update() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += particleGravity
	p.Age++
	if float64(p.Age) > float64(p.Lifetime)*fadeFraction {
		p.Size -= particleShrink
		if p.Size < 1 {
			p.Size = 1
		}
	}
}

// expired reports whether the particle should be removed from the pool.
func (p *Particle) expired() bool {
	return p.Age >= p.Lifetime
}

// Alpha returns the implied opacity in [0, 1], derived from age and lifetime.
func (p *Particle) Alpha() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	a := 1 - float64(p.Age)/float64(p.Lifetime)
	if a < 0 {
		return 0
	}
	return a
}

// ParticlePool manages every live particle. It owns its own RNG so that
// effect sampling never perturbs the spawner's obstacle stream.
type ParticlePool struct {
	particles []Particle
	rng       *rand.Rand
}

// NewParticlePool creates an empty pool with a deterministic RNG.
func NewParticlePool(seed int64) *ParticlePool {
	return &ParticlePool{
		particles: make([]Particle, 0, 64),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Reset removes all particles and reseeds the RNG.
func (pp *ParticlePool) Reset(seed int64) {
	pp.particles = pp.particles[:0]
	pp.rng = rand.New(rand.NewSource(seed))
}

// SpawnBurst creates count particles at (x, y) with independently sampled
// properties within the given ranges.
func (pp *ParticlePool) SpawnBurst(x, y float64, count int, color ColorRange, speedX, speedY, size Range, lifetime IntRange) {
	for i := 0; i < count; i++ {
		pp.particles = append(pp.particles, Particle{
			X: x,
			Y: y,
			Color: RGB{
				R: uint8(pp.intIn(color.R)),
				G: uint8(pp.intIn(color.G)),
				B: uint8(pp.intIn(color.B)),
			},
			VX:       pp.uniform(speedX),
			VY:       pp.uniform(speedY),
			Size:     pp.uniform(size),
			Lifetime: pp.intIn(lifetime),
		})
	}
}

// Update advances every particle and removes the expired ones.
func (pp *ParticlePool) Update() {
	alive := pp.particles[:0]
	for i := range pp.particles {
		pp.particles[i].update()
		if !pp.particles[i].expired() {
			alive = append(alive, pp.particles[i])
		}
	}
	pp.particles = alive
}

// Particles returns the live particle list. Read-only for the renderer.
func (pp *ParticlePool) Particles() []Particle {
	return pp.particles
}

// Len returns the number of live particles.
func (pp *ParticlePool) Len() int {
	return len(pp.particles)
}

func (pp *ParticlePool) uniform(r Range) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + pp.rng.Float64()*(r.Max-r.Min)
}

func (pp *ParticlePool) intIn(r IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + pp.rng.Intn(r.Max-r.Min+1)
}

// Preset bursts. Ranges follow the feel of the reference effects: dust is
// light tan spraying up, impacts explode orange in all directions, rewards
// sparkle gold, explosions are short and hot.

// JumpBurst emits dust at the actor's feet on takeoff.
func (pp *ParticlePool) JumpBurst(x, y float64) {
	pp.SpawnBurst(x, y, 15,
		ColorRange{R: IntRange{200, 230}, G: IntRange{200, 230}, B: IntRange{180, 220}},
		Range{-2, 2}, Range{-3, -1},
		Range{2, 5}, IntRange{20, 40})
}

// DoubleJumpBurst emits a brighter flash for the mid-air jump.
func (pp *ParticlePool) DoubleJumpBurst(x, y float64) {
	pp.SpawnBurst(x, y, 12,
		ColorRange{R: IntRange{220, 255}, G: IntRange{220, 255}, B: IntRange{240, 255}},
		Range{-3, 3}, Range{-2, 1},
		Range{2, 4}, IntRange{15, 30})
}

// SlideBurst emits low dust trailing a slide.
func (pp *ParticlePool) SlideBurst(x, y float64) {
	pp.SpawnBurst(x, y, 12,
		ColorRange{R: IntRange{190, 220}, G: IntRange{180, 210}, B: IntRange{160, 200}},
		Range{1, 4}, Range{-1, 0},
		Range{1, 3}, IntRange{15, 30})
}

// ImpactBurst emits the death explosion.
func (pp *ParticlePool) ImpactBurst(x, y float64) {
	pp.SpawnBurst(x, y, 30,
		ColorRange{R: IntRange{200, 255}, G: IntRange{50, 150}, B: IntRange{50, 100}},
		Range{-3, 3}, Range{-5, 1},
		Range{3, 7}, IntRange{30, 60})
}

// RewardBurst emits golden sparkles when a power-up is collected.
func (pp *ParticlePool) RewardBurst(x, y float64) {
	pp.SpawnBurst(x, y, 20,
		ColorRange{R: IntRange{220, 255}, G: IntRange{180, 230}, B: IntRange{40, 90}},
		Range{-2.5, 2.5}, Range{-3, 0},
		Range{2, 5}, IntRange{20, 45})
}

// ExplosionBurst emits debris when a projectile destroys an obstacle.
func (pp *ParticlePool) ExplosionBurst(x, y float64) {
	pp.SpawnBurst(x, y, 24,
		ColorRange{R: IntRange{220, 255}, G: IntRange{120, 200}, B: IntRange{30, 80}},
		Range{-4, 4}, Range{-4, 2},
		Range{2, 6}, IntRange{20, 40})
}

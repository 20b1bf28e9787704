package runner

import (
	"github.com/feliform/catdash/internal/config"
	"github.com/feliform/catdash/internal/core"
)

// ActorState is the actor's current animation/logic state.
type ActorState int

const (
	StateIdle ActorState = iota
	StateRun
	StateJump
	StateFall
	StateSlide
	StateDead
)

func (s ActorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	case StateJump:
		return "jump"
	case StateFall:
		return "fall"
	case StateSlide:
		return "slide"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// animationFrames is the frame count per state. Looping states wrap; dead
// holds its final frame.
var animationFrames = map[ActorState]int{
	StateIdle:  10,
	StateRun:   12,
	StateJump:  8,
	StateFall:  8,
	StateSlide: 10,
	StateDead:  10,
}

// Actor is the player character. Y is the bottom edge (feet) in world units,
// so ground contact and the slide hitbox both anchor there.
type Actor struct {
	cfg       *config.Config
	particles *ParticlePool

	X, Y float64
	velY float64

	state     ActorState
	frame     int
	animTimer int

	onGround      bool
	slideTimer    int
	slideCooldown int

	jumpCharges int
	shotCharges int
}

// NewActor places the actor on the ground at its configured column.
func NewActor(cfg *config.Config, particles *ParticlePool) *Actor {
	return &Actor{
		cfg:       cfg,
		particles: particles,
		X:         cfg.Actor.X,
		Y:         cfg.World.GroundLevel,
		state:     StateIdle,
		onGround:  true,
	}
}

// Jump launches off the ground, or consumes a stored charge mid-air for a
// slightly weaker second jump. Ignored when dead.
func (a *Actor) Jump() {
	if a.state == StateDead {
		return
	}
	switch {
	case a.onGround:
		a.velY = a.cfg.Physics.JumpForce
		a.onGround = false
		a.slideTimer = 0
		a.setState(StateJump)
		a.particles.JumpBurst(a.centerX(), a.Y)
	case a.jumpCharges > 0:
		a.jumpCharges--
		a.velY = a.cfg.Physics.JumpForce * a.cfg.Physics.DoubleJumpFactor
		a.restartState(StateJump)
		a.particles.DoubleJumpBurst(a.centerX(), a.Y)
	}
}

// Slide ducks under airborne obstacles. Requires being grounded, not already
// sliding, and the cooldown to have expired; otherwise it is a no-op. The
// cooldown starts counting from the beginning of the slide.
func (a *Actor) Slide() {
	if a.state == StateDead || !a.onGround {
		return
	}
	if a.slideTimer > 0 || a.slideCooldown > 0 {
		return
	}
	a.slideTimer = a.cfg.Actor.SlideDuration
	a.slideCooldown = a.cfg.Actor.SlideCooldown
	a.setState(StateSlide)
	a.particles.SlideBurst(a.centerX(), a.Y)
}

// Shoot consumes one stored shot charge. Returns whether a projectile should
// be fired.
func (a *Actor) Shoot() bool {
	if a.state == StateDead || a.shotCharges == 0 {
		return false
	}
	a.shotCharges--
	return true
}

// Die puts the actor into the terminal dead state with an upward bounce.
// Further calls are ignored.
func (a *Actor) Die() {
	if a.state == StateDead {
		return
	}
	a.slideTimer = 0
	a.velY = a.cfg.Physics.DeathBounce
	a.onGround = false
	a.setState(StateDead)
	a.particles.ImpactBurst(a.centerX(), a.Y-a.cfg.Actor.Height/2)
}

// AddJumpCharge stores one extra mid-air jump.
func (a *Actor) AddJumpCharge() { a.jumpCharges++ }

// AddShotCharge stores one projectile shot.
func (a *Actor) AddShotCharge() { a.shotCharges++ }

// Update advances one tick of physics and animation. When dead the actor
// only falls: the ground clamp is skipped so it drops off the bottom.
func (a *Actor) Update() {
	if a.state == StateDead {
		a.velY += a.cfg.Physics.Gravity
		a.Y += a.velY
		a.advanceAnimation()
		return
	}

	if a.slideCooldown > 0 {
		a.slideCooldown--
	}
	if a.slideTimer > 0 {
		a.slideTimer--
		if a.slideTimer == 0 {
			a.setState(StateRun)
		}
	}

	if !a.onGround {
		a.velY += a.cfg.Physics.Gravity
		if a.velY > 0 && a.state == StateJump {
			a.setState(StateFall)
		}
	}

	a.Y += a.velY
	if a.Y >= a.cfg.World.GroundLevel {
		a.Y = a.cfg.World.GroundLevel
		a.velY = 0
		if !a.onGround {
			a.onGround = true
			if a.slideTimer == 0 {
				a.setState(StateRun)
			}
		}
	}

	if a.onGround && a.state == StateIdle {
		a.setState(StateRun)
	}

	a.advanceAnimation()
}

// setState switches state and restarts the animation from frame zero.
// No-op when already in the requested state.
func (a *Actor) setState(s ActorState) {
	if a.state == s {
		return
	}
	a.restartState(s)
}

// restartState restarts the animation even when the state is unchanged.
// The double jump re-enters StateJump mid-rise and must rewind it.
func (a *Actor) restartState(s ActorState) {
	a.state = s
	a.frame = 0
	a.animTimer = 0
}

// advanceAnimation steps the frame counter at the configured cadence.
// Dead holds the last frame instead of looping.
func (a *Actor) advanceAnimation() {
	a.animTimer++
	if a.animTimer < a.cfg.Actor.AnimationSpeed {
		return
	}
	a.animTimer = 0
	frames := animationFrames[a.state]
	if frames <= 0 {
		frames = 1
	}
	if a.state == StateDead {
		if a.frame < frames-1 {
			a.frame++
		}
		return
	}
	a.frame = (a.frame + 1) % frames
}

// Hitbox returns the collision rectangle. Sliding keeps the bottom edge
// fixed and shrinks the height from the top.
func (a *Actor) Hitbox() core.Rect {
	h := a.cfg.Actor.Height
	if a.state == StateSlide {
		h = a.cfg.Actor.SlideHeight
	}
	return core.NewRect(a.X, a.Y-h, a.cfg.Actor.Width, h)
}

func (a *Actor) centerX() float64 { return a.X + a.cfg.Actor.Width/2 }

// State returns the current animation/logic state.
func (a *Actor) State() ActorState { return a.state }

// Frame returns the current animation frame index.
func (a *Actor) Frame() int { return a.frame }

// VelY returns the current vertical velocity.
func (a *Actor) VelY() float64 { return a.velY }

// OnGround reports whether the actor is standing on the ground.
func (a *Actor) OnGround() bool { return a.onGround }

// Sliding reports whether the actor is currently sliding.
func (a *Actor) Sliding() bool { return a.state == StateSlide }

// Dead reports whether the actor has died.
func (a *Actor) Dead() bool { return a.state == StateDead }

// JumpCharges returns the stored mid-air jump count.
func (a *Actor) JumpCharges() int { return a.jumpCharges }

// ShotCharges returns the stored projectile shot count.
func (a *Actor) ShotCharges() int { return a.shotCharges }

package runner

import (
	"testing"

	"github.com/feliform/catdash/internal/config"
)

func newTestActor() (*Actor, *config.Config) {
	cfg := config.DefaultConfig()
	return NewActor(&cfg, NewParticlePool(1)), &cfg
}

func TestJumpFromGround(t *testing.T) {
	a, cfg := newTestActor()

	a.Jump()

	if a.VelY() != cfg.Physics.JumpForce {
		t.Errorf("velY = %v, want %v", a.VelY(), cfg.Physics.JumpForce)
	}
	if a.OnGround() {
		t.Error("actor should be airborne after jump")
	}
	if a.State() != StateJump {
		t.Errorf("state = %v, want jump", a.State())
	}
}

func TestDoubleJumpRequiresCharge(t *testing.T) {
	a, cfg := newTestActor()

	a.Jump()
	a.Update()
	velBefore := a.VelY()

	// No charge stored: the mid-air jump must do nothing.
	a.Jump()
	if a.VelY() != velBefore {
		t.Errorf("jump without charge changed velY: %v -> %v", velBefore, a.VelY())
	}

	a.AddJumpCharge()
	a.Jump()
	want := cfg.Physics.JumpForce * cfg.Physics.DoubleJumpFactor
	if a.VelY() != want {
		t.Errorf("double jump velY = %v, want %v", a.VelY(), want)
	}
	if a.JumpCharges() != 0 {
		t.Errorf("jump charges = %d, want 0", a.JumpCharges())
	}
}

func TestDoubleJumpRestartsJumpAnimation(t *testing.T) {
	a, cfg := newTestActor()
	a.AddJumpCharge()

	a.Jump()
	// Let the jump animation advance a few frames while still rising.
	for i := 0; i < 2*cfg.Actor.AnimationSpeed+1; i++ {
		a.Update()
	}
	if a.State() != StateJump {
		t.Fatalf("state = %v, want jump", a.State())
	}
	if a.Frame() == 0 {
		t.Fatal("jump animation did not advance before the second jump")
	}

	a.Jump()
	if a.Frame() != 0 {
		t.Errorf("double jump frame = %d, want 0", a.Frame())
	}
	if a.State() != StateJump {
		t.Errorf("state = %v, want jump", a.State())
	}
}

func TestGravityBringsActorBackToGround(t *testing.T) {
	a, cfg := newTestActor()

	a.Jump()
	prevVel := a.VelY()
	for i := 0; i < 200 && !a.OnGround(); i++ {
		a.Update()
		if !a.OnGround() && a.VelY() != prevVel+cfg.Physics.Gravity {
			t.Fatalf("tick %d: velY = %v, want %v", i, a.VelY(), prevVel+cfg.Physics.Gravity)
		}
		prevVel = a.VelY()
	}

	if !a.OnGround() {
		t.Fatal("actor never landed")
	}
	if a.Y != cfg.World.GroundLevel {
		t.Errorf("landed at Y = %v, want %v", a.Y, cfg.World.GroundLevel)
	}
	if a.VelY() != 0 {
		t.Errorf("velY after landing = %v, want 0", a.VelY())
	}
}

func TestFallStateWhenVelocityTurnsPositive(t *testing.T) {
	a, _ := newTestActor()

	a.Jump()
	for i := 0; i < 100 && a.VelY() <= 0; i++ {
		a.Update()
	}

	if a.State() != StateFall {
		t.Errorf("state = %v at apex, want fall", a.State())
	}
}

func TestSlideShrinksHitboxKeepingBottomFixed(t *testing.T) {
	a, cfg := newTestActor()
	before := a.Hitbox()

	a.Slide()
	after := a.Hitbox()

	if after.H != cfg.Actor.SlideHeight {
		t.Errorf("slide hitbox height = %v, want %v", after.H, cfg.Actor.SlideHeight)
	}
	if after.Bottom() != before.Bottom() {
		t.Errorf("slide moved bottom edge: %v -> %v", before.Bottom(), after.Bottom())
	}
}

func TestSlideCooldownBlocksRestart(t *testing.T) {
	a, cfg := newTestActor()

	a.Slide()
	timerAfterStart := a.slideTimer

	a.Update()
	// Second call mid-slide must not refill the timer.
	a.Slide()
	if a.slideTimer >= timerAfterStart {
		t.Errorf("slide timer refilled mid-slide: %d", a.slideTimer)
	}

	// Run the slide out, then try again while still inside the cooldown.
	for i := 0; i < cfg.Actor.SlideDuration; i++ {
		a.Update()
	}
	if a.Sliding() {
		t.Fatal("slide did not end after its duration")
	}
	a.Slide()
	if a.Sliding() {
		t.Error("slide restarted during cooldown")
	}

	// Once the cooldown passes, sliding works again.
	for i := 0; i < cfg.Actor.SlideCooldown; i++ {
		a.Update()
	}
	a.Slide()
	if !a.Sliding() {
		t.Error("slide blocked after cooldown expired")
	}
}

func TestSlideIgnoredInAir(t *testing.T) {
	a, _ := newTestActor()

	a.Jump()
	a.Update()
	a.Slide()

	if a.Sliding() {
		t.Error("slide started while airborne")
	}
}

func TestShootConsumesCharge(t *testing.T) {
	a, _ := newTestActor()

	if a.Shoot() {
		t.Error("shoot succeeded without a charge")
	}
	a.AddShotCharge()
	if !a.Shoot() {
		t.Error("shoot failed with a charge stored")
	}
	if a.Shoot() {
		t.Error("shoot succeeded after the charge was spent")
	}
}

func TestDieBouncesThenFallsThroughGround(t *testing.T) {
	a, cfg := newTestActor()

	a.Die()
	if a.VelY() != cfg.Physics.DeathBounce {
		t.Errorf("death bounce velY = %v, want %v", a.VelY(), cfg.Physics.DeathBounce)
	}

	a.Die() // second call must be a no-op
	if a.VelY() != cfg.Physics.DeathBounce {
		t.Errorf("second Die changed velY to %v", a.VelY())
	}

	for i := 0; i < 120; i++ {
		a.Update()
	}
	if a.Y <= cfg.World.GroundLevel {
		t.Errorf("dead actor stopped at Y = %v, should fall past %v", a.Y, cfg.World.GroundLevel)
	}
}

func TestDeadActorIgnoresInput(t *testing.T) {
	a, _ := newTestActor()
	a.AddShotCharge()
	a.Die()

	velBefore := a.VelY()
	a.Jump()
	if a.VelY() != velBefore {
		t.Error("jump accepted while dead")
	}
	a.Slide()
	if a.Sliding() {
		t.Error("slide accepted while dead")
	}
	if a.Shoot() {
		t.Error("shoot accepted while dead")
	}
}

func TestDeadAnimationHoldsLastFrame(t *testing.T) {
	a, cfg := newTestActor()
	a.Die()

	frames := animationFrames[StateDead]
	for i := 0; i < cfg.Actor.AnimationSpeed*frames*3; i++ {
		a.Update()
	}
	if a.Frame() != frames-1 {
		t.Errorf("dead frame = %d, want held at %d", a.Frame(), frames-1)
	}
}

func TestRunAnimationLoops(t *testing.T) {
	a, cfg := newTestActor()

	// Enough ticks to wrap the run cycle at least once.
	for i := 0; i < cfg.Actor.AnimationSpeed*(animationFrames[StateRun]+2); i++ {
		a.Update()
	}
	if a.State() != StateRun {
		t.Fatalf("state = %v, want run", a.State())
	}
	if a.Frame() < 0 || a.Frame() >= animationFrames[StateRun] {
		t.Errorf("run frame %d out of range", a.Frame())
	}
}

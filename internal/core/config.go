package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it for deterministic simulation and the renderer for scaling.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the per-tick summary returned to the platform.
type GameState struct {
	Score     int     // Current score
	HighScore int     // Best score seen, including the persisted one
	Combo     int     // Current combo counter
	Speed     float64 // Current difficulty speed (world px per tick)
	GameOver  bool    // Whether the run has ended
}

// EventKind identifies a notification emitted by a simulation tick.
type EventKind int

const (
	// EventGameOver fires once, on the tick the run ends.
	EventGameOver EventKind = iota
	// EventNewHighScore fires with EventGameOver when the run beat the record.
	EventNewHighScore
	// EventMilestone fires when the score crosses a milestone threshold.
	// Cosmetic trigger only; Value is the new score.
	EventMilestone
	// EventComboCallout fires when the combo counter reaches the callout
	// threshold. Value is the combo count.
	EventComboCallout
	// EventBonus fires when a pass awards more than the base amount.
	// Value is the points awarded.
	EventBonus
)

// Event is a notification for the platform layer (popups, sounds, flashes).
// Events never affect the simulation.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Game is the interface the platform layer drives. The implementation
// contains pure logic with no terminal dependencies; the platform handles
// input mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game. Called once at start and
	// again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/feliform/catdash/internal/core"
	"github.com/feliform/catdash/internal/runner"
	"github.com/feliform/catdash/internal/storage"
)

// popupTTL is how many ticks an event popup stays on screen.
const popupTTL = 75

// popup is a transient callout raised by a simulation event.
type popup struct {
	text string
	ttl  int
}

// Model is the Bubble Tea model driving one Cat Dash session. Pausing and
// muting live here: the simulation itself never sees those actions.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	paused   bool
	muted    bool
	quitting bool

	runStart time.Time
	runSaved bool
	popups   []popup
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catdash",
	})

	// Seed the session high score from storage, best effort.
	if store != nil {
		if hs, err := store.HighScore(game.ID()); err == nil {
			game.SetHighScore(hs)
		} else {
			logger.Warn("could not load high score", "error", err)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		runStart:   time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Pause, mute, and quit are platform
// concerns; everything else lands in the input frame for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		if !m.gameState.GameOver {
			m.paused = !m.paused
		}
	case core.ActionMute:
		m.muted = !m.muted
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize updates the screen buffer. The simulation runs in fixed world
// units, so a resize only changes the projection, never the gameplay.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Fresh seed for the new run.
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.runStart = time.Now()
		m.popups = nil
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.paused {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	for i := range m.popups {
		m.popups[i].ttl--
	}
	alive := m.popups[:0]
	for _, p := range m.popups {
		if p.ttl > 0 {
			alive = append(alive, p)
		}
	}
	m.popups = alive

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents turns simulation events into popups. Muting silences the
// celebratory ones but never the game-over notice.
func (m *Model) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventNewHighScore:
			m.addPopup("NEW HIGH SCORE!")
		case core.EventMilestone:
			if !m.muted {
				m.addPopup(fmt.Sprintf("%d POINTS!", e.Value))
			}
		case core.EventComboCallout:
			if !m.muted {
				m.addPopup(fmt.Sprintf("COMBO x%d!", e.Value))
			}
		case core.EventBonus:
			if !m.muted {
				m.addPopup(fmt.Sprintf("+%d BONUS", e.Value))
			}
		}
	}
}

func (m *Model) addPopup(text string) {
	m.popups = append(m.popups, popup{text: text, ttl: popupTTL})
}

// saveRun persists the finished run in the background. A failed save only
// warns; the session keeps going.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}
	gameID := m.game.ID()
	score := m.gameState.Score
	maxCombo := m.game.MaxCombo()
	duration := int(time.Since(m.runStart).Seconds())

	go func() {
		if _, err := m.store.SaveRun(gameID, score, maxCombo, duration); err != nil {
			m.logger.Warn("could not save run", "error", err)
		}
	}()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".catdash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	// Overlays are drawn into the buffer after the game so the popup text
	// wins over the scene.
	row := 3
	for _, p := range m.popups {
		m.screen.DrawTextCentered(row, p.text)
		row += 2
	}

	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ")
		m.screen.DrawTextCentered(m.screen.Height()/2+1, " Press P to resume ")
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/timeless/internal/config"
	"github.com/vovakirdan/timeless/internal/core"
	"github.com/vovakirdan/timeless/internal/game"
)

// Model is the Bubble Tea model running one world.
type Model struct {
	world     *game.World
	screen    *core.Screen
	raster    Rasterizer
	config    core.RuntimeConfig
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	input     *InputTracker
	gameState core.GameState
	lastTick  time.Time
	runID     string
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for a fresh world.
func NewModel(cfg core.RuntimeConfig, tuning config.TimelessConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	world := game.New(tuning, game.NewRand(cfg.Seed))

	return Model{
		world:     world,
		screen:    core.NewScreen(cfg.ScreenW, viewHeight(cfg.ScreenH)),
		raster:    DefaultRasterizer(),
		config:    cfg,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		input:     NewInputTracker(DefaultHoldWindow),
		gameState: world.State(),
		runID:     uuid.NewString(),
		logger:    logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("run started", "run", m.runID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the actions a key triggers. Quit is honoured at once.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.keyMapper.MapKey(msg) {
		if a == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.input.Press(a, now)
	}
	return m, nil
}

// handleResize resizes the screen buffer. The world is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, viewHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the world by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	distance := m.gameState.Distance
	result := m.world.Step(m.input.Snapshot(now), dt)
	m.gameState = result.State

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if result.Reset != game.ResetNone {
		m.logger.Debug("run reset",
			"run", m.runID,
			"cause", result.Reset,
			"distance", distance,
			"best", result.State.Best,
			"deaths", result.State.Deaths,
		)
		m.runID = uuid.NewString()
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.raster.Draw(m.screen, m.world.RenderList())
	DrawHUD(m.screen, m.gameState)

	return RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// viewHeight leaves the last terminal row for the help footer.
func viewHeight(termH int) int {
	if termH <= 1 {
		return 1
	}
	return termH - 1
}

// State returns the latest run summary.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg core.RuntimeConfig, tuning config.TimelessConfig, logger *log.Logger) error {
	model := NewModel(cfg, tuning, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/gfx"
	"github.com/vovakirdan/kokaton/internal/registry"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// Model is the Bubble Tea model for a play session.
type Model struct {
	game    registry.Game
	cfg     *config.KokatonConfig
	runtime core.RuntimeConfig
	screen  *core.Screen
	cells   *gfx.CellDisplay
	canvas  *gfx.Canvas // full resolution target for screenshots

	keys    KeyMap
	help    help.Model
	tracker *KeyTracker

	logger  *log.Logger
	id      uuid.UUID
	shotDir string

	state    core.GameState
	ending   bool // losing frame is on screen, waiting for the pause to end
	quitting bool
	status   string
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards everything.
func NewModel(game registry.Game, cfg *config.KokatonConfig, rc core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Last row is the footer
	screen := core.NewScreen(rc.ScreenW, max(1, rc.ScreenH-1))

	return Model{
		game:    game,
		cfg:     cfg,
		runtime: rc,
		screen:  screen,
		cells:   gfx.NewCellDisplay(screen, cfg.Viewport.Width, cfg.Viewport.Height),
		canvas:  gfx.NewCanvas(cfg.Viewport.Width, cfg.Viewport.Height, cfg.HUD.FontScale),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		tracker: NewKeyTracker(cfg.Timing.KeyHoldTicks),
		logger:  logger,
		id:      uuid.New(),
		shotDir: defaultScreenshotDir(),
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "kokaton", "screenshots")
	}
	return filepath.Join(home, ".kokaton", "screenshots")
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.logger.Info("session started", "session", m.id, "game", m.game.ID(), "seed", m.runtime.Seed)

	// Start the tick loop
	return tickCmd(m.cfg.Timing.FPS)
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

	case endMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.Action(msg)
	if m.ending {
		// Only quit cuts the defeat pause short
		if a == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.tracker.Press(a)
	return m, nil
}

// handleResize processes window resize events.
// The world keeps its size, only the cell grid sampling it changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ending || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.tracker.Frame())
	m.state = result.State
	for _, e := range result.Events {
		m.logger.Debug(e.Kind.String(), "session", m.id, "x", e.X, "y", e.Y)
	}

	if !m.state.GameOver {
		return m, tickCmd(m.cfg.Timing.FPS)
	}

	m.logger.Info("session ended", "session", m.id, "outcome", m.state.Outcome,
		"score", m.state.Score, "frames", m.state.Tick)

	if m.state.Outcome == core.OutcomeQuit {
		m.quitting = true
		return m, tea.Quit
	}

	m.ending = true
	return m, endAfter(m.cfg.Timing.DefeatPause())
}

// saveScreenshot renders the current frame at full resolution and saves it as PNG.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.status = "screenshot failed"
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))

	if err := m.canvas.SavePNG(path); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.cells)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	line := footerStyle.Render(fmt.Sprintf("%s  score %d", m.game.Title(), m.state.Score))
	switch {
	case m.ending:
		line += "  " + statusStyle.Render("GAME OVER")
	case m.status != "":
		line += "  " + statusStyle.Render(m.status)
	default:
		line += "  " + m.help.View(m.keys)
	}
	return line
}

// Run starts the Bubble Tea program for a play session.
func Run(game registry.Game, cfg *config.KokatonConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, rc, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

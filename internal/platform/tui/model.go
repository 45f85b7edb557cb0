package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ya-breaker/internal/core"
	"github.com/vovakirdan/ya-breaker/internal/games/yabreaker"
)

// Rows reserved outside the play area.
const (
	hudRows    = 1
	footerRows = 1
)

// Muter is a sound player whose output can be switched off.
type Muter interface {
	ToggleMute() bool
}

// Options configure the terminal frontend.
type Options struct {
	Config  core.RuntimeConfig
	Sound   core.SoundPlayer // nil plays nothing
	Sprites SpriteSource     // nil draws no sprites
	Logger  *log.Logger
}

// Model is the Bubble Tea model that drives the game in a terminal.
type Model struct {
	game     *yabreaker.Game
	raster   *Raster
	config   core.RuntimeConfig
	sound    core.SoundPlayer
	logger   *log.Logger
	keys     KeyMap
	held     *HeldKeys
	help     help.Model
	width    int
	height   int
	muted    bool
	frames   int
	quitting bool
}

// NewModel creates a Bubble Tea model for the game.
func NewModel(game *yabreaker.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	sound := opts.Sound
	if sound == nil {
		sound = core.NopPlayer{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	w, h := game.SurfaceSize()
	screen := core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH))

	return Model{
		game:   game,
		raster: NewRaster(screen, opts.Sprites, w, h),
		config: cfg,
		sound:  sound,
		logger: logger,
		keys:   DefaultKeyMap(),
		held:   NewHeldKeys(cfg.TickRate / 2),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		muted:  cfg.Muted,
	}
}

func playRows(total int) int {
	return max(total-hudRows-footerRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		m.held.Press(action)

	case core.ActionRetry:
		// The retry control only exists while the interstitial is up.
		if m.game.InterstitialVisible() {
			m.logEvents(m.game.Retry())
			m.held.Release()
		}

	case core.ActionMute:
		if muter, ok := m.sound.(Muter); ok {
			m.muted = muter.ToggleMute()
			m.logger.Debug("sound toggled", "muted", m.muted)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The simulation keeps its own
// coordinates, so only the raster changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.raster.Screen().Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frames++
	m.raster.Elapsed = time.Duration(m.frames) * time.Second / time.Duration(m.config.TickRate)

	events := m.game.Frame(m.raster, m.held.Frame())
	yabreaker.PlaySounds(m.sound, events)
	m.logEvents(events)

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []yabreaker.Event) {
	for _, e := range events {
		switch e.Kind {
		case yabreaker.EventInterstitialShown, yabreaker.EventInterstitialHidden:
			m.logger.Info(e.Kind.String(), "fails", e.Fails, "tick", e.Tick)
		case yabreaker.EventBallLost:
			m.logger.Debug(e.Kind.String(), "fails", e.Fails, "tick", e.Tick)
		}
	}
}

var (
	hudStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	mutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("208")).
		Padding(1, 4).
		Align(lipgloss.Center)

	panelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208"))

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
)

// View renders the HUD, the board or the interstitial, and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.game.State()
	hud := hudStyle.Render(fmt.Sprintf("%s  fails: %d  blocks: %d", m.game.Title(), st.Fails, st.BlocksLeft))
	if m.muted {
		hud += mutedStyle.Render("  [muted]")
	}

	var body string
	if m.game.InterstitialVisible() {
		body = m.interstitialView(st)
	} else {
		body = RenderScreen(m.raster.Screen())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		hud,
		body,
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// interstitialView renders the gate panel centered in the play area.
func (m Model) interstitialView(st yabreaker.State) string {
	panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		panelTitleStyle.Render("Take a break"),
		"",
		fmt.Sprintf("%d balls lost so far", st.Fails),
		"",
		fmt.Sprintf("press %s to retry", m.keys.Retry.Help().Key),
	))

	return lipgloss.Place(m.width, playRows(m.height), lipgloss.Center, lipgloss.Center, panel)
}

// Run starts the Bubble Tea program for the game.
func Run(game *yabreaker.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

var _ help.KeyMap = KeyMap{}

package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinorun/internal/audio"
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/sim"
	"github.com/vovakirdan/dinorun/internal/storage"
)

// Deps are the optional collaborators for a game model. Any of them may be
// nil; the game plays without persistence, sound or logging.
type Deps struct {
	Store  *storage.Store
	Slot   *storage.SaveSlot
	Sound  *audio.Player
	Logger *log.Logger
}

// Model is the Bubble Tea model driving one simulation session.
type Model struct {
	session  *sim.Session
	settings sim.Settings
	rng      *rand.Rand
	tracer   sim.Tracer
	screen   *core.Screen
	keys     *KeyMapper
	deps     Deps
	config   core.RuntimeConfig
	input    core.InputFrame
	snapshot sim.Snapshot
	quitting bool
	saved    bool // run already persisted for the current game over
}

// NewModel creates a model for the given runtime and session settings.
// The RNG is seeded once and carried across restarts so a whole sitting
// replays from one seed.
func NewModel(cfg core.RuntimeConfig, settings sim.Settings, deps Deps) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	tracer := sim.NopTracer
	if deps.Logger != nil {
		logger := deps.Logger
		tracer = sim.TracerFunc(func(format string, args ...any) {
			logger.Debugf(format, args...)
		})
	}

	return Model{
		session:  sim.NewSession(settings, rng, tracer),
		settings: settings,
		rng:      rng,
		tracer:   tracer,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     NewKeyMapper(),
		deps:     deps,
		config:   cfg,
		input:    core.NewInputFrame(),
	}
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

// handleKey accumulates edge-triggered input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adjusts the render surface. The simulation field is fixed,
// so a resize never disturbs a run in progress.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.session.Frame(m.input)
	m.input.Clear()

	for _, ev := range result.Events {
		m.handleEvent(ev, result)
	}

	if result.State == sim.StateRestart {
		// A restart is terminal for the session: build a fresh one from the
		// same settings with the best score carried forward.
		m.session = sim.NewSession(m.settings, m.rng, m.tracer)
		m.saved = false
	}

	m.snapshot = m.session.Snapshot()
	return m, tickCmd(m.config.TickRate)
}

// handleEvent reacts to one-shot simulation events: audio cues plus the
// game over persistence.
func (m *Model) handleEvent(ev sim.Event, result sim.Result) {
	switch ev {
	case sim.EventJump:
		if m.deps.Sound != nil {
			m.deps.Sound.Jump()
		}
	case sim.EventLevelUp:
		if m.deps.Sound != nil {
			m.deps.Sound.LevelUp()
		}
	case sim.EventGameOver:
		if m.deps.Sound != nil {
			m.deps.Sound.GameOver()
		}
		m.persistRun(result.Score)
	}
}

// persistRun records the finished run, best-effort. Storage failures are
// logged and swallowed; losing a score never interrupts play.
func (m *Model) persistRun(score uint32) {
	if m.saved {
		return
	}
	m.saved = true

	snap := m.session.Snapshot()
	if m.deps.Store != nil && score > 0 {
		if _, err := m.deps.Store.SaveRun(int(score), int(snap.Frame), snap.SpeedLevel); err != nil && m.deps.Logger != nil {
			m.deps.Logger.Warn("could not save run", "error", err)
		}
	}

	if score > m.settings.HighScore {
		m.settings.HighScore = score
		if m.deps.Slot != nil {
			if err := m.deps.Slot.SetHighScore(score); err != nil && m.deps.Logger != nil {
				m.deps.Logger.Warn("could not write save slot", "error", err)
			}
		}
	}
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawGame(m.screen, m.snapshot, m.settings.AnimationIntervalFrames)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg core.RuntimeConfig, settings sim.Settings, deps Deps) error {
	p := tea.NewProgram(
		NewModel(cfg, settings, deps),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

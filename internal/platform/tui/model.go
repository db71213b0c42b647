package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravswarm/internal/canvas"
	"github.com/vovakirdan/gravswarm/internal/registry"
	"github.com/vovakirdan/gravswarm/internal/scenario"
	"github.com/vovakirdan/gravswarm/internal/sim"
	"github.com/vovakirdan/gravswarm/internal/storage"
)

// ViewConfig contains the runtime parameters for a live view session.
type ViewConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means use current time
	Workers  int   // Worker count for the parallel strategy
}

// Model is the Bubble Tea model for the live simulation view.
type Model struct {
	scenarioID string
	scn        scenario.Scenario
	cfg        sim.Config
	world      *sim.World
	strategy   sim.Strategy

	screen *canvas.Screen
	keys   keyMap
	help   help.Model
	store  *storage.Store
	view   ViewConfig

	paused   bool
	quitting bool
	runSaved bool
	started  time.Time
}

// NewModel creates a new Bubble Tea model for the given scenario.
func NewModel(scenarioID string, scn scenario.Scenario, strategy sim.Strategy, store *storage.Store, view ViewConfig) Model {
	// Use time-based seed if not specified
	if view.Seed == 0 {
		view.Seed = time.Now().UnixNano()
	}
	if view.TickRate <= 0 {
		view.TickRate = scn.Run.TickRate
	}
	if view.ScreenW < 2 {
		view.ScreenW = 80
	}
	if view.ScreenH < 4 {
		view.ScreenH = 24
	}

	cfg := scn.SimConfig()
	m := Model{
		scenarioID: scenarioID,
		scn:        scn,
		cfg:        cfg,
		world:      sim.NewWorld(cfg, rand.New(rand.NewSource(view.Seed))),
		strategy:   strategy,
		screen:     canvas.NewScreen(view.ScreenW, view.ScreenH-1),
		keys:       defaultKeyMap(),
		help:       help.New(),
		store:      store,
		view:       view,
		started:    time.Now(),
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.view.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		if msg.Width < 2 || msg.Height < 4 {
			return m, nil
		}
		m.view.ScreenW = msg.Width
		m.view.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, keys.StepOnce):
		if m.paused {
			m.strategy.Tick(m.world, m.dt(), &m.cfg)
		}

	case key.Matches(msg, keys.Restart):
		m.view.Seed = time.Now().UnixNano()
		m.world = sim.NewWorld(m.cfg, rand.New(rand.NewSource(m.view.Seed)))
		m.started = time.Now()
		m.runSaved = false

	case key.Matches(msg, keys.Strategy):
		m.strategy = m.nextStrategy()

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.strategy.Tick(m.world, m.dt(), &m.cfg)
	}
	return m, tickCmd(m.view.TickRate)
}

// dt returns the fixed per-frame time step.
func (m Model) dt() float64 {
	return 1.0 / float64(m.view.TickRate)
}

// nextStrategy cycles to the next registered strategy.
func (m Model) nextStrategy() sim.Strategy {
	infos := registry.List()
	for i, info := range infos {
		if info.ID == m.strategy.ID() {
			next := infos[(i+1)%len(infos)].ID
			s, err := registry.Create(next, registry.Options{Workers: m.view.Workers})
			if err != nil {
				return m.strategy
			}
			return s
		}
	}
	return m.strategy
}

// saveRun records the session in the run database. Best-effort: viewing
// continues to work without storage.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved || m.world.Tick == 0 {
		return
	}
	//nolint:errcheck // Best-effort save on exit
	m.store.SaveRun(storage.RunRecord{
		Scenario:   m.scenarioID,
		Strategy:   m.strategy.ID(),
		Ships:      m.cfg.ShipCount,
		Planets:    m.cfg.PlanetCount,
		Ticks:      int(m.world.Tick),
		Dt:         m.dt(),
		Seed:       m.view.Seed,
		DurationMS: time.Since(m.started).Milliseconds(),
		Checksum:   fmt.Sprintf("%016x", m.world.Snapshot().Hash()),
	})
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.world, m.cfg.AreaSize)

	status := fmt.Sprintf(" %s | %s | tick %d | ships %d | planets %d",
		m.scenarioID, m.strategy.ID(), m.world.Tick, m.cfg.ShipCount, m.cfg.PlanetCount)
	if m.paused {
		status += " | PAUSED"
	}
	m.screen.DrawText(0, 0, status, canvas.ColorBrightWhite)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a live view.
func Run(scenarioID string, scn scenario.Scenario, strategy sim.Strategy, store *storage.Store, view ViewConfig) error {
	model := NewModel(scenarioID, scn, strategy, store, view)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

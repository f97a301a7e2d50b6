package tui

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/game"
	"github.com/alexkorep-games/omega-void-sub000/internal/quest"
	"github.com/alexkorep-games/omega-void-sub000/internal/storage"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

// maxFrameMs caps a frame's wall-clock delta. A suspended terminal must not
// turn into one giant simulation step.
const maxFrameMs = 100.0

// Model is the Bubble Tea model for a game session.
type Model struct {
	cfg   config.Config
	rt    core.RuntimeConfig
	world *world.Manager
	state *game.State
	rec   *quest.Recorder

	store *storage.Store
	slot  int
	seed  int64

	screen   *core.Screen
	keys     *KeyMapper
	dockKeys DockedKeyMap
	help     help.Model
	market   table.Model

	// Held input. Terminals report no key-up, so presses arm countdowns.
	holdVec  core.Vec2
	holdLeft int
	fireLeft int
	undock   bool

	navIdx int

	start    time.Time
	lastTick time.Time

	status    string
	wasDocked bool
	quitting  bool
}

// NewModel creates a session model. A non-nil resume slot restores a saved
// game; otherwise a fresh game starts with the runtime seed.
func NewModel(cfg config.Config, store *storage.Store, rt core.RuntimeConfig, slot int, resume *storage.SaveSlot) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	seed := rt.Seed
	if resume != nil {
		seed = resume.Seed
	}

	w := world.New(seed, cfg.World)
	viewW := float64(rt.ScreenW) * worldPerCharX
	viewH := float64(rt.ScreenH) * worldPerCharY

	var st *game.State
	if resume != nil {
		st = game.RestoreState(cfg, resume, w, viewW, viewH)
	} else {
		st = game.NewState(cfg, seed, viewW, viewH)
	}

	now := time.Now()
	return Model{
		cfg:      cfg,
		rt:       rt,
		world:    w,
		state:    st,
		rec:      quest.NewRecorder(),
		store:    store,
		slot:     slot,
		seed:     seed,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:     NewKeyMapper(),
		dockKeys: DefaultDockedKeyMap(),
		help:     help.New(),
		start:    now,
		lastTick: now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input for the current view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.save()
		return m, nil
	}

	if m.state.View == game.ViewDocked {
		return m.handleDockedKey(msg)
	}

	if m.keys.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	if mv, ok := m.keys.MoveDelta(msg); ok {
		m.holdVec = mv
		m.holdLeft = holdFrames
		return m, nil
	}
	if m.keys.IsFire(msg) {
		m.fireLeft = holdFrames
		return m, nil
	}
	if msg.String() == "n" {
		m.cycleNavTarget()
		return m, nil
	}
	return m, nil
}

// handleResize adjusts the render buffer and the simulation viewport. The
// world state survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rt.ScreenW = msg.Width
	m.rt.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.state.ViewW = float64(msg.Width) * worldPerCharX
	m.state.ViewH = float64(msg.Height) * worldPerCharY
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	dtMs := float64(now.Sub(m.lastTick).Milliseconds())
	if dtMs <= 0 || dtMs > maxFrameMs {
		dtMs = 1000.0 / float64(m.rt.TickRate)
	}
	m.lastTick = now
	nowMs := float64(now.Sub(m.start).Milliseconds())

	var in core.InputFrame
	if m.holdLeft > 0 {
		m.holdLeft--
		in.MoveX, in.MoveY = m.holdVec.X, m.holdVec.Y
	}
	if m.fireLeft > 0 {
		m.fireLeft--
		in.Firing = true
	}
	in.Undock = m.undock
	m.undock = false

	m.state = game.Step(m.cfg, m.state, dtMs, nowMs, in, m.world, m.rec, m.rec.Score())

	docked := m.state.View == game.ViewDocked
	if docked && !m.wasDocked {
		m.market = newMarketTable(m.state, m.rt.ScreenH)
		m.status = ""
	}
	m.wasDocked = docked

	return m, tickCmd(m.rt.TickRate)
}

// cycleNavTarget steps the nav indicator through the beacons and the
// discovered stations.
func (m *Model) cycleNavTarget() {
	var targets []string
	for _, b := range m.world.Beacons() {
		targets = append(targets, b.ID)
	}
	discovered := make([]string, 0, len(m.state.Discovered))
	for id := range m.state.Discovered {
		discovered = append(discovered, id)
	}
	sort.Strings(discovered)
	targets = append(targets, discovered...)
	if len(targets) == 0 {
		return
	}

	m.navIdx = (m.navIdx + 1) % (len(targets) + 1)
	if m.navIdx == len(targets) {
		m.state.SetNavTarget("", m.world)
		return
	}
	m.state.SetNavTarget(targets[m.navIdx], m.world)
}

// save persists the current game into the model's slot.
func (m *Model) save() {
	if m.store == nil {
		m.status = "no save database"
		return
	}
	blob, err := json.Marshal(m.rec.Events)
	if err != nil {
		blob = nil
	}
	if err := m.store.Save(m.state.ToSaveSlot(m.slot, m.seed, m.world, blob)); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved"
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state.View == game.ViewDocked {
		return m.dockedView()
	}

	nowMs := float64(m.lastTick.Sub(m.start).Milliseconds())
	DrawFrame(m.screen, m.state, nowMs, m.rec.Score(), m.status)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.Config, store *storage.Store, rt core.RuntimeConfig, slot int, resume *storage.SaveSlot) error {
	p := tea.NewProgram(
		NewModel(cfg, store, rt, slot, resume),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// Package game is the simulation core: per-frame state, the collision and
// interaction resolver, the view state machine, and the step function that
// ties them together. The package is pure computation; drivers (TUI, SSH,
// tools) call Step once per frame and render whatever comes back.
package game

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/entity"
	"github.com/alexkorep-games/omega-void-sub000/internal/market"
	"github.com/alexkorep-games/omega-void-sub000/internal/rng"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

// View is the top-level mode of the simulation.
type View uint8

const (
	ViewFlying View = iota
	ViewDocking
	ViewDocked
	ViewUndocking
	ViewDestroyed
	ViewWon
)

// String returns a human-readable view name.
func (v View) String() string {
	switch v {
	case ViewFlying:
		return "flying"
	case ViewDocking:
		return "docking"
	case ViewDocked:
		return "docked"
	case ViewUndocking:
		return "undocking"
	case ViewDestroyed:
		return "destroyed"
	case ViewWon:
		return "won"
	default:
		return "unknown"
	}
}

// AnimKind tags the modal transition animation in flight, if any.
type AnimKind uint8

const (
	AnimNone AnimKind = iota
	AnimDocking
	AnimUndocking
)

// AnimationState tracks a modal transition animation. Kind is AnimNone
// exactly when no transition is animating; the state machine fires the
// moment Progress reaches Duration and resets Kind in the same update.
type AnimationState struct {
	Kind     AnimKind
	Progress float64 // elapsed ms
	Duration float64 // total ms
}

// Done reports whether the animation has run its course. Oversized frame
// deltas may complete an animation in a single step; that is tolerated.
func (a AnimationState) Done() bool {
	return a.Kind != AnimNone && a.Progress >= a.Duration
}

// State is the aggregate simulation state for one frame. Hot fields are
// rebuilt every frame; cold fields change only on discrete events (dock,
// trade, beacon activation) and are shared between frames copy-on-write.
type State struct {
	// Hot: mutated every frame.
	Player      entity.Player
	Enemies     []entity.Enemy
	Projectiles []entity.Projectile
	Visible     []world.Object // buffered-viewport cache for this frame
	Camera      core.Vec2      // top-left of the viewport in world space
	Bursts      []Burst

	// Cold: mutated by discrete events.
	View             View
	Anim             AnimationState
	DockingStationID string
	LastDockedID     string
	Discovered       map[string]bool
	KnownPrices      map[string]map[string]int // stationID -> commodity -> price
	KnownQuantities  map[string]map[string]int
	Cargo            map[string]int // commodity -> quantity held
	Cash             int64
	Upgrades         map[string]int // "cargo_hold", "shield" -> level

	// DockedMarket is the live market of the station currently docked at,
	// nil while not docked. Known tables persist; this does not.
	DockedMarket *market.Table

	// Navigation.
	NavTargetID string
	NavBearing  float64 // radians toward the nav target, valid if NavSet
	NavSet      bool

	// Respawn countdown, ms. Positive only while destroyed.
	RespawnTimerMs float64

	// Viewport extent in world units, fixed at construction.
	ViewW, ViewH float64

	// Internals.
	Tick         uint64
	FireCooldown int
	SpawnTicker  int
	nextID       int64
	rand         *rng.Gen
	logger       *log.Logger
}

// SetLogger attaches a logger for recovery warnings. The logger is carried
// across frames; nil (the default) keeps the core silent.
func (s *State) SetLogger(l *log.Logger) {
	s.logger = l
}

// Upgrade keys.
const (
	UpgradeCargoHold = "cargo_hold"
	UpgradeShield    = "shield"
)

const baseCargoCapacity = 20

// NewState creates the initial state for a fresh game.
func NewState(cfg config.Config, seed int64, viewW, viewH float64) *State {
	s := &State{
		View:            ViewFlying,
		Discovered:      make(map[string]bool),
		KnownPrices:     make(map[string]map[string]int),
		KnownQuantities: make(map[string]map[string]int),
		Cargo:           make(map[string]int),
		Upgrades:        make(map[string]int),
		Cash:            150,
		ViewW:           viewW,
		ViewH:           viewH,
		rand:            rng.New(seed ^ 0x5D21),
	}
	s.Player = newPlayer(cfg, core.Vec2{})
	return s
}

// newPlayer constructs a player at pos with full shield for the current
// shield upgrade level.
func newPlayer(cfg config.Config, pos core.Vec2) entity.Player {
	return entity.Player{
		Pos:       pos,
		Radius:    cfg.Physics.PlayerRadius,
		Shield:    cfg.Combat.ShieldMax,
		ShieldMax: cfg.Combat.ShieldMax,
	}
}

// ShieldMaxFor returns the shield ceiling for the state's upgrade level.
func (s *State) ShieldMaxFor(cfg config.Config) float64 {
	return cfg.Combat.ShieldMax * (1 + 0.25*float64(s.Upgrades[UpgradeShield]))
}

// CargoCapacity returns total cargo space for the current upgrade level.
func (s *State) CargoCapacity() int {
	return baseCargoCapacity + 10*s.Upgrades[UpgradeCargoHold]
}

// CargoUsed returns occupied cargo space.
func (s *State) CargoUsed() int {
	used := 0
	for _, q := range s.Cargo {
		used += q
	}
	return used
}

// CargoValue prices the held cargo at catalog base prices. Drives the
// dynamic enemy spawn cap: richer holds attract more pirates.
func (s *State) CargoValue() int64 {
	var total int64
	for key, qty := range s.Cargo {
		if c := market.CommodityByKey(key); c != nil {
			total += int64(c.BasePrice) * int64(qty)
		}
	}
	return total
}

// clone produces the next frame's state: a shallow copy with fresh hot
// slices. Cold maps are shared until a discrete event copies the branch it
// mutates.
func (s *State) clone() *State {
	n := *s
	n.Enemies = append([]entity.Enemy(nil), s.Enemies...)
	n.Projectiles = append([]entity.Projectile(nil), s.Projectiles...)
	n.Bursts = append([]Burst(nil), s.Bursts...)
	n.Visible = nil
	return &n
}

// nextEntityID returns a fresh entity ID. IDs are deterministic for a given
// seed and input sequence.
func (s *State) nextEntityID() int64 {
	s.nextID++
	return s.nextID
}

// playerUsable reports whether the player struct carries the runtime fields
// the frame loop depends on. A deserialized or hand-built state can arrive
// without them.
func (s *State) playerUsable() bool {
	p := &s.Player
	return p.Radius > 0 && p.ShieldMax > 0 && !math.IsNaN(p.Pos.X) && !math.IsNaN(p.Pos.Y)
}

// playerRecoverable reports whether a degraded player still has coordinates
// to rebuild from.
func (s *State) playerRecoverable() bool {
	return !math.IsNaN(s.Player.Pos.X) && !math.IsNaN(s.Player.Pos.Y)
}

// copyStringIntMap is the copy-on-write helper for cold map mutations.
func copyStringIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

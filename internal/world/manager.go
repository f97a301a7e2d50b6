package world

import (
	"strconv"
	"strings"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
)

// Manager is the world facade: it memoizes generated cells, overlays the
// fixed station and beacon registries, and answers viewport and ID queries.
//
// The cell cache is append-only for the process lifetime. Cached contents are
// never written back to; time-dependent fields (station rotation, asteroid
// orbit position) are recomputed into copies on every read so all objects
// returned for a frame are consistent with that frame's clock.
type Manager struct {
	cfg     config.WorldConfig
	seed    int64
	cells   map[int64][]Object
	fixed   *FixedRegistry
	beacons *BeaconRegistry
}

// New creates a manager with the default fixed station and beacon sets.
func New(seed int64, cfg config.WorldConfig) *Manager {
	return NewWithRegistries(seed, cfg,
		NewFixedRegistry(DefaultFixedStations()),
		NewBeaconRegistry(DefaultBeacons()))
}

// NewWithRegistries creates a manager with explicit registries. Tests use
// this to author minimal worlds.
func NewWithRegistries(seed int64, cfg config.WorldConfig, fixed *FixedRegistry, beacons *BeaconRegistry) *Manager {
	return &Manager{
		cfg:     cfg,
		seed:    seed,
		cells:   make(map[int64][]Object),
		fixed:   fixed,
		beacons: beacons,
	}
}

// Config returns the generation config the manager was built with.
func (m *Manager) Config() config.WorldConfig {
	return m.cfg
}

// CellAt returns the cell coordinates covering a world position.
func (m *Manager) CellAt(pos core.Vec2) (int64, int64) {
	return int64(floorDiv(pos.X, m.cfg.CellSize)), int64(floorDiv(pos.Y, m.cfg.CellSize))
}

func floorDiv(v, size float64) float64 {
	q := v / size
	f := float64(int64(q))
	if q < 0 && q != f {
		f--
	}
	return f
}

// CellObjects generates or retrieves the objects of one cell.
// The returned slice is cache-owned; callers must not mutate it.
func (m *Manager) CellObjects(cx, cy int64) []Object {
	key := CellKey(cx, cy)
	if objs, ok := m.cells[key]; ok {
		return objs
	}
	objs := generateCell(cx, cy, m.seed, m.cfg, m.fixed)
	m.cells[key] = objs
	return objs
}

// ObjectsInViewport returns every background object visible in the buffered
// viewport at the given time. Results are deduplicated by ID (beacons live
// outside the cell cache and fixed stations can be reached through more than
// one query path) and carry recomputed time-dependent fields.
func (m *Manager) ObjectsInViewport(x, y, w, h, nowMs float64) []Object {
	rect := core.RectF{X: x, Y: y, W: w, H: h}.Expanded(m.cfg.ViewBufferFactor)

	cx0 := int64(floorDiv(rect.X, m.cfg.CellSize))
	cy0 := int64(floorDiv(rect.Y, m.cfg.CellSize))
	cx1 := int64(floorDiv(rect.X+rect.W, m.cfg.CellSize))
	cy1 := int64(floorDiv(rect.Y+rect.H, m.cfg.CellSize))

	seen := make(map[string]bool)
	out := make([]Object, 0, 64)

	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			for _, o := range m.CellObjects(cx, cy) {
				obj := refreshed(o, nowMs)
				if !rect.Contains(obj.Pos.X, obj.Pos.Y) {
					continue
				}
				if seen[obj.ID] {
					continue
				}
				seen[obj.ID] = true
				out = append(out, obj)
			}
		}
	}

	for _, b := range m.beacons.All() {
		if !rect.Contains(b.Pos.X, b.Pos.Y) || seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		out = append(out, b)
	}

	return out
}

// refreshed copies an object with its time-dependent fields recomputed.
func refreshed(o Object, nowMs float64) Object {
	switch o.Kind {
	case KindStation:
		o.Angle = o.RotationAt(nowMs)
	case KindAsteroid:
		o.Pos = o.OrbitPosAt(nowMs)
	}
	return o
}

// StationByID resolves a station: the fixed registry first, then the cell
// parsed out of the procedural ID, generating that cell on demand. Returns
// nil for malformed IDs and for cells that rolled no station.
func (m *Manager) StationByID(id string) *Object {
	if st := m.fixed.ByID(id); st != nil {
		cp := *st
		return &cp
	}
	cx, cy, ok := parseStationID(id)
	if !ok {
		return nil
	}
	for _, o := range m.CellObjects(cx, cy) {
		if o.Kind == KindStation && o.ID == id {
			cp := o
			return &cp
		}
	}
	return nil
}

// parseStationID extracts the embedded cell coordinates from a procedural
// station ID of the form "st_<cx>_<cy>".
func parseStationID(id string) (cx, cy int64, ok bool) {
	parts := strings.Split(id, "_")
	if len(parts) != 3 || parts[0] != "st" {
		return 0, 0, false
	}
	cx, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	cy, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return cx, cy, true
}

// BeaconByID returns the beacon with the given ID, or nil.
// The returned pointer aliases registry state; use SetBeaconActive to mutate.
func (m *Manager) BeaconByID(id string) *Object {
	return m.beacons.ByID(id)
}

// SetBeaconActive flips a beacon's activation state.
func (m *Manager) SetBeaconActive(id string, active bool) bool {
	return m.beacons.SetActive(id, active)
}

// Beacons returns the full beacon set, read-only.
func (m *Manager) Beacons() []Object {
	return m.beacons.All()
}

// EntityRef pairs an entity ID with its position for distance queries.
type EntityRef struct {
	ID  int64
	Pos core.Vec2
}

// EnemiesToDespawn returns the IDs of enemies farther than radius from the
// focus point. Pure squared-distance filter; entities exactly at the radius
// are kept.
func (m *Manager) EnemiesToDespawn(enemies []EntityRef, focus core.Vec2, radius float64) []int64 {
	var ids []int64
	r2 := radius * radius
	for _, e := range enemies {
		if core.Dist2(e.Pos, focus) > r2 {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

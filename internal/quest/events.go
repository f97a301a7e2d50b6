// Package quest defines the one-way event surface between the simulation and
// an external progress tracker. The simulation emits domain events and reads
// back nothing except a single completion score supplied by the caller each
// frame; the quest engine proper lives outside this repository.
package quest

// EventType identifies a domain event.
type EventType string

const (
	EventDocked          EventType = "docked_at_station"
	EventItemAcquired    EventType = "item_acquired"
	EventCreditsChanged  EventType = "credits_changed"
	EventWaypointReached EventType = "waypoint_reached"
	EventShipUpgraded    EventType = "ship_upgraded"
)

// Event is one domain event. Only the fields relevant to its type are set.
type Event struct {
	Type      EventType
	StationID string // docked_at_station
	ItemKey   string // item_acquired
	Quantity  int    // item_acquired
	Credits   int64  // credits_changed: new balance
	BeaconID  string // waypoint_reached
	Upgrade   string // ship_upgraded
	Level     int    // ship_upgraded: new level
}

// Sink receives domain events. Implementations must not call back into the
// simulation.
type Sink interface {
	Emit(Event)
}

// NopSink discards all events. Useful default for tests and tools.
type NopSink struct{}

// Emit implements Sink.
func (NopSink) Emit(Event) {}

// Recorder collects events and derives a simple completion score from them.
// The driver uses it as the external progress tracker.
type Recorder struct {
	Events []Event

	dockedStations map[string]bool
	waypoints      map[string]bool
	upgrades       int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		dockedStations: make(map[string]bool),
		waypoints:      make(map[string]bool),
	}
}

// Emit implements Sink.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
	switch e.Type {
	case EventDocked:
		r.dockedStations[e.StationID] = true
	case EventWaypointReached:
		r.waypoints[e.BeaconID] = true
	case EventShipUpgraded:
		r.upgrades++
	}
}

// Score returns the completion score: distinct stations visited weigh 10,
// waypoints 25, upgrades 15.
func (r *Recorder) Score() int {
	return len(r.dockedStations)*10 + len(r.waypoints)*25 + r.upgrades*15
}

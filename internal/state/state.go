// Package state keeps the thread-safe session state of the scene viewer:
// the latest scene, a short history of computations and an event log.
package state

import (
	"slices"
	"sync"
	"time"

	"github.com/litescript/ls-cosmos/internal/scene"
	"github.com/litescript/ls-cosmos/internal/zoom"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventRegimeChange EventType = "REGIME_CHANGE"
	EventBodyAppeared EventType = "BODY_APPEARED"
	EventBodyVanished EventType = "BODY_VANISHED"
	EventSelection    EventType = "SELECTION"
	EventComputeError EventType = "COMPUTE_ERROR"
)

// Event represents a change between two consecutive scenes.
type Event struct {
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Body      string      `json:"body,omitempty"`
	From      zoom.Regime `json:"from"`
	To        zoom.Regime `json:"to"`
	Detail    string      `json:"detail,omitempty"`
}

// HistoryEntry summarizes one computation.
type HistoryEntry struct {
	Timestamp time.Time
	ZoomLevel float64
	Regime    zoom.Regime
	Bodies    int
	Duration  time.Duration
}

// Manager handles the viewer state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current         scene.Scene
	request         scene.Request
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration

	// Bodies of the previous scene for event detection
	prevBodies map[string]bool

	// History buffer
	history       []HistoryEntry
	maxHistoryLen int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	now func() time.Time
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen int
	MaxEvents     int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen: 60,
		MaxEvents:     50,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	maxHistory := cfg.MaxHistoryLen
	if maxHistory <= 0 {
		maxHistory = 60
	}
	return &Manager{
		maxHistoryLen: maxHistory,
		maxEvents:     maxEvents,
		events:        make([]Event, 0, maxEvents),
		prevBodies:    make(map[string]bool),
		now:           time.Now,
	}
}

// Update records the result of computing req. A failed computation keeps
// the previous scene.
func (m *Manager) Update(req scene.Request, s scene.Scene, d time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.lastCompute = now
	m.lastError = err
	m.computeDuration = d

	if err != nil {
		m.addEvent(Event{Type: EventComputeError, Timestamp: now, Detail: err.Error()})
		return
	}
	if s == nil {
		return
	}

	bodies := scene.Bodies(s)
	m.detectEvents(now, req, s, bodies)

	m.current = s
	m.request = req

	m.history = append(m.history, HistoryEntry{
		Timestamp: now,
		ZoomLevel: req.ZoomLevel,
		Regime:    s.Regime(),
		Bodies:    len(bodies),
		Duration:  d,
	})
	if len(m.history) > m.maxHistoryLen {
		m.history = m.history[1:]
	}

	m.prevBodies = make(map[string]bool, len(bodies))
	for _, b := range bodies {
		m.prevBodies[b.Name] = true
	}
}

// detectEvents compares the new scene with the previous one. Body changes
// are only reported within a regime; crossing regimes replaces every body.
func (m *Manager) detectEvents(now time.Time, req scene.Request, s scene.Scene, bodies []scene.Body) {
	if m.current == nil {
		return
	}

	from, to := m.current.Regime(), s.Regime()
	if from != to {
		m.addEvent(Event{Type: EventRegimeChange, Timestamp: now, From: from, To: to})
	} else {
		names := make(map[string]bool, len(bodies))
		for _, b := range bodies {
			names[b.Name] = true
			if !m.prevBodies[b.Name] {
				m.addEvent(Event{Type: EventBodyAppeared, Timestamp: now, Body: b.Name, From: from, To: to})
			}
		}
		for _, name := range sortedKeys(m.prevBodies) {
			if !names[name] {
				m.addEvent(Event{Type: EventBodyVanished, Timestamp: now, Body: name, From: from, To: to})
			}
		}
	}

	if req.Selected != m.request.Selected && req.Selected != "" {
		m.addEvent(Event{Type: EventSelection, Timestamp: now, Body: req.Selected, From: from, To: to})
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Scene           scene.Scene
	Request         scene.Request
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	AverageDuration time.Duration
	History         []HistoryEntry
	Events          []Event
}

// Snapshot returns a consistent snapshot of current state. The scene is
// shared, not copied; scenes are never modified after computation.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Scene:           m.current,
		Request:         m.request,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		AverageDuration: m.averageDuration(),
		History:         slices.Clone(m.history),
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	if len(m.events) < m.maxEvents {
		return slices.Clone(m.events)
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		result[i] = m.events[(m.eventWriteAt+i)%m.maxEvents]
	}
	return result
}

// averageDuration returns the mean computation time over the history.
// Caller holds m.mu.
func (m *Manager) averageDuration() time.Duration {
	if len(m.history) == 0 {
		return 0
	}
	var total time.Duration
	for _, h := range m.history {
		total += h.Duration
	}
	return total / time.Duration(len(m.history))
}

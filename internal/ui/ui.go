// Package ui provides the terminal scene viewer using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-cosmos/internal/logging"
	"github.com/litescript/ls-cosmos/internal/scene"
	"github.com/litescript/ls-cosmos/internal/state"
	"github.com/litescript/ls-cosmos/internal/version"
	"github.com/litescript/ls-cosmos/internal/zoom"
)

// Computer produces scenes; *scene.Engine satisfies it.
type Computer interface {
	Compute(ctx context.Context, req scene.Request) (scene.Scene, error)
}

// cacheInvalidator is implemented by computers whose oracle caches answers.
type cacheInvalidator interface {
	InvalidateCache()
}

const (
	zoomStep       = 1.0
	panStep        = 20.0 // pixels
	playbackStep   = 24 * time.Hour
	playbackPeriod = 200 * time.Millisecond
	computeTimeout = 10 * time.Second
)

// Msg types for Bubble Tea
type (
	// TickMsg advances playback. Ticks from an earlier play session carry
	// a stale gen and are dropped.
	TickMsg struct {
		Time time.Time
		gen  int
	}

	// sceneComputedMsg carries the result of one computation.
	sceneComputedMsg struct {
		req      scene.Request
		scene    scene.Scene
		duration time.Duration
		err      error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	engine Computer
	state  *state.Manager
	log    *logging.Logger
	now    func() time.Time

	// View state
	req       scene.Request
	observed  time.Time
	playing   bool
	playGen   int
	labelMode LabelMode

	// A computation is in flight; pending means the request changed since
	// it was issued.
	computing bool
	pending   bool

	width  int
	height int
	ready  bool
}

// New creates a new root UI model observing the current time.
func New(engine Computer, stateMgr *state.Manager, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	m := Model{
		engine:    engine,
		state:     stateMgr,
		log:       log,
		now:       time.Now,
		req:       scene.NewRequest(),
		labelMode: LabelSelected,
		computing: true,
	}
	m.observed = m.now().UTC()
	m.req.Timestamp = m.observed.Format(scene.TimestampLayout)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return computeCmd(m.engine, m.req)
}

// Request returns the request the view currently shows.
func (m Model) Request() scene.Request {
	return m.req
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		if !m.playing || msg.gen != m.playGen {
			return m, nil
		}
		m.observed = m.observed.Add(playbackStep)
		m.req.Timestamp = m.observed.Format(scene.TimestampLayout)
		cmd := m.recompute()
		return m, tea.Batch(cmd, tickCmd(m.playGen))

	case sceneComputedMsg:
		m.computing = false
		if msg.err != nil {
			m.log.Warn("compute zoom %.1f: %v", msg.req.ZoomLevel, msg.err)
		}
		m.state.Update(msg.req, msg.scene, msg.duration, msg.err)
		if m.pending {
			m.pending = false
			cmd := m.recompute()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Zoom
	case "+", "=":
		m.req.ZoomLevel = zoom.Clamp(m.req.ZoomLevel + zoomStep)
	case "-", "_":
		m.req.ZoomLevel = zoom.Clamp(m.req.ZoomLevel - zoomStep)
	case "0":
		m.req.ZoomLevel = scene.DefaultZoomLevel

	// Viewport panning moves the content the opposite way
	case "up":
		m.req.OffsetY += panStep
	case "down":
		m.req.OffsetY -= panStep
	case "left":
		m.req.OffsetX += panStep
	case "right":
		m.req.OffsetX -= panStep
	case "c":
		m.req.OffsetX, m.req.OffsetY = 0, 0

	// Selection
	case "tab":
		m.req.Selected = m.cycleSelection(1)
	case "shift+tab":
		m.req.Selected = m.cycleSelection(-1)
	case "esc":
		m.req.Selected = ""
	case "f":
		if !m.centerOnSelected() {
			return m, nil
		}

	// Time
	case "p":
		m.playing = !m.playing
		if m.playing {
			m.playGen++
			return m, tickCmd(m.playGen)
		}
		return m, nil
	case "n":
		if c, ok := m.engine.(cacheInvalidator); ok {
			c.InvalidateCache()
		}
		m.observed = m.now().UTC()
		m.req.Timestamp = m.observed.Format(scene.TimestampLayout)

	case "l":
		m.labelMode = (m.labelMode + 1) % 3
		return m, nil

	default:
		return m, nil
	}
	cmd := m.recompute()
	return m, cmd
}

// recompute issues a computation for the current request, or marks one
// pending if another is in flight.
func (m *Model) recompute() tea.Cmd {
	if m.computing {
		m.pending = true
		return nil
	}
	m.computing = true
	return computeCmd(m.engine, m.req)
}

// cycleSelection steps through the bodies of the current scene. Stepping
// past either end clears the selection.
func (m Model) cycleSelection(step int) string {
	bodies := scene.Bodies(m.state.Snapshot().Scene)
	if len(bodies) == 0 {
		return m.req.Selected
	}

	idx := -1
	for i, b := range bodies {
		if b.Name == m.req.Selected {
			idx = i
			break
		}
	}

	// -1 is "none"; the ring has len(bodies)+1 slots.
	n := len(bodies) + 1
	next := (idx + 1 + step + n) % n
	if next == 0 {
		return ""
	}
	return bodies[next-1].Name
}

// centerOnSelected pans so the selected body lands on the canvas center.
func (m *Model) centerOnSelected() bool {
	if m.req.Selected == "" {
		return false
	}
	for _, b := range scene.Bodies(m.state.Snapshot().Scene) {
		if b.Name == m.req.Selected {
			m.req.OffsetX += scene.Center - b.X
			m.req.OffsetY += scene.Center - b.Y
			return true
		}
	}
	return false
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small for the scene view"
	}

	snap := m.state.Snapshot()

	// one line each for header and footer
	canvasH := m.height - hudLines - 2
	c := newCanvas(m.width, canvasH, m.labelMode)
	if snap.Scene != nil {
		c.draw(snap.Scene)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		c.String(),
		renderHUD(snap, m.labelMode, m.playing),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	return title.Render("  ls-cosmos") + muted.Render(fmt.Sprintf("  Sonnensystem · Sterne · Lokale Gruppe | v%s", version.Version))
}

func (m Model) renderFooter() string {
	return dimStyle.Render("  +/-: zoom | arrows: pan | tab: select | f: center | c: reset pan | p: play | n: now | l: labels | q: quit")
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(playbackPeriod, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}

func computeCmd(engine Computer, req scene.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), computeTimeout)
		defer cancel()

		start := time.Now()
		s, err := engine.Compute(ctx, req)
		return sceneComputedMsg{req: req, scene: s, duration: time.Since(start), err: err}
	}
}

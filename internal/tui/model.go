// Package tui implements the interactive graphos session: a bubbletea
// program owning the graph store, layout engine, and frame renderer, driven
// by keyboard and mouse input.
//
// # Interaction State Machine
//
// The session is always in exactly one [Mode]:
//
//	Idle ──press on node──────────▶ NodeSelected
//	Idle ──press on empty space──▶ Panning ──release──▶ Idle
//	NodeSelected ──drag──────────▶ EdgeDrawing
//	EdgeDrawing ──release on node──▶ NodeSelected (edge created)
//	EdgeDrawing ──release on empty─▶ Idle (cancelled)
//	NodeSelected ──edit key──────▶ Editing ──confirm/cancel──▶ NodeSelected
//
// Quit is accepted in every mode. Transitions that mutate the graph or the
// viewport mark the canvas dirty; pure state changes re-render nothing.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/graphos-dev/graphos/pkg/config"
	"github.com/graphos-dev/graphos/pkg/edgelist"
	"github.com/graphos-dev/graphos/pkg/graph"
	"github.com/graphos-dev/graphos/pkg/layout"
	"github.com/graphos-dev/graphos/pkg/render"
)

// Mode is the interaction state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeNodeSelected
	ModeEdgeDrawing
	ModePanning
	ModeEditing
)

// String returns the mode name for the HUD and logs.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeNodeSelected:
		return "selected"
	case ModeEdgeDrawing:
		return "edge"
	case ModePanning:
		return "pan"
	case ModeEditing:
		return "edit"
	default:
		return "unknown"
	}
}

// chromeRows is the number of terminal rows reserved below the canvas for
// the status line and help hint.
const chromeRows = 2

// statusTTL is how long a transient status message stays visible.
const statusTTL = 3 * time.Second

// tickMsg drives the layout simulation at the configured cap, independent
// of input rate.
type tickMsg time.Time

// Model is the bubbletea model for an interactive session. Create it with
// [New]; the zero value is not usable.
type Model struct {
	store  *graph.Store
	engine *layout.Engine
	frame  *render.Frame
	cfg    config.Config
	logger *log.Logger

	// savePath is where 'w' writes the edge list; set from the file the
	// session was started with, or defaulted on first save.
	savePath string

	mode     Mode
	selected graph.NodeID

	cursorCol, cursorRow int
	showCursor           bool

	// panAnchor is the pointer cell of the previous motion event while
	// panning; each motion pans by the cell delta since then.
	panAnchorCol, panAnchorRow int

	// mouseDown tracks the left button so hover motion (reported in
	// all-motion mode) is not mistaken for a drag.
	mouseDown bool

	keys  keyMap
	help  help.Model
	input textinput.Model
	menu  menuState

	status      string
	statusError bool
	statusUntil time.Time

	// canvas caches the styled frame; rebuilt only when dirty. An empty
	// frame diff keeps the cache, which is what bounds redraw work.
	canvas string
	dirty  bool

	nodeSeq int // label counter for 'n'
	ready   bool
}

// New creates a session model over an already loaded store. savePath may be
// empty for an unsaved scratch graph.
func New(store *graph.Store, cfg config.Config, logger *log.Logger, savePath string) Model {
	engine := layout.New(store, cfg.Tuning())

	input := textinput.New()
	input.CharLimit = 64
	input.Width = 32

	m := Model{
		store:    store,
		engine:   engine,
		frame:    render.NewFrame(render.NewViewport(1, 1)),
		cfg:      cfg,
		logger:   logger,
		savePath: savePath,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    input,
		menu:     newMenuState(),
		dirty:    true,
	}

	// Single fan-out point for store mutations: warm the layout engine and
	// record the session event log.
	store.SetListener(func(ev graph.Event) {
		engine.Apply(ev)
		logger.Debug("topology", "event", ev.Kind.String(), "nodes", store.NodeCount(), "edges", store.EdgeCount())
	})

	return m
}

// Init starts the layout tick loop.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.TickRate(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update is the single writer for all session state. Rasterization happens
// here too, so View stays a pure read of the cached canvas.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handle(msg)
	nm := next.(Model)
	nm.refresh()
	return nm, cmd
}

func (m Model) handle(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rows := msg.Height - chromeRows
		if rows < 1 {
			rows = 1
		}
		m.frame.Resize(rows, msg.Width)
		m.help.Width = msg.Width
		m.ready = true
		m.dirty = true
		return m, nil

	case tickMsg:
		if !m.engine.Converged() {
			m.engine.Step()
			m.dirty = true
		}
		if m.status != "" && time.Now().After(m.statusUntil) {
			m.status = ""
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

// =============================================================================
// Keyboard
// =============================================================================

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Editing captures everything except confirm/cancel.
	if m.mode == ModeEditing {
		return m.updateEditing(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("session ending", "nodes", m.store.NodeCount(), "edges", m.store.EdgeCount())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.PanLeft):
		return m.pan(-2, 0), nil
	case key.Matches(msg, m.keys.PanRight):
		return m.pan(2, 0), nil
	case key.Matches(msg, m.keys.PanUp):
		return m.pan(0, -1), nil
	case key.Matches(msg, m.keys.PanDown):
		return m.pan(0, 1), nil

	case key.Matches(msg, m.keys.ZoomIn):
		return m.zoom(1.25), nil
	case key.Matches(msg, m.keys.ZoomOut):
		return m.zoom(0.8), nil

	case key.Matches(msg, m.keys.AddNode):
		return m.addNodeAtCursor(), nil

	case key.Matches(msg, m.keys.DeleteNode):
		return m.deleteSelected(), nil

	case key.Matches(msg, m.keys.DeleteEdge):
		return m.deleteEdgeToCursor(), nil

	case key.Matches(msg, m.keys.EditLabel):
		return m.beginEditing()

	case key.Matches(msg, m.keys.Pin):
		return m.togglePin(), nil

	case key.Matches(msg, m.keys.Save):
		return m.save(), nil

	case key.Matches(msg, m.keys.Menu):
		m.menu.visible = !m.menu.visible
		if !m.menu.visible {
			m.menu.hover = -1
		}
		m.dirty = true
		return m, nil

	case key.Matches(msg, m.keys.Deselect):
		if m.mode == ModeNodeSelected || m.mode == ModeEdgeDrawing {
			m.clearSelection()
			m.mode = ModeIdle
			m.dirty = true
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		label := m.input.Value()
		if n, ok := m.store.Node(m.selected); ok {
			old := n.Label
			n.Label = label
			m.logger.Info("label edited", "from", old, "to", label)
		}
		m.input.Blur()
		m.mode = ModeNodeSelected
		m.dirty = true
		return m, nil
	case "esc":
		m.input.Blur()
		m.mode = ModeNodeSelected
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// Mouse
// =============================================================================

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeEditing {
		return m, nil
	}

	col, row := msg.X, msg.Y
	onCanvas := row < m.frame.Viewport().Rows
	if m.cursorCol != col || m.cursorRow != row {
		m.cursorCol, m.cursorRow = col, row
		m.showCursor = onCanvas
		m.dirty = true
	}

	// The menu floats above the canvas and sees the pointer first.
	menuIdx, overMenu := m.menuOverlay().HitTest(col, row)
	if m.menu.hover != menuIdx {
		m.menu.hover = menuIdx
		m.dirty = true
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onCanvas {
			return m, nil
		}
		if overMenu {
			if menuIdx >= 0 {
				return m.invokeMenu(menuIdx)
			}
			return m, nil
		}
		m.mouseDown = true
		if id, ok := m.nodeAt(col, row); ok {
			m.selectNode(id)
			m.mode = ModeNodeSelected
		} else {
			m.mode = ModePanning
			m.panAnchorCol, m.panAnchorRow = col, row
		}
		m.dirty = true
		return m, nil

	case tea.MouseActionMotion:
		switch m.mode {
		case ModePanning:
			dc, dr := m.panAnchorCol-col, m.panAnchorRow-row
			if dc != 0 || dr != 0 {
				vp := m.frame.Viewport()
				vp.Pan(dc, dr)
				m.frame.SetViewport(vp)
				m.panAnchorCol, m.panAnchorRow = col, row
				m.dirty = true
			}
		case ModeNodeSelected:
			// Drag off the selected node starts edge drawing; hover and
			// motion over the node itself do nothing.
			if !m.mouseDown {
				return m, nil
			}
			if id, ok := m.nodeAt(col, row); ok && id == m.selected {
				return m, nil
			}
			m.mode = ModeEdgeDrawing
			m.dirty = true
		}
		return m, nil

	case tea.MouseActionRelease:
		m.mouseDown = false
		switch m.mode {
		case ModePanning:
			m.mode = ModeIdle
		case ModeEdgeDrawing:
			return m.finishEdge(col, row), nil
		}
		return m, nil
	}
	return m, nil
}

// finishEdge completes or cancels an in-progress edge. Release on a node
// creates the edge and keeps the source selected; release on empty space
// cancels back to Idle.
func (m Model) finishEdge(col, row int) Model {
	target, onNode := m.nodeAt(col, row)
	if !onNode || target == m.selected {
		m.clearSelection()
		m.mode = ModeIdle
		m.dirty = true
		return m
	}

	id, err := m.store.AddEdge(m.selected, target, 1)
	if err != nil {
		m.setError(fmt.Sprintf("add edge: %v", err))
		m.mode = ModeIdle
		m.dirty = true
		return m
	}
	m.logger.Info("edge added", "edge", id.String(), "from", m.labelOf(m.selected), "to", m.labelOf(target))
	m.setStatus(fmt.Sprintf("edge %s → %s", m.labelOf(m.selected), m.labelOf(target)))
	// The selection gained a neighbor; recompute its highlight set.
	m.selectNode(m.selected)
	m.mode = ModeNodeSelected
	m.dirty = true
	return m
}

// =============================================================================
// Commands
// =============================================================================

func (m Model) pan(dcols, drows int) Model {
	vp := m.frame.Viewport()
	vp.Pan(dcols, drows)
	m.frame.SetViewport(vp)
	m.dirty = true
	return m
}

func (m Model) zoom(factor float64) Model {
	vp := m.frame.Viewport()
	vp.Zoom(factor)
	m.frame.SetViewport(vp)
	m.dirty = true
	return m
}

func (m Model) addNodeAtCursor() Model {
	m.nodeSeq++
	label := fmt.Sprintf("node%d", m.nodeSeq)
	id := m.store.AddNode(label)

	col, row := m.cursorCol, m.cursorRow
	if !m.showCursor {
		vp := m.frame.Viewport()
		col, row = vp.Cols/2, vp.Rows/2
	}
	wx, wy := m.frame.Viewport().Unproject(col, row)
	m.engine.Place(id, wx, wy)

	m.selectNode(id)
	m.mode = ModeNodeSelected
	m.logger.Info("node added", "node", id.String(), "label", label)
	m.setStatus(fmt.Sprintf("added %s", label))
	m.dirty = true
	return m
}

func (m Model) deleteSelected() Model {
	if m.mode != ModeNodeSelected {
		m.setError("no node selected")
		return m
	}
	label := m.labelOf(m.selected)
	if err := m.store.RemoveNode(m.selected); err != nil {
		m.setError(fmt.Sprintf("delete node: %v", err))
		return m
	}
	m.logger.Info("node removed", "label", label)
	m.setStatus(fmt.Sprintf("removed %s", label))
	m.selected = graph.NodeID{}
	m.mode = ModeIdle
	m.dirty = true
	return m
}

func (m Model) deleteEdgeToCursor() Model {
	if m.mode != ModeNodeSelected {
		m.setError("no node selected")
		return m
	}
	target, ok := m.nodeAt(m.cursorCol, m.cursorRow)
	if !ok {
		m.setError("no node under cursor")
		return m
	}
	for _, eid := range m.store.IncidentEdges(m.selected) {
		e, ok := m.store.Edge(eid)
		if !ok {
			continue
		}
		if other, ok := e.Other(m.selected); ok && other == target {
			if err := m.store.RemoveEdge(eid); err != nil {
				m.setError(fmt.Sprintf("delete edge: %v", err))
				return m
			}
			m.logger.Info("edge removed", "from", m.labelOf(m.selected), "to", m.labelOf(target))
			m.setStatus(fmt.Sprintf("removed edge to %s", m.labelOf(target)))
			m.dirty = true
			return m
		}
	}
	m.setError(fmt.Sprintf("no edge to %s", m.labelOf(target)))
	return m
}

func (m Model) beginEditing() (tea.Model, tea.Cmd) {
	if m.mode != ModeNodeSelected {
		m.setError("select a node first")
		return m, nil
	}
	n, ok := m.store.Node(m.selected)
	if !ok {
		m.setError("selected node is gone")
		m.mode = ModeIdle
		return m, nil
	}
	m.input.SetValue(n.Label)
	m.input.CursorEnd()
	m.mode = ModeEditing
	return m, m.input.Focus()
}

func (m Model) togglePin() Model {
	if m.mode != ModeNodeSelected {
		m.setError("no node selected")
		return m
	}
	n, ok := m.store.Node(m.selected)
	if !ok {
		return m
	}
	if err := m.store.SetPinned(m.selected, !n.Pinned); err != nil {
		m.setError(fmt.Sprintf("pin: %v", err))
		return m
	}
	state := "pinned"
	if !n.Pinned {
		state = "unpinned"
	}
	m.setStatus(fmt.Sprintf("%s %s", state, n.Label))
	m.dirty = true
	return m
}

func (m Model) save() Model {
	path := m.savePath
	if path == "" {
		path = "graph.txt"
		m.savePath = path
	}
	if err := edgelist.ExportFile(path, m.store); err != nil {
		m.setError(fmt.Sprintf("save: %v", err))
		return m
	}
	m.logger.Info("graph saved", "path", path, "nodes", m.store.NodeCount(), "edges", m.store.EdgeCount())
	m.setStatus(fmt.Sprintf("saved %s", path))
	return m
}

// =============================================================================
// Selection & Hit Testing
// =============================================================================

func (m *Model) selectNode(id graph.NodeID) {
	m.clearSelection()
	if n, ok := m.store.Node(id); ok {
		n.Selected = true
		m.selected = id
		// Neighbors light up so the local structure reads at a glance.
		for _, nb := range m.store.Neighbors(id) {
			if o, ok := m.store.Node(nb); ok {
				o.Highlighted = true
			}
		}
	}
}

func (m *Model) clearSelection() {
	for _, n := range m.store.Nodes() {
		n.Selected = false
		n.Highlighted = false
	}
	m.selected = graph.NodeID{}
}

// nodeAt returns the node whose label region covers the cell. The region is
// the centered label span on the node's row, matching what drawLabel put on
// screen.
func (m Model) nodeAt(col, row int) (graph.NodeID, bool) {
	vp := m.frame.Viewport()
	for _, n := range m.store.Nodes() {
		ncol, nrow, visible := vp.Project(n.X, n.Y)
		if !visible || nrow != row {
			continue
		}
		w := runewidth.StringWidth(n.Label)
		if w == 0 {
			w = 1
		}
		start := ncol - w/2
		if col >= start && col < start+w {
			return n.ID, true
		}
	}
	return graph.NodeID{}, false
}

// =============================================================================
// Status
// =============================================================================

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusError = false
	m.statusUntil = time.Now().Add(statusTTL)
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusError = true
	m.statusUntil = time.Now().Add(statusTTL)
	m.logger.Warn(s)
}

func (m Model) labelOf(id graph.NodeID) string {
	if n, ok := m.store.Node(id); ok {
		return n.Label
	}
	return id.String()
}

// Mode returns the current interaction mode. Exposed for tests.
func (m Model) Mode() Mode { return m.mode }

// Selected returns the currently selected node handle. Exposed for tests.
func (m Model) Selected() graph.NodeID { return m.selected }

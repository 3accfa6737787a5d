package graph

import (
	"errors"
	"slices"
)

var (
	// ErrUnknownNode is returned when a NodeID does not refer to a live node,
	// either because it was never issued by this store or because the node
	// has since been removed.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownEdge is returned when an EdgeID does not refer to a live edge.
	ErrUnknownEdge = errors.New("unknown edge")
)

// slot carried per element; gen advances on removal so stale handles miss.
type nodeSlot struct {
	node Node
	gen  uint32
	live bool
}

type edgeSlot struct {
	edge Edge
	gen  uint32
	live bool
}

// Store is the single-writer graph store. It owns all nodes and edges and
// keeps the adjacency index consistent with the edge set on every mutation.
//
// The zero value is not usable - use [New]. Store is not safe for concurrent
// use; graphos drives it from exactly one event loop.
type Store struct {
	directed bool

	nodes     []nodeSlot
	freeNodes []uint32
	edges     []edgeSlot
	freeEdges []uint32

	// adjacency: node slot index -> incident edge IDs, insertion-ordered.
	incident map[uint32][]EdgeID

	version  uint64
	listener Listener
}

// New creates an empty store. When directed is true, [Store.Neighbors]
// still treats edges as symmetric (the terminal view draws no arrowheads),
// but edge orientation is preserved for export.
func New(directed bool) *Store {
	return &Store{
		directed: directed,
		incident: make(map[uint32][]EdgeID),
	}
}

// Directed reports whether the store was created in directed mode.
func (s *Store) Directed() bool { return s.directed }

// Version returns a counter that increases on every successful mutation,
// including pin changes. Renderers use it to detect model staleness cheaply.
func (s *Store) Version() uint64 { return s.version }

// SetListener registers the single mutation listener. Passing nil removes it.
// The listener runs synchronously inside the mutating call, after the store
// is already in its new consistent state.
func (s *Store) SetListener(l Listener) { s.listener = l }

func (s *Store) notify(ev Event) {
	s.version++
	if s.listener != nil {
		s.listener(ev)
	}
}

// =============================================================================
// Node API
// =============================================================================

// AddNode inserts a node with the given label at the world origin and
// returns its handle. Position is assigned afterwards by the layout engine
// (or explicitly via the returned handle and [Store.Node]).
func (s *Store) AddNode(label string) NodeID {
	var idx uint32
	if n := len(s.freeNodes); n > 0 {
		idx = s.freeNodes[n-1]
		s.freeNodes = s.freeNodes[:n-1]
	} else {
		idx = uint32(len(s.nodes))
		s.nodes = append(s.nodes, nodeSlot{})
	}
	slot := &s.nodes[idx]
	slot.gen++
	slot.live = true
	id := NodeID{index: idx, gen: slot.gen}
	slot.node = Node{ID: id, Label: label}
	s.notify(Event{Kind: EventNodeAdded, Node: id})
	return id
}

// Node returns a pointer to the live node for id, or nil and false if the
// handle is stale or unknown. The pointer refers to store-owned memory and
// may be invalidated by any subsequent mutation (AddNode can reallocate the
// backing slots, RemoveNode recycles them): look the node up again after
// mutating, do not hold the pointer across calls.
func (s *Store) Node(id NodeID) (*Node, bool) {
	slot := s.nodeSlot(id)
	if slot == nil {
		return nil, false
	}
	return &slot.node, true
}

// RemoveNode removes a node and cascades removal of all incident edges.
// Returns ErrUnknownNode if the handle is stale; the store is unchanged in
// that case. A single EventNodeRemoved is emitted carrying the cascaded
// edge handles, so listeners see the removal as one atomic step.
func (s *Store) RemoveNode(id NodeID) error {
	slot := s.nodeSlot(id)
	if slot == nil {
		return ErrUnknownNode
	}

	cascaded := slices.Clone(s.incident[id.index])
	for _, eid := range cascaded {
		s.detachEdge(eid)
	}
	delete(s.incident, id.index)

	slot.live = false
	slot.node = Node{}
	s.freeNodes = append(s.freeNodes, id.index)

	s.notify(Event{Kind: EventNodeRemoved, Node: id, Cascaded: cascaded})
	return nil
}

// SetPinned sets the node's pin state and notifies the listener when the
// state actually changes. Pinned nodes keep exerting forces on others but
// are excluded from force integration.
func (s *Store) SetPinned(id NodeID, pinned bool) error {
	slot := s.nodeSlot(id)
	if slot == nil {
		return ErrUnknownNode
	}
	if slot.node.Pinned == pinned {
		return nil
	}
	slot.node.Pinned = pinned
	s.notify(Event{Kind: EventPinChanged, Node: id})
	return nil
}

// Nodes returns all live nodes in slot order. The pointers refer to
// store-owned memory and stay valid only until the next mutation; the slice
// itself is freshly allocated.
func (s *Store) Nodes() []*Node {
	out := make([]*Node, 0, s.NodeCount())
	for i := range s.nodes {
		if s.nodes[i].live {
			out = append(out, &s.nodes[i].node)
		}
	}
	return out
}

// NodeCount returns the number of live nodes.
func (s *Store) NodeCount() int {
	return len(s.nodes) - len(s.freeNodes)
}

// =============================================================================
// Edge API
// =============================================================================

// AddEdge inserts an edge between two live nodes and returns its handle.
// Returns ErrUnknownNode if either endpoint handle is stale; the store is
// unchanged in that case. Parallel edges between the same pair are allowed.
func (s *Store) AddEdge(from, to NodeID, weight float64) (EdgeID, error) {
	if s.nodeSlot(from) == nil || s.nodeSlot(to) == nil {
		return EdgeID{}, ErrUnknownNode
	}

	var idx uint32
	if n := len(s.freeEdges); n > 0 {
		idx = s.freeEdges[n-1]
		s.freeEdges = s.freeEdges[:n-1]
	} else {
		idx = uint32(len(s.edges))
		s.edges = append(s.edges, edgeSlot{})
	}
	slot := &s.edges[idx]
	slot.gen++
	slot.live = true
	id := EdgeID{index: idx, gen: slot.gen}
	slot.edge = Edge{ID: id, From: from, To: to, Weight: weight}

	s.incident[from.index] = append(s.incident[from.index], id)
	if to != from {
		s.incident[to.index] = append(s.incident[to.index], id)
	}

	s.notify(Event{Kind: EventEdgeAdded, Edge: id})
	return id, nil
}

// Edge returns a pointer to the live edge for id, or nil and false if the
// handle is stale or unknown. Like [Store.Node], the pointer may be
// invalidated by any subsequent mutation.
func (s *Store) Edge(id EdgeID) (*Edge, bool) {
	slot := s.edgeSlot(id)
	if slot == nil {
		return nil, false
	}
	return &slot.edge, true
}

// RemoveEdge removes an edge. Returns ErrUnknownEdge if the handle is stale;
// the store is unchanged in that case.
func (s *Store) RemoveEdge(id EdgeID) error {
	if s.edgeSlot(id) == nil {
		return ErrUnknownEdge
	}
	s.detachEdge(id)
	s.notify(Event{Kind: EventEdgeRemoved, Edge: id})
	return nil
}

// Edges returns all live edges in slot order.
func (s *Store) Edges() []*Edge {
	out := make([]*Edge, 0, s.EdgeCount())
	for i := range s.edges {
		if s.edges[i].live {
			out = append(out, &s.edges[i].edge)
		}
	}
	return out
}

// EdgeCount returns the number of live edges.
func (s *Store) EdgeCount() int {
	return len(s.edges) - len(s.freeEdges)
}

// =============================================================================
// Adjacency
// =============================================================================

// Neighbors returns the nodes adjacent to id, in incident-edge insertion
// order, with duplicates from parallel edges collapsed. Returns nil for a
// stale handle or an isolated node. Direction is ignored: an undirected view
// is what pan/select interaction needs.
func (s *Store) Neighbors(id NodeID) []NodeID {
	if s.nodeSlot(id) == nil {
		return nil
	}
	seen := make(map[NodeID]struct{})
	var out []NodeID
	for _, eid := range s.incident[id.index] {
		e, ok := s.Edge(eid)
		if !ok {
			continue
		}
		other, ok := e.Other(id)
		if !ok {
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	return out
}

// IncidentEdges returns handles of the edges touching id, in insertion
// order. Returns nil for a stale handle or an isolated node.
func (s *Store) IncidentEdges(id NodeID) []EdgeID {
	if s.nodeSlot(id) == nil {
		return nil
	}
	return slices.Clone(s.incident[id.index])
}

// Degree returns the number of edges incident to id (0 for stale handles).
// Self-loops count once.
func (s *Store) Degree(id NodeID) int {
	return len(s.incident[id.index])
}

// =============================================================================
// Internal
// =============================================================================

func (s *Store) nodeSlot(id NodeID) *nodeSlot {
	if int(id.index) >= len(s.nodes) {
		return nil
	}
	slot := &s.nodes[id.index]
	if !slot.live || slot.gen != id.gen {
		return nil
	}
	return slot
}

func (s *Store) edgeSlot(id EdgeID) *edgeSlot {
	if int(id.index) >= len(s.edges) {
		return nil
	}
	slot := &s.edges[id.index]
	if !slot.live || slot.gen != id.gen {
		return nil
	}
	return slot
}

// detachEdge kills the edge slot and scrubs it from the adjacency lists of
// endpoints that still exist. Used both by RemoveEdge and by the RemoveNode
// cascade (where the removed endpoint's list is dropped wholesale).
func (s *Store) detachEdge(id EdgeID) {
	slot := s.edgeSlot(id)
	if slot == nil {
		return
	}
	e := slot.edge
	if lst, ok := s.incident[e.From.index]; ok {
		s.incident[e.From.index] = deleteEdgeID(lst, id)
	}
	if e.To != e.From {
		if lst, ok := s.incident[e.To.index]; ok {
			s.incident[e.To.index] = deleteEdgeID(lst, id)
		}
	}
	slot.live = false
	slot.edge = Edge{}
	s.freeEdges = append(s.freeEdges, id.index)
}

func deleteEdgeID(lst []EdgeID, id EdgeID) []EdgeID {
	return slices.DeleteFunc(lst, func(e EdgeID) bool { return e == id })
}

package graph

import "fmt"

// =============================================================================
// Handles
// =============================================================================

// NodeID is a generation-checked handle to a node in a [Store].
// The zero value is never a valid handle.
type NodeID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the handle is the zero value (no node).
func (id NodeID) IsZero() bool { return id == NodeID{} }

// String returns a short diagnostic form like "n3@2" (slot 3, generation 2).
func (id NodeID) String() string { return fmt.Sprintf("n%d@%d", id.index, id.gen) }

// EdgeID is a generation-checked handle to an edge in a [Store].
// The zero value is never a valid handle.
type EdgeID struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the handle is the zero value (no edge).
func (id EdgeID) IsZero() bool { return id == EdgeID{} }

// String returns a short diagnostic form like "e1@4" (slot 1, generation 4).
func (id EdgeID) String() string { return fmt.Sprintf("e%d@%d", id.index, id.gen) }

// =============================================================================
// Elements
// =============================================================================

// Node is a vertex of the visualized graph. Position is in world space
// (continuous coordinates independent of the terminal grid).
//
// Nodes are created by [Store.AddNode]; the returned pointer from
// [Store.Node] refers to the live element, so position and visual-state
// changes take effect directly. Pin state should be changed through
// [Store.SetPinned] so the layout engine is notified.
type Node struct {
	ID    NodeID
	Label string

	// World-space position, written by the layout engine and drag handling.
	X, Y float64

	// Visual state. Selected and Highlighted affect draw z-order only;
	// Pinned additionally excludes the node from force integration.
	Selected    bool
	Highlighted bool
	Pinned      bool
}

// Edge connects two live nodes. From/To record insertion order; in an
// undirected store the pair is treated as symmetric everywhere except the
// export path, which preserves orientation.
type Edge struct {
	ID     EdgeID
	From   NodeID
	To     NodeID
	Weight float64

	Highlighted bool
}

// Other returns the endpoint opposite to id, and false if id is not an
// endpoint of the edge.
func (e *Edge) Other(id NodeID) (NodeID, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	}
	return NodeID{}, false
}

// =============================================================================
// Events
// =============================================================================

// EventKind identifies the mutation a topology [Event] describes.
type EventKind int

const (
	// EventNodeAdded fires after a node is inserted.
	EventNodeAdded EventKind = iota
	// EventNodeRemoved fires after a node and its incident edges are removed.
	EventNodeRemoved
	// EventEdgeAdded fires after an edge is inserted.
	EventEdgeAdded
	// EventEdgeRemoved fires after an edge is removed.
	EventEdgeRemoved
	// EventPinChanged fires after a node's pin state is toggled. Not a
	// topology change, but it invalidates layout convergence all the same.
	EventPinChanged
)

// String returns the event kind name for logging.
func (k EventKind) String() string {
	switch k {
	case EventNodeAdded:
		return "node-added"
	case EventNodeRemoved:
		return "node-removed"
	case EventEdgeAdded:
		return "edge-added"
	case EventEdgeRemoved:
		return "edge-removed"
	case EventPinChanged:
		return "pin-changed"
	default:
		return "unknown"
	}
}

// Event describes a successful store mutation. Node is set for node and pin
// events, Edge for edge events; EventNodeRemoved additionally lists the
// cascaded edges in Cascaded.
type Event struct {
	Kind     EventKind
	Node     NodeID
	Edge     EdgeID
	Cascaded []EdgeID
}

// Listener receives events synchronously after each successful mutation.
type Listener func(Event)

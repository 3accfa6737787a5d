// Package graph provides the in-memory graph store at the heart of graphos.
//
// # Overview
//
// A [Store] owns all nodes and edges of the visualized graph. Nodes carry a
// display label, a world-space position, and visual state (selected,
// highlighted, pinned); edges connect two live nodes and may carry a weight.
// An adjacency index is maintained incrementally on every mutation, so
// neighbor queries never scan the full edge set.
//
// # Handles
//
// Nodes and edges are addressed through generation-checked handles ([NodeID],
// [EdgeID]) rather than pointers. A handle holds a slot index plus the
// generation the slot had when the element was created; removing the element
// advances the slot generation, and any retained handle goes stale. Stale
// handles are detected on every access and surface as [ErrUnknownNode] or
// [ErrUnknownEdge] instead of silently resolving to a recycled element.
//
// # Basic Usage
//
// Create a store with [New], add nodes with [Store.AddNode], and connect them
// with [Store.AddEdge]:
//
//	s := graph.New(false)
//	a := s.AddNode("auth")
//	b := s.AddNode("billing")
//	e, err := s.AddEdge(a, b, 1)
//
// Removing a node cascades removal of its incident edges, keeping the
// adjacency index consistent with the edge set at all times. All mutations
// are atomic: a mutation that returns an error leaves the store unchanged.
//
// # Change Notification
//
// The layout engine needs to know when topology changes so it can resume its
// simulation. Register a listener with [Store.SetListener]; it is invoked
// synchronously after every successful mutation that affects topology or pin
// state. The store is single-writer by design and performs no locking.
package graph

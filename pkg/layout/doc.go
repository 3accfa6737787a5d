// Package layout computes world-space node positions with an incremental
// force-directed simulation.
//
// # Model
//
// Every pair of nodes repels with a force proportional to 1/d²; every edge
// pulls its endpoints toward a target spring length. Velocities are damped
// and integrated each tick, with per-tick displacement clamped so a single
// step never teleports a node across the canvas.
//
// # Incrementality
//
// The engine keeps per-node velocity between ticks (warm start). Topology
// changes arrive as [graph.Event] values via [Engine.Apply]: a new node is
// seeded at a small random offset and, on its first edge, pulled next to its
// neighbors' centroid instead of triggering a relayout of the whole graph.
// Convergence is declared when the maximum displacement of a tick falls
// below the tuned threshold, and reset by any topology or pin change.
//
// Pinned nodes still exert forces on others but are never moved by the
// integrator.
package layout

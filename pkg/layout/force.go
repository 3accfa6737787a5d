package layout

import (
	"math"
	"math/rand"

	"github.com/graphos-dev/graphos/pkg/graph"
)

// Tuning holds the simulation constants. Zero values are not usable - start
// from [DefaultTuning] and override selectively (the config file does the
// same).
type Tuning struct {
	// SpringLength is the target edge length in world units.
	SpringLength float64
	// Spring scales the attractive force along edges.
	Spring float64
	// Repulsion scales the pairwise repulsive force (divided by d²).
	Repulsion float64
	// Damping multiplies velocity each tick; must be in (0, 1).
	Damping float64
	// MaxStep clamps per-tick displacement in world units.
	MaxStep float64
	// Threshold is the max displacement below which a tick counts as
	// converged.
	Threshold float64
	// Budget is the number of integration passes per Step call. It bounds
	// the cost of one tick so input latency stays low on large graphs.
	Budget int
	// Seed feeds the jitter source; fixed by default for reproducible
	// layouts of the same mutation sequence.
	Seed int64
}

// DefaultTuning returns the simulation constants used when no config file
// overrides them.
func DefaultTuning() Tuning {
	return Tuning{
		SpringLength: 12,
		Spring:       0.08,
		Repulsion:    220,
		Damping:      0.72,
		MaxStep:      4,
		Threshold:    0.05,
		Budget:       3,
		Seed:         1,
	}
}

// Engine owns the per-node simulation state. It does not register itself
// with the store; the event loop forwards [graph.Event] values to [Engine.Apply]
// so there is exactly one fan-out point for mutations.
//
// Engine is not safe for concurrent use; like the store it lives on the
// single event loop.
type Engine struct {
	store  *graph.Store
	tuning Tuning
	rng    *rand.Rand

	vx, vy map[graph.NodeID]float64

	// fresh marks nodes that were added but not yet connected; their first
	// edge triggers re-seeding near the neighbor centroid.
	fresh map[graph.NodeID]struct{}

	converged bool
}

// New creates an engine over the store. Existing nodes keep their current
// positions (warm start); nodes at the exact origin are jittered apart so a
// freshly loaded graph does not start as a single degenerate point.
func New(store *graph.Store, t Tuning) *Engine {
	e := &Engine{
		store:  store,
		tuning: t,
		rng:    rand.New(rand.NewSource(t.Seed)),
		vx:     make(map[graph.NodeID]float64),
		vy:     make(map[graph.NodeID]float64),
		fresh:  make(map[graph.NodeID]struct{}),
	}
	for _, n := range store.Nodes() {
		if n.X == 0 && n.Y == 0 {
			n.X, n.Y = e.jitter(0, 0, t.SpringLength)
		}
	}
	return e
}

// Converged reports whether the last Step moved no node further than the
// threshold. A converged engine's Step is a cheap no-op, so the tick loop
// can keep running it unconditionally.
func (e *Engine) Converged() bool { return e.converged }

// Apply updates simulation state for a store mutation and resets
// convergence. Call it for every event the store emits.
func (e *Engine) Apply(ev graph.Event) {
	switch ev.Kind {
	case graph.EventNodeAdded:
		if n, ok := e.store.Node(ev.Node); ok {
			n.X, n.Y = e.jitter(n.X, n.Y, e.tuning.SpringLength)
			e.fresh[ev.Node] = struct{}{}
		}
	case graph.EventNodeRemoved:
		delete(e.vx, ev.Node)
		delete(e.vy, ev.Node)
		delete(e.fresh, ev.Node)
	case graph.EventEdgeAdded:
		e.seedFreshEndpoints(ev.Edge)
	}
	e.converged = false
}

// seedFreshEndpoints moves a still-unconnected endpoint of the new edge next
// to its neighbors' centroid. This is the sparse-patch warm start: only the
// new node moves, everything else keeps its position.
func (e *Engine) seedFreshEndpoints(id graph.EdgeID) {
	edge, ok := e.store.Edge(id)
	if !ok {
		return
	}
	for _, nid := range []graph.NodeID{edge.From, edge.To} {
		if _, isFresh := e.fresh[nid]; !isFresh {
			continue
		}
		delete(e.fresh, nid)
		n, ok := e.store.Node(nid)
		if !ok {
			continue
		}
		cx, cy, count := 0.0, 0.0, 0
		for _, other := range e.store.Neighbors(nid) {
			if o, ok := e.store.Node(other); ok {
				cx += o.X
				cy += o.Y
				count++
			}
		}
		if count == 0 {
			continue
		}
		n.X, n.Y = e.jitter(cx/float64(count), cy/float64(count), e.tuning.SpringLength/2)
	}
}

// Place moves a node to an explicit position (cursor placement, drag) and
// cancels any pending centroid re-seed: a deliberately placed node must not
// be yanked toward its first neighbor. Velocity is zeroed so the node stays
// where it was put until forces act on it. Convergence resets.
func (e *Engine) Place(id graph.NodeID, x, y float64) {
	n, ok := e.store.Node(id)
	if !ok {
		return
	}
	delete(e.fresh, id)
	n.X, n.Y = x, y
	e.vx[id], e.vy[id] = 0, 0
	e.converged = false
}

// Step runs up to Budget integration passes and returns the maximum node
// displacement of the final pass. Convergence is updated from that value.
func (e *Engine) Step() float64 {
	if e.converged {
		return 0
	}

	var maxDisp float64
	for i := 0; i < e.tuning.Budget; i++ {
		maxDisp = e.tick()
		if maxDisp < e.tuning.Threshold {
			break
		}
	}
	e.converged = maxDisp < e.tuning.Threshold
	return maxDisp
}

// tick performs one full force pass: O(N²) repulsion, O(E) attraction, then
// damped integration. Returns the max displacement.
func (e *Engine) tick() float64 {
	nodes := e.store.Nodes()
	if len(nodes) == 0 {
		return 0
	}

	fx := make(map[graph.NodeID]float64, len(nodes))
	fy := make(map[graph.NodeID]float64, len(nodes))

	// Repulsion between all pairs. Coincident nodes get a deterministic
	// nudge so they separate instead of dividing by zero.
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			d2 := dx*dx + dy*dy
			if d2 < 1e-6 {
				dx, dy = e.jitterUnit()
				d2 = 1e-6
			}
			d := math.Sqrt(d2)
			f := e.tuning.Repulsion / d2
			ux, uy := dx/d, dy/d
			fx[a.ID] += ux * f
			fy[a.ID] += uy * f
			fx[b.ID] -= ux * f
			fy[b.ID] -= uy * f
		}
	}

	// Spring attraction along edges, proportional to deviation from the
	// target length. Weight scales stiffness, so heavier edges pull tighter.
	for _, edge := range e.store.Edges() {
		a, okA := e.store.Node(edge.From)
		b, okB := e.store.Node(edge.To)
		if !okA || !okB || a == b {
			continue
		}
		dx, dy := b.X-a.X, b.Y-a.Y
		d := math.Hypot(dx, dy)
		if d < 1e-6 {
			continue
		}
		w := edge.Weight
		if w <= 0 {
			w = 1
		}
		f := e.tuning.Spring * w * (d - e.tuning.SpringLength)
		ux, uy := dx/d, dy/d
		fx[a.ID] += ux * f
		fy[a.ID] += uy * f
		fx[b.ID] -= ux * f
		fy[b.ID] -= uy * f
	}

	// Damped velocity integration. Pinned nodes exert forces (accumulated
	// above) but are never moved.
	var maxDisp float64
	for _, n := range nodes {
		if n.Pinned {
			e.vx[n.ID], e.vy[n.ID] = 0, 0
			continue
		}
		vx := (e.vx[n.ID] + fx[n.ID]) * e.tuning.Damping
		vy := (e.vy[n.ID] + fy[n.ID]) * e.tuning.Damping

		disp := math.Hypot(vx, vy)
		if disp > e.tuning.MaxStep {
			scale := e.tuning.MaxStep / disp
			vx *= scale
			vy *= scale
			disp = e.tuning.MaxStep
		}

		n.X += vx
		n.Y += vy
		e.vx[n.ID], e.vy[n.ID] = vx, vy

		if disp > maxDisp {
			maxDisp = disp
		}
	}
	return maxDisp
}

// jitter returns (x, y) displaced by a uniform random offset within ±r/2.
func (e *Engine) jitter(x, y, r float64) (float64, float64) {
	return x + (e.rng.Float64()-0.5)*r, y + (e.rng.Float64()-0.5)*r
}

// jitterUnit returns a random unit-ish vector for separating coincident nodes.
func (e *Engine) jitterUnit() (float64, float64) {
	angle := e.rng.Float64() * 2 * math.Pi
	return math.Cos(angle) * 1e-3, math.Sin(angle) * 1e-3
}

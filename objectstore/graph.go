package objectstore

import "github.com/dendritic-labs/incdbscan/pointid"

// handle is a stable arena slot index for a vertex in the neighbor graph.
// It never changes for the lifetime of the point it names, even across
// unrelated removals elsewhere in the arena — see doc.go.
type handle = int

// vertexSlot holds one arena slot. A freed slot is the zero value until
// reused by addVertex.
type vertexSlot struct {
	id    pointid.ID
	alive bool
	adj   map[handle]struct{}
}

// neighborGraph is an undirected graph over point identifiers.
type neighborGraph struct {
	slots []vertexSlot
	free  []handle
}

func newNeighborGraph(capacityHint int) *neighborGraph {
	return &neighborGraph{slots: make([]vertexSlot, 0, capacityHint)}
}

// addVertex creates a vertex for id, reusing a freed slot when available,
// and returns its handle.
func (g *neighborGraph) addVertex(id pointid.ID) handle {
	if n := len(g.free); n > 0 {
		h := g.free[n-1]
		g.free = g.free[:n-1]
		g.slots[h] = vertexSlot{id: id, alive: true, adj: make(map[handle]struct{})}
		return h
	}
	h := len(g.slots)
	g.slots = append(g.slots, vertexSlot{id: id, alive: true, adj: make(map[handle]struct{})})
	return h
}

// removeVertex deletes h and its incident edges, and returns its slot to
// the free-list. Survivors' handles are untouched.
func (g *neighborGraph) removeVertex(h handle) {
	slot := &g.slots[h]
	for n := range slot.adj {
		delete(g.slots[n].adj, h)
	}
	g.slots[h] = vertexSlot{}
	g.free = append(g.free, h)
}

// addEdge inserts the undirected edge {a, b}. A self-loop request is
// silently dropped — the neighbor graph never stores self-loops; closed
// neighborhoods include self by convention at the query layer instead.
func (g *neighborGraph) addEdge(a, b handle) {
	if a == b {
		return
	}
	g.slots[a].adj[b] = struct{}{}
	g.slots[b].adj[a] = struct{}{}
}

// hasEdge reports whether {a, b} is an edge.
func (g *neighborGraph) hasEdge(a, b handle) bool {
	_, ok := g.slots[a].adj[b]
	return ok
}

// neighbors returns h's open neighborhood (handles, not ids).
func (g *neighborGraph) neighbors(h handle) []handle {
	adj := g.slots[h].adj
	out := make([]handle, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	return out
}

// degree returns len(neighbors(h)) without allocating.
func (g *neighborGraph) degree(h handle) int {
	return len(g.slots[h].adj)
}

func (g *neighborGraph) pointID(h handle) pointid.ID {
	return g.slots[h].id
}

// Package worldmap accumulates the discovered room graph.
//
// The explorer's decisions are driven by its cache alone; the world map is
// a read model built alongside the walk for renderers, the archive, and
// post-session diagnostics.
package worldmap

import (
	"sync"

	"github.com/vk/roomwalk/internal/room"
)

// Edge is one undirected adjacency between two discovered rooms. A is
// always the endpoint that was discovered first.
type Edge struct {
	A room.ID
	B room.ID
}

// Graph is the discovered portion of the remote room graph. It implements
// explorer.Observer, so wiring it into a session keeps it current.
//
// The mutex exists for the status endpoint, which reads counts while the
// walk is still appending.
type Graph struct {
	mutex sync.RWMutex
	nodes map[room.ID]*room.Room
	index map[room.ID]int // discovery rank per id
	order []room.ID
}

// New creates an empty world map.
func New() *Graph {
	return &Graph{
		nodes: make(map[room.ID]*room.Room),
		index: make(map[room.ID]int),
	}
}

// RoomEntered records r. Re-entries while backtracking are no-ops: the
// first record for an id stays authoritative, mirroring the cache.
func (g *Graph) RoomEntered(r *room.Room) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[r.XID]; ok {
		return
	}
	g.nodes[r.XID] = r.Clone()
	g.index[r.XID] = len(g.order)
	g.order = append(g.order, r.XID)
}

// Rooms returns the discovered rooms in discovery order.
func (g *Graph) Rooms() []*room.Room {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	out := make([]*room.Room, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Len returns the number of discovered rooms.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.order)
}

// Edges returns every adjacency between two discovered rooms exactly once,
// in discovery order of the earlier endpoint. An edge is included as soon
// as either endpoint lists the other; with a symmetric remote graph both
// directions agree.
func (g *Graph) Edges() []Edge {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	seen := make(map[Edge]bool)
	var out []Edge
	for _, id := range g.order {
		for _, n := range g.nodes[id].See {
			if _, ok := g.nodes[n]; !ok {
				continue // endpoint outside the discovered set
			}
			e := Edge{A: id, B: n}
			if g.index[n] < g.index[id] {
				e = Edge{A: n, B: id}
			}
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// AsymmetricEdges returns the pairs where one discovered room lists the
// other as a neighbor but the reverse listing is missing. A non-empty
// result means the remote graph is not undirected, which is the one
// condition that can strand the backtracker.
func (g *Graph) AsymmetricEdges() []Edge {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var out []Edge
	for _, id := range g.order {
		for _, n := range g.nodes[id].See {
			other, ok := g.nodes[n]
			if !ok {
				continue
			}
			if !other.Sees(id) {
				out = append(out, Edge{A: id, B: n})
			}
		}
	}
	return out
}

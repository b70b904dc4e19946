// Package room defines the room data model and the per-session room cache.
//
// A room is a node in the remote maze graph: an opaque identifier, an
// ordered list of neighbor identifiers, and display data (position and
// colour) that the exploration algorithm carries through untouched.
package room

// ID uniquely names a room. The server renders identifiers as 16 uppercase
// hex digits; the client treats them as opaque tokens and only ever
// compares them for equality.
type ID string

// Point is the position of a room's centre in the server's coordinate
// space. Display data only.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Room is one room record as returned by the remote service. See lists
// every room directly reachable in one move; its order is the tie-break
// for which neighbor the explorer visits first.
type Room struct {
	XID ID     `json:"xid"`
	Pos Point  `json:"pos"`
	Col string `json:"col"`
	See []ID   `json:"see"`
}

// Clone returns a deep copy of the room. Cached records are cloned on the
// way in so later mutation of the source cannot reach the cache.
func (r *Room) Clone() *Room {
	out := *r
	out.See = make([]ID, len(r.See))
	copy(out.See, r.See)
	return &out
}

// Sees reports whether id appears in the room's neighbor list.
func (r *Room) Sees(id ID) bool {
	for _, n := range r.See {
		if n == id {
			return true
		}
	}
	return false
}

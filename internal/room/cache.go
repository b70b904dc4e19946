package room

// State is the cache's knowledge about one room identifier.
type State int

const (
	// Unseen means the identifier has never been referenced. It is the
	// zero value and is never stored explicitly; an absent entry is Unseen.
	Unseen State = iota

	// Unknown means some fetched room's neighbor list referenced the
	// identifier, but the room itself has not been fetched yet. Unknown
	// identifiers form the exploration frontier.
	Unknown

	// Known means the room has been fetched and its record, including its
	// authoritative neighbor list, is available.
	Known
)

// String returns the state name for logs and test failure messages.
func (s State) String() string {
	switch s {
	case Unseen:
		return "unseen"
	case Unknown:
		return "unknown"
	case Known:
		return "known"
	default:
		return "invalid"
	}
}

type entry struct {
	state State
	room  *Room
}

// Cache tracks every room identifier seen during one exploration session.
// Each identifier moves Unseen -> Unknown -> Known and never regresses;
// once Known, the stored record is immutable for the rest of the session.
//
// A Cache is exclusively owned by one Explorer and is not safe for
// concurrent use.
type Cache struct {
	entries map[ID]entry
	order   []ID // Known ids in first-fetched order.
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[ID]entry)}
}

// MarkReferenced records that id was mentioned by some room's neighbor
// list. An Unseen id becomes Unknown; Unknown and Known ids are left
// untouched. Idempotent.
func (c *Cache) MarkReferenced(id ID) {
	if _, ok := c.entries[id]; ok {
		return
	}
	c.entries[id] = entry{state: Unknown}
}

// RecordFetched stores a fetched room as Known and marks every neighbor it
// references. The record is returned unchanged so the call composes with
// the fetch step. A room that is already Known keeps its original record;
// the remote graph is static within a session, so a second fetch of the
// same room carries no new information.
func (c *Cache) RecordFetched(r *Room) *Room {
	if prev, ok := c.entries[r.XID]; !ok || prev.state != Known {
		c.entries[r.XID] = entry{state: Known, room: r.Clone()}
		c.order = append(c.order, r.XID)
	}
	for _, n := range r.See {
		c.MarkReferenced(n)
	}
	return r
}

// IsUnknown reports whether id is exactly Unknown: referenced by a fetched
// room but not itself fetched. Unseen ids report false; the explorer can
// only ever reach a room it has already seen referenced.
func (c *Cache) IsUnknown(id ID) bool {
	return c.entries[id].state == Unknown
}

// Get returns the Known record for id, if any.
func (c *Cache) Get(id ID) (*Room, bool) {
	e, ok := c.entries[id]
	if !ok || e.state != Known {
		return nil, false
	}
	return e.room, true
}

// State returns the cache state for id.
func (c *Cache) State(id ID) State {
	return c.entries[id].state
}

// Known returns every fetched room in first-fetched order.
func (c *Cache) Known() []*Room {
	out := make([]*Room, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id].room)
	}
	return out
}

// Len returns the number of identifiers the cache has seen in any state.
func (c *Cache) Len() int {
	return len(c.entries)
}

// KnownCount returns the number of fetched rooms.
func (c *Cache) KnownCount() int {
	return len(c.order)
}

package explorer

// Report summarizes one finished (or aborted) session.
type Report struct {
	// RoomsDiscovered is the number of distinct rooms fetched.
	RoomsDiscovered int

	// Entries is the number of observer notifications: every room entry,
	// including re-entries while backtracking.
	Entries int

	// ForwardMoves and BacktrackMoves split the successful move requests
	// by direction. Forward moves discover new rooms; backtrack moves
	// re-enter ancestors.
	ForwardMoves   int
	BacktrackMoves int

	// Requests counts every round-trip issued, including the initial
	// fetch and any request that failed.
	Requests int
}

// Progress is a point-in-time snapshot of a running session, safe to take
// from another goroutine.
type Progress struct {
	RoomsDiscovered int64 `json:"rooms_discovered"`
	Entries         int64 `json:"entries"`
	Requests        int64 `json:"requests"`
}

// Progress returns the live counters for the session.
func (e *Explorer) Progress() Progress {
	return Progress{
		RoomsDiscovered: e.discovered.Load(),
		Entries:         e.entries.Load(),
		Requests:        e.requests.Load(),
	}
}

// report snapshots the counters into a final Report.
func (e *Explorer) report() *Report {
	return &Report{
		RoomsDiscovered: int(e.discovered.Load()),
		Entries:         int(e.entries.Load()),
		ForwardMoves:    int(e.forward.Load()),
		BacktrackMoves:  int(e.backward.Load()),
		Requests:        int(e.requests.Load()),
	}
}

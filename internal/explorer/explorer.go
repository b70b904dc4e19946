// Package explorer implements the depth-first walk that discovers every
// room reachable from the starting room.
//
// The walk is strictly sequential: one request is in flight at a time, and
// each step depends on the room the previous step returned. The explorer
// owns its cache and trail for the whole session; nothing else mutates
// them.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/vk/roomwalk/internal/room"
	"github.com/vk/roomwalk/internal/roomsvc"
)

// ErrNoBacktrackPath is wrapped into the warning-path termination report
// when the trail holds ancestors but none of them neighbors the current
// room. With a symmetric remote graph this cannot happen; seeing it means
// the server's edges are asymmetric.
var ErrNoBacktrackPath = errors.New("explorer: no ancestor adjacent to the current room")

// Observer receives a one-way notification for every room the walker
// enters, including rooms re-entered while backtracking. Observers must
// not retain the record past the call.
type Observer interface {
	RoomEntered(r *room.Room)
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithObserver appends an observer. Observers are notified in
// registration order.
func WithObserver(o Observer) Option {
	return func(e *Explorer) { e.observers = append(e.observers, o) }
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Explorer) { e.logger = logger }
}

// Explorer walks one session against one remote room service. Create a
// fresh instance per session; instances are not reusable.
type Explorer struct {
	svc       roomsvc.Service
	cache     *room.Cache
	trail     []room.ID
	current   *room.Room
	observers []Observer
	logger    *slog.Logger

	// Progress counters. Written only by Run, but read concurrently by
	// the status endpoint, hence the atomics.
	entries    atomic.Int64
	requests   atomic.Int64
	discovered atomic.Int64
	forward    atomic.Int64
	backward   atomic.Int64
}

// New creates an explorer for one session over svc.
func New(svc roomsvc.Service, opts ...Option) *Explorer {
	e := &Explorer{
		svc:    svc,
		cache:  room.NewCache(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the session: fetch the starting room, then repeat the main
// step until no frontier remains and the trail is unwound. Any request
// failure is fatal for the session; the cache and trail are left exactly
// as they were before the failed request.
func (e *Explorer) Run(ctx context.Context) (*Report, error) {
	e.requests.Add(1)
	start, err := e.svc.Start(ctx)
	if err != nil {
		return e.report(), fmt.Errorf("failed to obtain the starting room: %w", err)
	}
	e.enter(e.cache.RecordFetched(start))

	for {
		if err := ctx.Err(); err != nil {
			return e.report(), err
		}

		if next, ok := e.nextFrontier(); ok {
			if err := e.advance(ctx, next); err != nil {
				return e.report(), err
			}
			continue
		}

		if len(e.trail) == 0 {
			e.logger.Debug("Frontier exhausted and trail unwound, session complete.")
			return e.report(), nil
		}

		done, err := e.backtrack(ctx)
		if err != nil {
			return e.report(), err
		}
		if done {
			return e.report(), nil
		}
	}
}

// nextFrontier scans the current room's neighbor list left to right and
// returns the first id that is still Unknown. The scan order is the only
// tie-break, so exploration is deterministic for a deterministic server.
func (e *Explorer) nextFrontier() (room.ID, bool) {
	for _, id := range e.current.See {
		if e.cache.IsUnknown(id) {
			return id, true
		}
	}
	return "", false
}

// advance moves into an unvisited neighbor. The departure room goes onto
// the trail only once the move has succeeded, so a failed request leaves
// the trail untouched.
func (e *Explorer) advance(ctx context.Context, next room.ID) error {
	from := e.current.XID

	e.requests.Add(1)
	moved, err := e.svc.Move(ctx, next)
	if err != nil {
		return fmt.Errorf("failed to advance from %s: %w", from, err)
	}

	e.trail = append(e.trail, from)
	e.forward.Add(1)
	e.enter(e.cache.RecordFetched(moved))
	return nil
}

// backtrack walks the trail from its top looking for the most recent
// ancestor that neighbors the current room, moves there and discards that
// ancestor along with everything stacked above it. It reports done=true
// when the trail holds no adjacent ancestor, which terminates the session.
func (e *Explorer) backtrack(ctx context.Context) (done bool, err error) {
	// Scan first, commit after the move succeeds. A failed request must
	// not leave the trail half-popped.
	i := len(e.trail) - 1
	for i >= 0 && !e.current.Sees(e.trail[i]) {
		i--
	}
	if i < 0 {
		// Reachable only if the remote graph has asymmetric edges: the
		// rooms we came through no longer lead back. Terminate, loudly.
		e.logger.Warn("Trail exhausted without a way back, terminating.",
			"current", e.current.XID,
			"abandoned", len(e.trail),
			"cause", ErrNoBacktrackPath)
		e.trail = e.trail[:0]
		return true, nil
	}
	back := e.trail[i]

	e.requests.Add(1)
	moved, err := e.svc.Move(ctx, back)
	if err != nil {
		return false, fmt.Errorf("failed to backtrack from %s: %w", e.current.XID, err)
	}

	e.trail = e.trail[:i]
	e.backward.Add(1)
	e.enter(e.cache.RecordFetched(moved))
	return false, nil
}

// enter makes r the current room and fans the entry out to observers.
func (e *Explorer) enter(r *room.Room) {
	e.current = r
	e.entries.Add(1)
	e.discovered.Store(int64(e.cache.KnownCount()))

	e.logger.Debug("Entered room.",
		"xid", r.XID,
		"neighbors", len(r.See),
		"trail_depth", len(e.trail))

	for _, o := range e.observers {
		o.RoomEntered(r)
	}
}

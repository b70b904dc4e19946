// Package roomsvc talks to the remote room service.
//
// The service exposes one maze per message name. GET returns the walker's
// current room (the entry room for a fresh session) and PUT requests a move
// to a neighboring room. Session affinity rides on a cookie, so each
// exploration session gets its own cookie jar.
package roomsvc

import (
	"context"
	"errors"

	"github.com/vk/roomwalk/internal/room"
)

// ErrNotFound is returned when the service rejects a request with 404:
// an unknown message, an unknown room, or an illegal transition.
var ErrNotFound = errors.New("roomsvc: not found")

// Service is the semantic contract the explorer consumes. Start begins a
// fresh session server-side and returns the starting room; Move requests a
// transition to a neighbor of the server's current room and returns the
// full record for it. Implementations must not retain returned rooms.
type Service interface {
	Start(ctx context.Context) (*room.Room, error)
	Move(ctx context.Context, id room.ID) (*room.Room, error)
}

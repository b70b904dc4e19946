// Package render contains the collaborators that surface an exploration to
// the user: a structured-log trace of every room entered, and an SVG map
// of the discovered graph.
package render

import (
	"log/slog"

	"github.com/vk/roomwalk/internal/room"
)

// TraceLog logs one line per entered room. It is the default render/notify
// side effect of the walk.
type TraceLog struct {
	logger *slog.Logger
	count  int
}

// NewTraceLog creates a trace over the given logger.
func NewTraceLog(logger *slog.Logger) *TraceLog {
	return &TraceLog{logger: logger}
}

// RoomEntered implements explorer.Observer.
func (t *TraceLog) RoomEntered(r *room.Room) {
	t.count++
	t.logger.Info("🚪 Entered room.",
		"entry", t.count,
		"xid", r.XID,
		"col", r.Col,
		"neighbors", len(r.See))
}

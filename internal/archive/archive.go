// Package archive publishes a fully explored map to external storage so
// other tools can read the graph without re-walking the maze.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vk/roomwalk/internal/worldmap"
)

// Store persists one explored map under a name.
type Store interface {
	SaveMap(ctx context.Context, name string, g *worldmap.Graph) error
}

// Meta describes an archived map.
type Meta struct {
	Rooms       int       `json:"rooms"`
	Edges       int       `json:"edges"`
	CompletedAt time.Time `json:"completed_at"`
}

// metaField is the reserved hash field holding the map metadata. Room ids
// are 16 hex digits, so the name cannot collide with one.
const metaField = "meta"

// EncodeRooms flattens the discovered rooms into one JSON document per
// room id, keyed for a field-per-room hash layout.
func EncodeRooms(g *worldmap.Graph) (map[string]string, error) {
	fields := make(map[string]string, g.Len())
	for _, r := range g.Rooms() {
		data, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to encode room %s: %w", r.XID, err)
		}
		fields[string(r.XID)] = string(data)
	}
	return fields, nil
}

// EncodeMeta builds the metadata document for an archived map.
func EncodeMeta(g *worldmap.Graph, completedAt time.Time) (string, error) {
	meta := Meta{
		Rooms:       g.Len(),
		Edges:       len(g.Edges()),
		CompletedAt: completedAt.UTC(),
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode map metadata: %w", err)
	}
	return string(data), nil
}

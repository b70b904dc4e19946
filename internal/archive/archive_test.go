package archive

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/roomwalk/internal/room"
	"github.com/vk/roomwalk/internal/worldmap"
)

func exploredPair() *worldmap.Graph {
	g := worldmap.New()
	g.RoomEntered(&room.Room{XID: "00000000000000A1", Col: "#111111", See: []room.ID{"00000000000000B2"}})
	g.RoomEntered(&room.Room{XID: "00000000000000B2", Col: "#222222", See: []room.ID{"00000000000000A1"}})
	return g
}

func TestEncodeRooms(t *testing.T) {
	fields, err := EncodeRooms(exploredPair())
	require.NoError(t, err)
	require.Len(t, fields, 2)

	var decoded room.Room
	require.NoError(t, json.Unmarshal([]byte(fields["00000000000000A1"]), &decoded))
	assert.Equal(t, room.ID("00000000000000A1"), decoded.XID)
	assert.Equal(t, "#111111", decoded.Col)
	assert.Equal(t, []room.ID{"00000000000000B2"}, decoded.See)
}

func TestEncodeMeta(t *testing.T) {
	completed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	raw, err := EncodeMeta(exploredPair(), completed)
	require.NoError(t, err)

	var meta Meta
	require.NoError(t, json.Unmarshal([]byte(raw), &meta))
	assert.Equal(t, 2, meta.Rooms)
	assert.Equal(t, 1, meta.Edges)
	assert.True(t, meta.CompletedAt.Equal(completed))
	assert.Equal(t, time.UTC, meta.CompletedAt.Location(), "timestamps are archived in UTC")
}

func TestEncodeRooms_Empty(t *testing.T) {
	fields, err := EncodeRooms(worldmap.New())
	require.NoError(t, err)
	assert.Empty(t, fields)
}

package render

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/roomwalk/internal/room"
	"github.com/vk/roomwalk/internal/worldmap"
)

func discoveredTriangle() *worldmap.Graph {
	g := worldmap.New()
	g.RoomEntered(&room.Room{XID: "a", Pos: room.Point{X: 0, Y: 0}, Col: "#112233", See: []room.ID{"b", "c"}})
	g.RoomEntered(&room.Room{XID: "b", Pos: room.Point{X: 10, Y: 0}, Col: "#445566", See: []room.ID{"a"}})
	g.RoomEntered(&room.Room{XID: "c", Pos: room.Point{X: 5, Y: 8}, See: []room.ID{"a"}})
	return g
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	m := NewSVGMap(discoveredTriangle(), "unused.svg")
	require.NoError(t, m.Render(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg xmlns="), "output should open with an svg element")
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))

	assert.Equal(t, 3, strings.Count(out, "<circle"), "one circle per room")
	assert.Equal(t, 2, strings.Count(out, "<line"), "one line per edge")

	assert.Contains(t, out, `fill="#112233"`)
	assert.Contains(t, out, `fill="#808080"`, "missing colour falls back to grey")
	assert.Contains(t, out, "<title>a</title>")
}

func TestRender_EmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	m := NewSVGMap(worldmap.New(), "unused.svg")
	err := m.Render(&buf)
	assert.ErrorContains(t, err, "no rooms discovered")
}

func TestWrite(t *testing.T) {
	path := t.TempDir() + "/map.svg"
	m := NewSVGMap(discoveredTriangle(), path)
	require.NoError(t, m.Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestTraceLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tr := NewTraceLog(logger)
	tr.RoomEntered(&room.Room{XID: "a", See: []room.ID{"b"}})
	tr.RoomEntered(&room.Room{XID: "b"})

	out := buf.String()
	assert.Contains(t, out, "xid=a")
	assert.Contains(t, out, "xid=b")
	assert.Contains(t, out, "entry=2")
}

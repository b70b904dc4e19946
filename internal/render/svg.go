package render

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/vk/roomwalk/internal/room"
	"github.com/vk/roomwalk/internal/worldmap"
)

// Geometry constants for the SVG map. The viewport is scaled so the
// discovered extent fits into a fixed-width image.
const (
	svgWidth    = 800.0
	svgPadding  = 20.0
	roomRadius  = 6.0
	fallbackCol = "#808080"
)

// SVGMap renders a discovered world map as an SVG image: one circle per
// room at its reported position, filled with the room's colour, and one
// line per discovered adjacency.
type SVGMap struct {
	graph  *worldmap.Graph
	output string
}

// NewSVGMap creates a renderer over g that writes to the given path.
func NewSVGMap(g *worldmap.Graph, output string) *SVGMap {
	return &SVGMap{graph: g, output: output}
}

// Write renders the map to the configured output file.
func (m *SVGMap) Write() error {
	f, err := os.Create(m.output)
	if err != nil {
		return fmt.Errorf("failed to create SVG output %q: %w", m.output, err)
	}
	if err := m.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to finish SVG output %q: %w", m.output, err)
	}
	return nil
}

// Render writes the SVG document to w.
func (m *SVGMap) Render(w io.Writer) error {
	rooms := m.graph.Rooms()
	if len(rooms) == 0 {
		return fmt.Errorf("nothing to render: no rooms discovered")
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range rooms {
		minX = math.Min(minX, r.Pos.X)
		minY = math.Min(minY, r.Pos.Y)
		maxX = math.Max(maxX, r.Pos.X)
		maxY = math.Max(maxY, r.Pos.Y)
	}

	scale := 1.0
	if maxX > minX {
		scale = (svgWidth - 2*svgPadding) / (maxX - minX)
	}
	tx := func(x float64) float64 { return svgPadding + (x-minX)*scale }
	ty := func(y float64) float64 { return svgPadding + (y-minY)*scale }
	height := ty(maxY) + svgPadding

	var err error
	put := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	put("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		svgWidth, height, svgWidth, height)

	for _, e := range m.graph.Edges() {
		a, okA := roomByID(rooms, e.A)
		b, okB := roomByID(rooms, e.B)
		if !okA || !okB {
			continue
		}
		put("  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"#c0c0c0\" stroke-width=\"2\"/>\n",
			tx(a.Pos.X), ty(a.Pos.Y), tx(b.Pos.X), ty(b.Pos.Y))
	}

	for _, r := range rooms {
		col := r.Col
		if col == "" {
			col = fallbackCol
		}
		put("  <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.1f\" fill=\"%s\"><title>%s</title></circle>\n",
			tx(r.Pos.X), ty(r.Pos.Y), roomRadius, col, r.XID)
	}

	put("</svg>\n")
	if err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}

func roomByID(rooms []*room.Room, id room.ID) (*room.Room, bool) {
	for _, r := range rooms {
		if r.XID == id {
			return r, true
		}
	}
	return nil, false
}

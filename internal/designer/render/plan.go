package render

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"bathroom-designer/internal/designer/models"
)

// ============================================================
// Plan Renderer
// ============================================================

const (
	padding       = 10.0
	ventRadius    = 4.0
	defaultExtent = 100.0
)

var fixtureStroke = map[models.FixtureType]string{
	models.FixtureToilet:  "#8c564b",
	models.FixtureSink:    "#17becf",
	models.FixtureShower:  "#1f77b4",
	models.FixtureBathtub: "#9467bd",
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render собирает SVG вида сверху: контур комнаты, сантехника, окна, двери
// и вентиляция. Координаты в дюймах от начала комнаты.
func (r *Renderer) Render(room *models.BathRoom) (string, error) {
	if room == nil {
		return "", fmt.Errorf("room is nil")
	}

	width, height := r.planSize(room)

	var elements []string
	elements = append(elements, r.renderOutline(room))
	elements = append(elements, r.renderFixtures(room)...)
	elements = append(elements, r.renderOpenings(room)...)
	elements = append(elements, r.renderVentilation(room)...)

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		formatFloat(width), formatFloat(height),
		formatFloat(-padding), formatFloat(-padding), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf(`  <title>%s</title>`, html.EscapeString(room.Name)))
	builder.WriteString("\n")

	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

// ============================================================
// Sizing
// ============================================================

func (r *Renderer) planSize(room *models.BathRoom) (float64, float64) {
	maxX, maxY := room.Dimension.Length, room.Dimension.Width

	grow := func(p models.Position, d models.Dimension) {
		maxX = math.Max(maxX, p.X+d.Length)
		maxY = math.Max(maxY, p.Y+d.Width)
	}
	for _, f := range room.Fixtures {
		grow(f.Position, f.Dimension)
	}
	for _, w := range room.Windows {
		grow(w.Position, w.Dimension)
	}
	for _, d := range room.Doors {
		grow(d.Position, d.Dimension)
	}

	if maxX <= 0 {
		maxX = defaultExtent
	}
	if maxY <= 0 {
		maxY = defaultExtent
	}
	return maxX + 2*padding, maxY + 2*padding
}

// ============================================================
// Element renderers
// ============================================================

func (r *Renderer) renderOutline(room *models.BathRoom) string {
	return rect("room-"+room.ID.String(), 0, 0, room.Dimension.Length, room.Dimension.Width, "#000")
}

func (r *Renderer) renderFixtures(room *models.BathRoom) []string {
	var out []string

	for _, f := range room.Fixtures {
		stroke, ok := fixtureStroke[f.FixtureType]
		if !ok {
			stroke = "#7f7f7f"
		}
		out = append(out, rect("fixture-"+f.ID.String(), f.Position.X, f.Position.Y, f.Dimension.Length, f.Dimension.Width, stroke))
	}

	return out
}

func (r *Renderer) renderOpenings(room *models.BathRoom) []string {
	var out []string

	for _, w := range room.Windows {
		out = append(out, rect("window-"+w.ID.String(), w.Position.X, w.Position.Y, w.Dimension.Length, w.Dimension.Width, "#2ca02c"))
	}
	for _, d := range room.Doors {
		out = append(out, rect("door-"+d.ID.String(), d.Position.X, d.Position.Y, d.Dimension.Length, d.Dimension.Width, "#d62728"))
	}

	return out
}

func (r *Renderer) renderVentilation(room *models.BathRoom) []string {
	v := room.Ventilation
	if v == nil || v.Position == nil {
		return nil
	}

	return []string{fmt.Sprintf(`<circle id="ventilation-%s" cx="%s" cy="%s" r="%s" fill="none" stroke="#ff7f0e" />`,
		v.ID, formatFloat(v.Position.X), formatFloat(v.Position.Y), formatFloat(ventRadius))}
}

// ============================================================
// Formatting helpers
// ============================================================

func rect(id string, x, y, w, h float64, stroke string) string {
	return fmt.Sprintf(`<rect id="%s" x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" />`,
		id, formatFloat(x), formatFloat(y), formatFloat(w), formatFloat(h), stroke)
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

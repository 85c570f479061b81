package color

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

type Gradient struct {
	Direction  string
	ColorStops []ColorStop
	ID         string
}

type ColorStop struct {
	Color    string
	Position string
}

// NewLinearGradient spaces colors evenly from 0% to 100%.
// An empty direction renders top to bottom.
func NewLinearGradient(direction string, colors []string) Gradient {
	g := Gradient{
		Direction: strings.TrimSpace(direction),
	}
	for i, c := range colors {
		offset := 0.
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1) * 100
		}
		g.ColorStops = append(g.ColorStops, ColorStop{
			Color:    c,
			Position: fmt.Sprintf("%.2f%%", offset),
		})
	}
	g.ID = UniqueGradientID(g.CSS())
	return g
}

func (g Gradient) CSS() string {
	params := make([]string, 0, len(g.ColorStops)+1)
	if g.Direction != "" {
		params = append(params, g.Direction)
	}
	for _, cs := range g.ColorStops {
		if cs.Position == "" {
			params = append(params, cs.Color)
		} else {
			params = append(params, cs.Color+" "+cs.Position)
		}
	}
	return fmt.Sprintf("linear-gradient(%s)", strings.Join(params, ", "))
}

func (g Gradient) SVG() string {
	x1, y1, x2, y2 := parseLinearGradientDirection(g.Direction)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<linearGradient id="%s" `, g.ID))
	sb.WriteString(fmt.Sprintf(`x1="%s" y1="%s" x2="%s" y2="%s">`, x1, y1, x2, y2))
	sb.WriteString("\n")
	for _, cs := range g.ColorStops {
		sb.WriteString(fmt.Sprintf(`<stop offset="%s" stop-color="%s" />`, cs.Position, cs.Color))
		sb.WriteString("\n")
	}
	sb.WriteString(`</linearGradient>`)
	return sb.String()
}

// parseLinearGradientDirection only understands the "to <side>" keywords.
func parseLinearGradientDirection(direction string) (x1, y1, x2, y2 string) {
	x1, y1, x2, y2 = "0%", "0%", "0%", "100%"

	dir := strings.TrimSpace(direction)
	if !strings.HasPrefix(dir, "to ") {
		return x1, y1, x2, y2
	}

	xStart, yStart := "50%", "50%"
	xEnd, yEnd := "50%", "50%"
	for _, part := range strings.Fields(strings.TrimPrefix(dir, "to ")) {
		switch part {
		case "left":
			xStart, xEnd = "100%", "0%"
		case "right":
			xStart, xEnd = "0%", "100%"
		case "top":
			yStart, yEnd = "100%", "0%"
		case "bottom":
			yStart, yEnd = "0%", "100%"
		}
	}
	return xStart, yStart, xEnd, yEnd
}

func UniqueGradientID(cssGradient string) string {
	h := sha1.New()
	h.Write([]byte(cssGradient))
	return "grad-" + hex.EncodeToString(h.Sum(nil))
}

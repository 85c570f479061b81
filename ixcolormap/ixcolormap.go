// Package ixcolormap derives data visualization color sequences from the iX palettes.
package ixcolormap

import (
	"errors"
	stdcolor "image/color"

	"gonum.org/v1/plot/palette"

	"oss.terrastruct.com/ixtheme/ixthemes"
	"oss.terrastruct.com/ixtheme/lib/color"
)

const (
	DefaultSteps = 256
	DefaultCount = 20

	MaxSteps = 1 << 16
	MaxCount = 1 << 12
)

// Gradient anchors. Dark mode starts from a near-black gray, not pure black.
const (
	LightAnchor = "#ffffff"
	DarkAnchor  = "#222222"
)

var ErrInvalidArgument = errors.New("invalid argument")

var _ palette.Palette = Sequence(nil)

// Sequence is an ordered list of #rrggbb colors.
type Sequence []string

// Colors skips entries that do not parse, so a hand built Sequence with a bad
// color yields fewer colors than it holds. Continuous and Categorical only
// produce valid hex.
func (s Sequence) Colors() []stdcolor.Color {
	colors := make([]stdcolor.Color, 0, len(s))
	for _, c := range s {
		nrgba, err := color.ToNRGBA(c)
		if err != nil {
			continue
		}
		colors = append(colors, nrgba)
	}
	return colors
}

func (s Sequence) Gradient(direction string) color.Gradient {
	return color.NewLinearGradient(direction, s)
}

func Anchor(mode ixthemes.Mode) string {
	if mode == ixthemes.Dark {
		return DarkAnchor
	}
	return LightAnchor
}

package ixcolormap

import (
	stdcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"

	"oss.terrastruct.com/ixtheme/ixthemes"
	"oss.terrastruct.com/ixtheme/ixthemes/ixthemescatalog"
	"oss.terrastruct.com/ixtheme/lib/color"
	"oss.terrastruct.com/ixtheme/lib/go2"
)

var _ palette.ColorMap = (*ColorMap)(nil)

// ColorMap maps values in [Min, Max] onto the mode's continuous gradient.
// It implements palette.ColorMap for gonum plots.
type ColorMap struct {
	from, to colorful.Color

	min, max float64
	alpha    float64
}

func NewColorMap(mode ixthemes.Mode) (*ColorMap, error) {
	p, err := ixthemescatalog.Find(mode)
	if err != nil {
		return nil, err
	}
	from, err := color.ParseHex(Anchor(mode))
	if err != nil {
		return nil, err
	}
	to, err := color.ParseHex(p.Primary.Main)
	if err != nil {
		return nil, err
	}
	return &ColorMap{
		from:  from,
		to:    to,
		min:   0,
		max:   1,
		alpha: 1,
	}, nil
}

func (cm *ColorMap) At(v float64) (stdcolor.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v > cm.max:
		return nil, palette.ErrOverflow
	case v < cm.min:
		return nil, palette.ErrUnderflow
	}

	t := 0.
	if cm.max > cm.min {
		t = (v - cm.min) / (cm.max - cm.min)
	}
	r, g, b := cm.from.BlendRgb(cm.to, t).Clamped().RGB255()
	return stdcolor.NRGBA{
		R: r,
		G: g,
		B: b,
		A: uint8(math.Round(cm.alpha * 255)),
	}, nil
}

func (cm *ColorMap) Max() float64 {
	return cm.max
}

func (cm *ColorMap) SetMax(v float64) {
	cm.max = v
}

func (cm *ColorMap) Min() float64 {
	return cm.min
}

func (cm *ColorMap) SetMin(v float64) {
	cm.min = v
}

func (cm *ColorMap) Alpha() float64 {
	return cm.alpha
}

// SetAlpha clamps alpha into [0, 1].
func (cm *ColorMap) SetAlpha(alpha float64) {
	cm.alpha = go2.Max(0, go2.Min(1, alpha))
}

// Palette samples n evenly spaced colors between Min and Max.
func (cm *ColorMap) Palette(n int) palette.Palette {
	if n <= 0 {
		return plainPalette{}
	}
	colors := make(plainPalette, 0, n)
	for i := 0; i < n; i++ {
		v := cm.min
		if n > 1 {
			v = go2.Min(cm.max, cm.min+(cm.max-cm.min)*float64(i)/float64(n-1))
		}
		c, err := cm.At(v)
		if err != nil {
			continue
		}
		colors = append(colors, c)
	}
	return colors
}

type plainPalette []stdcolor.Color

func (p plainPalette) Colors() []stdcolor.Color {
	return p
}

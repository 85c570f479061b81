package ixcolormap

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/ixtheme/ixthemes"
	"oss.terrastruct.com/ixtheme/ixthemes/ixthemescatalog"
	"oss.terrastruct.com/ixtheme/lib/color"
)

// maxNudges bounds the search for a free color when a generated one collides.
const maxNudges = 4096

func BaseColors(p ixthemes.Palette) Sequence {
	return Sequence{
		p.Primary.Main,
		p.Secondary.Main,
		p.Success.Main,
		p.Warning.Main,
		p.Error.Main,
	}
}

// Categorical returns count distinguishable colors. Up to five it returns the
// palette's base colors in order, beyond that it rotates the hue of primary.main.
func Categorical(mode ixthemes.Mode, count int) (Sequence, error) {
	p, err := ixthemescatalog.Find(mode)
	if err != nil {
		return nil, err
	}
	if count < 0 || count > MaxCount {
		return nil, fmt.Errorf("%w: count must be in [0, %d], got %d", ErrInvalidArgument, MaxCount, count)
	}

	base := BaseColors(p)
	if count <= len(base) {
		return base[:count:count], nil
	}
	return hueRotations(p.Primary.Main, count)
}

func hueRotations(primary string, count int) (Sequence, error) {
	h, s, l, err := color.HSL(primary)
	if err != nil {
		return nil, err
	}

	seq := make(Sequence, 0, count)
	seen := make(map[string]struct{}, count)
	seq = append(seq, primary)
	seen[strings.ToLower(primary)] = struct{}{}

	step := 360 / float64(count)
	for i := 1; i < count; i++ {
		hue := h + step*float64(i)
		c := color.FromHSL(hue, s, l)
		for k := 1; has(seen, c); k++ {
			if k > maxNudges {
				return nil, fmt.Errorf("%w: cannot generate %d distinct colors from %s", ErrInvalidArgument, count, primary)
			}
			c = nudge(hue, s, l, k)
		}
		seen[c] = struct{}{}
		seq = append(seq, c)
	}
	return seq, nil
}

// nudge walks lightness outward in alternating directions while drifting the hue.
func nudge(h, s, l float64, k int) string {
	delta := 0.004 * float64((k+1)/2)
	if k%2 == 0 {
		delta = -delta
	}
	return color.FromHSL(h+0.5*float64(k), s, l+delta)
}

func has(seen map[string]struct{}, c string) bool {
	_, ok := seen[c]
	return ok
}

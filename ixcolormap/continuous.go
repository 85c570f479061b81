package ixcolormap

import (
	"fmt"

	"oss.terrastruct.com/ixtheme/ixthemes"
	"oss.terrastruct.com/ixtheme/ixthemes/ixthemescatalog"
	"oss.terrastruct.com/ixtheme/lib/color"
)

// Continuous interpolates steps colors in RGB from the mode's anchor to primary.main,
// both endpoints included.
func Continuous(mode ixthemes.Mode, steps int) (Sequence, error) {
	p, err := ixthemescatalog.Find(mode)
	if err != nil {
		return nil, err
	}
	if steps < 0 || steps > MaxSteps {
		return nil, fmt.Errorf("%w: steps must be in [0, %d], got %d", ErrInvalidArgument, MaxSteps, steps)
	}
	return interpolate(Anchor(mode), p.Primary.Main, steps)
}

func interpolate(from, to string, steps int) (Sequence, error) {
	seq := make(Sequence, 0, steps)
	for i := 0; i < steps; i++ {
		t := 0.
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		c, err := color.Lerp(from, to, t)
		if err != nil {
			return nil, err
		}
		seq = append(seq, c)
	}
	return seq, nil
}

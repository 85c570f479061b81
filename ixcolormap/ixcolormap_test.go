package ixcolormap_test

import (
	"errors"
	stdcolor "image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/palette"

	"oss.terrastruct.com/ixtheme/ixcolormap"
	"oss.terrastruct.com/ixtheme/ixthemes"
	"oss.terrastruct.com/ixtheme/ixthemes/ixthemescatalog"
	"oss.terrastruct.com/ixtheme/lib/color"
)

func TestContinuous(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		mode   ixthemes.Mode
		anchor string
	}{
		{mode: ixthemes.Light, anchor: "#ffffff"},
		{mode: ixthemes.Dark, anchor: "#222222"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(string(tc.mode), func(t *testing.T) {
			t.Parallel()

			p, err := ixthemescatalog.Find(tc.mode)
			assert.NoError(t, err)

			seq, err := ixcolormap.Continuous(tc.mode, ixcolormap.DefaultSteps)
			assert.NoError(t, err)
			assert.Len(t, seq, 256)
			assert.Equal(t, tc.anchor, seq[0])
			assert.Equal(t, p.Primary.Main, seq[len(seq)-1])

			first, err := color.ToRGBA(seq[0], nil)
			assert.NoError(t, err)
			exp, err := color.ToRGBA(tc.anchor, nil)
			assert.NoError(t, err)
			assert.Equal(t, exp, first)

			assertMonotonic(t, seq)
		})
	}
}

func assertMonotonic(t *testing.T, seq ixcolormap.Sequence) {
	t.Helper()

	channels := func(s string) [3]int {
		c, err := color.ToNRGBA(s)
		assert.NoError(t, err)
		return [3]int{int(c.R), int(c.G), int(c.B)}
	}
	first := channels(seq[0])
	last := channels(seq[len(seq)-1])
	prev := first
	for _, s := range seq[1:] {
		cur := channels(s)
		for ch := 0; ch < 3; ch++ {
			if last[ch] >= first[ch] {
				assert.GreaterOrEqual(t, cur[ch], prev[ch], "channel %d at %s", ch, s)
			} else {
				assert.LessOrEqual(t, cur[ch], prev[ch], "channel %d at %s", ch, s)
			}
		}
		prev = cur
	}
}

func TestContinuousEdges(t *testing.T) {
	t.Parallel()

	seq, err := ixcolormap.Continuous(ixthemes.Dark, 0)
	assert.NoError(t, err)
	assert.Empty(t, seq)

	seq, err = ixcolormap.Continuous(ixthemes.Dark, 1)
	assert.NoError(t, err)
	assert.Equal(t, ixcolormap.Sequence{"#222222"}, seq)

	seq, err = ixcolormap.Continuous(ixthemes.Light, 2)
	assert.NoError(t, err)
	assert.Equal(t, ixcolormap.Sequence{"#ffffff", "#007993"}, seq)

	_, err = ixcolormap.Continuous(ixthemes.Light, -1)
	assert.True(t, errors.Is(err, ixcolormap.ErrInvalidArgument))

	seq, err = ixcolormap.Continuous(ixthemes.Light, ixcolormap.MaxSteps)
	assert.NoError(t, err)
	assert.Len(t, seq, ixcolormap.MaxSteps)

	_, err = ixcolormap.Continuous(ixthemes.Light, ixcolormap.MaxSteps+1)
	assert.True(t, errors.Is(err, ixcolormap.ErrInvalidArgument))

	_, err = ixcolormap.Continuous(ixthemes.Light, 1<<30)
	assert.True(t, errors.Is(err, ixcolormap.ErrInvalidArgument))

	_, err = ixcolormap.Continuous("blue", 10)
	assert.True(t, errors.Is(err, ixthemes.ErrInvalidMode))
}

func TestCategoricalBase(t *testing.T) {
	t.Parallel()

	light := ixthemescatalog.Light()
	seq, err := ixcolormap.Categorical(ixthemes.Light, 3)
	assert.NoError(t, err)
	assert.Equal(t, ixcolormap.Sequence{light.Primary.Main, light.Secondary.Main, light.Success.Main}, seq)

	dark := ixthemescatalog.Dark()
	seq, err = ixcolormap.Categorical(ixthemes.Dark, 5)
	assert.NoError(t, err)
	assert.Equal(t, ixcolormap.Sequence{
		dark.Primary.Main,
		dark.Secondary.Main,
		dark.Success.Main,
		dark.Warning.Main,
		dark.Error.Main,
	}, seq)

	seq, err = ixcolormap.Categorical(ixthemes.Dark, 0)
	assert.NoError(t, err)
	assert.Empty(t, seq)

	_, err = ixcolormap.Categorical(ixthemes.Dark, -3)
	assert.True(t, errors.Is(err, ixcolormap.ErrInvalidArgument))

	_, err = ixcolormap.Categorical(ixthemes.Dark, ixcolormap.MaxCount+1)
	assert.True(t, errors.Is(err, ixcolormap.ErrInvalidArgument))

	_, err = ixcolormap.Categorical("blue", 3)
	assert.True(t, errors.Is(err, ixthemes.ErrInvalidMode))
}

func TestCategoricalFirstIsPrimary(t *testing.T) {
	t.Parallel()

	for _, mode := range ixthemes.Modes() {
		p, err := ixthemescatalog.Find(mode)
		assert.NoError(t, err)
		for _, n := range []int{1, 2, 5, 6, 20, 64} {
			seq, err := ixcolormap.Categorical(mode, n)
			assert.NoError(t, err)
			assert.Len(t, seq, n)
			assert.Equal(t, p.Primary.Main, seq[0], "%s %d", mode, n)
		}
	}
}

func TestCategoricalDistinct(t *testing.T) {
	t.Parallel()

	for _, mode := range ixthemes.Modes() {
		for _, n := range []int{6, ixcolormap.DefaultCount, 100, 500} {
			seq, err := ixcolormap.Categorical(mode, n)
			assert.NoError(t, err)
			assert.Len(t, seq, n)

			seen := make(map[string]bool, n)
			for _, c := range seq {
				assert.False(t, seen[c], "%s %d: duplicate %s", mode, n, c)
				seen[c] = true
			}
		}
	}
}

func TestSequenceColors(t *testing.T) {
	t.Parallel()

	var p palette.Palette = ixcolormap.Sequence{"#ffffff", "#000028"}
	assert.Equal(t, []stdcolor.Color{
		stdcolor.NRGBA{R: 255, G: 255, B: 255, A: 255},
		stdcolor.NRGBA{R: 0, G: 0, B: 40, A: 255},
	}, p.Colors())
}

func TestSequenceColorsSkipsInvalid(t *testing.T) {
	t.Parallel()

	seq := ixcolormap.Sequence{"#ffffff", "not-a-color", "#000028"}
	assert.Len(t, seq.Colors(), 2)

	for _, mode := range ixthemes.Modes() {
		cont, err := ixcolormap.Continuous(mode, 32)
		assert.NoError(t, err)
		assert.Len(t, cont.Colors(), len(cont))

		cat, err := ixcolormap.Categorical(mode, 32)
		assert.NoError(t, err)
		assert.Len(t, cat.Colors(), len(cat))
	}
}

func TestSequenceGradient(t *testing.T) {
	t.Parallel()

	g := ixcolormap.Sequence{"#ffffff", "#007993"}.Gradient("to right")
	assert.Equal(t, "linear-gradient(to right, #ffffff 0.00%, #007993 100.00%)", g.CSS())
}

func TestColorMap(t *testing.T) {
	t.Parallel()

	cm, err := ixcolormap.NewColorMap(ixthemes.Dark)
	assert.NoError(t, err)
	assert.Equal(t, 0., cm.Min())
	assert.Equal(t, 1., cm.Max())
	assert.Equal(t, 1., cm.Alpha())

	c, err := cm.At(0)
	assert.NoError(t, err)
	assert.Equal(t, stdcolor.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}, c)

	c, err = cm.At(1)
	assert.NoError(t, err)
	assert.Equal(t, stdcolor.NRGBA{R: 0, G: 0xcc, B: 0xcc, A: 255}, c)

	_, err = cm.At(1.5)
	assert.Equal(t, palette.ErrOverflow, err)
	_, err = cm.At(-0.5)
	assert.Equal(t, palette.ErrUnderflow, err)
	_, err = cm.At(math.NaN())
	assert.Equal(t, palette.ErrNaN, err)

	cm.SetMin(10)
	cm.SetMax(20)
	cm.SetAlpha(0.5)
	c, err = cm.At(20)
	assert.NoError(t, err)
	assert.Equal(t, stdcolor.NRGBA{R: 0, G: 0xcc, B: 0xcc, A: 128}, c)

	cm.SetAlpha(3)
	assert.Equal(t, 1., cm.Alpha())
	cm.SetAlpha(-1)
	assert.Equal(t, 0., cm.Alpha())
}

func TestColorMapPaletteMatchesContinuous(t *testing.T) {
	t.Parallel()

	cm, err := ixcolormap.NewColorMap(ixthemes.Light)
	assert.NoError(t, err)
	seq, err := ixcolormap.Continuous(ixthemes.Light, 16)
	assert.NoError(t, err)

	assert.Equal(t, seq.Colors(), cm.Palette(16).Colors())
	assert.Empty(t, cm.Palette(0).Colors())
	assert.Empty(t, cm.Palette(-4).Colors())
	assert.Len(t, cm.Palette(1).Colors(), 1)

	_, err = ixcolormap.NewColorMap("blue")
	assert.True(t, errors.Is(err, ixthemes.ErrInvalidMode))
}

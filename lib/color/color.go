package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"oss.terrastruct.com/ixtheme/lib/go2"
)

var ErrInvalidFormat = errors.New("invalid color format")

var rgbaRegex = regexp.MustCompile(`^rgba\((\d+),\s*(\d+),\s*(\d+),\s*[\d.]+\)`)

// ToRGBA converts a hex or rgba() color into an rgb() or rgba() string.
//
// When alpha is nil, hex input yields rgb(r, g, b) and rgba() input is returned as
// is. When alpha is set, the result carries it. An rgba() string that cannot be
// rewritten is returned unchanged.
func ToRGBA(colorString string, alpha *float64) (string, error) {
	if alpha != nil {
		if math.IsNaN(*alpha) || *alpha < 0 || *alpha > 1 {
			return "", fmt.Errorf("%w: alpha %v is outside [0, 1]", ErrInvalidFormat, *alpha)
		}
	}

	if strings.HasPrefix(colorString, "rgba(") {
		if alpha == nil {
			return colorString, nil
		}
		m := rgbaRegex.FindStringSubmatch(colorString)
		if m == nil {
			return colorString, nil
		}
		return fmt.Sprintf("rgba(%s, %s, %s, %s)", m[1], m[2], m[3], formatAlpha(*alpha)), nil
	}

	r, g, b, err := decodeHex(colorString)
	if err != nil {
		return "", err
	}
	if alpha != nil {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(*alpha)), nil
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), nil
}

// decodeHex accepts #RRGGBB and #RGB, with or without the leading #.
func decodeHex(colorString string) (r, g, b uint8, err error) {
	h := strings.TrimLeft(colorString, "#")
	switch len(h) {
	case 6:
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, colorString)
	}

	v, perr := strconv.ParseUint(h, 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, colorString)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// formatAlpha prints the shortest decimal, keeping one fractional digit for
// integral values so 1 renders as 1.0.
func formatAlpha(a float64) string {
	s := strconv.FormatFloat(a, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func ParseHex(colorString string) (colorful.Color, error) {
	r, g, b, err := decodeHex(colorString)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, nil
}

// Lerp interpolates channel-wise in RGB space. t is clamped to [0, 1].
func Lerp(from, to string, t float64) (string, error) {
	c1, err := ParseHex(from)
	if err != nil {
		return "", err
	}
	c2, err := ParseHex(to)
	if err != nil {
		return "", err
	}
	t = math.Max(0, math.Min(1, t))
	return c1.BlendRgb(c2, t).Clamped().Hex(), nil
}

func RotateHue(colorString string, degrees float64) (string, error) {
	c, err := ParseHex(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := c.Hsl()
	return FromHSL(h+degrees, s, l), nil
}

func HSL(colorString string) (h, s, l float64, err error) {
	c, err := ParseHex(colorString)
	if err != nil {
		return 0, 0, 0, err
	}
	h, s, l = c.Hsl()
	return h, s, l, nil
}

// FromHSL wraps h into [0, 360) and clamps s and l into [0, 1].
func FromHSL(h, s, l float64) string {
	s = math.Max(0, math.Min(1, s))
	l = math.Max(0, math.Min(1, l))
	return colorful.Hsl(wrapHue(h), s, l).Clamped().Hex()
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ToNRGBA parses any CSS color, including #RRGGBBAA tokens, into an image/color value.
func ToNRGBA(colorString string) (stdcolor.NRGBA, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return stdcolor.NRGBA{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return stdcolor.NRGBA{
		R: channel255(c.R),
		G: channel255(c.G),
		B: channel255(c.B),
		A: channel255(c.A),
	}, nil
}

func channel255(v float64) uint8 {
	return uint8(math.Round(go2.Max(0, go2.Min(1, v)) * 255))
}

func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

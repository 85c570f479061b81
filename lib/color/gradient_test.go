package color

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/diff"
)

func TestLinearGradientCSS(t *testing.T) {
	t.Parallel()

	g := NewLinearGradient("to right", []string{"#ffffff", "#808080", "#007993"})
	diff.AssertStringEq(t, "linear-gradient(to right, #ffffff 0.00%, #808080 50.00%, #007993 100.00%)", g.CSS())
	assert.Equal(t, UniqueGradientID(g.CSS()), g.ID)
	assert.True(t, strings.HasPrefix(g.ID, "grad-"))
	assert.Len(t, g.ID, len("grad-")+40)
}

func TestLinearGradientSingleStop(t *testing.T) {
	t.Parallel()

	g := NewLinearGradient("", []string{"#222222"})
	diff.AssertStringEq(t, "linear-gradient(#222222 0.00%)", g.CSS())
}

func TestLinearGradientSVG(t *testing.T) {
	t.Parallel()

	g := NewLinearGradient("to right", []string{"#ffffff", "#007993"})
	exp := `<linearGradient id="` + g.ID + `" x1="0%" y1="50%" x2="100%" y2="50%">
<stop offset="0.00%" stop-color="#ffffff" />
<stop offset="100.00%" stop-color="#007993" />
</linearGradient>`
	diff.AssertStringEq(t, exp, g.SVG())

	vertical := NewLinearGradient("", []string{"#ffffff", "#007993"})
	assert.Contains(t, vertical.SVG(), `x1="0%" y1="0%" x2="0%" y2="100%"`)
}

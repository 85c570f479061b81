package ixcli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/ixtheme/ixthemes"
	"oss.terrastruct.com/ixtheme/ixthemes/ixthemescatalog"
	"oss.terrastruct.com/ixtheme/lib/color"
	"oss.terrastruct.com/ixtheme/lib/go2"
	"oss.terrastruct.com/ixtheme/lib/xmain"
)

const swatchWidth = 24

func swatchCmd(ctx context.Context, ms *xmain.State, mode ixthemes.Mode, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to render swatch")

	p, err := ixthemescatalog.Find(mode)
	if err != nil {
		return err
	}

	r := lipgloss.NewRenderer(ms.Stdout)
	title := r.NewStyle().Bold(true)
	label := r.NewStyle().Width(swatchWidth)

	b := &strings.Builder{}
	b.WriteString(title.Render(p.Name))
	b.WriteString("\n")

	groups := p.Groups()
	for _, name := range ixthemes.GroupNames() {
		g := groups[name]
		b.WriteString("\n")
		b.WriteString(title.Render(name))
		b.WriteString("\n")
		for _, role := range go2.SortedKeys(g) {
			block, err := swatchBlock(r, g[role])
			if err != nil {
				return fmt.Errorf("%s.%s: %w", name, role, err)
			}
			b.WriteString(label.Render(role))
			b.WriteString(block)
			b.WriteString("\n")
		}
	}
	return ms.WritePath(outputPath, []byte(b.String()))
}

func swatchBlock(r *lipgloss.Renderer, c string) (string, error) {
	bg, err := color.ToNRGBA(c)
	if err != nil {
		return "", err
	}
	fg := "#ffffff"
	cat, err := color.LuminanceCategory(c)
	if err != nil {
		return "", err
	}
	if cat == "bright" || cat == "normal" {
		fg = "#000028"
	}
	s := r.NewStyle().
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bg.R, bg.G, bg.B))).
		Foreground(lipgloss.Color(fg)).
		Width(swatchWidth).
		Padding(0, 1)
	return s.Render(c), nil
}

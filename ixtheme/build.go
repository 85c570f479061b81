package ixtheme

import (
	"oss.terrastruct.com/ixtheme/ixthemes"
	"oss.terrastruct.com/ixtheme/ixthemes/ixthemescatalog"
)

// Build returns a fresh theme for mode. It fails only for an invalid mode.
func Build(mode ixthemes.Mode) (Theme, error) {
	p, err := ixthemescatalog.Find(mode)
	if err != nil {
		return Theme{}, err
	}
	return Theme{
		Palette:    buildPalette(p),
		Components: buildComponents(p),
		Typography: buildTypography(),
		Shape: Shape{
			BorderRadius: BorderRadius,
		},
		Spacing: Spacing,
	}, nil
}

func Light() Theme {
	return mustBuild(ixthemes.Light)
}

func Dark() Theme {
	return mustBuild(ixthemes.Dark)
}

func mustBuild(mode ixthemes.Mode) Theme {
	t, err := Build(mode)
	if err != nil {
		panic(err)
	}
	return t
}

func buildPalette(p ixthemes.Palette) Palette {
	return Palette{
		Mode:    p.Mode,
		Primary: paletteColor(p.Primary.Accent),
		// secondary is the dynamic group, not the iX secondary group.
		Secondary: paletteColor(p.Dynamic),
		Error:     paletteColor(p.Error),
		Warning:   paletteColor(p.Warning),
		Info:      paletteColor(p.Info),
		Success:   paletteColor(p.Success),
		Text: TextColors{
			Primary:   p.Text.Primary,
			Secondary: p.Text.Secondary,
			Disabled:  p.Text.Disabled,
			Hint:      p.Text.Hint,
		},
		Background: BackgroundColors{
			Default: p.Background.Default,
			Paper:   p.Background.Paper,
		},
		Divider: p.Text.Disabled,
	}
}

func paletteColor(a ixthemes.Accent) PaletteColor {
	return PaletteColor{
		Main:         a.Main,
		Dark:         a.Active,
		Light:        a.Hover,
		ContrastText: a.Contrast,
	}
}

func buildTypography() Typography {
	h := Heading{FontWeight: HeadingWeight}
	return Typography{
		FontFamily: FontFamily,
		H1:         h,
		H2:         h,
		H3:         h,
		H4:         h,
		H5:         h,
		H6:         h,
		Button: ButtonText{
			FontWeight:    ButtonWeight,
			TextTransform: "none",
		},
	}
}

package ixthemes

func GroupNames() []string {
	return []string{
		"primary",
		"dynamic",
		"secondary",
		"text",
		"background",
		"error",
		"warning",
		"info",
		"success",
		"ghost",
		"component",
		"border",
		"neutral",
		"shadow",
	}
}

// Groups returns a fresh name -> Group map of every group in the palette.
func (p Palette) Groups() map[string]Group {
	return map[string]Group{
		"primary":    p.Primary.Roles(),
		"dynamic":    p.Dynamic.Roles(),
		"secondary":  p.Secondary.Roles(),
		"text":       p.Text.Roles(),
		"background": p.Background.Roles(),
		"error":      p.Error.Roles(),
		"warning":    p.Warning.Roles(),
		"info":       p.Info.Roles(),
		"success":    p.Success.Roles(),
		"ghost":      p.Ghost.Roles(),
		"component":  p.Component.Roles(),
		"border":     p.Border.Roles(),
		"neutral":    p.Neutral.Roles(),
		"shadow":     p.Shadow.Roles(),
	}
}

func (p Palette) Group(name string) (Group, bool) {
	g, ok := p.Groups()[name]
	return g, ok
}

func (a Accent) Roles() Group {
	return Group{
		"main":     a.Main,
		"hover":    a.Hover,
		"active":   a.Active,
		"contrast": a.Contrast,
	}
}

func (p Primary) Roles() Group {
	g := p.Accent.Roles()
	g["disabled"] = p.Disabled
	return g
}

func (t Text) Roles() Group {
	return Group{
		"primary":   t.Primary,
		"secondary": t.Secondary,
		"disabled":  t.Disabled,
		"hint":      t.Hint,
	}
}

func (b Background) Roles() Group {
	return Group{
		"default": b.Default,
		"paper":   b.Paper,
		"surface": b.Surface,
	}
}

func (g Ghost) Roles() Group {
	return Group{
		"main":            g.Main,
		"hover":           g.Hover,
		"active":          g.Active,
		"selected":        g.Selected,
		"selected-hover":  g.SelectedHover,
		"selected-active": g.SelectedActive,
	}
}

func (c Component) Roles() Group {
	return Group{
		"1": c.L1,
		"2": c.L2,
		"3": c.L3,
		"4": c.L4,
		"5": c.L5,
		"6": c.L6,
	}
}

func (b Border) Roles() Group {
	return Group{
		"std":      b.Std,
		"soft":     b.Soft,
		"weak":     b.Weak,
		"x-weak":   b.XWeak,
		"focus":    b.Focus,
		"contrast": b.Contrast,
		"hard":     b.Hard,
	}
}

func (s Shadow) Roles() Group {
	return Group{
		"1": s.L1,
		"2": s.L2,
		"3": s.L3,
	}
}

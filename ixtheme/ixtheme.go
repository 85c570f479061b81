// Package ixtheme builds Material-UI shaped themes from the iX palettes.
package ixtheme

import (
	"oss.terrastruct.com/ixtheme/ixthemes"
)

const (
	FontFamily    = `"Siemens Sans", "Arial", sans-serif`
	HeadingWeight = 600
	ButtonWeight  = 500

	BorderRadius = 4
	Spacing      = 8

	ButtonRadius = "4px"
	ChipRadius   = "16px"
)

type Theme struct {
	Palette    Palette    `json:"palette"`
	Components Components `json:"components"`
	Typography Typography `json:"typography"`
	Shape      Shape      `json:"shape"`
	Spacing    int        `json:"spacing"`
}

type Palette struct {
	Mode       ixthemes.Mode    `json:"mode"`
	Primary    PaletteColor     `json:"primary"`
	Secondary  PaletteColor     `json:"secondary"`
	Error      PaletteColor     `json:"error"`
	Warning    PaletteColor     `json:"warning"`
	Info       PaletteColor     `json:"info"`
	Success    PaletteColor     `json:"success"`
	Text       TextColors       `json:"text"`
	Background BackgroundColors `json:"background"`
	Divider    string           `json:"divider"`
}

type PaletteColor struct {
	Main         string `json:"main"`
	Dark         string `json:"dark"`
	Light        string `json:"light"`
	ContrastText string `json:"contrastText"`
}

type TextColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Disabled  string `json:"disabled"`
	Hint      string `json:"hint"`
}

type BackgroundColors struct {
	Default string `json:"default"`
	Paper   string `json:"paper"`
}

// Components maps a component name such as MuiButton to its overrides.
type Components map[string]Component

type Component struct {
	StyleOverrides map[string]Style `json:"styleOverrides"`
}

// Style is a nested CSS-in-JS rule set. Values are strings or nested Styles.
type Style map[string]interface{}

type Typography struct {
	FontFamily string     `json:"fontFamily"`
	H1         Heading    `json:"h1"`
	H2         Heading    `json:"h2"`
	H3         Heading    `json:"h3"`
	H4         Heading    `json:"h4"`
	H5         Heading    `json:"h5"`
	H6         Heading    `json:"h6"`
	Button     ButtonText `json:"button"`
}

type Heading struct {
	FontWeight int `json:"fontWeight"`
}

type ButtonText struct {
	FontWeight    int    `json:"fontWeight"`
	TextTransform string `json:"textTransform"`
}

type Shape struct {
	BorderRadius int `json:"borderRadius"`
}

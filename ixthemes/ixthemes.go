// Package ixthemes defines the Siemens iX semantic color palettes.
// Each palette is a fixed set of named groups, each group mapping role names to colors.
package ixthemes

import (
	"errors"
	"fmt"

	"oss.terrastruct.com/ixtheme/lib/go2"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

var ErrInvalidMode = errors.New("invalid mode")

func Modes() []Mode {
	return []Mode{Light, Dark}
}

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Mode) Validate() error {
	if go2.Contains(Modes(), m) {
		return nil
	}
	return fmt.Errorf("%w %q: mode must be either %q or %q", ErrInvalidMode, string(m), Light, Dark)
}

// Group maps role names to colors.
type Group map[string]string

// Palette is the complete collection of semantic groups for one mode.
// It holds only strings so every copy is independent of the catalog's.
type Palette struct {
	Name    string `json:"name"`
	Mode    Mode   `json:"mode"`
	Version string `json:"version"`

	Primary    Primary    `json:"primary"`
	Dynamic    Accent     `json:"dynamic"`
	Secondary  Accent     `json:"secondary"`
	Text       Text       `json:"text"`
	Background Background `json:"background"`

	// Status colors
	Error   Accent `json:"error"`
	Warning Accent `json:"warning"`
	Info    Accent `json:"info"`
	Success Accent `json:"success"`

	Ghost     Ghost     `json:"ghost"`
	Component Component `json:"component"`
	Border    Border    `json:"border"`
	Neutral   Accent    `json:"neutral"`
	Shadow    Shadow    `json:"shadow"`
}

type Accent struct {
	Main     string `json:"main"`
	Hover    string `json:"hover"`
	Active   string `json:"active"`
	Contrast string `json:"contrast"`
}

type Primary struct {
	Accent
	Disabled string `json:"disabled"`
}

type Text struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Disabled  string `json:"disabled"`
	Hint      string `json:"hint"`
}

type Background struct {
	Default string `json:"default"`
	Paper   string `json:"paper"`
	Surface string `json:"surface"`
}

// Ghost colors are used by transparent, borderless controls.
type Ghost struct {
	Main           string `json:"main"`
	Hover          string `json:"hover"`
	Active         string `json:"active"`
	Selected       string `json:"selected"`
	SelectedHover  string `json:"selected-hover"`
	SelectedActive string `json:"selected-active"`
}

// Component colors: weakest (1) -> strongest (6)
type Component struct {
	L1 string `json:"1"`
	L2 string `json:"2"`
	L3 string `json:"3"`
	L4 string `json:"4"`
	L5 string `json:"5"`
	L6 string `json:"6"`
}

type Border struct {
	Std      string `json:"std"`
	Soft     string `json:"soft"`
	Weak     string `json:"weak"`
	XWeak    string `json:"x-weak"`
	Focus    string `json:"focus"`
	Contrast string `json:"contrast"`
	Hard     string `json:"hard"`
}

type Shadow struct {
	L1 string `json:"1"`
	L2 string `json:"2"`
	L3 string `json:"3"`
}

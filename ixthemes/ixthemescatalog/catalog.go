package ixthemescatalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"oss.terrastruct.com/ixtheme/ixthemes"
)

// Version of the iX color tables reproduced here.
const Version = "1"

func Light() ixthemes.Palette {
	return siemensIXLight
}

func Dark() ixthemes.Palette {
	return siemensIXDark
}

func Catalog() []ixthemes.Palette {
	return []ixthemes.Palette{
		siemensIXLight,
		siemensIXDark,
	}
}

func Find(mode ixthemes.Mode) (ixthemes.Palette, error) {
	if err := mode.Validate(); err != nil {
		return ixthemes.Palette{}, err
	}
	if mode == ixthemes.Dark {
		return siemensIXDark, nil
	}
	return siemensIXLight, nil
}

func CLIString() string {
	title := cases.Title(language.English)
	var s strings.Builder
	for _, p := range Catalog() {
		s.WriteString(fmt.Sprintf("- %s: %s (%s)\n", title.String(string(p.Mode)), p.Mode, p.Name))
	}
	return s.String()
}

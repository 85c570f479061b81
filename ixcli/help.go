package ixcli

import (
	"context"
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/ixtheme/ixthemes/ixthemescatalog"
	"oss.terrastruct.com/ixtheme/lib/version"
	"oss.terrastruct.com/ixtheme/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--mode=light] palette
  %[1]s [--mode=light] theme
  %[1]s [--mode=light] [--steps=256] [--format=json] colormap
  %[1]s [--mode=light] [--count=20] categorical
  %[1]s [--alpha=a] rgba color
  %[1]s [--mode=light] swatch
  %[1]s [--logo-light=path] [--logo-dark=path] [--favicon=path] page

%[1]s prints the Siemens iX palettes and the themes, colormaps and
categorical palettes derived from them.

Use -o - (the default) to write to stdout.

Flags:
%[3]s

Subcommands:
  %[1]s palette - Prints every color group of the palette as JSON
  %[1]s theme - Prints the UI component theme as JSON
  %[1]s colormap - Prints a continuous colormap from the mode anchor to primary as json, css or svg
  %[1]s categorical - Prints count distinct categorical colors as JSON
  %[1]s rgba color - Converts a hex or rgba color to an rgb or rgba string
  %[1]s swatch - Renders every palette color as a terminal swatch
  %[1]s page - Prints the framework defaults and page configuration
  %[1]s modes - Lists available modes
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}

func modesCmd(_ context.Context, ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, "Available modes:\n%s", ixthemescatalog.CLIString())
}

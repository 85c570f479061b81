package ixcli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cdr.dev/slog"
	"github.com/spf13/pflag"
	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xjson"

	"oss.terrastruct.com/ixtheme/ixcolormap"
	"oss.terrastruct.com/ixtheme/ixhost"
	"oss.terrastruct.com/ixtheme/ixtheme"
	"oss.terrastruct.com/ixtheme/ixthemes"
	"oss.terrastruct.com/ixtheme/ixthemes/ixthemescatalog"
	"oss.terrastruct.com/ixtheme/lib/color"
	"oss.terrastruct.com/ixtheme/lib/go2"
	"oss.terrastruct.com/ixtheme/lib/log"
	"oss.terrastruct.com/ixtheme/lib/version"
	"oss.terrastruct.com/ixtheme/lib/xmain"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.WithDefault(ctx)
	// These should be kept up-to-date with help
	modeFlag := ms.Opts.String("IXTHEME_MODE", "mode", "m", string(ixthemes.Light), "color mode, light or dark")
	stepsFlag, err := ms.Opts.Int64("IXTHEME_STEPS", "steps", "", ixcolormap.DefaultSteps, "number of colors sampled by colormap")
	if err != nil {
		return err
	}
	countFlag, err := ms.Opts.Int64("IXTHEME_COUNT", "count", "c", ixcolormap.DefaultCount, "number of colors returned by categorical")
	if err != nil {
		return err
	}
	formatFlag := ms.Opts.String("IXTHEME_FORMAT", "format", "f", "json", "colormap output format: json, css or svg")
	directionFlag := ms.Opts.String("", "direction", "", "to right", "gradient direction used by the css and svg colormap formats")
	alphaFlag := ms.Opts.String("", "alpha", "a", "", "alpha in [0, 1] attached by rgba. When empty, rgba prints rgb(r, g, b) for hex input")
	logoLightFlag := ms.Opts.String("", "logo-light", "", "", "light mode logo path passed through by page")
	logoDarkFlag := ms.Opts.String("", "logo-dark", "", "", "dark mode logo path passed through by page")
	faviconFlag := ms.Opts.String("", "favicon", "", "", "favicon path passed through by page")
	outFlag := ms.Opts.String("", "out", "o", "-", "output path. Use - for stdout")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}

	switch args[0] {
	case "version":
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	case "modes":
		modesCmd(ctx, ms)
		return nil
	case "rgba":
		return rgbaCmd(ctx, ms, args[1:], *alphaFlag, *outFlag)
	case "page":
		if len(args) > 1 {
			return xmain.UsageErrorf("page subcommand accepts no arguments")
		}
		return pageCmd(ctx, ms, ixhost.Assets{
			LogoLight: *logoLightFlag,
			LogoDark:  *logoDarkFlag,
			Favicon:   *faviconFlag,
		}, *outFlag)
	}

	mode, err := ixthemes.ParseMode(*modeFlag)
	if err != nil {
		return xmain.UsageErrorf("-m[ode] could not be found. The available options are:\n%s\nYou provided: %s", ixthemescatalog.CLIString(), *modeFlag)
	}
	log.Debug(ctx, "resolved mode", slog.F("mode", mode))

	if len(args) > 1 {
		return xmain.UsageErrorf("%s subcommand accepts no arguments", args[0])
	}

	switch args[0] {
	case "palette":
		return paletteCmd(ctx, ms, mode, *outFlag)
	case "theme":
		return themeCmd(ctx, ms, mode, *outFlag)
	case "colormap":
		return colormapCmd(ctx, ms, mode, *stepsFlag, *formatFlag, *directionFlag, *outFlag)
	case "categorical":
		return categoricalCmd(ctx, ms, mode, *countFlag, *outFlag)
	case "swatch":
		return swatchCmd(ctx, ms, mode, *outFlag)
	default:
		return xmain.UsageErrorf("unknown subcommand %q", args[0])
	}
}

func paletteCmd(ctx context.Context, ms *xmain.State, mode ixthemes.Mode, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to print palette")

	p, err := ixthemescatalog.Find(mode)
	if err != nil {
		return err
	}
	return writeJSON(ms, outputPath, p.Groups())
}

func themeCmd(ctx context.Context, ms *xmain.State, mode ixthemes.Mode, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to build theme")

	t, err := ixtheme.Build(mode)
	if err != nil {
		return err
	}
	return writeJSON(ms, outputPath, t)
}

func colormapCmd(ctx context.Context, ms *xmain.State, mode ixthemes.Mode, steps int64, format, direction, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to generate colormap")

	if steps < 0 || steps > ixcolormap.MaxSteps {
		return xmain.UsageErrorf("--steps must be in [0, %d]. You provided: %d", ixcolormap.MaxSteps, steps)
	}
	seq, err := ixcolormap.Continuous(mode, int(steps))
	if err != nil {
		return err
	}
	log.Debug(ctx, "generated colormap", slog.F("mode", mode), slog.F("steps", len(seq)))

	switch format {
	case "json":
		return writeJSON(ms, outputPath, seq)
	case "css":
		return ms.WritePath(outputPath, []byte(seq.Gradient(direction).CSS()+"\n"))
	case "svg":
		return ms.WritePath(outputPath, []byte(seq.Gradient(direction).SVG()+"\n"))
	default:
		return xmain.UsageErrorf("-f[ormat] must be one of json, css or svg. You provided: %s", format)
	}
}

func categoricalCmd(ctx context.Context, ms *xmain.State, mode ixthemes.Mode, count int64, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to generate categorical palette")

	if count < 0 || count > ixcolormap.MaxCount {
		return xmain.UsageErrorf("-c[ount] must be in [0, %d]. You provided: %d", ixcolormap.MaxCount, count)
	}
	seq, err := ixcolormap.Categorical(mode, int(count))
	if err != nil {
		return err
	}
	return writeJSON(ms, outputPath, seq)
}

func rgbaCmd(ctx context.Context, ms *xmain.State, args []string, alpha, outputPath string) error {
	if len(args) != 1 {
		return xmain.UsageErrorf("rgba must be passed exactly one color")
	}

	var a *float64
	if alpha != "" {
		v, err := parseAlpha(alpha)
		if err != nil {
			return xmain.UsageErrorf("-a[lpha] must be a number in [0, 1]. You provided: %s", alpha)
		}
		a = &v
	}

	c, err := color.ToRGBA(args[0], a)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	return ms.WritePath(outputPath, []byte(c+"\n"))
}

func parseAlpha(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("alpha %v is outside [0, 1]", v)
	}
	return v, nil
}

func writeJSON(ms *xmain.State, outputPath string, v interface{}) error {
	b := []byte(xjson.MarshalIndent(v))
	return ms.WritePath(outputPath, append(b, '\n'))
}

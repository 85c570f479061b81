// Package ixhost applies iX themes and brand assets to a hosting UI framework.
//
// A Host owns the "defaults applied" flag. Applications create one Host at
// startup and call Configure for each page they serve. A Host is not safe for
// concurrent use.
package ixhost

import (
	"context"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/ixtheme/ixtheme"
	"oss.terrastruct.com/ixtheme/lib/log"
)

// Framework is the hosting application's configuration surface.
type Framework interface {
	ApplyDefaults(context.Context, Defaults) error
	ConfigurePage(context.Context, PageConfig) error
}

// Assets are passed through untouched. They are never read.
type Assets struct {
	LogoLight string `json:"logo_light"`
	LogoDark  string `json:"logo_dark"`
	Favicon   string `json:"favicon"`
}

// Defaults are process wide framework settings applied once per Host.
type Defaults struct {
	SizingMode    string `json:"sizing_mode"`
	Notifications bool   `json:"notifications"`
}

func DefaultDefaults() Defaults {
	return Defaults{
		SizingMode:    "stretch_width",
		Notifications: true,
	}
}

type ThemeConfig struct {
	Light ixtheme.Theme `json:"light"`
	Dark  ixtheme.Theme `json:"dark"`
}

type Logo struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

type PageConfig struct {
	ThemeConfig ThemeConfig `json:"theme_config"`
	Logo        Logo        `json:"logo"`
	Favicon     string      `json:"favicon"`
}

type Host struct {
	fw       Framework
	defaults Defaults

	configured bool
}

func New(fw Framework, defaults Defaults) *Host {
	return &Host{
		fw:       fw,
		defaults: defaults,
	}
}

func (h *Host) Configured() bool {
	return h.configured
}

// Init applies the framework defaults. Calls after the first success are no-ops.
func (h *Host) Init(ctx context.Context) (err error) {
	defer xdefer.Errorf(&err, "failed to apply framework defaults")

	if h.configured {
		log.Debug(ctx, "framework defaults already applied")
		return nil
	}
	err = h.fw.ApplyDefaults(ctx, h.defaults)
	if err != nil {
		return err
	}
	h.configured = true
	log.Info(ctx, "applied framework defaults",
		slog.F("sizing_mode", h.defaults.SizingMode),
		slog.F("notifications", h.defaults.Notifications),
	)
	return nil
}

// Configure initializes the host if needed and hands the framework a page
// configuration with fresh light and dark themes.
func (h *Host) Configure(ctx context.Context, assets Assets) (err error) {
	err = h.Init(ctx)
	if err != nil {
		return err
	}

	defer xdefer.Errorf(&err, "failed to configure page")

	pc := NewPageConfig(assets)
	err = h.fw.ConfigurePage(ctx, pc)
	if err != nil {
		return err
	}
	log.Debug(ctx, "configured page",
		slog.F("logo_light", assets.LogoLight),
		slog.F("logo_dark", assets.LogoDark),
		slog.F("favicon", assets.Favicon),
	)
	return nil
}

func NewPageConfig(assets Assets) PageConfig {
	return PageConfig{
		ThemeConfig: ThemeConfig{
			Light: ixtheme.Light(),
			Dark:  ixtheme.Dark(),
		},
		Logo: Logo{
			Light: assets.LogoLight,
			Dark:  assets.LogoDark,
		},
		Favicon: assets.Favicon,
	}
}

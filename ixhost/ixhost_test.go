package ixhost_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/ixtheme/ixhost"
	"oss.terrastruct.com/ixtheme/ixtheme"
	"oss.terrastruct.com/ixtheme/lib/log"
)

type fakeFramework struct {
	defaults []ixhost.Defaults
	pages    []ixhost.PageConfig

	defaultsErr error
	pageErr     error
}

func (f *fakeFramework) ApplyDefaults(ctx context.Context, d ixhost.Defaults) error {
	if f.defaultsErr != nil {
		return f.defaultsErr
	}
	f.defaults = append(f.defaults, d)
	return nil
}

func (f *fakeFramework) ConfigurePage(ctx context.Context, pc ixhost.PageConfig) error {
	if f.pageErr != nil {
		return f.pageErr
	}
	f.pages = append(f.pages, pc)
	return nil
}

func TestInitOnce(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	fw := &fakeFramework{}
	h := ixhost.New(fw, ixhost.DefaultDefaults())
	assert.False(t, h.Configured())

	for i := 0; i < 3; i++ {
		assert.NoError(t, h.Init(ctx))
	}
	assert.True(t, h.Configured())
	assert.Equal(t, []ixhost.Defaults{{SizingMode: "stretch_width", Notifications: true}}, fw.defaults)
}

func TestConfigure(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	fw := &fakeFramework{}
	h := ixhost.New(fw, ixhost.DefaultDefaults())

	assets := ixhost.Assets{
		LogoLight: "assets/siemens-logo-light.svg",
		LogoDark:  "assets/siemens-logo-dark.svg",
		Favicon:   "assets/favicon.ico",
	}
	assert.NoError(t, h.Configure(ctx, assets))
	assert.NoError(t, h.Configure(ctx, assets))

	assert.Len(t, fw.defaults, 1)
	assert.Len(t, fw.pages, 2)

	pc := fw.pages[0]
	assert.Equal(t, "assets/siemens-logo-light.svg", pc.Logo.Light)
	assert.Equal(t, "assets/siemens-logo-dark.svg", pc.Logo.Dark)
	assert.Equal(t, "assets/favicon.ico", pc.Favicon)
	assert.Equal(t, ixtheme.Light(), pc.ThemeConfig.Light)
	assert.Equal(t, ixtheme.Dark(), pc.ThemeConfig.Dark)
}

func TestInitFailureRetries(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	fw := &fakeFramework{defaultsErr: errors.New("framework not ready")}
	h := ixhost.New(fw, ixhost.DefaultDefaults())

	err := h.Configure(ctx, ixhost.Assets{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "framework not ready")
	assert.False(t, h.Configured())
	assert.Empty(t, fw.pages)

	fw.defaultsErr = nil
	assert.NoError(t, h.Configure(ctx, ixhost.Assets{}))
	assert.True(t, h.Configured())
	assert.Len(t, fw.defaults, 1)
}

func TestConfigurePageError(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	fw := &fakeFramework{pageErr: errors.New("no page slot")}
	h := ixhost.New(fw, ixhost.DefaultDefaults())

	err := h.Configure(ctx, ixhost.Assets{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to configure page")
	assert.True(t, h.Configured())
}

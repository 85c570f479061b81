package ixcli

import (
	"context"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/ixtheme/ixhost"
	"oss.terrastruct.com/ixtheme/lib/xmain"
)

// recorder is a Framework that keeps what it is handed so page can print it.
type recorder struct {
	Defaults *ixhost.Defaults  `json:"defaults"`
	Page     *ixhost.PageConfig `json:"page"`
}

func (r *recorder) ApplyDefaults(_ context.Context, d ixhost.Defaults) error {
	r.Defaults = &d
	return nil
}

func (r *recorder) ConfigurePage(_ context.Context, pc ixhost.PageConfig) error {
	r.Page = &pc
	return nil
}

func pageCmd(ctx context.Context, ms *xmain.State, assets ixhost.Assets, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to configure page")

	rec := &recorder{}
	h := ixhost.New(rec, ixhost.DefaultDefaults())
	err = h.Configure(ctx, assets)
	if err != nil {
		return err
	}
	return writeJSON(ms, outputPath, rec)
}

package xmain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/xos"
)

func TestOptsEnvFallback(t *testing.T) {
	t.Parallel()

	env := xos.NewEnv([]string{
		"IXTHEME_MODE=dark",
		"IXTHEME_STEPS=16",
		"DEBUG=1",
	})
	o := NewOpts(env, nil, []string{"--steps", "32"})

	mode := o.String("IXTHEME_MODE", "mode", "m", "light", "")
	steps, err := o.Int64("IXTHEME_STEPS", "steps", "", 256, "")
	assert.NoError(t, err)
	debug, err := o.Bool("DEBUG", "debug", "d", false, "")
	assert.NoError(t, err)

	assert.NoError(t, o.Flags.Parse(o.Args))
	assert.Equal(t, "dark", *mode)
	assert.Equal(t, int64(32), *steps)
	assert.True(t, *debug)
	assert.Contains(t, o.Defaults(), "- $IXTHEME_MODE")
}

func TestOptsInvalidEnv(t *testing.T) {
	t.Parallel()

	env := xos.NewEnv([]string{
		"IXTHEME_STEPS=many",
		"DEBUG=maybe",
	})
	o := NewOpts(env, nil, nil)

	_, err := o.Int64("IXTHEME_STEPS", "steps", "", 256, "")
	assert.EqualError(t, err, `invalid environment variable IXTHEME_STEPS. Expected int64. Found "many".`)
	_, err = o.Bool("DEBUG", "debug", "d", false, "")
	assert.EqualError(t, err, `invalid environment variable DEBUG. Expected bool. Found "maybe".`)
}

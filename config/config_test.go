package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgies/svgie/config"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.IntVarP(&config.Size, "size", "s", 32, "")
	flags.StringVarP(&config.Chain, "chain", "c", "", "")
	flags.StringVar(&config.Seed, "seed", "", "")
	flags.BoolVarP(&config.AsDataURI, "data-uri", "d", false, "")
	flags.BoolVarP(&config.Legacy, "legacy", "l", false, "")
	return flags
}

func TestBindEnv(t *testing.T) {
	t.Setenv("SVGIE_SIZE", "64")
	t.Setenv("SVGIE_DATA_URI", "true")
	t.Setenv("SVGIE_SEED", "from-env")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--seed", "from-flag"}))
	require.NoError(t, config.BindEnv(flags))

	assert.Equal(t, 64, config.Size)
	assert.True(t, config.AsDataURI)
	assert.Equal(t, "from-flag", config.Seed)
	assert.Equal(t, "", config.Chain)
	assert.False(t, config.Legacy)
}

func TestBindEnvInvalidValue(t *testing.T) {
	t.Setenv("SVGIE_SIZE", "big")

	flags := newFlags()
	require.NoError(t, flags.Parse(nil))
	err := config.BindEnv(flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SVGIE_SIZE")
}

func TestBindEnvSkipsUnknownFlags(t *testing.T) {
	t.Setenv("SVGIE_CHAIN", "evm")

	flags := pflag.NewFlagSet("empty", pflag.ContinueOnError)
	require.NoError(t, config.BindEnv(flags))
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables that can stand in for
// flags, e.g. SVGIE_SIZE or SVGIE_DATA_URI.
const EnvPrefix = "SVGIE"

var (
	Address   string
	Size      int
	Chain     string
	Seed      string
	AsDataURI bool
	Output    string
	Force     bool
	Legacy    bool

	Verbose bool

	BenchIterations int
	BenchWarmup     int
	BenchSize       int
	BenchRandomSeed bool
)

// EnvFlags are the generation flags that read a default from the environment.
var EnvFlags = []string{"size", "chain", "seed", "data-uri", "legacy"}

// BindEnv fills every flag in EnvFlags that was not set on the command line
// from its SVGIE_* environment variable. Flags always win over the environment.
func BindEnv(flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, name := range EnvFlags {
		flag := flags.Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := v.BindEnv(name); err != nil {
			return err
		}
		if !v.IsSet(name) {
			continue
		}
		if err := flags.Set(name, v.GetString(name)); err != nil {
			return fmt.Errorf("invalid %s_%s: %w", EnvPrefix, strings.ToUpper(strings.ReplaceAll(name, "-", "_")), err)
		}
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BUILDBENCH"

// applyConfig fills flags not set on the command line from the config file
// at path (if any) and from BUILDBENCH_* environment variables. Flag names
// map to config keys as-is and to environment variables upper-cased with
// dashes replaced by underscores.
func applyConfig(flags *pflag.FlagSet, path string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		err := v.ReadInConfig()
		if err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var errs []error

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		err := setFlag(flags, f, v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config %s: %w", f.Name, err))
		}
	})

	return errors.Join(errs...)
}

func setFlag(flags *pflag.FlagSet, f *pflag.Flag, v *viper.Viper) error {
	switch f.Value.Type() {
	case "stringSlice", "stringArray":
		sv, ok := f.Value.(pflag.SliceValue)
		if ok {
			f.Changed = true

			return sv.Replace(v.GetStringSlice(f.Name))
		}

	case "stringToString":
		m := v.GetStringMapString(f.Name)

		pairs := make([]string, 0, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			pairs = append(pairs, k+"="+m[k])
		}

		if len(pairs) > 0 {
			return flags.Set(f.Name, strings.Join(pairs, ","))
		}
	}

	return flags.Set(f.Name, v.GetString(f.Name))
}

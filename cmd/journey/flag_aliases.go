package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var dataFlagAliases = map[string]string{
	"source": "data",
}

// aliasNormalizer maps alias flag names onto their canonical names before
// applying next.
func aliasNormalizer(aliases map[string]string, next func(*pflag.FlagSet, string) pflag.NormalizedName) func(*pflag.FlagSet, string) pflag.NormalizedName {
	return func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		if next == nil {
			return pflag.NormalizedName(name)
		}
		return next(f, name)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}
	flags.SetNormalizeFunc(aliasNormalizer(aliases, flags.GetNormalizeFunc()))
}

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}

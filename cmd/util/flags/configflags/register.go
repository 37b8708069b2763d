package configflags

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Definition describes a flag that overrides a configuration key.
type Definition struct {
	FlagName     string
	ConfigPath   string
	DefaultValue interface{}
	Description  string
}

// Register adds the flags in defs to flagset and returns them keyed by the
// configuration key they override. A flag only overrides configuration when
// it is set on the command line.
func Register(flagset *pflag.FlagSet, defs ...[]Definition) map[string]*pflag.Flag {
	bound := make(map[string]*pflag.Flag)
	for _, group := range defs {
		for _, def := range group {
			switch v := def.DefaultValue.(type) {
			case string:
				flagset.String(def.FlagName, v, def.Description)
			case bool:
				flagset.Bool(def.FlagName, v, def.Description)
			default:
				panic(fmt.Sprintf("DEVELOPER ERROR: unhandled flag type %T for %s", v, def.FlagName))
			}
			bound[def.ConfigPath] = flagset.Lookup(def.FlagName)
		}
	}
	return bound
}

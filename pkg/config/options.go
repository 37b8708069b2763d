package config

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

type Params struct {
	ProjectDir     string
	GradleUserHome string
	Fs             afero.Fs
	LoadDotEnv     bool
	// Flags maps config keys to the flags that override them.
	Flags map[string]*pflag.Flag
}

func (p *Params) propertyFiles() []string {
	files := []string{filepath.Join(p.ProjectDir, PropertiesFileName)}
	if p.GradleUserHome != "" {
		files = append(files, filepath.Join(p.GradleUserHome, PropertiesFileName))
	}
	return files
}

type Option func(params *Params)

func WithGradleUserHome(dir string) Option {
	return func(params *Params) {
		params.GradleUserHome = dir
	}
}

func WithFs(fs afero.Fs) Option {
	return func(params *Params) {
		params.Fs = fs
	}
}

func WithoutDotEnv() Option {
	return func(params *Params) {
		params.LoadDotEnv = false
	}
}

// WithFlag binds a command line flag to a config key. Nil flags are ignored.
func WithFlag(key string, flag *pflag.Flag) Option {
	return func(params *Params) {
		if flag == nil {
			return
		}
		if params.Flags == nil {
			params.Flags = make(map[string]*pflag.Flag)
		}
		params.Flags[key] = flag
	}
}

// WithFlags binds every flag in flags to the config key it is keyed by.
func WithFlags(flags map[string]*pflag.Flag) Option {
	return func(params *Params) {
		for key, flag := range flags {
			WithFlag(key, flag)(params)
		}
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/imdario/mergo"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/bacalhau-project/ramdisk/pkg/config/types"
)

const (
	PropertiesFileName = "gradle.properties"
	DotEnvFileName     = ".env"

	configType        = "properties"
	gradleUserHomeEnv = "GRADLE_USER_HOME"
)

var (
	environmentVariableReplace = strings.NewReplacer(".", "_")
	configDecoderHook          = viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		boolToStringHookFunc(),
	))
)

// boolToStringHookFunc keeps "true"/"false" for bool values decoded into
// string fields. Weak decoding would otherwise turn true into "1".
func boolToStringHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.Bool || to.Kind() != reflect.String {
			return data, nil
		}
		return strconv.FormatBool(data.(bool)), nil
	}
}

// Load resolves the RAMDisk.* configuration for the project in dir. Sources
// are applied from lowest to highest precedence: defaults, the project's
// gradle.properties, the Gradle user home gradle.properties, environment
// variables (after loading the project's .env file) and bound flags.
func Load(dir string, opts ...Option) (types.RAMDiskConfig, error) {
	params := &Params{
		ProjectDir:     dir,
		GradleUserHome: defaultGradleUserHome(),
		Fs:             afero.NewOsFs(),
		LoadDotEnv:     true,
	}
	for _, opt := range opts {
		opt(params)
	}

	v := viper.New()
	v.SetFs(params.Fs)
	v.SetConfigType(configType)
	v.SetEnvKeyReplacer(environmentVariableReplace)

	setDefaults(v, types.Default())

	if params.LoadDotEnv {
		if err := loadDotEnv(params.Fs, filepath.Join(params.ProjectDir, DotEnvFileName)); err != nil {
			return types.RAMDiskConfig{}, err
		}
	}

	for _, file := range params.propertyFiles() {
		if err := mergeFile(v, params.Fs, file); err != nil {
			return types.RAMDiskConfig{}, err
		}
	}

	for _, key := range types.AllKeys {
		if err := v.BindEnv(key); err != nil {
			return types.RAMDiskConfig{}, errors.Wrapf(err, "binding environment variable for %s", key)
		}
	}

	for key, flag := range params.Flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return types.RAMDiskConfig{}, errors.Wrapf(err, "binding flag for %s", key)
		}
	}

	// UnmarshalKey on the parent key would skip env and flag values of its children.
	var root struct {
		RAMDisk types.RAMDiskConfig `mapstructure:"ramdisk"`
	}
	if err := v.Unmarshal(&root, configDecoderHook); err != nil {
		return types.RAMDiskConfig{}, errors.Wrap(err, "decoding RAMDisk configuration")
	}
	out := root.RAMDisk

	// properties present but left empty fall back to defaults too
	if err := mergo.Merge(&out, types.Default()); err != nil {
		return types.RAMDiskConfig{}, err
	}
	return out, nil
}

func setDefaults(v *viper.Viper, cfg types.RAMDiskConfig) {
	defaults := map[string]string{
		types.RAMDiskName:         cfg.Name,
		types.RAMDiskLinuxFormat:  cfg.Linux.Format,
		types.RAMDiskWindowFormat: cfg.Window.Format,
		types.RAMDiskMacFormat:    cfg.Mac.Format,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func mergeFile(v *viper.Viper, fs afero.Fs, file string) error {
	exists, err := afero.Exists(fs, file)
	if err != nil {
		return errors.Wrapf(err, "checking %s", file)
	}
	if !exists {
		log.Trace().Str("File", file).Msg("properties file not found, skipping")
		return nil
	}
	v.SetConfigFile(file)
	if err := v.MergeInConfig(); err != nil {
		return errors.Wrapf(err, "reading %s", file)
	}
	log.Debug().Str("File", file).Msg("loaded properties")
	return nil
}

// loadDotEnv sets variables from file that are not already present in the
// environment, the same way godotenv.Load does.
func loadDotEnv(fs afero.Fs, file string) error {
	f, err := fs.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "opening %s", file)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", file)
	}
	for key, value := range env {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}

func defaultGradleUserHome() string {
	if home := os.Getenv(gradleUserHomeEnv); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gradle")
}

// KeyAsEnvVar returns the environment variable corresponding to a config key
func KeyAsEnvVar(key string) string {
	return strings.ToUpper(environmentVariableReplace.Replace(key))
}

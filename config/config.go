// Package config sets up viper with the defaults, environment bindings and optional
// config file used by the noodle command.
package config

import (
	"strings"

	"github.com/noodlekit/noodle/key"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Name is the config file base name and the environment variable prefix.
const Name = "noodle"

// EnvKeyReplacer turns config keys into environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Field is a configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f Field) Env() string {
	return strings.ToUpper(Name + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Default lists every known key.
var Default = map[string]Field{}

func define(key string, value any, description string) {
	Default[key] = Field{Key: key, Value: value, Description: description}
}

func init() {
	define(key.LogsWrite, false, "Write logs to stderr")
	define(key.LogsLevel, "info", "Minimum level of written logs: panic, fatal, error, warn, info, debug or trace")
	define(key.LogsJson, false, "Write logs as JSON")
	define(key.OutputAs, "json", "Default view printed by get: json, string, number, int, bool or kind")
	define(key.OutputIndent, false, "Indent JSON output")
}

// Setup registers defaults and environment bindings and reads noodle.yaml from dir if
// there is one. A missing config file is not an error.
func Setup(fs afero.Fs, dir string) error {
	viper.SetConfigName(Name)
	viper.SetConfigType("yaml")
	viper.SetFs(fs)
	viper.AddConfigPath(dir)

	viper.SetEnvPrefix(Name)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for name := range Default {
		viper.MustBindEnv(name)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// Package app wires host settings into a configuration registry.
package app

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the host-level options for locating configuration.
type Settings struct {
	// DefaultsDir holds the shipped .def files. Empty uses the embedded copies.
	DefaultsDir string `mapstructure:"defaults_dir"`
	// UserDir holds user override files. Empty uses ~/.idlerc.
	UserDir string `mapstructure:"user_dir"`
	// Format is the user file format: ini, toml or yaml.
	Format string `mapstructure:"format"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Format:   "ini",
		LogLevel: "warn",
	}
}

// EnvPrefix is the prefix of environment variables read by NewViper.
const EnvPrefix = "EDCONF"

// NewViper returns a viper instance with defaults set and EDCONF_*
// environment variables bound.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultSettings()
	v.SetDefault("defaults_dir", d.DefaultsDir)
	v.SetDefault("user_dir", d.UserDir)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads settings from v. When file is set it is read first;
// flags and environment variables bound to v still take precedence.
func LoadSettings(v *viper.Viper, file string) (Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, NewOperationError("reading settings", file, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, NewOperationError("decoding settings", file, err)
	}
	if _, err := s.UserExt(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// UserExt maps Format to the user file extension.
func (s Settings) UserExt() (string, error) {
	switch strings.ToLower(s.Format) {
	case "", "ini", "cfg":
		return ".cfg", nil
	case "toml":
		return ".toml", nil
	case "yaml", "yml":
		return ".yaml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s.Format)
	}
}

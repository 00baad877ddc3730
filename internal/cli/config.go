package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/internal/render"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "CONTACTS"

	cfgKeyBackend     = "backend"
	cfgKeyFile        = "file"
	cfgKeyMaxContacts = "max_contacts"
	cfgKeyColor       = "color"
	cfgKeyLogLevel    = "log_level"

	defaultLogLevel = "warn"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend     string `yaml:"backend"`
	File        string `yaml:"file,omitempty"`
	MaxContacts int    `yaml:"max_contacts"`
	Color       string `yaml:"color"`
	LogLevel    string `yaml:"log_level"`
}

// defaultConfigFile returns the values written by init.
func defaultConfigFile() configFile {
	return configFile{
		Backend:     types.BackendText,
		MaxContacts: types.DefaultMaxContacts,
		Color:       string(render.ColorAuto),
		LogLevel:    defaultLogLevel,
	}
}

// loadConfig reads config.yaml from configDir using Viper. A missing file
// is not an error. Precedence per key: flag > CONTACTS_* env > config.yaml >
// default. The file key is resolved by paths.ResolveDataFile instead.
func loadConfig(configDir string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendText)
	v.SetDefault(cfgKeyMaxContacts, types.DefaultMaxContacts)
	v.SetDefault(cfgKeyColor, string(render.ColorAuto))
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyBackend, cfgKeyMaxContacts, cfgKeyColor, cfgKeyLogLevel} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	pflags := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{cfgKeyBackend: "backend", cfgKeyColor: "color"} {
		if err := v.BindPFlag(key, pflags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	cfg := defaultConfigFile()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	header := []byte("# contacts configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// newLogger builds a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

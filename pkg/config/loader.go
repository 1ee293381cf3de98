package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/restruct/pkg/paths"
)

// EnvPrefix is the prefix of environment variables overriding settings
const EnvPrefix = "RESTRUCT_"

// ConfigPathEnv points at an explicit config file, bypassing the xdg lookup
const ConfigPathEnv = paths.EnvConfigFile

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config holds the tool settings
type Config struct {
	Filesystem Filesystem `koanf:"filesystem"`
	Logging    Logging    `koanf:"logging"`
	Output     Output     `koanf:"output"`
}

// Filesystem settings
type Filesystem struct {
	DirMode string `koanf:"dirmode"`
}

// Logging settings
type Logging struct {
	File bool `koanf:"file"`
}

// Output settings
type Output struct {
	Format string `koanf:"format"`
}

// DirPerm parses the octal directory mode
func (f Filesystem) DirPerm() (fs.FileMode, error) {
	mode, err := strconv.ParseUint(strings.TrimSpace(f.DirMode), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid filesystem.dirmode %q: %w", f.DirMode, err)
	}
	if mode == 0 || mode > 0o777 {
		return 0, fmt.Errorf("invalid filesystem.dirmode %q: must be between 1 and 0777", f.DirMode)
	}
	return fs.FileMode(mode), nil
}

// Default returns the embedded defaults without consulting files or environment
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

// LoadConfiguration loads defaults, the user config file and the environment
func LoadConfiguration() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. User config if it exists
	userConfigPath := getUserConfigPath()
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", userConfigPath, err)
		}
	} else if os.Getenv(ConfigPathEnv) != "" {
		return nil, fmt.Errorf("config file %s: %w", userConfigPath, err)
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		if s == ConfigPathEnv {
			return ""
		}
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	if _, err := cfg.Filesystem.DirPerm(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}

// getUserConfigPath returns $RESTRUCT_CONFIG or $XDG_CONFIG_HOME/restruct/config.toml
func getUserConfigPath() string {
	return paths.ConfigFilePath()
}

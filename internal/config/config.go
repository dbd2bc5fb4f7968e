package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// Exit codes
	ExitSuccess = iota
	ExitGeneralError
	ExitInvalidArguments
	ExitDirectoryNotFound
	ExitRenameFailed
	ExitConfigurationError
	ExitCollision
)

const (
	FileName  = "xhtmlren.yaml"
	EnvPrefix = "XHTMLREN"
)

const (
	DefaultExtension  = ".xhtml"
	DefaultConvention = "sequence"
	DefaultPrefix     = "section-"
	DefaultWidth      = 3
	DefaultStart      = 1
	DefaultLogLevel   = "info"
)

// Sort orders accepted by the planner.
const (
	SortNatural = "natural"
	SortLexical = "lexical"
)

// Config represents the rename configuration, loaded from xhtmlren.yaml
type Config struct {
	Extension  string `mapstructure:"extension" yaml:"extension"`
	Convention string `mapstructure:"convention" yaml:"convention"`
	Prefix     string `mapstructure:"prefix" yaml:"prefix"`
	Width      int    `mapstructure:"width" yaml:"width"`
	Start      int    `mapstructure:"start" yaml:"start"`
	Pattern    string `mapstructure:"pattern" yaml:"pattern,omitempty"`
	Include    string `mapstructure:"include" yaml:"include,omitempty"`
	Sort       string `mapstructure:"sort" yaml:"sort"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no xhtmlren.yaml exists.
func Default() *Config {
	return &Config{
		Extension:  DefaultExtension,
		Convention: DefaultConvention,
		Prefix:     DefaultPrefix,
		Width:      DefaultWidth,
		Start:      DefaultStart,
		Sort:       SortNatural,
		LogLevel:   DefaultLogLevel,
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("extension", d.Extension)
	v.SetDefault("convention", d.Convention)
	v.SetDefault("prefix", d.Prefix)
	v.SetDefault("width", d.Width)
	v.SetDefault("start", d.Start)
	v.SetDefault("pattern", d.Pattern)
	v.SetDefault("include", d.Include)
	v.SetDefault("sort", d.Sort)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads xhtmlren.yaml from dir. A missing file yields defaults
// (plus any XHTMLREN_* environment overrides).
func Load(dir string) (*Config, error) {
	v := newViper()
	v.SetConfigName("xhtmlren")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return decode(v)
}

// FromEnv returns the defaults with XHTMLREN_* environment overrides applied,
// without reading any file.
func FromEnv() (*Config, error) {
	return decode(newViper())
}

// LoadFile reads an explicit config file. Unlike Load, the file must exist.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = false
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	config.Extension = NormalizeExtension(config.Extension)
	return &config, nil
}

// NormalizeExtension makes sure a non-empty extension starts with a dot.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// Save writes cfg to dir/xhtmlren.yaml.
// Uses yaml.v3 directly so keys the user added by hand survive.
func Save(dir string, cfg *Config) error {
	configPath := filepath.Join(dir, FileName)

	var existing map[string]interface{}
	if content, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(content, &existing); err != nil {
			return fmt.Errorf("parsing existing config: %w", err)
		}
	}

	if existing == nil {
		existing = make(map[string]interface{})
	}

	// Round-trip through yaml so the yaml tags decide key names and omitempty.
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var updates map[string]interface{}
	if err := yaml.Unmarshal(raw, &updates); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	for k, val := range updates {
		existing[k] = val
	}

	content, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Package config loads pagenav settings from a YAML file, fills defaults,
// applies PAGENAV_* environment overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagenav/internal/headers"
	"github.com/rshade/pagenav/internal/i18n"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/series"
	"github.com/rshade/pagenav/internal/urlbuilder"
)

// Environment variables.
const (
	EnvPrefix = "PAGENAV_"
	EnvConfig = "PAGENAV_CONFIG"
	EnvHome   = "PAGENAV_HOME"
)

// DisabledHeader in the headers section turns that header off.
const DisabledHeader = "-"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const (
	configFileName = "config.yaml"
	configDirName  = ".pagenav"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the pagenav configuration.
type Config struct {
	Limit     int           `yaml:"limit"              env:"LIMIT"      validate:"gte=1"`
	Outset    int           `yaml:"outset"             env:"OUTSET"     validate:"gte=0"`
	PageParam string        `yaml:"page_param"         env:"PAGE_PARAM" validate:"required,excludesall=&#?="`
	Overflow  string        `yaml:"overflow"           env:"OVERFLOW"   validate:"oneof=exception last_page empty_page"`
	Fragment  string        `yaml:"fragment,omitempty" env:"FRAGMENT"`
	Steps     map[int][]int `yaml:"steps"                               validate:"required,dive,keys,gte=0,endkeys,len=4,dive,gte=1"`
	Headers   HeadersConfig `yaml:"headers"            envPrefix:"HEADER_"`
	Locale    string        `yaml:"locale"             env:"LOCALE"     validate:"required"`
	Locales   []LocaleFile  `yaml:"locales,omitempty"                   validate:"dive"`
	Output    OutputConfig  `yaml:"output"             envPrefix:"OUTPUT_"`
	Logging   LoggingConfig `yaml:"logging"            envPrefix:"LOG_"`

	configPath string
}

// HeadersConfig names the pagination response headers. DisabledHeader turns one off.
type HeadersConfig struct {
	Page  string `yaml:"page"  env:"PAGE"`
	Limit string `yaml:"limit" env:"LIMIT"`
	Count string `yaml:"count" env:"COUNT"`
	Pages string `yaml:"pages" env:"PAGES"`
}

// LocaleFile is a dictionary to load. File empty selects the built-in one.
type LocaleFile struct {
	Locale string `yaml:"locale"         validate:"required"`
	File   string `yaml:"file,omitempty"`
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"FORMAT" validate:"oneof=table json yaml"`
}

// LoggingConfig controls CLI logging.
type LoggingConfig struct {
	Level  string `yaml:"level"          env:"LEVEL"  validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format"         env:"FORMAT" validate:"omitempty,oneof=console json"`
	File   string `yaml:"file,omitempty" env:"FILE"`
}

// Default returns the built-in configuration.
func Default() *Config {
	names := headers.DefaultNames()
	return &Config{
		Limit:     pagination.DefaultLimit,
		PageParam: urlbuilder.DefaultPageParam,
		Overflow:  pagination.OverflowError.String(),
		Steps:     map[int][]int{0: series.DefaultSize.Slice()},
		Headers: HeadersConfig{
			Page:  names.Page,
			Limit: names.Limit,
			Count: names.Count,
			Pages: names.Pages,
		},
		Locale:  i18n.DefaultLocale,
		Output:  OutputConfig{DefaultFormat: FormatTable},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// New returns the default configuration bound to the resolved config path.
func New() *Config {
	cfg := Default()
	if path, err := ResolvePath(""); err == nil {
		cfg.configPath = path
	}
	return cfg
}

// Load reads path, fills defaults, applies the environment and validates.
// The file must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadOrDefault is Load, but a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger := GetLogger()
		logger.Debug().Str("path", path).Msg("config file not found, using defaults")
		return parse(path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfig, path, err)
	}

	// Configured steps replace the defaults as a whole.
	steps := cfg.Steps
	cfg.Steps = nil
	if err := mergo.Merge(cfg, Default()); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}
	if steps != nil {
		cfg.Steps = steps
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}

	cfg.configPath = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the file the configuration is bound to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath binds the configuration to path.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration to its path.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	logger := GetLogger()
	logger.Debug().Str("path", c.configPath).Msg("configuration saved")
	return nil
}

// ResolvePath picks the config file: flagValue, then PAGENAV_CONFIG, then
// config.yaml in the config directory.
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetConfigDir returns PAGENAV_HOME or ~/.pagenav.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

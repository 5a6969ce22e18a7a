// Package config resolves huecount options from defaults, an optional config
// file, HUECOUNT_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/huecount/internal/colour"
	"github.com/jmylchreest/huecount/internal/image"
)

// Recognised configuration keys.
const (
	KeyImagePath     = "image_path"
	KeyTopK          = "top_k"
	KeyFilterVariant = "filter_variant"
	KeyFormat        = "format"
	KeyStrict        = "strict"
	KeyPreview       = "preview"
	KeyOutput        = "output"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. HUECOUNT_TOP_K.
	EnvPrefix = "HUECOUNT"

	// DefaultImagePath is analysed when no image is given.
	DefaultImagePath = "public/logo-med.png"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved options for an analysis run.
type Config struct {
	ImagePath     string `mapstructure:"image_path"`
	TopK          int    `mapstructure:"top_k"`
	FilterVariant string `mapstructure:"filter_variant"`
	Format        string `mapstructure:"format"`
	Strict        bool   `mapstructure:"strict"`
	Preview       bool   `mapstructure:"preview"`
	Output        string `mapstructure:"output"`
}

// ValidFormats returns the supported output formats.
func ValidFormats() []string {
	return []string{FormatText, FormatJSON, FormatTable}
}

// Variant returns the parsed filter variant. Call Validate first.
func (c Config) Variant() colour.FilterVariant {
	v, _ := colour.ParseFilterVariant(c.FilterVariant)
	return v
}

// EffectiveTopK returns TopK, or the variant default when TopK is zero.
func (c Config) EffectiveTopK() int {
	if c.TopK == 0 {
		return c.Variant().DefaultTopK()
	}
	return c.TopK
}

// Validate checks every option.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ImagePath) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrInvalidConfig, KeyImagePath)
	}
	if c.TopK < 0 || c.TopK > colour.MaxTopK {
		return fmt.Errorf("%w: %s must be between 1 and %d (0 selects the filter default), got %d",
			ErrInvalidConfig, KeyTopK, colour.MaxTopK, c.TopK)
	}
	if _, err := colour.ParseFilterVariant(c.FilterVariant); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyFilterVariant, err)
	}
	if !slices.Contains(ValidFormats(), c.Format) {
		return fmt.Errorf("%w: unsupported %s %q (supported: %s)",
			ErrInvalidConfig, KeyFormat, c.Format, strings.Join(ValidFormats(), ", "))
	}
	return nil
}

// New returns a viper instance with defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyImagePath, DefaultImagePath)
	v.SetDefault(KeyTopK, 0)
	v.SetDefault(KeyFilterVariant, string(colour.FilterBasic))
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyPreview, false)
	v.SetDefault(KeyOutput, "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// BindFlags binds command-line flags to configuration keys. flagNames maps
// a key to the flag that overrides it; flags that do not exist are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, flagNames map[string]string) error {
	for key, name := range flagNames {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// DefaultConfigFile returns the per-user config file path, whether or not
// it exists.
func DefaultConfigFile() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "huecount", "config.yaml"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "huecount", "config.yaml"), nil
}

// Load reads the config file and returns the validated configuration.
// An explicit configFile must exist; otherwise the default file is read
// only if present.
func Load(v *viper.Viper, configFile string) (Config, error) {
	path, explicit, err := resolveConfigFile(configFile)
	if err != nil {
		return Config{}, err
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil || explicit {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.FilterVariant = strings.ToLower(strings.TrimSpace(cfg.FilterVariant))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if !image.IsRemote(cfg.ImagePath) {
		expanded, err := homedir.Expand(cfg.ImagePath)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyImagePath, err)
		}
		cfg.ImagePath = expanded
	}
	if cfg.Output != "" {
		expanded, err := homedir.Expand(cfg.Output)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyOutput, err)
		}
		cfg.Output = expanded
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolveConfigFile(configFile string) (path string, explicit bool, err error) {
	if configFile != "" {
		expanded, err := homedir.Expand(configFile)
		if err != nil {
			return "", true, fmt.Errorf("invalid config path: %w", err)
		}
		return expanded, true, nil
	}
	path, err = DefaultConfigFile()
	if err != nil {
		// No home directory means no default file; defaults still apply.
		return "", false, nil
	}
	return path, false, nil
}

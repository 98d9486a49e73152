package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/qyinm/cartui/catalog"
	"github.com/qyinm/cartui/dealer"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the TUI
type Config struct {
	BaseURL           string        `mapstructure:"base-url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond int           `mapstructure:"rps"`
	FilterModeName    string        `mapstructure:"filter-mode"`
	PriceMin          float64       `mapstructure:"price-min"`
	PriceMax          float64       `mapstructure:"price-max"` // 0 sizes the slider to the catalog
	PriceStep         float64       `mapstructure:"price-step"`
	LogFile           string        `mapstructure:"log-file"`
	LogLevel          string        `mapstructure:"log-level"`

	// FilterMode is FilterModeName parsed.
	FilterMode catalog.FilterMode `mapstructure:"-"`
}

// DealerOptions returns the client options for this configuration.
func (c *Config) DealerOptions() dealer.Options {
	return dealer.Options{
		BaseURL:           c.BaseURL,
		Timeout:           c.Timeout,
		RequestsPerSecond: c.RequestsPerSecond,
	}
}

// NewFlagSet returns the command-line flags understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file (default: ./cartui.yaml or ~/.config/cartui/cartui.yaml)")
	fs.String("base-url", dealer.DefaultBaseURL, "dealership service base URL")
	fs.Duration("timeout", 0, "per-request timeout (0 waits indefinitely)")
	fs.Int("rps", 0, "maximum requests per second to the service (0 is unlimited)")
	fs.String("filter-mode", catalog.Exclusive.String(), "how search and price filters interact: exclusive|combined")
	fs.Float64("price-min", 0, "lowest value of the price slider")
	fs.Float64("price-max", 0, "highest value of the price slider (0 follows the most expensive car)")
	fs.Float64("price-step", 1000, "price slider increment")
	fs.String("log-file", "", "write JSON log records to this file")
	fs.String("log-level", "info", "log level: debug|info|warn|error")
	fs.BoolP("help", "h", false, "show help")
	return fs
}

// Load parses args against fs, then layers config file and CARTUI_* environment
// variables beneath explicitly set flags.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if help, _ := fs.GetBool("help"); help {
		return nil, pflag.ErrHelp
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CARTUI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if err := readConfigFile(v, v.GetString("config")); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base-url", dealer.DefaultBaseURL)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("rps", 0)
	v.SetDefault("filter-mode", catalog.Exclusive.String())
	v.SetDefault("price-min", 0)
	v.SetDefault("price-max", 0)
	v.SetDefault("price-step", 1000)
	v.SetDefault("log-file", "")
	v.SetDefault("log-level", "info")
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	v.SetConfigName("cartui")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/cartui")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	mode, err := catalog.ParseFilterMode(c.FilterModeName)
	if err != nil {
		return err
	}
	c.FilterMode = mode

	if c.PriceMin < 0 {
		return fmt.Errorf("price-min must be non-negative, got %v", c.PriceMin)
	}
	if c.PriceMax < 0 {
		return fmt.Errorf("price-max must be non-negative, got %v", c.PriceMax)
	}
	if c.PriceMax != 0 && c.PriceMax <= c.PriceMin {
		return fmt.Errorf("price-max (%v) must be greater than price-min (%v)", c.PriceMax, c.PriceMin)
	}
	if c.PriceStep <= 0 {
		return fmt.Errorf("price-step must be positive, got %v", c.PriceStep)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("rps must be non-negative, got %d", c.RequestsPerSecond)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %v", c.Timeout)
	}
	return nil
}

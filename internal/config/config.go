// Package config loads the demo settings from flags, RTA_* environment
// variables, an optional YAML file and built-in defaults, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	BackendTea   = "tea"
	BackendTcell = "tcell"

	MinFloorDB = -120.0
	MaxFloorDB = -20.0

	envPrefix = "RTA"
)

// Config holds the settings of one demo run.
type Config struct {
	Bands         int     `mapstructure:"bands" yaml:"bands"`
	MinDB         float64 `mapstructure:"min_db" yaml:"min_db"`
	ShowLabels    bool    `mapstructure:"show_labels" yaml:"show_labels"`
	HighlightPeak bool    `mapstructure:"highlight_peak" yaml:"highlight_peak"`
	Border        bool    `mapstructure:"border" yaml:"border"`
	Title         string  `mapstructure:"title" yaml:"title"`
	FPS           int     `mapstructure:"fps" yaml:"fps"`
	Backend       string  `mapstructure:"backend" yaml:"backend"`
	Seed          int64   `mapstructure:"seed" yaml:"seed"`
	LogFile       string  `mapstructure:"log_file" yaml:"log_file"`
	LogLevel      string  `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Bands:         32,
		MinDB:         -60,
		ShowLabels:    true,
		HighlightPeak: true,
		Border:        true,
		Title:         "rta",
		FPS:           30,
		Backend:       BackendTea,
		Seed:          42,
		LogLevel:      "info",
	}
}

// flag name -> config key
var flagKeys = map[string]string{
	"bands":          "bands",
	"min-db":         "min_db",
	"show-labels":    "show_labels",
	"highlight-peak": "highlight_peak",
	"border":         "border",
	"title":          "title",
	"fps":            "fps",
	"backend":        "backend",
	"seed":           "seed",
	"log-file":       "log_file",
	"log-level":      "log_level",
}

// NewFlagSet declares every setting as a flag, plus --config and
// --dump-config.
func NewFlagSet(name string) *pflag.FlagSet {
	d := Default()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.Bool("dump-config", false, "print the effective config as YAML and exit")
	fs.Int("bands", d.Bands, "number of frequency bands")
	fs.Float64("min-db", d.MinDB, "level in dB drawn as an empty bar")
	fs.Bool("show-labels", d.ShowLabels, "show the peak readout above the meter")
	fs.Bool("highlight-peak", d.HighlightPeak, "color the loudest band")
	fs.Bool("border", d.Border, "draw a border around the meter")
	fs.String("title", d.Title, "border title")
	fs.Int("fps", d.FPS, "frames per second")
	fs.String("backend", d.Backend, "terminal backend: tea or tcell")
	fs.Int64("seed", d.Seed, "seed for the synthetic band source")
	fs.String("log-file", d.LogFile, "write logs to this file (disabled when empty)")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
	return fs
}

// Load resolves the effective config from a parsed flag set.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("bands", d.Bands)
	v.SetDefault("min_db", d.MinDB)
	v.SetDefault("show_labels", d.ShowLabels)
	v.SetDefault("highlight_peak", d.HighlightPeak)
	v.SetDefault("border", d.Border)
	v.SetDefault("title", d.Title)
	v.SetDefault("fps", d.FPS)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)

	if fs != nil {
		if path, _ := fs.GetString("config"); path != "" {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.Bands < 1 {
		errs = append(errs, fmt.Errorf("bands must be at least 1, got %d", c.Bands))
	}
	if !(c.MinDB >= MinFloorDB && c.MinDB <= MaxFloorDB) {
		errs = append(errs, fmt.Errorf("min_db must be between %v and %v, got %v", MinFloorDB, MaxFloorDB, c.MinDB))
	}
	if c.FPS < 1 || c.FPS > 120 {
		errs = append(errs, fmt.Errorf("fps must be between 1 and 120, got %d", c.FPS))
	}
	switch c.Backend {
	case BackendTea, BackendTcell:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q (supported: %s, %s)", c.Backend, BackendTea, BackendTcell))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Dump writes c as YAML.
func (c Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// ClampFloor keeps an interactively adjusted floor inside the supported range.
func ClampFloor(db float64) float64 {
	return max(MinFloorDB, min(MaxFloorDB, db))
}

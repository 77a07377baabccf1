// Package config holds the run configuration: map size, population policy,
// renderer choice and display settings. Values come from Default, an optional
// YAML file and command-line overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"citygrid/pkg/game/generator"
	"citygrid/pkg/game/renderer"
)

// Errors returned by Validate
var (
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config is the full run configuration
type Config struct {
	Rows int   `mapstructure:"rows" yaml:"rows" validate:"gte=0"`
	Cols int   `mapstructure:"cols" yaml:"cols" validate:"gte=0"`
	Seed int64 `mapstructure:"seed" yaml:"seed"` // 0 picks a time-based seed

	TreeProbability float64  `mapstructure:"tree_probability" yaml:"tree_probability" validate:"gte=0,lte=1"`
	RoadMin         int      `mapstructure:"road_min" yaml:"road_min" validate:"ltefield=RoadMax"`
	RoadMax         int      `mapstructure:"road_max" yaml:"road_max"`
	Layout          []string `mapstructure:"layout" yaml:"layout,omitempty" validate:"omitempty,dive,min=1"` // fixed map; overrides rows/cols

	Renderer   string  `mapstructure:"renderer" yaml:"renderer"`
	TileSize   int     `mapstructure:"tile_size" yaml:"tile_size" validate:"min=1"`
	Locale     string  `mapstructure:"locale" yaml:"locale"`
	LogLevel   string  `mapstructure:"log_level" yaml:"log_level"`
	ThermalMin float64 `mapstructure:"thermal_min" yaml:"thermal_min" validate:"ltfield=ThermalMax"`
	ThermalMax float64 `mapstructure:"thermal_max" yaml:"thermal_max"`
}

// Default returns the built-in configuration: a 10x10 city block map in the terminal
func Default() Config {
	return Config{
		Rows:            10,
		Cols:            10,
		TreeProbability: generator.DefaultTreeProbability,
		RoadMin:         generator.DefaultRoadMin,
		RoadMax:         generator.DefaultRoadMax,
		Renderer:        RendererTUI,
		TileSize:        24,
		Locale:          "en_GB",
		LogLevel:        "info",
		ThermalMin:      renderer.DefaultThermalMin,
		ThermalMax:      renderer.DefaultThermalMax,
	}
}

// Load reads a YAML config file on top of Default. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	setDefaults(vp, cfg)

	if err := vp.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := vp.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func setDefaults(vp *viper.Viper, cfg Config) {
	vp.SetDefault("rows", cfg.Rows)
	vp.SetDefault("cols", cfg.Cols)
	vp.SetDefault("seed", cfg.Seed)
	vp.SetDefault("tree_probability", cfg.TreeProbability)
	vp.SetDefault("road_min", cfg.RoadMin)
	vp.SetDefault("road_max", cfg.RoadMax)
	vp.SetDefault("renderer", cfg.Renderer)
	vp.SetDefault("tile_size", cfg.TileSize)
	vp.SetDefault("locale", cfg.Locale)
	vp.SetDefault("log_level", cfg.LogLevel)
	vp.SetDefault("thermal_min", cfg.ThermalMin)
	vp.SetDefault("thermal_max", cfg.ThermalMax)
}

// validate checks the struct tag constraints on Config
var validate = validator.New()

// Validate reports the first problem with the configuration
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, c.Renderer)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, formatValidationError(err))
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	// Return the first validation error in a user-friendly format
	e := validationErrs[0]
	field, param := e.Field(), e.Param()
	switch e.Tag() {
	case "gte", "min":
		return fmt.Errorf("%s: must be at least %s, got %v", field, param, e.Value())
	case "lte":
		return fmt.Errorf("%s: must not exceed %s, got %v", field, param, e.Value())
	case "ltefield":
		return fmt.Errorf("%s: must not exceed %s", field, param)
	case "ltfield":
		return fmt.Errorf("%s: must be below %s", field, param)
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}

// SlogLevel parses LogLevel (debug, info, warn, error)
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// ThermalScale returns the colormap bounds for the thermal view
func (c Config) ThermalScale() renderer.ThermalScale {
	return renderer.ThermalScale{Min: c.ThermalMin, Max: c.ThermalMax}
}

// YAML renders the configuration in the same format Load reads
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

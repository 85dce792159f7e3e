// SPDX-License-Identifier: MIT

// Package config loads lvrank settings from defaults, an optional YAML file,
// LVRANK_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/rank"
	"github.com/katalvlaran/lvrank/report"
)

// Keys shared by viper, the config file and flag bindings.
const (
	KeyInput         = "input"
	KeyEpsilon       = "epsilon"
	KeyMaxIterations = "max_iterations"
	KeyDamping       = "damping"
	KeyDangling      = "dangling"
	KeyJump          = "jump"
	KeySortByRank    = "sort_by_rank"
	KeyFormat        = "format"
	KeyHeader        = "header"
	KeyLogLevel      = "log_level"
	KeyMetricsFile   = "metrics_file"
	KeyDebug         = "debug"
)

// EnvPrefix namespaces environment overrides, e.g. LVRANK_DAMPING=0.2.
const EnvPrefix = "LVRANK"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// validate checks the numeric ranges declared in Config's struct tags.
var validate = newValidator()

// newValidator reports fields by their mapstructure key and adds the
// "finite" rule (rejects NaN and ±Inf).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// Config holds all runtime configuration for one lvrank run.
type Config struct {
	Input                    string  `mapstructure:"input"`
	Epsilon                  float64 `mapstructure:"epsilon" validate:"finite,gte=0"`
	MaxIterations            int     `mapstructure:"max_iterations" validate:"min=1"`
	Damping                  float64 `mapstructure:"damping" validate:"finite,gte=0,lte=1"`
	EnableDanglingCorrection bool    `mapstructure:"dangling"`
	EnableDamping            bool    `mapstructure:"jump"`
	SortByRank               bool    `mapstructure:"sort_by_rank"`
	Format                   string  `mapstructure:"format"`
	Header                   bool    `mapstructure:"header"`
	LogLevel                 string  `mapstructure:"log_level"`
	MetricsFile              string  `mapstructure:"metrics_file"`
	Debug                    bool    `mapstructure:"debug"`
}

// SetDefaults registers every key with its default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyEpsilon, rank.DefaultEpsilon)
	v.SetDefault(KeyMaxIterations, rank.DefaultMaxIterations)
	v.SetDefault(KeyDamping, rank.DefaultDamping)
	v.SetDefault(KeyDangling, true)
	v.SetDefault(KeyJump, true)
	v.SetDefault(KeySortByRank, true)
	v.SetDefault(KeyFormat, string(report.Text))
	v.SetDefault(KeyHeader, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyDebug, false)
}

// Load applies defaults to v, unmarshals it and validates the result.
// File reading and flag binding are the caller's concern.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports every invalid field at once: struct-tag ranges first,
// then the format and log level names.
func (c Config) Validate() error {
	var err error
	if verr := validate.Struct(c); verr != nil {
		var fields validator.ValidationErrors
		if !errors.As(verr, &fields) {
			return fmt.Errorf("config: validate: %w", verr)
		}
		for _, fe := range fields {
			err = multierror.Append(err, fieldError(fe))
		}
	}
	if _, ferr := report.ParseFormat(c.Format); ferr != nil {
		err = multierror.Append(err, fmt.Errorf("%s: %v: %w", KeyFormat, ferr, ErrInvalid))
	}
	if _, lerr := parseLevel(c.LogLevel); lerr != nil {
		err = multierror.Append(err, fmt.Errorf("%s: %v: %w", KeyLogLevel, lerr, ErrInvalid))
	}

	return err
}

// fieldError renders one failed struct-tag rule.
func fieldError(fe validator.FieldError) error {
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return fmt.Errorf("%s=%v violates %s: %w", fe.Field(), fe.Value(), rule, ErrInvalid)
}

// RankConfig converts the flags into the solver's stage list and parameters.
func (c Config) RankConfig() rank.Config {
	stages := rank.StageBuild | rank.StageSolve
	if c.EnableDanglingCorrection {
		stages |= rank.StageDangling
	}
	if c.EnableDamping {
		stages |= rank.StageDamping
	}

	return rank.Config{
		Stages:        stages,
		Damping:       c.Damping,
		Epsilon:       c.Epsilon,
		MaxIterations: c.MaxIterations,
	}
}

// Reporter builds the result renderer. Call after Validate.
func (c Config) Reporter() report.Reporter {
	format, _ := report.ParseFormat(c.Format)
	order := rank.ByVertex
	if c.SortByRank {
		order = rank.ByRank
	}

	return report.Reporter{Format: format, Order: order, Header: c.Header}
}

// SlogLevel maps LogLevel to a slog.Level. Call after Validate.
func (c Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

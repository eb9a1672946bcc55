// Package config resolves the run configuration of the tabusearch command.
//
// Sources, highest priority first:
//
//  1. command-line flags that were set explicitly,
//  2. TABU_* environment variables (dashes become underscores, e.g.
//     TABU_TIME_LIMIT),
//  3. an optional YAML config file,
//  4. the method preset (see Presets),
//  5. built-in defaults.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tabusearch/internal/logging"
	"github.com/katalvlaran/tabusearch/internal/report"
	"github.com/katalvlaran/tabusearch/tabu"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "TABU"

// Keys shared by flags, environment and config file.
const (
	KeyMethod          = "method"
	KeyTenure          = "tenure"
	KeyTimeLimit       = "time-limit"
	KeyMaxIterations   = "max-iterations"
	KeyStrategy        = "strategy"
	KeyDiversification = "diversification"
	KeyIntensification = "intensification"
	KeySeed            = "seed"
	KeyLogLevel        = "log-level"
	KeyLogFormat       = "log-format"
	KeyMetricsFile     = "metrics-file"
	KeyReportFormat    = "report-format"
	KeyOutput          = "output"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the fully resolved configuration of one run.
type Config struct {
	Method          string        `mapstructure:"method"`
	Tenure          int           `mapstructure:"tenure"`
	TimeLimit       time.Duration `mapstructure:"time-limit"`
	MaxIterations   int           `mapstructure:"max-iterations"`
	Strategy        string        `mapstructure:"strategy"`
	Diversification bool          `mapstructure:"diversification"`
	Intensification bool          `mapstructure:"intensification"`
	Seed            int64         `mapstructure:"seed"`

	LogLevel     string `mapstructure:"log-level"`
	LogFormat    string `mapstructure:"log-format"`
	MetricsFile  string `mapstructure:"metrics-file"`
	ReportFormat string `mapstructure:"report-format"`
	Output       string `mapstructure:"output"`
}

// Default returns the "std" configuration.
func Default() Config {
	return Config{
		Method:       MethodStd,
		Tenure:       tabu.DefaultTenure,
		TimeLimit:    tabu.DefaultTimeLimit,
		Strategy:     tabu.FirstImproving.String(),
		LogLevel:     "info",
		LogFormat:    string(logging.FormatConsole),
		ReportFormat: report.FormatText,
	}
}

// RegisterFlags adds every configuration flag to fs with the "std" defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP(KeyMethod, "m", d.Method, "method preset: "+strings.Join(PresetNames(), ", "))
	fs.IntP(KeyTenure, "t", d.Tenure, "tabu tenure (the list holds 2*tenure entries)")
	fs.Duration(KeyTimeLimit, d.TimeLimit, "wall-clock budget, 0 for none")
	fs.Int(KeyMaxIterations, d.MaxIterations, "iteration cap, 0 for none")
	fs.String(KeyStrategy, d.Strategy, "move selection: first or best")
	fs.Bool(KeyDiversification, d.Diversification, "enable frequency-based restarts")
	fs.Bool(KeyIntensification, d.Intensification, "enable double-exchange intensification")
	fs.Int64(KeySeed, d.Seed, "RNG seed for the construction phase, 0 for the fixed default")
	fs.String(KeyLogLevel, d.LogLevel, "log level: info, debug or trace")
	fs.String(KeyLogFormat, d.LogFormat, "log format: console or json")
	fs.String(KeyMetricsFile, d.MetricsFile, "write Prometheus metrics to this file when the run ends")
	fs.String(KeyReportFormat, d.ReportFormat, "report format: text, yaml or json")
	fs.StringP(KeyOutput, "o", d.Output, "write the report to this file instead of stdout")
}

// NewViper returns a viper instance bound to fs and the TABU_ environment.
// configFile may be empty.
func NewViper(fs *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	return v, nil
}

// Load resolves the method preset, applies the other sources on top of it
// and validates the result.
func Load(v *viper.Viper) (Config, error) {
	method := v.GetString(KeyMethod)
	if method == "" {
		method = MethodStd
	}
	base, err := Preset(method)
	if err != nil {
		return Config{}, err
	}
	setDefaults(v, base)

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault(KeyMethod, c.Method)
	v.SetDefault(KeyTenure, c.Tenure)
	v.SetDefault(KeyTimeLimit, c.TimeLimit)
	v.SetDefault(KeyMaxIterations, c.MaxIterations)
	v.SetDefault(KeyStrategy, c.Strategy)
	v.SetDefault(KeyDiversification, c.Diversification)
	v.SetDefault(KeyIntensification, c.Intensification)
	v.SetDefault(KeySeed, c.Seed)
	v.SetDefault(KeyLogLevel, c.LogLevel)
	v.SetDefault(KeyLogFormat, c.LogFormat)
	v.SetDefault(KeyMetricsFile, c.MetricsFile)
	v.SetDefault(KeyReportFormat, c.ReportFormat)
	v.SetDefault(KeyOutput, c.Output)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Tenure <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", KeyTenure, c.Tenure))
	}
	if c.TimeLimit < 0 {
		errs = append(errs, fmt.Errorf("%s must be non-negative, got %s", KeyTimeLimit, c.TimeLimit))
	}
	if c.MaxIterations < 0 {
		errs = append(errs, fmt.Errorf("%s must be non-negative, got %d", KeyMaxIterations, c.MaxIterations))
	}
	if c.TimeLimit == 0 && c.MaxIterations == 0 {
		errs = append(errs, fmt.Errorf("one of %s and %s must be positive", KeyTimeLimit, KeyMaxIterations))
	}
	if _, err := tabu.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch logging.Format(c.LogFormat) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%s must be console or json, got %q", KeyLogFormat, c.LogFormat))
	}
	if !slices.Contains([]string{report.FormatText, report.FormatYAML, report.FormatJSON}, c.ReportFormat) {
		errs = append(errs, fmt.Errorf("%s must be text, yaml or json, got %q", KeyReportFormat, c.ReportFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// EngineOptions converts the search settings. c must be valid.
func (c Config) EngineOptions() tabu.Options {
	o := tabu.DefaultOptions()
	o.Tenure = c.Tenure
	o.TimeLimit = c.TimeLimit
	o.MaxIterations = c.MaxIterations
	o.Strategy, _ = tabu.ParseStrategy(c.Strategy)
	o.Diversification = c.Diversification
	o.Intensification = c.Intensification
	o.Seed = c.Seed

	return o
}

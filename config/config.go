package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/emberterm/ember/observe"
)

// Environment variables read by Load.
const (
	EnvFPS             = "EMBER_FPS"
	EnvLogLevel        = "EMBER_LOG_LEVEL"
	EnvLogFile         = "EMBER_LOG_FILE"
	EnvMetricsExporter = "EMBER_METRICS_EXPORTER"
	EnvTraceExporter   = "EMBER_TRACE_EXPORTER"
	EnvTraceSample     = "EMBER_TRACE_SAMPLE"
)

// Configuration errors.
var (
	// ErrInvalidFPS indicates FPS is outside [1, 240].
	ErrInvalidFPS = errors.New("config: fps must be between 1 and 240")

	// ErrInvalidSampleRatio indicates TraceSampleRatio is not in [0.0, 1.0].
	ErrInvalidSampleRatio = errors.New("config: trace sample ratio must be between 0.0 and 1.0")
)

// FPS bounds accepted by Validate.
const (
	MinFPS = 1
	MaxFPS = 240
)

// Config holds engine settings loaded from the environment.
type Config struct {
	// FPS is the target frame rate.
	FPS int

	// LogLevel is one of debug, info, warn, error. Empty disables
	// logging.
	LogLevel string

	// LogFile receives log lines. ${VAR} references are expanded.
	// Empty means stderr.
	LogFile string

	// MetricsExporter names the metrics backend: otlp, prometheus,
	// stderr, or none.
	MetricsExporter string

	// TraceExporter names the trace backend: otlp, stderr, or none.
	TraceExporter string

	// TraceSampleRatio is the fraction of frames to trace.
	TraceSampleRatio float64
}

// Default returns the configuration used when no environment variables
// are set: 60 frames per second, no logging, no telemetry.
func Default() Config {
	return Config{
		FPS: 60,
	}
}

// Load reads EMBER_* environment variables on top of Default.
func Load() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", EnvFPS, err)
		}
		cfg.FPS = fps
	}

	cfg.LogLevel = os.Getenv(EnvLogLevel)

	if v := os.Getenv(EnvLogFile); v != "" {
		expanded, err := ExpandEnvStrict(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: expanding %s: %w", EnvLogFile, err)
		}
		cfg.LogFile = expanded
	}

	cfg.MetricsExporter = os.Getenv(EnvMetricsExporter)
	cfg.TraceExporter = os.Getenv(EnvTraceExporter)

	if v := os.Getenv(EnvTraceSample); v != "" {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", EnvTraceSample, err)
		}
		cfg.TraceSampleRatio = ratio
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks numeric ranges. Exporter and level names are
// validated by observe.Config when the observer is built.
func (c Config) Validate() error {
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("%w: got %d", ErrInvalidFPS, c.FPS)
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		return fmt.Errorf("%w: got %f", ErrInvalidSampleRatio, c.TraceSampleRatio)
	}
	return nil
}

// FrameInterval converts FPS to the pacing interval for the engine loop.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Observe maps the loaded settings onto an observe.Config for the
// given application name and version. A subsystem is enabled when its
// exporter or level is set.
func (c Config) Observe(appName, version string) observe.Config {
	return observe.Config{
		AppName: appName,
		Version: version,
		Tracing: observe.TracingConfig{
			Enabled:   c.TraceExporter != "",
			Exporter:  c.TraceExporter,
			SamplePct: c.TraceSampleRatio,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  c.MetricsExporter != "",
			Exporter: c.MetricsExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: c.LogLevel != "",
			Level:   c.LogLevel,
			File:    c.LogFile,
		},
	}
}

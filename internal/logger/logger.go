// Package logger builds the zerolog loggers used by the scrabble binary.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Standard field keys.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldDuration  = "duration_ms"
)

// Config contains logging configuration.
type Config struct {
	Level   string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal"`
	Format  string `mapstructure:"format" validate:"oneof=json console"`
	Output  string `mapstructure:"output" validate:"oneof=stdout stderr"`
	NoColor bool   `mapstructure:"no_color"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatConsole
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	c.Level = strings.ToLower(c.Level)
	c.Format = strings.ToLower(c.Format)
}

// New creates a logger writing to the configured output.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, outputWriter(cfg.Output))
}

// NewWithWriter creates a logger writing to w, honoring the level and format
// of the configuration.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if cfg.Format == FormatConsole {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    cfg.NoColor,
			FormatFieldName: func(i interface{}) string {
				return fmt.Sprintf("%s:", i)
			},
		})
	} else {
		zl = zerolog.New(w)
	}

	return zl.Level(level).With().Timestamp().Logger()
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

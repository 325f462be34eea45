// Package config loads the configuration of the scrabble binary from flags,
// environment variables, an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/arielf-camacho/cold-stream/internal/logger"
	"github.com/arielf-camacho/cold-stream/internal/telemetry"
	"github.com/arielf-camacho/cold-stream/scrabble"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SCRABBLE"

// Config is the configuration of the scrabble binary.
type Config struct {
	Dictionary string `mapstructure:"dictionary" validate:"required_without=Serve"`
	Corpus     string `mapstructure:"corpus" validate:"required_without=Serve"`
	Top        int    `mapstructure:"top" validate:"min=1,max=1000"`
	Serve      bool   `mapstructure:"serve"`
	Addr       string `mapstructure:"addr" validate:"required_if=Serve true"`

	Logging   logger.Config    `mapstructure:"logging"`
	Telemetry telemetry.Config `mapstructure:"telemetry"`
	Tables    TablesConfig     `mapstructure:"tables"`
}

// TablesConfig overrides the default scrabble tables. Empty slices keep the
// defaults.
type TablesConfig struct {
	Points []int `mapstructure:"points" validate:"omitempty,len=26,dive,min=0"`
	Supply []int `mapstructure:"supply" validate:"omitempty,len=26,dive,min=0"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Top == 0 {
		c.Top = scrabble.DefaultTop
	}
	if c.Serve && c.Addr == "" {
		c.Addr = ":8080"
	}
	c.Logging.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validating config: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s failed on %q", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
}

// ScrabbleTables returns the default tables with the configured overrides applied.
func (c *Config) ScrabbleTables() scrabble.Tables {
	tables := scrabble.DefaultTables
	if len(c.Tables.Points) == scrabble.Letters {
		copy(tables.Points[:], c.Tables.Points)
	}
	if len(c.Tables.Supply) == scrabble.Letters {
		copy(tables.Supply[:], c.Tables.Supply)
	}
	return tables
}

// Flags returns the flag set understood by Load.
func Flags(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.String("env-file", ".env", "path to an optional .env file")
	flags.String("dictionary", "", "path to the dictionary word list")
	flags.String("corpus", "", "path to the corpus word list")
	flags.Int("top", scrabble.DefaultTop, "number of ranks to report")
	flags.String("log-level", "info", "log level")
	flags.String("log-format", logger.FormatConsole, "log format (console or json)")
	flags.Bool("serve", false, "serve the play operation over HTTP")
	flags.String("addr", ":8080", "HTTP listen address")
	flags.String("otlp-endpoint", "", "OTLP/HTTP endpoint receiving traces and metrics (host:port)")
	return flags
}

var flagKeys = map[string]string{
	"dictionary":    "dictionary",
	"corpus":        "corpus",
	"top":           "top",
	"log-level":     "logging.level",
	"log-format":    "logging.format",
	"serve":         "serve",
	"addr":          "addr",
	"otlp-endpoint": "telemetry.endpoint",
}

// Load parses args and resolves the configuration. Flags set on the command
// line win over environment variables, which win over the config file.
func Load(name string, args []string) (*Config, error) {
	flags := Flags(name)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	envFile, _ := flags.GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.no_color", false)
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("telemetry.service_name", "scrabble")
	v.SetDefault("telemetry.interval", "15s")
	v.SetDefault("tables.points", []int{})
	v.SetDefault("tables.supply", []int{})

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

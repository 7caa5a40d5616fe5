// Package config holds the lvtour process configuration.
//
// TOML format:
//
//	[log]
//	level = "info"      # trace | debug | info | warn | error
//	format = "console"  # console | json
//	no_color = false
//
//	[search]
//	separator = "->"
//
//	[report]
//	events = "console"  # console | log | none
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Recognised values.
const (
	FormatConsole = "console"
	FormatJSON    = "json"

	EventsConsole = "console"
	EventsLog     = "log"
	EventsNone    = "none"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log configures the process logger.
type Log struct {
	Level   string `toml:"level"`
	Format  string `toml:"format"`
	NoColor bool   `toml:"no_color"`
}

// Search configures tour rendering.
type Search struct {
	Separator string `toml:"separator"`
}

// Report selects where search notifications go.
type Report struct {
	Events string `toml:"events"`
}

// Config is the whole file.
type Config struct {
	Log    Log    `toml:"log"`
	Search Search `toml:"search"`
	Report Report `toml:"report"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: FormatConsole},
		Search: Search{Separator: "->"},
		Report: Report{Events: EventsConsole},
	}
}

// Load reads path over Default; keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	var errs []error
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil || c.Log.Level == "" {
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level))
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format))
	}
	if c.Search.Separator == "" {
		errs = append(errs, fmt.Errorf("%w: search.separator is empty", ErrInvalidConfig))
	}
	switch c.Report.Events {
	case EventsConsole, EventsLog, EventsNone:
	default:
		errs = append(errs, fmt.Errorf("%w: report.events %q", ErrInvalidConfig, c.Report.Events))
	}

	return errors.Join(errs...)
}

// Package logging builds the process zerolog.Logger from config.Log.
package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtour/internal/config"
)

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta

	colorBold = 1
)

// New returns a logger writing to w at cfg.Level. The console format mirrors
// a terminal session (time, short caller, boxed level, message); the json
// format emits one object per line with a caller field.
func New(cfg config.Log, w io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var out io.Writer = w
	if cfg.Format != config.FormatJSON {
		out = consoleWriter(w, cfg.NoColor)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Caller().Logger(), nil
}

// ParseLevel maps a config level name to a zerolog level. The empty string
// means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: %w", err)
	}

	return lvl, nil
}

func consoleWriter(w io.Writer, noColor bool) zerolog.ConsoleWriter {
	p := painter{disabled: noColor}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: noColor}
	cw.FormatCaller = p.formatCaller
	cw.FormatLevel = p.formatLevel
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.CallerFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}

	return cw
}

type painter struct {
	disabled bool
}

func (p painter) colorize(s any, c int) string {
	if p.disabled {
		return fmt.Sprintf("%v", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// formatCaller shortens "path/to/file.go:42" to a fixed-width "file.go.42".
func (p painter) formatCaller(i any) string {
	c, _ := i.(string)
	if c == "" {
		return ""
	}
	file, line := c, ""
	if k := strings.LastIndexByte(c, ':'); k > 0 {
		file, line = c[:k], c[k+1:]
	}
	if _, err := strconv.Atoi(line); err != nil {
		line = ""
	}
	short := fmt.Sprintf("%15s.%-4s", filepath.Base(file), line)
	if len(short) > 20 {
		short = ".." + short[len(short)-18:]
	}

	return p.colorize(short, colorBlack)
}

func (p painter) formatLevel(i any) string {
	ll, ok := i.(string)
	if !ok {
		if i == nil {
			return p.colorize("| ??? |", colorBold)
		}
		return strings.ToUpper(fmt.Sprintf("| %5s |", i))
	}
	switch ll {
	case zerolog.LevelTraceValue:
		return p.colorize("| TRACE |", colorMagenta)
	case zerolog.LevelDebugValue:
		return p.colorize("| DEBUG |", colorYellow)
	case zerolog.LevelInfoValue:
		return p.colorize("| INFO  |", colorGreen)
	case zerolog.LevelWarnValue:
		return p.colorize("| WARN  |", colorRed)
	case zerolog.LevelErrorValue:
		return p.colorize(p.colorize("| ERROR |", colorRed), colorBold)
	case zerolog.LevelFatalValue:
		return p.colorize(p.colorize("| FATAL |", colorRed), colorBold)
	case zerolog.LevelPanicValue:
		return p.colorize(p.colorize("| PANIC |", colorRed), colorBold)
	default:
		return p.colorize(ll, colorBold)
	}
}

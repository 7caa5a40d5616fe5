package logging_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/internal/config"
	"github.com/katalvlaran/lvtour/internal/logging"
)

func TestNew_JSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(config.Log{Level: "warn", Format: config.FormatJSON}, &buf)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Str("label", "A").Msg("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"message":"shown"`)
	require.Contains(t, out, `"label":"A"`)
	require.Contains(t, out, `"caller":`)
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(config.Log{Level: "debug", Format: config.FormatConsole, NoColor: true}, &buf)
	require.NoError(t, err)

	l.Info().Msg("search started")
	l.Debug().Msg("details")

	out := buf.String()
	require.Contains(t, out, "| INFO  |")
	require.Contains(t, out, "| DEBUG |")
	require.Contains(t, out, "search started")
	require.Contains(t, out, "logging_test.go")
	require.NotContains(t, out, "\x1b[", "no escape codes without color")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(config.Log{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":      zerolog.InfoLevel,
		"trace": zerolog.TraceLevel,
		"DEBUG": zerolog.DebugLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for name, want := range cases {
		got, err := logging.ParseLevel(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
}


func TestNew_KeepsGlobalLevel(t *testing.T) {
	before := zerolog.GlobalLevel()
	_, err := logging.New(config.Log{Level: "trace", Format: config.FormatJSON}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, before, zerolog.GlobalLevel())
}

package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/report"
)

var fixedClock = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	c := report.NewConsole(&buf).WithClock(fixedClock)

	require.NoError(t, c.Report(report.Notification{Message: "search started"}))
	require.NoError(t, c.Report(report.Notification{Message: "total weight: 6", Finished: true}))

	require.Equal(t, "[09-03-2024 14:05:07]: search started\n[09-03-2024 14:05:07]: total weight: 6\n", buf.String())
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewLog(zerolog.New(&buf))

	require.NoError(t, r.Report(report.Notification{Message: "a", Level: report.Info}))
	require.Contains(t, buf.String(), `"level":"info"`)
	require.Contains(t, buf.String(), `"finished":false`)

	buf.Reset()
	require.NoError(t, r.Report(report.Notification{Message: "b", Level: report.Warn}))
	require.Contains(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	require.NoError(t, r.Report(report.Notification{Message: "c", Level: report.Fatal, Finished: true}))
	require.Contains(t, buf.String(), `"level":"error"`)
	require.Contains(t, buf.String(), `"finished":true`)
	require.Contains(t, buf.String(), `"message":"c"`)
}

func TestChannelNonBlocking(t *testing.T) {
	ch := make(chan report.Notification, 1)
	r := report.NewChannel(ch)

	require.NoError(t, r.Report(report.Notification{Message: "first"}))
	require.ErrorIs(t, r.Report(report.Notification{Message: "second"}), report.ErrUnavailable)

	got := <-ch
	require.Equal(t, "first", got.Message)
}

func TestCollector(t *testing.T) {
	var c report.Collector
	_, ok := c.Last()
	require.False(t, ok)

	require.NoError(t, c.Report(report.Notification{Message: "x"}))
	require.NoError(t, c.Report(report.Notification{Message: "y", Finished: true}))

	require.Equal(t, []string{"x", "y"}, c.Messages())
	last, ok := c.Last()
	require.True(t, ok)
	require.True(t, last.Finished)
	require.Len(t, c.Notifications(), 2)
}

func TestMultiDeliversToAllAndJoinsErrors(t *testing.T) {
	var a, b report.Collector
	boom := errors.New("boom")
	failing := report.Func(func(report.Notification) error { return boom })

	m := report.Multi(&a, failing, nil, &b)
	err := m.Report(report.Notification{Message: "hello"})

	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"hello"}, a.Messages())
	require.Equal(t, []string{"hello"}, b.Messages(), "a failing reporter must not stop the others")
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "info", report.Info.String())
	require.Equal(t, "warn", report.Warn.String())
	require.Equal(t, "fatal", report.Fatal.String())
	require.Equal(t, "unknown", report.Level(42).String())
}

func TestDiscard(t *testing.T) {
	require.NoError(t, report.Discard.Report(report.Notification{Message: "ignored"}))
}

package report

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// consoleTimeLayout renders timestamps as DD-MM-YYYY HH:MM:SS.
const consoleTimeLayout = "02-01-2006 15:04:05"

// Console writes one timestamped line per notification.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, now: time.Now}
}

// WithClock replaces the time source, mainly for deterministic output.
func (c *Console) WithClock(now func() time.Time) *Console {
	c.now = now
	return c
}

// Report writes "[timestamp]: message". Fatal messages are written as-is;
// the producer already prefixes them.
func (c *Console) Report(n Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.w, "[%s]: %s\n", c.now().Format(consoleTimeLayout), n.Message)

	return err
}

// Log forwards notifications to a zerolog logger.
type Log struct {
	log zerolog.Logger
}

// NewLog returns a reporter logging on l.
func NewLog(l zerolog.Logger) *Log {
	return &Log{log: l}
}

// Report emits one event: info for Info, warn for Warn, error for Fatal.
// Fatal notifications are logged at error level so that the process is
// never terminated by a reporter.
func (r *Log) Report(n Notification) error {
	var ev *zerolog.Event
	switch n.Level {
	case Warn:
		ev = r.log.Warn()
	case Fatal:
		ev = r.log.Error()
	default:
		ev = r.log.Info()
	}
	ev.Bool("finished", n.Finished).Msg(n.Message)

	return nil
}

// Channel forwards notifications to a channel without blocking.
type Channel struct {
	ch chan<- Notification
}

// NewChannel returns a reporter sending on ch.
func NewChannel(ch chan<- Notification) *Channel {
	return &Channel{ch: ch}
}

// Report sends n if the channel has room, otherwise returns ErrUnavailable.
func (c *Channel) Report(n Notification) error {
	select {
	case c.ch <- n:
		return nil
	default:
		return ErrUnavailable
	}
}

// Collector records every notification in memory.
type Collector struct {
	mu   sync.Mutex
	list []Notification
}

// Report appends n.
func (c *Collector) Report(n Notification) error {
	c.mu.Lock()
	c.list = append(c.list, n)
	c.mu.Unlock()

	return nil
}

// Notifications returns a copy of everything recorded so far.
func (c *Collector) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Notification(nil), c.list...)
}

// Messages returns the recorded messages in order.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.list))
	for i, n := range c.list {
		out[i] = n.Message
	}

	return out
}

// Last returns the most recent notification; ok is false when none was recorded.
func (c *Collector) Last() (n Notification, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.list) == 0 {
		return Notification{}, false
	}

	return c.list[len(c.list)-1], true
}

type multi []Reporter

// Multi returns a reporter that forwards to every non-nil r in order.
// A failing reporter does not stop delivery to the rest; errors are joined.
func Multi(rs ...Reporter) Reporter {
	out := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}

func (m multi) Report(n Notification) error {
	var errs []error
	for _, r := range m {
		if err := r.Report(n); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

package report

import "errors"

// ErrUnavailable is returned by a Reporter that could not accept a
// notification right now (for example a full channel). Producers treat it
// as non-fatal.
var ErrUnavailable = errors.New("report: reporter unavailable")

// Level classifies a notification.
type Level int

const (
	// Info is a regular progress or result message.
	Info Level = iota
	// Warn flags a recoverable condition (for example an abandoned branch).
	Warn
	// Fatal describes the reason a run failed.
	Fatal
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Notification is one message sent to a consumer.
type Notification struct {
	// Message is the human-readable text.
	Message string

	// Level classifies the message.
	Level Level

	// Finished is true on the last notification of a run; consumers may
	// re-enable interaction once they see it.
	Finished bool
}

// Reporter consumes notifications. Implementations must be safe to call from
// the goroutine running the producer; a returned error never aborts the producer.
type Reporter interface {
	Report(n Notification) error
}

// Func adapts a plain function to Reporter.
type Func func(n Notification) error

// Report calls f(n).
func (f Func) Report(n Notification) error { return f(n) }

// Discard drops every notification.
var Discard Reporter = Func(func(Notification) error { return nil })

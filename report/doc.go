// Package report delivers progress and result notifications from a running
// search to whoever is watching it: a terminal, a structured log, a UI
// channel or a test.
//
// A Notification carries a message, a Level and a Finished flag. The last
// notification of a run always has Finished set, so a consumer knows when it
// may accept new work.
//
// Reporters:
//
//   - Discard             drop everything.
//   - Func                adapt a function.
//   - NewConsole(w)       "[DD-MM-YYYY HH:MM:SS]: message" lines.
//   - NewLog(logger)      one zerolog event per notification.
//   - NewChannel(ch)      non-blocking send; ErrUnavailable when ch is full.
//   - Collector           in-memory, mutex-guarded record.
//   - Multi(rs...)        fan-out, every reporter sees every notification.
//
// Producers must treat reporter errors as non-fatal.
package report

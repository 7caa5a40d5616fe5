package tsp

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvtour/report"
)

// notifier wraps the configured Reporter. Reporter errors are counted and
// logged at debug level; they never reach the search.
type notifier struct {
	r        report.Reporter
	sep      string
	log      zerolog.Logger
	failures uint64
}

func newNotifier(o Options) *notifier {
	r := o.Reporter
	if r == nil {
		r = report.Discard
	}
	sep := o.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	return &notifier{r: r, sep: sep, log: o.Logger}
}

func (n *notifier) emit(msg string, lvl report.Level, finished bool) {
	if err := n.r.Report(report.Notification{Message: msg, Level: lvl, Finished: finished}); err != nil {
		n.failures++
		n.log.Debug().Err(err).Str("notification", msg).Msg("reporter rejected notification")
	}
}

func (n *notifier) started() {
	n.emit("search started", report.Info, false)
}

func (n *notifier) incomplete(label string) {
	n.emit(fmt.Sprintf("incomplete graph: vertex %q has no recorded adjacency", label), report.Warn, false)
}

func (n *notifier) fatal(err error) {
	n.emit("fatal: "+err.Error(), report.Fatal, true)
}

// solved emits the success block; the last message carries Finished.
func (n *notifier) solved(res Result, st Stats) {
	n.emit("search finished in "+st.Elapsed.String(), report.Info, false)
	n.emit("optimal tour: "+res.Path(n.sep), report.Info, false)
	n.emit("total weight: "+strconv.FormatInt(res.Weight, 10), report.Info, false)
	n.emit("recursive calls: "+humanize.Comma(int64(st.Calls)), report.Info, false)
	n.emit("decision points: "+humanize.Comma(int64(st.Decisions)), report.Info, true)
}

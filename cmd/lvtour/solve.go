package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/bfs"
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/internal/config"
	"github.com/katalvlaran/lvtour/loader"
	"github.com/katalvlaran/lvtour/tsp"
)

type solveOptions struct {
	format string
	strict bool
}

func newSolveCmd(a *app) *cobra.Command {
	var o solveOptions
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Find the optimal tour of a graph description",
		Long: `Read a graph description (a file, or standard input for "-" or no
argument) and search for the minimum-weight tour from its starting node.
Progress and the result are reported according to --events; with
"--events none" only "<tour>\t<weight>" is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return a.solve(cmd, path, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.format, "format", "", "Input format: json, yaml or toml (default: from the file extension, json for stdin).")
	f.BoolVar(&o.strict, "strict", false, "Refuse descriptions with items the graph would skip.")
	f.String("separator", "->", "Separator between labels in the reported tour.")
	f.String("events", config.EventsConsole, "Where notifications go: console, log or none.")
	_ = a.conf.BindPFlag(keySeparator, f.Lookup("separator"))
	_ = a.conf.BindPFlag(keyEvents, f.Lookup("events"))

	return cmd
}

func (a *app) solve(cmd *cobra.Command, path string, o solveOptions) error {
	d, err := readDescription(cmd.InOrStdin(), path, o.format)
	if err != nil {
		return err
	}
	if o.strict {
		if err = loader.Validate(d); err != nil {
			return err
		}
	}

	g, skipped := loader.Build(d, core.WithLogger(a.log))
	for _, e := range skipped {
		a.log.Debug().Err(e).Msg("description item skipped")
	}

	out := cmd.OutOrStdout()
	r := a.reporter(out)
	a.announce(r, "nodes: %s", humanize.Comma(int64(g.VertexCount())))
	a.announce(r, "edges: %s", humanize.Comma(int64(g.EdgeCount())))
	if start, ok := g.Start(); ok {
		label, _ := g.Label(start)
		a.announce(r, "starting node: %s", label)
		a.warnUnreachable(g, start)
	} else {
		a.announce(r, "starting node: (none)")
	}

	sep := a.cfg.Search.Separator
	res, err := tsp.Solve(g,
		tsp.WithReporter(r),
		tsp.WithSeparator(sep),
		tsp.WithLogger(a.log),
	)
	if err != nil {
		return err
	}

	if a.cfg.Report.Events == config.EventsNone {
		_, err = fmt.Fprintf(out, "%s\t%d\n", res.Path(sep), res.Weight)
	}

	return err
}

// warnUnreachable logs the vertices start cannot reach. The search still
// runs and reports the failure through its own notifications.
func (a *app) warnUnreachable(g *core.Graph, start core.VertexID) {
	missing, err := bfs.Unreached(g, start)
	if err != nil || len(missing) == 0 {
		return
	}
	labels := make([]string, 0, len(missing))
	for _, id := range missing {
		label, _ := g.Label(id)
		labels = append(labels, label)
	}
	a.log.Warn().
		Strs("unreachable", labels).
		Msgf("%s of %s vertices unreachable from the starting node, no tour exists",
			humanize.Comma(int64(len(missing))), humanize.Comma(int64(g.VertexCount())))
}

// readDescription decodes path, or r when path is "-". An explicit format
// wins over the file extension.
func readDescription(r io.Reader, path, format string) (loader.Description, error) {
	if path != "-" && format == "" {
		return loader.Load(path)
	}

	f := loader.FormatJSON
	if format != "" {
		var err error
		if f, err = loader.ParseFormat(format); err != nil {
			return loader.Description{}, err
		}
	}
	if path == "-" {
		return loader.Decode(r, f)
	}

	return loader.LoadFormat(path, f)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/core"
	"github.com/katalvlaran/lvtour/loader"
)

var topologies = []string{"complete", "cycle", "path", "star", "wheel", "random"}

type generateOptions struct {
	n         int
	seed      int64
	p         float64
	minWeight int64
	maxWeight int64
	start     string
	ids       string
	format    string
	out       string
}

func newGenerateCmd(a *app) *cobra.Command {
	var o generateOptions
	cmd := &cobra.Command{
		Use:       "generate <complete|cycle|path|star|wheel|random>",
		Short:     "Write a generated graph description",
		Long:      "Generate a deterministic graph (same flags and seed, same output) and write it as a description that `lvtour solve` accepts.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: topologies,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, args[0], o)
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.n, "n", 5, "Number of vertices.")
	f.Int64Var(&o.seed, "seed", 1, "Random seed for random topologies and weights.")
	f.Float64Var(&o.p, "p", 0.5, "Edge probability for the random topology.")
	f.Int64Var(&o.minWeight, "min-weight", 1, "Smallest edge weight.")
	f.Int64Var(&o.maxWeight, "max-weight", 100, "Largest edge weight; equal to --min-weight for constant weights.")
	f.StringVar(&o.start, "start", "", "Label of the starting node (default: the first vertex).")
	f.StringVar(&o.ids, "ids", "excel", "Label scheme: excel, decimal or prefix:<p>.")
	f.StringVar(&o.format, "format", "", "Output format: json, yaml or toml (default: from --out, else json).")
	f.StringVarP(&o.out, "out", "o", "", "Output file (default: standard output).")

	return cmd
}

func (a *app) generate(cmd *cobra.Command, topology string, o generateOptions) error {
	if o.minWeight < 0 || o.maxWeight < o.minWeight || o.maxWeight > core.MaxWeight {
		return fmt.Errorf("weights: need 0 <= min-weight <= max-weight <= %d, got %d..%d",
			core.MaxWeight, o.minWeight, o.maxWeight)
	}
	idFn, err := builder.ParseIDScheme(o.ids)
	if err != nil {
		return err
	}
	format, err := outputFormat(o.format, o.out)
	if err != nil {
		return err
	}

	var ctor builder.Constructor
	switch topology {
	case "complete":
		ctor = builder.Complete(o.n)
	case "cycle":
		ctor = builder.Cycle(o.n)
	case "path":
		ctor = builder.Path(o.n)
	case "star":
		ctor = builder.Star(o.n)
	case "wheel":
		ctor = builder.Wheel(o.n)
	case "random":
		ctor = builder.RandomSparse(o.n, o.p)
	default:
		return fmt.Errorf("unknown topology %q", topology)
	}

	bopts := []builder.BuilderOption{
		builder.WithSeed(o.seed),
		builder.WithIDScheme(idFn),
		builder.WithUniformWeight(o.minWeight, o.maxWeight),
	}
	g, err := builder.BuildGraph([]core.GraphOption{core.WithLogger(a.log)}, bopts, ctor, builder.Start(o.start))
	if err != nil {
		return err
	}

	if err = writeDescription(cmd.OutOrStdout(), o.out, loader.Describe(g), format); err != nil {
		return err
	}

	a.log.Info().
		Str("topology", topology).
		Int64("seed", o.seed).
		Msgf("generated %s vertices and %s edges", humanize.Comma(int64(g.VertexCount())), humanize.Comma(int64(g.EdgeCount())))

	return nil
}

// writeDescription encodes d to path, or to stdout when path is empty.
// A file is reported written only once it closed cleanly.
func writeDescription(stdout io.Writer, path string, d loader.Description, f loader.Format) error {
	if path == "" {
		return loader.Encode(stdout, d, f)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = loader.Encode(file, d, f); err != nil {
		_ = file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

// outputFormat resolves --format, falling back to the --out extension and then JSON.
func outputFormat(name, out string) (loader.Format, error) {
	if name != "" {
		return loader.ParseFormat(name)
	}
	if out != "" {
		return loader.FormatFromPath(out)
	}

	return loader.FormatJSON, nil
}

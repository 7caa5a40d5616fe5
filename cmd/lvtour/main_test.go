package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/loader"
	"github.com/katalvlaran/lvtour/tsp"
)

const triangleJSON = `{
  "nodes": [{"id": "A"}, {"id": "B"}, {"id": "C"}],
  "edges": [
    {"from": "A", "to": "B", "weight": 1},
    {"from": "B", "to": "C", "weight": 2},
    {"from": "A", "to": "C", "weight": 3}
  ],
  "starting_node": "A"
}`

// run executes the CLI in-process with stdin and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_Quiet(t *testing.T) {
	out, _, err := run(t, triangleJSON, "solve", "--events", "none")
	require.NoError(t, err)
	require.Equal(t, "A->B->C->A\t6\n", out)
}

func TestSolve_ConsoleNotifications(t *testing.T) {
	out, _, err := run(t, triangleJSON, "solve", "-")
	require.NoError(t, err)

	for _, want := range []string{
		"]: nodes: 3\n",
		"]: edges: 3\n",
		"]: starting node: A\n",
		"]: search started\n",
		"]: optimal tour: A->B->C->A\n",
		"]: total weight: 6\n",
		"]: recursive calls: ",
		"]: decision points: ",
	} {
		require.Contains(t, out, want)
	}
	require.Less(t, strings.Index(out, "nodes: 3"), strings.Index(out, "search started"),
		"the summary precedes the search")
}

func TestSolve_SeparatorSources(t *testing.T) {
	out, _, err := run(t, triangleJSON, "solve", "--events", "none", "--separator", " > ")
	require.NoError(t, err)
	require.Equal(t, "A > B > C > A\t6\n", out)

	t.Setenv("LVTOUR_SEARCH_SEPARATOR", "|")
	out, _, err = run(t, triangleJSON, "solve", "--events", "none")
	require.NoError(t, err)
	require.Equal(t, "A|B|C|A\t6\n", out)
}

func TestSolve_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvtour.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nseparator = \"~\"\n\n[report]\nevents = \"none\"\n"), 0o600))

	out, _, err := run(t, triangleJSON, "--config", path, "solve")
	require.NoError(t, err)
	require.Equal(t, "A~B~C~A\t6\n", out)

	out, _, err = run(t, triangleJSON, "--config", path, "solve", "--separator", "=")
	require.NoError(t, err)
	require.Equal(t, "A=B=C=A\t6\n", out, "flags override the config file")
}

func TestSolve_EventsLog(t *testing.T) {
	out, errOut, err := run(t, triangleJSON, "--log.format", "json", "solve", "--events", "log")
	require.NoError(t, err)
	require.Empty(t, out)
	require.Contains(t, errOut, `"message":"optimal tour: A->B->C->A"`)
	require.Contains(t, errOut, `"finished":true`)
}

func TestSolve_NoSolution(t *testing.T) {
	const doc = `{"nodes": [{"id": "A"}, {"id": "B"}], "edges": [], "starting_node": "A"}`
	out, errOut, err := run(t, doc, "--log.format", "json", "solve")
	require.ErrorIs(t, err, tsp.ErrNoSolution)
	require.Contains(t, out, "]: fatal: ")
	require.Contains(t, errOut, `"unreachable":["B"]`)
	require.Contains(t, errOut, "1 of 2 vertices unreachable from the starting node")
}

func TestSolve_Strict(t *testing.T) {
	const doc = `{
  "nodes": [{"id": "A"}, {"id": "B"}, {"id": "C"}],
  "edges": [
    {"from": "A", "to": "B", "weight": 1},
    {"from": "B", "to": "C", "weight": 1},
    {"from": "C", "to": "A", "weight": 1},
    {"from": "C", "to": "Q", "weight": 1}
  ],
  "starting_node": "A"
}`
	out, _, err := run(t, doc, "solve", "--events", "none")
	require.NoError(t, err)
	require.Equal(t, "A->B->C->A\t3\n", out)

	_, _, err = run(t, doc, "solve", "--strict")
	require.ErrorIs(t, err, loader.ErrMalformedDescription)
}

func TestSolve_FileAndFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("starting_node: A\nnodes: [{id: A}, {id: B}, {id: C}]\nedges:\n  - {from: A, to: B, weight: 2}\n  - {from: B, to: C, weight: 2}\n  - {from: C, to: A, weight: 2}\n"), 0o600))

	_, _, err := run(t, "", "solve", path)
	require.ErrorIs(t, err, loader.ErrUnknownFormat)

	out, _, err := run(t, "", "solve", path, "--format", "yaml", "--events", "none")
	require.NoError(t, err)
	require.Equal(t, "A->B->C->A\t6\n", out)
}

func TestSolve_EmptyTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, _, err := run(t, "", "solve", path)
	require.ErrorIs(t, err, loader.ErrMalformedDescription)
}

func TestGenerate_PipesIntoSolve(t *testing.T) {
	doc, _, err := run(t, "", "generate", "complete", "--n", "5", "--min-weight", "3", "--max-weight", "3")
	require.NoError(t, err)

	out, _, err := run(t, doc, "solve", "--events", "none")
	require.NoError(t, err)
	require.Equal(t, "A->B->C->D->E->A\t15\n", out)
}

func TestGenerate_Deterministic(t *testing.T) {
	args := []string{"generate", "random", "--n", "7", "--p", "0.6", "--seed", "9", "--format", "toml"}
	a, _, err := run(t, "", args...)
	require.NoError(t, err)
	b, _, err := run(t, "", args...)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerate_OutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	_, _, err := run(t, "", "generate", "wheel", "--n", "5", "--start", "Center", "--out", path)
	require.NoError(t, err)

	d, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, d.Nodes, 5)
	require.Len(t, d.Edges, 8)
	require.Equal(t, "Center", d.StartingNode)
}

func TestWriteDescription(t *testing.T) {
	d := loader.Description{
		StartingNode: "A",
		Nodes:        []loader.Node{{ID: "A"}, {ID: "B"}},
		Edges:        []loader.Edge{{From: "A", To: "B", Weight: 4}},
	}
	var stdout bytes.Buffer
	require.NoError(t, writeDescription(&stdout, "", d, loader.FormatTOML))

	path := filepath.Join(t.TempDir(), "g.toml")
	require.NoError(t, writeDescription(&bytes.Buffer{}, path, d, loader.FormatTOML))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, stdout.String(), string(written), "the file holds the complete document")

	err = writeDescription(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing", "g.toml"), d, loader.FormatTOML)
	require.ErrorContains(t, err, "create ")

	err = writeDescription(&bytes.Buffer{}, path, d, loader.Format("xml"))
	require.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "", "generate", "hypercube")
	require.Error(t, err)

	_, _, err = run(t, "", "generate", "cycle", "--min-weight", "5", "--max-weight", "2")
	require.Error(t, err)

	_, _, err = run(t, "", "generate", "cycle", "--ids", "roman")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "lvtour dev ("))
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "", "--log.level", "loud", "version")
	require.Error(t, err)
}

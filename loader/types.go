package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for the loader package.
var (
	// ErrUnknownFormat indicates a format name or file extension that is not supported.
	ErrUnknownFormat = errors.New("loader: unknown format")

	// ErrMalformedDescription indicates a document that cannot be decoded or
	// that fails Validate.
	ErrMalformedDescription = errors.New("loader: malformed description")
)

// Node is one vertex of a Description. ID names the vertex everywhere else
// in the document and becomes its label in the graph; Label is display text.
type Node struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Label string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
}

// Edge is one undirected weighted edge between two node ids. Label and ID
// are carried for display and round-tripping only.
type Edge struct {
	From   string `json:"from" yaml:"from" toml:"from"`
	To     string `json:"to" yaml:"to" toml:"to"`
	Weight int64  `json:"weight" yaml:"weight" toml:"weight"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	ID     string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
}

// Description is the serialized form of a search input: nodes, edges and
// the id of the starting node (empty when unset).
type Description struct {
	StartingNode string `json:"starting_node" yaml:"starting_node" toml:"starting_node"`
	Nodes        []Node `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges        []Edge `json:"edges" yaml:"edges" toml:"edges"`
}

// Format selects a wire encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat resolves a format name, case-insensitively. "yml" is accepted
// for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

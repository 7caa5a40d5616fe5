// Package loader reads and writes search inputs.
//
// A Description mirrors the graph editor payload:
//
//	{
//	  "nodes": [{"id": "A", "label": "A"}, {"id": "B", "label": "B"}],
//	  "edges": [{"from": "A", "to": "B", "weight": 1, "label": "1", "id": "e1"}],
//	  "starting_node": "A"
//	}
//
// The same shape is accepted as YAML and TOML (nodes and edges become arrays
// of tables). Build converts a Description into a core.Graph, collecting the
// recoverable errors instead of stopping at the first; Describe goes the other
// way; Validate lints a document without building it.
package loader

package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Decode reads one Description from r in format f. Unknown fields are
// ignored; the front-end payload carries layout data the search never uses.
func Decode(r io.Reader, f Format) (Description, error) {
	var (
		d   Description
		err error
	)
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&d)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&d)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(&d)
		if err == nil && len(md.Keys()) == 0 {
			err = io.EOF
		}
	default:
		return Description{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if errors.Is(err, io.EOF) {
		return Description{}, fmt.Errorf("%w: empty %s document", ErrMalformedDescription, f)
	}
	if err != nil {
		return Description{}, fmt.Errorf("%w: decode %s: %w", ErrMalformedDescription, f, err)
	}

	return d, nil
}

// Load opens path and decodes it in the format implied by its extension.
func Load(path string) (Description, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Description{}, err
	}

	return LoadFormat(path, f)
}

// LoadFormat opens path and decodes it as f regardless of its extension.
func LoadFormat(path string, f Format) (Description, error) {
	file, err := os.Open(path)
	if err != nil {
		return Description{}, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer file.Close()

	d, err := Decode(file, f)
	if err != nil {
		return Description{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Encode writes d to w in format f. JSON and YAML are indented by two spaces.
func Encode(w io.Writer, d Description, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("loader: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("loader: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("loader: encode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(d); err != nil {
			return fmt.Errorf("loader: encode toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return nil
}

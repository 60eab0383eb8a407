package transcript

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// EncodeJSON writes the document as two-space indented JSON.
func (d *Document) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.normalized()); err != nil {
		return fmt.Errorf("encode transcript json: %w", err)
	}
	return nil
}

// EncodeYAML writes the document as YAML with the same field order as JSON.
func (d *Document) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.normalized()); err != nil {
		return fmt.Errorf("encode transcript yaml: %w", err)
	}
	return enc.Close()
}

// normalized guarantees an empty transcript encodes as a list, not null.
func (d *Document) normalized() *Document {
	if d.Cues != nil {
		return d
	}
	cp := *d
	cp.Cues = []Cue{}
	return &cp
}

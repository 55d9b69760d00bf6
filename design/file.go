package design

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML design from r on top of Default. Fields missing from
// the document keep their default value. A wing section list in the document
// replaces the default sections entirely.
func Load(r io.Reader) (Aircraft, error) {
	a := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil && err != io.EOF {
		return Aircraft{}, fmt.Errorf("decoding design: %w", err)
	}
	return a, nil
}

// Save writes a as a YAML document to w.
func Save(w io.Writer, a Aircraft) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encoding design: %w", err)
	}
	return enc.Close()
}

package graphio

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode graph")
	}
	return errors.Wrap(enc.Close(), "encode graph")
}

// Decode reads a YAML document from r and validates it.
// Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode graph")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

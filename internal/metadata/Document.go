// Package metadata reads, merges and writes the metadata document that
// describes a converted grid.
package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gruppe-adler/asc2json/internal/failure"
)

// Top-level sections of a metadata document.
const (
	Subgroups        = "subgroups"
	GlobalAttributes = "global_attributes"
	Variables        = "variables"
	Data             = "data"
)

// Document is a metadata document. The order of keys is kept as read.
type Document struct {
	root *Object
}

// New returns a document with empty sections.
func New() *Document {
	root := NewObject()
	for _, name := range []string{Subgroups, GlobalAttributes, Variables, Data} {
		root.Set(name, NewObject())
	}
	return &Document{root: root}
}

// Decode reads a document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, failure.Conversionf("metadata document must be a JSON object")
	}

	root, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("metadata: unexpected data after the document")
	}

	return &Document{root: root}, nil
}

// Read metadata document from given path
func Read(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file)
}

// Encode writes d as JSON indented by four spaces.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(d.root)
}

// Write the document to given path
func (d *Document) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = d.Encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Root returns the top-level object.
func (d *Document) Root() *Object {
	return d.root
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	return &Document{root: d.root.Clone()}
}

// Section returns the named top-level section, adding an empty one if it is
// missing.
func (d *Document) Section(name string) (*Object, error) {
	v, ok := d.root.Get(name)
	if !ok {
		section := NewObject()
		d.root.Set(name, section)
		return section, nil
	}

	section, ok := v.(*Object)
	if !ok {
		return nil, failure.Conversionf("metadata section %q must be an object", name)
	}
	return section, nil
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.root.MarshalJSON()
}

// Package fs provides file-based input listing and output storage for
// parsed articles.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/papertree"
)

// JSONDir is the subdirectory holding per-document JSON renderings.
const JSONDir = "json"

// CheckName returns an error if name cannot be used as an output file name.
func CheckName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return papertree.Errorf(papertree.EINVALID, "invalid output name %q: path traversal", name)
	}
	return nil
}

// MarshalJSON encodes v as indented JSON without HTML escaping.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ papertree.DocumentWriter = (*Writer)(nil)

// Writer writes the renderings of a document to a directory:
// <name>.txt with the plain text (or tagged text) and json/<name>.json.
type Writer struct {
	baseDir string

	// Tagged selects the tagged token layout for the .txt rendering.
	Tagged bool
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateDocument writes the document's renderings to disk.
func (w *Writer) CreateDocument(ctx context.Context, doc *papertree.Document) error {
	name := doc.Name()
	if err := CheckName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(w.baseDir, JSONDir), 0755); err != nil {
		return err
	}

	text := papertree.FormatText(doc)
	if w.Tagged {
		text = papertree.FormatTaggedText(doc)
	}
	if err := os.WriteFile(filepath.Join(w.baseDir, name+".txt"), []byte(text), 0644); err != nil {
		return err
	}

	data, err := MarshalJSON(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.baseDir, JSONDir, name+".json"), data, 0644)
}

// WriteFailure writes the error placeholder in place of src's text rendering.
func (w *Writer) WriteFailure(src papertree.Source) error {
	name := src.Name()
	if err := CheckName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.baseDir, name+".txt"), []byte(papertree.FormatFailure(src)), 0644)
}

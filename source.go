package papertree

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
)

// Source identifies an input file. The DOI is recovered from the file name,
// which encodes "/" as "_".
type Source struct {
	Path string `json:"path"`
	File string `json:"file"`
	DOI  string `json:"doi"`
}

// NewSource returns the Source for the file at path.
func NewSource(path string) Source {
	file := filepath.Base(path)
	return Source{
		Path: filepath.Dir(path),
		File: file,
		DOI:  DOIFromFilename(file),
	}
}

// FullPath returns the path of the source file.
func (s Source) FullPath() string {
	return filepath.Join(s.Path, s.File)
}

// Name returns the file name without its extension.
func (s Source) Name() string {
	return strings.TrimSuffix(s.File, filepath.Ext(s.File))
}

// Ext returns the lower-cased file extension including the dot.
func (s Source) Ext() string {
	return strings.ToLower(filepath.Ext(s.File))
}

// DOIFromFilename reverses the "/" to "_" substitution used when saving
// articles under their DOI. Springer exports also store "_" inside the DOI
// as ":", which is restored after the first substitution.
func DOIFromFilename(file string) string {
	name := strings.TrimSuffix(file, filepath.Ext(file))
	doi := strings.ReplaceAll(name, "_", "/")
	if PublisherFromDOI(doi) == PublisherSpringer {
		doi = strings.ReplaceAll(doi, ":", "_")
	}
	return doi
}

// SourceReader loads the raw bytes of an input file.
type SourceReader interface {
	ReadSource(ctx context.Context, src Source) ([]byte, error)
}

// TextReader loads an input file as plain text, e.g. for tagging.
type TextReader interface {
	ReadText(ctx context.Context, src Source) (string, error)
}

// Decoder converts raw file bytes in any supported encoding to UTF-8 text.
type Decoder interface {
	Decode(raw []byte) (string, error)
}

// NameFilter specifies patterns for including/excluding input files by name.
type NameFilter struct {
	// Include patterns - if set, only names matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - names matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// Match returns true if the file name passes the filter.
// If the filter is nil, all names pass.
func (f *NameFilter) Match(name string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(name) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(name) {
			return false
		}
	}

	return true
}

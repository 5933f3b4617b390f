// Package chardet implements papertree.Decoder by detecting the character
// set of non-UTF-8 exports with gogs/chardet.
package chardet

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/papertree"
	"github.com/gogs/chardet"
	"golang.org/x/net/html/charset"
)

var _ papertree.Decoder = (*Decoder)(nil)

// Decoder converts raw bytes to UTF-8. Valid UTF-8 is passed through; other
// input is decoded with the best guess of the text detector.
type Decoder struct {
	detector *chardet.Detector
}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{detector: chardet.NewTextDetector()}
}

// Decode returns raw as UTF-8 text with any byte order mark removed.
func (d *Decoder) Decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), "\ufeff"), nil
	}

	result, err := d.detector.DetectBest(raw)
	if err != nil {
		return "", papertree.Errorf(papertree.EINVALID, "detecting charset: %v", err)
	}

	enc, _ := charset.Lookup(result.Charset)
	if enc == nil {
		return "", papertree.Errorf(papertree.EUNSUPPORTED, "unsupported charset %q", result.Charset)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", papertree.Errorf(papertree.EINVALID, "decoding %s: %v", result.Charset, err)
	}
	return strings.TrimPrefix(string(decoded), "\ufeff"), nil
}

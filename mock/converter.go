package mock

import "github.com/fwojciec/papertree"

var _ papertree.Converter = (*Converter)(nil)

// Converter is a mock implementation of papertree.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

package papertree

import "context"

// OutputStore persists parse results with atomic semantics.
// Save and SaveFailure write to a temporary location; Commit makes changes
// permanent; Abort discards pending changes.
type OutputStore interface {
	// Save writes the renderings of a parsed document.
	Save(ctx context.Context, doc *Document) error

	// SaveFailure records that src could not be parsed and writes the
	// error placeholder in place of its output.
	SaveFailure(ctx context.Context, src Source, cause error) error

	Commit() error
	Abort() error
}

// TextStore persists named plain-text results, such as model answers, with
// the same atomic semantics as OutputStore.
type TextStore interface {
	SaveText(ctx context.Context, name string, text string) error
	Commit() error
	Abort() error
}

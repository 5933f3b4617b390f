package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/papertree"
)

var _ papertree.TextStore = (*TextFileStore)(nil)

// TextFileStore implements papertree.TextStore: each result is written to
// <name>.txt in a temporary directory that is moved into place on Commit.
type TextFileStore struct {
	baseDir string
	name    string
}

// NewTextFileStore creates a new TextFileStore writing to baseDir/name.
func NewTextFileStore(baseDir, name string) *TextFileStore {
	return &TextFileStore{baseDir: baseDir, name: name}
}

func (s *TextFileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *TextFileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// SaveText writes text to <name>.txt.
func (s *TextFileStore) SaveText(ctx context.Context, name string, text string) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), name+".txt"), []byte(text), 0644)
}

// Commit moves the staged answers into place. An empty final directory is
// replaced; a non-empty one keeps its files and receives the answers.
func (s *TextFileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	return commitDir(s.tempDir(), s.finalDir(), "")
}

// Abort discards everything saved so far.
func (s *TextFileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/papertree"
)

// Names of the batch-level files written on Commit.
const (
	LogFile           = "parse.log"
	DataFile          = "data.json"
	TableDataFile     = "data_table.json"
	TableMarkdownFile = "data_table.md.txt"
)

var _ papertree.OutputStore = (*FileStore)(nil)

// FileStore implements papertree.OutputStore with atomic update semantics.
// Renderings are saved to a temporary directory; Commit writes the batch
// files and moves the directory into place.
type FileStore struct {
	baseDir string
	name    string
	writer  *Writer

	mu     sync.Mutex
	log    []string
	data   map[string]*papertree.Document
	tables []papertree.TableSet
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	s := &FileStore{
		baseDir: baseDir,
		name:    name,
		data:    make(map[string]*papertree.Document),
	}
	s.writer = NewWriter(s.tempDir())
	return s
}

// SetTagged selects the tagged token layout for .txt renderings.
func (s *FileStore) SetTagged(tagged bool) {
	s.writer.Tagged = tagged
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the document's renderings and records it for the batch
// files. Documents are keyed in data.json by DOI, or by file name when the
// DOI is empty.
func (s *FileStore) Save(ctx context.Context, doc *papertree.Document) error {
	if err := s.writer.CreateDocument(ctx, doc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = append(s.log, doc.File)
	key := doc.DOI
	if key == "" {
		key = doc.File
	}
	s.data[key] = doc
	s.tables = append(s.tables, papertree.TableSet{
		Name:   doc.Name(),
		Path:   doc.Path,
		File:   doc.File,
		Tables: doc.Tables,
	})
	return nil
}

// SaveFailure writes the placeholder for src and logs the cause.
func (s *FileStore) SaveFailure(ctx context.Context, src papertree.Source, cause error) error {
	if err := s.writer.WriteFailure(src); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line := src.File + " PARSE ERROR"
	if cause != nil {
		line += ": " + describe(cause)
	}
	s.log = append(s.log, line)
	return nil
}

// Commit writes parse.log, data.json and, when any document has tables,
// the table dumps, then moves the staged directory into place. An existing
// output is replaced only when it is empty or holds parse.log from an
// earlier run; otherwise the staged files are merged into it.
func (s *FileStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := s.writeBatchFiles(); err != nil {
		return err
	}

	return commitDir(s.tempDir(), s.finalDir(), LogFile)
}

func (s *FileStore) writeBatchFiles() error {
	var log string
	if len(s.log) > 0 {
		log = strings.Join(s.log, "\n") + "\n"
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), LogFile), []byte(log), 0644); err != nil {
		return err
	}

	data, err := MarshalJSON(s.data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), DataFile), data, 0644); err != nil {
		return err
	}

	if !hasTables(s.tables) {
		return nil
	}
	byName := make(map[string]papertree.TableSet, len(s.tables))
	for _, ts := range s.tables {
		if ts.Tables == nil {
			ts.Tables = []papertree.Table{}
		}
		byName[ts.Name] = ts
	}
	data, err = MarshalJSON(byName)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), TableDataFile), data, 0644); err != nil {
		return err
	}
	md := papertree.FormatTablesMarkdown(s.tables)
	return os.WriteFile(filepath.Join(s.tempDir(), TableMarkdownFile), []byte(md), 0644)
}

func hasTables(sets []papertree.TableSet) bool {
	for _, ts := range sets {
		if len(ts.Tables) > 0 {
			return true
		}
	}
	return false
}

// Abort discards everything saved so far.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// describe returns the message of an application error, or the full text of
// any other error.
func describe(err error) string {
	if papertree.ErrorCode(err) != papertree.EINTERNAL {
		return papertree.ErrorMessage(err)
	}
	return err.Error()
}

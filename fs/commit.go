package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// commitDir moves the staged directory temp to final. An existing final
// directory is replaced only when it is empty or holds marker, the file a
// previous run of the same store leaves behind. Any other directory is kept
// and the staged files are merged into it.
func commitDir(temp, final, marker string) error {
	replace, err := replaceable(final, marker)
	if err != nil {
		return err
	}
	if replace {
		if err := os.RemoveAll(final); err != nil {
			return err
		}
		return os.Rename(temp, final)
	}
	if err := mergeDir(temp, final); err != nil {
		return err
	}
	return os.RemoveAll(temp)
}

func replaceable(dir, marker string) (bool, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, &fs.PathError{Op: "commit", Path: dir, Err: errors.New("not a directory")}
	}

	if marker != "" {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true, nil
		}
	}

	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); errors.Is(err, io.EOF) {
		return true, nil
	} else if err != nil {
		return false, err
	}
	return false, nil
}

func mergeDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return os.Rename(path, target)
	})
}

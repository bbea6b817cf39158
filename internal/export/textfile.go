package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// TextfileWriter publishes the scrape output as a file for textfile
// collectors. Writers hold an flock on path+".lock" and replace the file
// with a rename.
type TextfileWriter struct {
	path string
	lock *flock.Flock
}

func NewTextfileWriter(path string) (*TextfileWriter, error) {
	if path == "" {
		return nil, fmt.Errorf("textfile path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("error creating textfile directory: %w", err)
	}
	return &TextfileWriter{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (w *TextfileWriter) Path() string { return w.path }

func (w *TextfileWriter) Write(content string) error {
	if err := w.lock.Lock(); err != nil {
		return fmt.Errorf("error locking %s: %w", w.lock.Path(), err)
	}
	defer w.lock.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(w.path), filepath.Base(w.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("error creating temp textfile: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing textfile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing textfile: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("error setting textfile mode: %w", err)
	}
	return os.Rename(tmp.Name(), w.path)
}

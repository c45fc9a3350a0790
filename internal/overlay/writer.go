package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer persists overlay files beneath an output root, one directory
// per colour token.
type Writer struct {
	root string
}

// NewWriter creates a Writer rooted at dir, creating the directory if
// it does not exist yet.
func NewWriter(dir string) (*Writer, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("overlay: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("overlay: create root: %w", err)
	}
	return &Writer{root: abs}, nil
}

// Root returns the absolute output root.
func (w *Writer) Root() string {
	return w.root
}

// WriteAll writes every file in order. Individual writes are atomic,
// tmp file then fsync then rename, so readers never see a torn
// document.
func (w *Writer) WriteAll(files []File) error {
	for _, f := range files {
		if err := w.write(f); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) write(f File) error {
	data, err := Encode(f.Doc)
	if err != nil {
		return err
	}
	dir, err := w.colourDir(f.Colour)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("overlay: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".overlay-tmp-*")
	if err != nil {
		return fmt.Errorf("overlay: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("overlay: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("overlay: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("overlay: close temp: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, f.Name)); err != nil {
		return fmt.Errorf("overlay: rename: %w", err)
	}
	success = true
	return nil
}

// colourDir maps a colour token to its directory, rejecting tokens
// that cannot name a single directory under the root.
func (w *Writer) colourDir(colour string) (string, error) {
	if colour == "" || colour == "." || colour == ".." || strings.ContainsAny(colour, `/\`) {
		return "", fmt.Errorf("overlay: colour %q cannot name a directory", colour)
	}
	return filepath.Join(w.root, colour), nil
}

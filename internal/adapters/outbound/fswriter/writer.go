// Package fswriter persists artifact sets to disk. It is the only place in
// the tool that writes files.
package fswriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fedforge/fedforge/internal/domain"
)

// Writer implements domain.ArtifactWriter with the os package. It does not
// merge with pre-existing files: existing content at a target path is
// overwritten, and a failure mid-set leaves earlier writes in place.
type Writer struct{}

func New() *Writer { return &Writer{} }

// WriteSet creates the set's directories under targetDir, then writes its
// files. Directories always come first so every file's parent exists.
func (w *Writer) WriteSet(targetDir string, set *domain.ArtifactSet) error {
	root := filepath.Join(targetDir, filepath.FromSlash(set.Root))

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", domain.ErrFileSystem, root, err)
	}
	for _, dir := range set.Dirs {
		abs := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(abs, 0755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", domain.ErrFileSystem, abs, err)
		}
	}
	for _, f := range set.Files {
		abs := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.WriteFile(abs, f.Content, 0644); err != nil {
			return fmt.Errorf("%w: writing %s: %v", domain.ErrFileSystem, abs, err)
		}
	}
	return nil
}

// WriteAll writes sets sequentially in the given order. Order matters when
// a later set nests inside an earlier one's directory tree.
func (w *Writer) WriteAll(targetDir string, sets []*domain.ArtifactSet) error {
	for _, set := range sets {
		if err := w.WriteSet(targetDir, set); err != nil {
			return err
		}
	}
	return nil
}

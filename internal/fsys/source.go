package fsys

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Source lists and reads files of a data directory tree.
type Source struct {
	fsys fs.FS
}

// New creates a source over fsys.
func New(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// clean converts a data path to an fs.FS path.
func clean(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = path.Clean("/" + p)

	if p == "/" {
		return "."
	}

	return strings.TrimPrefix(p, "/")
}

// Browse returns the files directly inside dir, sorted by name. Paths are
// returned relative to the data root.
func (s *Source) Browse(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := clean(dir)

	entries, err := fs.ReadDir(s.fsys, root)
	if err != nil {
		return nil, fmt.Errorf("failed to browse %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		files = append(files, path.Join(root, e.Name()))
	}

	return files, nil
}

// Fetch returns the content of a file.
func (s *Source) Fetch(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, clean(p))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}

	return data, nil
}

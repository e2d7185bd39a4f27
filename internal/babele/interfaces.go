package babele

import (
	"context"

	"babele/internal/compendium"
)

// FileBrowser lists the files of a data directory. Returned paths are
// relative to the data root and include the directory.
type FileBrowser interface {
	Browse(ctx context.Context, dir string) ([]string, error)
}

// Fetcher reads a data file.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// PackRegistry lists the packs known to the host.
type PackRegistry interface {
	Packs() []compendium.Metadata
}

// Settings stores the file lists shared with clients that may not browse
// the data directories themselves.
type Settings interface {
	TranslationFiles() []string
	SetTranslationFiles(files []string)
	MappingFiles() []string
	SetMappingFiles(files []string)
}

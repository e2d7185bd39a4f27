package pack

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"babele/internal/common"
	"babele/internal/compendium"
	"babele/internal/document"
)

// indexFields are the document fields copied into a pack index entry.
var indexFields = []string{"_id", "name", "type", "img", "folder", "sort"}

// Pack is one pack of the host.
type Pack struct {
	compendium.Metadata

	Folders   []map[string]any `json:"folders,omitempty"`
	Documents []map[string]any `json:"documents"`
}

// Parse decodes a pack file.
func Parse(data []byte) (*Pack, error) {
	var p Pack

	err := document.Unmarshal(data, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pack: %w", err)
	}

	if p.Name == "" || p.PackageName == "" {
		return nil, fmt.Errorf("pack requires a name and a packageName")
	}

	return &p, nil
}

// Registry holds the packs of the host by collection id.
type Registry struct {
	mu    sync.RWMutex
	packs map[string]*Pack
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{packs: make(map[string]*Pack)}
}

// LoadDir loads every "*.json" pack file directly inside dir.
func LoadDir(fsys fs.FS, dir string) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pack directory %s: %w", dir, err)
	}

	r := NewRegistry()

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}

		file := path.Join(dir, e.Name())

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read pack %s: %w", file, err)
		}

		p, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to load pack %s: %w", file, err)
		}

		r.Add(p)
	}

	return r, nil
}

// Add adds or replaces a pack.
func (r *Registry) Add(p *Pack) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.packs[p.Collection()] = p
}

// Packs returns the metadata of every pack, sorted by collection id.
func (r *Registry) Packs() []compendium.Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]compendium.Metadata, 0, len(r.packs))
	for _, c := range r.collections() {
		out = append(out, r.packs[c].Metadata)
	}

	return out
}

// Collections returns the collection id of every pack, sorted.
func (r *Registry) Collections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collections()
}

func (r *Registry) collections() []string {
	return common.SortedKeys(r.packs)
}

// Pack returns the pack of collection.
func (r *Registry) Pack(collection string) (*Pack, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packs[collection]

	return p, ok
}

// Documents returns deep copies of the documents of collection.
func (r *Registry) Documents(collection string) ([]map[string]any, bool) {
	p, ok := r.Pack(collection)
	if !ok {
		return nil, false
	}

	return cloneAll(p.Documents), true
}

// Folders returns deep copies of the folders of collection.
func (r *Registry) Folders(collection string) ([]map[string]any, bool) {
	p, ok := r.Pack(collection)
	if !ok {
		return nil, false
	}

	return cloneAll(p.Folders), true
}

// Index returns the lightweight index of collection.
func (r *Registry) Index(collection string) ([]map[string]any, bool) {
	p, ok := r.Pack(collection)
	if !ok {
		return nil, false
	}

	index := make([]map[string]any, 0, len(p.Documents))

	for _, doc := range p.Documents {
		entry := map[string]any{}

		for _, field := range indexFields {
			if v, ok := doc[field]; ok {
				entry[field] = document.Clone(v)
			}
		}

		index = append(index, entry)
	}

	return index, true
}

func cloneAll(docs []map[string]any) []map[string]any {
	out := make([]map[string]any, len(docs))
	for i, d := range docs {
		out[i] = document.CloneMap(d)
	}

	return out
}

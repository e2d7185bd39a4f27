package compendium

import (
	"strings"

	"babele/internal/mapping"
)

// Package types of a pack.
const (
	PackageWorld  = "world"
	PackageSystem = "system"
	PackageModule = "module"
)

// PackFoldersSuffix ends the name of a pack-folder translation file and of
// the Folder store built from it.
const PackFoldersSuffix = "_packs-folders"

// Metadata describes a pack as reported by the host.
type Metadata struct {
	Name        string               `json:"name"`
	PackageName string               `json:"packageName"`
	PackageType string               `json:"packageType"`
	Type        mapping.DocumentType `json:"type"`
	Label       string               `json:"label,omitempty"`
}

// Collection returns the collection id of the pack: "world.<name>" for world
// packs, "<packageName>.<name>" otherwise.
func (m Metadata) Collection() string {
	prefix := m.PackageName
	if m.PackageType == PackageWorld {
		prefix = PackageWorld
	}

	return prefix + "." + m.Name
}

// Supported reports whether the pack holds a translatable document type.
func (m Metadata) Supported() bool {
	return m.Type.IsValid()
}

// IsPackFolders reports whether the metadata describes a pack-folder store.
func (m Metadata) IsPackFolders() bool {
	return strings.HasSuffix(m.Name, PackFoldersSuffix)
}

// PackFoldersMetadata returns the metadata of the Folder store built from a
// "<packageName>.<name>_packs-folders.json" file. The bool is false when the
// file name does not follow that pattern.
func PackFoldersMetadata(fileName string) (Metadata, bool) {
	base := strings.TrimSuffix(fileName, ".json")
	if !strings.HasSuffix(base, PackFoldersSuffix) {
		return Metadata{}, false
	}

	packageName, name, ok := strings.Cut(base, ".")
	if !ok || packageName == "" || name == "" {
		return Metadata{}, false
	}

	return Metadata{
		Name:        name,
		PackageName: packageName,
		PackageType: PackageSystem,
		Type:        mapping.TypeFolder,
	}, true
}

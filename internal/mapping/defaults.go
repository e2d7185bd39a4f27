package mapping

import (
	"sync"

	"babele/internal/common"
)

// Default converter names referenced by the built-in schemas.
const (
	ConverterFromPack               = "fromPack"
	ConverterName                   = "name"
	ConverterNameCollection         = "nameCollection"
	ConverterTextCollection         = "textCollection"
	ConverterTableResults           = "tableResults"
	ConverterTableResultsCollection = "tableResultsCollection"
	ConverterPages                  = "pages"
	ConverterPlaylistSounds         = "playlistSounds"
	ConverterDeckCards              = "deckCards"
	ConverterAdventureItems         = "adventureItems"
	ConverterAdventureActors        = "adventureActors"
	ConverterAdventureCards         = "adventureCards"
	ConverterAdventureJournals      = "adventureJournals"
	ConverterAdventurePlaylists     = "adventurePlaylists"
	ConverterAdventureMacros        = "adventureMacros"
	ConverterAdventureScenes        = "adventureScenes"
)

func converted(path, converter string) FieldRule {
	return FieldRule{Path: path, Converter: converter}
}

func verbatim(path string) FieldRule {
	return FieldRule{Path: path}
}

// BuiltinSchemas returns a fresh copy of the built-in schema for every type.
func BuiltinSchemas() map[DocumentType]Schema {
	return map[DocumentType]Schema{
		TypeAdventure: {
			"name":        verbatim("name"),
			"description": verbatim("description"),
			"caption":     verbatim("caption"),
			"folders":     converted("folders", ConverterNameCollection),
			"journals":    converted("journal", ConverterAdventureJournals),
			"scenes":      converted("scenes", ConverterAdventureScenes),
			"macros":      converted("macros", ConverterAdventureMacros),
			"playlists":   converted("playlists", ConverterAdventurePlaylists),
			"tables":      converted("tables", ConverterTableResultsCollection),
			"items":       converted("items", ConverterAdventureItems),
			"actors":      converted("actors", ConverterAdventureActors),
			"cards":       converted("cards", ConverterAdventureCards),
		},
		TypeActor: {
			"name":        verbatim("name"),
			"description": verbatim("system.details.biography.value"),
			"items":       converted("items", ConverterFromPack),
			"tokenName":   converted("prototypeToken.name", ConverterName),
		},
		TypeCards: {
			"name":        verbatim("name"),
			"description": verbatim("description"),
			"cards":       converted("cards", ConverterDeckCards),
		},
		TypeFolder: {},
		TypeItem: {
			"name":        verbatim("name"),
			"description": verbatim("system.description.value"),
		},
		TypeJournalEntry: {
			"name":        verbatim("name"),
			"description": verbatim("content"),
			"pages":       converted("pages", ConverterPages),
		},
		TypeMacro: {
			"name":    verbatim("name"),
			"command": verbatim("command"),
		},
		TypePlaylist: {
			"name":        verbatim("name"),
			"description": verbatim("description"),
			"sounds":      converted("sounds", ConverterPlaylistSounds),
		},
		TypeRollTable: {
			"name":        verbatim("name"),
			"description": verbatim("description"),
			"results":     converted("results", ConverterTableResults),
		},
		TypeScene: {
			"name":     verbatim("name"),
			"drawings": converted("drawings", ConverterTextCollection),
			"notes":    converted("notes", ConverterTextCollection),
		},
	}
}

// Defaults is the per-type default schema registry. Overrides are registered
// during initialization; afterwards the registry is only read.
type Defaults struct {
	mu      sync.RWMutex
	schemas map[DocumentType]Schema
}

// NewDefaults creates a registry seeded with the built-in schemas.
func NewDefaults() *Defaults {
	return &Defaults{schemas: BuiltinSchemas()}
}

// Schema returns a copy of the default schema for t. Unsupported types yield
// an empty schema.
func (d *Defaults) Schema(t DocumentType) Schema {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s := d.schemas[t].Clone()
	if s == nil {
		s = Schema{}
	}

	return s
}

// Register merges a mapping file on top of the current defaults. Later
// registrations win per field. Keys that do not name a supported document
// type are skipped and returned.
func (d *Defaults) Register(mf MappingFile) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var skipped []string

	for _, name := range common.SortedKeys(mf) {
		t, ok := ParseDocumentType(name)
		if !ok {
			skipped = append(skipped, name)
			continue
		}

		d.schemas[t] = d.schemas[t].Merge(mf[name])
	}

	return skipped
}

// Snapshot returns a copy of every default schema keyed by type name.
func (d *Defaults) Snapshot() MappingFile {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(MappingFile, len(d.schemas))
	for t, s := range d.schemas {
		out[t.String()] = s.Clone()
	}

	return out
}

package converter

import (
	"babele/internal/mapping"
)

// Defaults returns a fresh instance of every built-in converter keyed by its
// default name.
func Defaults() map[string]mapping.Converter {
	return map[string]mapping.Converter{
		mapping.ConverterFromPack:               SubDocuments{Type: mapping.TypeItem, Lookup: true},
		mapping.ConverterName:                   MappedField{Field: "name"},
		mapping.ConverterNameCollection:         FieldCollection{Field: "name"},
		mapping.ConverterTextCollection:         FieldCollection{Field: "text"},
		mapping.ConverterTableResults:           TableResults{},
		mapping.ConverterTableResultsCollection: SubDocuments{Type: mapping.TypeRollTable},
		mapping.ConverterPages:                  Pages(),
		mapping.ConverterPlaylistSounds:         PlaylistSounds(),
		mapping.ConverterDeckCards:              DeckCards{},
		mapping.ConverterAdventureItems:         SubDocuments{Type: mapping.TypeItem, Lookup: true},
		mapping.ConverterAdventureActors:        SubDocuments{Type: mapping.TypeActor, Lookup: true},
		mapping.ConverterAdventureCards:         SubDocuments{Type: mapping.TypeCards, Lookup: true},
		mapping.ConverterAdventureJournals:      SubDocuments{Type: mapping.TypeJournalEntry, Lookup: true},
		mapping.ConverterAdventurePlaylists:     SubDocuments{Type: mapping.TypePlaylist, Lookup: true},
		mapping.ConverterAdventureMacros:        SubDocuments{Type: mapping.TypeMacro, Lookup: true},
		mapping.ConverterAdventureScenes:        SubDocuments{Type: mapping.TypeScene, Lookup: true},
	}
}

// RegisterDefaults registers every built-in converter in reg.
func RegisterDefaults(reg *mapping.ConverterRegistry) {
	reg.RegisterAll(Defaults())
}

// NewRegistry returns a registry holding the built-in converters.
func NewRegistry() *mapping.ConverterRegistry {
	reg := mapping.NewConverterRegistry()
	RegisterDefaults(reg)

	return reg
}

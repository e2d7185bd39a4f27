package babele

// TranslatePackFolders renames the folders of a pack from the "folders" map
// of its payload, in place. Folders without a translation keep their name.
func (b *Babele) TranslatePackFolders(collection string, folders []map[string]any) []map[string]any {
	s, ok := b.Store(collection)
	if !ok {
		return folders
	}

	for _, folder := range folders {
		name, _ := folder["name"].(string)
		if translated, ok := s.TranslateFolderName(name); ok {
			folder["name"] = translated
		}
	}

	return folders
}

// SystemFolderTranslations returns the union of the entries of every
// pack-folder store, mapping folder names to translated names.
func (b *Babele) SystemFolderTranslations() map[string]string {
	snap := b.snapshot()
	out := map[string]string{}

	for _, collection := range snap.collections {
		s := snap.stores[collection]
		if !s.Metadata().IsPackFolders() {
			continue
		}

		for name, entry := range s.Entries() {
			switch e := entry.(type) {
			case string:
				if e != "" {
					out[name] = e
				}
			case map[string]any:
				if n, _ := e["name"].(string); n != "" {
					out[name] = n
				}
			}
		}
	}

	return out
}

// TranslateSystemFolders renames world folders from the pack-folder stores,
// in place.
func (b *Babele) TranslateSystemFolders(folders []map[string]any) []map[string]any {
	translations := b.SystemFolderTranslations()
	if len(translations) == 0 {
		return folders
	}

	for _, folder := range folders {
		name, _ := folder["name"].(string)
		if translated, ok := translations[name]; ok {
			folder["name"] = translated
		}
	}

	return folders
}


package babele

import "sync"

// MemorySettings is an in-process Settings store.
type MemorySettings struct {
	mu           sync.RWMutex
	translations []string
	mappings     []string
}

// TranslationFiles implements Settings.
func (s *MemorySettings) TranslationFiles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.translations...)
}

// SetTranslationFiles implements Settings.
func (s *MemorySettings) SetTranslationFiles(files []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.translations = append([]string(nil), files...)
}

// MappingFiles implements Settings.
func (s *MemorySettings) MappingFiles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.mappings...)
}

// SetMappingFiles implements Settings.
func (s *MemorySettings) SetMappingFiles(files []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mappings = append([]string(nil), files...)
}

package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"babele/internal/document"
)

// Global mapping override file names.
const (
	FileJSON = "mapping.json"
	FileYAML = "mapping.yaml"
	FileYML  = "mapping.yml"
)

// IsMappingFile reports whether the base name of path is a global mapping file.
func IsMappingFile(path string) bool {
	switch baseName(path) {
	case FileJSON, FileYAML, FileYML:
		return true
	default:
		return false
	}
}

// LoadFile loads and parses a mapping file from the given path.
func LoadFile(path string) (MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse parses mapping data, choosing YAML for .yaml/.yml names and JSON otherwise.
func Parse(name string, data []byte) (MappingFile, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON parses JSON data into a MappingFile.
func ParseJSON(data []byte) (MappingFile, error) {
	var mf MappingFile

	err := document.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping JSON: %w", err)
	}

	return mf, nil
}

// ParseYAML parses YAML data into a MappingFile.
func ParseYAML(data []byte) (MappingFile, error) {
	text, err := document.DecodeText(data)
	if err != nil {
		return nil, err
	}

	var mf MappingFile

	err = yaml.Unmarshal(text, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	return mf, nil
}

// Marshal serializes a MappingFile to indented JSON.
func Marshal(mf MappingFile) ([]byte, error) {
	return json.MarshalIndent(mf, "", "  ")
}

// baseName handles both slash and backslash separated paths.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}

	return path
}

package mapping

import (
	"sync"

	"babele/internal/common"
	"babele/internal/match"
)

// maxSuggestions bounds the alternatives attached to an unknown converter.
const maxSuggestions = 3

// Converter merges the nested value at a rule's path with its translation,
// and produces the translation template for that value on export.
//
// Implementations must not mutate original or translation; translating an
// already translated value with the same translation must return it unchanged.
type Converter interface {
	// Translate returns the merged value, or nil when nothing should be written.
	Translate(ctx *Context, original, translation any) (any, error)

	// Extract returns the translation template for value, or nil to omit the field.
	Extract(ctx *Context, value any) (any, error)
}

// EntryBound is implemented by converters that can only produce output from
// an explicit translation entry. Converters that do not implement it make a
// schema dynamic.
type EntryBound interface {
	RequiresEntry() bool
}

// ConverterFuncs adapts plain functions to Converter. A nil ExtractFunc omits
// the field from templates.
type ConverterFuncs struct {
	TranslateFunc func(ctx *Context, original, translation any) (any, error)
	ExtractFunc   func(ctx *Context, value any) (any, error)
}

// Translate implements Converter.
func (f ConverterFuncs) Translate(ctx *Context, original, translation any) (any, error) {
	if f.TranslateFunc == nil {
		return nil, nil
	}

	return f.TranslateFunc(ctx, original, translation)
}

// Extract implements Converter.
func (f ConverterFuncs) Extract(ctx *Context, value any) (any, error) {
	if f.ExtractFunc == nil {
		return nil, nil
	}

	return f.ExtractFunc(ctx, value)
}

// ConverterRegistry holds converters by name. The last registration for a
// name wins.
type ConverterRegistry struct {
	mu         sync.RWMutex
	converters map[string]Converter
}

// NewConverterRegistry creates a new empty converter registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{
		converters: make(map[string]Converter),
	}
}

// Register adds or replaces the converter for name.
func (r *ConverterRegistry) Register(name string, c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.converters[name] = c
}

// RegisterAll registers every converter in the map.
func (r *ConverterRegistry) RegisterAll(converters map[string]Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, c := range converters {
		r.converters[name] = c
	}
}

// Resolve returns the converter for name, or an *UnknownConverterError.
func (r *ConverterRegistry) Resolve(name string) (Converter, error) {
	r.mu.RLock()
	c, ok := r.converters[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownConverterError{
			Name:        name,
			Suggestions: match.Suggest(name, r.Names(), maxSuggestions),
		}
	}

	return c, nil
}

// Has returns true if a converter with the given name exists.
func (r *ConverterRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.converters[name]

	return exists
}

// Names returns all converter names, sorted.
func (r *ConverterRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return common.SortedKeys(r.converters)
}

// requiresEntry reports whether c only works from an explicit entry.
func requiresEntry(c Converter) bool {
	bound, ok := c.(EntryBound)
	return ok && bound.RequiresEntry()
}

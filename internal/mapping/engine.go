package mapping

import (
	"errors"

	"babele/internal/document"
)

// Resolver answers lookups that cross collection boundaries. The
// orchestrator implements it; a nil Resolver disables those lookups.
type Resolver interface {
	// TranslateDocument translates doc with the first translated collection
	// holding an entry for it, in translations-only mode.
	TranslateDocument(doc map[string]any) (map[string]any, bool)

	// TranslateField translates one field of doc against collection.
	TranslateField(field, collection string, doc map[string]any) (any, bool)
}

// Env is the immutable environment a Mapper runs in.
type Env struct {
	Converters *ConverterRegistry
	Defaults   *Defaults
	Resolver   Resolver
}

// Mapper returns a mapper for t using the default schema merged with override.
func (e *Env) Mapper(t DocumentType, override Schema) *Mapper {
	defaults := e.Defaults
	if defaults == nil {
		defaults = NewDefaults()
	}

	return NewMapper(t, defaults.Schema(t).Merge(override), e)
}

// Options control a translation pass.
type Options struct {
	// TranslationsOnly skips every rule whose entry value is missing, so only
	// confirmed translations are written.
	TranslationsOnly bool
}

// Context is handed to converters for one rule application.
type Context struct {
	Env     *Env
	Mapper  *Mapper
	Field   string
	Rule    FieldRule
	Options Options

	// Document is the document owning the converted value.
	Document map[string]any

	// Entry is the translation entry of Document; never nil.
	Entry map[string]any
}

// SubMapper returns a mapper for sub-documents of type t, using the rule's
// sub-schema on top of the type defaults.
func (c *Context) SubMapper(t DocumentType) *Mapper {
	return c.Env.Mapper(t, c.Rule.Mapping)
}

// Resolver returns the cross-collection resolver, or nil.
func (c *Context) Resolver() Resolver {
	if c.Env == nil {
		return nil
	}

	return c.Env.Resolver
}

// Mapper interprets a schema against documents of one type.
type Mapper struct {
	docType DocumentType
	schema  Schema
	fields  []string
	env     *Env
}

// NewMapper creates a mapper for schema. env supplies converters for
// converted rules.
func NewMapper(t DocumentType, schema Schema, env *Env) *Mapper {
	if env == nil {
		env = &Env{}
	}

	schema = schema.Clone()
	if schema == nil {
		schema = Schema{}
	}

	return &Mapper{
		docType: t,
		schema:  schema,
		fields:  schema.Fields(),
		env:     env,
	}
}

// Type returns the document type of the mapper.
func (m *Mapper) Type() DocumentType {
	return m.docType
}

// Schema returns a copy of the effective schema.
func (m *Mapper) Schema() Schema {
	return m.schema.Clone()
}

// Rule returns the rule for field.
func (m *Mapper) Rule(field string) (FieldRule, bool) {
	r, ok := m.schema[field]
	return r, ok
}

// IsDynamic returns true if any converted rule can produce output without
// an explicit translation entry.
func (m *Mapper) IsDynamic() bool {
	for _, field := range m.fields {
		rule := m.schema[field]
		if !rule.IsConverted() {
			continue
		}

		c, err := m.resolve(rule.Converter)
		if err != nil {
			continue
		}

		if !requiresEntry(c) {
			return true
		}
	}

	return false
}

// Map returns the translated overlay of doc: an object holding, at each
// rule's path, the value to write. Field failures are joined into the
// returned error while the remaining fields are still mapped.
func (m *Mapper) Map(doc, entry map[string]any, opts Options) (map[string]any, error) {
	overlay := map[string]any{}

	if entry == nil {
		entry = map[string]any{}
	}

	var errs []error

	for _, field := range m.fields {
		rule := m.schema[field]

		value, ok, err := m.translateRule(field, rule, doc, entry, opts)
		if err != nil {
			errs = append(errs, err)
		}

		if ok {
			document.Set(overlay, rule.Path, value)
		}
	}

	return overlay, errors.Join(errs...)
}

// Translate returns a translated copy of doc: the overlay merged over a deep
// copy, stamped with the translation markers. doc is not modified.
func (m *Mapper) Translate(doc, entry map[string]any, hasEntry bool, opts Options) (map[string]any, error) {
	overlay, err := m.Map(doc, entry, opts)

	out := document.CloneMap(doc)
	if out == nil {
		out = map[string]any{}
	}

	document.Merge(out, overlay)
	document.Stamp(out, doc["name"], hasEntry)

	return out, err
}

// TranslateField returns the translated value of one field. The bool is
// false when the schema has no such field or nothing was translated.
func (m *Mapper) TranslateField(field string, doc, entry map[string]any, opts Options) (any, bool, error) {
	rule, ok := m.schema[field]
	if !ok {
		return nil, false, nil
	}

	if entry == nil {
		entry = map[string]any{}
	}

	return m.translateRule(field, rule, doc, entry, opts)
}

// Extract walks the schema and returns the translation template for doc:
// verbatim fields copy the current value, converted fields delegate to the
// converter's Extract.
func (m *Mapper) Extract(doc map[string]any) (map[string]any, error) {
	out := map[string]any{}

	var errs []error

	for _, field := range m.fields {
		rule := m.schema[field]

		value, ok := document.Get(doc, rule.Path)

		if !rule.IsConverted() {
			if ok && value != nil {
				out[field] = document.Clone(value)
			}

			continue
		}

		c, err := m.resolve(rule.Converter)
		if err != nil {
			errs = append(errs, &FieldError{Field: field, Err: err})
			continue
		}

		if !ok || value == nil {
			continue
		}

		extracted, err := c.Extract(m.context(field, rule, doc, map[string]any{}, Options{}), value)
		if err != nil {
			errs = append(errs, &FieldError{Field: field, Err: err})
		}

		if extracted != nil {
			out[field] = extracted
		}
	}

	return out, errors.Join(errs...)
}

// ExtractField returns the current value at the field's path.
func (m *Mapper) ExtractField(field string, doc map[string]any) (any, bool) {
	rule, ok := m.schema[field]
	if !ok {
		return nil, false
	}

	return document.Get(doc, rule.Path)
}

func (m *Mapper) translateRule(field string, rule FieldRule, doc, entry map[string]any, opts Options) (any, bool, error) {
	value, hasValue := entry[field]
	hasValue = hasValue && !document.IsEmpty(value)

	if !rule.IsConverted() {
		if !hasValue {
			return nil, false, nil
		}

		return document.Clone(value), true, nil
	}

	if opts.TranslationsOnly && !hasValue {
		return nil, false, nil
	}

	c, err := m.resolve(rule.Converter)
	if err != nil {
		return nil, false, &FieldError{Field: field, Err: err}
	}

	original, _ := document.Get(doc, rule.Path)

	out, err := c.Translate(m.context(field, rule, doc, entry, opts), original, value)
	if err != nil {
		err = &FieldError{Field: field, Err: err}
	}

	if out == nil {
		return nil, false, err
	}

	return out, true, err
}

func (m *Mapper) context(field string, rule FieldRule, doc, entry map[string]any, opts Options) *Context {
	return &Context{
		Env:      m.env,
		Mapper:   m,
		Field:    field,
		Rule:     rule,
		Options:  opts,
		Document: doc,
		Entry:    entry,
	}
}

func (m *Mapper) resolve(name string) (Converter, error) {
	if m.env.Converters == nil {
		return nil, &UnknownConverterError{Name: name}
	}

	return m.env.Converters.Resolve(name)
}

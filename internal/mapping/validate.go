package mapping

import (
	"errors"
	"fmt"

	"babele/internal/common"
	"babele/internal/diagnostic"
	"babele/internal/document"
	"babele/internal/match"
)

// Validate checks a mapping file against the converter registry: every key
// must name a document type, every path must parse and every converter must
// resolve. This is a structural check; it does not look at documents.
func Validate(mf MappingFile, converters *ConverterRegistry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		return res
	}

	for _, name := range common.SortedKeys(mf) {
		t, ok := ParseDocumentType(name)
		if !ok {
			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        diagnostic.CodeUnknownDocumentType,
				Message:     fmt.Sprintf("unknown document type %q", name),
				Scope:       name,
				Suggestions: match.Suggest(name, DocumentTypeNames(), maxSuggestions),
			})

			continue
		}

		res.Merge(*ValidateSchema(t.String(), mf[name], converters))
	}

	return res
}

// ValidateSchema validates one schema, recursing into rule sub-schemas.
// scope labels the diagnostics (a document type or collection).
func ValidateSchema(scope string, schema Schema, converters *ConverterRegistry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	validateSchema(res, scope, "", schema, converters)

	return res
}

func validateSchema(res *diagnostic.Diagnostics, scope, prefix string, schema Schema, converters *ConverterRegistry) {
	for _, field := range schema.Fields() {
		rule := schema[field]
		fieldPath := prefix + field

		// Sub-schema only overrides inherit their path from the rule they override.
		if rule.Path != "" {
			if _, err := document.ParsePath(rule.Path); err != nil {
				res.AddError(diagnostic.CodeInvalidPath, err.Error(), scope, fieldPath)
			}
		}

		if rule.IsConverted() {
			validateConverter(res, scope, fieldPath, rule.Converter, converters)
		}

		if len(rule.Mapping) > 0 {
			validateSchema(res, scope, fieldPath+".", rule.Mapping, converters)
		}
	}
}

func validateConverter(res *diagnostic.Diagnostics, scope, fieldPath, name string, converters *ConverterRegistry) {
	if converters == nil {
		converters = NewConverterRegistry()
	}

	_, err := converters.Resolve(name)
	if err == nil {
		return
	}

	var unknown *UnknownConverterError
	if errors.As(err, &unknown) {
		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityError,
			Code:        diagnostic.CodeUnknownConverter,
			Message:     fmt.Sprintf("unknown converter %q", name),
			Scope:       scope,
			FieldPath:   fieldPath,
			Suggestions: unknown.Suggestions,
		})

		return
	}

	res.AddError(diagnostic.CodeUnknownConverter, err.Error(), scope, fieldPath)
}

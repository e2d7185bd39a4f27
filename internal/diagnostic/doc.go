// Package diagnostic provides structured errors, warnings and notes
// collected while loading translation files and validating schemas.
//
// Key capabilities:
//   - Malformed translation and mapping file reports
//   - Directory browse failures
//   - Unknown converter and document type reports with suggestions
//   - Notes on collections without translation files
package diagnostic

// Package locale provides the locale-aware name ordering offered to callers
// that sort translated indexes.
package locale

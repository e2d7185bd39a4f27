// Package match ranks known names against an unknown one by edit distance.
// It backs the "did you mean" hints attached to unknown converter and
// unknown document type diagnostics.
package match

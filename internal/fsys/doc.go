// Package fsys implements the file-discovery and fetch collaborators of the
// orchestrator over an fs.FS rooted at the data directory.
package fsys

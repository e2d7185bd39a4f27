package babele

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"babele/internal/diagnostic"
	"babele/internal/mapping"
)

// translationDirs returns the directories searched for translation files of
// the active language, in merge order.
func (b *Babele) translationDirs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var dirs []string

	for _, m := range b.modules {
		if m.Lang == b.cfg.Lang {
			dirs = append(dirs, m.Path())
		}
	}

	if dir := strings.TrimSpace(b.cfg.Directory); dir != "" {
		dirs = append(dirs, dir+"/"+b.cfg.Lang)
	}

	if b.cfg.SystemDir != "" {
		dirs = append(dirs, "systems/"+b.cfg.SystemID+"/"+b.cfg.SystemDir+"/"+b.cfg.Lang)
	}

	return dirs
}

// mappingDirs returns the directories searched for global mapping files:
// every registered module regardless of language, the user directory and
// the system directory.
func (b *Babele) mappingDirs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var dirs []string

	for _, m := range b.modules {
		dirs = append(dirs, m.Path())
	}

	if dir := strings.TrimSpace(b.cfg.Directory); dir != "" {
		dirs = append(dirs, dir)
	}

	if b.cfg.SystemDir != "" {
		dirs = append(dirs, "systems/"+b.cfg.SystemID+"/"+b.cfg.SystemDir)
	}

	return dirs
}

// TranslationFiles returns the translation files of the active language.
// The browsed list is cached; without browse permission the shared list
// from Settings is used.
func (b *Babele) TranslationFiles(ctx context.Context) []string {
	b.mu.RLock()
	cached := b.files
	b.mu.RUnlock()

	if len(cached) > 0 {
		return append([]string(nil), cached...)
	}

	if !b.cfg.CanBrowse {
		if b.settings == nil {
			return nil
		}

		return b.settings.TranslationFiles()
	}

	files := b.browseAll(ctx, b.translationDirs(), nil)

	b.mu.Lock()
	b.files = files
	b.mu.Unlock()

	return append([]string(nil), files...)
}

// MappingFiles returns the global mapping override files.
func (b *Babele) MappingFiles(ctx context.Context) []string {
	b.mu.RLock()
	cached := b.mappingFiles
	b.mu.RUnlock()

	if len(cached) > 0 {
		return append([]string(nil), cached...)
	}

	if !b.cfg.CanBrowse {
		if b.settings == nil {
			return nil
		}

		return b.settings.MappingFiles()
	}

	files := b.browseAll(ctx, b.mappingDirs(), mapping.IsMappingFile)

	b.mu.Lock()
	b.mappingFiles = files
	b.mu.Unlock()

	return append([]string(nil), files...)
}

// ShareTranslationFiles publishes the browsed translation files to Settings.
func (b *Babele) ShareTranslationFiles(ctx context.Context) {
	if !b.cfg.CanBrowse || b.settings == nil {
		return
	}

	b.settings.SetTranslationFiles(b.TranslationFiles(ctx))
}

// ShareGlobalMappingFiles publishes the browsed mapping files to Settings.
func (b *Babele) ShareGlobalMappingFiles(ctx context.Context) {
	if !b.cfg.CanBrowse || b.settings == nil {
		return
	}

	b.settings.SetMappingFiles(b.MappingFiles(ctx))
}

// browseAll lists dirs in parallel and concatenates the results in dir
// order. A failing directory contributes no files.
func (b *Babele) browseAll(ctx context.Context, dirs []string, keep func(string) bool) []string {
	if b.browser == nil || len(dirs) == 0 {
		return nil
	}

	results := make([][]string, len(dirs))

	var g errgroup.Group

	for i, dir := range dirs {
		g.Go(func() error {
			files, err := b.browser.Browse(ctx, dir)
			if err != nil {
				b.logger.Printf("failed to browse %s: %v", dir, err)
				b.addDiagnostic(diagnostic.CodeDirectoryBrowseFailure, err.Error(), dir)

				return nil
			}

			results[i] = files

			return nil
		})
	}

	_ = g.Wait()

	var files []string

	for _, list := range results {
		for _, f := range list {
			if keep == nil || keep(f) {
				files = append(files, f)
			}
		}
	}

	return files
}

// baseName returns the last element of a slash or backslash separated path.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}

	return path
}

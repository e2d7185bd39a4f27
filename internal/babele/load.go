package babele

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"babele/internal/common"
	"babele/internal/compendium"
	"babele/internal/diagnostic"
	"babele/internal/document"
	"babele/internal/mapping"
)

// adventureItemsSuffix ends the collection id of the synthetic Item store
// built from the embedded items of an Adventure collection.
const adventureItemsSuffix = "-items"

// Init loads every translation and builds the stores. It is a no-op once
// the Babele is ready. Unreadable files and directories are skipped and
// recorded in Diagnostics; only cancellation of ctx is returned.
func (b *Babele) Init(ctx context.Context) error {
	b.initMu.Lock()
	defer b.initMu.Unlock()

	if b.State() == StateReady {
		return nil
	}

	b.setState(StateLoading)

	// Overrides must reach the defaults before any store resolves its schema.
	b.loadMappings(ctx)

	files := b.TranslationFiles(ctx)
	if len(files) == 0 {
		b.logger.Printf("no compendium translation files found for %s language", b.cfg.Lang)
	}

	stores := map[string]*compendium.Compendium{}

	for _, meta := range b.supportedPacks() {
		collection := meta.Collection()

		payload := b.loadCollection(ctx, collection, collectionFiles(files, collection))
		if payload == nil {
			continue
		}

		b.addStores(stores, meta, payload)
	}

	for _, file := range files {
		meta, ok := compendium.PackFoldersMetadata(baseName(file))
		if !ok {
			continue
		}

		payload := b.loadCollection(ctx, meta.Collection(), []string{file})
		if payload == nil {
			continue
		}

		b.addStores(stores, meta, payload)
	}

	if err := ctx.Err(); err != nil {
		b.setState(StateUninitialized)
		return err
	}

	b.mu.Lock()
	b.snap = &snapshot{stores: stores, collections: common.SortedKeys(stores)}
	b.state = StateReady
	b.mu.Unlock()

	return nil
}

func (b *Babele) setState(s State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state = s
}

func (b *Babele) supportedPacks() []compendium.Metadata {
	if b.packs == nil {
		return nil
	}

	var out []compendium.Metadata

	for _, meta := range b.packs.Packs() {
		if meta.Supported() {
			out = append(out, meta)
		}
	}

	return out
}

// collectionFiles returns the files named "<collection>.json", in order.
func collectionFiles(files []string, collection string) []string {
	name := compendium.FileName(collection)

	var out []string

	for _, f := range files {
		if baseName(f) == name {
			out = append(out, f)
		}
	}

	return out
}

// loadCollection fetches the files of a collection in parallel and merges
// them in file order once all of them resolved.
func (b *Babele) loadCollection(ctx context.Context, collection string, files []string) *compendium.Payload {
	if len(files) == 0 {
		b.logger.Printf("no translation file found for %s pack", collection)
		return nil
	}

	payloads := make([]*compendium.Payload, len(files))

	var g errgroup.Group

	for i, file := range files {
		g.Go(func() error {
			p, err := b.fetchPayload(ctx, file)
			if err != nil {
				b.logger.Printf("failed to load %s: %v", file, err)
				b.addDiagnostic(diagnostic.CodeMalformedTranslationFile, err.Error(), file)

				return nil
			}

			payloads[i] = p

			return nil
		})
	}

	_ = g.Wait()

	merged := compendium.Merge(payloads...)
	if merged == nil {
		return nil
	}

	merged.Collection = collection
	b.logger.Printf("translation for %s pack successfully loaded", collection)

	return merged
}

func (b *Babele) fetchPayload(ctx context.Context, file string) (*compendium.Payload, error) {
	data, err := b.fetch(ctx, file)
	if err != nil {
		return nil, err
	}

	return compendium.ParsePayload(data)
}

func (b *Babele) fetch(ctx context.Context, file string) ([]byte, error) {
	if b.fetcher == nil {
		return nil, fmt.Errorf("failed to fetch %s: no fetcher", file)
	}

	data, err := b.fetcher.Fetch(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", file, err)
	}

	return data, nil
}

// loadMappings fetches the global mapping files in parallel and registers
// them in file order.
func (b *Babele) loadMappings(ctx context.Context) {
	files := b.MappingFiles(ctx)
	if len(files) == 0 {
		return
	}

	b.logger.Printf("global mapping files found, defaults will be enriched/overwritten")

	parsed := make([]mapping.MappingFile, len(files))

	var g errgroup.Group

	for i, file := range files {
		g.Go(func() error {
			data, err := b.fetch(ctx, file)
			if err == nil {
				parsed[i], err = mapping.Parse(file, data)
			}

			if err != nil {
				b.logger.Printf("failed to load mapping %s: %v", file, err)
				b.addDiagnostic(diagnostic.CodeMalformedMappingFile, err.Error(), file)
			}

			return nil
		})
	}

	_ = g.Wait()

	for i, mf := range parsed {
		if mf != nil {
			b.registerMapping(files[i], mf)
		}
	}
}

// addStores builds the store of a collection and, for Adventure
// collections, the synthetic store of the embedded items.
func (b *Babele) addStores(stores map[string]*compendium.Compendium, meta compendium.Metadata, payload *compendium.Payload) {
	store := compendium.New(meta, payload, b.env)
	stores[store.Collection()] = store

	if meta.Type != mapping.TypeAdventure || payload.Entries == nil {
		return
	}

	items := adventureItems(payload.Entries)

	var sub mapping.Schema
	if rule, ok := store.Mapper().Rule("items"); ok {
		sub = rule.Mapping
	}

	itemsMeta := compendium.Metadata{
		Name:        meta.Name + adventureItemsSuffix,
		PackageName: meta.PackageName,
		PackageType: meta.PackageType,
		Type:        mapping.TypeItem,
	}

	collection := store.Collection() + adventureItemsSuffix

	stores[collection] = compendium.New(itemsMeta, &compendium.Payload{
		Collection: collection,
		Entries:    items,
		Mapping:    sub,
	}, b.env)
}

// adventureItems returns the union of the "items" entries of every
// adventure entry, in entry key order.
func adventureItems(entries map[string]any) map[string]any {
	out := map[string]any{}

	for _, key := range common.SortedKeys(entries) {
		adventure, ok := entries[key].(map[string]any)
		if !ok {
			continue
		}

		items, ok := document.Entries(adventure["items"])
		if !ok {
			continue
		}

		for name, item := range items {
			out[name] = document.Clone(item)
		}
	}

	return out
}

package babele

import (
	"fmt"
	"io"
	"log"
	"sync"

	"babele/internal/compendium"
	"babele/internal/converter"
	"babele/internal/diagnostic"
	"babele/internal/mapping"
	"babele/internal/match"
)

// Module is a translation module registered by a collaborating package.
type Module struct {
	// Module is the module id; its files live under modules/<id>.
	Module string `json:"module"`
	// Lang is the language the module translates to.
	Lang string `json:"lang"`
	// Dir is the translation directory relative to the module root.
	Dir string `json:"dir"`
}

// Path returns the data path of the module translation directory.
func (m Module) Path() string {
	return "modules/" + m.Module + "/" + m.Dir
}

// Config selects the translation sources.
type Config struct {
	// Lang is the active language code.
	Lang string
	// Directory is the user translation root; files are read from <Directory>/<Lang>.
	Directory string
	// SystemID is the id of the active game system.
	SystemID string
	// SystemDir is the translation directory of the system, relative to its root.
	SystemDir string
	// CanBrowse permits browsing the data directories. Without it the file
	// lists come from Settings.
	CanBrowse bool
}

// Option configures a Babele.
type Option func(*Babele)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(b *Babele) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithFiles sets the file browser and fetcher.
func WithFiles(browser FileBrowser, fetcher Fetcher) Option {
	return func(b *Babele) {
		b.browser = browser
		b.fetcher = fetcher
	}
}

// WithPacks sets the host pack registry.
func WithPacks(packs PackRegistry) Option {
	return func(b *Babele) {
		b.packs = packs
	}
}

// WithSettings sets the shared settings store.
func WithSettings(settings Settings) Option {
	return func(b *Babele) {
		b.settings = settings
	}
}

// snapshot is the immutable result of initialization.
type snapshot struct {
	stores      map[string]*compendium.Compendium
	collections []string
}

// Babele orchestrates translation loading and routes requests to the
// per-collection stores.
type Babele struct {
	cfg    Config
	logger *log.Logger

	browser  FileBrowser
	fetcher  Fetcher
	packs    PackRegistry
	settings Settings

	converters *mapping.ConverterRegistry
	defaults   *mapping.Defaults
	env        *mapping.Env

	initMu sync.Mutex

	mu           sync.RWMutex
	state        State
	modules      []Module
	files        []string
	mappingFiles []string
	snap         *snapshot
	diag         diagnostic.Diagnostics
}

// New creates an uninitialized Babele with the built-in converters and
// default schemas.
func New(cfg Config, opts ...Option) *Babele {
	b := &Babele{
		cfg:        cfg,
		logger:     log.New(io.Discard, "", 0),
		converters: converter.NewRegistry(),
		defaults:   mapping.NewDefaults(),
		snap:       &snapshot{stores: map[string]*compendium.Compendium{}},
	}

	for _, opt := range opts {
		opt(b)
	}

	b.env = &mapping.Env{
		Converters: b.converters,
		Defaults:   b.defaults,
		Resolver:   b,
	}

	return b
}

// Config returns the configuration of b.
func (b *Babele) Config() Config {
	return b.cfg
}

// State returns the initialization state.
func (b *Babele) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.state
}

// Register adds a translation module. Modules must be registered before Init.
func (b *Babele) Register(m Module) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.modules = append(b.modules, m)
}

// Modules returns the registered modules.
func (b *Babele) Modules() []Module {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]Module(nil), b.modules...)
}

// RegisterConverters adds or replaces converters by name.
func (b *Babele) RegisterConverters(converters map[string]mapping.Converter) {
	b.converters.RegisterAll(converters)
}

// Converters returns the converter registry.
func (b *Babele) Converters() *mapping.ConverterRegistry {
	return b.converters
}

// RegisterMapping merges a mapping file over the default schemas. Unknown
// document types are skipped and recorded as diagnostics.
func (b *Babele) RegisterMapping(mf mapping.MappingFile) {
	b.registerMapping("", mf)
}

func (b *Babele) registerMapping(source string, mf mapping.MappingFile) {
	skipped := b.defaults.Register(mf)
	if len(skipped) == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, name := range skipped {
		b.diag.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityWarning,
			Code:        diagnostic.CodeUnknownDocumentType,
			Message:     fmt.Sprintf("mapping for unknown document type %q ignored", name),
			Scope:       source,
			Suggestions: suggestTypes(name),
		})
	}
}

// Defaults returns the default schema registry.
func (b *Babele) Defaults() *mapping.Defaults {
	return b.defaults
}

// SetSystemTranslationsDir sets the system translation directory.
func (b *Babele) SetSystemTranslationsDir(dir string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cfg.SystemDir = dir
}

// Diagnostics returns the conditions recovered so far.
func (b *Babele) Diagnostics() diagnostic.Diagnostics {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.diag.Clone()
}

// Check validates the default schemas and every store schema against the
// converter registry, on top of the load diagnostics.
func (b *Babele) Check() diagnostic.Diagnostics {
	res := b.Diagnostics()
	res.Merge(*mapping.Validate(b.defaults.Snapshot(), b.converters))

	snap := b.snapshot()
	for _, collection := range snap.collections {
		store := snap.stores[collection]
		res.Merge(*mapping.ValidateSchema(collection, store.Overrides(), b.converters))
	}

	return res
}

func (b *Babele) snapshot() *snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.snap
}

func (b *Babele) addDiagnostic(code, message, scope string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diag.AddWarning(code, message, scope, "")
}

func suggestTypes(name string) []string {
	return match.Suggest(name, mapping.DocumentTypeNames(), 3)
}

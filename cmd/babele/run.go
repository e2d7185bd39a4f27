package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"babele/internal/babele"
	"babele/internal/compendium"
	"babele/internal/config"
	"babele/internal/fsys"
	"babele/internal/mapping"
	"babele/internal/pack"
	"babele/internal/server"
)

const usage = `usage: babele <command> [flags]

Commands:
  translate -collection C [-only] [-out FILE]
  index     -collection C
  folders   -collection C
  export    -collection C [-format F] [-out DIR]
  check     [-dump] [-mapping FILE]
  serve     [-addr A]`

var errUsage = errors.New(usage)

// app is an initialized babele with its host packs.
type app struct {
	cfg    config.Config
	babele *babele.Babele
	packs  *pack.Registry
	logger *log.Logger
	out    io.Writer
}

func run(ctx context.Context, cfg config.Config, args []string, out io.Writer, logger *log.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	commands := map[string]func(*app, []string) error{
		"translate": (*app).translate,
		"index":     (*app).index,
		"folders":   (*app).folders,
		"export":    (*app).export,
		"check":     (*app).check,
		"serve":     func(a *app, args []string) error { return a.serve(ctx, args) },
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}

	a, err := newApp(ctx, cfg, out, logger)
	if err != nil {
		return err
	}

	return cmd(a, args[1:])
}

func newApp(ctx context.Context, cfg config.Config, out io.Writer, logger *log.Logger) (*app, error) {
	modules, err := cfg.BabeleModules()
	if err != nil {
		return nil, err
	}

	data := os.DirFS(cfg.DataDir)

	packs, err := pack.LoadDir(data, cfg.PacksDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load packs: %w", err)
	}

	src := fsys.New(data)
	b := babele.New(cfg.Babele(),
		babele.WithLogger(logger),
		babele.WithFiles(src, src),
		babele.WithPacks(packs),
	)

	for _, m := range modules {
		b.Register(m)
	}

	if err := b.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	return &app{cfg: cfg, babele: b, packs: packs, logger: logger, out: out}, nil
}

func (a *app) documents(collection string) ([]map[string]any, error) {
	if collection == "" {
		return nil, errors.New("-collection is required")
	}

	docs, ok := a.packs.Documents(collection)
	if !ok {
		return nil, fmt.Errorf("unknown pack %s", collection)
	}

	return docs, nil
}

func (a *app) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	data = append(data, '\n')

	if path == "" {
		_, err = a.out.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (a *app) translate(args []string) error {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	collection := fs.String("collection", "", "collection id of the pack")
	only := fs.Bool("only", false, "only translate documents with an explicit translation")
	outFile := fs.String("out", "", "output file (default stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	docs, err := a.documents(*collection)
	if err != nil {
		return err
	}

	for i, doc := range docs {
		docs[i] = a.babele.Translate(*collection, doc, *only)
	}

	return a.writeJSON(*outFile, docs)
}

func (a *app) index(args []string) error {
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	collection := fs.String("collection", "", "collection id of the pack")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *collection == "" {
		return errors.New("-collection is required")
	}

	index, ok := a.packs.Index(*collection)
	if !ok {
		return fmt.Errorf("unknown pack %s", *collection)
	}

	index = a.babele.TranslateIndex(index, *collection)
	a.babele.Collator().SortByName(index)

	return a.writeJSON("", index)
}

func (a *app) folders(args []string) error {
	fs := flag.NewFlagSet("folders", flag.ContinueOnError)
	collection := fs.String("collection", "", "collection id of the pack")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *collection == "" {
		return errors.New("-collection is required")
	}

	folders, ok := a.packs.Folders(*collection)
	if !ok {
		return fmt.Errorf("unknown pack %s", *collection)
	}

	folders = a.babele.TranslatePackFolders(*collection, folders)

	return a.writeJSON("", a.babele.TranslateSystemFolders(folders))
}

func (a *app) export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	collection := fs.String("collection", "", "collection id of the pack")
	format := fs.String("format", a.cfg.ExportFormat, "template format: default or legacy")
	outDir := fs.String("out", "", "output directory (default stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := compendium.ParseFormat(*format)
	if err != nil {
		return err
	}

	docs, err := a.documents(*collection)
	if err != nil {
		return err
	}

	p, _ := a.packs.Pack(*collection)

	data, err := a.babele.ExportTemplate(*collection, p.Label, docs, f).Bytes()
	if err != nil {
		return err
	}

	if *outDir == "" {
		_, err = fmt.Fprintf(a.out, "%s\n", data)
		return err
	}

	path := filepath.Join(*outDir, compendium.FileName(*collection))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	a.logger.Printf("template for %s written to %s", *collection, path)

	return nil
}

func (a *app) check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	dump := fs.Bool("dump", false, "dump loaded stores and default schemas")
	mappingFile := fs.String("mapping", "", "also validate this mapping file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	diag := a.babele.Check()

	if *mappingFile != "" {
		mf, err := mapping.LoadFile(*mappingFile)
		if err != nil {
			return err
		}

		diag.Merge(*mapping.Validate(mf, a.babele.Converters()))
	}

	for _, d := range diag.All() {
		fmt.Fprintln(a.out, d.String())
	}

	if *dump {
		cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}

		for _, collection := range a.babele.Collections() {
			store, _ := a.babele.Store(collection)
			fmt.Fprintf(a.out, "== %s (%s) ==\n", collection, store.Metadata().Type)
			cfg.Fdump(a.out, store.Entries())
		}

		schemas, err := mapping.Marshal(a.babele.Defaults().Snapshot())
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "== schemas ==\n%s\n", schemas)
	}

	if diag.HasErrors() {
		return fmt.Errorf("check failed with %d errors", len(diag.Errors))
	}

	fmt.Fprintf(a.out, "%d collections ok\n", len(a.babele.Collections()))

	return nil
}

func (a *app) serve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", a.cfg.HTTPAddr, "listen address")

	if err := fs.Parse(args); err != nil {
		return err
	}

	srv := server.New(a.babele, a.packs, a.cfg.Format(), a.logger)

	return srv.ListenAndServe(ctx, *addr, os.Stdout)
}

// Package main provides the CLI entrypoint for babele.
//
// babele loads compendium translation files for one language and applies
// them to the host packs:
//   - translate: translate the documents of a pack
//   - index: translate and sort the index of a pack
//   - export: write the translation template of a pack
//   - check: validate schemas and report load diagnostics
//   - serve: expose the translation façade over HTTP
//
// Configuration comes from BABELE_* environment variables; see
// internal/config.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"babele/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("babele: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "babele: ", log.LstdFlags)

	if err := run(ctx, cfg, os.Args[1:], os.Stdout, logger); err != nil {
		stop()
		config.Exitf("babele: %v", err)
	}
}

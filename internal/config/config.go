package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"babele/internal/babele"
	"babele/internal/compendium"
)

// Config is the environment configuration of the babele commands.
type Config struct {
	Lang         string `env:"BABELE_LANG" envDefault:"en"`
	Directory    string `env:"BABELE_DIRECTORY"`
	SystemID     string `env:"BABELE_SYSTEM_ID"`
	SystemDir    string `env:"BABELE_SYSTEM_DIR"`
	DataDir      string `env:"BABELE_DATA_DIR" envDefault:"."`
	PacksDir     string `env:"BABELE_PACKS_DIR" envDefault:"packs"`
	ExportFormat string `env:"BABELE_EXPORT_FORMAT" envDefault:"default"`
	HTTPAddr     string `env:"BABELE_HTTP_ADDR" envDefault:":8080"`
	CanBrowse    bool   `env:"BABELE_CAN_BROWSE" envDefault:"true"`

	// Modules lists translation modules as "module:lang[:dir]"; dir
	// defaults to "compendium".
	Modules []string `env:"BABELE_MODULES" envSeparator:","`
}

// DefaultModuleDir is the translation directory of a module when none is given.
const DefaultModuleDir = "compendium"

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Load parses Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if _, err := compendium.ParseFormat(cfg.ExportFormat); err != nil {
		return Config{}, fmt.Errorf("parse env: BABELE_EXPORT_FORMAT: %w", err)
	}

	if _, err := cfg.BabeleModules(); err != nil {
		return Config{}, fmt.Errorf("parse env: BABELE_MODULES: %w", err)
	}

	return cfg, nil
}

// Babele returns the orchestrator configuration.
func (c Config) Babele() babele.Config {
	return babele.Config{
		Lang:      c.Lang,
		Directory: c.Directory,
		SystemID:  c.SystemID,
		SystemDir: c.SystemDir,
		CanBrowse: c.CanBrowse,
	}
}

// BabeleModules parses Modules.
func (c Config) BabeleModules() ([]babele.Module, error) {
	modules := make([]babele.Module, 0, len(c.Modules))

	for _, entry := range c.Modules {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid module %q, expected module:lang[:dir]", entry)
		}

		m := babele.Module{Module: parts[0], Lang: parts[1], Dir: DefaultModuleDir}
		if len(parts) == 3 && parts[2] != "" {
			m.Dir = parts[2]
		}

		modules = append(modules, m)
	}

	return modules, nil
}

// Format returns the configured export format.
func (c Config) Format() compendium.Format {
	f, err := compendium.ParseFormat(c.ExportFormat)
	if err != nil {
		return compendium.FormatDefault
	}

	return f
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

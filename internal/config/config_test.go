package config

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babele/internal/babele"
	"babele/internal/compendium"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "packs", cfg.PacksDir)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.True(t, cfg.CanBrowse)
	assert.Equal(t, compendium.FormatDefault, cfg.Format())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BABELE_LANG", "es")
	t.Setenv("BABELE_DIRECTORY", "translations")
	t.Setenv("BABELE_SYSTEM_ID", "dnd5e")
	t.Setenv("BABELE_SYSTEM_DIR", "lang")
	t.Setenv("BABELE_EXPORT_FORMAT", "legacy")
	t.Setenv("BABELE_CAN_BROWSE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	b := cfg.Babele()
	assert.Equal(t, "es", b.Lang)
	assert.Equal(t, "translations", b.Directory)
	assert.Equal(t, "dnd5e", b.SystemID)
	assert.Equal(t, "lang", b.SystemDir)
	assert.False(t, b.CanBrowse)
	assert.Equal(t, compendium.FormatLegacy, cfg.Format())
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("BABELE_CAN_BROWSE", "maybe")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"))

	t.Setenv("BABELE_CAN_BROWSE", "true")
	t.Setenv("BABELE_EXPORT_FORMAT", "zip")

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BABELE_EXPORT_FORMAT")
}

func TestBabeleModules(t *testing.T) {
	t.Setenv("BABELE_MODULES", "babele-es:es, babele-fr:fr:packs/fr")

	cfg, err := Load()
	require.NoError(t, err)

	modules, err := cfg.BabeleModules()
	require.NoError(t, err)
	assert.Equal(t, []babele.Module{
		{Module: "babele-es", Lang: "es", Dir: DefaultModuleDir},
		{Module: "babele-fr", Lang: "fr", Dir: "packs/fr"},
	}, modules)

	for _, bad := range []string{"babele-es", ":es", "a:b:c:d"} {
		t.Run(bad, func(t *testing.T) {
			_, err := Config{Modules: []string{bad}}.BabeleModules()
			assert.Error(t, err)
		})
	}

	t.Setenv("BABELE_MODULES", "broken")

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BABELE_MODULES")
}

func TestExitf(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "fatal: something broke")
}

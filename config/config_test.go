package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannajonsd/hookdeps/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hookdeps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultHooksDir, cfg.HooksDir)
	assert.Equal(t, ".ts", cfg.Extension)
	assert.Equal(t, "use", cfg.HookPrefix)
	assert.Equal(t, "regex", cfg.Parser)
	assert.Equal(t, []string{"react", "react-dom"}, cfg.Framework.Packages)
	assert.Equal(t, []string{"@/", "~/"}, cfg.Framework.AliasRoots)
	assert.Equal(t, "scaflo/hooks", cfg.Manifest.OutputDir)
	assert.Equal(t, config.DefaultContentBaseURL, cfg.Manifest.ContentBaseURL)
	assert.False(t, cfg.Manifest.Indent)
	assert.Equal(t, "vhooks", cfg.Snippet.PackageName)
	assert.Equal(t, "/hooks/", cfg.Sidebar.LinkPrefix)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
hooks_dir: src/hooks
parser: treesitter
framework:
  packages: [preact]
manifest:
  output_dir: dist/registry
  indent: true
sidebar:
  format: json
logging:
  level: debug
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "src/hooks", cfg.HooksDir)
	assert.Equal(t, "treesitter", cfg.Parser)
	assert.Equal(t, []string{"preact"}, cfg.Framework.Packages)
	assert.Equal(t, []string{"@/", "~/"}, cfg.Framework.AliasRoots)
	assert.Equal(t, "dist/registry", cfg.Manifest.OutputDir)
	assert.True(t, cfg.Manifest.Indent)
	assert.Equal(t, "json", cfg.Sidebar.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("HOOKDEPS_HOOKS_DIR", "lib/hooks")
	t.Setenv("HOOKDEPS_MANIFEST_OUTPUT_DIR", "/tmp/registry")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "lib/hooks", cfg.HooksDir)
	assert.Equal(t, "/tmp/registry", cfg.Manifest.OutputDir)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"extension", "extension: ts\n", config.ErrInvalidExtension},
		{"prefix", "hook_prefix: Use\n", config.ErrInvalidHookPrefix},
		{"parser", "parser: babel\n", config.ErrUnsupportedParser},
		{"log level", "logging:\n  level: loud\n", config.ErrInvalidLogLevel},
		{"sidebar", "sidebar:\n  format: toml\n", config.ErrInvalidSidebarType},
		{"hooks dir", "hooks_dir: \"\"\n", config.ErrEmptyHooksDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

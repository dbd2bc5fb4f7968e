package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `extension: html
convention: template
pattern: "{{ .Prefix }}{{ .Position }}{{ .Ext }}"
width: 2
start: 0
include: "chapter*"
sort: lexical
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ".html", cfg.Extension)
	assert.Equal(t, "template", cfg.Convention)
	assert.Equal(t, "{{ .Prefix }}{{ .Position }}{{ .Ext }}", cfg.Pattern)
	assert.Equal(t, 2, cfg.Width)
	assert.Equal(t, 0, cfg.Start)
	assert.Equal(t, "chapter*", cfg.Include)
	assert.Equal(t, SortLexical, cfg.Sort)
	assert.Equal(t, DefaultPrefix, cfg.Prefix, "unset keys fall back to defaults")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("width: [unclosed"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("XHTMLREN_PREFIX", "part-")
	t.Setenv("XHTMLREN_WIDTH", "4")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "part-", cfg.Prefix)
	assert.Equal(t, 4, cfg.Width)
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	t.Setenv("XHTMLREN_EXTENSION", "html")
	t.Setenv("XHTMLREN_START", "0")

	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ".html", cfg.Extension)
	assert.Equal(t, 0, cfg.Start)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"xhtml", ".xhtml"},
		{".xhtml", ".xhtml"},
		{"  html ", ".html"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExtension(tt.in))
		})
	}
}

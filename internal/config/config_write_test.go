package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSave(t *testing.T) {
	t.Run("creates new config", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg := Default()
		cfg.Prefix = "part-"

		err := Save(tmpDir, cfg)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		configPath := filepath.Join(tmpDir, FileName)
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			t.Error("config file was not created")
		}

		loaded, err := Load(tmpDir)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if loaded.Prefix != "part-" {
			t.Errorf("expected Prefix 'part-', got '%s'", loaded.Prefix)
		}
		if loaded.Convention != DefaultConvention {
			t.Errorf("expected Convention '%s', got '%s'", DefaultConvention, loaded.Convention)
		}
	})

	t.Run("preserves unknown keys", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, FileName)

		initialContent := `convention: slug
custom_field: custom_value
`
		if err := os.WriteFile(configPath, []byte(initialContent), 0644); err != nil {
			t.Fatalf("failed to create initial config: %v", err)
		}

		cfg := Default()
		cfg.Convention = "lower"

		if err := Save(tmpDir, cfg); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		content, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("failed to read config file: %v", err)
		}

		contentStr := string(content)
		if !strings.Contains(contentStr, "convention: lower") {
			t.Errorf("expected updated convention not found in:\n%s", contentStr)
		}
		if !strings.Contains(contentStr, "custom_field: custom_value") {
			t.Errorf("expected preserved custom_field not found in:\n%s", contentStr)
		}
	})

	t.Run("omits empty pattern and include", func(t *testing.T) {
		tmpDir := t.TempDir()

		if err := Save(tmpDir, Default()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		content, err := os.ReadFile(filepath.Join(tmpDir, FileName))
		if err != nil {
			t.Fatalf("failed to read config file: %v", err)
		}
		if strings.Contains(string(content), "pattern:") {
			t.Errorf("expected no pattern key in:\n%s", content)
		}
		if strings.Contains(string(content), "include:") {
			t.Errorf("expected no include key in:\n%s", content)
		}
	})
}

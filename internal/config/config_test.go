package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// setupDirs points the global config at a temporary location and returns a
// project directory.
func setupDirs(t *testing.T) (globalDir, projectDir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not consulted on windows")
	}

	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "xdg"))
	projectDir = filepath.Join(base, "project")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatalf("Failed to create project dir: %v", err)
	}
	return filepath.Join(base, "xdg", appName), projectDir
}

func TestConfig(t *testing.T) {
	globalDir, projectDir := setupDirs(t)

	t.Run("project key", func(t *testing.T) {
		cfg, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to create config: %v", err)
		}

		if err := cfg.Set("parser.indent_unit", "2"); err != nil {
			t.Fatalf("Failed to set key: %v", err)
		}

		data, err := os.ReadFile(filepath.Join(projectDir, ProjectFile))
		if err != nil {
			t.Fatalf("Failed to read project config: %v", err)
		}

		var stored map[string]map[string]string
		if err := json.Unmarshal(data, &stored); err != nil {
			t.Fatalf("Failed to parse project config: %v", err)
		}
		if stored["parser"]["indent_unit"] != "2" {
			t.Errorf("Expected indent_unit '2', got %q", stored["parser"]["indent_unit"])
		}
	})

	t.Run("global key", func(t *testing.T) {
		cfg, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to create config: %v", err)
		}

		if !cfg.IsGlobalKey("log.level") {
			t.Fatal("Expected log.level to be a global key")
		}
		if err := cfg.Set("log.level", "debug"); err != nil {
			t.Fatalf("Failed to set key: %v", err)
		}
		if _, err := os.Stat(filepath.Join(globalDir, "config.json")); err != nil {
			t.Errorf("Expected global config file: %v", err)
		}
	})

	t.Run("load existing config", func(t *testing.T) {
		cfg, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.Get("parser.indent_unit"); got != "2" {
			t.Errorf("Expected '2', got %q", got)
		}
		if got := cfg.Get("log.level"); got != "debug" {
			t.Errorf("Expected 'debug', got %q", got)
		}

		keys := cfg.GetAllKeys()
		if len(keys) != 2 || keys[0] != "log.level" || keys[1] != "parser.indent_unit" {
			t.Errorf("Unexpected keys: %v", keys)
		}
	})

	t.Run("delete", func(t *testing.T) {
		cfg, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if err := cfg.Delete("parser.indent_unit"); err != nil {
			t.Fatalf("Failed to delete key: %v", err)
		}
		if cfg.Has("parser.indent_unit") {
			t.Error("Expected key to be removed")
		}

		reloaded, err := New(projectDir)
		if err != nil {
			t.Fatalf("Failed to reload config: %v", err)
		}
		if reloaded.Has("parser.indent_unit") {
			t.Error("Expected deletion to be persisted")
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(projectDir, ProjectFile), []byte("invalid json"), 0o644); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		if _, err := New(projectDir); err == nil {
			t.Error("Expected error for invalid JSON, got nil")
		}
	})
}

func TestConfig_NoProject(t *testing.T) {
	setupDirs(t)

	cfg, err := New("")
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}
	if err := cfg.Set("scaffold.force", "true"); err == nil {
		t.Error("Expected error when setting a project key without a project")
	}
	if err := cfg.Set("log.level", "warn"); err != nil {
		t.Errorf("Expected global key to be settable: %v", err)
	}
}

func TestConfig_EnvOverride(t *testing.T) {
	_, projectDir := setupDirs(t)

	cfg, err := New(projectDir)
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}
	if err := cfg.Set("scaffold.force", "false"); err != nil {
		t.Fatalf("Failed to set key: %v", err)
	}

	t.Setenv("TREESCAFFOLD_SCAFFOLD_FORCE", "true")
	force, err := cfg.GetBool("scaffold.force", false)
	if err != nil {
		t.Fatalf("GetBool: %v", err)
	}
	if !force {
		t.Error("Expected environment to override stored value")
	}

	t.Setenv("TREESCAFFOLD_PARSER_INDENT_UNIT", "three")
	if _, err := cfg.GetInt("parser.indent_unit", 4); err == nil {
		t.Error("Expected error for non-numeric value")
	}
}

func TestGetIntDefault(t *testing.T) {
	_, projectDir := setupDirs(t)

	cfg, err := New(projectDir)
	if err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}
	got, err := cfg.GetInt("parser.indent_unit", 4)
	if err != nil || got != 4 {
		t.Errorf("GetInt() = %d, %v; want 4, nil", got, err)
	}
}

func TestEnvName(t *testing.T) {
	tests := map[string]string{
		"log.level":          "TREESCAFFOLD_LOG_LEVEL",
		"parser.indent_unit": "TREESCAFFOLD_PARSER_INDENT_UNIT",
		"scaffold.dir-mode":  "TREESCAFFOLD_SCAFFOLD_DIR_MODE",
	}
	for key, want := range tests {
		if got := EnvName(key); got != want {
			t.Errorf("EnvName(%q) = %q, want %q", key, got, want)
		}
	}
}

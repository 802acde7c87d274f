// ABOUTME: Tests for config loading, merging, validation and GROCER_* overrides
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{DataDir: "/srv/data", Threshold: 0.4, MaxAttempts: 5}
	project := &Settings{DataDir: "./data", Mode: ModeLine}

	result := merge(global, project)

	if result.DataDir != "./data" {
		t.Errorf("DataDir = %q, want %q", result.DataDir, "./data")
	}
	if result.Threshold != 0.4 {
		t.Errorf("Threshold = %f, want 0.4", result.Threshold)
	}
	if result.MaxAttempts != 5 || result.Mode != ModeLine {
		t.Errorf("merged = %+v", result)
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.json")
	if !os.IsNotExist(err) {
		t.Errorf("expected not exist error, got %v", err)
	}
	if s == nil {
		t.Error("expected non-nil default settings")
	}
}

func TestLoadFile_ValidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"mode":"tui","max_attempts":3,"seed":9}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode != ModeTUI || s.MaxAttempts != 3 || s.Seed != 9 {
		t.Errorf("loaded = %+v", s)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"mode":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GROCER_MAX_ATTEMPTS", "")

	writeJSON(t, filepath.Join(home, ".grocer", "config.json"), `{"threshold":0.5,"mode":"line"}`)
	writeJSON(t, filepath.Join(project, ".grocer", "config.json"), `{"mode":"tui","data_dir":"${GROCER_TEST_DIR}/csv"}`)
	t.Setenv("GROCER_TEST_DIR", "/opt")

	s, err := Load(project)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Threshold != 0.5 || s.Mode != ModeTUI || s.DataDir != "/opt/csv" {
		t.Errorf("Load = %+v", s)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	// Registered so t.Setenv restores the variable after godotenv sets it.
	t.Setenv("GROCER_SEED", "")
	if err := os.Unsetenv("GROCER_SEED"); err != nil {
		t.Fatal(err)
	}

	writeJSON(t, filepath.Join(project, ".env"), "GROCER_SEED=77\n")

	s, err := Load(project)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Seed != 77 {
		t.Errorf("Seed = %d; want 77 from .env", s.Seed)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    Settings
		ok   bool
	}{
		{"zero", Settings{}, true},
		{"all set", Settings{Mode: ModeAuto, Threshold: 0.3, MaxAttempts: 10}, true},
		{"bad mode", Settings{Mode: "gui"}, false},
		{"threshold one", Settings{Threshold: 1}, false},
		{"negative threshold", Settings{Threshold: -0.1}, false},
		{"negative attempts", Settings{MaxAttempts: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.s.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidSetting) {
				t.Errorf("Validate() = %v; want ErrInvalidSetting", err)
			}
		})
	}
}

func writeJSON(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

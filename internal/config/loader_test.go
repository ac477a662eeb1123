package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("scroll:\n  initial_velocity: 3.4\n  frames_per_level: 600\nspawn:\n  max_enemies: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scroll.InitialVelocity != 3.4 {
		t.Errorf("InitialVelocity = %v, expected 3.4", cfg.Scroll.InitialVelocity)
	}
	if cfg.Spawn.MaxEnemies != 5 {
		t.Errorf("MaxEnemies = %d, expected 5", cfg.Spawn.MaxEnemies)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Load with no custom path from a directory with no local configs.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd) //nolint:errcheck

	// Home-dir config may exist on a dev machine; skip if so.
	if p := userConfigPath("config.yaml"); p != "" {
		if _, statErr := os.Stat(p); statErr == nil {
			t.Skip("user config present, embedded default not reachable")
		}
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

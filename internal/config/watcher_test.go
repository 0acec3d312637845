package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "watched.yaml")
	if err := os.WriteFile(configPath, []byte("ui:\n  theme: default\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	err := Watch(ctx, configPath, configPath, func(cfg *Config, err error) {
		if err != nil {
			t.Errorf("Unexpected reload error: %v", err)
			return
		}
		reloaded <- cfg
	})
	if err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	if err := os.WriteFile(configPath, []byte("ui:\n  theme: minimal\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.UI.Theme != "minimal" {
			t.Errorf("Expected reloaded theme minimal, got %s", cfg.UI.Theme)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Expected config reload after write")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), "/definitely/not/here/config.yaml", "", func(*Config, error) {})
	if err == nil {
		t.Error("Expected error watching a missing directory")
	}
}

func TestWatchLayeredReloadKeepsLowerFiles(t *testing.T) {
	tempDir := t.TempDir()
	projectPath := filepath.Join(tempDir, "project.yaml")
	systemPath := filepath.Join(tempDir, "system", "config.yaml")

	if err := os.MkdirAll(filepath.Dir(systemPath), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(systemPath, []byte("lookup:\n  max_images: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(projectPath, []byte("ui:\n  theme: default\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	original := ConfigPaths
	ConfigPaths = []string{projectPath, systemPath}
	t.Cleanup(func() { ConfigPaths = original })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	err := Watch(ctx, projectPath, "", func(cfg *Config, err error) {
		if err != nil {
			t.Errorf("Unexpected reload error: %v", err)
			return
		}
		reloaded <- cfg
	})
	if err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	if err := os.WriteFile(projectPath, []byte("ui:\n  theme: high-contrast\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.UI.Theme != "high-contrast" {
			t.Errorf("Expected reloaded theme high-contrast, got %s", cfg.UI.Theme)
		}
		if cfg.Lookup.MaxImages != 3 {
			t.Errorf("Expected max_images from the system file to survive reload, got %d", cfg.Lookup.MaxImages)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Expected config reload after write")
	}
}

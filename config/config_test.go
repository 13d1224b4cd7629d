// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config_test.go
// Summary: Config loading tests against a temporary config directory.

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// reset drops the loaded config so each test observes a fresh load.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	once = sync.Once{}
	system = nil
	loadErr = nil
}

func TestMissingFileIsEmptyConfig(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())
	reset()

	if err := Err(); err != nil {
		t.Fatalf("missing file reported error: %v", err)
	}
	if got := String("highlight_style", "fallback"); got != "fallback" {
		t.Fatalf("default not applied: %q", got)
	}
}

func TestLoadsValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	data := `{"highlight_style": "monokai", "archive_db": "/tmp/x.db", "depth": 3}`
	if err := os.WriteFile(filepath.Join(dir, "ansidoc.json"), []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	reset()

	if err := Err(); err != nil {
		t.Fatalf("load error: %v", err)
	}
	if got := String("highlight_style", ""); got != "monokai" {
		t.Errorf("highlight_style = %q", got)
	}
	if got := String("archive_db", ""); got != "/tmp/x.db" {
		t.Errorf("archive_db = %q", got)
	}
	// Non-string values fall through to the default.
	if got := String("depth", "d"); got != "d" {
		t.Errorf("non-string key = %q", got)
	}
}

func TestCorruptFileKeepsEmptyConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	if err := os.WriteFile(filepath.Join(dir, "ansidoc.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	reset()

	if Err() == nil {
		t.Fatal("corrupt file reported no error")
	}
	if got := String("anything", "def"); got != "def" {
		t.Fatalf("corrupt config served values: %q", got)
	}
}

func TestPathHonorsOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	path, err := Path()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if want := filepath.Join(dir, "ansidoc.json"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
}

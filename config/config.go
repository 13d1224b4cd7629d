// Copyright © 2026 Ansidoc contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration store for the ansidoc tools.
// Usage: CLI defaults (highlight style, archive path) live in ansidoc.json.

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const configName = "ansidoc.json"

// EnvConfigDir overrides the config directory, mainly for tests.
const EnvConfigDir = "ANSIDOC_CONFIG_DIR"

// Config stores configuration keys as JSON-compatible data.
type Config map[string]interface{}

var (
	mu      sync.RWMutex
	once    sync.Once
	system  Config
	loadErr error
)

// Err returns the most recent config load error.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// System returns the tool configuration (ansidoc.json). A missing file is
// not an error; it yields an empty config.
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

// String returns a string key from the config, or def when absent.
func String(key, def string) string {
	if v, ok := System()[key].(string); ok && v != "" {
		return v
	}
	return def
}

// Path returns the config file location.
func Path() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName), nil
}

func configRoot() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "ansidoc"), nil
}

func initStore() {
	system = make(Config)
	path, err := Path()
	if err != nil {
		loadErr = err
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Config: Failed to read %s: %v", path, err)
			loadErr = err
		}
		return
	}
	if err := json.Unmarshal(data, &system); err != nil {
		log.Printf("Config: Failed to parse %s: %v", path, err)
		loadErr = err
		system = make(Config)
	}
}

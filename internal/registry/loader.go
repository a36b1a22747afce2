// Package registry loads the set of event kinds an application declares.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"evtrack/pkg/types"
)

// LoadDir scans a directory for *.yaml files and merges the event kinds they
// declare. Each file holds a list of {name, description} entries. Kinds are
// returned in scan order; a duplicate name keeps the first declaration.
func LoadDir(dir string) ([]types.EventKind, error) {
	base, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var kinds []types.EventKind
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		b, err := os.ReadFile(filepath.Join(abs, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var declared []types.EventKind
		if err := yaml.Unmarshal(b, &declared); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		for _, k := range declared {
			if k.Name == "" || seen[k.Name] {
				continue
			}
			seen[k.Name] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// Declared reports whether name appears in kinds.
func Declared(kinds []types.EventKind, name string) bool {
	for _, k := range kinds {
		if k.Name == name {
			return true
		}
	}
	return false
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// Package persistence stores named vector snapshots as TOML files under a base directory
package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/vector/vector"
)

const fileExt = ".toml"

// ErrInvalidName is returned for names that would escape the base directory
var ErrInvalidName = errors.New("persistence: invalid snapshot name")

// Manager handles save/load of vector snapshots
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a snapshot file
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name+fileExt)
}

// Exists checks if a snapshot file exists
func (m *Manager) Exists(name string) bool {
	if validateName(name) != nil {
		return false
	}
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save writes the vector's snapshot to disk, replacing any previous one
func (m *Manager) Save(name string, v *vector.Vector) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return err
	}

	data, err := v.MarshalTOML()
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	return os.WriteFile(m.FilePath(name), data, 0644)
}

// Load reads a snapshot from disk; kinds resolve non-base kind names
func (m *Manager) Load(name string, kinds ...vector.Kind) (*vector.Vector, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(m.FilePath(name))
	if err != nil {
		return nil, err
	}

	v, err := vector.UnmarshalTOML(data, kinds...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return v, nil
}

// Remove deletes a snapshot; removing a missing snapshot is not an error
func (m *Manager) Remove(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	err := os.Remove(m.FilePath(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// List returns the stored snapshot names in sorted order
// A missing base directory yields an empty list
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.basePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	return nil
}

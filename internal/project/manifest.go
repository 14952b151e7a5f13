// Package project locates and decodes the rill.toml project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName — имя файла манифеста в корне проекта.
const ManifestName = "rill.toml"

// Manifest couples the decoded config with the location it came from.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML structure of rill.toml.
type Config struct {
	Package      PackageConfig         `toml:"package"`
	Dependencies map[string]Dependency `toml:"dependencies"`
}

// PackageConfig is the [package] table.
type PackageConfig struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Description string   `toml:"description"`
	License     string   `toml:"license"`
	Authors     []string `toml:"authors"`
}

// Dependency is one entry of the [dependencies] table. Принимает обе
// формы: строку версии (`foo = "1.2"`) и таблицу с путём
// (`foo = { path = "../foo" }`).
type Dependency struct {
	Version string
	Path    string
}

// UnmarshalTOML implements toml.Unmarshaler for the two dependency forms.
func (d *Dependency) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case string:
		d.Version = val
		return nil
	case map[string]any:
		if p, ok := val["path"].(string); ok {
			d.Path = p
		}
		if ver, ok := val["version"].(string); ok {
			d.Version = ver
		}
		if d.Path == "" && d.Version == "" {
			return errors.New("dependency table needs `version` or `path`")
		}
		return nil
	default:
		return fmt.Errorf("unsupported dependency value %T", v)
	}
}

// Find walks up from startDir to locate rill.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing rill.toml, if any.
func FindRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := Find(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// Load walks up from startDir, decodes the nearest manifest and validates
// the required fields.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := decodeConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func decodeConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}

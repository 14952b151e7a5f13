package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InitResult перечисляет созданные при инициализации файлы.
type InitResult struct {
	Root        string
	Manifest    string
	Main        string
	CreatedMain bool
}

// Init scaffolds a new project at target: creates the directory when
// missing, writes rill.toml and, unless one exists, main.rl. Повторная
// инициализация поверх существующего манифеста — ошибка.
func Init(target string) (*InitResult, error) {
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return nil, err
		}
	} else if !st.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "rill-project"
	}

	manifestPath := filepath.Join(target, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return nil, fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(DefaultManifest(name)), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	result := &InitResult{
		Root:     target,
		Manifest: manifestPath,
		Main:     filepath.Join(target, "main.rl"),
	}
	if _, err := os.Stat(result.Main); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(result.Main, []byte(DefaultMain()), 0o600); err != nil {
			return nil, fmt.Errorf("failed to write main.rl: %w", err)
		}
		result.CreatedMain = true
	}
	return result, nil
}

// DefaultManifest returns a minimal TOML manifest for a new project.
func DefaultManifest(name string) string {
	return fmt.Sprintf(`# Rill project manifest
[package]
name = "%s"
version = "0.1.0"

[dependencies]
`, name)
}

// DefaultMain returns the placeholder entry point for a new project.
func DefaultMain() string {
	return `//! Entry point of the project.

/// Greets the world.
fun greeting(): string {
    return "Hello, rill!";
}

fun main() {
    var message = greeting();
    print(message);
}
`
}

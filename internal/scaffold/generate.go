// Where: internal/scaffold/generate.go
// What: Materialize the project tree on disk.
// Why: Turn the declarative Spec into directories and files under root/name.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyskel/pyskel/internal/infra/fileops"
)

// Options control generation behavior.
type Options struct {
	// Force overwrites files in a non-empty target instead of refusing.
	Force bool
}

// Generate creates the project tree at root/name and returns the project
// directory. The root is created if missing. A non-empty target is refused
// with ErrTargetExists unless opts.Force is set. Generation stops at the
// first failure; a partial tree is left in place.
func Generate(root, name string, opts Options) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	projectDir := filepath.Join(root, name)
	if !opts.Force {
		nonEmpty, err := dirNonEmpty(projectDir)
		if err != nil {
			return "", fmt.Errorf("inspect %s: %w", projectDir, err)
		}
		if nonEmpty {
			return "", fmt.Errorf("%s: %w", projectDir, ErrTargetExists)
		}
	}

	if err := fileops.EnsureDir(projectDir); err != nil {
		return "", fmt.Errorf("create %s: %w", projectDir, err)
	}

	data := map[string]any{"ProjectName": name}
	for _, entry := range Spec {
		if err := materialize(projectDir, entry, data); err != nil {
			return "", err
		}
	}
	return projectDir, nil
}

// ValidateName rejects names that cannot serve as a single directory
// component.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, os.PathSeparator) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func materialize(projectDir string, entry Entry, data map[string]any) error {
	dest := filepath.Join(projectDir, filepath.FromSlash(entry.Path))

	switch entry.Kind {
	case dirEntry:
		if err := fileops.EnsureDir(dest); err != nil {
			return fmt.Errorf("create %s: %w", entry.Path, err)
		}
	case staticEntry:
		payload, err := readStatic(entry.Source)
		if err != nil {
			return fmt.Errorf("%s: %w", entry.Path, err)
		}
		if err := fileops.WriteFile(dest, string(payload)); err != nil {
			return fmt.Errorf("write %s: %w", entry.Path, err)
		}
	case templateEntry:
		content, err := renderTemplate(entry.Source, data)
		if err != nil {
			return fmt.Errorf("%s: %w", entry.Path, err)
		}
		if err := fileops.WriteFile(dest, content); err != nil {
			return fmt.Errorf("write %s: %w", entry.Path, err)
		}
	}
	return nil
}

// dirNonEmpty reports whether path is an existing directory with at least
// one entry. A missing path is not an error.
func dirNonEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Where: internal/app/new.go
// What: New command helpers.
// Why: Resolve inputs and drive project generation.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pyskel/pyskel/internal/infra/config"
	"github.com/pyskel/pyskel/internal/infra/fileops"
	"github.com/pyskel/pyskel/internal/scaffold"
	"github.com/pyskel/pyskel/internal/ui"
)

func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	root, name, err := resolveInputs(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	target := filepath.Join(root, name)
	if cli.New.Force && !cli.New.Yes && fileops.FileOrDirExists(target) {
		confirmed, err := confirmOverwrite(target, deps)
		if err != nil {
			return exitWithError(out, err)
		}
		if !confirmed {
			console.Info("Aborted.")
			return 1
		}
	}

	projectDir, err := scaffold.Generate(root, name, scaffold.Options{Force: cli.New.Force})
	if err != nil {
		return exitWithError(out, err)
	}

	console.Success("Project generated at: " + projectDir)

	if err := registerProject(name, projectDir, deps); err != nil {
		console.Warn(fmt.Sprintf("could not update project registry: %v", err))
	}
	return 0
}

// resolveInputs returns the destination root and project name. Flags and
// env-tagged defaults come in through the parsed CLI; missing values are
// prompted for on a terminal and rejected otherwise.
func resolveInputs(cli CLI, deps Dependencies) (string, string, error) {
	root := strings.TrimSpace(cli.Path)
	name := strings.TrimSpace(cli.Name)

	if root == "" {
		value, err := promptMissing(deps, "Destination root directory", pathSuggestions())
		if err != nil {
			return "", "", fmt.Errorf("destination path is required (--path): %w", err)
		}
		root = value
	}
	if name == "" {
		value, err := promptMissing(deps, "Project name", nil)
		if err != nil {
			return "", "", fmt.Errorf("project name is required (--name): %w", err)
		}
		name = value
	}
	return root, name, nil
}

var errNoTerminal = fmt.Errorf("no terminal available for prompting")

func promptMissing(deps Dependencies, title string, suggestions []string) (string, error) {
	if deps.Prompter == nil || !isTerminal(deps) {
		return "", errNoTerminal
	}
	value, err := deps.Prompter.Input(title, suggestions)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty input")
	}
	return value, nil
}

func confirmOverwrite(target string, deps Dependencies) (bool, error) {
	if deps.Prompter == nil || !isTerminal(deps) {
		// Non-interactive --force proceeds; --yes exists for scripts that
		// want the intent spelled out.
		return true, nil
	}
	return deps.Prompter.Confirm(fmt.Sprintf("Overwrite files under %s?", target))
}

func pathSuggestions() []string {
	wd, err := os.Getwd()
	if err != nil {
		return nil
	}
	return []string{wd}
}

func isTerminal(deps Dependencies) bool {
	if deps.IsTerminal == nil {
		return false
	}
	return deps.IsTerminal()
}

// registerProject records a generated project in the global registry.
// It persists its path and last-generated timestamp.
func registerProject(name, projectDir string, deps Dependencies) error {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return err
	}

	abs := projectDir
	if resolved, err := filepath.Abs(projectDir); err == nil {
		abs = resolved
	}

	cfg.Projects[name] = config.ProjectEntry{
		Path:          abs,
		LastGenerated: now(deps).Format(time.RFC3339),
	}
	return config.SaveGlobalConfig(path, cfg)
}

func now(deps Dependencies) time.Time {
	if deps.Now != nil {
		return deps.Now()
	}
	return time.Now()
}

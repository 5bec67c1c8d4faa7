// Where: cmd/pyskel/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pyskel/pyskel/internal/app"
	"github.com/pyskel/pyskel/internal/interaction"
)

var stdinFd = func() uintptr { return os.Stdin.Fd() }

// buildDependencies constructs all runtime dependencies required by the CLI.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:      os.Stdout,
		Prompter: interaction.HuhPrompter{},
		Now:      time.Now,
		IsTerminal: func() bool {
			fd := stdinFd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// Where: internal/app/list.go
// What: List command.
// Why: Show generated projects from the global registry.
package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/pyskel/pyskel/internal/infra/config"
	"github.com/pyskel/pyskel/internal/ui"
)

func runList(_ CLI, _ Dependencies, out io.Writer) int {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return exitWithError(out, err)
	}

	if len(cfg.Projects) == 0 {
		fmt.Fprintln(out, "no projects generated yet")
		return 0
	}

	names := make([]string, 0, len(cfg.Projects))
	for name := range cfg.Projects {
		names = append(names, name)
	}
	sort.Strings(names)

	console := ui.New(out)
	console.Header("📦", "Generated projects:")
	for _, name := range names {
		console.Item(name, cfg.Projects[name].Path)
	}
	return 0
}

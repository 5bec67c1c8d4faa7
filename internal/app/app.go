// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pyskel/pyskel/internal/interaction"
	"github.com/pyskel/pyskel/internal/meta"
	"github.com/pyskel/pyskel/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	Out        io.Writer
	Prompter   interaction.Prompter
	Now        func() time.Time
	IsTerminal func() bool
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
// The "new" command is the default, so `pyskel --path DIR --name NAME`
// generates a project without naming a command.
type CLI struct {
	Path    string     `short:"p" env:"PYSKEL_PATH" placeholder:"DIR" help:"Destination root directory (created if absent)"`
	Name    string     `short:"n" env:"PYSKEL_NAME" placeholder:"NAME" help:"Project name, becomes the top-level directory name"`
	EnvFile string     `name:"env-file" help:"Path to .env file"`
	New     NewCmd     `cmd:"" default:"1" help:"Generate a new project skeleton"`
	List    ListCmd    `cmd:"" help:"List generated projects"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type NewCmd struct {
	Force bool `short:"f" help:"Overwrite files when the target directory is not empty"`
	Yes   bool `short:"y" help:"Skip confirmation prompt for --force"`
}

type (
	ListCmd    struct{}
	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	// Load env file so kong env: defaults resolve during parsing.
	loadEnvFile(envFileArg(args), out)

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Generate a DDD FastAPI project skeleton."),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	switch ctx.Command() {
	case "new":
		return runNew(cli, deps, out)
	case "list":
		return runList(cli, deps, out)
	case "version":
		fmt.Fprintln(out, version.GetVersion())
		return 0
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

// loadEnvFile loads the explicit env file, or .env in the current directory
// when present. Failures are warnings: env defaults are a convenience.
func loadEnvFile(path string, out io.Writer) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", path, err)
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}
}

// envFileArg extracts the --env-file value from raw arguments. It runs
// before kong parsing because the env file must be loaded first for
// env-tagged flags to pick up its values.
func envFileArg(args []string) string {
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
		if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return value
		}
	}
	return ""
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}

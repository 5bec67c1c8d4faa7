// Where: cmd/pyskel/main.go
// What: CLI entrypoint.
// Why: Execute pyskel commands with configured dependencies.
package main

import (
	"os"

	"github.com/pyskel/pyskel/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}

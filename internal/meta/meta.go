// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep brand identity in one place.
package meta

const (
	// Project Identity
	AppName   = "pyskel"
	EnvPrefix = "PYSKEL"

	// Directory Layout
	HomeDir = ".pyskel"
)

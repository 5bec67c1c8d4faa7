// Where: internal/scaffold/errors.go
// What: Error taxonomy for project generation.
// Why: Let callers distinguish user mistakes from filesystem failures.
package scaffold

import "errors"

var (
	// ErrInvalidName reports an empty project name or one containing
	// path separators.
	ErrInvalidName = errors.New("invalid project name")

	// ErrTargetExists reports a non-empty target directory that would be
	// overwritten without Force.
	ErrTargetExists = errors.New("target directory exists and is not empty")
)

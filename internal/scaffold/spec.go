// Where: internal/scaffold/spec.go
// What: Declarative description of the generated project tree.
// Why: Keep the directory and file set in one ordered, read-only table.
package scaffold

type entryKind int

const (
	dirEntry entryKind = iota
	staticEntry
	templateEntry
)

// Entry describes one path of the generated tree. Path is relative to the
// project root and uses forward slashes; Source names the embedded payload
// or template backing a file entry.
type Entry struct {
	Kind   entryKind
	Path   string
	Source string
}

func dir(path string) Entry {
	return Entry{Kind: dirEntry, Path: path}
}

func static(path, source string) Entry {
	return Entry{Kind: staticEntry, Path: path, Source: source}
}

func templated(path, source string) Entry {
	return Entry{Kind: templateEntry, Path: path, Source: source}
}

// packageDirs are the Python package directories; each is seeded with an
// __init__.py so imports resolve without installation.
var packageDirs = []string{
	"src",
	"src/api",
	"src/api/v1",
	"src/api/v1/endpoints",
	"src/application",
	"src/domain",
	"src/infrastructure",
	"tests/api",
	"tests/application",
	"tests/domain",
	"tests/infrastructure",
}

// Spec is the full tree in generation order: package directories first,
// then root configuration files, then application code and tests.
var Spec = buildSpec()

func buildSpec() []Entry {
	entries := make([]Entry, 0, 2*len(packageDirs)+20)
	for _, d := range packageDirs {
		entries = append(entries, dir(d))
		entries = append(entries, static(d+"/__init__.py", "init.py"))
	}

	entries = append(entries,
		templated("pyproject.toml", "pyproject.toml.tmpl"),
		static("requirements.txt", "requirements.txt"),
		static("requirements-tests.txt", "requirements-tests.txt"),
		static("Dockerfile", "Dockerfile"),
		templated("infra/docker-compose.yml", "docker-compose.yml.tmpl"),
		static("Makefile", "Makefile"),
		static(".gitignore", "gitignore"),
		static("pytest.ini", "pytest.ini"),
		static(".importlinter", "importlinter"),
		static("ruff.toml", "ruff.toml"),
		static(".pre-commit-config.yaml", "pre-commit-config.yaml"),
		static(".env.example", "env.example"),
		static(".env", "env.example"),

		templated("src/main.py", "main.py.tmpl"),
		static("src/api/v1/dependencies.py", "dependencies.py"),
		static("src/api/v1/schemas.py", "schemas.py"),
		static("src/api/v1/endpoints/health.py", "health.py"),
		static("src/config.py", "config.py"),
		static("src/.env", "env.example"),

		static("tests/api/test_health.py", "test_health.py"),
	)
	return entries
}

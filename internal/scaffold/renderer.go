// Where: internal/scaffold/renderer.go
// What: Render templated files and read static payloads from embedded assets.
// Why: Keep all generated content owned by the scaffold package.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templateCache sync.Map

// renderTemplate executes the named embedded template against the given
// placeholder mapping. Unresolved placeholders are fatal.
func renderTemplate(name string, data map[string]any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

func readStatic(name string) ([]byte, error) {
	payload, err := staticFS.ReadFile("static/" + name)
	if err != nil {
		return nil, fmt.Errorf("read payload %s: %w", name, err)
	}
	return payload, nil
}

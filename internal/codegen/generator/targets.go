package generator

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/Alia5/rivegen/internal/codegen/common"
	"github.com/Alia5/rivegen/internal/codegen/render"
)

//go:embed templates/*
var templateFS embed.FS

// Target is an output language.
type Target struct {
	Name string
	// Templates maps engine names to embedded default templates. A target
	// without one for the chosen engine needs a custom template.
	Templates map[string]string
}

var targets = map[string]Target{
	"dart": {
		Name: "dart",
		Templates: map[string]string{
			render.EngineMustache: "templates/dart.mustache",
			render.EngineTemplate: "templates/dart.gotmpl",
		},
	},
	"js": {Name: "js"},
}

// Languages lists the supported target languages, sorted.
func Languages() []string {
	out := make([]string, 0, len(targets))
	for k := range targets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LookupTarget resolves a language name case-insensitively.
func LookupTarget(language string) (Target, error) {
	t, ok := targets[strings.ToLower(language)]
	if !ok {
		return Target{}, fmt.Errorf("unsupported language '%s' (supported: %v)", language, Languages())
	}
	return t, nil
}

// Reserved is the reserved-word table for identifiers in this target.
func (t Target) Reserved() common.Reserved {
	return common.ReservedWords(t.Name)
}

// DefaultTemplate returns the embedded template for engine.
func (t Target) DefaultTemplate(engine string) (string, error) {
	path, ok := t.Templates[engine]
	if !ok {
		return "", fmt.Errorf("no default %s template for language '%s', pass --template", engine, t.Name)
	}
	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read embedded template %s: %w", path, err)
	}
	return string(data), nil
}

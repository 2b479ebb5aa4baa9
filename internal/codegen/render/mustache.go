package render

import (
	"fmt"

	"github.com/cbroglie/mustache"

	"github.com/Alia5/rivegen/internal/codegen/meta"
	"github.com/Alia5/rivegen/internal/codegen/templatedata"
)

// mustacheEngine renders logic-less templates. Like any mustache renderer,
// double-brace tags are HTML-escaped; use triple braces for raw values.
type mustacheEngine struct{}

func (mustacheEngine) Name() string { return EngineMustache }

func (mustacheEngine) Project(assets []*meta.SourceAsset, h templatedata.Header) templatedata.Tree {
	return templatedata.Logicless(assets, h)
}

func (mustacheEngine) Render(tmpl string, data templatedata.Tree) (string, error) {
	t, err := mustache.ParseString(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse mustache template: %w", err)
	}
	out, err := t.Render(map[string]any(data))
	if err != nil {
		return "", fmt.Errorf("render mustache template: %w", err)
	}
	return out, nil
}

package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Alia5/rivegen/internal/codegen/common"
	"github.com/Alia5/rivegen/internal/codegen/meta"
	"github.com/Alia5/rivegen/internal/codegen/templatedata"
)

// goTemplateEngine renders text/template templates against the expressive
// tree. Missing keys are errors.
type goTemplateEngine struct {
	caser *common.Caser
}

func (e *goTemplateEngine) Name() string { return EngineTemplate }

func (e *goTemplateEngine) Project(assets []*meta.SourceAsset, h templatedata.Header) templatedata.Tree {
	return templatedata.Expressive(assets, h)
}

func (e *goTemplateEngine) funcs() template.FuncMap {
	return template.FuncMap{
		"camel":  e.caser.Camel,
		"pascal": e.caser.Pascal,
		"snake":  e.caser.Snake,
		"kebab":  e.caser.Kebab,
		"escape": common.Escape,
		"lb":     func() string { return "{" },
		"rb":     func() string { return "}" },
	}
}

func (e *goTemplateEngine) Render(tmpl string, data templatedata.Tree) (string, error) {
	t, err := template.New("output").
		Funcs(e.funcs()).
		Option("missingkey=error").
		Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return b.String(), nil
}

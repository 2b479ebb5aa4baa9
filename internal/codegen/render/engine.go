// Package render turns a projected tree and a template text into output.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Alia5/rivegen/internal/codegen/common"
	"github.com/Alia5/rivegen/internal/codegen/meta"
	"github.com/Alia5/rivegen/internal/codegen/templatedata"
)

// Engine pairs a template language with the projection it consumes.
type Engine interface {
	Name() string
	// Project builds the tree this engine renders.
	Project(assets []*meta.SourceAsset, h templatedata.Header) templatedata.Tree
	Render(tmpl string, data templatedata.Tree) (string, error)
}

const (
	EngineMustache = "mustache"
	EngineTemplate = "template"
)

type engineFactory func(caser *common.Caser) Engine

var engines = map[string]engineFactory{
	EngineMustache: func(*common.Caser) Engine { return mustacheEngine{} },
	EngineTemplate: func(c *common.Caser) Engine { return &goTemplateEngine{caser: c} },
}

// Names lists the registered engines, sorted.
func Names() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// New returns the engine registered under name. caser backs the case
// helpers of engines that expose them; nil uses a caser without reserved
// words.
func New(name string, caser *common.Caser) (Engine, error) {
	factory, ok := engines[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported engine '%s' (supported: %v)", name, Names())
	}
	if caser == nil {
		caser = common.NewCaser(common.Reserved{})
	}
	return factory(caser), nil
}

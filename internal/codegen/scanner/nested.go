package scanner

import (
	"reflect"
	"strings"

	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
	"github.com/Alia5/rivegen/internal/codegen/meta"
)

// maxNestingDepth bounds traversal for artboard types that cannot be used
// as map keys and therefore cannot be tracked for cycles.
const maxNestingDepth = 64

// NestedTextRuns walks the nested artboards of ab depth-first and returns
// every named text run found below it, paired with its path. Unnamed nested
// artboards are walked but add no path segment. The second result reports
// whether a nesting cycle was cut.
func NestedTextRuns(ab assetgraph.Artboard) ([]meta.NestedTextRun, bool) {
	w := &nestedWalker{onPath: map[assetgraph.Artboard]bool{}}
	w.enter(ab)
	w.walkChildren(ab, "")
	return w.out, w.cut
}

type nestedWalker struct {
	onPath map[assetgraph.Artboard]bool
	depth  int
	out    []meta.NestedTextRun
	cut    bool
}

func (w *nestedWalker) walkChildren(ab assetgraph.Artboard, path string) {
	for _, n := range ab.NestedArtboards() {
		if n == nil {
			continue
		}
		child := n.Artboard()
		if child == nil {
			continue
		}
		childPath := path
		if name := n.Name(); name != "" {
			if childPath == "" {
				childPath = name
			} else {
				childPath = strings.Join([]string{childPath, name}, "/")
			}
		}
		w.walk(child, childPath)
	}
}

func (w *nestedWalker) walk(ab assetgraph.Artboard, path string) {
	if !w.enter(ab) {
		w.cut = true
		return
	}
	defer w.leave(ab)

	if path != "" {
		for _, tr := range ab.TextRuns() {
			if tr != nil && tr.Name() != "" {
				w.out = append(w.out, meta.NestedTextRun{Name: tr.Name(), Path: path})
			}
		}
	}
	w.walkChildren(ab, path)
}

func (w *nestedWalker) enter(ab assetgraph.Artboard) bool {
	if w.depth >= maxNestingDepth {
		return false
	}
	if reflect.TypeOf(ab).Comparable() {
		if w.onPath[ab] {
			return false
		}
		w.onPath[ab] = true
	}
	w.depth++
	return true
}

func (w *nestedWalker) leave(ab assetgraph.Artboard) {
	w.depth--
	if reflect.TypeOf(ab).Comparable() {
		delete(w.onPath, ab)
	}
}

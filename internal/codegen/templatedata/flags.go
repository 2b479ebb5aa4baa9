// Package templatedata projects normalized assets into the generic trees
// consumed by the render engines.
//
// Two projections exist. Logicless targets engines without expressions: it
// relies on list sections, positional flags and keys that are only present
// when set. Expressive carries the same content with every key present, list
// indices and a flatter property layout for engines that can compare values.
package templatedata

import (
	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
	"github.com/Alia5/rivegen/internal/codegen/meta"
)

// Tree is the generic, JSON-compatible structure handed to an engine.
type Tree map[string]any

// DefaultGeneratedFileName is used when Header.GeneratedFileName is empty.
const DefaultGeneratedFileName = "rive_generated"

// Header holds the root scalars of a tree.
type Header struct {
	GeneratedFileName string
	GeneratorVersion  string
}

func (h Header) apply(t Tree) {
	name := h.GeneratedFileName
	if name == "" {
		name = DefaultGeneratedFileName
	}
	t["generated_file_name"] = name
	t["generator_version"] = h.GeneratorVersion
}

// Flags are the aggregate booleans templates use to decide which
// convenience code is worth emitting.
type Flags struct {
	Artboards     int
	Animations    int
	StateMachines int
	HasViewModel  bool
}

// FileFlags aggregates over every artboard of a. HasViewModel is set when
// the file declares any view model.
func FileFlags(a *meta.SourceAsset) Flags {
	f := Flags{Artboards: len(a.Artboards), HasViewModel: len(a.ViewModels) > 0}
	for _, ab := range a.Artboards {
		f.Animations += len(ab.Animations)
		f.StateMachines += len(ab.StateMachines)
	}
	return f
}

// ArtboardFlags treats ab as a file holding a single artboard.
func ArtboardFlags(ab meta.Artboard) Flags {
	return Flags{
		Artboards:     1,
		Animations:    len(ab.Animations),
		StateMachines: len(ab.StateMachines),
		HasViewModel:  ab.HasViewModel,
	}
}

func (f Flags) MultipleArtboards() bool     { return f.Artboards > 1 }
func (f Flags) MultipleAnimations() bool    { return f.Animations > 1 }
func (f Flags) HasStateMachines() bool      { return f.StateMachines > 0 }
func (f Flags) MultipleStateMachines() bool { return f.StateMachines > 1 }

func (f Flags) HasMetadata() bool {
	return f.MultipleArtboards() || f.MultipleAnimations() || f.MultipleStateMachines()
}

// TypeSafeSwitching reports whether more than one concrete choice exists on
// some axis: artboards, state machines, or animations when nothing else
// drives playback.
func (f Flags) TypeSafeSwitching() bool {
	return f.MultipleArtboards() ||
		f.MultipleStateMachines() ||
		(!f.HasViewModel && !f.HasStateMachines() && f.MultipleAnimations())
}

func (f Flags) applyFile(t Tree) {
	t["has_multiple_artboards"] = f.MultipleArtboards()
	t["has_multiple_animations"] = f.MultipleAnimations()
	t["has_state_machines"] = f.HasStateMachines()
	t["has_multiple_state_machines"] = f.MultipleStateMachines()
	t["has_metadata"] = f.HasMetadata()
	t["has_view_model"] = f.HasViewModel
	t["has_type_safe_switching"] = f.TypeSafeSwitching()
	t["artboard_count"] = f.Artboards
	t["total_animation_count"] = f.Animations
	t["total_state_machine_count"] = f.StateMachines
}

// applyArtboard prefixes the aggregates with "artboard_" so that a
// logic-less section over artboards still resolves the file-level keys of
// the enclosing file. Only has_view_model is shadowed on purpose.
func (f Flags) applyArtboard(t Tree) {
	t["has_view_model"] = f.HasViewModel
	t["artboard_has_multiple_animations"] = f.MultipleAnimations()
	t["artboard_has_state_machines"] = f.HasStateMachines()
	t["artboard_has_multiple_state_machines"] = f.MultipleStateMachines()
	t["artboard_has_metadata"] = f.HasMetadata()
	t["artboard_has_type_safe_switching"] = f.TypeSafeSwitching()
	t["animation_count"] = f.Animations
	t["state_machine_count"] = f.StateMachines
}

// typeFlags are the per-kind booleans of a property type. Both asset image
// spellings count as images.
func typeFlags(t assetgraph.DataType) Tree {
	return Tree{
		"is_view_model": t == assetgraph.DataViewModel,
		"is_enum":       t == assetgraph.DataEnum,
		"is_string":     t == assetgraph.DataString,
		"is_number":     t == assetgraph.DataNumber,
		"is_integer":    t == assetgraph.DataInteger,
		"is_boolean":    t == assetgraph.DataBoolean,
		"is_color":      t == assetgraph.DataColor,
		"is_list":       t == assetgraph.DataList,
		"is_image":      t == assetgraph.DataAssetImage,
		"is_trigger":    t == assetgraph.DataTrigger,
	}
}

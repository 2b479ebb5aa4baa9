package templatedata

import (
	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
	"github.com/Alia5/rivegen/internal/codegen/meta"
)

// Expressive builds the tree for engines that evaluate expressions. Every
// key is always present, list items carry "index" next to "last" and
// "is_first", "property_type" is the type name with the type flags and
// backing names set on the property itself, and each file has a "defaults"
// object.
func Expressive(assets []*meta.SourceAsset, h Header) Tree {
	root := Tree{}
	h.apply(root)

	files := make([]Tree, 0, len(assets))
	for i, a := range assets {
		t := expressiveFile(a)
		putIndex(t, i, len(assets))
		files = append(files, t)
	}
	root["riv_files"] = files
	return root
}

func putIndex(t Tree, i, n int) {
	putPosition(t, i, n)
	t["index"] = i
}

func expressiveFile(a *meta.SourceAsset) Tree {
	t := fileFields(a)
	FileFlags(a).applyFile(t)
	t["defaults"] = Tree{
		"has_artboard":        a.Defaults.HasArtboard,
		"artboard_name":       a.Defaults.Artboard.Name,
		"artboard_camel_case": a.Defaults.Artboard.Camel,
		"state_machine_name":  a.Defaults.StateMachine,
		"view_model_name":     a.Defaults.ViewModel,
	}

	enums := make([]Tree, 0, len(a.Enums))
	for i, e := range a.Enums {
		et := enumFields(e)
		putIndex(et, i, len(a.Enums))
		values := make([]Tree, 0, len(e.Values))
		for j, v := range e.Values {
			vt := enumValueFields(v)
			vt["enum_value_needs_explicit_value"] = v.NeedsExplicitValue
			putIndex(vt, j, len(e.Values))
			values = append(values, vt)
		}
		et["enum_values"] = values
		enums = append(enums, et)
	}
	t["enums"] = enums

	viewModels := make([]Tree, 0, len(a.ViewModels))
	for i, vm := range a.ViewModels {
		vt := viewModelFields(vm)
		putIndex(vt, i, len(a.ViewModels))
		props := make([]Tree, 0, len(vm.Properties))
		for j, p := range vm.Properties {
			pt := expressiveProperty(p)
			putIndex(pt, j, len(vm.Properties))
			props = append(props, pt)
		}
		vt["properties"] = props
		viewModels = append(viewModels, vt)
	}
	t["view_models"] = viewModels

	assets := make([]Tree, 0, len(a.Assets))
	for i, ref := range a.Assets {
		at := assetFields(ref)
		putIndex(at, i, len(a.Assets))
		assets = append(assets, at)
	}
	t["assets"] = assets

	artboards := make([]Tree, 0, len(a.Artboards))
	for i, ab := range a.Artboards {
		at := expressiveArtboard(ab)
		putIndex(at, i, len(a.Artboards))
		artboards = append(artboards, at)
	}
	t["artboards"] = artboards
	return t
}

func expressiveProperty(p meta.PropertyDef) Tree {
	t := propertyFields(p)
	for k, v := range propertyTypeFields(p) {
		t[k] = v
	}
	t["property_type"] = p.Type.String()
	t["default_value"] = p.DefaultValue

	var enumDefault, enumCamel string
	if p.Type == assetgraph.DataEnum {
		enumDefault, enumCamel = p.DefaultValue, p.DefaultCamel
	}
	t["enum_default_value"] = enumDefault
	t["enum_default_value_camel"] = enumCamel
	return t
}

func expressiveArtboard(ab meta.Artboard) Tree {
	t := artboardFields(ab)
	ArtboardFlags(ab).applyArtboard(t)

	animations := make([]Tree, 0, len(ab.Animations))
	for i, anim := range ab.Animations {
		at := animationFields(anim)
		putIndex(at, i, len(ab.Animations))
		animations = append(animations, at)
	}
	t["animations"] = animations

	machines := make([]Tree, 0, len(ab.StateMachines))
	for i, sm := range ab.StateMachines {
		st := stateMachineFields(sm, ab)
		putIndex(st, i, len(ab.StateMachines))
		inputs := make([]Tree, 0, len(sm.Inputs))
		for j, in := range sm.Inputs {
			it := inputFields(in)
			putIndex(it, j, len(sm.Inputs))
			inputs = append(inputs, it)
		}
		st["inputs"] = inputs
		machines = append(machines, st)
	}
	t["state_machines"] = machines

	runs := make([]Tree, 0, len(ab.TextRuns))
	for i, tr := range ab.TextRuns {
		rt := textRunFields(tr)
		putIndex(rt, i, len(ab.TextRuns))
		runs = append(runs, rt)
	}
	t["text_value_runs"] = runs

	nested := make([]Tree, 0, len(ab.NestedTextRuns))
	for i, n := range ab.NestedTextRuns {
		nt := nestedTextRunFields(n)
		putIndex(nt, i, len(ab.NestedTextRuns))
		nested = append(nested, nt)
	}
	t["nested_text_value_runs"] = nested
	return t
}

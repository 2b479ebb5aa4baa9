package templatedata

import (
	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
	"github.com/Alia5/rivegen/internal/codegen/meta"
)

// Logicless builds the tree for engines without expressions. Every list
// item carries "last" and "is_first". Property type details live in a nested
// "property_type" section, and optional values are omitted when empty so a
// section on them can test for presence.
func Logicless(assets []*meta.SourceAsset, h Header) Tree {
	root := Tree{}
	h.apply(root)

	files := make([]Tree, 0, len(assets))
	for i, a := range assets {
		t := logiclessFile(a)
		putPosition(t, i, len(assets))
		files = append(files, t)
	}
	root["riv_files"] = files
	return root
}

func logiclessFile(a *meta.SourceAsset) Tree {
	t := fileFields(a)
	FileFlags(a).applyFile(t)

	enums := make([]Tree, 0, len(a.Enums))
	for i, e := range a.Enums {
		et := enumFields(e)
		putPosition(et, i, len(a.Enums))
		values := make([]Tree, 0, len(e.Values))
		for j, v := range e.Values {
			vt := enumValueFields(v)
			if v.NeedsExplicitValue {
				vt["enum_value_needs_explicit_value"] = true
			}
			putPosition(vt, j, len(e.Values))
			values = append(values, vt)
		}
		et["enum_values"] = values
		enums = append(enums, et)
	}
	t["enums"] = enums

	viewModels := make([]Tree, 0, len(a.ViewModels))
	for i, vm := range a.ViewModels {
		vt := viewModelFields(vm)
		putPosition(vt, i, len(a.ViewModels))
		props := make([]Tree, 0, len(vm.Properties))
		for j, p := range vm.Properties {
			pt := propertyFields(p)
			pt["property_type"] = logiclessPropertyType(p)
			putPosition(pt, j, len(vm.Properties))
			props = append(props, pt)
		}
		vt["properties"] = props
		viewModels = append(viewModels, vt)
	}
	t["view_models"] = viewModels

	assets := make([]Tree, 0, len(a.Assets))
	for i, ref := range a.Assets {
		at := assetFields(ref)
		putPosition(at, i, len(a.Assets))
		assets = append(assets, at)
	}
	t["assets"] = assets

	artboards := make([]Tree, 0, len(a.Artboards))
	for i, ab := range a.Artboards {
		at := logiclessArtboard(ab)
		putPosition(at, i, len(a.Artboards))
		artboards = append(artboards, at)
	}
	t["artboards"] = artboards
	return t
}

func logiclessPropertyType(p meta.PropertyDef) Tree {
	t := propertyTypeFields(p)
	if p.DefaultValue == "" {
		return t
	}
	t["default_value"] = p.DefaultValue
	if p.Type == assetgraph.DataEnum {
		t["enum_default_value"] = p.DefaultValue
		t["enum_default_value_camel"] = p.DefaultCamel
	}
	return t
}

func logiclessArtboard(ab meta.Artboard) Tree {
	t := artboardFields(ab)
	ArtboardFlags(ab).applyArtboard(t)

	animations := make([]Tree, 0, len(ab.Animations))
	for i, anim := range ab.Animations {
		at := animationFields(anim)
		putPosition(at, i, len(ab.Animations))
		animations = append(animations, at)
	}
	t["animations"] = animations

	machines := make([]Tree, 0, len(ab.StateMachines))
	for i, sm := range ab.StateMachines {
		st := stateMachineFields(sm, ab)
		putPosition(st, i, len(ab.StateMachines))
		inputs := make([]Tree, 0, len(sm.Inputs))
		for j, in := range sm.Inputs {
			it := inputFields(in)
			it["input_is_"+in.Type.String()] = true
			putPosition(it, j, len(sm.Inputs))
			inputs = append(inputs, it)
		}
		st["inputs"] = inputs
		machines = append(machines, st)
	}
	t["state_machines"] = machines

	runs := make([]Tree, 0, len(ab.TextRuns))
	for i, tr := range ab.TextRuns {
		rt := textRunFields(tr)
		putPosition(rt, i, len(ab.TextRuns))
		runs = append(runs, rt)
	}
	t["text_value_runs"] = runs

	nested := make([]Tree, 0, len(ab.NestedTextRuns))
	for i, n := range ab.NestedTextRuns {
		nt := nestedTextRunFields(n)
		putPosition(nt, i, len(ab.NestedTextRuns))
		nested = append(nested, nt)
	}
	t["nested_text_value_runs"] = nested
	return t
}

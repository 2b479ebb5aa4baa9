package templatedata

import (
	"github.com/Alia5/rivegen/internal/codegen/meta"
)

// The builders below emit the scalar keys of each entity. Projections add
// positional keys and child lists on top, so both share one field mapping.

func fileFields(a *meta.SourceAsset) Tree {
	t := Tree{"riv_original_file_name": a.FileName}
	putCases(t, prefixFile, a.Names)
	t["has_defaults"] = a.Defaults.HasArtboard
	t["default_artboard_name"] = a.Defaults.Artboard.Name
	t["default_artboard_camel_case"] = a.Defaults.Artboard.Camel
	t["default_artboard_pascal_case"] = a.Defaults.Artboard.Pascal
	t["default_state_machine_name"] = a.Defaults.StateMachine
	t["default_view_model_name"] = a.Defaults.ViewModel
	return t
}

func artboardFields(ab meta.Artboard) Tree {
	t := Tree{}
	putIdentifier(t, prefixArtboard, ab.Identifier)
	t["is_default"] = ab.IsDefault
	// An unbound id is reported as -1.
	t["view_model_id"] = int(int32(ab.ViewModelID))
	t["view_model_name"] = ab.ViewModel
	t["default_state_machine_name"] = ab.DefaultStateMachine
	t["has_default_state_machine"] = ab.HasDefaultStateMachine
	return t
}

func animationFields(id meta.Identifier) Tree {
	t := Tree{}
	putIdentifier(t, prefixAnimation, id)
	return t
}

func stateMachineFields(sm meta.StateMachine, ab meta.Artboard) Tree {
	t := Tree{}
	putIdentifier(t, prefixStateMachine, sm.Identifier)
	t["state_machine_is_default"] = ab.HasDefaultStateMachine && sm.Name == ab.DefaultStateMachine
	return t
}

func inputFields(in meta.Input) Tree {
	t := Tree{}
	putIdentifier(t, prefixInput, in.Identifier)
	t["input_type"] = in.Type.String()
	t["input_default_value"] = in.DefaultValue
	return t
}

func textRunFields(tr meta.TextRun) Tree {
	t := Tree{}
	putIdentifier(t, prefixTextRun, tr.Identifier)
	t["text_value_run_default"] = tr.DefaultValue
	t["text_value_run_default_sanitized"] = tr.DefaultEscaped
	return t
}

func nestedTextRunFields(n meta.NestedTextRun) Tree {
	return Tree{
		"nested_text_value_run_name": n.Name,
		"nested_text_value_run_path": n.Path,
	}
}

func assetFields(a meta.AssetRef) Tree {
	t := Tree{}
	putIdentifier(t, prefixAsset, a.Identifier)
	t["asset_type"] = a.Type.String()
	t["asset_file_extension"] = a.FileExtension
	t["asset_id"] = a.ID
	t["asset_cdn_uuid"] = a.CDNUUID
	t["asset_cdn_base_url"] = a.CDNBaseURL
	return t
}

func enumFields(e meta.EnumDef) Tree {
	t := Tree{}
	putIdentifier(t, prefixEnum, e.Identifier)
	return t
}

func enumValueFields(v meta.EnumValue) Tree {
	t := Tree{"enum_value_key": v.Key}
	putCases(t, prefixEnumValue, v.Names)
	return t
}

func viewModelFields(vm meta.ViewModelDef) Tree {
	t := Tree{}
	putIdentifier(t, prefixViewModel, vm.Identifier)
	return t
}

func propertyFields(p meta.PropertyDef) Tree {
	t := Tree{}
	putIdentifier(t, prefixProperty, p.Identifier)
	return t
}

// propertyTypeFields are the type flags and backing names of p.
func propertyTypeFields(p meta.PropertyDef) Tree {
	t := typeFlags(p.Type)
	putIdentifier(t, prefixBacking, p.Backing)
	return t
}

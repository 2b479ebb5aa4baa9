package templatedata

import (
	"github.com/Alia5/rivegen/internal/codegen/common"
	"github.com/Alia5/rivegen/internal/codegen/meta"
)

// Key prefixes, one per entity. Case variants are <prefix>_<style>_case.
const (
	prefixFile         = "riv"
	prefixArtboard     = "artboard"
	prefixAnimation    = "animation"
	prefixStateMachine = "state_machine"
	prefixInput        = "input"
	prefixTextRun      = "text_value_run"
	prefixAsset        = "asset"
	prefixEnum         = "enum"
	prefixEnumValue    = "enum_value"
	prefixViewModel    = "view_model"
	prefixProperty     = "property"
	prefixBacking      = "backing"
)

func putCases(t Tree, prefix string, n common.Names) {
	t[prefix+"_camel_case"] = n.Camel
	t[prefix+"_pascal_case"] = n.Pascal
	t[prefix+"_snake_case"] = n.Snake
	t[prefix+"_kebab_case"] = n.Kebab
}

func putIdentifier(t Tree, prefix string, id meta.Identifier) {
	t[prefix+"_name"] = id.Name
	putCases(t, prefix, id.Names)
}

// putPosition sets the separator flags of item i in a list of n.
func putPosition(t Tree, i, n int) {
	t["last"] = i == n-1
	t["is_first"] = i == 0
}

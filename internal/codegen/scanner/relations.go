package scanner

import (
	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
	"github.com/Alia5/rivegen/internal/codegen/common"
	"github.com/Alia5/rivegen/internal/codegen/meta"
)

// ResolveDefaults derives the default chain. The first artboard is the
// default one; its state machine and view model are independently optional.
func ResolveDefaults(f assetgraph.File, caser *common.Caser) meta.DefaultChain {
	var chain meta.DefaultChain
	artboards := f.Artboards()
	if len(artboards) == 0 || artboards[0] == nil {
		return chain
	}

	ab := artboards[0]
	chain.HasArtboard = true
	chain.Artboard = meta.Identifier{Name: ab.Name(), Names: caser.Variants(ab.Name())}
	if sm := ab.DefaultStateMachine(); sm != nil {
		chain.StateMachine = sm.Name()
	}
	if vm := f.ViewModelForArtboard(ab); vm != nil {
		chain.ViewModel = vm.Name()
	}
	return chain
}

// artboardViewModel resolves the artboard's view model id against the
// file's view models. Out-of-range ids and view models dropped by the
// private filter leave the artboard without a view model.
func artboardViewModel(f assetgraph.File, ab assetgraph.Artboard, retained map[string]bool) (string, bool) {
	vms := f.ViewModels()
	id := ab.ViewModelID()
	if uint64(id) >= uint64(len(vms)) || vms[id] == nil {
		return "", false
	}
	name := vms[id].Name()
	if !retained[name] {
		return "", false
	}
	return name, true
}

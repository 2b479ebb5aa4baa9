package scenedoc

import "github.com/Alia5/rivegen/internal/codegen/assetgraph"

type graph struct {
	artboards  []*artboard
	assets     []*asset
	enums      []*enum
	viewModels []*viewModel
}

func (g *graph) Artboards() []assetgraph.Artboard {
	out := make([]assetgraph.Artboard, len(g.artboards))
	for i, ab := range g.artboards {
		out[i] = ab
	}
	return out
}

func (g *graph) Assets() []assetgraph.Asset {
	out := make([]assetgraph.Asset, len(g.assets))
	for i, a := range g.assets {
		out[i] = a
	}
	return out
}

func (g *graph) Enums() []assetgraph.Enum {
	out := make([]assetgraph.Enum, len(g.enums))
	for i, e := range g.enums {
		out[i] = e
	}
	return out
}

func (g *graph) ViewModels() []assetgraph.ViewModel {
	out := make([]assetgraph.ViewModel, len(g.viewModels))
	for i, vm := range g.viewModels {
		out[i] = vm
	}
	return out
}

func (g *graph) ViewModelForArtboard(ab assetgraph.Artboard) assetgraph.ViewModel {
	if ab == nil {
		return nil
	}
	id := ab.ViewModelID()
	if uint64(id) >= uint64(len(g.viewModels)) {
		return nil
	}
	return g.viewModels[id]
}

func (g *graph) CreateViewModelInstance(name string) assetgraph.ViewModelInstance {
	vm := g.viewModelByName(name)
	if vm == nil {
		return nil
	}
	return &instance{g: g, vm: vm}
}

func (g *graph) artboardByName(name string) *artboard {
	for _, ab := range g.artboards {
		if ab.name == name {
			return ab
		}
	}
	return nil
}

func (g *graph) enumByName(name string) *enum {
	for _, e := range g.enums {
		if e.name == name {
			return e
		}
	}
	return nil
}

func (g *graph) viewModelByName(name string) *viewModel {
	for _, vm := range g.viewModels {
		if vm.name == name {
			return vm
		}
	}
	return nil
}

type artboard struct {
	name          string
	viewModelID   uint32
	animations    []*animation
	stateMachines []*stateMachine
	defaultSM     *stateMachine
	textRuns      []*textRun
	nested        []*nested
}

func (a *artboard) Name() string        { return a.name }
func (a *artboard) ViewModelID() uint32 { return a.viewModelID }

func (a *artboard) Animations() []assetgraph.Animation {
	out := make([]assetgraph.Animation, len(a.animations))
	for i, an := range a.animations {
		out[i] = an
	}
	return out
}

func (a *artboard) StateMachines() []assetgraph.StateMachine {
	out := make([]assetgraph.StateMachine, len(a.stateMachines))
	for i, sm := range a.stateMachines {
		out[i] = sm
	}
	return out
}

func (a *artboard) DefaultStateMachine() assetgraph.StateMachine {
	if a.defaultSM == nil {
		return nil
	}
	return a.defaultSM
}

func (a *artboard) TextRuns() []assetgraph.TextRun {
	out := make([]assetgraph.TextRun, len(a.textRuns))
	for i, tr := range a.textRuns {
		out[i] = tr
	}
	return out
}

func (a *artboard) NestedArtboards() []assetgraph.NestedArtboard {
	out := make([]assetgraph.NestedArtboard, len(a.nested))
	for i, n := range a.nested {
		out[i] = n
	}
	return out
}

type animation struct{ name string }

func (a *animation) Name() string { return a.name }

type stateMachine struct {
	name   string
	inputs []*input
}

func (s *stateMachine) Name() string { return s.name }

func (s *stateMachine) Inputs() []assetgraph.Input {
	out := make([]assetgraph.Input, len(s.inputs))
	for i, in := range s.inputs {
		out[i] = in
	}
	return out
}

type input struct {
	name    string
	typ     assetgraph.InputType
	number  float64
	boolean bool
}

func (i *input) Name() string               { return i.name }
func (i *input) Type() assetgraph.InputType { return i.typ }
func (i *input) NumberValue() float64       { return i.number }
func (i *input) BoolValue() bool            { return i.boolean }

type textRun struct{ name, text string }

func (t *textRun) Name() string { return t.name }
func (t *textRun) Text() string { return t.text }

type nested struct {
	name   string
	target *artboard
}

func (n *nested) Name() string { return n.name }

func (n *nested) Artboard() assetgraph.Artboard {
	if n.target == nil {
		return nil
	}
	return n.target
}

type asset struct {
	name       string
	typ        assetgraph.AssetType
	extension  string
	id         uint32
	cdnUUID    string
	cdnBaseURL string
}

func (a *asset) Name() string               { return a.name }
func (a *asset) Type() assetgraph.AssetType { return a.typ }
func (a *asset) FileExtension() string      { return a.extension }
func (a *asset) ID() uint32                 { return a.id }
func (a *asset) CDNUUID() string            { return a.cdnUUID }
func (a *asset) CDNBaseURL() string         { return a.cdnBaseURL }

type enum struct {
	name   string
	values []string
}

func (e *enum) Name() string     { return e.name }
func (e *enum) Values() []string { return e.values }

type viewModel struct {
	name  string
	props []*property
}

func (v *viewModel) Name() string { return v.name }

func (v *viewModel) Properties() []assetgraph.Property {
	out := make([]assetgraph.Property, len(v.props))
	for i, p := range v.props {
		out[i] = assetgraph.Property{Name: p.name, Type: p.typ}
	}
	return out
}

func (v *viewModel) property(name string) *property {
	for _, p := range v.props {
		if p.name == name {
			return p
		}
	}
	return nil
}

type property struct {
	name         string
	typ          assetgraph.DataType
	value        assetgraph.PropertyValue
	viewModelRef string
}

// instance is created lazily per lookup, so view models that reference each
// other do not recurse.
type instance struct {
	g  *graph
	vm *viewModel
}

func (i *instance) ViewModel() assetgraph.ViewModel { return i.vm }

func (i *instance) PropertyValue(name string) assetgraph.PropertyValue {
	p := i.vm.property(name)
	if p == nil {
		return nil
	}
	return p.value
}

func (i *instance) PropertyViewModel(name string) assetgraph.ViewModelInstance {
	p := i.vm.property(name)
	if p == nil || p.typ != assetgraph.DataViewModel {
		return nil
	}
	return i.g.CreateViewModelInstance(p.viewModelRef)
}

// Package testing holds hand-written asset graph fakes. Unlike scenedoc,
// they can describe graphs that break their own invariants: mismatched
// property values, unresolved references and nesting cycles.
package testing

import (
	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
)

type MockFile struct {
	ArtboardList  []assetgraph.Artboard
	AssetList     []assetgraph.Asset
	EnumList      []assetgraph.Enum
	ViewModelList []assetgraph.ViewModel
	// Instances maps view model names to the instance returned for them.
	Instances map[string]assetgraph.ViewModelInstance
	// Bindings maps artboard names to their bound view model.
	Bindings map[string]assetgraph.ViewModel

	// InstancesCreated counts CreateViewModelInstance calls per name.
	InstancesCreated map[string]int
}

func (f *MockFile) Artboards() []assetgraph.Artboard   { return f.ArtboardList }
func (f *MockFile) Assets() []assetgraph.Asset         { return f.AssetList }
func (f *MockFile) Enums() []assetgraph.Enum           { return f.EnumList }
func (f *MockFile) ViewModels() []assetgraph.ViewModel { return f.ViewModelList }

func (f *MockFile) ViewModelForArtboard(ab assetgraph.Artboard) assetgraph.ViewModel {
	if ab == nil {
		return nil
	}
	if vm, ok := f.Bindings[ab.Name()]; ok {
		return vm
	}
	return nil
}

func (f *MockFile) CreateViewModelInstance(name string) assetgraph.ViewModelInstance {
	if f.InstancesCreated == nil {
		f.InstancesCreated = map[string]int{}
	}
	f.InstancesCreated[name]++
	inst, ok := f.Instances[name]
	if !ok {
		return nil
	}
	return inst
}

type MockArtboard struct {
	ArtboardName   string
	VMID           uint32
	AnimationList  []assetgraph.Animation
	MachineList    []assetgraph.StateMachine
	DefaultMachine assetgraph.StateMachine
	TextRunList    []assetgraph.TextRun
	NestedList     []assetgraph.NestedArtboard
}

func (a *MockArtboard) Name() string                                { return a.ArtboardName }
func (a *MockArtboard) ViewModelID() uint32                         { return a.VMID }
func (a *MockArtboard) Animations() []assetgraph.Animation          { return a.AnimationList }
func (a *MockArtboard) StateMachines() []assetgraph.StateMachine    { return a.MachineList }
func (a *MockArtboard) TextRuns() []assetgraph.TextRun              { return a.TextRunList }
func (a *MockArtboard) NestedArtboards() []assetgraph.NestedArtboard { return a.NestedList }

func (a *MockArtboard) DefaultStateMachine() assetgraph.StateMachine {
	if a.DefaultMachine == nil {
		return nil
	}
	return a.DefaultMachine
}

// Animations builds named animations.
func Animations(names ...string) []assetgraph.Animation {
	out := make([]assetgraph.Animation, len(names))
	for i, n := range names {
		out[i] = MockAnimation(n)
	}
	return out
}

type MockAnimation string

func (a MockAnimation) Name() string { return string(a) }

type MockStateMachine struct {
	MachineName string
	InputList   []assetgraph.Input
}

func (s *MockStateMachine) Name() string               { return s.MachineName }
func (s *MockStateMachine) Inputs() []assetgraph.Input { return s.InputList }

type MockInput struct {
	InputName string
	InputType assetgraph.InputType
	Number    float64
	Bool      bool
}

func (i *MockInput) Name() string               { return i.InputName }
func (i *MockInput) Type() assetgraph.InputType { return i.InputType }
func (i *MockInput) NumberValue() float64       { return i.Number }
func (i *MockInput) BoolValue() bool            { return i.Bool }

type MockTextRun struct {
	RunName string
	Value   string
}

func (t *MockTextRun) Name() string { return t.RunName }
func (t *MockTextRun) Text() string { return t.Value }

// MockNested points at Target. A nil Target is a dangling reference.
type MockNested struct {
	NestedName string
	Target     *MockArtboard
}

func (n *MockNested) Name() string { return n.NestedName }

func (n *MockNested) Artboard() assetgraph.Artboard {
	if n.Target == nil {
		return nil
	}
	return n.Target
}

type MockAsset struct {
	AssetName string
	AssetType assetgraph.AssetType
	Extension string
	AssetID   uint32
	UUID      string
	BaseURL   string
}

func (a *MockAsset) Name() string               { return a.AssetName }
func (a *MockAsset) Type() assetgraph.AssetType { return a.AssetType }
func (a *MockAsset) FileExtension() string      { return a.Extension }
func (a *MockAsset) ID() uint32                 { return a.AssetID }
func (a *MockAsset) CDNUUID() string            { return a.UUID }
func (a *MockAsset) CDNBaseURL() string         { return a.BaseURL }

type MockEnum struct {
	EnumName string
	Keys     []string
}

func (e *MockEnum) Name() string     { return e.EnumName }
func (e *MockEnum) Values() []string { return e.Keys }

type MockViewModel struct {
	VMName string
	Props  []assetgraph.Property
}

func (v *MockViewModel) Name() string                      { return v.VMName }
func (v *MockViewModel) Properties() []assetgraph.Property { return v.Props }

// MockInstance answers property lookups from its maps. Values are returned
// as stored, whether or not they match the declared property type.
type MockInstance struct {
	VM     *MockViewModel
	Values map[string]assetgraph.PropertyValue
	Nested map[string]*MockInstance
}

func (i *MockInstance) ViewModel() assetgraph.ViewModel {
	if i.VM == nil {
		return nil
	}
	return i.VM
}

func (i *MockInstance) PropertyValue(name string) assetgraph.PropertyValue {
	return i.Values[name]
}

func (i *MockInstance) PropertyViewModel(name string) assetgraph.ViewModelInstance {
	n, ok := i.Nested[name]
	if !ok || n == nil {
		return nil
	}
	return n
}

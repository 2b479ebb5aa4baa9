// Package assetgraph describes the read API over a decoded scene-graph asset.
//
// Implementations are expected to be internally consistent, but consumers
// must tolerate nil results wherever a lookup can miss: a reference that does
// not resolve is reported as nil rather than as an error.
package assetgraph

// Decoder turns raw file contents into a File.
type Decoder interface {
	Decode(data []byte) (File, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(data []byte) (File, error)

func (f DecoderFunc) Decode(data []byte) (File, error) { return f(data) }

// File is one decoded asset.
type File interface {
	// Artboards returns all artboards in file order. The first one is the
	// default artboard.
	Artboards() []Artboard
	Assets() []Asset
	Enums() []Enum
	ViewModels() []ViewModel
	// ViewModelForArtboard returns the view model bound to ab, or nil.
	ViewModelForArtboard(ab Artboard) ViewModel
	// CreateViewModelInstance instantiates the named view model with its
	// default values, or returns nil if no such view model exists.
	CreateViewModelInstance(name string) ViewModelInstance
}

type Artboard interface {
	Name() string
	// ViewModelID indexes File.ViewModels. Out of range means unbound.
	ViewModelID() uint32
	Animations() []Animation
	StateMachines() []StateMachine
	// DefaultStateMachine returns the state machine marked active, or nil.
	DefaultStateMachine() StateMachine
	TextRuns() []TextRun
	NestedArtboards() []NestedArtboard
}

type Animation interface {
	Name() string
}

type StateMachine interface {
	Name() string
	Inputs() []Input
}

// Input is a state machine input. NumberValue and BoolValue are only
// meaningful for the matching Type.
type Input interface {
	Name() string
	Type() InputType
	NumberValue() float64
	BoolValue() bool
}

type TextRun interface {
	Name() string
	Text() string
}

// NestedArtboard places another artboard inside its parent. Name is the
// exported name and may be empty.
type NestedArtboard interface {
	Name() string
	// Artboard returns the nested artboard, or nil if it does not resolve.
	Artboard() Artboard
}

type Asset interface {
	Name() string
	Type() AssetType
	FileExtension() string
	ID() uint32
	CDNUUID() string
	CDNBaseURL() string
}

type Enum interface {
	Name() string
	// Values returns the value keys in declaration order.
	Values() []string
}

type ViewModel interface {
	Name() string
	Properties() []Property
}

// Property describes one view model property.
type Property struct {
	Name string
	Type DataType
}

type ViewModelInstance interface {
	ViewModel() ViewModel
	// PropertyValue returns the current value of the named property, or nil.
	PropertyValue(name string) PropertyValue
	// PropertyViewModel returns the instance behind a viewModel-typed
	// property, or nil.
	PropertyViewModel(name string) ViewModelInstance
}

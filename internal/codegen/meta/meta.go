// Package meta holds the canonical, normalized model of one asset file.
// Values are built once by the scanner and treated as read-only afterwards.
package meta

import (
	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
	"github.com/Alia5/rivegen/internal/codegen/common"
)

// Identifier is a raw name with its case variants. Where a scope applies,
// Names.Camel is unique within it.
type Identifier struct {
	Name string
	common.Names
}

// SourceAsset is one normalized input file.
type SourceAsset struct {
	// FileName is the base name without extension.
	FileName   string
	Names      common.Names
	Artboards  []Artboard
	Enums      []EnumDef
	ViewModels []ViewModelDef
	Assets     []AssetRef
	Defaults   DefaultChain
}

// DefaultChain links the default artboard to its active state machine and
// bound view model. StateMachine and ViewModel are empty when absent.
type DefaultChain struct {
	HasArtboard  bool
	Artboard     Identifier
	StateMachine string
	ViewModel    string
}

type Artboard struct {
	Identifier
	// Index is the position in the decoded file, before filtering.
	Index     int
	IsDefault bool

	ViewModelID  uint32
	HasViewModel bool
	ViewModel    string

	HasDefaultStateMachine bool
	DefaultStateMachine    string

	Animations     []Identifier
	StateMachines  []StateMachine
	TextRuns       []TextRun
	NestedTextRuns []NestedTextRun
}

type StateMachine struct {
	Identifier
	Inputs []Input
}

type Input struct {
	Identifier
	Type         assetgraph.InputType
	DefaultValue string
}

type TextRun struct {
	Identifier
	DefaultValue string
	// DefaultEscaped is DefaultValue made safe for a quoted literal.
	DefaultEscaped string
}

// NestedTextRun is a text run inside a nested artboard, addressed by the
// slash-joined names of the nested artboards leading to it.
type NestedTextRun struct {
	Name string
	Path string
}

type AssetRef struct {
	Identifier
	Type          assetgraph.AssetType
	FileExtension string
	ID            string
	CDNUUID       string
	CDNBaseURL    string
}

type EnumDef struct {
	Identifier
	Values []EnumValue
}

type EnumValue struct {
	Key string
	common.Names
	// NeedsExplicitValue is set when the camel identifier differs from Key,
	// so generated code has to spell the key out.
	NeedsExplicitValue bool
}

type ViewModelDef struct {
	Identifier
	Properties []PropertyDef
}

type PropertyDef struct {
	Identifier
	Type assetgraph.DataType
	// Backing names the referenced view model (viewModel properties) or
	// enum (enum properties). Empty otherwise.
	Backing Identifier
	// DefaultValue is empty for viewModel properties and for types with no
	// static default.
	DefaultValue string
	// DefaultCamel is the camel variant of an enum default key.
	DefaultCamel string
}

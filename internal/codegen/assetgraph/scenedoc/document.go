// Package scenedoc decodes a textual scene document (YAML, JSON or TOML)
// into an in-memory assetgraph.File.
//
// A minimal document:
//
//	artboards:
//	  - name: Main
//	    view_model: Settings
//	    animations: [Idle, Walk]
//	    default_state_machine: Controller
//	    state_machines:
//	      - name: Controller
//	        inputs:
//	          - {name: IsOn, type: boolean, bool: true}
//	    text_runs:
//	      - {name: Title, text: "Hello"}
//	    nested_artboards:
//	      - {name: Button, artboard: ButtonBoard}
//	enums:
//	  - {name: Mode, values: [light, dark]}
//	view_models:
//	  - name: Settings
//	    properties:
//	      - {name: mode, type: enum, enum: Mode, enum_value: dark}
package scenedoc

// Document is the on-disk shape of a scene.
type Document struct {
	Artboards  []ArtboardDoc  `yaml:"artboards" toml:"artboards"`
	Assets     []AssetDoc     `yaml:"assets" toml:"assets"`
	Enums      []EnumDoc      `yaml:"enums" toml:"enums"`
	ViewModels []ViewModelDoc `yaml:"view_models" toml:"view_models"`
}

type ArtboardDoc struct {
	Name string `yaml:"name" toml:"name"`
	// ViewModel binds a view model by name. ViewModelID, when set, wins.
	ViewModel           string            `yaml:"view_model" toml:"view_model"`
	ViewModelID         *int              `yaml:"view_model_id" toml:"view_model_id"`
	Animations          []string          `yaml:"animations" toml:"animations"`
	StateMachines       []StateMachineDoc `yaml:"state_machines" toml:"state_machines"`
	DefaultStateMachine string            `yaml:"default_state_machine" toml:"default_state_machine"`
	TextRuns            []TextRunDoc      `yaml:"text_runs" toml:"text_runs"`
	NestedArtboards     []NestedDoc       `yaml:"nested_artboards" toml:"nested_artboards"`
}

type StateMachineDoc struct {
	Name   string     `yaml:"name" toml:"name"`
	Inputs []InputDoc `yaml:"inputs" toml:"inputs"`
}

type InputDoc struct {
	Name   string  `yaml:"name" toml:"name"`
	Type   string  `yaml:"type" toml:"type"`
	Number float64 `yaml:"number" toml:"number"`
	Bool   bool    `yaml:"bool" toml:"bool"`
}

type TextRunDoc struct {
	Name string `yaml:"name" toml:"name"`
	Text string `yaml:"text" toml:"text"`
}

// NestedDoc references another artboard of the same document by name.
type NestedDoc struct {
	Name     string `yaml:"name" toml:"name"`
	Artboard string `yaml:"artboard" toml:"artboard"`
}

type AssetDoc struct {
	Name       string `yaml:"name" toml:"name"`
	Type       string `yaml:"type" toml:"type"`
	Extension  string `yaml:"extension" toml:"extension"`
	ID         uint32 `yaml:"id" toml:"id"`
	CDNUUID    string `yaml:"cdn_uuid" toml:"cdn_uuid"`
	CDNBaseURL string `yaml:"cdn_base_url" toml:"cdn_base_url"`
}

type EnumDoc struct {
	Name   string   `yaml:"name" toml:"name"`
	Values []string `yaml:"values" toml:"values"`
}

type ViewModelDoc struct {
	Name       string        `yaml:"name" toml:"name"`
	Properties []PropertyDoc `yaml:"properties" toml:"properties"`
}

// PropertyDoc carries the default value in the field matching Type.
type PropertyDoc struct {
	Name    string  `yaml:"name" toml:"name"`
	Type    string  `yaml:"type" toml:"type"`
	Text    string  `yaml:"text" toml:"text"`
	Number  float64 `yaml:"number" toml:"number"`
	Bool    bool    `yaml:"bool" toml:"bool"`
	Integer int64   `yaml:"integer" toml:"integer"`
	// Color is hex ARGB, with or without a "#" or "0x" prefix.
	Color     string `yaml:"color" toml:"color"`
	Enum      string `yaml:"enum" toml:"enum"`
	EnumValue string `yaml:"enum_value" toml:"enum_value"`
	ViewModel string `yaml:"view_model" toml:"view_model"`
}

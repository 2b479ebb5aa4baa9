package scenedoc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
)

// NoViewModel is the view model id of an artboard without a binding.
const NoViewModel = math.MaxUint32

// Decoder decodes scene documents.
var Decoder assetgraph.Decoder = assetgraph.DecoderFunc(Decode)

// Decode parses data and resolves it into a graph.
func Decode(data []byte) (assetgraph.File, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Parse reads data as YAML (which covers JSON) and falls back to TOML.
func Parse(data []byte) (*Document, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.New("empty scene document")
	}
	var doc Document
	yamlErr := yaml.Unmarshal(data, &doc)
	if yamlErr == nil {
		return &doc, nil
	}
	doc = Document{}
	if tomlErr := toml.Unmarshal(data, &doc); tomlErr == nil {
		return &doc, nil
	}
	return nil, fmt.Errorf("not a YAML, JSON or TOML scene document: %w", yamlErr)
}

// Build resolves names inside doc. Unknown property types and malformed
// colors are errors; references that do not resolve are kept as dangling.
func Build(doc *Document) (assetgraph.File, error) {
	g := &graph{}

	for _, e := range doc.Enums {
		g.enums = append(g.enums, &enum{name: e.Name, values: e.Values})
	}

	for _, a := range doc.Assets {
		typ, _ := assetgraph.ParseAssetType(a.Type)
		g.assets = append(g.assets, &asset{
			name:       a.Name,
			typ:        typ,
			extension:  a.Extension,
			id:         a.ID,
			cdnUUID:    a.CDNUUID,
			cdnBaseURL: a.CDNBaseURL,
		})
	}

	for _, vmDoc := range doc.ViewModels {
		vm := &viewModel{name: vmDoc.Name}
		for _, p := range vmDoc.Properties {
			prop, err := g.buildProperty(p)
			if err != nil {
				return nil, fmt.Errorf("view model %q: %w", vmDoc.Name, err)
			}
			vm.props = append(vm.props, prop)
		}
		g.viewModels = append(g.viewModels, vm)
	}

	for _, abDoc := range doc.Artboards {
		g.artboards = append(g.artboards, g.buildArtboard(abDoc))
	}
	// Nested references need every artboard to exist first.
	for i, abDoc := range doc.Artboards {
		for _, n := range abDoc.NestedArtboards {
			g.artboards[i].nested = append(g.artboards[i].nested, &nested{
				name:   n.Name,
				target: g.artboardByName(n.Artboard),
			})
		}
	}

	return g, nil
}

func (g *graph) buildArtboard(d ArtboardDoc) *artboard {
	ab := &artboard{name: d.Name, viewModelID: NoViewModel}
	switch {
	case d.ViewModelID != nil:
		if *d.ViewModelID >= 0 {
			ab.viewModelID = uint32(*d.ViewModelID)
		}
	case d.ViewModel != "":
		for i, vm := range g.viewModels {
			if vm.name == d.ViewModel {
				ab.viewModelID = uint32(i)
				break
			}
		}
	}

	for _, name := range d.Animations {
		ab.animations = append(ab.animations, &animation{name: name})
	}
	for _, smDoc := range d.StateMachines {
		sm := &stateMachine{name: smDoc.Name}
		for _, in := range smDoc.Inputs {
			typ, _ := assetgraph.ParseInputType(in.Type)
			sm.inputs = append(sm.inputs, &input{name: in.Name, typ: typ, number: in.Number, boolean: in.Bool})
		}
		ab.stateMachines = append(ab.stateMachines, sm)
		if d.DefaultStateMachine != "" && sm.name == d.DefaultStateMachine && ab.defaultSM == nil {
			ab.defaultSM = sm
		}
	}
	for _, tr := range d.TextRuns {
		ab.textRuns = append(ab.textRuns, &textRun{name: tr.Name, text: tr.Text})
	}
	return ab
}

func (g *graph) buildProperty(d PropertyDoc) (*property, error) {
	typ, ok := assetgraph.ParseDataType(d.Type)
	if !ok {
		return nil, fmt.Errorf("property %q: unknown type %q", d.Name, d.Type)
	}
	p := &property{name: d.Name, typ: typ, viewModelRef: d.ViewModel}

	switch typ {
	case assetgraph.DataBoolean:
		p.value = assetgraph.BooleanValue{Value: d.Bool}
	case assetgraph.DataNumber:
		p.value = assetgraph.NumberValue{Value: d.Number}
	case assetgraph.DataString:
		p.value = assetgraph.StringValue{Value: d.Text}
	case assetgraph.DataColor:
		c, err := parseColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", d.Name, err)
		}
		p.value = assetgraph.ColorValue{Value: c}
	case assetgraph.DataEnum:
		p.value = g.enumValue(d.Enum, d.EnumValue)
	case assetgraph.DataInteger:
		p.value = assetgraph.IntegerValue{Value: d.Integer}
	case assetgraph.DataSymbolListIndex:
		p.value = assetgraph.SymbolListIndexValue{Value: uint32(d.Integer)}
	case assetgraph.DataList:
		p.value = assetgraph.ListValue{}
	case assetgraph.DataTrigger:
		p.value = assetgraph.TriggerValue{}
	case assetgraph.DataAssetImage:
		p.value = assetgraph.AssetImageValue{}
	}
	return p, nil
}

// enumValue resolves key to an index. An empty key selects the first
// value; an unknown key yields an out-of-range index.
func (g *graph) enumValue(enumName, key string) assetgraph.EnumValue {
	e := g.enumByName(enumName)
	if e == nil {
		return assetgraph.EnumValue{}
	}
	idx := uint32(len(e.values))
	if key == "" {
		idx = 0
	}
	for i, v := range e.values {
		if v == key {
			idx = uint32(i)
			break
		}
	}
	return assetgraph.EnumValue{Enum: e, Index: idx}
}

func parseColor(s string) (int32, error) {
	if s == "" {
		return 0, nil
	}
	hex := strings.TrimPrefix(s, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return int32(uint32(v)), nil
}

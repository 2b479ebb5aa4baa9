package scanner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
	"github.com/Alia5/rivegen/internal/codegen/common"
	"github.com/Alia5/rivegen/internal/log"
	htesting "github.com/Alia5/rivegen/internal/testing"
)

const mainScene = `
artboards:
  - name: Main
    animations: [Idle, Idle]
    default_state_machine: Controller
    state_machines:
      - name: Controller
        inputs:
          - {name: IsOn, type: boolean, bool: true}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessFileScenario(t *testing.T) {
	s := New(log.Discard(), Options{})
	asset, err := s.ProcessFile(writeFile(t, "my_scene.riv", mainScene))
	require.NoError(t, err)

	assert.Equal(t, "my_scene", asset.FileName)
	assert.Equal(t, "myScene", asset.Names.Camel)
	assert.Equal(t, "MyScene", asset.Names.Pascal)

	require.Len(t, asset.Artboards, 1)
	ab := asset.Artboards[0]
	assert.Equal(t, "main", ab.Camel)
	assert.True(t, ab.IsDefault)
	require.Len(t, ab.Animations, 2)
	assert.Equal(t, "idle", ab.Animations[0].Camel)
	assert.Equal(t, "idleU1", ab.Animations[1].Camel)
	assert.Equal(t, "IdleU1", ab.Animations[1].Pascal)
	assert.Equal(t, "Idle", ab.Animations[1].Name)

	require.Len(t, ab.StateMachines, 1)
	require.Len(t, ab.StateMachines[0].Inputs, 1)
	in := ab.StateMachines[0].Inputs[0]
	assert.Equal(t, "ison", in.Camel)
	assert.Equal(t, assetgraph.InputBoolean, in.Type)
	assert.Equal(t, "true", in.DefaultValue)

	assert.True(t, ab.HasDefaultStateMachine)
	assert.Equal(t, "Controller", ab.DefaultStateMachine)
	assert.False(t, ab.HasViewModel)
	assert.Equal(t, "Main", asset.Defaults.Artboard.Name)
	assert.Equal(t, "Controller", asset.Defaults.StateMachine)
	assert.Empty(t, asset.Defaults.ViewModel)
}

type recordingRaw struct{ sources []string }

func (r *recordingRaw) Log(source string, _ []byte) { r.sources = append(r.sources, source) }

func TestProcessFileRejects(t *testing.T) {
	raw := &recordingRaw{}
	s := New(nil, Options{RawLogger: raw})

	t.Run("empty", func(t *testing.T) {
		_, err := s.ProcessFile(writeFile(t, "empty.riv", ""))
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := s.ProcessFile(filepath.Join(t.TempDir(), "missing.riv"))
		assert.ErrorIs(t, err, ErrDecodeFailure)
	})

	t.Run("garbage", func(t *testing.T) {
		path := writeFile(t, "garbage.riv", "RIVE\x00\x01\x02[[[")
		_, err := s.ProcessFile(path)
		assert.ErrorIs(t, err, ErrDecodeFailure)
		assert.Contains(t, raw.sources, path)
	})

	t.Run("decoder error", func(t *testing.T) {
		failing := New(nil, Options{Decoder: assetgraph.DecoderFunc(func([]byte) (assetgraph.File, error) {
			return nil, errors.New("bad header")
		})})
		_, err := failing.ProcessFile(writeFile(t, "x.riv", "x"))
		assert.ErrorIs(t, err, ErrDecodeFailure)
		assert.ErrorContains(t, err, "bad header")
	})
}

func TestProcessFileDumpsRawBytes(t *testing.T) {
	var buf bytes.Buffer
	s := New(nil, Options{RawLogger: log.NewRaw(&buf)})
	_, err := s.ProcessFile(writeFile(t, "bad.riv", "\x01\x02: ["))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "head: 01 02")
}

func enumScene() *htesting.MockFile {
	e1 := &htesting.MockEnum{EnumName: "E1", Keys: []string{"on", "Off State"}}
	e2 := &htesting.MockEnum{EnumName: "E2", Keys: []string{"x"}}
	vm := &htesting.MockViewModel{VMName: "Settings", Props: []assetgraph.Property{
		{Name: "mode", Type: assetgraph.DataEnum},
		{Name: "_legacy", Type: assetgraph.DataEnum},
		{Name: "title", Type: assetgraph.DataString},
	}}
	return &htesting.MockFile{
		EnumList:      []assetgraph.Enum{e1, e2},
		ViewModelList: []assetgraph.ViewModel{vm},
		Instances: map[string]assetgraph.ViewModelInstance{
			"Settings": &htesting.MockInstance{VM: vm, Values: map[string]assetgraph.PropertyValue{
				"mode":    assetgraph.EnumValue{Enum: e1, Index: 1},
				"_legacy": assetgraph.EnumValue{Enum: e2},
				"title":   assetgraph.StringValue{Value: "Hello"},
			}},
		},
	}
}

func TestEnumFiltering(t *testing.T) {
	t.Run("filter active", func(t *testing.T) {
		f := enumScene()
		asset := New(nil, Options{IgnorePrivate: true}).Normalize("scene", f)
		require.Len(t, asset.Enums, 1)
		assert.Equal(t, "E1", asset.Enums[0].Name)

		require.Len(t, asset.ViewModels, 1)
		props := asset.ViewModels[0].Properties
		require.Len(t, props, 2)
		assert.Equal(t, "E1", props[0].Backing.Name)
		assert.Equal(t, "Off State", props[0].DefaultValue)
		assert.Equal(t, "offState", props[0].DefaultCamel)
		assert.Equal(t, "Hello", props[1].DefaultValue)
		assert.Equal(t, 1, f.InstancesCreated["Settings"])
	})

	t.Run("filter inactive keeps every enum", func(t *testing.T) {
		asset := New(nil, Options{}).Normalize("scene", enumScene())
		require.Len(t, asset.Enums, 2)
		assert.Len(t, asset.ViewModels[0].Properties, 3)
	})

	t.Run("no surviving view model keeps every enum", func(t *testing.T) {
		f := enumScene()
		f.ViewModelList[0].(*htesting.MockViewModel).VMName = "_Settings"
		asset := New(nil, Options{IgnorePrivate: true}).Normalize("scene", f)
		assert.Empty(t, asset.ViewModels)
		assert.Len(t, asset.Enums, 2)
	})
}

func TestEnumValues(t *testing.T) {
	asset := New(nil, Options{}).Normalize("scene", enumScene())
	values := asset.Enums[0].Values
	require.Len(t, values, 2)
	assert.Equal(t, "on", values[0].Camel)
	assert.False(t, values[0].NeedsExplicitValue)
	assert.Equal(t, "offState", values[1].Camel)
	assert.True(t, values[1].NeedsExplicitValue)
}

func TestViewModelProperties(t *testing.T) {
	child := &htesting.MockViewModel{VMName: "Child"}
	hidden := &htesting.MockViewModel{VMName: "privateChild"}
	parent := &htesting.MockViewModel{VMName: "Parent", Props: []assetgraph.Property{
		{Name: "child", Type: assetgraph.DataViewModel},
		{Name: "secret", Type: assetgraph.DataViewModel},
		{Name: "orphan", Type: assetgraph.DataViewModel},
		{Name: "count", Type: assetgraph.DataNumber},
		{Name: "broken", Type: assetgraph.DataBoolean},
		{Name: "tint", Type: assetgraph.DataColor},
		{Name: "picture", Type: assetgraph.DataAssetImage},
		{Name: "dangling", Type: assetgraph.DataEnum},
	}}
	f := &htesting.MockFile{
		ViewModelList: []assetgraph.ViewModel{parent, child, hidden},
		Instances: map[string]assetgraph.ViewModelInstance{
			"Parent": &htesting.MockInstance{
				VM: parent,
				Values: map[string]assetgraph.PropertyValue{
					"count":  assetgraph.NumberValue{Value: 2.5},
					"broken": assetgraph.StringValue{Value: "yes"},
					"tint":   assetgraph.ColorValue{Value: 0x7F00FF00},
				},
				Nested: map[string]*htesting.MockInstance{
					"child":  {VM: child},
					"secret": {VM: hidden},
				},
			},
		},
	}

	asset := New(nil, Options{IgnorePrivate: true}).Normalize("scene", f)
	require.Len(t, asset.ViewModels, 2)
	props := asset.ViewModels[0].Properties

	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"child", "orphan", "count", "broken", "tint", "picture", "dangling"}, names)

	assert.Equal(t, "Child", props[0].Backing.Name)
	assert.Equal(t, "child", props[0].Backing.Camel)
	assert.Empty(t, props[0].DefaultValue)
	assert.Empty(t, props[1].Backing.Name)
	assert.Equal(t, "2.5", props[2].DefaultValue)
	assert.Empty(t, props[3].DefaultValue)
	assert.Equal(t, "0x7F00FF00", props[4].DefaultValue)
	assert.Empty(t, props[5].DefaultValue)
	assert.Empty(t, props[6].Backing.Name)
}

func TestArtboardCollection(t *testing.T) {
	vm := &htesting.MockViewModel{VMName: "Player"}
	f := &htesting.MockFile{
		ViewModelList: []assetgraph.ViewModel{vm},
		ArtboardList: []assetgraph.Artboard{
			&htesting.MockArtboard{
				ArtboardName:  "Hero",
				VMID:          0,
				AnimationList: htesting.Animations("run", "_debug", "Run"),
				MachineList: []assetgraph.StateMachine{
					&htesting.MockStateMachine{MachineName: "Main", InputList: []assetgraph.Input{
						&htesting.MockInput{InputName: "speed", InputType: assetgraph.InputNumber, Number: 1},
						&htesting.MockInput{InputName: "speed", InputType: assetgraph.InputTrigger},
					}},
					&htesting.MockStateMachine{MachineName: "internalMachine"},
				},
				TextRunList: []assetgraph.TextRun{
					&htesting.MockTextRun{RunName: "title", Value: "Say \"hi\"\n"},
					&htesting.MockTextRun{RunName: "", Value: "unnamed"},
				},
			},
			&htesting.MockArtboard{ArtboardName: "_Scratch"},
			&htesting.MockArtboard{ArtboardName: "hero", VMID: 3},
		},
	}

	asset := New(nil, Options{IgnorePrivate: true}).Normalize("scene", f)
	require.Len(t, asset.Artboards, 2)

	hero := asset.Artboards[0]
	assert.Equal(t, "hero", hero.Camel)
	assert.True(t, hero.HasViewModel)
	assert.Equal(t, "Player", hero.ViewModel)
	require.Len(t, hero.Animations, 2)
	assert.Equal(t, "run", hero.Animations[0].Camel)
	assert.Equal(t, "runU1", hero.Animations[1].Camel)

	require.Len(t, hero.StateMachines, 1)
	inputs := hero.StateMachines[0].Inputs
	require.Len(t, inputs, 2)
	assert.Equal(t, "speed", inputs[0].Camel)
	assert.Equal(t, "1", inputs[0].DefaultValue)
	assert.Equal(t, "speedU1", inputs[1].Camel)
	assert.Equal(t, "false", inputs[1].DefaultValue)

	require.Len(t, hero.TextRuns, 1)
	assert.Equal(t, "Say \"hi\"\n", hero.TextRuns[0].DefaultValue)
	assert.Equal(t, `Say \"hi\"\n`, hero.TextRuns[0].DefaultEscaped)

	second := asset.Artboards[1]
	assert.Equal(t, 2, second.Index)
	assert.False(t, second.IsDefault)
	assert.Equal(t, "heroU1", second.Camel)
	assert.False(t, second.HasViewModel)
}

func TestAssets(t *testing.T) {
	f := &htesting.MockFile{AssetList: []assetgraph.Asset{
		&htesting.MockAsset{AssetName: "logo", AssetType: assetgraph.AssetImage, Extension: "png", AssetID: 12,
			UUID: "7F1C1D9E3C8A4B7E9A3E2F9B7D1C0A11", BaseURL: "https://cdn.example"},
		&htesting.MockAsset{AssetName: "logo", AssetType: assetgraph.AssetFont, UUID: "not-a-uuid"},
	}}
	asset := New(nil, Options{}).Normalize("scene", f)
	require.Len(t, asset.Assets, 2)
	assert.Equal(t, "logo", asset.Assets[0].Camel)
	assert.Equal(t, "12", asset.Assets[0].ID)
	assert.Equal(t, "7f1c1d9e-3c8a-4b7e-9a3e-2f9b7d1c0a11", asset.Assets[0].CDNUUID)
	assert.Equal(t, "logoU1", asset.Assets[1].Camel)
	assert.Equal(t, "not-a-uuid", asset.Assets[1].CDNUUID)
}

func TestReservedWordsApplied(t *testing.T) {
	s := New(nil, Options{Caser: common.NewCaser(common.ReservedWords("dart"))})
	f := &htesting.MockFile{ArtboardList: []assetgraph.Artboard{
		&htesting.MockArtboard{ArtboardName: "class", AnimationList: htesting.Animations("switch")},
	}}
	asset := s.Normalize("scene", f)
	assert.Equal(t, "classValue", asset.Artboards[0].Camel)
	assert.Equal(t, "Class", asset.Artboards[0].Pascal)
	assert.Equal(t, "switchValue", asset.Artboards[0].Animations[0].Camel)
}

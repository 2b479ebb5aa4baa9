package generator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/rivegen/internal/codegen/scanner"
)

const demoScene = `
artboards:
  - name: Main
    view_model: Settings
    animations: [Idle, Idle]
    default_state_machine: Controller
    state_machines:
      - name: Controller
        inputs:
          - {name: IsOn, type: boolean, bool: true}
    text_runs:
      - {name: Title, text: "Hello"}
    nested_artboards:
      - {name: Btn, artboard: Button}
  - name: Button
    text_runs:
      - {name: Label, text: "Press"}
enums:
  - {name: Mode, values: [light, Dark Mode]}
view_models:
  - name: Settings
    properties:
      - {name: mode, type: enum, enum: Mode, enum_value: Dark Mode}
      - {name: title, type: string, text: "hi"}
assets:
  - {name: logo, type: image, extension: png, id: 7}
`

func setupInput(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.riv"), []byte(demoScene), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.riv"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# not an asset"), 0o644))
	return dir
}

func TestRunDefaultTemplates(t *testing.T) {
	for _, engine := range []string{"mustache", "template"} {
		t.Run(engine, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "lib", "gen", "rive.dart")
			g := New(Options{
				Input:    setupInput(t),
				Output:   out,
				Language: "dart",
				Engine:   engine,
			}, nil)
			require.NoError(t, g.Run())

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			code := string(data)

			assert.Contains(t, code, "// rive_generated.dart")
			assert.Contains(t, code, "static const _DemoFile demo = _DemoFile();")
			assert.Contains(t, code, "_DemoArtboardMain get defaultArtboard => artboards.main;")
			assert.Contains(t, code, "String get idle => 'Idle';")
			assert.Contains(t, code, "String get idleU1 => 'Idle';")
			assert.Contains(t, code, "String get ison => 'IsOn';")
			assert.Contains(t, code, "/// boolean input, default true.")
			assert.Contains(t, code, "darkMode('Dark Mode');")
			assert.Contains(t, code, "DemoMode get modeDefault => DemoMode.darkMode;")
			assert.Contains(t, code, "('Label', 'Btn'),")
			assert.Contains(t, code, "_DemoAsset('logo', 'image', 'png', 7, ''),")
			assert.NotContains(t, code, "_DemoArtboardButton get defaultArtboard")
		})
	}
}

func TestRunWritesTemplateData(t *testing.T) {
	dir := t.TempDir()
	dataOut := filepath.Join(dir, "data.json")
	g := New(Options{
		Input:             setupInput(t),
		Output:            filepath.Join(dir, "out.dart"),
		Language:          "dart",
		Engine:            "mustache",
		DataOut:           dataOut,
		GeneratedFileName: "assets_meta",
	}, nil)
	require.NoError(t, g.Run())

	raw, err := os.ReadFile(dataOut)
	require.NoError(t, err)
	var tree map[string]any
	require.NoError(t, json.Unmarshal(raw, &tree))
	assert.Equal(t, "assets_meta", tree["generated_file_name"])
	files, ok := tree["riv_files"].([]any)
	require.True(t, ok)
	assert.Len(t, files, 1, "the empty file is skipped")
}

func TestRunCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "names.mustache")
	require.NoError(t, os.WriteFile(tmpl, []byte(`{{#riv_files}}{{#artboards}}{{artboard_camel_case}}{{^last}} {{/last}}{{/artboards}}{{/riv_files}}`), 0o644))

	out := filepath.Join(dir, "names.txt")
	g := New(Options{Input: setupInput(t), Output: out, Template: tmpl, Language: "js", Engine: "mustache"}, nil)
	require.NoError(t, g.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "main button", string(data))
}

func TestRunReservedWords(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "t.tmpl")
	require.NoError(t, os.WriteFile(tmpl, []byte(`{{range .riv_files}}{{range .artboards}}{{.artboard_camel_case}};{{end}}{{end}}`), 0o644))
	input := filepath.Join(dir, "in.riv")
	require.NoError(t, os.WriteFile(input, []byte("artboards: [{name: main}, {name: class}]"), 0o644))

	out := filepath.Join(dir, "out.txt")
	g := New(Options{
		Input: input, Output: out, Template: tmpl,
		Language: "js", Engine: "template",
		ReservedWords: []string{"main"},
	}, nil)
	require.NoError(t, g.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "mainValue;classValue;", string(data))
}

func TestRunFallsBackToDefaultTemplate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.dart")
	g := New(Options{
		Input:    setupInput(t),
		Output:   out,
		Template: filepath.Join(t.TempDir(), "missing.mustache"),
		Language: "dart",
		Engine:   "mustache",
	}, nil)
	require.NoError(t, g.Run())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "abstract class RiveMeta")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    func(t *testing.T) Options
		wantErr string
	}{
		{
			name: "no input files",
			opts: func(t *testing.T) Options {
				return Options{Input: t.TempDir(), Output: "x.dart", Language: "dart", Engine: "mustache"}
			},
			wantErr: scanner.ErrNoInputFound.Error(),
		},
		{
			name: "js without template",
			opts: func(t *testing.T) Options {
				return Options{Input: setupInput(t), Output: "x.js", Language: "js", Engine: "mustache"}
			},
			wantErr: "no default mustache template for language 'js'",
		},
		{
			name: "unknown language",
			opts: func(t *testing.T) Options {
				return Options{Input: setupInput(t), Output: "x", Language: "cobol", Engine: "mustache"}
			},
			wantErr: "unsupported language",
		},
		{
			name: "unknown engine",
			opts: func(t *testing.T) Options {
				return Options{Input: setupInput(t), Output: "x", Language: "dart", Engine: "inja"}
			},
			wantErr: "unsupported engine",
		},
		{
			name: "missing input path",
			opts: func(t *testing.T) Options {
				return Options{Input: filepath.Join(t.TempDir(), "nope"), Output: "x", Language: "dart", Engine: "mustache"}
			},
			wantErr: "find asset files",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.opts(t), nil).Run()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNoInputFoundIsSentinel(t *testing.T) {
	_, err := New(Options{Input: t.TempDir()}, nil).ScanAll(nil)
	assert.ErrorIs(t, err, scanner.ErrNoInputFound)

	_, err = New(Options{Input: filepath.Join(t.TempDir(), "nope")}, nil).ScanAll(nil)
	assert.ErrorIs(t, err, scanner.ErrNoInputFound)
}

func TestTargets(t *testing.T) {
	assert.Equal(t, []string{"dart", "js"}, Languages())

	dart, err := LookupTarget("Dart")
	require.NoError(t, err)
	for _, engine := range []string{"mustache", "template"} {
		tmpl, err := dart.DefaultTemplate(engine)
		require.NoError(t, err)
		assert.Contains(t, tmpl, "RiveMeta")
	}
	assert.Contains(t, dart.Reserved().Words, "class")
}

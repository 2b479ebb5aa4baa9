package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/rivegen/internal/log"
)

func TestConfigInitFormats(t *testing.T) {
	decoders := map[string]func([]byte, any) error{
		"json": json.Unmarshal,
		"yaml": yaml.Unmarshal,
		"toml": toml.Unmarshal,
	}
	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "conf", "generate."+format)
			c := &ConfigInit{Command: "generate", Format: format, Output: dest}
			require.NoError(t, c.Run())

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			got := map[string]any{}
			require.NoError(t, decode(data, &got))

			assert.Equal(t, "dart", got["language"])
			assert.Equal(t, "mustache", got["engine"])
			assert.Equal(t, "rive_generated", got["file_name"])
			assert.Equal(t, false, got["ignore_private"])
			assert.Contains(t, got, "reserved_word")
			assert.Contains(t, got, "data_out")
			assert.Contains(t, got, "input")
		})
	}
}

func TestConfigInitDefaultDestination(t *testing.T) {
	chdir(t, t.TempDir())
	c := &ConfigInit{Command: "generate", Format: "yml"}
	require.NoError(t, c.Run())
	assert.FileExists(t, "generate.yaml")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "generate.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	err := (&ConfigInit{Command: "generate", Format: "json", Output: dest}).Run()
	assert.ErrorContains(t, err, "--force")

	require.NoError(t, (&ConfigInit{Command: "generate", Format: "json", Output: dest, Force: true}).Run())
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"language": "dart"`)
}

func TestConfigInitUnknownCommand(t *testing.T) {
	err := (&ConfigInit{Command: "serve", Format: "json", Output: filepath.Join(t.TempDir(), "x.json")}).Run()
	assert.ErrorContains(t, err, "unknown command")
}

func TestConfigKey(t *testing.T) {
	typ := reflect.TypeOf(Generate{})
	for field, want := range map[string]string{
		"Input":         "input",
		"IgnorePrivate": "ignore_private",
		"DataOut":       "data_out",
		"FileName":      "file_name",
	} {
		f, ok := typ.FieldByName(field)
		require.True(t, ok, field)
		assert.Equal(t, want, configKey(f))
	}

	type untagged struct{ RawFile string }
	f, _ := reflect.TypeOf(untagged{}).FieldByName("RawFile")
	assert.Equal(t, "raw_file", configKey(f))
}

func TestGenerateRun(t *testing.T) {
	dir := t.TempDir()
	scene := "artboards:\n  - name: Main\n    animations: [Idle]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.riv"), []byte(scene), 0o644))

	out := filepath.Join(dir, "out", "rive.dart")
	dataOut := filepath.Join(dir, "out", "data.json")
	c := &Generate{
		Input:    dir,
		Output:   out,
		Language: "dart",
		Engine:   "mustache",
		DataOut:  dataOut,
		FileName: "assets",
	}
	require.NoError(t, c.Run(log.Discard(), log.NewRaw(nil)))

	code, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(code), "// assets.dart")
	assert.Contains(t, string(code), "String get idle => 'Idle';")
	assert.FileExists(t, dataOut)
}

func TestGenerateRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	c := &Generate{
		Input:    filepath.Join(dir, "missing"),
		Output:   filepath.Join(dir, "rive.dart"),
		Language: "dart",
		Engine:   "mustache",
	}
	assert.Error(t, c.Run(log.Discard(), log.NewRaw(nil)))
	assert.NoFileExists(t, filepath.Join(dir, "rive.dart"))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

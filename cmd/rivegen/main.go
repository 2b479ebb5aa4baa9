package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/joho/godotenv"

	"github.com/Alia5/rivegen/internal/codegen/common"
	"github.com/Alia5/rivegen/internal/config"
	"github.com/Alia5/rivegen/internal/configpaths"
	"github.com/Alia5/rivegen/internal/log"
)

func main() {
	// Variables already in the environment win over .env entries.
	_ = godotenv.Load()

	version, err := common.GetVersion()
	if err != nil {
		version = common.Version
	}

	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userConfig(os.Args[1:]))

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name(configpaths.AppName),
		kong.Description("Generate typed accessors for Rive asset files from templates"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, rawLogger, closeAll, err := cli.Log.Open()
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))
	err = ctx.Run()
	closeAll()
	ctx.FatalIfErrorf(err)
}

// userConfig finds an explicit config file before Kong parses, so its
// loaders can be pointed at it.
func userConfig(args []string) string {
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("RIVEGEN_CONFIG")
}

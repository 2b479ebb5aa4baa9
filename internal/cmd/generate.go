package cmd

import (
	"log/slog"

	"github.com/Alia5/rivegen/internal/codegen/generator"
	"github.com/Alia5/rivegen/internal/log"
)

type Generate struct {
	Input         string   `short:"i" help:"Asset file, or directory of .riv files" required:"" type:"path" env:"RIVEGEN_INPUT"`
	Output        string   `short:"o" help:"Generated file path; a bare file name is written to the working directory" required:"" type:"path" env:"RIVEGEN_OUTPUT"`
	Template      string   `short:"t" help:"Custom template file; falls back to the built-in template when unreadable" type:"path" env:"RIVEGEN_TEMPLATE"`
	Language      string   `short:"l" help:"Target language: dart or js" default:"dart" enum:"dart,js" env:"RIVEGEN_LANGUAGE"`
	Engine        string   `short:"e" help:"Template engine: mustache (logic-less) or template (Go text/template)" default:"mustache" enum:"mustache,template" env:"RIVEGEN_ENGINE"`
	IgnorePrivate bool     `name:"ignore-private" help:"Skip elements whose names start with '_', 'internal' or 'private'" env:"RIVEGEN_IGNORE_PRIVATE"`
	ReservedWord  []string `name:"reserved-word" help:"Additional reserved identifiers for the target language" sep:"," env:"RIVEGEN_RESERVED_WORDS"`
	DataOut       string   `name:"data-out" help:"Also write the template data as JSON to this path" type:"path" env:"RIVEGEN_DATA_OUT"`
	FileName      string   `name:"file-name" help:"Value exposed to templates as generated_file_name" default:"rive_generated" env:"RIVEGEN_FILE_NAME"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	logger.Info("Starting code generation",
		"input", c.Input,
		"output", c.Output,
		"language", c.Language,
		"engine", c.Engine)

	gen := generator.New(generator.Options{
		Input:             c.Input,
		Output:            c.Output,
		Template:          c.Template,
		Language:          c.Language,
		Engine:            c.Engine,
		DataOut:           c.DataOut,
		IgnorePrivate:     c.IgnorePrivate,
		ReservedWords:     c.ReservedWord,
		GeneratedFileName: c.FileName,
		RawLogger:         rawLogger,
	}, logger)
	return gen.Run()
}

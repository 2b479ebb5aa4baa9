// Package generator runs the whole pipeline: find asset files, normalize
// each one, project the batch and render a single output file.
package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
	"github.com/Alia5/rivegen/internal/codegen/common"
	"github.com/Alia5/rivegen/internal/codegen/meta"
	"github.com/Alia5/rivegen/internal/codegen/render"
	"github.com/Alia5/rivegen/internal/codegen/scanner"
	"github.com/Alia5/rivegen/internal/codegen/templatedata"
	"github.com/Alia5/rivegen/internal/log"
)

type Options struct {
	// Input is an asset file or a directory of asset files.
	Input string
	// Output is the generated file. A bare file name lands in the working
	// directory.
	Output string
	// Template is an optional custom template path.
	Template string
	Language string
	Engine   string
	// DataOut, when set, receives the projected tree as indented JSON.
	DataOut       string
	IgnorePrivate bool
	// ReservedWords extends the target's reserved-word table.
	ReservedWords     []string
	GeneratedFileName string

	Decoder   assetgraph.Decoder
	RawLogger log.RawLogger
}

type Generator struct {
	opts   Options
	logger *slog.Logger
}

func New(opts Options, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = log.Discard()
	}
	return &Generator{opts: opts, logger: logger}
}

// Run executes the pipeline. Files that cannot be decoded are logged and
// skipped; finding no input at all is an error.
func (g *Generator) Run() error {
	target, err := LookupTarget(g.opts.Language)
	if err != nil {
		return err
	}
	caser := common.NewCaser(target.Reserved().With(g.opts.ReservedWords...))

	engine, err := render.New(g.opts.Engine, caser)
	if err != nil {
		return err
	}

	tmpl, err := g.loadTemplate(target, engine.Name())
	if err != nil {
		return err
	}

	assets, err := g.ScanAll(caser)
	if err != nil {
		return err
	}

	version, err := common.GetVersion()
	if err != nil {
		return err
	}
	data := engine.Project(assets, templatedata.Header{
		GeneratedFileName: g.opts.GeneratedFileName,
		GeneratorVersion:  version,
	})

	if g.opts.DataOut != "" {
		if err := writeJSON(g.opts.DataOut, data); err != nil {
			return err
		}
		g.logger.Info("Wrote template data", "file", g.opts.DataOut)
	}

	out, err := engine.Render(tmpl, data)
	if err != nil {
		return err
	}
	if err := writeFile(g.opts.Output, []byte(out)); err != nil {
		return err
	}

	g.logger.Info("Generated file",
		"output", g.opts.Output,
		"language", target.Name,
		"engine", engine.Name(),
		"files", len(assets))
	return nil
}

// loadTemplate reads the custom template, falling back to the target's
// default when it cannot be read.
func (g *Generator) loadTemplate(target Target, engine string) (string, error) {
	if g.opts.Template != "" {
		data, err := os.ReadFile(g.opts.Template)
		if err == nil {
			g.logger.Info("Using custom template", "template", g.opts.Template)
			return string(data), nil
		}
		g.logger.Warn("Unable to read template file, falling back to default",
			"template", g.opts.Template, "error", err)
	}
	return target.DefaultTemplate(engine)
}

// ScanAll normalizes every candidate file under the input path, in order.
func (g *Generator) ScanAll(caser *common.Caser) ([]*meta.SourceAsset, error) {
	files, err := scanner.FindCandidateFiles(g.opts.Input)
	if err != nil {
		return nil, fmt.Errorf("find asset files in %s: %w", g.opts.Input, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", g.opts.Input, scanner.ErrNoInputFound)
	}
	g.logger.Info("Found asset files", "count", len(files))

	s := scanner.New(g.logger, scanner.Options{
		IgnorePrivate: g.opts.IgnorePrivate,
		Decoder:       g.opts.Decoder,
		Caser:         caser,
		RawLogger:     g.opts.RawLogger,
	})

	assets := make([]*meta.SourceAsset, 0, len(files))
	for _, path := range files {
		asset, err := s.ProcessFile(path)
		if err != nil {
			if !errors.Is(err, scanner.ErrEmptyInput) && !errors.Is(err, scanner.ErrDecodeFailure) {
				return nil, err
			}
			g.logger.Error("Skipping asset file", "file", path, "error", err)
			continue
		}
		g.logger.Debug("Processed asset file", "file", path, "artboards", len(asset.Artboards))
		assets = append(assets, asset)
	}
	return assets, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal template data: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

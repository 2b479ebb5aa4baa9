// Package scanner normalizes decoded asset graphs into meta.SourceAsset values.
//
// Each file moves through the stages opened, enums collected, view models
// collected, enums filtered, defaults resolved, artboards collected and done.
// A file that cannot be read or decoded is rejected and the caller moves on to
// the next one.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
	"github.com/Alia5/rivegen/internal/codegen/assetgraph/scenedoc"
	"github.com/Alia5/rivegen/internal/codegen/common"
	"github.com/Alia5/rivegen/internal/codegen/meta"
	"github.com/Alia5/rivegen/internal/log"
)

type Options struct {
	// IgnorePrivate drops elements whose names mark them as private.
	IgnorePrivate bool
	// Decoder defaults to scenedoc.Decoder.
	Decoder assetgraph.Decoder
	// Caser defaults to a caser without reserved words.
	Caser *common.Caser
	// RawLogger receives the head of every file that fails to decode.
	RawLogger log.RawLogger
}

type Scanner struct {
	logger *slog.Logger
	opts   Options
}

func New(logger *slog.Logger, opts Options) *Scanner {
	if logger == nil {
		logger = log.Discard()
	}
	if opts.Decoder == nil {
		opts.Decoder = scenedoc.Decoder
	}
	if opts.Caser == nil {
		opts.Caser = common.NewCaser(common.Reserved{})
	}
	if opts.RawLogger == nil {
		opts.RawLogger = log.NewRaw(nil)
	}
	return &Scanner{logger: logger, opts: opts}
}

// ProcessFile reads, decodes and normalizes one asset file. The returned
// error wraps ErrEmptyInput or ErrDecodeFailure.
func (s *Scanner) ProcessFile(path string) (*meta.SourceAsset, error) {
	s.logger.Debug("Opening asset file", "file", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, s.reject(path, fmt.Errorf("%w: %w", ErrDecodeFailure, err))
	}
	if info.Size() == 0 {
		return nil, s.reject(path, fmt.Errorf("%s: %w", path, ErrEmptyInput))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, s.reject(path, fmt.Errorf("%w: %w", ErrDecodeFailure, err))
	}
	if len(data) == 0 {
		return nil, s.reject(path, fmt.Errorf("%s: %w", path, ErrEmptyInput))
	}

	f, err := s.opts.Decoder.Decode(data)
	if err != nil || f == nil {
		s.opts.RawLogger.Log(path, data)
		if err == nil {
			err = errors.New("decoder returned no file")
		}
		return nil, s.reject(path, fmt.Errorf("%s: %w: %w", path, ErrDecodeFailure, err))
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return s.Normalize(name, f), nil
}

func (s *Scanner) reject(path string, err error) error {
	s.logger.Debug("Asset file rejected", "file", path, "error", err)
	return err
}

// Normalize builds the canonical model of f. fileName is the base name
// without extension. It does not fail: references that do not resolve
// degrade to empty values.
func (s *Scanner) Normalize(fileName string, f assetgraph.File) *meta.SourceAsset {
	c := s.opts.Caser
	asset := &meta.SourceAsset{
		FileName: fileName,
		Names:    c.Variants(fileName),
		Assets:   s.collectAssets(f),
	}

	enums := s.collectEnums(f)
	s.logger.Log(context.Background(), log.LevelTrace, "Enums collected", "file", fileName, "count", len(enums))

	usedEnums := map[string]bool{}
	asset.ViewModels = s.collectViewModels(f, usedEnums)
	s.logger.Log(context.Background(), log.LevelTrace, "View models collected", "file", fileName, "count", len(asset.ViewModels))

	if s.opts.IgnorePrivate && len(asset.ViewModels) > 0 {
		kept := enums[:0:0]
		for _, e := range enums {
			if usedEnums[e.Name] {
				kept = append(kept, e)
			}
		}
		enums = kept
	}
	asset.Enums = enums
	s.logger.Log(context.Background(), log.LevelTrace, "Enums filtered", "file", fileName, "count", len(enums))

	asset.Defaults = ResolveDefaults(f, c)
	s.logger.Log(context.Background(), log.LevelTrace, "Defaults resolved", "file", fileName,
		"artboard", asset.Defaults.Artboard.Name,
		"stateMachine", asset.Defaults.StateMachine,
		"viewModel", asset.Defaults.ViewModel)

	retained := make(map[string]bool, len(asset.ViewModels))
	for _, vm := range asset.ViewModels {
		retained[vm.Name] = true
	}
	asset.Artboards = s.collectArtboards(f, retained)

	s.logger.Debug("Asset file normalized", "file", fileName,
		"artboards", len(asset.Artboards),
		"viewModels", len(asset.ViewModels),
		"enums", len(asset.Enums),
		"assets", len(asset.Assets))
	return asset
}

func (s *Scanner) include(name string) bool {
	return IncludeElement(name, s.opts.IgnorePrivate)
}

func (s *Scanner) identifier(name string, used map[string]bool) meta.Identifier {
	names := s.opts.Caser.Variants(name)
	if used != nil {
		names = common.UniqueNames(names, used)
	}
	return meta.Identifier{Name: name, Names: names}
}

func (s *Scanner) collectAssets(f assetgraph.File) []meta.AssetRef {
	var out []meta.AssetRef
	used := map[string]bool{}
	for _, a := range f.Assets() {
		if a == nil {
			continue
		}
		out = append(out, meta.AssetRef{
			Identifier:    s.identifier(a.Name(), used),
			Type:          a.Type(),
			FileExtension: a.FileExtension(),
			ID:            strconv.FormatUint(uint64(a.ID()), 10),
			CDNUUID:       canonicalUUID(a.CDNUUID()),
			CDNBaseURL:    a.CDNBaseURL(),
		})
	}
	return out
}

// canonicalUUID lower-cases and hyphenates a CDN identifier. Anything that
// does not parse as a UUID is passed through unchanged.
func canonicalUUID(raw string) string {
	if raw == "" {
		return ""
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return raw
	}
	return id.String()
}

func (s *Scanner) collectEnums(f assetgraph.File) []meta.EnumDef {
	var out []meta.EnumDef
	for _, e := range f.Enums() {
		if e == nil {
			continue
		}
		def := meta.EnumDef{Identifier: s.identifier(e.Name(), nil)}
		for _, key := range e.Values() {
			names := s.opts.Caser.Variants(key)
			def.Values = append(def.Values, meta.EnumValue{
				Key:                key,
				Names:              names,
				NeedsExplicitValue: key != names.Camel,
			})
		}
		out = append(out, def)
	}
	return out
}

func (s *Scanner) collectViewModels(f assetgraph.File, usedEnums map[string]bool) []meta.ViewModelDef {
	var out []meta.ViewModelDef
	for _, vm := range f.ViewModels() {
		if vm == nil || !s.include(vm.Name()) {
			continue
		}
		def := meta.ViewModelDef{Identifier: s.identifier(vm.Name(), nil)}

		// One instance per view model; every property reads its default from it.
		var inst assetgraph.ViewModelInstance
		instance := func() assetgraph.ViewModelInstance {
			if inst == nil {
				inst = f.CreateViewModelInstance(vm.Name())
			}
			return inst
		}

		for _, p := range vm.Properties() {
			if !s.include(p.Name) {
				continue
			}
			prop, ok := s.property(vm.Name(), p, instance, usedEnums)
			if !ok {
				continue
			}
			def.Properties = append(def.Properties, prop)
		}
		out = append(out, def)
	}
	return out
}

func (s *Scanner) property(vmName string, p assetgraph.Property, instance func() assetgraph.ViewModelInstance, usedEnums map[string]bool) (meta.PropertyDef, bool) {
	prop := meta.PropertyDef{
		Identifier: s.identifier(p.Name, nil),
		Type:       p.Type,
	}

	inst := instance()
	if inst == nil {
		s.logger.Debug("View model cannot be instantiated", "viewModel", vmName)
		return prop, true
	}

	switch p.Type {
	case assetgraph.DataViewModel:
		nested := inst.PropertyViewModel(p.Name)
		if nested == nil || nested.ViewModel() == nil {
			s.logger.Debug("Dangling view model reference", "viewModel", vmName, "property", p.Name)
			return prop, true
		}
		backing := nested.ViewModel().Name()
		if !s.include(backing) {
			return prop, false
		}
		prop.Backing = s.identifier(backing, nil)

	case assetgraph.DataEnum:
		v, ok := inst.PropertyValue(p.Name).(assetgraph.EnumValue)
		if !ok || v.Enum == nil {
			s.logger.Debug("Dangling enum reference", "viewModel", vmName, "property", p.Name)
			return prop, true
		}
		usedEnums[v.Enum.Name()] = true
		prop.Backing = s.identifier(v.Enum.Name(), nil)
		prop.DefaultValue = EnumDefault(v)
		if prop.DefaultValue != "" {
			prop.DefaultCamel = s.opts.Caser.Camel(prop.DefaultValue)
		}

	default:
		prop.DefaultValue = ResolveDefault(p.Type, inst.PropertyValue(p.Name))
	}
	return prop, true
}

func (s *Scanner) collectArtboards(f assetgraph.File, retainedViewModels map[string]bool) []meta.Artboard {
	var out []meta.Artboard
	usedArtboards := map[string]bool{}

	for i, ab := range f.Artboards() {
		if ab == nil || !s.include(ab.Name()) {
			continue
		}
		a := meta.Artboard{
			Identifier:  s.identifier(ab.Name(), usedArtboards),
			Index:       i,
			IsDefault:   i == 0,
			ViewModelID: ab.ViewModelID(),
		}
		a.ViewModel, a.HasViewModel = artboardViewModel(f, ab, retainedViewModels)
		if sm := ab.DefaultStateMachine(); sm != nil {
			a.HasDefaultStateMachine = true
			a.DefaultStateMachine = sm.Name()
		}

		usedAnimations := map[string]bool{}
		for _, anim := range ab.Animations() {
			if anim == nil || !s.include(anim.Name()) {
				continue
			}
			a.Animations = append(a.Animations, s.identifier(anim.Name(), usedAnimations))
		}

		usedStateMachines := map[string]bool{}
		for _, sm := range ab.StateMachines() {
			if sm == nil || !s.include(sm.Name()) {
				continue
			}
			a.StateMachines = append(a.StateMachines, s.stateMachine(sm, usedStateMachines))
		}

		usedTextRuns := map[string]bool{}
		for _, tr := range ab.TextRuns() {
			if tr == nil || tr.Name() == "" {
				continue
			}
			a.TextRuns = append(a.TextRuns, meta.TextRun{
				Identifier:     s.identifier(tr.Name(), usedTextRuns),
				DefaultValue:   tr.Text(),
				DefaultEscaped: common.Escape(tr.Text()),
			})
		}

		nested, cut := NestedTextRuns(ab)
		if cut {
			s.logger.Debug("Nested artboard cycle cut", "artboard", ab.Name())
		}
		a.NestedTextRuns = nested

		s.logger.Log(context.Background(), log.LevelTrace, "Artboard collected",
			"artboard", ab.Name(),
			"animations", len(a.Animations),
			"stateMachines", len(a.StateMachines),
			"textRuns", len(a.TextRuns),
			"nestedTextRuns", len(a.NestedTextRuns))
		out = append(out, a)
	}
	return out
}

func (s *Scanner) stateMachine(sm assetgraph.StateMachine, used map[string]bool) meta.StateMachine {
	out := meta.StateMachine{Identifier: s.identifier(sm.Name(), used)}
	usedInputs := map[string]bool{}
	for _, in := range sm.Inputs() {
		if in == nil {
			continue
		}
		out.Inputs = append(out.Inputs, meta.Input{
			Identifier:   s.identifier(in.Name(), usedInputs),
			Type:         in.Type(),
			DefaultValue: InputDefault(in),
		})
	}
	return out
}

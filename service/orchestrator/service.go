// Package orchestrator drives the parse, generate, render, and persist
// phases of a run.
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fmitools/fmi-bd2cmake/model"
	"github.com/fmitools/fmi-bd2cmake/service/builddesc"
	"github.com/fmitools/fmi-bd2cmake/service/cmake"
	"github.com/fmitools/fmi-bd2cmake/service/output"
	"github.com/fmitools/fmi-bd2cmake/service/reporter"
	"github.com/fmitools/fmi-bd2cmake/service/storage"
	"github.com/fmitools/fmi-bd2cmake/shared/spinner"
)

// NewService creates a new orchestrator service. store may be nil when
// persistence is disabled.
func NewService(
	parser builddesc.Service,
	generator cmake.Service,
	rep reporter.Service,
	out output.Service,
	store storage.Service,
	version model.VersionInfo,
) Service {
	return &service{
		parser:   parser,
		cmake:    generator,
		reporter: rep,
		output:   out,
		store:    store,
		version:  version,
	}
}

// Orchestrate runs one full generation pass for the given flags.
func (s *service) Orchestrate(flags model.Flags) error {
	if flags.Version {
		return s.output.RenderVersion()
	}

	start := time.Now()

	info, err := s.parseInput(flags.Input)
	if err != nil {
		return err
	}
	if err := s.parser.Validate(info); err != nil {
		return fmt.Errorf("invalid build description: %w", err)
	}

	extra, err := ParseDefines(flags.Defines)
	if err != nil {
		return err
	}

	outDir := flags.OutputDir
	if outDir == "" {
		outDir = defaultOutputDir(info.Path)
	}

	useSpinner := !flags.Quiet && flags.Output != "json"
	if useSpinner {
		spinner.StartSpinner()
	}

	results, err := s.generateAll(info, extra, outDir, flags.DryRun)
	if err != nil {
		if useSpinner {
			spinner.StopSpinner()
		}
		return err
	}

	var emulations []model.EmulationResult
	if flags.Emulate {
		emulations = s.emulateAll(info, extra)
	}

	if useSpinner {
		spinner.StopSpinner()
	}

	durationMS := time.Since(start).Milliseconds()
	renderInput := model.RenderRunInput{
		Input:      flags.Input,
		OutputDir:  outDir,
		FMIVersion: info.FMIVersion,
		DryRun:     flags.DryRun,
		DurationMS: durationMS,
		Results:    results,
		Emulations: emulations,
	}
	if err := s.output.RenderRun(renderInput); err != nil {
		return err
	}

	if flags.Store && s.store != nil {
		if err := s.persistRun(flags, outDir, durationMS, results); err != nil {
			return fmt.Errorf("failed to store run: %w", err)
		}
	}

	return nil
}

func (s *service) parseInput(input string) (*model.BuildInfo, error) {
	fi, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("cannot read input %s: %w", input, err)
	}
	if fi.IsDir() {
		return s.parser.ParseDir(input)
	}
	return s.parser.Parse(input)
}

// generateAll renders and writes CMakeLists.txt for every configuration in
// parallel. With multiple configurations each file goes into a directory
// named after its model identifier.
func (s *service) generateAll(info *model.BuildInfo, extra []model.PreprocessorDefinition, outDir string, dryRun bool) ([]model.ConfigurationResult, error) {
	results := make([]model.ConfigurationResult, len(info.BuildConfigurations))
	multi := len(info.BuildConfigurations) > 1

	g := new(errgroup.Group)
	for i, cfg := range info.BuildConfigurations {
		i, cfg := i, cfg
		g.Go(func() error {
			merged := cfg
			merged.PreprocessorDefinitions = append(
				append([]model.PreprocessorDefinition{}, cfg.PreprocessorDefinitions...), extra...)

			res, err := s.cmake.Generate(merged)
			if err != nil {
				return fmt.Errorf("%s: %w", configName(cfg, i), err)
			}

			target := filepath.Join(outDir, "CMakeLists.txt")
			if multi {
				target = filepath.Join(outDir, configName(cfg, i), "CMakeLists.txt")
			}
			if !dryRun {
				if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
					return fmt.Errorf("%s: %w", configName(cfg, i), err)
				}
				if err := os.WriteFile(target, []byte(res.Content), 0o644); err != nil {
					return fmt.Errorf("%s: %w", configName(cfg, i), err)
				}
			}

			results[i] = summarize(merged, res, target)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *service) emulateAll(info *model.BuildInfo, extra []model.PreprocessorDefinition) []model.EmulationResult {
	out := make([]model.EmulationResult, 0, len(info.BuildConfigurations))
	for i, cfg := range info.BuildConfigurations {
		defs := append([]model.PreprocessorDefinition{}, cfg.PreprocessorDefinitions...)
		for _, sfs := range cfg.SourceFileSets {
			defs = append(defs, sfs.PreprocessorDefinitions...)
		}
		defs = append(defs, extra...)

		var buf bytes.Buffer
		_ = s.reporter.Report(&buf, reporter.ConfigFromDefinitions(defs))
		out = append(out, model.EmulationResult{
			ModelIdentifier: configName(cfg, i),
			Output:          buf.String(),
		})
	}
	return out
}

func (s *service) persistRun(flags model.Flags, outDir string, durationMS int64, results []model.ConfigurationResult) error {
	flagsJSON, err := json.Marshal(flags)
	if err != nil {
		return err
	}

	input := storage.SaveRunInput{
		InputPath:  flags.Input,
		OutputDir:  outDir,
		DurationMS: durationMS,
		DryRun:     flags.DryRun,
		Version:    s.version.Version,
		FlagsJSON:  string(flagsJSON),
	}
	for _, r := range results {
		input.Configurations = append(input.Configurations, storage.ConfigurationRecord{
			ModelIdentifier: r.ModelIdentifier,
			Platform:        r.Platform,
			CStandard:       r.CStandard,
			CXXStandard:     r.CXXStandard,
			SourceFiles:     r.SourceFiles,
			Definitions:     r.Definitions,
			IncludeDirs:     r.IncludeDirs,
			Libraries:       r.Libraries,
			OutputPath:      r.OutputPath,
			BytesWritten:    r.BytesWritten,
		})
	}

	_, err = s.store.SaveRun(context.Background(), input)
	return err
}

// ParseDefines parses --define NAME[=VALUE] arguments.
func ParseDefines(defines []string) ([]model.PreprocessorDefinition, error) {
	var out []model.PreprocessorDefinition
	for _, d := range defines {
		name, value, _ := strings.Cut(d, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid define %q: name is required", d)
		}
		out = append(out, model.PreprocessorDefinition{Name: name, Value: strings.TrimSpace(value)})
	}
	return out, nil
}

// defaultOutputDir places CMakeLists.txt at the FMU root: the generated
// file references sources/<file>, so it belongs one level above a sources/
// build description.
func defaultOutputDir(descPath string) string {
	dir := filepath.Dir(descPath)
	if filepath.Base(dir) == "sources" {
		return filepath.Dir(dir)
	}
	return dir
}

func configName(cfg model.BuildConfiguration, idx int) string {
	if cfg.ModelIdentifier != "" {
		return cfg.ModelIdentifier
	}
	return fmt.Sprintf("config_%d", idx+1)
}

func summarize(cfg model.BuildConfiguration, res cmake.Result, target string) model.ConfigurationResult {
	sources, definitions, includes := 0, len(cfg.PreprocessorDefinitions), len(cfg.IncludeDirectories)
	for _, sfs := range cfg.SourceFileSets {
		sources += len(sfs.SourceFiles)
		definitions += len(sfs.PreprocessorDefinitions)
		includes += len(sfs.IncludeDirectories)
	}
	return model.ConfigurationResult{
		ModelIdentifier: cfg.ModelIdentifier,
		Platform:        cfg.Platform,
		CStandard:       res.CStandard,
		CXXStandard:     res.CXXStandard,
		SourceFiles:     sources,
		Definitions:     definitions,
		IncludeDirs:     includes,
		Libraries:       len(cfg.Libraries),
		OutputPath:      target,
		BytesWritten:    len(res.Content),
	}
}

// Package builddesc parses buildDescription.xml files from FMU source
// archives into the model used by the generator.
package builddesc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fmitools/fmi-bd2cmake/model"
)

// DescriptionFileName is the canonical build description file name.
const DescriptionFileName = "buildDescription.xml"

type xmlBuildDescription struct {
	XMLName             xml.Name                `xml:"fmiBuildDescription"`
	FMIVersion          string                  `xml:"fmiVersion,attr"`
	BuildConfigurations []xmlBuildConfiguration `xml:"BuildConfiguration"`
}

type xmlBuildConfiguration struct {
	ModelIdentifier         string             `xml:"modelIdentifier,attr"`
	Platform                string             `xml:"platform,attr"`
	Description             string             `xml:"description,attr"`
	SourceFileSets          []xmlSourceFileSet `xml:"SourceFileSet"`
	IncludeDirectories      []xmlNamed         `xml:"IncludeDirectory"`
	PreprocessorDefinitions []xmlDefinition    `xml:"PreprocessorDefinition"`
	Libraries               []xmlNamed         `xml:"Library"`
}

type xmlSourceFileSet struct {
	Name                    string          `xml:"name,attr"`
	Language                string          `xml:"language,attr"`
	Compiler                string          `xml:"compiler,attr"`
	CompilerOptions         string          `xml:"compilerOptions,attr"`
	SourceFiles             []xmlNamed      `xml:"SourceFile"`
	PreprocessorDefinitions []xmlDefinition `xml:"PreprocessorDefinition"`
	IncludeDirectories      []xmlNamed      `xml:"IncludeDirectory"`
}

type xmlNamed struct {
	Name string `xml:"name,attr"`
}

type xmlDefinition struct {
	Name        string `xml:"name,attr"`
	Value       string `xml:"value,attr"`
	Optional    bool   `xml:"optional,attr"`
	Description string `xml:"description,attr"`
}

// NewService creates a new build description service.
func NewService() Service {
	return &service{}
}

// Parse reads and decodes a buildDescription.xml file.
func (s *service) Parse(path string) (*model.BuildInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build description: %w", err)
	}

	var desc xmlBuildDescription
	if err := xml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	info := &model.BuildInfo{
		FMIVersion: desc.FMIVersion,
		Path:       path,
	}
	for _, bc := range desc.BuildConfigurations {
		info.BuildConfigurations = append(info.BuildConfigurations, mapConfiguration(bc))
	}
	return info, nil
}

// ParseDir locates the build description inside an FMU source directory.
// FMI 3.0 places it under sources/; a top-level file is accepted as well.
func (s *service) ParseDir(dir string) (*model.BuildInfo, error) {
	candidates := []string{
		filepath.Join(dir, "sources", DescriptionFileName),
		filepath.Join(dir, DescriptionFileName),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return s.Parse(c)
		}
	}
	return nil, fmt.Errorf("no %s found under %s", DescriptionFileName, dir)
}

// Validate checks that the description can drive generation.
func (s *service) Validate(info *model.BuildInfo) error {
	if info == nil || len(info.BuildConfigurations) == 0 {
		return errors.New("no build configurations found")
	}
	for i, bc := range info.BuildConfigurations {
		if bc.ModelIdentifier == "" {
			return fmt.Errorf("build configuration %d has no model identifier", i+1)
		}
		sources := 0
		for _, sfs := range bc.SourceFileSets {
			sources += len(sfs.SourceFiles)
			for _, def := range sfs.PreprocessorDefinitions {
				if def.Name == "" {
					return fmt.Errorf("%s: preprocessor definition with empty name", bc.ModelIdentifier)
				}
			}
		}
		for _, def := range bc.PreprocessorDefinitions {
			if def.Name == "" {
				return fmt.Errorf("%s: preprocessor definition with empty name", bc.ModelIdentifier)
			}
		}
		if sources == 0 {
			return fmt.Errorf("%s: no source files found in build configuration", bc.ModelIdentifier)
		}
	}
	return nil
}

func mapConfiguration(bc xmlBuildConfiguration) model.BuildConfiguration {
	out := model.BuildConfiguration{
		ModelIdentifier: bc.ModelIdentifier,
		Platform:        bc.Platform,
		Description:     bc.Description,
	}
	for _, sfs := range bc.SourceFileSets {
		out.SourceFileSets = append(out.SourceFileSets, mapSourceFileSet(sfs))
	}
	for _, inc := range bc.IncludeDirectories {
		out.IncludeDirectories = append(out.IncludeDirectories, inc.Name)
	}
	for _, def := range bc.PreprocessorDefinitions {
		out.PreprocessorDefinitions = append(out.PreprocessorDefinitions, mapDefinition(def))
	}
	for _, lib := range bc.Libraries {
		out.Libraries = append(out.Libraries, lib.Name)
	}
	return out
}

func mapSourceFileSet(sfs xmlSourceFileSet) model.SourceFileSet {
	out := model.SourceFileSet{
		Name:            sfs.Name,
		Language:        sfs.Language,
		Compiler:        sfs.Compiler,
		CompilerOptions: sfs.CompilerOptions,
	}
	for _, sf := range sfs.SourceFiles {
		out.SourceFiles = append(out.SourceFiles, sf.Name)
	}
	for _, def := range sfs.PreprocessorDefinitions {
		out.PreprocessorDefinitions = append(out.PreprocessorDefinitions, mapDefinition(def))
	}
	for _, inc := range sfs.IncludeDirectories {
		out.IncludeDirectories = append(out.IncludeDirectories, inc.Name)
	}
	return out
}

func mapDefinition(def xmlDefinition) model.PreprocessorDefinition {
	return model.PreprocessorDefinition{
		Name:        def.Name,
		Value:       def.Value,
		Optional:    def.Optional,
		Description: def.Description,
	}
}

// Package cmake generates CMakeLists.txt content from FMI build
// configurations. The emitted project builds the model as a shared library
// into binaries/<FMI_PLATFORM>, matching the FMU layout.
package cmake

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fmitools/fmi-bd2cmake/model"
)

const defaultProjectName = "fmi_model"

// NewService creates a new CMake generator service.
func NewService() Service {
	return &service{}
}

// Generate renders the CMakeLists.txt for one build configuration.
func (s *service) Generate(cfg model.BuildConfiguration) (Result, error) {
	sources := collectSources(cfg)
	if len(sources) == 0 {
		return Result{}, errors.New("no source files found in build configuration")
	}

	projectName := cfg.ModelIdentifier
	if projectName == "" {
		projectName = defaultProjectName
	}

	cStd, cxxStd := languageStandards(cfg)

	var lines []string
	lines = append(lines, "cmake_minimum_required(VERSION 3.5)", "")
	lines = append(lines, `set(CMAKE_SHARED_LIBRARY_PREFIX "")`, "")
	lines = append(lines, fmt.Sprintf("project(%s)", projectName), "")

	lines = append(lines, architectureDetection()...)
	lines = append(lines, "")

	if cStd != "" {
		lines = append(lines, fmt.Sprintf("set(CMAKE_C_STANDARD %s)", cStd))
	}
	if cxxStd != "" {
		lines = append(lines, fmt.Sprintf("set(CMAKE_CXX_STANDARD %s)", cxxStd))
	}
	if cStd != "" || cxxStd != "" {
		lines = append(lines, "")
	}

	lines = append(lines, "# Create shared library")
	lines = append(lines, fmt.Sprintf("add_library(%s SHARED", projectName))
	for _, src := range sources {
		lines = append(lines, "    "+src)
	}
	lines = append(lines, ")", "")

	lines = append(lines, "# Set target properties")
	lines = append(lines, fmt.Sprintf("set_target_properties(%s PROPERTIES", projectName))
	lines = append(lines, fmt.Sprintf("    OUTPUT_NAME %s", projectName))
	lines = append(lines, "    LIBRARY_OUTPUT_DIRECTORY binaries/${FMI_PLATFORM}")
	lines = append(lines, "    RUNTIME_OUTPUT_DIRECTORY binaries/${FMI_PLATFORM}")
	lines = append(lines, ")", "")

	lines = append(lines, fmiHeadersSection()...)
	lines = append(lines, "")

	includeDirs := collectIncludeDirs(cfg)
	lines = append(lines, "# Include directories")
	lines = append(lines, fmt.Sprintf("target_include_directories(%s PRIVATE", projectName))
	lines = append(lines, "    $<$<BOOL:${FMI_HEADERS_DIR}>:${FMI_HEADERS_DIR}>")
	for _, dir := range includeDirs {
		lines = append(lines, "    "+dir)
	}
	lines = append(lines, ")", "")

	if defs := collectDefinitions(cfg); len(defs) > 0 {
		lines = append(lines, "# Preprocessor definitions")
		lines = append(lines, fmt.Sprintf("target_compile_definitions(%s PRIVATE", projectName))
		for _, def := range defs {
			lines = append(lines, "    "+def)
		}
		lines = append(lines, ")", "")
	}

	if opts := collectCompilerOptions(cfg); len(opts) > 0 {
		lines = append(lines, "# Compiler options")
		lines = append(lines, fmt.Sprintf("target_compile_options(%s PRIVATE", projectName))
		for _, opt := range opts {
			lines = append(lines, "    "+opt)
		}
		lines = append(lines, ")", "")
	}

	if len(cfg.Libraries) > 0 {
		lines = append(lines, "# Link libraries")
		lines = append(lines, fmt.Sprintf("target_link_libraries(%s PRIVATE", projectName))
		for _, lib := range cfg.Libraries {
			lines = append(lines, "    "+lib)
		}
		lines = append(lines, ")", "")
	}

	lines = append(lines, "# Install rules")
	lines = append(lines, fmt.Sprintf("install(TARGETS %s", projectName))
	lines = append(lines, "    LIBRARY DESTINATION binaries/${FMI_PLATFORM}")
	lines = append(lines, "    RUNTIME DESTINATION binaries/${FMI_PLATFORM}")
	lines = append(lines, ")", "")

	lines = append(lines, "# Create binaries directory")
	lines = append(lines, "file(MAKE_DIRECTORY ${CMAKE_BINARY_DIR}/binaries/${FMI_PLATFORM})")

	return Result{
		Content:     strings.Join(lines, "\n") + "\n",
		CStandard:   cStd,
		CXXStandard: cxxStd,
	}, nil
}

// collectSources flattens all source file sets, prefixing sources/ per the
// FMU archive convention.
func collectSources(cfg model.BuildConfiguration) []string {
	var out []string
	for _, sfs := range cfg.SourceFileSets {
		for _, sf := range sfs.SourceFiles {
			out = append(out, "sources/"+sf)
		}
	}
	return out
}

func collectIncludeDirs(cfg model.BuildConfiguration) []string {
	set := map[string]struct{}{"sources": {}}
	for _, dir := range cfg.IncludeDirectories {
		set[dir] = struct{}{}
	}
	for _, sfs := range cfg.SourceFileSets {
		for _, dir := range sfs.IncludeDirectories {
			set[dir] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func collectDefinitions(cfg model.BuildConfiguration) []string {
	set := map[string]struct{}{}
	for _, def := range cfg.PreprocessorDefinitions {
		set[def.String()] = struct{}{}
	}
	for _, sfs := range cfg.SourceFileSets {
		for _, def := range sfs.PreprocessorDefinitions {
			set[def.String()] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func collectCompilerOptions(cfg model.BuildConfiguration) []string {
	set := map[string]struct{}{}
	for _, sfs := range cfg.SourceFileSets {
		for _, opt := range strings.Fields(sfs.CompilerOptions) {
			set[opt] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var cStandards = map[string]string{
	"C89": "90",
	"C90": "90",
	"C99": "99",
	"C11": "11",
	"C17": "17",
}

var cxxStandards = map[string]string{
	"C++":   "11",
	"CPP":   "11",
	"C++98": "98",
	"C++03": "03",
	"C++11": "11",
	"C++14": "14",
	"C++17": "17",
	"C++20": "20",
}

// languageStandards picks C/C++ standards from the source set languages,
// falling back to file-extension sniffing when no language is declared.
func languageStandards(cfg model.BuildConfiguration) (string, string) {
	var cStd, cxxStd string
	for _, sfs := range cfg.SourceFileSets {
		lang := strings.ToUpper(sfs.Language)
		if std, ok := cStandards[lang]; ok && cStd == "" {
			cStd = std
		}
		if std, ok := cxxStandards[lang]; ok && cxxStd == "" {
			cxxStd = std
		}
	}
	if cStd != "" || cxxStd != "" {
		return cStd, cxxStd
	}

	hasC, hasCXX := false, false
	for _, sfs := range cfg.SourceFileSets {
		for _, sf := range sfs.SourceFiles {
			switch {
			case hasSuffix(sf, ".cpp", ".cxx", ".cc", ".hpp", ".hxx"):
				hasCXX = true
			case hasSuffix(sf, ".c", ".h"):
				hasC = true
			}
		}
	}
	if hasCXX {
		return "", "11"
	}
	if hasC {
		return "99", ""
	}
	return "", ""
}

func hasSuffix(name string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

func architectureDetection() []string {
	return []string{
		"# Architecture detection",
		`set(FMI_ARCHITECTURE "" CACHE STRING "FMI Architecture")`,
		`set_property(CACHE FMI_ARCHITECTURE PROPERTY STRINGS "" "aarch64" "x86" "x86_64")`,
		"",
		"if (NOT FMI_ARCHITECTURE)",
		"  # Try CMAKE_SYSTEM_PROCESSOR first, then CMAKE_HOST_SYSTEM_PROCESSOR as fallback",
		`  set(PROCESSOR "${CMAKE_SYSTEM_PROCESSOR}")`,
		"  if (NOT PROCESSOR)",
		`    set(PROCESSOR "${CMAKE_HOST_SYSTEM_PROCESSOR}")`,
		"  endif()",
		"  ",
		`  if (PROCESSOR MATCHES "AMD64|x86_64")`,
		`    set(FMI_ARCHITECTURE "x86_64")`,
		`  elseif (PROCESSOR MATCHES "i386|i686|x86")`,
		`    set(FMI_ARCHITECTURE "x86")`,
		`  elseif (PROCESSOR MATCHES "aarch64|arm64")`,
		`    set(FMI_ARCHITECTURE "aarch64")`,
		`  elseif (PROCESSOR MATCHES "arm")`,
		`    set(FMI_ARCHITECTURE "arm")`,
		"  else ()",
		"    # Default to x86_64 if processor is unknown or empty",
		`    message(STATUS "Unknown or empty system processor '${PROCESSOR}', defaulting to x86_64")`,
		`    set(FMI_ARCHITECTURE "x86_64")`,
		"  endif ()",
		"endif ()",
		"",
		"# Platform detection",
		"if (WIN32)",
		`  set(FMI_PLATFORM "${FMI_ARCHITECTURE}-windows")`,
		"elseif (APPLE)",
		`  set(FMI_PLATFORM "${FMI_ARCHITECTURE}-darwin")`,
		"else ()",
		`  set(FMI_PLATFORM "${FMI_ARCHITECTURE}-linux")`,
		"endif ()",
		"",
		`message(STATUS "FMI Platform: ${FMI_PLATFORM}")`,
	}
}

func fmiHeadersSection() []string {
	return []string{
		"# Find FMI headers directory",
		"# Can be set via -DFMI_HEADERS_DIR=/path or FMI_HEADERS_DIR environment variable",
		"if(NOT FMI_HEADERS_DIR)",
		"    # Try environment variable first",
		"    set(FMI_HEADERS_DIR $ENV{FMI_HEADERS_DIR})",
		"endif()",
		"",
		"# Try to find fmi2Functions.h if FMI_HEADERS_DIR is not set",
		"if(NOT FMI_HEADERS_DIR)",
		"    find_path(FMI_HEADERS_DIR",
		"        NAMES fmi2Functions.h",
		"        PATHS",
		"            /usr/include/fmi2",
		"            /usr/local/include/fmi2",
		"            /opt/local/include/fmi2",
		"            ${CMAKE_SOURCE_DIR}/../fmi-headers",
		"            ${CMAKE_SOURCE_DIR}/fmi-headers",
		`        DOC "FMI headers directory containing fmi2Functions.h"`,
		"    )",
		"endif()",
		"",
		"if(FMI_HEADERS_DIR)",
		`    message(STATUS "Using FMI headers from: ${FMI_HEADERS_DIR}")`,
		"else()",
		`    message(STATUS "FMI headers not found - you may need to set FMI_HEADERS_DIR")`,
		"endif()",
	}
}

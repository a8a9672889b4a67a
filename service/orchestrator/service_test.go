package orchestrator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fmitools/fmi-bd2cmake/model"
	"github.com/fmitools/fmi-bd2cmake/service/builddesc"
	"github.com/fmitools/fmi-bd2cmake/service/cmake"
	"github.com/fmitools/fmi-bd2cmake/service/output"
	"github.com/fmitools/fmi-bd2cmake/service/reporter"
)

const singleConfigXML = `<?xml version="1.0" encoding="UTF-8"?>
<fmiBuildDescription fmiVersion="3.0">
  <BuildConfiguration modelIdentifier="test_advanced">
    <SourceFileSet language="C99">
      <SourceFile name="main.c"/>
      <PreprocessorDefinition name="FMI_VERSION" value="2"/>
    </SourceFileSet>
  </BuildConfiguration>
</fmiBuildDescription>`

const multiConfigXML = `<?xml version="1.0" encoding="UTF-8"?>
<fmiBuildDescription fmiVersion="3.0">
  <BuildConfiguration modelIdentifier="model_a">
    <SourceFileSet language="C99">
      <SourceFile name="a.c"/>
    </SourceFileSet>
  </BuildConfiguration>
  <BuildConfiguration modelIdentifier="model_b">
    <SourceFileSet language="C++11">
      <SourceFile name="b.cpp"/>
    </SourceFileSet>
  </BuildConfiguration>
</fmiBuildDescription>`

func newTestOrchestrator(t *testing.T) Service {
	t.Helper()
	version := model.VersionInfo{Version: "test", Commit: "none", Date: "unknown"}
	return NewService(
		builddesc.NewService(),
		cmake.NewService(),
		reporter.NewService(),
		output.NewService("json", version),
		nil,
		version,
	)
}

func writeFMU(t *testing.T, xml string) string {
	t.Helper()
	dir := t.TempDir()
	sources := filepath.Join(dir, "sources")
	if err := os.MkdirAll(sources, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sources, "buildDescription.xml"), []byte(xml), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return dir
}

func TestOrchestrateWritesCMakeLists(t *testing.T) {
	svc := newTestOrchestrator(t)
	fmuDir := writeFMU(t, singleConfigXML)

	err := svc.Orchestrate(model.Flags{Input: fmuDir, Output: "json", Quiet: true})
	if err != nil {
		t.Fatalf("Orchestrate failed: %v", err)
	}

	// Default output location is the FMU root, above sources/.
	data, err := os.ReadFile(filepath.Join(fmuDir, "CMakeLists.txt"))
	if err != nil {
		t.Fatalf("expected CMakeLists.txt at FMU root: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "project(test_advanced)") {
		t.Fatalf("unexpected generated content:\n%s", content)
	}
	if !strings.Contains(content, "FMI_VERSION=2") {
		t.Fatalf("expected preprocessor definition in output:\n%s", content)
	}
}

func TestOrchestrateDryRun(t *testing.T) {
	svc := newTestOrchestrator(t)
	fmuDir := writeFMU(t, singleConfigXML)

	err := svc.Orchestrate(model.Flags{Input: fmuDir, Output: "json", Quiet: true, DryRun: true})
	if err != nil {
		t.Fatalf("Orchestrate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(fmuDir, "CMakeLists.txt")); !os.IsNotExist(err) {
		t.Fatal("dry run must not write CMakeLists.txt")
	}
}

func TestOrchestrateMultipleConfigurations(t *testing.T) {
	svc := newTestOrchestrator(t)
	fmuDir := writeFMU(t, multiConfigXML)
	outDir := t.TempDir()

	err := svc.Orchestrate(model.Flags{Input: fmuDir, Output: "json", Quiet: true, OutputDir: outDir})
	if err != nil {
		t.Fatalf("Orchestrate failed: %v", err)
	}

	for _, name := range []string{"model_a", "model_b"} {
		path := filepath.Join(outDir, name, "CMakeLists.txt")
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s: %v", path, err)
		}
	}
}

func TestOrchestrateExtraDefines(t *testing.T) {
	svc := newTestOrchestrator(t)
	fmuDir := writeFMU(t, singleConfigXML)

	err := svc.Orchestrate(model.Flags{
		Input:   fmuDir,
		Output:  "json",
		Quiet:   true,
		Defines: []string{"PLATFORM_LINUX", "EXTRA=1"},
	})
	if err != nil {
		t.Fatalf("Orchestrate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(fmuDir, "CMakeLists.txt"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "PLATFORM_LINUX") || !strings.Contains(string(data), "EXTRA=1") {
		t.Fatalf("expected extra defines in output:\n%s", data)
	}
}

func TestOrchestrateMissingInput(t *testing.T) {
	svc := newTestOrchestrator(t)
	err := svc.Orchestrate(model.Flags{Input: filepath.Join(t.TempDir(), "missing"), Output: "json", Quiet: true})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestOrchestrateInvalidDefine(t *testing.T) {
	svc := newTestOrchestrator(t)
	fmuDir := writeFMU(t, singleConfigXML)

	err := svc.Orchestrate(model.Flags{Input: fmuDir, Output: "json", Quiet: true, Defines: []string{"=oops"}})
	if err == nil {
		t.Fatal("expected error for invalid define")
	}
}

func TestParseDefines(t *testing.T) {
	defs, err := ParseDefines([]string{"DEBUG", "FMI_VERSION=2", "NAME = value"})
	if err != nil {
		t.Fatalf("ParseDefines failed: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("expected 3 defines, got %d", len(defs))
	}
	if defs[0].String() != "DEBUG" || defs[1].String() != "FMI_VERSION=2" || defs[2].String() != "NAME=value" {
		t.Fatalf("unexpected defines: %+v", defs)
	}
}

func TestDefaultOutputDir(t *testing.T) {
	if got := defaultOutputDir(filepath.Join("fmu", "sources", "buildDescription.xml")); got != "fmu" {
		t.Fatalf("expected fmu, got %s", got)
	}
	if got := defaultOutputDir(filepath.Join("fmu", "buildDescription.xml")); got != "fmu" {
		t.Fatalf("expected fmu, got %s", got)
	}
}

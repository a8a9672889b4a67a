package flag

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
)

func resetFlagState(t *testing.T, args []string) func() {
	t.Helper()
	oldCommandLine := pflag.CommandLine
	oldArgs := os.Args
	pflag.CommandLine = pflag.NewFlagSet("test", pflag.ContinueOnError)
	os.Args = append([]string{"fmi-bd2cmake"}, args...)
	return func() {
		pflag.CommandLine = oldCommandLine
		os.Args = oldArgs
	}
}

func TestGetParsedFlagsAllOptions(t *testing.T) {
	cleanup := resetFlagState(t, []string{
		"--input", "testdata/fmu",
		"--output-dir", "/tmp/out",
		"--output", "json",
		"--dry-run",
		"--emulate",
		"--define", "FMI_VERSION=2",
		"--define", "DEBUG",
		"--quiet",
		"--store",
		"--db-path", "/tmp/history.db",
		"--trend-days", "15",
		"--config-path", "/tmp/config.yaml",
	})
	defer cleanup()

	svc := NewService()
	flags, err := svc.GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.Input != "testdata/fmu" || flags.OutputDir != "/tmp/out" {
		t.Fatalf("unexpected input/output-dir: %+v", flags)
	}
	if flags.Output != "json" || !flags.DryRun || !flags.Emulate {
		t.Fatalf("unexpected output/dry-run/emulate: %+v", flags)
	}
	if len(flags.Defines) != 2 || flags.Defines[0] != "FMI_VERSION=2" || flags.Defines[1] != "DEBUG" {
		t.Fatalf("unexpected defines: %v", flags.Defines)
	}
	if !flags.Quiet || !flags.Store || flags.DBPath != "/tmp/history.db" {
		t.Fatalf("unexpected quiet/store/db-path: %+v", flags)
	}
	if flags.TrendDays != 15 || flags.ConfigPath != "/tmp/config.yaml" {
		t.Fatalf("unexpected trend-days/config-path: %+v", flags)
	}
}

func TestGetParsedFlagsDefaults(t *testing.T) {
	cleanup := resetFlagState(t, nil)
	defer cleanup()

	svc := NewService()
	flags, err := svc.GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.Input != "." || flags.Output != "table" || flags.TrendDays != 30 {
		t.Fatalf("unexpected defaults: %+v", flags)
	}
	if flags.DryRun || flags.Emulate || flags.Store || flags.Quiet || flags.Version {
		t.Fatalf("boolean flags should default to false: %+v", flags)
	}
}

func TestGetParsedFlagsNormalizesOutput(t *testing.T) {
	cleanup := resetFlagState(t, []string{"--output", " JSON "})
	defer cleanup()

	svc := NewService()
	flags, err := svc.GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}
	if flags.Output != "json" {
		t.Fatalf("expected normalized json format, got %q", flags.Output)
	}
}

func TestGetParsedFlagsRejectsUnknownFormat(t *testing.T) {
	cleanup := resetFlagState(t, []string{"--output", "xml"})
	defer cleanup()

	svc := NewService()
	if _, err := svc.GetParsedFlags(); err == nil {
		t.Fatal("expected error for unsupported output format")
	}
}

// Package reporter emits the status lines a built FMI model reports on
// startup: its FMI version, optional build-flag lines, and a square-root
// self-check.
package reporter

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fmitools/fmi-bd2cmake/model"
)

// buildVersion is the reported FMI major version. Override at build time:
//
//	go build -ldflags "-X github.com/fmitools/fmi-bd2cmake/service/reporter.buildVersion=2"
var buildVersion = "3"

const fallbackVersion = 3

// NewService creates a new reporter service.
func NewService() Service {
	return &service{}
}

// DefaultConfig resolves the compile-time reporter configuration: the
// ldflags version, the fmidebug build tag, and the target GOOS.
func DefaultConfig() Config {
	return Config{
		Version:       versionFromBuild(),
		Debug:         debugEnabled,
		PlatformLinux: platformLinux,
	}
}

// ConfigFromDefinitions derives a reporter configuration from a build
// configuration's preprocessor definitions. FMI_VERSION sets the version,
// DEBUG and PLATFORM_LINUX enable their respective lines.
func ConfigFromDefinitions(defs []model.PreprocessorDefinition) Config {
	cfg := Config{Version: versionFromBuild()}
	for _, d := range defs {
		switch d.Name {
		case "FMI_VERSION":
			if v, err := strconv.Atoi(strings.TrimSpace(d.Value)); err == nil && v > 0 {
				cfg.Version = v
			}
		case "DEBUG":
			cfg.Debug = true
		case "PLATFORM_LINUX":
			cfg.PlatformLinux = true
		}
	}
	return cfg
}

// Report writes the status lines in fixed order: version, the optional
// flag-gated lines, then the square-root self-check. It always succeeds;
// stream write failures are not this reporter's responsibility.
func (s *service) Report(w io.Writer, cfg Config) error {
	fmt.Fprintf(w, "FMI Version: %d\n", cfg.Version)
	if cfg.Debug {
		fmt.Fprintln(w, "Debug mode enabled")
	}
	if cfg.PlatformLinux {
		fmt.Fprintln(w, "Platform: Linux")
	}
	fmt.Fprintf(w, "sqrt(16) = %f\n", math.Sqrt(16.0))
	return nil
}

func versionFromBuild() int {
	v, err := strconv.Atoi(strings.TrimSpace(buildVersion))
	if err != nil || v <= 0 {
		return fallbackVersion
	}
	return v
}

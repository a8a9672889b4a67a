package flag

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/fmitools/fmi-bd2cmake/model"
)

var validOutputs = []string{"table", "json"}

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	input := pflag.StringP("input", "i", ".", "FMU source directory or buildDescription.xml path")
	outputDir := pflag.StringP("output-dir", "d", "", "Directory for generated CMakeLists.txt (default: next to the build description)")
	output := pflag.StringP("output", "o", "table", "Output format (table or json)")
	dryRun := pflag.Bool("dry-run", false, "Generate without writing any files")
	emulate := pflag.Bool("emulate", false, "Print the status output the configured model would report")
	defines := pflag.StringArray("define", nil, "Extra preprocessor definition NAME[=VALUE] (repeatable)")
	version := pflag.BoolP("version", "v", false, "Show version information")
	quiet := pflag.BoolP("quiet", "q", false, "Suppress banner and spinner")
	store := pflag.Bool("store", false, "Persist run results in local SQLite database")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.fmi-bd2cmake/history.db)")
	trendDays := pflag.Int("trend-days", 30, "Number of days for history trends")
	configPath := pflag.String("config-path", "", "Path to fmi-bd2cmake config file")

	pflag.Parse()

	format := strings.ToLower(strings.TrimSpace(*output))
	if !isValidOutput(format) {
		return model.Flags{}, fmt.Errorf("unsupported output format %q (expected one of %s)", *output, strings.Join(validOutputs, ", "))
	}

	flags := model.Flags{
		Input:      *input,
		OutputDir:  *outputDir,
		Output:     format,
		DryRun:     *dryRun,
		Emulate:    *emulate,
		Defines:    *defines,
		Version:    *version,
		Quiet:      *quiet,
		Store:      *store,
		DBPath:     *dbPath,
		TrendDays:  *trendDays,
		ConfigPath: *configPath,
	}

	return flags, nil
}

func isValidOutput(format string) bool {
	for _, v := range validOutputs {
		if format == v {
			return true
		}
	}
	return false
}

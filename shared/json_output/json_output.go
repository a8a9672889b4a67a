// Package jsonoutput builds and prints machine-readable run reports.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fmitools/fmi-bd2cmake/model"
)

const toolName = "fmi-bd2cmake"

// OutputRunJSON outputs the run report as JSON.
func OutputRunJSON(input model.RenderRunInput, version model.VersionInfo) error {
	report := BuildRunReport(input, version, time.Now().UTC().Format(time.RFC3339))
	return printJSON(report)
}

// BuildRunReport builds the JSON run report model.
func BuildRunReport(input model.RenderRunInput, version model.VersionInfo, generatedAt string) model.RunReportJSON {
	report := model.RunReportJSON{
		Tool:        toolName,
		Version:     version.Version,
		GeneratedAt: generatedAt,
		Input:       input.Input,
		OutputDir:   input.OutputDir,
		FMIVersion:  input.FMIVersion,
		DryRun:      input.DryRun,
		DurationMS:  input.DurationMS,
	}
	for _, r := range input.Results {
		report.Configurations = append(report.Configurations, model.ConfigurationReportJSON{
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
	for _, em := range input.Emulations {
		report.Emulations = append(report.Emulations, model.EmulationReportJSON{
			ModelIdentifier: em.ModelIdentifier,
			Output:          em.Output,
		})
	}
	return report
}

// OutputVersionJSON outputs version information as JSON.
func OutputVersionJSON(version model.VersionInfo) error {
	return printJSON(model.VersionReportJSON{
		Tool:    toolName,
		Version: version.Version,
		Commit:  version.Commit,
		Date:    version.Date,
	})
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

package jsonoutput

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fmitools/fmi-bd2cmake/model"
)

func TestBuildRunReport(t *testing.T) {
	input := model.RenderRunInput{
		Input:      "/fmu/test_advanced",
		OutputDir:  "/fmu/test_advanced",
		FMIVersion: "3.0",
		DryRun:     true,
		DurationMS: 7,
		Results: []model.ConfigurationResult{
			{
				ModelIdentifier: "test_advanced",
				CStandard:       "99",
				SourceFiles:     2,
				Definitions:     3,
				BytesWritten:    2048,
			},
		},
		Emulations: []model.EmulationResult{
			{ModelIdentifier: "test_advanced", Output: "FMI Version: 2\nsqrt(16) = 4.000000\n"},
		},
	}
	version := model.VersionInfo{Version: "1.2.3", Commit: "abc", Date: "2026-08-23"}

	report := BuildRunReport(input, version, "2026-08-23T00:00:00Z")

	assert.Equal(t, "fmi-bd2cmake", report.Tool)
	assert.Equal(t, "1.2.3", report.Version)
	assert.Equal(t, "2026-08-23T00:00:00Z", report.GeneratedAt)
	assert.True(t, report.DryRun)
	assert.Len(t, report.Configurations, 1)
	assert.Equal(t, "test_advanced", report.Configurations[0].ModelIdentifier)
	assert.Equal(t, 2048, report.Configurations[0].BytesWritten)
	assert.Len(t, report.Emulations, 1)
	assert.Contains(t, report.Emulations[0].Output, "sqrt(16) = 4.000000")
}

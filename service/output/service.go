// Package output provides a service for rendering results to the console.
package output

import (
	"fmt"

	"github.com/fmitools/fmi-bd2cmake/model"
	buildtable "github.com/fmitools/fmi-bd2cmake/shared/build_table"
	jsonoutput "github.com/fmitools/fmi-bd2cmake/shared/json_output"
)

// NewService creates a new output service with the specified format.
func NewService(format string, version model.VersionInfo) Service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{format: f, version: version}
}

func (s *service) RenderRun(input model.RenderRunInput) error {
	if s.format == FormatJSON {
		return jsonoutput.OutputRunJSON(input, s.version)
	}
	buildtable.DrawRunTable(input)
	return nil
}

func (s *service) RenderVersion() error {
	if s.format == FormatJSON {
		return jsonoutput.OutputVersionJSON(s.version)
	}
	fmt.Printf("fmi-bd2cmake %s (commit %s, built %s)\n", s.version.Version, s.version.Commit, s.version.Date)
	return nil
}

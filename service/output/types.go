package output

import "github.com/fmitools/fmi-bd2cmake/model"

// Format selects the console output rendering.
type Format int

const (
	// FormatTable renders human-readable tables.
	FormatTable Format = iota
	// FormatJSON renders machine-readable JSON.
	FormatJSON
)

type service struct {
	format  Format
	version model.VersionInfo
}

// Service is the interface for rendering run results to the console.
type Service interface {
	RenderRun(input model.RenderRunInput) error
	RenderVersion() error
}

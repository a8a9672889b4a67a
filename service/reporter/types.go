package reporter

import "io"

type service struct{}

// Service is the interface for the build-status reporter.
type Service interface {
	Report(w io.Writer, cfg Config) error
}

// Config selects which status lines the reporter emits. It mirrors the
// preprocessor definitions a generated model binary is compiled with.
type Config struct {
	Version       int
	Debug         bool
	PlatformLinux bool
}

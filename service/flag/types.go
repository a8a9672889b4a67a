package flag

import "github.com/fmitools/fmi-bd2cmake/model"

type service struct{}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags() (model.Flags, error)
}

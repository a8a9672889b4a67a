package builddesc

import "github.com/fmitools/fmi-bd2cmake/model"

type service struct{}

// Service is the interface for reading FMI build descriptions.
type Service interface {
	Parse(path string) (*model.BuildInfo, error)
	ParseDir(dir string) (*model.BuildInfo, error)
	Validate(info *model.BuildInfo) error
}

package orchestrator

import (
	"github.com/fmitools/fmi-bd2cmake/model"
	"github.com/fmitools/fmi-bd2cmake/service/builddesc"
	"github.com/fmitools/fmi-bd2cmake/service/cmake"
	"github.com/fmitools/fmi-bd2cmake/service/output"
	"github.com/fmitools/fmi-bd2cmake/service/reporter"
	"github.com/fmitools/fmi-bd2cmake/service/storage"
)

type service struct {
	parser   builddesc.Service
	cmake    cmake.Service
	reporter reporter.Service
	output   output.Service
	store    storage.Service
	version  model.VersionInfo
}

// Service coordinates a full generation run.
type Service interface {
	Orchestrate(flags model.Flags) error
}

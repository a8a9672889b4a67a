package cmake

import "github.com/fmitools/fmi-bd2cmake/model"

type service struct{}

// Service is the interface for CMakeLists.txt generation.
type Service interface {
	Generate(cfg model.BuildConfiguration) (Result, error)
}

// Result is the generated file content plus the language standards that
// were selected for it.
type Result struct {
	Content     string
	CStandard   string
	CXXStandard string
}

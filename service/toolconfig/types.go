package toolconfig

import "github.com/fmitools/fmi-bd2cmake/model"

type service struct{}

// Service loads the optional tool configuration file and merges it into
// parsed flags.
type Service interface {
	Load(path string) (*ToolConfig, error)
	Apply(cfg *ToolConfig, flags *model.Flags)
}

// ToolConfig holds file-based defaults. Explicit flags always win.
type ToolConfig struct {
	OutputDir string   `yaml:"output_dir"`
	Output    string   `yaml:"output"`
	Emulate   bool     `yaml:"emulate"`
	Store     bool     `yaml:"store"`
	DBPath    string   `yaml:"db_path"`
	Defines   []string `yaml:"defines"`
}

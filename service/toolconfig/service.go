// Package toolconfig reads the optional fmi-bd2cmake YAML config file.
package toolconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fmitools/fmi-bd2cmake/model"
)

// NewService creates a new tool config service.
func NewService() Service {
	return &service{}
}

// Load reads a YAML config file. An empty path yields an empty config.
func (s *service) Load(path string) (*ToolConfig, error) {
	if path == "" {
		return &ToolConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Apply merges file defaults into flags. Only flag fields still at their
// zero value are filled; defines from both sources are concatenated.
func (s *service) Apply(cfg *ToolConfig, flags *model.Flags) {
	if cfg == nil || flags == nil {
		return
	}
	if flags.OutputDir == "" {
		flags.OutputDir = cfg.OutputDir
	}
	if flags.Output == "table" && cfg.Output != "" {
		flags.Output = cfg.Output
	}
	if !flags.Emulate {
		flags.Emulate = cfg.Emulate
	}
	if !flags.Store {
		flags.Store = cfg.Store
	}
	if flags.DBPath == "" {
		flags.DBPath = cfg.DBPath
	}
	flags.Defines = append(append([]string{}, cfg.Defines...), flags.Defines...)
}

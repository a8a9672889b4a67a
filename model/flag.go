package model

// Flags represents the command line flags.
type Flags struct {
	Input      string
	OutputDir  string
	Output     string
	DryRun     bool
	Emulate    bool
	Defines    []string
	Version    bool
	Quiet      bool
	Store      bool
	DBPath     string
	TrendDays  int
	ConfigPath string
}

package model

// ConfigurationResult summarizes the generation outcome for one
// build configuration.
type ConfigurationResult struct {
	ModelIdentifier string
	Platform        string
	CStandard       string
	CXXStandard     string
	SourceFiles     int
	Definitions     int
	IncludeDirs     int
	Libraries       int
	OutputPath      string
	BytesWritten    int
}

// EmulationResult is the status output a configured model binary
// would produce, keyed by model identifier.
type EmulationResult struct {
	ModelIdentifier string
	Output          string
}

// RenderRunInput carries everything the output layer needs for one run.
type RenderRunInput struct {
	Input      string
	OutputDir  string
	FMIVersion string
	DryRun     bool
	DurationMS int64
	Results    []ConfigurationResult
	Emulations []EmulationResult
}

// RunReportJSON is the machine-readable run report.
type RunReportJSON struct {
	Tool           string                    `json:"tool"`
	Version        string                    `json:"version"`
	GeneratedAt    string                    `json:"generated_at"`
	Input          string                    `json:"input"`
	OutputDir      string                    `json:"output_dir,omitempty"`
	FMIVersion     string                    `json:"fmi_version,omitempty"`
	DryRun         bool                      `json:"dry_run"`
	DurationMS     int64                     `json:"duration_ms"`
	Configurations []ConfigurationReportJSON `json:"configurations"`
	Emulations     []EmulationReportJSON     `json:"emulations,omitempty"`
}

// ConfigurationReportJSON is the JSON view of one configuration result.
type ConfigurationReportJSON struct {
	ModelIdentifier string `json:"model_identifier"`
	Platform        string `json:"platform,omitempty"`
	CStandard       string `json:"c_standard,omitempty"`
	CXXStandard     string `json:"cxx_standard,omitempty"`
	SourceFiles     int    `json:"source_files"`
	Definitions     int    `json:"definitions"`
	IncludeDirs     int    `json:"include_dirs"`
	Libraries       int    `json:"libraries"`
	OutputPath      string `json:"output_path,omitempty"`
	BytesWritten    int    `json:"bytes_written"`
}

// EmulationReportJSON is the JSON view of one emulation result.
type EmulationReportJSON struct {
	ModelIdentifier string `json:"model_identifier"`
	Output          string `json:"output"`
}

// VersionReportJSON is the machine-readable --version output.
type VersionReportJSON struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

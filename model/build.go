package model

// BuildInfo is the parsed content of a buildDescription.xml file.
type BuildInfo struct {
	FMIVersion          string
	Path                string
	BuildConfigurations []BuildConfiguration
}

// BuildConfiguration describes how one model identifier is built.
type BuildConfiguration struct {
	ModelIdentifier         string
	Platform                string
	Description             string
	SourceFileSets          []SourceFileSet
	IncludeDirectories      []string
	PreprocessorDefinitions []PreprocessorDefinition
	Libraries               []string
}

// SourceFileSet groups source files that share a language, compiler,
// options, definitions, and include directories.
type SourceFileSet struct {
	Name                    string
	Language                string
	Compiler                string
	CompilerOptions         string
	SourceFiles             []string
	PreprocessorDefinitions []PreprocessorDefinition
	IncludeDirectories      []string
}

// PreprocessorDefinition is a NAME or NAME=VALUE compile definition.
type PreprocessorDefinition struct {
	Name        string
	Value       string
	Optional    bool
	Description string
}

// String renders the definition in NAME or NAME=VALUE form.
func (d PreprocessorDefinition) String() string {
	if d.Value == "" {
		return d.Name
	}
	return d.Name + "=" + d.Value
}

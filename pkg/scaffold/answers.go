// Package scaffold turns a completed answer record into a generated project:
// it validates the record against the catalog's supported subset, plans which
// template files are excluded, and materializes the remaining corpus into the
// destination directory.
package scaffold

import (
	"slices"
	"time"

	"github.com/germanamz/sagecraft/pkg/catalog"
)

// Answers is the completed answer record produced by the wizard. It is built
// incrementally across the prompt phases and treated as read-only by
// everything downstream of validation.
type Answers struct {
	ProjectName string
	OutputDir   string

	Framework   string
	ModelFormat string // unset for the huggingface framework
	ModelServer string

	IncludeSampleModel bool
	IncludeTesting     bool
	TestTypes          []string // unset unless IncludeTesting

	DeployTarget string
	InstanceType string
	AWSRegion    string

	GeneratedAt time.Time
}

// IsHuggingFace reports whether the record selects the LLM framework.
func (a Answers) IsHuggingFace() bool {
	return a.Framework == catalog.FrameworkHuggingFace
}

// HasTestType reports whether the given test category was selected.
func (a Answers) HasTestType(name string) bool {
	return slices.Contains(a.TestTypes, name)
}

// Env builds the complete variable environment templates may reference. It
// contains every answer field plus derived predicates, so templates express
// equality and membership checks as plain sections. Unknown references render
// as blank text rather than failing — a typo in a template shows up as empty
// output, not as an error.
func (a Answers) Env() map[string]any {
	return map[string]any{
		catalog.ProjectName:        a.ProjectName,
		catalog.OutputDir:          a.OutputDir,
		catalog.Framework:          a.Framework,
		catalog.ModelFormat:        a.ModelFormat,
		catalog.ModelServer:        a.ModelServer,
		catalog.IncludeSampleModel: a.IncludeSampleModel,
		catalog.IncludeTesting:     a.IncludeTesting,
		catalog.TestTypes:          slices.Clone(a.TestTypes),
		catalog.DeployTarget:       a.DeployTarget,
		catalog.InstanceType:       a.InstanceType,
		catalog.AWSRegion:          a.AWSRegion,
		"generatedAt":              a.GeneratedAt.UTC().Format(time.RFC3339),

		// Derived predicates for conditional blocks.
		"isHuggingface":      a.IsHuggingFace(),
		"isTraditional":      !a.IsHuggingFace(),
		"serverIsFlask":      a.ModelServer == catalog.ServerFlask,
		"serverIsFastapi":    a.ModelServer == catalog.ServerFastAPI,
		"serverIsVllm":       a.ModelServer == catalog.ServerVLLM,
		"serverIsSglang":     a.ModelServer == catalog.ServerSGLang,
		"formatIsPkl":        a.ModelFormat == "pkl",
		"formatIsJoblib":     a.ModelFormat == "joblib",
		"formatIsSavedmodel": a.ModelFormat == "savedmodel",
		"formatIsH5":         a.ModelFormat == "h5",
		"formatIsPt":         a.ModelFormat == "pt",
		"formatIsOnnx":       a.ModelFormat == "onnx",
		"testUnit":           a.HasTestType(catalog.TestUnit),
		"testLocal":          a.HasTestType(catalog.TestLocal),
		"testEndpoint":       a.HasTestType(catalog.TestEndpoint),
	}
}

// Package catalog is the static registry of every configuration option the
// generator can ask about: all structurally legal values per option, plus the
// currently supported subset used by the validation gate. The tables are
// read-only after package initialization.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Option names. Templates reference answers by these names, so they double as
// the variable names of the template environment.
const (
	ProjectName        = "projectName"
	OutputDir          = "outputDir"
	Framework          = "framework"
	ModelFormat        = "modelFormat"
	ModelServer        = "modelServer"
	IncludeSampleModel = "includeSampleModel"
	IncludeTesting     = "includeTesting"
	TestTypes          = "testTypes"
	DeployTarget       = "deployTarget"
	InstanceType       = "instanceType"
	AWSRegion          = "awsRegion"
)

// Well-known values referenced by dependency and exclusion rules.
const (
	FrameworkHuggingFace = "huggingface"
	ServerFlask          = "flask"
	ServerFastAPI        = "fastapi"
	ServerVLLM           = "vllm"
	ServerSGLang         = "sglang"
	TestUnit             = "unit"
	TestLocal            = "local"
	TestEndpoint         = "endpoint"
)

// Kind describes how an option is answered.
type Kind int

const (
	SingleSelect Kind = iota
	MultiSelect
	FreeText
	Boolean
)

// Option is one named axis of configuration. All holds every structurally
// legal value in declared (presentation) order; Supported holds the subset the
// generator can actually materialize. A nil Supported means every legal value
// is supported. Free-text and boolean options carry no value lists.
type Option struct {
	Name      string
	Kind      Kind
	All       []string
	Supported []string
}

// ErrUnknownOption is returned when an option name is not in the catalog.
// Hitting it indicates an authoring bug, not bad user input.
var ErrUnknownOption = errors.New("catalog: unknown option")

var options = []Option{
	{Name: ProjectName, Kind: FreeText},
	{Name: OutputDir, Kind: FreeText},
	{
		Name:      Framework,
		Kind:      SingleSelect,
		All:       []string{"sklearn", "xgboost", "tensorflow", "pytorch", FrameworkHuggingFace},
		Supported: []string{"sklearn", "xgboost", FrameworkHuggingFace},
	},
	{
		Name: ModelFormat,
		Kind: SingleSelect,
		All:  []string{"pkl", "joblib", "savedmodel", "h5", "pt", "onnx"},
	},
	{
		Name: ModelServer,
		Kind: SingleSelect,
		All:  []string{ServerFlask, ServerFastAPI, ServerVLLM, ServerSGLang},
	},
	{Name: IncludeSampleModel, Kind: Boolean},
	{Name: IncludeTesting, Kind: Boolean},
	{
		Name: TestTypes,
		Kind: MultiSelect,
		All:  []string{TestUnit, TestLocal, TestEndpoint},
	},
	{
		Name:      DeployTarget,
		Kind:      SingleSelect,
		All:       []string{"sagemaker", "ecs"},
		Supported: []string{"sagemaker"},
	},
	{
		Name: InstanceType,
		Kind: SingleSelect,
		All: []string{
			"ml.m5.large", "ml.m5.xlarge",
			"ml.c5.xlarge", "ml.c5.2xlarge",
			"ml.g5.xlarge", "ml.g5.2xlarge", "ml.p3.2xlarge",
		},
	},
	{
		Name: AWSRegion,
		Kind: SingleSelect,
		All: []string{
			"us-east-1", "us-east-2", "us-west-2",
			"eu-west-1", "eu-central-1",
			"ap-southeast-1", "ap-northeast-1",
		},
	},
}

// AcceleratedInstances lists the instance classes with GPU acceleration, in
// catalog order. LLM serving is restricted to these.
func AcceleratedInstances() []string {
	return []string{"ml.g5.xlarge", "ml.g5.2xlarge", "ml.p3.2xlarge"}
}

// Get returns the option definition for name.
func Get(name string) (Option, error) {
	for _, o := range options {
		if o.Name == name {
			return o, nil
		}
	}

	return Option{}, fmt.Errorf("%w: %q", ErrUnknownOption, name)
}

// AllValues returns every structurally legal value for the option, in
// declared order. The returned slice is a copy.
func AllValues(name string) ([]string, error) {
	o, err := Get(name)
	if err != nil {
		return nil, err
	}

	return slices.Clone(o.All), nil
}

// SupportedValues returns the currently supported subset for the option, in
// declared order. Options without an explicit subset support all their legal
// values.
func SupportedValues(name string) ([]string, error) {
	o, err := Get(name)
	if err != nil {
		return nil, err
	}

	if o.Supported == nil {
		return slices.Clone(o.All), nil
	}

	return slices.Clone(o.Supported), nil
}

// IsSupported reports whether value is in the supported subset of the option.
func IsSupported(name, value string) (bool, error) {
	vals, err := SupportedValues(name)
	if err != nil {
		return false, err
	}

	return slices.Contains(vals, value), nil
}

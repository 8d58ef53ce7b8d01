package scaffold

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/germanamz/sagecraft/pkg/projectdir"
)

// manifest is the record of a generation run, written into the project root
// so a generated tree is traceable back to the answers that produced it.
type manifest struct {
	Project            string   `yaml:"project"`
	GeneratedAt        string   `yaml:"generated_at"`
	Framework          string   `yaml:"framework"`
	ModelFormat        string   `yaml:"model_format,omitempty"`
	ModelServer        string   `yaml:"model_server"`
	IncludeSampleModel bool     `yaml:"include_sample_model"`
	IncludeTesting     bool     `yaml:"include_testing"`
	TestTypes          []string `yaml:"test_types,omitempty"`
	DeployTarget       string   `yaml:"deploy_target"`
	InstanceType       string   `yaml:"instance_type"`
	AWSRegion          string   `yaml:"aws_region"`
}

func writeManifest(a Answers, d projectdir.Dir) error {
	m := manifest{
		Project:            a.ProjectName,
		GeneratedAt:        a.GeneratedAt.UTC().Format(time.RFC3339),
		Framework:          a.Framework,
		ModelFormat:        a.ModelFormat,
		ModelServer:        a.ModelServer,
		IncludeSampleModel: a.IncludeSampleModel,
		IncludeTesting:     a.IncludeTesting,
		TestTypes:          a.TestTypes,
		DeployTarget:       a.DeployTarget,
		InstanceType:       a.InstanceType,
		AWSRegion:          a.AWSRegion,
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("scaffold: marshal manifest: %w", err)
	}

	if err := os.WriteFile(d.ManifestPath(), data, 0o644); err != nil { //nolint:gosec // project metadata, not secret
		return fmt.Errorf("scaffold: write manifest: %w", err)
	}

	return nil
}

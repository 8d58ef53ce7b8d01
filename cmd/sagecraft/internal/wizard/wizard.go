// Package wizard is the prompt sequencer: four fixed phases, each phase
// gating the next, asking only the options whose upstream dependencies allow
// it and skipping or forcing the rest via the constraint resolver. Prompt
// rendering itself is huh's job; this package only decides what to ask.
package wizard

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/germanamz/sagecraft/pkg/catalog"
	"github.com/germanamz/sagecraft/pkg/resolve"
	"github.com/germanamz/sagecraft/pkg/scaffold"
)

// Run walks the phases in order and returns the completed answer record.
// Phases are strictly sequential; an abort in any phase propagates
// huh.ErrUserAborted and no record reaches the caller.
func Run() (scaffold.Answers, error) {
	a := scaffold.Answers{GeneratedAt: time.Now()}

	phases := []func(*scaffold.Answers) error{
		identityPhase,
		corePhase,
		modulesPhase,
		infraPhase,
	}

	for _, phase := range phases {
		if err := phase(&a); err != nil {
			return scaffold.Answers{}, err
		}
	}

	applyForcedCorrections(&a)

	return a, nil
}

var projectNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

func validateProjectName(s string) error {
	if !projectNameRe.MatchString(s) {
		return fmt.Errorf("use lowercase letters, digits and hyphens, starting with a letter")
	}

	return nil
}

func validateDirName(s string) error {
	if s == "" {
		return fmt.Errorf("output location must not be empty")
	}

	return nil
}

// defaultOutputDir derives the output location from the project name and the
// generation timestamp.
func defaultOutputDir(projectName string, ts time.Time) string {
	return projectName + "-" + ts.Format("20060102-150405")
}

func identityPhase(a *scaffold.Answers) error {
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Project name").Value(&a.ProjectName).Validate(validateProjectName),
	)).Run(); err != nil {
		return err
	}

	// The output location default needs the project name, so it is a second
	// form within the same phase.
	a.OutputDir = defaultOutputDir(a.ProjectName, a.GeneratedAt)

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Output location").Value(&a.OutputDir).Validate(validateDirName),
	)).Run()
}

func corePhase(a *scaffold.Answers) error {
	frameworks, err := catalog.AllValues(catalog.Framework)
	if err != nil {
		return err
	}

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("ML framework").
			Options(huh.NewOptions(frameworks...)...).
			Value(&a.Framework),
	)).Run(); err != nil {
		return err
	}

	if resolve.IsApplicable(catalog.ModelFormat, *a) {
		formats, err := resolve.ChoicesFor(catalog.ModelFormat, *a)
		if err != nil {
			return err
		}

		if err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model serialization format").
				Options(huh.NewOptions(formats...)...).
				Value(&a.ModelFormat),
		)).Run(); err != nil {
			return err
		}
	}

	servers, err := resolve.ChoicesFor(catalog.ModelServer, *a)
	if err != nil {
		return err
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Model serving framework").
			Options(huh.NewOptions(servers...)...).
			Value(&a.ModelServer),
	)).Run()
}

func modulesPhase(a *scaffold.Answers) error {
	if v, forced := resolve.ForcedValue(catalog.IncludeSampleModel, *a); forced {
		a.IncludeSampleModel = v == "true"
	} else {
		a.IncludeSampleModel = true
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title("Include sample training code?").Value(&a.IncludeSampleModel),
		)).Run(); err != nil {
			return err
		}
	}

	a.IncludeTesting = true
	if err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title("Include a test suite?").Value(&a.IncludeTesting),
	)).Run(); err != nil {
		return err
	}

	if !resolve.IsApplicable(catalog.TestTypes, *a) {
		return nil
	}

	available, err := resolve.ChoicesFor(catalog.TestTypes, *a)
	if err != nil {
		return err
	}
	defaults, err := resolve.DefaultTestTypes(*a)
	if err != nil {
		return err
	}

	opts := make([]huh.Option[string], len(available))
	for i, tt := range available {
		opts[i] = huh.NewOption(tt, tt).Selected(slices.Contains(defaults, tt))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Test categories").
			Options(opts...).
			Value(&a.TestTypes).
			Validate(func(sel []string) error {
				if len(sel) == 0 {
					return fmt.Errorf("select at least one test category")
				}

				return nil
			}),
	)).Run()
}

func infraPhase(a *scaffold.Answers) error {
	targets, err := catalog.AllValues(catalog.DeployTarget)
	if err != nil {
		return err
	}
	instances, err := resolve.ChoicesFor(catalog.InstanceType, *a)
	if err != nil {
		return err
	}
	regions, err := catalog.AllValues(catalog.AWSRegion)
	if err != nil {
		return err
	}

	// A region from the environment (.env or shell) preselects the choice.
	if r := os.Getenv("AWS_DEFAULT_REGION"); slices.Contains(regions, r) {
		a.AWSRegion = r
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Deployment target").
			Options(huh.NewOptions(targets...)...).
			Value(&a.DeployTarget),
		huh.NewSelect[string]().
			Title("Instance type").
			Options(huh.NewOptions(instances...)...).
			Value(&a.InstanceType),
		huh.NewSelect[string]().
			Title("AWS region").
			Options(huh.NewOptions(regions...)...).
			Value(&a.AWSRegion),
	)).Run()
}

// applyForcedCorrections re-asserts every force rule and clears inapplicable
// options after all phases, so no earlier tentative value survives into the
// final record.
func applyForcedCorrections(a *scaffold.Answers) {
	if v, forced := resolve.ForcedValue(catalog.IncludeSampleModel, *a); forced {
		a.IncludeSampleModel = v == "true"
	}

	if !resolve.IsApplicable(catalog.ModelFormat, *a) {
		a.ModelFormat = ""
	}

	if !resolve.IsApplicable(catalog.TestTypes, *a) {
		a.TestTypes = nil
	}
}

// Package resolve is the constraint resolver: given a partial answer record it
// decides which options apply, which are forced to a value without prompting,
// and what the legal choice set of the next prompt is. The dependency rules
// live in one declarative table so the full constraint graph is enumerable
// and testable without any prompt rendering.
package resolve

import (
	"fmt"
	"slices"

	"github.com/germanamz/sagecraft/pkg/catalog"
	"github.com/germanamz/sagecraft/pkg/scaffold"
)

// effect is what a matched dependency rule does to its target option.
type effect int

const (
	restrict effect = iota // narrow the choice set
	force                  // fix the value, skip the prompt
	skip                   // option does not apply at all
)

// rule relates an upstream predicate to an effect on one option. Boolean
// forced values are spelled "true"/"false".
type rule struct {
	option  string
	when    func(scaffold.Answers) bool
	effect  effect
	choices []string // restrict only
	value   string   // force only
}

func isHF(a scaffold.Answers) bool  { return a.IsHuggingFace() }
func notHF(a scaffold.Answers) bool { return !a.IsHuggingFace() }

var rules = []rule{
	// The LLM framework ships its model from the hub; there is no
	// serialization format to pick and no sample training code to include.
	{option: catalog.ModelFormat, when: isHF, effect: skip},
	{option: catalog.IncludeSampleModel, when: isHF, effect: force, value: "false"},

	{option: catalog.ModelServer, when: isHF, effect: restrict,
		choices: []string{catalog.ServerVLLM, catalog.ServerSGLang}},
	{option: catalog.ModelServer, when: notHF, effect: restrict,
		choices: []string{catalog.ServerFlask, catalog.ServerFastAPI}},

	{option: catalog.TestTypes, when: isHF, effect: restrict,
		choices: []string{catalog.TestEndpoint}},
	{option: catalog.TestTypes, when: func(a scaffold.Answers) bool { return !a.IncludeTesting }, effect: skip},

	{option: catalog.InstanceType, when: isHF, effect: restrict,
		choices: catalog.AcceleratedInstances()},
}

// Serialization formats offered per framework. The huggingface framework has
// no entry on purpose: the option is skipped for it.
var formatsByFramework = map[string][]string{
	"sklearn":    {"pkl", "joblib"},
	"xgboost":    {"pkl", "joblib"},
	"tensorflow": {"savedmodel", "h5"},
	"pytorch":    {"pt", "onnx"},
}

// EmptyChoiceSetError signals that the rules left an applicable option with
// nothing to choose from. That is an authoring defect in the catalog or the
// rule table, never a user error.
type EmptyChoiceSetError struct {
	Option string
}

func (e *EmptyChoiceSetError) Error() string {
	return fmt.Sprintf("resolve: empty choice set for option %q", e.Option)
}

// IsApplicable reports whether the option should be prompted for at all given
// the answers so far. Skipped options stay unset (booleans default to false).
func IsApplicable(option string, a scaffold.Answers) bool {
	for _, r := range rules {
		if r.option == option && r.effect == skip && r.when(a) {
			return false
		}
	}

	return true
}

// ForcedValue returns the value the option must take under the current
// answers, bypassing the prompt. The second result reports whether a force
// rule matched. Boolean options use "true"/"false".
func ForcedValue(option string, a scaffold.Answers) (string, bool) {
	for _, r := range rules {
		if r.option == option && r.effect == force && r.when(a) {
			return r.value, true
		}
	}

	return "", false
}

// ChoicesFor computes the legal choice set for the option under the current
// answers: the option's base choices (which may themselves be keyed by an
// upstream answer), narrowed by every matching restrict rule, intersected
// with the catalog's full value set. Declared catalog order is preserved; the
// first element is the conventional default.
func ChoicesFor(option string, a scaffold.Answers) ([]string, error) {
	all, err := catalog.AllValues(option)
	if err != nil {
		return nil, err
	}

	choices := all
	if option == catalog.ModelFormat {
		choices = formatsByFramework[a.Framework]
	}

	for _, r := range rules {
		if r.option == option && r.effect == restrict && r.when(a) {
			choices = intersect(choices, r.choices)
		}
	}

	choices = intersect(choices, all)
	if len(choices) == 0 {
		return nil, &EmptyChoiceSetError{Option: option}
	}

	return slices.Clone(choices), nil
}

// DefaultChoice returns the conventional default for the option: the first
// element of its computed choice set.
func DefaultChoice(option string, a scaffold.Answers) (string, error) {
	choices, err := ChoicesFor(option, a)
	if err != nil {
		return "", err
	}

	return choices[0], nil
}

// DefaultTestTypes returns the default selection for the test-category
// multi-select: every available category.
func DefaultTestTypes(a scaffold.Answers) ([]string, error) {
	return ChoicesFor(catalog.TestTypes, a)
}

// intersect keeps the elements of a that are also in b, preserving a's order.
func intersect(a, b []string) []string {
	var out []string
	for _, v := range a {
		if slices.Contains(b, v) {
			out = append(out, v)
		}
	}

	return out
}

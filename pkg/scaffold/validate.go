package scaffold

import (
	"fmt"

	"github.com/germanamz/sagecraft/pkg/catalog"
)

// UnsupportedOptionError reports a structurally legal answer the generator
// cannot materialize yet.
type UnsupportedOptionError struct {
	Field string
	Value string
}

func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("scaffold: %s %q is not supported yet", e.Field, e.Value)
}

// Validate checks every finite-valued field of the record against the
// catalog's supported subset. A value can be a legal choice and still be
// rejected here when it sits in the not-yet-implemented zone. Runs after the
// wizard completes and before any planning or writing.
func Validate(a Answers) error {
	checks := []struct {
		field string
		value string
	}{
		{catalog.Framework, a.Framework},
		{catalog.ModelFormat, a.ModelFormat},
		{catalog.ModelServer, a.ModelServer},
		{catalog.DeployTarget, a.DeployTarget},
		{catalog.InstanceType, a.InstanceType},
		{catalog.AWSRegion, a.AWSRegion},
	}

	for _, c := range checks {
		if c.value == "" {
			// Inapplicable on the current path (e.g. modelFormat for
			// huggingface).
			continue
		}

		ok, err := catalog.IsSupported(c.field, c.value)
		if err != nil {
			return err
		}
		if !ok {
			return &UnsupportedOptionError{Field: c.field, Value: c.value}
		}
	}

	for _, tt := range a.TestTypes {
		ok, err := catalog.IsSupported(catalog.TestTypes, tt)
		if err != nil {
			return err
		}
		if !ok {
			return &UnsupportedOptionError{Field: catalog.TestTypes, Value: tt}
		}
	}

	return nil
}

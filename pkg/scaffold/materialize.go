package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/germanamz/sagecraft/pkg/projectdir"
	"github.com/germanamz/sagecraft/pkg/render"
	"github.com/germanamz/sagecraft/pkg/templates"
)

// DestinationNotEmptyError reports that the output directory already exists
// and holds files. Generation never overwrites or merges into an existing
// project.
type DestinationNotEmptyError struct {
	Path string
}

func (e *DestinationNotEmptyError) Error() string {
	return fmt.Sprintf("scaffold: destination %s already exists and is not empty", e.Path)
}

// Materialize resolves every non-excluded template against the record's
// variable environment and writes the result under the record's output
// directory, followed by the generation manifest. Writing starts only after
// the full record exists; each file is resolved independently and the result
// is deterministic given the record.
func Materialize(a Answers, eng render.Engine) error {
	dest := projectdir.New(a.OutputDir)
	if dest.Exists() && !dest.IsEmpty() {
		return &DestinationNotEmptyError{Path: dest.Root()}
	}

	files, err := templates.Files()
	if err != nil {
		return err
	}

	patterns := PlanExclusions(a)
	env := a.Env()

	for _, rel := range files {
		if Excluded(rel, patterns) {
			continue
		}

		text, err := templates.Read(rel)
		if err != nil {
			return err
		}

		out, err := eng.Render(text, env)
		if err != nil {
			return fmt.Errorf("scaffold: render %s: %w", rel, err)
		}

		target := filepath.Join(dest.Root(), filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return fmt.Errorf("scaffold: create %s: %w", filepath.Dir(target), err)
		}

		if err := os.WriteFile(target, []byte(out), fileMode(rel)); err != nil {
			return fmt.Errorf("scaffold: write %s: %w", rel, err)
		}
	}

	if err := writeManifest(a, dest); err != nil {
		return err
	}

	return nil
}

// fileMode marks shell scripts and the server bootstrap executable; embedding
// strips modes, so they are reapplied by name.
func fileMode(rel string) fs.FileMode {
	if strings.HasSuffix(rel, ".sh") || rel == "src/serve" {
		return 0o755
	}

	return 0o644
}

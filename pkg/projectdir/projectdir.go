// Package projectdir encapsulates all path knowledge for a generated project
// directory. It provides a Dir value object with accessors for the generated
// subtrees and the generation manifest.
package projectdir

import (
	"io"
	"os"
	"path/filepath"
)

// Dir is a value object that resolves paths within a generated project
// directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Root returns the absolute path to the project directory.
func (d Dir) Root() string { return d.root }

// SrcDir returns the path to the serving code subtree.
func (d Dir) SrcDir() string { return filepath.Join(d.root, "src") }

// DeployDir returns the path to the deployment scripts subtree.
func (d Dir) DeployDir() string { return filepath.Join(d.root, "deploy") }

// TestsDir returns the path to the generated test subtree.
func (d Dir) TestsDir() string { return filepath.Join(d.root, "tests") }

// SampleModelDir returns the path to the sample-training subtree.
func (d Dir) SampleModelDir() string { return filepath.Join(d.root, "sample_model") }

// ManifestPath returns the path to the generation manifest.
func (d Dir) ManifestPath() string { return filepath.Join(d.root, "sagecraft.yaml") }

// ReadmePath returns the path to the generated README.
func (d Dir) ReadmePath() string { return filepath.Join(d.root, "README.md") }

// Exists reports whether the project root exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}

// IsEmpty reports whether the project root contains no entries. A missing
// root counts as empty.
func (d Dir) IsEmpty() bool {
	f, err := os.Open(d.root)
	if err != nil {
		return true
	}
	defer func() { _ = f.Close() }()

	_, err = f.Readdirnames(1)

	return err == io.EOF
}

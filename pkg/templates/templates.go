// Package templates holds the embedded static template corpus the generator
// materializes projects from. Files are opaque parameterized text; nothing
// here interprets their contents.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed all:corpus
var corpusFS embed.FS

const root = "corpus"

// Files returns the corpus-relative path of every template file, sorted.
func Files() ([]string, error) {
	var files []string

	err := fs.WalkDir(corpusFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, strings.TrimPrefix(p, root+"/"))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("templates: walk corpus: %w", err)
	}

	sort.Strings(files)

	return files, nil
}

// Read returns the raw text of the template at the corpus-relative path.
func Read(rel string) (string, error) {
	data, err := corpusFS.ReadFile(root + "/" + rel)
	if err != nil {
		return "", fmt.Errorf("templates: read %q: %w", rel, err)
	}

	return string(data), nil
}

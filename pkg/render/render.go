// Package render is the template-engine collaborator behind a deliberately
// narrow interface: text plus a variable environment in, resolved text out.
// The engine's substitution and conditional semantics are mustache's; callers
// supply a complete environment and trust them.
package render

import (
	"fmt"

	"github.com/cbroglie/mustache"
)

// Engine resolves template text against a variable environment. Swappable so
// the planning and writing logic never depends on a concrete template syntax.
type Engine interface {
	Render(text string, env map[string]any) (string, error)
}

// Mustache renders {{name}} variable references and {{#flag}}...{{/flag}}
// conditional blocks (nesting included). References to names absent from the
// environment resolve to blank text rather than erroring — a typo'd variable
// is observable only as empty output.
type Mustache struct{}

// Render resolves text against env.
func (Mustache) Render(text string, env map[string]any) (string, error) {
	out, err := mustache.Render(text, env)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	return out, nil
}

package scaffold

import (
	"path"

	"github.com/germanamz/sagecraft/pkg/catalog"
)

// excludeRule maps an answer-record predicate to the path patterns dropped
// from output when it holds. Rules are purely additive: the effective
// exclusion set is the union of every matching rule, and a file excluded by
// any rule is excluded, full stop.
type excludeRule struct {
	when     func(Answers) bool
	patterns []string
}

func always(Answers) bool { return true }

var excludeRules = []excludeRule{
	// Documentation about the corpus itself never ships in a generated
	// project.
	{when: always, patterns: []string{"TEMPLATES.md"}},

	// The LLM path drops the whole traditional serving stack.
	{
		when: func(a Answers) bool { return a.IsHuggingFace() },
		patterns: []string{
			"src/model_handler.py",
			"src/serve",
			"src/wsgi.py",
			"nginx.conf",
			"requirements.txt",
			"src/flask/*",
			"local_test/*",
			"tests/test_unit.py",
			"tests/test_local.py",
		},
	},

	// The traditional path drops the LLM entrypoint and the S3 model upload.
	{
		when: func(a Answers) bool { return !a.IsHuggingFace() },
		patterns: []string{
			"src/llm/*",
			"deploy/upload_model_s3.sh",
		},
	},

	// Anything scoped to the default lightweight server goes when another
	// server was chosen.
	{
		when:     func(a Answers) bool { return a.ModelServer != catalog.ServerFlask },
		patterns: []string{"src/flask/*"},
	},

	{
		when:     func(a Answers) bool { return !a.IncludeSampleModel },
		patterns: []string{"sample_model/*"},
	},

	{
		when:     func(a Answers) bool { return !a.IncludeTesting },
		patterns: []string{"tests/*"},
	},
}

// PlanExclusions computes the concrete exclusion set for the record before
// any file-system interaction: the union of every matching rule's patterns,
// plus per-category test files for categories that were not selected. Order
// follows rule declaration; duplicates are dropped.
func PlanExclusions(a Answers) []string {
	var patterns []string
	seen := map[string]bool{}

	add := func(ps ...string) {
		for _, p := range ps {
			if !seen[p] {
				seen[p] = true
				patterns = append(patterns, p)
			}
		}
	}

	for _, r := range excludeRules {
		if r.when(a) {
			add(r.patterns...)
		}
	}

	if a.IncludeTesting {
		for _, tt := range []string{catalog.TestUnit, catalog.TestLocal, catalog.TestEndpoint} {
			if !a.HasTestType(tt) {
				add("tests/test_" + tt + ".py")
			}
		}
	}

	return patterns
}

// Excluded reports whether the corpus-relative path matches any of the
// planned patterns. Patterns use path.Match semantics against the full
// relative path; matching is independent per file.
func Excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, rel); err == nil && ok {
			return true
		}
	}

	return false
}

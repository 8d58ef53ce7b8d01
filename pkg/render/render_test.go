package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Substitution(t *testing.T) {
	e := Mustache{}

	out, err := e.Render(`PROJECT="{{projectName}}"`+"\n"+`REGION="{{awsRegion}}"`, map[string]any{
		"projectName": "iris-classifier",
		"awsRegion":   "us-east-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "PROJECT=\"iris-classifier\"\nREGION=\"us-east-1\"", out)
	assert.NotContains(t, out, "{{")
}

func TestRender_MissingVariableIsBlank(t *testing.T) {
	e := Mustache{}

	out, err := e.Render("before {{noSuchVar}} after", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "before  after", out)
}

func TestRender_ConditionalBlocks(t *testing.T) {
	e := Mustache{}

	tmpl := "{{#isHuggingface}}llm{{/isHuggingface}}{{#isTraditional}}classic{{/isTraditional}}"

	out, err := e.Render(tmpl, map[string]any{"isHuggingface": true, "isTraditional": false})
	require.NoError(t, err)
	assert.Equal(t, "llm", out)

	out, err = e.Render(tmpl, map[string]any{"isHuggingface": false, "isTraditional": true})
	require.NoError(t, err)
	assert.Equal(t, "classic", out)
}

func TestRender_NestedConditionals(t *testing.T) {
	e := Mustache{}

	tmpl := "{{#includeTesting}}tests{{#testEndpoint}}+endpoint{{/testEndpoint}}{{/includeTesting}}"

	out, err := e.Render(tmpl, map[string]any{"includeTesting": true, "testEndpoint": true})
	require.NoError(t, err)
	assert.Equal(t, "tests+endpoint", out)

	out, err = e.Render(tmpl, map[string]any{"includeTesting": false, "testEndpoint": true})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRender_ListSection(t *testing.T) {
	e := Mustache{}

	out, err := e.Render("{{#testTypes}}[{{.}}]{{/testTypes}}", map[string]any{
		"testTypes": []string{"unit", "local", "endpoint"},
	})
	require.NoError(t, err)
	assert.Equal(t, "[unit][local][endpoint]", out)
}

package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswers_Env(t *testing.T) {
	a := validAnswers()
	env := a.Env()

	assert.Equal(t, "iris-classifier", env["projectName"])
	assert.Equal(t, "sklearn", env["framework"])
	assert.Equal(t, false, env["isHuggingface"])
	assert.Equal(t, true, env["isTraditional"])
	assert.Equal(t, true, env["serverIsFlask"])
	assert.Equal(t, false, env["serverIsFastapi"])
	assert.Equal(t, true, env["formatIsJoblib"])
	assert.Equal(t, true, env["testUnit"])
	assert.Equal(t, true, env["testEndpoint"])
}

func TestAnswers_Env_HuggingFace(t *testing.T) {
	a := Answers{Framework: "huggingface", ModelServer: "sglang", TestTypes: []string{"endpoint"}}
	env := a.Env()

	assert.Equal(t, true, env["isHuggingface"])
	assert.Equal(t, false, env["isTraditional"])
	assert.Equal(t, true, env["serverIsSglang"])
	assert.Equal(t, false, env["testUnit"])
	assert.Equal(t, true, env["testEndpoint"])
	assert.Equal(t, "", env["modelFormat"])
}

func TestAnswers_HasTestType(t *testing.T) {
	a := Answers{TestTypes: []string{"unit", "local"}}

	assert.True(t, a.HasTestType("unit"))
	assert.False(t, a.HasTestType("endpoint"))
}

package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	files, err := Files()
	require.NoError(t, err)

	for _, want := range []string{
		"TEMPLATES.md",
		"Dockerfile",
		"requirements.txt",
		"nginx.conf",
		"src/serve",
		"src/wsgi.py",
		"src/model_handler.py",
		"src/flask/app.py",
		"src/llm/serve_llm.py",
		"deploy/build_and_push.sh",
		"deploy/upload_model_s3.sh",
		"sample_model/train.py",
		"local_test/test_image.sh",
		"tests/test_unit.py",
		"tests/test_local.py",
		"tests/test_endpoint.py",
	} {
		assert.Contains(t, files, want)
	}

	assert.IsIncreasing(t, files)
}

func TestRead(t *testing.T) {
	text, err := Read("deploy/build_and_push.sh")
	require.NoError(t, err)
	assert.Contains(t, text, `PROJECT="{{projectName}}"`)
	assert.Contains(t, text, `REGION="{{awsRegion}}"`)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read("no/such/file")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no/such/file")
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Unknown(t *testing.T) {
	_, err := Get("nonsense")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Contains(t, err.Error(), "nonsense")
}

func TestAllValues_PreservesDeclaredOrder(t *testing.T) {
	vals, err := AllValues(Framework)
	require.NoError(t, err)
	assert.Equal(t, []string{"sklearn", "xgboost", "tensorflow", "pytorch", "huggingface"}, vals)
}

func TestSupportedValues_Subset(t *testing.T) {
	t.Run("framework has an unimplemented zone", func(t *testing.T) {
		vals, err := SupportedValues(Framework)
		require.NoError(t, err)
		assert.Equal(t, []string{"sklearn", "xgboost", "huggingface"}, vals)
		assert.NotContains(t, vals, "tensorflow")
		assert.NotContains(t, vals, "pytorch")
	})

	t.Run("options without a subset support everything", func(t *testing.T) {
		all, err := AllValues(ModelServer)
		require.NoError(t, err)
		sup, err := SupportedValues(ModelServer)
		require.NoError(t, err)
		assert.Equal(t, all, sup)
	})
}

func TestIsSupported(t *testing.T) {
	ok, err := IsSupported(Framework, "sklearn")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsSupported(Framework, "tensorflow")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsSupported(DeployTarget, "ecs")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsSupported("nonsense", "x")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestAllValues_ReturnsCopy(t *testing.T) {
	vals, err := AllValues(TestTypes)
	require.NoError(t, err)
	vals[0] = "mutated"

	again, err := AllValues(TestTypes)
	require.NoError(t, err)
	assert.Equal(t, "unit", again[0])
}

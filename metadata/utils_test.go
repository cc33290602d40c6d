package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSingleListItem(t *testing.T) {
	got, err := CheckSingleListItem([]any{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", got)

	_, err = CheckSingleListItem([]any{})
	assert.ErrorContains(t, err, "0 items found")

	_, err = CheckSingleListItem([]any{"a", "b"})
	assert.ErrorContains(t, err, "2 items found")
}

func TestGetProperty(t *testing.T) {
	prop := map[string]any{
		"scalar": "value",
		"list":   []any{"first", "second"},
		"empty":  []any{},
	}

	assert.Equal(t, "value", GetProperty("scalar", prop))
	assert.Equal(t, "first", GetProperty("list", prop))
	assert.Nil(t, GetProperty("empty", prop))
	assert.Nil(t, GetProperty("missing", prop))
	assert.Nil(t, GetProperty("scalar", nil))
}

package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchema(t *testing.T) {
	s := testSchema(t)

	doc := s.JSONSchema()
	assert.Equal(t, "object", doc.Type)
	assert.Equal(t, "test", doc.Title)

	var order []string
	for pair := doc.Properties.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	var stored []string
	for _, setting := range s.ListSettings() {
		stored = append(stored, setting.StoredKey())
	}
	assert.Equal(t, stored, order)

	width, ok := doc.Properties.Get("width")
	require.True(t, ok)
	assert.Equal(t, "integer", width.Type)
	assert.Equal(t, json.Number("3"), width.Minimum)
	assert.Equal(t, json.Number("50"), width.Maximum)
	assert.Equal(t, 20, width.Default)
	assert.Equal(t, "pixels", width.Extras["x-unit"])
	assert.Equal(t, "early", width.Extras["x-section"])

	delay, ok := doc.Properties.Get("delay")
	require.True(t, ok)
	assert.Empty(t, delay.Minimum)
	assert.Empty(t, delay.Maximum)

	mode, ok := doc.Properties.Get("mode")
	require.True(t, ok)
	assert.Equal(t, "string", mode.Type)
	assert.Equal(t, []any{"A", "B"}, mode.Enum)

	_, ok = doc.Properties.Get("topFlag")
	assert.False(t, ok)
	topFlag, ok := doc.Properties.Get("topFlagStored")
	require.True(t, ok)
	assert.Equal(t, "boolean", topFlag.Type)
	assert.Equal(t, "topFlag", topFlag.Extras["x-key"])

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"additionalProperties":false`)
	assert.Contains(t, string(data), `"x-sections"`)
}

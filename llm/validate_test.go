package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return &Schema{
		Name: "validate-test",
		Definition: map[string]any{
			"type":     "object",
			"required": []string{"title", "score"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"score": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 100,
				},
			},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	schema := testSchema()

	require.NoError(t, validateResponse(schema, json.RawMessage(`{"title":"ok","score":70}`)))

	// Missing required field.
	err := validateResponse(schema, json.RawMessage(`{"title":"ok"}`))
	assert.Error(t, err)

	// Out-of-range value.
	err = validateResponse(schema, json.RawMessage(`{"title":"ok","score":150}`))
	assert.Error(t, err)

	// Malformed JSON.
	err = validateResponse(schema, json.RawMessage(`{"title":`))
	assert.Error(t, err)
}

func TestValidateResponseNilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not even json`)))
}

func TestCompiledSchemaIsCached(t *testing.T) {
	schema := testSchema()

	first, err := getCompiledSchema(schema)
	require.NoError(t, err)

	second, err := getCompiledSchema(schema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

package jsonx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainObject(t *testing.T) {
	raw, err := Extract(`{"name":"Jane","score":42}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jane","score":42}`, string(raw))
}

func TestExtract_FencedObject(t *testing.T) {
	input := "```json\n{\"name\": \"Jane Doe\", \"skills\": [\"Go\"]}\n```"

	raw, err := Extract(input)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Jane Doe", "skills": ["Go"]}`, string(raw))
}

func TestExtract_FenceWithoutLanguageTag(t *testing.T) {
	input := "```\n{\"ok\": true}\n```"

	raw, err := Extract(input)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(raw))
}

func TestExtract_SurroundingProse(t *testing.T) {
	input := "Here is the requested assessment:\n{\"score\": 77}\nLet me know if you need anything else."

	raw, err := Extract(input)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 77}`, string(raw))
}

func TestExtract_NoObject(t *testing.T) {
	_, err := Extract("the model refused to answer")
	require.Error(t, err)

	var xerr *Error
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, ReasonNoObject, xerr.Reason)
}

func TestExtract_TruncatedObject(t *testing.T) {
	_, err := Extract(`{"name": "Jane", "skills": ["Go"`)
	require.Error(t, err)

	var xerr *Error
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, ReasonNoObject, xerr.Reason)
}

func TestExtract_InvalidSpan(t *testing.T) {
	// Braces are present but the span between them is not JSON.
	_, err := Extract(`{oops: not json}`)
	require.Error(t, err)

	var xerr *Error
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, ReasonInvalidJSON, xerr.Reason)
}

func TestExtractInto_Decodes(t *testing.T) {
	var out struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	err := ExtractInto("```json\n{\"name\": \"Jane\", \"score\": 88}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, "Jane", out.Name)
	assert.Equal(t, 88, out.Score)
}

func TestExtractInto_TypeMismatch(t *testing.T) {
	var out struct {
		Score int `json:"score"`
	}

	err := ExtractInto(`{"score": "not a number"}`, &out)
	require.Error(t, err)

	var xerr *Error
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, ReasonInvalidJSON, xerr.Reason)
}

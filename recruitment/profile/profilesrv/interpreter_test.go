package profilesrv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned completion or error.
type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (s *stubClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.prompts = append(s.prompts, userPrompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestInterpret_AIPath(t *testing.T) {
	client := &stubClient{response: `{
		"personalInfo": {"name": "Jane Doe", "email": "jane@example.com"},
		"summary": "Backend engineer.",
		"skills": [{"name": "Go", "category": "Technical", "level": "Advanced"}]
	}`}

	interpreter := NewInterpreter(client)
	result, usedAI := interpreter.Interpret(context.Background(), "Jane Doe\nBackend engineer")

	assert.True(t, usedAI)
	assert.Equal(t, "Jane Doe", result.PersonalInfo.Name)
	assert.Equal(t, "jane@example.com", result.PersonalInfo.Email)
	require.Len(t, result.Skills, 1)
	assert.Equal(t, "Go", result.Skills[0].Name)

	// Collections absent from the response must still be present.
	assert.NotNil(t, result.Experience)
	assert.NotNil(t, result.Education)
	assert.NotNil(t, result.Projects)
}

func TestInterpret_FencedResponse(t *testing.T) {
	client := &stubClient{response: "```json\n{\"personalInfo\": {\"name\": \"Jane Doe\"}}\n```"}

	interpreter := NewInterpreter(client)
	result, usedAI := interpreter.Interpret(context.Background(), "resume text")

	assert.True(t, usedAI)
	assert.Equal(t, "Jane Doe", result.PersonalInfo.Name)
}

func TestInterpret_ClientErrorFallsBack(t *testing.T) {
	client := &stubClient{err: errors.New("rate limited")}

	interpreter := NewInterpreter(client)
	result, usedAI := interpreter.Interpret(context.Background(), "Jane Doe\njane@example.com\nSkills: Python")

	assert.False(t, usedAI)
	assert.Equal(t, "Jane Doe", result.PersonalInfo.Name)
	assert.Equal(t, "jane@example.com", result.PersonalInfo.Email)
	require.Len(t, result.Skills, 1)
	assert.Equal(t, "Python", result.Skills[0].Name)
}

func TestInterpret_GarbageResponseFallsBack(t *testing.T) {
	client := &stubClient{response: "I cannot parse this resume."}

	interpreter := NewInterpreter(client)
	_, usedAI := interpreter.Interpret(context.Background(), "some resume")

	assert.False(t, usedAI)
}

func TestInterpretAI_NilClient(t *testing.T) {
	interpreter := NewInterpreter(nil)

	_, err := interpreter.InterpretAI(context.Background(), "some resume")
	assert.ErrorIs(t, err, ErrNoClient)
}

func TestInterpretAI_PromptCarriesResumeText(t *testing.T) {
	client := &stubClient{response: `{"personalInfo": {}}`}

	interpreter := NewInterpreter(client)
	_, err := interpreter.InterpretAI(context.Background(), "UNIQUE-RESUME-MARKER")
	require.NoError(t, err)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "UNIQUE-RESUME-MARKER")
}

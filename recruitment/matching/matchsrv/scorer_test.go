package matchsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	response string
	err      error

	systemPrompts []string
	userPrompts   []string
}

func (c *stubClient) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	c.systemPrompts = append(c.systemPrompts, systemPrompt)
	c.userPrompts = append(c.userPrompts, userPrompt)
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

const scorerResponse = `{
  "overallScore": 85,
  "skillsMatch": {
    "score": 90,
    "matchedSkills": ["Go", "Docker"],
    "missingSkills": ["Kubernetes"],
    "details": "Strong overlap on core backend skills."
  },
  "experienceMatch": {
    "score": 80,
    "requiredYears": 5,
    "candidateYears": 4,
    "details": "One year short of the requirement."
  },
  "educationMatch": {
    "score": 85,
    "details": "Relevant degree."
  },
  "recommendedActions": ["Learn Kubernetes"],
  "matchSummary": "Strong fit for the role."
}`

func TestScoreAI_ParsesModelResponse(t *testing.T) {
	client := &stubClient{response: scorerResponse}
	scorer := NewScorer(client)

	result, err := scorer.ScoreAI(context.Background(),
		posting([]string{"Go", "Docker", "Kubernetes"}, 5),
		candidateWith([]string{"Go", "Docker"}, 4, 1))
	require.NoError(t, err)

	assert.Equal(t, 85, result.OverallScore)
	assert.Equal(t, 90, result.SkillsMatch.Score)
	assert.Equal(t, []string{"Go", "Docker"}, result.SkillsMatch.MatchedSkills)
	assert.Equal(t, []string{"Kubernetes"}, result.SkillsMatch.MissingSkills)
	assert.Equal(t, 5, result.ExperienceMatch.RequiredYears)
	assert.Equal(t, 4, result.ExperienceMatch.CandidateYears)
	assert.Equal(t, []string{"Learn Kubernetes"}, result.RecommendedActions)
	assert.Equal(t, "Strong fit for the role.", result.MatchSummary)
}

func TestScoreAI_AcceptsFencedResponse(t *testing.T) {
	client := &stubClient{response: "```json\n" + scorerResponse + "\n```"}
	scorer := NewScorer(client)

	result, err := scorer.ScoreAI(context.Background(), posting(nil, 0), candidateWith(nil, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 85, result.OverallScore)
}

func TestScoreAI_NormalizesNilCollections(t *testing.T) {
	client := &stubClient{response: `{"overallScore": 40}`}
	scorer := NewScorer(client)

	result, err := scorer.ScoreAI(context.Background(), posting(nil, 0), candidateWith(nil, 0, 0))
	require.NoError(t, err)

	assert.NotNil(t, result.SkillsMatch.MatchedSkills)
	assert.NotNil(t, result.SkillsMatch.MissingSkills)
	assert.NotNil(t, result.RecommendedActions)
}

func TestScoreAI_NilClient(t *testing.T) {
	scorer := NewScorer(nil)

	_, err := scorer.ScoreAI(context.Background(), posting(nil, 0), candidateWith(nil, 0, 0))
	assert.ErrorIs(t, err, ErrNoClient)
}

func TestScoreAI_PromptCarriesJobAndProfile(t *testing.T) {
	client := &stubClient{response: scorerResponse}
	scorer := NewScorer(client)

	_, err := scorer.ScoreAI(context.Background(),
		posting([]string{"Terraform"}, 3),
		candidateWith([]string{"Ansible"}, 2, 0))
	require.NoError(t, err)

	require.Len(t, client.userPrompts, 1)
	assert.Contains(t, client.userPrompts[0], "Terraform")
	assert.Contains(t, client.userPrompts[0], "Ansible")
	require.Len(t, client.systemPrompts, 1)
	assert.Contains(t, client.systemPrompts[0], "applicant tracking system")
}

func TestScore_FallsBackOnClientError(t *testing.T) {
	client := &stubClient{err: errors.New("model unavailable")}
	scorer := NewScorer(client)

	j := posting([]string{"Go"}, 1)
	p := candidateWith([]string{"Go"}, 2, 1)

	result, usedAI := scorer.Score(context.Background(), j, p)

	assert.False(t, usedAI)
	assert.Equal(t, FallbackScore(j, p), result)
}

func TestScore_FallsBackOnGarbageResponse(t *testing.T) {
	client := &stubClient{response: "I cannot evaluate this candidate."}
	scorer := NewScorer(client)

	j := posting([]string{"Go"}, 1)
	p := candidateWith([]string{"Go"}, 2, 1)

	result, usedAI := scorer.Score(context.Background(), j, p)

	assert.False(t, usedAI)
	assert.Equal(t, FallbackScore(j, p).OverallScore, result.OverallScore)
}

func TestScore_UsesModelWhenAvailable(t *testing.T) {
	client := &stubClient{response: scorerResponse}
	scorer := NewScorer(client)

	result, usedAI := scorer.Score(context.Background(), posting(nil, 0), candidateWith(nil, 0, 0))

	assert.True(t, usedAI)
	assert.Equal(t, 85, result.OverallScore)
}

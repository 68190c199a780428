package matchsrv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/talentgate/talentgate/internal/ai/jsonx"
	"github.com/talentgate/talentgate/internal/ai/llm"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/recruitment/matching"
	"github.com/talentgate/talentgate/recruitment/profile"
)

// ErrNoClient is returned by the AI path when no model client was configured.
var ErrNoClient = errors.New("no model client configured")

const scorerSystemPrompt = `You are an expert recruiter and applicant tracking system. Compare candidates against job requirements objectively and return ONLY valid JSON.`

const scorerSchemaPrompt = `Compare the candidate profile against the job posting below and return a match assessment in the following JSON structure:

{
  "overallScore": number (0-100),
  "skillsMatch": {
    "score": number (0-100),
    "matchedSkills": string[] (skills the candidate has that the job needs),
    "missingSkills": string[] (skills the job needs that the candidate lacks),
    "details": string
  },
  "experienceMatch": {
    "score": number (0-100),
    "requiredYears": number,
    "candidateYears": number,
    "details": string
  },
  "educationMatch": {
    "score": number (0-100),
    "details": string
  },
  "recommendedActions": string[] (concrete suggestions for the candidate),
  "matchSummary": string (2-3 sentence assessment)
}

IMPORTANT:
- Be objective and consistent
- Weigh required skills more heavily than optional ones
- Return ONLY the JSON, no explanatory text

Job posting:
%s

Candidate profile:
%s`

// Scorer compares a job posting against a candidate profile. The model
// client is optional; a nil client short-circuits the AI path.
type Scorer struct {
	client llm.Client
}

func NewScorer(client llm.Client) *Scorer {
	return &Scorer{client: client}
}

// Score always produces a result. It tries the model first and falls back to
// the heuristic scorer on any failure; usedAI reports which path produced the
// result.
func (s *Scorer) Score(ctx context.Context, posting matching.JobPosting, p profile.CandidateProfile) (result matching.MatchResult, usedAI bool) {
	scored, err := s.ScoreAI(ctx, posting, p)
	if err != nil {
		logx.Warnf("AI match scoring failed, using heuristic scorer: %v", err)
		return FallbackScore(posting, p), false
	}
	return scored, true
}

// ScoreAI runs the model path alone. It returns an error when the client is
// absent, the call fails, or the response holds no usable JSON; callers
// decide whether to fall back.
func (s *Scorer) ScoreAI(ctx context.Context, posting matching.JobPosting, p profile.CandidateProfile) (matching.MatchResult, error) {
	var result matching.MatchResult

	if s.client == nil {
		return result, ErrNoClient
	}

	jobJSON, err := json.Marshal(posting)
	if err != nil {
		return result, fmt.Errorf("marshal job posting: %w", err)
	}

	profileJSON, err := json.Marshal(p)
	if err != nil {
		return result, fmt.Errorf("marshal candidate profile: %w", err)
	}

	prompt := fmt.Sprintf(scorerSchemaPrompt, jobJSON, profileJSON)

	raw, err := s.client.Complete(ctx, scorerSystemPrompt, prompt)
	if err != nil {
		return matching.MatchResult{}, err
	}

	if err := jsonx.ExtractInto(raw, &result); err != nil {
		return matching.MatchResult{}, err
	}

	result.Normalize()
	return result, nil
}

package matching

import (
	"context"

	"github.com/talentgate/talentgate/pkg/kernel"
)

// Cache stores computed match results keyed by job and candidate. A miss
// returns (nil, nil).
type Cache interface {
	Get(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (*MatchResult, error)
	Set(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID, result *MatchResult) error

	// InvalidateCandidate drops every cached result for a candidate,
	// regardless of job.
	InvalidateCandidate(ctx context.Context, id kernel.CandidateID) error
}

// JobMatch pairs a job with its match result for listing endpoints.
type JobMatch struct {
	JobID    kernel.JobID `json:"job_id"`
	JobTitle string       `json:"job_title"`
	Result   MatchResult  `json:"result"`
}

// JobMatchesResponse - Ranked matches for one candidate across published jobs
type JobMatchesResponse struct {
	CandidateID kernel.CandidateID `json:"candidate_id"`
	Matches     []JobMatch         `json:"matches"`
}

// MatchResponse - A single job/candidate match
type MatchResponse struct {
	JobID       kernel.JobID       `json:"job_id"`
	CandidateID kernel.CandidateID `json:"candidate_id"`
	Result      MatchResult        `json:"result"`
}

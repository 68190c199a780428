package matchsrv

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/recruitment/job"
	"github.com/talentgate/talentgate/recruitment/matching"
	"github.com/talentgate/talentgate/recruitment/profile"
)

// maxConcurrentScores caps how many postings get scored at once when listing
// matches; each score may be a model round trip.
const maxConcurrentScores = 5

type Service struct {
	scorer      *Scorer
	jobRepo     job.Repository
	profileRepo profile.Repository
	cache       matching.Cache
}

// NewService creates a new matching service. cache may be nil; results are
// then recomputed on every call.
func NewService(
	scorer *Scorer,
	jobRepo job.Repository,
	profileRepo profile.Repository,
	cache matching.Cache,
) *Service {
	return &Service{
		scorer:      scorer,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		cache:       cache,
	}
}

// MatchJobForCandidate scores one job against one candidate's profile.
func (s *Service) MatchJobForCandidate(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (*matching.MatchResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	p, err := s.profileRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, matching.ErrProfileRequired().WithDetail("candidate_id", candidateID)
	}

	result := s.scoreWithCache(ctx, jobEntity, p)

	return &matching.MatchResponse{
		JobID:       jobID,
		CandidateID: candidateID,
		Result:      result,
	}, nil
}

// ListJobMatches scores every published job against the candidate's profile
// and returns them ranked by overall score, best first. Postings are scored
// concurrently; ordering between individual scores is irrelevant.
func (s *Service) ListJobMatches(ctx context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*matching.JobMatchesResponse, error) {
	p, err := s.profileRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, matching.ErrProfileRequired().WithDetail("candidate_id", candidateID)
	}

	jobs, err := s.jobRepo.ListPublished(ctx, pagination)
	if err != nil {
		return nil, matching.ErrRegistry.NewWithCause(matching.CodeMatchFailed, err).
			WithDetail("candidate_id", candidateID)
	}

	matches := make([]matching.JobMatch, len(jobs.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)

	for i := range jobs.Items {
		i := i
		g.Go(func() error {
			jobEntity := &jobs.Items[i]
			matches[i] = matching.JobMatch{
				JobID:    jobEntity.ID,
				JobTitle: string(jobEntity.Title),
				Result:   s.scoreWithCache(gctx, jobEntity, p),
			}
			return nil
		})
	}

	// Workers never return errors; scoring always degrades to the heuristic.
	_ = g.Wait()

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Result.OverallScore > matches[b].Result.OverallScore
	})

	return &matching.JobMatchesResponse{
		CandidateID: candidateID,
		Matches:     matches,
	}, nil
}

// scoreWithCache returns the cached result when present, otherwise computes
// and stores one. Cache failures degrade to recomputation.
func (s *Service) scoreWithCache(ctx context.Context, jobEntity *job.Job, p *profile.Profile) matching.MatchResult {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, jobEntity.ID, p.CandidateID)
		if err != nil {
			logx.Warnf("Match cache read failed: JobID=%s, CandidateID=%s, error=%v", jobEntity.ID, p.CandidateID, err)
		} else if cached != nil {
			return *cached
		}
	}

	posting := matching.PostingFromJob(jobEntity)
	result, usedAI := s.scorer.Score(ctx, posting, p.Data)

	if s.cache != nil {
		if err := s.cache.Set(ctx, jobEntity.ID, p.CandidateID, &result); err != nil {
			logx.Warnf("Match cache write failed: JobID=%s, CandidateID=%s, error=%v", jobEntity.ID, p.CandidateID, err)
		}
	}

	logx.Debugf("Scored match: JobID=%s, CandidateID=%s, Overall=%d, UsedAI=%v",
		jobEntity.ID, p.CandidateID, result.OverallScore, usedAI)

	return result
}

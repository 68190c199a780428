package matchsrv

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentgate/talentgate/recruitment/job"
	"github.com/talentgate/talentgate/recruitment/matching"
	"github.com/talentgate/talentgate/recruitment/profile"
)

func posting(skills []string, minYears int) matching.JobPosting {
	js := make([]job.JobSkill, 0, len(skills))
	for _, s := range skills {
		js = append(js, job.JobSkill{Name: s, Required: true})
	}
	return matching.JobPosting{
		Title:      "Backend Engineer",
		Skills:     js,
		Experience: job.ExperienceRange{Min: minYears},
	}
}

func candidateWith(skills []string, positions int, degrees int) profile.CandidateProfile {
	p := profile.CandidateProfile{}
	for _, s := range skills {
		p.Skills = append(p.Skills, profile.Skill{Name: s})
	}
	for i := 0; i < positions; i++ {
		p.Experience = append(p.Experience, profile.Experience{Title: "Engineer"})
	}
	for i := 0; i < degrees; i++ {
		p.Education = append(p.Education, profile.Education{Degree: "Bachelor of Science"})
	}
	p.Normalize()
	return p
}

func TestFallbackScore_SkillMatchIsCaseInsensitive(t *testing.T) {
	result := FallbackScore(posting([]string{"Java"}, 0), candidateWith([]string{"java"}, 0, 0))

	assert.Equal(t, 100, result.SkillsMatch.Score)
}

func TestFallbackScore_SkillMatchIsBidirectionalSubstring(t *testing.T) {
	// Candidate "JavaScript" contains job "Java"; job "PostgreSQL experience"
	// contains candidate "PostgreSQL".
	result := FallbackScore(
		posting([]string{"Java", "PostgreSQL experience"}, 0),
		candidateWith([]string{"JavaScript", "PostgreSQL"}, 0, 0),
	)

	assert.Equal(t, 100, result.SkillsMatch.Score)
}

func TestFallbackScore_PartialSkillMatch(t *testing.T) {
	result := FallbackScore(
		posting([]string{"Go", "Rust", "Kafka"}, 0),
		candidateWith([]string{"Go"}, 0, 0),
	)

	// 1 of 3 matched.
	assert.Equal(t, 33, result.SkillsMatch.Score)
}

func TestFallbackScore_NoJobSkills(t *testing.T) {
	result := FallbackScore(posting(nil, 0), candidateWith([]string{"Go"}, 0, 0))

	assert.Equal(t, 0, result.SkillsMatch.Score)
}

func TestFallbackScore_MatchedAndMissingLeftEmpty(t *testing.T) {
	result := FallbackScore(posting([]string{"Go"}, 0), candidateWith([]string{"Go"}, 0, 0))

	assert.Empty(t, result.SkillsMatch.MatchedSkills)
	assert.Empty(t, result.SkillsMatch.MissingSkills)
	assert.NotNil(t, result.SkillsMatch.MatchedSkills)
	assert.NotNil(t, result.SkillsMatch.MissingSkills)
}

func TestFallbackScore_ExperienceScore(t *testing.T) {
	cases := []struct {
		positions int
		required  int
		want      int
	}{
		{0, 5, 0},
		{1, 5, 20},
		{3, 5, 60},
		{5, 5, 100},
		{8, 5, 100},
		{0, 0, 100}, // no requirement, zero positions still satisfies it
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_of_%d", tc.positions, tc.required), func(t *testing.T) {
			result := FallbackScore(posting(nil, tc.required), candidateWith(nil, tc.positions, 0))
			assert.Equal(t, tc.want, result.ExperienceMatch.Score)
			assert.Equal(t, tc.required, result.ExperienceMatch.RequiredYears)
			assert.Equal(t, tc.positions, result.ExperienceMatch.CandidateYears)
		})
	}
}

func TestFallbackScore_EducationFlatScore(t *testing.T) {
	withDegree := FallbackScore(posting(nil, 0), candidateWith(nil, 0, 1))
	assert.Equal(t, 80, withDegree.EducationMatch.Score)

	withoutDegree := FallbackScore(posting(nil, 0), candidateWith(nil, 0, 0))
	assert.Equal(t, 0, withoutDegree.EducationMatch.Score)
}

func TestFallbackScore_OverallIsWeightedSum(t *testing.T) {
	// Skills 100 (1/1), experience 100 (2 >= 1), education 80.
	result := FallbackScore(posting([]string{"Go"}, 1), candidateWith([]string{"Go"}, 2, 1))

	want := int(math.Round(0.5*100 + 0.3*100 + 0.2*80))
	assert.Equal(t, want, result.OverallScore)
	assert.Equal(t, 96, result.OverallScore)
}

func TestFallbackScore_WeightedRoundingProperty(t *testing.T) {
	// The overall score holds the 0.5/0.3/0.2 rounding identity for every
	// sub-score combination in range, and stays within 0-100.
	for skills := 0; skills <= 100; skills++ {
		for experience := 0; experience <= 100; experience++ {
			for education := 0; education <= 100; education++ {
				got := weightedOverall(skills, experience, education)
				want := int(math.Round(0.5*float64(skills) + 0.3*float64(experience) + 0.2*float64(education)))
				if got != want || got < 0 || got > 100 {
					t.Fatalf("weightedOverall(%d, %d, %d) = %d, want %d", skills, experience, education, got, want)
				}
			}
		}
	}
}

func TestFallbackScore_OverallMatchesReportedComponents(t *testing.T) {
	// End to end: the overall reported by FallbackScore is the weighted
	// rounding of the components it reports.
	for positions := 0; positions <= 6; positions += 2 {
		for degrees := 0; degrees <= 1; degrees++ {
			result := FallbackScore(posting([]string{"Go", "Rust"}, 5), candidateWith([]string{"Go"}, positions, degrees))

			want := int(math.Round(
				0.5*float64(result.SkillsMatch.Score) +
					0.3*float64(result.ExperienceMatch.Score) +
					0.2*float64(result.EducationMatch.Score)))
			assert.Equal(t, want, result.OverallScore)
		}
	}
}

func TestFallbackScore_FixedActionsAndSummary(t *testing.T) {
	result := FallbackScore(posting([]string{"Go"}, 1), candidateWith([]string{"Go"}, 2, 1))

	require.Len(t, result.RecommendedActions, 2)
	assert.Equal(t, "Complete your profile", result.RecommendedActions[0])
	assert.Equal(t, "Add more relevant skills", result.RecommendedActions[1])
	assert.Equal(t,
		fmt.Sprintf("Based on your profile, you have a %d%% match with this position.", result.OverallScore),
		result.MatchSummary)
}

func TestFallbackScore_Deterministic(t *testing.T) {
	p := candidateWith([]string{"Go", "Docker"}, 3, 1)
	j := posting([]string{"Go", "Kubernetes"}, 4)

	assert.Equal(t, FallbackScore(j, p), FallbackScore(j, p))
}

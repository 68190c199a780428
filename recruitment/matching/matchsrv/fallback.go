package matchsrv

import (
	"fmt"
	"math"
	"strings"

	"github.com/talentgate/talentgate/recruitment/matching"
	"github.com/talentgate/talentgate/recruitment/profile"
)

// Sub-score weights for the heuristic scorer. Fixed policy, not per-call
// configurable.
const (
	skillsWeight     = 0.5
	experienceWeight = 0.3
	educationWeight  = 0.2

	educationFlatScore = 80
)

// FallbackScore computes a match with keyword heuristics alone. It is
// deterministic, makes no network calls, and never fails. MatchedSkills and
// MissingSkills are left empty; only the numeric scores carry information.
func FallbackScore(posting matching.JobPosting, p profile.CandidateProfile) matching.MatchResult {
	skillsScore := fallbackSkillsScore(posting, p)

	requiredYears := posting.Experience.Min
	// Number of listed positions stands in for years of experience.
	candidateYears := len(p.Experience)
	experienceScore := fallbackExperienceScore(requiredYears, candidateYears)

	educationScore := 0
	if len(p.Education) > 0 {
		educationScore = educationFlatScore
	}

	overall := weightedOverall(skillsScore, experienceScore, educationScore)

	result := matching.MatchResult{
		OverallScore: overall,
		SkillsMatch: matching.SkillsMatch{
			Score:         skillsScore,
			MatchedSkills: []string{},
			MissingSkills: []string{},
			Details:       "Basic keyword matching was used to compare skills.",
		},
		ExperienceMatch: matching.ExperienceMatch{
			Score:          experienceScore,
			RequiredYears:  requiredYears,
			CandidateYears: candidateYears,
			Details:        "Experience was estimated from the number of positions listed.",
		},
		EducationMatch: matching.EducationMatch{
			Score:   educationScore,
			Details: "Education was checked for presence only.",
		},
		RecommendedActions: []string{
			"Complete your profile",
			"Add more relevant skills",
		},
		MatchSummary: fmt.Sprintf("Based on your profile, you have a %d%% match with this position.", overall),
	}

	return result
}

// fallbackSkillsScore counts job skills that match any candidate skill by
// case-insensitive bidirectional substring containment.
func fallbackSkillsScore(posting matching.JobPosting, p profile.CandidateProfile) int {
	if len(posting.Skills) == 0 {
		return 0
	}

	candidateSkills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		candidateSkills = append(candidateSkills, strings.ToLower(s.Name))
	}

	matched := 0
	for _, js := range posting.Skills {
		jobSkill := strings.ToLower(js.Name)
		for _, cs := range candidateSkills {
			if cs == "" || jobSkill == "" {
				continue
			}
			if strings.Contains(cs, jobSkill) || strings.Contains(jobSkill, cs) {
				matched++
				break
			}
		}
	}

	return roundScore(100 * float64(matched) / float64(len(posting.Skills)))
}

func fallbackExperienceScore(requiredYears, candidateYears int) int {
	switch {
	case candidateYears >= requiredYears:
		return 100
	case candidateYears > 0:
		// requiredYears > candidateYears > 0 here, so the division is safe.
		return roundScore(100 * float64(candidateYears) / float64(requiredYears))
	default:
		return 0
	}
}

func weightedOverall(skills, experience, education int) int {
	return roundScore(skillsWeight*float64(skills) +
		experienceWeight*float64(experience) +
		educationWeight*float64(education))
}

func roundScore(v float64) int {
	return int(math.Round(v))
}

// Package matching computes compatibility scores between job postings and
// candidate profiles.
package matching

import (
	"github.com/talentgate/talentgate/recruitment/job"
)

// JobPosting is the scoring view of a job: the fields the match scorer
// consumes, detached from the stored aggregate.
type JobPosting struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Requirements []string            `json:"requirements"`
	Skills       []job.JobSkill      `json:"skills"`
	Experience   job.ExperienceRange `json:"experience"`
}

// PostingFromJob projects a stored job onto its scoring view.
func PostingFromJob(j *job.Job) JobPosting {
	requirements := make([]string, 0, len(j.Requirements))
	for _, r := range j.Requirements {
		requirements = append(requirements, string(r))
	}

	skills := j.Skills
	if skills == nil {
		skills = []job.JobSkill{}
	}

	return JobPosting{
		Title:        string(j.Title),
		Description:  string(j.Description),
		Requirements: requirements,
		Skills:       skills,
		Experience:   j.Experience,
	}
}

// MatchResult is the scored comparison of one job posting against one
// candidate profile. Scores are 0-100.
type MatchResult struct {
	OverallScore       int             `json:"overallScore"`
	SkillsMatch        SkillsMatch     `json:"skillsMatch"`
	ExperienceMatch    ExperienceMatch `json:"experienceMatch"`
	EducationMatch     EducationMatch  `json:"educationMatch"`
	RecommendedActions []string        `json:"recommendedActions"`
	MatchSummary       string          `json:"matchSummary"`
}

// SkillsMatch details how the candidate's skills line up with the posting.
// MatchedSkills and MissingSkills are best effort: the AI path fills them,
// the fallback leaves them empty.
type SkillsMatch struct {
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Details       string   `json:"details"`
}

type ExperienceMatch struct {
	Score          int    `json:"score"`
	RequiredYears  int    `json:"requiredYears"`
	CandidateYears int    `json:"candidateYears"`
	Details        string `json:"details"`
}

type EducationMatch struct {
	Score   int    `json:"score"`
	Details string `json:"details"`
}

// Normalize replaces nil collections with empty ones.
func (m *MatchResult) Normalize() {
	if m.SkillsMatch.MatchedSkills == nil {
		m.SkillsMatch.MatchedSkills = []string{}
	}
	if m.SkillsMatch.MissingSkills == nil {
		m.SkillsMatch.MissingSkills = []string{}
	}
	if m.RecommendedActions == nil {
		m.RecommendedActions = []string{}
	}
}

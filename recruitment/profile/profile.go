package profile

import (
	"time"

	"github.com/talentgate/talentgate/pkg/kernel"
)

// CandidateProfile is the structured representation of a resume. It is the
// wire shape produced by the interpreter and consumed by the match scorer.
// Every field is optional: consumers must handle absence, and Normalize
// guarantees no nil collection ever escapes this package.
type CandidateProfile struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
}

// PersonalInfo holds contact details. All fields optional.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience is a single work history entry. Current=true means the role is
// ongoing and EndDate is ignored.
type Experience struct {
	Title       string  `json:"title,omitempty"`
	Company     string  `json:"company,omitempty"`
	Location    string  `json:"location,omitempty"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     bool    `json:"current,omitempty"`
	Description string  `json:"description,omitempty"`
}

type Education struct {
	Degree      string `json:"degree,omitempty"`
	School      string `json:"school,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// SkillLevel is the self-assessed proficiency attached to a skill.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
	SkillLevelExpert       SkillLevel = "Expert"
)

// Skill entries are not deduplicated by name; that is the caller's concern.
type Skill struct {
	Name     string     `json:"name,omitempty"`
	Category string     `json:"category,omitempty"`
	Level    SkillLevel `json:"level,omitempty"`
}

type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

type Language struct {
	Name        string `json:"name,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Normalize replaces nil collections with empty ones so downstream consumers
// never see a missing key.
func (p *CandidateProfile) Normalize() {
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.Certifications == nil {
		p.Certifications = []Certification{}
	}
	if p.Languages == nil {
		p.Languages = []Language{}
	}
}

// HasExperience reports whether the profile lists any work history.
func (p *CandidateProfile) HasExperience() bool {
	return len(p.Experience) > 0
}

// HasEducation reports whether the profile lists any education.
func (p *CandidateProfile) HasEducation() bool {
	return len(p.Education) > 0
}

// SkillNames returns the skill names in listing order.
func (p *CandidateProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}

// Profile is the stored aggregate: one CandidateProfile per candidate, plus
// source-file metadata and the embedding used for job recommendations.
type Profile struct {
	CandidateID kernel.CandidateID      `db:"candidate_id" json:"candidate_id"`
	Data        CandidateProfile        `db:"data" json:"data"`
	Embedding   kernel.ProfileEmbedding `db:"embedding" json:"-"`
	ResumeURL   kernel.BucketURL        `db:"resume_url" json:"resume_url,omitempty"`
	FileName    string                  `db:"file_name" json:"file_name,omitempty"`
	CreatedAt   time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time               `db:"updated_at" json:"updated_at"`
}

// Touch updates the modification timestamp.
func (p *Profile) Touch() {
	p.UpdatedAt = time.Now()
}

package profilesrv

import (
	"regexp"
	"strings"

	"github.com/talentgate/talentgate/recruitment/profile"
)

// Regexes for the keyword-based extractor. Compiled once.
var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// A permissive run of digits and phone punctuation, at least 10
	// characters, optionally prefixed with +. Covers international formats,
	// not just 3-3-4 groupings.
	phonePattern = regexp.MustCompile(`\+?\d[\d ().-]{8,}\d`)
	namePattern  = regexp.MustCompile(`(?m)^([A-Z][a-z]+ [A-Z][a-z]+)`)
)

// fallbackSkillKeywords is the closed list of technologies the keyword
// extractor recognizes.
var fallbackSkillKeywords = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "Go",
	"React", "Angular", "Vue", "Node.js", "Express", "MongoDB",
	"SQL", "AWS", "Docker", "Kubernetes",
}

// degreeKeywords mark lines that get emitted as education entries.
var degreeKeywords = []string{"Bachelor", "Master", "PhD", "Diploma", "Certificate"}

// FallbackExtract builds a profile from resume text with regexes and keyword
// lists alone. It never fails and makes no network calls; every collection in
// the result is present, possibly empty.
func FallbackExtract(text string) profile.CandidateProfile {
	p := profile.CandidateProfile{}

	if m := namePattern.FindString(text); m != "" {
		p.PersonalInfo.Name = m
	}
	if m := emailPattern.FindString(text); m != "" {
		p.PersonalInfo.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		p.PersonalInfo.Phone = m
	}

	lower := strings.ToLower(text)
	for _, kw := range fallbackSkillKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			p.Skills = append(p.Skills, profile.Skill{
				Name:     kw,
				Category: "Technical",
				Level:    profile.SkillLevelIntermediate,
			})
		}
	}

	// One education entry per degree keyword found in a line, degree set to
	// the whole raw line. A line with two keywords yields two entries.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, kw := range degreeKeywords {
			if strings.Contains(line, kw) {
				p.Education = append(p.Education, profile.Education{Degree: line})
			}
		}
	}

	p.Normalize()
	return p
}

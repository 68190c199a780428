package profilesrv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Senior Software Engineer

Contact: jane.doe@example.com | 555-123-4567

Skills: Python, React

Education
Bachelor of Science in Computer Science, State University, 2018
`

func TestFallbackExtract_AllCollectionsPresent(t *testing.T) {
	p := FallbackExtract("")

	assert.NotNil(t, p.Experience)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Projects)
	assert.NotNil(t, p.Certifications)
	assert.NotNil(t, p.Languages)
}

func TestFallbackExtract_PersonalInfo(t *testing.T) {
	p := FallbackExtract(sampleResume)

	assert.Equal(t, "Jane Doe", p.PersonalInfo.Name)
	assert.Equal(t, "jane.doe@example.com", p.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", p.PersonalInfo.Phone)
}

func TestFallbackExtract_InternationalPhone(t *testing.T) {
	p := FallbackExtract("Jane Doe\nContact: +44 20 7946 0958\n")

	assert.Equal(t, "+44 20 7946 0958", p.PersonalInfo.Phone)
}

func TestFallbackExtract_ParenthesizedPhone(t *testing.T) {
	p := FallbackExtract("Tel: (555) 123-4567\n")

	// The run starts at the leading digit per the extraction rule.
	assert.Equal(t, "555) 123-4567", p.PersonalInfo.Phone)
}

func TestFallbackExtract_PhoneTooShort(t *testing.T) {
	p := FallbackExtract("ext. 123-4567\n")

	assert.Empty(t, p.PersonalInfo.Phone)
}

func TestFallbackExtract_Skills(t *testing.T) {
	p := FallbackExtract("Skilled in Python and React.")

	require.Len(t, p.Skills, 2)
	names := []string{p.Skills[0].Name, p.Skills[1].Name}
	assert.Contains(t, names, "Python")
	assert.Contains(t, names, "React")

	for _, s := range p.Skills {
		assert.Equal(t, "Technical", s.Category)
		assert.Equal(t, "Intermediate", string(s.Level))
	}
}

func TestFallbackExtract_SkillKeywordIsCaseInsensitive(t *testing.T) {
	p := FallbackExtract("worked with PYTHON and kubernetes")

	require.Len(t, p.Skills, 2)
	assert.Equal(t, "Python", p.Skills[0].Name)
	assert.Equal(t, "Kubernetes", p.Skills[1].Name)
}

func TestFallbackExtract_EducationLineVerbatim(t *testing.T) {
	p := FallbackExtract(sampleResume)

	require.Len(t, p.Education, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science, State University, 2018", p.Education[0].Degree)
}

func TestFallbackExtract_TwoDegreeKeywordsOnOneLine(t *testing.T) {
	p := FallbackExtract("Bachelor and Master of Engineering\n")

	// One entry per keyword found, both carrying the whole line.
	require.Len(t, p.Education, 2)
	assert.Equal(t, p.Education[0].Degree, p.Education[1].Degree)
}

func TestFallbackExtract_DegreeKeywordIsCaseSensitive(t *testing.T) {
	p := FallbackExtract("completed a bachelor program\n")

	assert.Empty(t, p.Education)
}

func TestFallbackExtract_NoMatches(t *testing.T) {
	p := FallbackExtract("nothing useful here")

	assert.Empty(t, p.PersonalInfo.Name)
	assert.Empty(t, p.PersonalInfo.Email)
	assert.Empty(t, p.PersonalInfo.Phone)
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.Education)
}

func TestFallbackExtract_Deterministic(t *testing.T) {
	first := FallbackExtract(sampleResume)
	second := FallbackExtract(sampleResume)

	assert.Equal(t, first, second)
}

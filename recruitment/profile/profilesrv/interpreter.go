package profilesrv

import (
	"context"
	"errors"

	"github.com/talentgate/talentgate/internal/ai/jsonx"
	"github.com/talentgate/talentgate/internal/ai/llm"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/recruitment/profile"
)

// ErrNoClient is returned by the AI path when no model client was configured.
var ErrNoClient = errors.New("no model client configured")

const interpreterSystemPrompt = `You are a professional resume parser. Extract ALL information from the resume text and return ONLY valid JSON.`

const interpreterSchemaPrompt = `Extract all information from this resume in the following JSON structure:

{
  "personalInfo": {
    "name": string,
    "email": string,
    "phone": string,
    "location": string,
    "linkedin": string (optional),
    "github": string (optional),
    "website": string (optional)
  },
  "summary": string (professional summary, max 250 words),
  "experience": [{
    "title": string,
    "company": string,
    "location": string,
    "startDate": string,
    "endDate": string or null if current,
    "current": boolean,
    "description": string
  }],
  "education": [{
    "degree": string,
    "school": string,
    "location": string,
    "startDate": string,
    "endDate": string,
    "gpa": string (optional),
    "description": string (optional)
  }],
  "skills": [{
    "name": string,
    "category": string,
    "level": "Beginner" | "Intermediate" | "Advanced" | "Expert"
  }],
  "projects": [{
    "name": string,
    "description": string,
    "technologies": string[],
    "url": string (optional)
  }],
  "certifications": [{
    "name": string,
    "issuer": string,
    "date": string
  }],
  "languages": [{
    "name": string,
    "proficiency": string
  }]
}

IMPORTANT:
- Extract ALL information accurately
- If a field is not available, omit it or use empty string
- Maintain chronological order (newest first)
- Return ONLY the JSON, no explanatory text
- Be thorough and precise

Resume text:
`

// Interpreter converts plain resume text into a structured profile. The model
// client is optional; a nil client short-circuits the AI path.
type Interpreter struct {
	client llm.Client
}

func NewInterpreter(client llm.Client) *Interpreter {
	return &Interpreter{client: client}
}

// Interpret always produces a profile. It tries the model first and falls
// back to the keyword extractor on any failure; usedAI reports which path
// produced the result.
func (i *Interpreter) Interpret(ctx context.Context, resumeText string) (result profile.CandidateProfile, usedAI bool) {
	parsed, err := i.InterpretAI(ctx, resumeText)
	if err != nil {
		logx.Warnf("AI resume interpretation failed, using keyword extractor: %v", err)
		return FallbackExtract(resumeText), false
	}
	return parsed, true
}

// InterpretAI runs the model path alone. It returns an error when the client
// is absent, the call fails, or the response holds no usable JSON; callers
// decide whether to fall back.
func (i *Interpreter) InterpretAI(ctx context.Context, resumeText string) (profile.CandidateProfile, error) {
	var parsed profile.CandidateProfile

	if i.client == nil {
		return parsed, ErrNoClient
	}

	raw, err := i.client.Complete(ctx, interpreterSystemPrompt, interpreterSchemaPrompt+resumeText)
	if err != nil {
		return profile.CandidateProfile{}, err
	}

	if err := jsonx.ExtractInto(raw, &parsed); err != nil {
		return profile.CandidateProfile{}, err
	}

	parsed.Normalize()
	return parsed, nil
}

// Package jsonx recovers a JSON object from raw model output. Models often
// wrap JSON in markdown fences or surround it with prose even when told not
// to, so extraction is defensive: strip fences, take the first '{' through
// the last '}', then decode strictly.
package jsonx

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Reason classifies why extraction failed.
type Reason string

const (
	// ReasonNoObject means no brace-delimited span was found.
	ReasonNoObject Reason = "no_object"
	// ReasonInvalidJSON means the span did not decode as JSON.
	ReasonInvalidJSON Reason = "invalid_json"
)

// Error is the tagged failure outcome of an extraction attempt. Callers
// branch on it to invoke their fallback path.
type Error struct {
	Reason Reason
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("json extraction failed (%s): %v", e.Reason, e.cause)
	}
	return fmt.Sprintf("json extraction failed (%s)", e.Reason)
}

func (e *Error) Unwrap() error { return e.cause }

// Extract locates and validates the JSON object embedded in raw text.
// It returns the object's bytes, or an *Error when no valid object exists.
func Extract(raw string) (json.RawMessage, error) {
	text := stripFences(strings.TrimSpace(raw))

	start := strings.Index(text, "{")
	if start < 0 {
		return nil, &Error{Reason: ReasonNoObject}
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return nil, &Error{Reason: ReasonNoObject}
	}

	span := []byte(text[start : end+1])
	if !json.Valid(span) {
		return nil, &Error{Reason: ReasonInvalidJSON}
	}
	return json.RawMessage(span), nil
}

// ExtractInto extracts the embedded JSON object and decodes it into v.
func ExtractInto(raw string, v any) error {
	span, err := Extract(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(span, v); err != nil {
		return &Error{Reason: ReasonInvalidJSON, cause: err}
	}
	return nil
}

// stripFences removes one leading markdown code fence (with or without a
// language tag) and the matching trailing fence.
func stripFences(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimLeft(text, "\r\n")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

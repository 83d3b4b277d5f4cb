package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// ErrNoJSON is returned when the model reply contains no {...} span.
var ErrNoJSON = errors.New("no JSON object in model reply")

// greedy: first '{' through the last '}', newlines included
var jsonSpan = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON pulls the JSON object embedded in free-form model text.
// Models often wrap the object in prose or markdown fences, so the span
// between the first opening brace and the last closing brace is taken and
// validated. Two sibling objects therefore fail to parse rather than
// silently returning only the first one.
func ExtractJSON(text string) (json.RawMessage, error) {
	span := jsonSpan.FindString(text)
	if span == "" {
		return nil, ErrNoJSON
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(span)); err != nil {
		return nil, fmt.Errorf("parse model JSON: %w", err)
	}
	return json.RawMessage(buf.Bytes()), nil
}

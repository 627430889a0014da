package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSONArray reports that a model response carried no recognizable JSON
// array. Callers treat it the same as a failed request.
var ErrNoJSONArray = errors.New("no JSON array in model response")

var arrayPattern = regexp.MustCompile(`(?s)\[.*?\]`)

// FirstJSONArray locates the first bracketed array span in free-form model
// output. Markdown code fences are stripped first; the span itself is not
// validated here.
func FirstJSONArray(s string) (string, error) {
	s = stripCodeFences(s)

	match := arrayPattern.FindString(s)
	if match == "" {
		return "", ErrNoJSONArray
	}
	return match, nil
}

// UnmarshalFirstArray extracts the first array span and decodes it into v.
// A missing span and a span that is not valid JSON both fail closed.
func UnmarshalFirstArray(s string, v any) error {
	span, err := FirstJSONArray(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("%w: %v", ErrNoJSONArray, err)
	}
	return nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

package translate

import (
	"regexp"
	"strings"
)

// Models occasionally append translation disclaimers despite the prompt
// forbidding explanations. These show up parenthesized, bracketed, or as a
// standalone "Note:" line.
var (
	parenNotePattern   = regexp.MustCompile(`(?i)\((?:note|disclaimer)\b[^)]*\)`)
	bracketNotePattern = regexp.MustCompile(`(?i)\[(?:note|disclaimer)\b[^\]]*\]`)
)

// stripDisclaimers removes model-added translation notes from translated
// text, keeping the surrounding prose intact.
func stripDisclaimers(s string) string {
	s = parenNotePattern.ReplaceAllString(s, "")
	s = bracketNotePattern.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "note:") || strings.HasPrefix(lower, "disclaimer:") {
			continue
		}
		kept = append(kept, line)
	}
	s = strings.Join(kept, "\n")

	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

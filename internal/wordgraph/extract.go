// File path: internal/wordgraph/extract.go
package wordgraph

import "strings"

// ExtractJSON locates the JSON object embedded in a free-text model response.
// Fenced code blocks are tried first since models often wrap their payload in
// markdown; otherwise the text is scanned from the first '{' for a balanced
// object, skipping braces inside string literals. Surrounding prose is always
// tolerated.
func ExtractJSON(text string) (string, error) {
	if fenced := extractFenced(text); fenced != "" {
		return fenced, nil
	}
	if span := scanBalanced(text); span != "" {
		return span, nil
	}
	// Unbalanced output: fall back to the widest brace span rather than
	// rejecting outright.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1], nil
	}
	return "", ErrExtraction
}

func extractFenced(text string) string {
	for _, marker := range []string{"```json", "```"} {
		start := strings.Index(text, marker)
		if start < 0 {
			continue
		}
		rest := text[start+len(marker):]
		end := strings.Index(rest, "```")
		if end < 0 {
			continue
		}
		candidate := strings.TrimSpace(rest[:end])
		if strings.HasPrefix(candidate, "{") {
			return candidate
		}
	}
	return ""
}

// scanBalanced returns the first balanced {...} span, or "" when none closes.
func scanBalanced(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

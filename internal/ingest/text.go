package ingest

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`[ \t]{2,}`)

// CleanText normalizes extracted resume text: line endings, trailing
// whitespace, runs of spaces, and excessive blank lines, while keeping the
// line structure the LLM parser relies on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			cleaned = append(cleaned, "")
			continue
		}
		cleaned = append(cleaned, multiSpace.ReplaceAllString(line, " "))
	}

	result := strings.Join(cleaned, "\n")
	result = collapseBlankLines(result)
	return strings.TrimSpace(result)
}

// collapseBlankLines caps consecutive blank lines at one
func collapseBlankLines(content string) string {
	for strings.Contains(content, "\n\n\n") {
		content = strings.ReplaceAll(content, "\n\n\n", "\n\n")
	}
	return content
}

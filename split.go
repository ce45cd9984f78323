package beamer

import "strings"

// SplitSlides splits a document body (frontmatter already removed) into slide
// sections on standalone "---" lines. Separators inside fenced code blocks
// are ignored; empty sections are dropped. The split never fails.
func SplitSlides(body string) []string {
	var sections []string
	var current strings.Builder
	inFence := false

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if trimmed == "---" && !inFence {
			if strings.TrimSpace(current.String()) != "" {
				sections = append(sections, current.String())
			}
			current.Reset()
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}

	if strings.TrimSpace(current.String()) != "" {
		sections = append(sections, current.String())
	}
	return sections
}

// extractNotes separates speaker-note lines (prefixed "Note:") from the rest
// of a slide section. Notes never reach the tokenizer.
func extractNotes(section string) (content, notes string) {
	var contentLines, noteLines []string
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Note:") {
			note := strings.TrimSpace(strings.TrimPrefix(trimmed, "Note:"))
			if note != "" {
				noteLines = append(noteLines, note)
			}
			continue
		}
		contentLines = append(contentLines, line)
	}
	return strings.Join(contentLines, "\n"), strings.Join(noteLines, "\n\n")
}

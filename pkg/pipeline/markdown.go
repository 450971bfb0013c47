package pipeline

import (
	"regexp"
	"strings"
)

var blankRuns = regexp.MustCompile(`\n\s*\n\s*\n+`)

// simplifyMarkdown reduces converted markdown to its essential content:
// headings, lists, and plain paragraphs. Tables, images, code blocks,
// and blockquotes are dropped, and runs of blank lines collapsed.
func simplifyMarkdown(markdown string) string {
	var (
		kept    []string
		inFence bool
	)

	for _, line := range strings.Split(markdown, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		switch {
		case stripped == "":
			kept = append(kept, line)
		case strings.HasPrefix(stripped, "|"),
			strings.HasPrefix(stripped, "!["),
			strings.HasPrefix(stripped, ">"):
			// tables, images, blockquotes
		default:
			kept = append(kept, line)
		}
	}

	result := strings.Join(kept, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

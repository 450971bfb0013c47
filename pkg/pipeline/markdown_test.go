package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyMarkdown(t *testing.T) {
	input := `# Title

Some paragraph text.

| col | col |
| --- | --- |
| a   | b   |

![alt text](image.png)

> a quote to drop

` + "```go\nfmt.Println(\"code\")\n```" + `

- item one
- item two


1. numbered`

	got := simplifyMarkdown(input)

	assert.Contains(t, got, "# Title")
	assert.Contains(t, got, "Some paragraph text.")
	assert.Contains(t, got, "- item one")
	assert.Contains(t, got, "1. numbered")
	assert.NotContains(t, got, "|")
	assert.NotContains(t, got, "![")
	assert.NotContains(t, got, "> a quote")
	assert.NotContains(t, got, "fmt.Println")
	assert.NotContains(t, got, "```")
	assert.NotContains(t, got, "\n\n\n", "blank runs must be collapsed")
}

func TestSimplifyMarkdownEmpty(t *testing.T) {
	assert.Equal(t, "", simplifyMarkdown(""))
	assert.Equal(t, "", simplifyMarkdown("| only | a | table |"))
}

package convert

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// convertHTML converts an HTML document to markdown. When the document
// has a <title> and the converted markdown does not already open with a
// heading, the title is prepended as a top-level heading.
func (e *DocumentEngine) convertHTML(body []byte) (*Document, error) {
	markdown, err := e.html.ConvertString(string(body))
	if err != nil {
		return nil, Wrap(KindConversionFailure, err, "html conversion failed")
	}

	markdown = strings.TrimSpace(markdown)

	title := htmlTitle(body)
	if title != "" && !strings.HasPrefix(markdown, "#") {
		markdown = "# " + title + "\n\n" + markdown
	}

	if markdown == "" {
		return nil, Errf(KindConversionFailure, "html document produced no content")
	}

	return &Document{Markdown: markdown, Pages: 1}, nil
}

func htmlTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

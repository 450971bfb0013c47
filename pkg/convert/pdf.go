package convert

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
)

// convertPDF extracts per-page text from a PDF. The parser panics on
// some malformed inputs, so the recover maps those to a conversion
// failure instead of killing the request goroutine.
func (e *DocumentEngine) convertPDF(ctx context.Context, body []byte) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = Errf(KindConversionFailure, "pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, Wrap(KindConversionFailure, err, "unreadable pdf")
	}

	pages := reader.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		if ctx.Err() != nil {
			return nil, Wrap(KindConversionFailure, ctx.Err(), "pdf conversion interrupted")
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}

	markdown := strings.TrimSpace(b.String())
	if markdown == "" {
		return nil, Errf(KindConversionFailure, "no extractable text in pdf")
	}
	if pages < 1 {
		pages = 1
	}

	return &Document{Markdown: markdown, Pages: pages}, nil
}

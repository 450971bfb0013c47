package convert

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// convertText is the best-effort backend for plain text and unknown
// formats. It rejects payloads that look binary so the returned
// markdown never contains raw binary data.
func (e *DocumentEngine) convertText(body []byte) (*Document, error) {
	if bytes.ContainsRune(body, 0) || !utf8.Valid(body) {
		return nil, Errf(KindConversionFailure, "payload is not text")
	}

	text := strings.ReplaceAll(string(body), "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, Errf(KindConversionFailure, "document produced no content")
	}

	return &Document{Markdown: text, Pages: 1}, nil
}

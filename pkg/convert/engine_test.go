package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *DocumentEngine {
	t.Helper()
	engine, err := NewEngine()
	require.NoError(t, err)
	return engine
}

func TestConvertHTML(t *testing.T) {
	engine := newTestEngine(t)

	html := `<html><head><title>Example Domain</title></head>
<body><h1>Example Domain</h1><p>This domain is for use in examples.</p></body></html>`

	doc, err := engine.Convert(context.Background(), []byte(html), FormatHTML)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.Markdown, "# "), "markdown should open with a top-level heading, got %q", doc.Markdown)
	assert.Contains(t, doc.Markdown, "This domain is for use in examples.")
	assert.Equal(t, 1, doc.Pages)
}

func TestConvertHTMLPrependsTitle(t *testing.T) {
	engine := newTestEngine(t)

	// No h1 in the body, but a title in the head.
	html := `<html><head><title>My Page</title></head><body><p>Just a paragraph.</p></body></html>`

	doc, err := engine.Convert(context.Background(), []byte(html), FormatHTML)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.Markdown, "# My Page"), "got %q", doc.Markdown)
}

func TestConvertHTMLIdempotent(t *testing.T) {
	engine := newTestEngine(t)
	html := []byte(`<html><head><title>T</title></head><body><h1>T</h1><ul><li>one</li><li>two</li></ul></body></html>`)

	first, err := engine.Convert(context.Background(), html, FormatHTML)
	require.NoError(t, err)
	second, err := engine.Convert(context.Background(), html, FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, first.Markdown, second.Markdown)
}

func TestConvertEmptyPayload(t *testing.T) {
	engine := newTestEngine(t)
	for _, format := range []Format{FormatHTML, FormatPDF, FormatDOC, FormatText, FormatUnknown} {
		_, err := engine.Convert(context.Background(), nil, format)
		assert.Equal(t, KindConversionFailure, KindOf(err), "format %s", format)
	}
}

func TestConvertText(t *testing.T) {
	engine := newTestEngine(t)

	doc, err := engine.Convert(context.Background(), []byte("line one\r\nline two\n"), FormatText)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", doc.Markdown)
	assert.Equal(t, 1, doc.Pages)
}

func TestConvertUnknownRejectsBinary(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Convert(context.Background(), []byte{0x89, 'P', 'N', 'G', 0x00, 0x1a}, FormatUnknown)
	assert.Equal(t, KindConversionFailure, KindOf(err))
}

func TestConvertCorruptPDF(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Convert(context.Background(), []byte("%PDF-1.4 truncated garbage"), FormatPDF)
	assert.Equal(t, KindConversionFailure, KindOf(err))
}

// buildDOCX assembles a minimal .docx archive in memory.
func buildDOCX(t *testing.T, documentXML, appXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)

	if appXML != "" {
		f, err = w.Create("docProps/app.xml")
		require.NoError(t, err)
		_, err = f.Write([]byte(appXML))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestConvertDOCX(t *testing.T) {
	engine := newTestEngine(t)

	documentXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`
	appXML := `<?xml version="1.0"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"><Pages>3</Pages></Properties>`

	doc, err := engine.Convert(context.Background(), buildDOCX(t, documentXML, appXML), FormatDOC)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", doc.Markdown)
	assert.Equal(t, 3, doc.Pages)
}

func TestConvertDOCXWithoutPageCount(t *testing.T) {
	engine := newTestEngine(t)

	documentXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>Only paragraph.</w:t></w:r></w:p></w:body>
</w:document>`

	doc, err := engine.Convert(context.Background(), buildDOCX(t, documentXML, ""), FormatDOC)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Pages)
}

func TestConvertDOCXCorrupt(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Convert(context.Background(), []byte("not a zip archive at all"), FormatDOC)
	assert.Equal(t, KindConversionFailure, KindOf(err))
}

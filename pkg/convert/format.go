package convert

import (
	"mime"
	"net/url"
	"path"
	"strings"
)

// Format is the document format inferred for a fetched resource.
// It is derived per request and never stored.
type Format int

const (
	FormatUnknown Format = iota
	FormatHTML
	FormatPDF
	FormatDOC
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatPDF:
		return "pdf"
	case FormatDOC:
		return "doc"
	case FormatText:
		return "txt"
	default:
		return "unknown"
	}
}

// Ext returns the file extension reported in conversion metadata.
func (f Format) Ext() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatPDF:
		return ".pdf"
	case FormatDOC:
		return ".docx"
	default:
		return ".txt"
	}
}

// Formats lists the formats the engine accepts, for health reporting.
func Formats() []string {
	return []string{"html", "pdf", "doc", "txt"}
}

var contentTypeFormats = map[string]Format{
	"text/html":             FormatHTML,
	"application/xhtml+xml": FormatHTML,
	"application/pdf":       FormatPDF,
	"application/msword":    FormatDOC,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOC,
	"text/plain":    FormatText,
	"text/markdown": FormatText,
}

var suffixFormats = map[string]Format{
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".pdf":      FormatPDF,
	".doc":      FormatDOC,
	".docx":     FormatDOC,
	".txt":      FormatText,
	".md":       FormatText,
	".markdown": FormatText,
}

// Classify infers the document format from the declared content type,
// falling back to the final URL's path suffix, then FormatUnknown.
// It is a pure function: identical inputs always classify identically.
func Classify(contentType, finalURL string) Format {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			mediaType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
		}
		if f, ok := contentTypeFormats[mediaType]; ok {
			return f
		}
	}

	if u, err := url.Parse(finalURL); err == nil {
		suffix := strings.ToLower(path.Ext(u.Path))
		if f, ok := suffixFormats[suffix]; ok {
			return f
		}
	}

	return FormatUnknown
}

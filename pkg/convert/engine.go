package convert

import (
	"context"

	htmlmd "github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// Document is the output of a successful conversion. Markdown is never
// empty and Pages is always >= 1.
type Document struct {
	Markdown string
	Pages    int
}

// Engine turns raw document bytes into markdown. Implementations must
// be safe for concurrent use by multiple in-flight requests.
type Engine interface {
	Convert(ctx context.Context, body []byte, format Format) (*Document, error)
}

// DocumentEngine is the default Engine. It is constructed once at
// process start and read-only afterwards.
type DocumentEngine struct {
	html *htmlmd.Converter
}

// NewEngine builds the shared conversion engine. The returned handle is
// immutable and safe for unsynchronized concurrent reads.
func NewEngine() (*DocumentEngine, error) {
	conv := htmlmd.NewConverter(
		htmlmd.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)

	// Probe conversion so a broken converter surfaces at startup
	// rather than on the first request.
	if _, err := conv.ConvertString("<p>probe</p>"); err != nil {
		return nil, Wrap(KindUninitialized, err, "conversion engine failed startup probe")
	}

	return &DocumentEngine{html: conv}, nil
}

// Convert dispatches to the backend for format. FormatUnknown gets
// best-effort plain text extraction.
func (e *DocumentEngine) Convert(ctx context.Context, body []byte, format Format) (*Document, error) {
	if len(body) == 0 {
		return nil, Errf(KindConversionFailure, "empty payload")
	}

	switch format {
	case FormatHTML:
		return e.convertHTML(body)
	case FormatPDF:
		return e.convertPDF(ctx, body)
	case FormatDOC:
		return e.convertDOCX(body)
	default:
		return e.convertText(body)
	}
}

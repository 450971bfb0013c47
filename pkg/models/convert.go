package models

import (
	"fmt"
	"math"
	"time"
)

// Markdown output styles recognized in the options map.
const (
	MarkdownSimple   = "simple"
	MarkdownComplete = "complete"
)

// ConvertRequest is the body of POST /convert.
type ConvertRequest struct {
	URL     string         `json:"url" binding:"required"`
	Options map[string]any `json:"options,omitempty"`
}

// ConvertOptions is the recognized subset of the request options map.
// Unknown keys are ignored.
type ConvertOptions struct {
	// MarkdownType selects post-processing of the converted markdown,
	// either MarkdownSimple or MarkdownComplete.
	MarkdownType string
	// TimeoutSeconds overrides the default fetch budget when > 0.
	TimeoutSeconds int
}

// DefaultOptions returns the options applied when the request carries none.
func DefaultOptions() ConvertOptions {
	return ConvertOptions{MarkdownType: MarkdownComplete}
}

// ParseOptions extracts the recognized keys from a raw options map.
// Unknown keys are ignored; known keys with invalid values are an error.
func ParseOptions(raw map[string]any) (ConvertOptions, error) {
	opts := DefaultOptions()
	if raw == nil {
		return opts, nil
	}

	if v, ok := raw["markdown_type"]; ok {
		s, ok := v.(string)
		if !ok || (s != MarkdownSimple && s != MarkdownComplete) {
			return opts, fmt.Errorf("markdown_type must be %q or %q", MarkdownSimple, MarkdownComplete)
		}
		opts.MarkdownType = s
	}

	if v, ok := raw["timeout"]; ok {
		switch t := v.(type) {
		case float64:
			// JSON numbers decode as float64
			if t <= 0 || t != math.Trunc(t) {
				return opts, fmt.Errorf("timeout must be a positive integer")
			}
			opts.TimeoutSeconds = int(t)
		case int:
			if t <= 0 {
				return opts, fmt.Errorf("timeout must be a positive integer")
			}
			opts.TimeoutSeconds = t
		default:
			return opts, fmt.Errorf("timeout must be a positive integer")
		}
	}

	return opts, nil
}

// ConversionMetadata describes a successful conversion.
type ConversionMetadata struct {
	SourceURL string `json:"source_url"`
	FileType  string `json:"file_type"`
	// ContentLength is the byte length of the returned markdown,
	// not of the original resource.
	ContentLength  int       `json:"content_length"`
	Pages          int       `json:"pages"`
	MarkdownType   string    `json:"markdown_type"`
	ConversionTime time.Time `json:"conversion_time"`
}

// ConversionResult is the envelope returned for every convert call.
// Exactly one of Markdown/Metadata (success) or Error (failure) is set.
type ConversionResult struct {
	Success     bool                `json:"success"`
	Markdown    string              `json:"markdown,omitempty"`
	Metadata    *ConversionMetadata `json:"metadata,omitempty"`
	Error       string              `json:"error,omitempty"`
	ProcessedAt time.Time           `json:"processed_at"`
}

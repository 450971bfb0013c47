package pipeline

import (
	"time"

	"url2md-go/pkg/convert"
	"url2md-go/pkg/models"
)

// assembleSuccess builds the success envelope. content_length is the
// byte length of the markdown being returned, not of the original
// resource. Timestamps are stamped here, at finalization.
func assembleSuccess(sourceURL string, format convert.Format, opts models.ConvertOptions, markdown string, pages int) models.ConversionResult {
	now := time.Now().UTC()
	if pages < 1 {
		pages = 1
	}
	return models.ConversionResult{
		Success:  true,
		Markdown: markdown,
		Metadata: &models.ConversionMetadata{
			SourceURL:      sourceURL,
			FileType:       format.Ext(),
			ContentLength:  len(markdown),
			Pages:          pages,
			MarkdownType:   opts.MarkdownType,
			ConversionTime: now,
		},
		ProcessedAt: now,
	}
}

// assembleFailure builds the failure envelope, copying the error
// message verbatim.
func assembleFailure(err error) models.ConversionResult {
	return models.ConversionResult{
		Success:     false,
		Error:       err.Error(),
		ProcessedAt: time.Now().UTC(),
	}
}

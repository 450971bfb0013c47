package convert

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// convertDOCX extracts paragraph text from a Word document. A .docx
// file is a zip archive; the main body lives in word/document.xml and
// the page count, when the producer recorded one, in docProps/app.xml.
// Legacy binary .doc files are not zip archives and fail here.
func (e *DocumentEngine) convertDOCX(body []byte) (*Document, error) {
	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, Wrap(KindConversionFailure, err, "unsupported or corrupt word document")
	}

	var document *zip.File
	var appProps *zip.File
	for _, f := range archive.File {
		switch f.Name {
		case "word/document.xml":
			document = f
		case "docProps/app.xml":
			appProps = f
		}
	}
	if document == nil {
		return nil, Errf(KindConversionFailure, "word document has no body part")
	}

	paragraphs, err := docxParagraphs(document)
	if err != nil {
		return nil, Wrap(KindConversionFailure, err, "word document body is malformed")
	}

	markdown := strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
	if markdown == "" {
		return nil, Errf(KindConversionFailure, "word document produced no content")
	}

	pages := 1
	if appProps != nil {
		if n := docxPageCount(appProps); n > 0 {
			pages = n
		}
	}

	return &Document{Markdown: markdown, Pages: pages}, nil
}

// docxParagraphs walks word/document.xml collecting the text runs of
// each w:p element.
func docxParagraphs(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)

	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if p := strings.TrimSpace(current.String()); p != "" {
					paragraphs = append(paragraphs, p)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

// docxPageCount reads the Pages property from docProps/app.xml,
// returning 0 when absent or unparsable.
func docxPageCount(f *zip.File) int {
	rc, err := f.Open()
	if err != nil {
		return 0
	}
	defer rc.Close()

	var props struct {
		Pages int `xml:"Pages"`
	}
	if err := xml.NewDecoder(rc).Decode(&props); err != nil {
		return 0
	}
	return props.Pages
}

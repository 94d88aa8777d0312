// Package ingest extracts plain text from uploaded resume files so the
// LLM parser can turn them into activity drafts.
package ingest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for file types the extractor cannot read
type ErrUnsupportedFormat struct {
	Ext string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported resume format: %s (expected .pdf, .docx, .html, .txt, or .md)", e.Ext)
}

// ExtractText extracts and normalizes plain text from resume file contents.
// The format is chosen by the filename extension.
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".html", ".htm":
		text, err = extractHTML(data)
	case ".txt", ".md":
		text = string(data)
	default:
		return "", &ErrUnsupportedFormat{Ext: ext}
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than failing the whole file
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return stripXMLTags(content), nil
}

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text(), nil
}

// stripXMLTags drops markup from DOCX document XML, inserting line breaks at
// paragraph boundaries.
func stripXMLTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

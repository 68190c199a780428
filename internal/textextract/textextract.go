// Package textextract converts uploaded resume documents into plain text.
// The parsing pipeline only ever sees text; if extraction fails the document
// never reaches the interpreter.
package textextract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF   = "application/pdf"
	MimeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

// Supported reports whether a content type can be extracted.
func Supported(contentType string) bool {
	switch normalize(contentType) {
	case MimePDF, MimeDocx, MimePlain:
		return true
	}
	return false
}

// Extract converts document bytes into plain UTF-8 text based on content type.
func Extract(contentType string, data []byte) (string, error) {
	switch normalize(contentType) {
	case MimePlain:
		return string(data), nil
	case MimePDF:
		return extractPDF(data)
	case MimeDocx:
		return extractDocx(data)
	default:
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
}

func normalize(contentType string) string {
	// Drop parameters such as "; charset=utf-8".
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

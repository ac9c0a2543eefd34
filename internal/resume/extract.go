// Package resume reads resume documents and extracts their plain text.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/pathwise/internal/markup"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported MIME types.
const (
	MIMEText = "text/plain"
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrUnsupportedType is returned for files that are not PDF, DOCX or text.
	ErrUnsupportedType = errors.New("unsupported resume format (want PDF, DOCX or TXT)")

	// ErrEmptyDocument is returned when a document yields no text.
	ErrEmptyDocument = errors.New("resume contains no extractable text")
)

// Document is a loaded resume.
type Document struct {
	Name string
	MIME string
	Text string
}

// DetectMIME maps a file name to one of the supported MIME types by
// extension. Unknown extensions return "".
func DetectMIME(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return MIMEPDF
	case ".docx":
		return MIMEDOCX
	case ".txt", ".text", ".md":
		return MIMEText
	default:
		return ""
	}
}

// Extract returns the plain text of a resume of the given MIME type.
func Extract(mime string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch mime {
	case MIMEText:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("reading text resume: invalid UTF-8")
		}
		text = string(data)
	case MIMEPDF:
		text, err = extractPDFText(bytes.NewReader(data))
	case MIMEDOCX:
		text, err = extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, mime)
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func extractPDFText(r *bytes.Reader) (string, error) {
	pdfReader, err := pdf.NewReader(r, r.Size())
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// extractDocxText reads the document body and strips the
// WordprocessingML markup, keeping one line per paragraph.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}
	defer doc.Close()

	return markup.PlainText(doc.Editable().GetContent()), nil
}

// ReadDocument extracts a resume from r, detecting its type from name.
func ReadDocument(name string, r io.Reader) (*Document, error) {
	mime := DetectMIME(name)
	if mime == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Base(name))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	text, err := Extract(mime, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(name), err)
	}
	return &Document{Name: filepath.Base(name), MIME: mime, Text: text}, nil
}

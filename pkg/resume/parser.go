package resume

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned before any extraction is attempted when the
// uploaded file has an extension other than .pdf or .txt.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and txt are allowed")

// ExtractText extracts plain text from supported resume formats.
// Supports: .pdf and .txt (case-insensitive extension check).
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".txt":
		return strings.TrimSpace(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractTextFromPDF concatenates per-page text with no page separators,
// matching the behavior downstream scoring was tuned against.
func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

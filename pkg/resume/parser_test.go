package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextTxt(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("  Software engineer, 5 years.\n"))
	require.NoError(t, err)
	assert.Equal(t, "Software engineer, 5 years.", text)
}

func TestExtractTextExtensionCaseInsensitive(t *testing.T) {
	text, err := ExtractText("RESUME.TXT", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractTextRejectsUnsupportedFormats(t *testing.T) {
	for _, name := range []string{"resume.docx", "resume.doc", "resume.rtf", "resume", "resume.pdf.exe"} {
		_, err := ExtractText(name, []byte("content"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "file: %s", name)
	}
}

func TestExtractTextInvalidPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("this is not a pdf"))
	assert.Error(t, err)
}

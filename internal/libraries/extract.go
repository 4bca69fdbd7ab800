package libraries

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText pulls plain text out of an uploaded file. PDFs go through the
// PDF text extractor; anything else is read as UTF-8 with invalid bytes
// dropped.
func ExtractText(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return extractPDF(file, fileHeader.Size)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

func extractPDF(file multipart.File, size int64) (string, error) {
	reader, err := pdf.NewReader(file, size)
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	text, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, text); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

// Package resume extracts raw text and contact fields from uploaded
// documents. It is deliberately best-effort: any or all fields may come
// back empty, which signals the caller to prompt for manual entry. There is
// no semantic understanding of resume structure.
package resume

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adamspd/InterviewPrep/models"
	"github.com/adamspd/InterviewPrep/utils"
	"github.com/ledongthuc/pdf"
)

// ParsedDocument is the collaborator contract: name, email, phone and the
// raw extracted text.
type ParsedDocument struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)
)

// ParseDocument extracts text and contact fields from an uploaded file.
// Accepted types are .pdf and .docx; anything else is rejected with
// UnsupportedFileTypeError.
func ParseDocument(filename string, data []byte) (*ParsedDocument, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	default:
		return nil, &models.UnsupportedFileTypeError{Filename: filename}
	}
	if err != nil {
		return nil, err
	}

	doc := &ParsedDocument{
		Name:  nameFromFilename(filename),
		Email: emailPattern.FindString(text),
		Phone: phonePattern.FindString(text),
		Text:  text,
	}
	utils.LogDebug("Parsed %s: %d chars, email=%q phone=%q", filename, len(text), doc.Email, doc.Phone)
	return doc, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &models.ParseError{Err: err}
	}

	var builder strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n\n")
	}

	return builder.String(), nil
}

// nameFromFilename guesses a candidate name from the upload's filename:
// strip the extension and resume/cv prefixes, then title-case the rest.
func nameFromFilename(filename string) string {
	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = resumePrefixPattern.ReplaceAllString(name, "")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.TrimSpace(name)

	words := strings.Fields(name)
	for i, word := range words {
		// First character may be multi-byte, so split on the rune boundary.
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}

var resumePrefixPattern = regexp.MustCompile(`(?i)^(resume|cv)[-_\s]*`)

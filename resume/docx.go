package resume

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/adamspd/InterviewPrep/models"
)

// extractDocxText pulls the raw text out of a DOCX file. A DOCX is a zip
// archive whose word/document.xml holds the body; text lives in <w:t>
// elements and paragraphs end at </w:p>. No formatting survives.
func extractDocxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &models.ParseError{Err: err}
	}

	var document *zip.File
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document = file
			break
		}
	}
	if document == nil {
		return "", &models.ParseError{Err: fmt.Errorf("docx has no word/document.xml")}
	}

	reader, err := document.Open()
	if err != nil {
		return "", &models.ParseError{Err: err}
	}
	defer reader.Close()

	return textFromDocumentXML(reader)
}

func textFromDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var builder strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &models.ParseError{Err: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
			if t.Name.Local == "p" {
				builder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				builder.Write(t)
			}
		}
	}

	return builder.String(), nil
}

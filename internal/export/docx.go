package export

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ContentType is the media type of the files produced by DocxEncoder.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Encoder serialises a Document into a binary file format.
type Encoder interface {
	Encode(w io.Writer, doc Document) error
	Extension() string
}

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`

	relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentFooter = `</w:body></w:document>`
)

// DocxEncoder writes a minimal WordprocessingML package: content types,
// package relationships and the main document part. Line breaks inside a
// paragraph become <w:br/> and tabs become <w:tab/>; no styling is written.
type DocxEncoder struct{}

// Extension returns the file extension, including the dot.
func (DocxEncoder) Extension() string { return ".docx" }

// Encode writes doc as a .docx package to w.
func (e DocxEncoder) Encode(w io.Writer, doc Document) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"[Content_Types].xml", writeString(contentTypesXML)},
		{"_rels/.rels", writeString(relsXML)},
		{"word/document.xml", func(pw io.Writer) error { return writeDocumentXML(pw, doc) }},
	}

	for _, part := range parts {
		pw, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate})
		if err != nil {
			zw.Close()
			return fmt.Errorf("docx: create part %s: %w", part.name, err)
		}
		if err := part.write(pw); err != nil {
			zw.Close()
			return fmt.Errorf("docx: write part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("docx: finish package: %w", err)
	}
	return nil
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func writeDocumentXML(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(documentHeader)

	for i, section := range doc.Sections {
		last := i == len(doc.Sections)-1
		for _, p := range section.Paragraphs {
			if err := writeParagraph(bw, p); err != nil {
				return err
			}
		}
		if !last {
			// Non-final sections end with a paragraph carrying their properties.
			bw.WriteString(`<w:p><w:pPr><w:sectPr/></w:pPr></w:p>`)
		}
	}
	bw.WriteString(`<w:sectPr/>`)
	bw.WriteString(documentFooter)
	return bw.Flush()
}

func writeParagraph(bw *bufio.Writer, p Paragraph) error {
	if p.Text == "" {
		_, err := bw.WriteString(`<w:p/>`)
		return err
	}

	bw.WriteString(`<w:p><w:r>`)
	lines := strings.Split(p.Text, "\n")
	for i, line := range lines {
		if i > 0 {
			bw.WriteString(`<w:br/>`)
		}
		line = strings.TrimSuffix(line, "\r")
		for j, chunk := range strings.Split(line, "\t") {
			if j > 0 {
				bw.WriteString(`<w:tab/>`)
			}
			if chunk == "" {
				continue
			}
			bw.WriteString(`<w:t xml:space="preserve">`)
			if err := xml.EscapeText(bw, []byte(chunk)); err != nil {
				return err
			}
			bw.WriteString(`</w:t>`)
		}
	}
	_, err := bw.WriteString(`</w:r></w:p>`)
	return err
}

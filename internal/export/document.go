// Package export turns a buffer into a portable word-processor document.
//
// Building the document description is synchronous and total. Encoding it
// and delivering the bytes runs as an asynchronous Job whose result is
// always reported back to the caller.
package export

// Document is an encoder-agnostic description of exportable content.
type Document struct {
	Sections []Section
}

// Section groups paragraphs.
type Section struct {
	Paragraphs []Paragraph
}

// Paragraph is a block of plain text. Text may contain line breaks.
type Paragraph struct {
	Text string
}

// BuildDocument describes buffer as one section holding one paragraph with
// the unmodified buffer text. It never fails; an empty buffer yields one
// empty paragraph.
func BuildDocument(buffer string) Document {
	return Document{
		Sections: []Section{
			{Paragraphs: []Paragraph{{Text: buffer}}},
		},
	}
}

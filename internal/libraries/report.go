package libraries

import (
	"io"

	"github.com/fumiama/go-docx"
)

// BuildReport assembles the export .docx: a heading, the plain summary and,
// when present, the structured summary section. The document is streamed to
// w rather than written to disk.
func BuildReport(w io.Writer, summary, structured string) error {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText("SynthesisTalk Report").Size("32")
	doc.AddParagraph().AddText("=== Plain Summary ===")
	doc.AddParagraph().AddText(summary)

	if structured != "" {
		doc.AddParagraph()
		doc.AddParagraph().AddText("=== Structured Summary ===")
		doc.AddParagraph().AddText(structured)
	}

	_, err := doc.WriteTo(w)
	return err
}

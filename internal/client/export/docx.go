// Package export renders notes to files the user can open elsewhere.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/client/models"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentHead = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentTail = `</w:body></w:document>`

// DocxExt is the extension of files produced by WriteDocx.
const DocxExt = ".docx"

// HalfPoints converts a CSS pixel size to the half-point unit used by
// WordprocessingML (1px = 0.75pt).
func HalfPoints(px int) int {
	return px * 3 / 2
}

// WriteDocx writes n as a minimal Office Open XML document: a bold title
// paragraph followed by one paragraph per content line, all in fontFamily at
// the note's font size.
func WriteDocx(w io.Writer, n models.Note, fontFamily string) error {
	n = n.WithDefaults()
	if fontFamily == "" {
		fontFamily = models.PrimaryFamily(models.FontStack(n.FontStyle))
	}

	zw := zip.NewWriter(w)
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", rootRels},
		{"word/document.xml", documentXML(n, fontFamily)},
	}
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.body); err != nil {
			return fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

func documentXML(n models.Note, fontFamily string) string {
	var sb strings.Builder
	sb.WriteString(documentHead)

	size := HalfPoints(n.FontSize)
	paragraph(&sb, n.Title, fontFamily, size+8, true)
	for _, line := range strings.Split(strings.ReplaceAll(n.Content, "\r\n", "\n"), "\n") {
		paragraph(&sb, line, fontFamily, size, false)
	}

	sb.WriteString(documentTail)
	return sb.String()
}

func paragraph(sb *strings.Builder, text, font string, halfPoints int, bold bool) {
	sb.WriteString(`<w:p><w:r><w:rPr>`)
	fmt.Fprintf(sb, `<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s"/>`, escape(font))
	if bold {
		sb.WriteString(`<w:b/>`)
	}
	fmt.Fprintf(sb, `<w:sz w:val="%[1]d"/><w:szCs w:val="%[1]d"/>`, halfPoints)
	sb.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	sb.WriteString(escape(text))
	sb.WriteString(`</w:t></w:r></w:p>`)
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

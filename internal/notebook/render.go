package notebook

import "strings"

// RenderScript emits the document as percent-marker script text. Code
// cell content is written verbatim. Markdown cell content gets every
// line prefixed with "# " so the output stays parseable as a script;
// ParseScript does not strip that prefix again, so markdown cells do
// not survive repeated round-trips unchanged. One blank line follows
// each cell for readability.
func RenderScript(doc Document) string {
	var b strings.Builder
	for _, cell := range doc.Cells {
		if cell.Kind == CellMarkdown {
			b.WriteString(marker + " " + markdownTag + "\n")
			for _, line := range strings.Split(cell.Text, "\n") {
				b.WriteString(commentPrefix + line + "\n")
			}
		} else {
			b.WriteString(marker + "\n")
			b.WriteString(cell.Text)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

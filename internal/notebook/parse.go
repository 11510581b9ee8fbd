package notebook

import "strings"

// ParseScript scans script text line by line and groups it into cells.
// A trimmed line starting with "# %%" opens a new cell; the optional
// "[markdown]" tag selects the markdown kind. Content before the first
// marker forms an implicit code cell. Cells left with no non-blank
// content are dropped.
func ParseScript(text string) Document {
	doc := Document{}

	kind := CellCode
	var buf []string
	open := false

	closeCell := func() {
		if !open {
			return
		}
		open = false
		// The renderer emits one blank separator line after each
		// cell; drop exactly that line so cells round-trip without
		// losing genuine trailing blanks.
		end := len(buf)
		if end > 0 && buf[end-1] == "" {
			end--
		}
		if end == 0 {
			return
		}
		doc.Cells = append(doc.Cells, Cell{
			Kind: kind,
			Text: strings.Join(buf[:end], "\n"),
		})
	}

	lines := strings.Split(text, "\n")
	// A trailing newline is a line terminator, not an empty last line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, marker) {
			closeCell()
			kind = CellCode
			if strings.Contains(trimmed, markdownTag) {
				kind = CellMarkdown
			}
			buf = buf[:0]
			open = true
			continue
		}
		if !open {
			// Implicit initial cell absorbs pre-marker content.
			kind = CellCode
			buf = buf[:0]
			open = true
		}
		buf = append(buf, line)
	}
	closeCell()

	return doc
}

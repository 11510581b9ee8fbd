package api

import "github.com/tinytorch-edu/titod/internal/notebook"

// Notebook is the JSON serialization of a notebook document. The
// transcoder itself has no wire format; this is the queue caller's
// chosen representation.
type Notebook struct {
	Cells []NotebookCell `json:"cells"`
}

type NotebookCell struct {
	// Kind is "code" or "markdown".
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func NewNotebook(doc notebook.Document) *Notebook {
	n := &Notebook{Cells: make([]NotebookCell, 0, len(doc.Cells))}
	for _, c := range doc.Cells {
		n.Cells = append(n.Cells, NotebookCell{
			Kind: string(c.Kind),
			Text: c.Text,
		})
	}
	return n
}

func (n *Notebook) Document() notebook.Document {
	doc := notebook.Document{Cells: make([]notebook.Cell, 0, len(n.Cells))}
	for _, c := range n.Cells {
		kind := notebook.CellCode
		if c.Kind == string(notebook.CellMarkdown) {
			kind = notebook.CellMarkdown
		}
		doc.Cells = append(doc.Cells, notebook.Cell{Kind: kind, Text: c.Text})
	}
	return doc
}

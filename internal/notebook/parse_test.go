package notebook_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tinytorch-edu/titod/internal/notebook"
)

func TestParseEmptyScript(t *testing.T) {
	doc := notebook.ParseScript("")
	require.Empty(t, doc.Cells)
}

func TestParseMarkerlessScript(t *testing.T) {
	doc := notebook.ParseScript("x\ny")
	require.Len(t, doc.Cells, 1)
	require.Equal(t, notebook.CellCode, doc.Cells[0].Kind)
	require.Equal(t, "x\ny", doc.Cells[0].Text)
}

func TestParseMixedCells(t *testing.T) {
	doc := notebook.ParseScript("# %%\ncode1\n# %% [markdown]\nnote\n# %%\ncode2")
	require.Len(t, doc.Cells, 3)
	require.Equal(t, notebook.Cell{Kind: notebook.CellCode, Text: "code1"}, doc.Cells[0])
	require.Equal(t, notebook.Cell{Kind: notebook.CellMarkdown, Text: "note"}, doc.Cells[1])
	require.Equal(t, notebook.Cell{Kind: notebook.CellCode, Text: "code2"}, doc.Cells[2])
}

func TestParseContentBeforeFirstMarker(t *testing.T) {
	doc := notebook.ParseScript("import torch\n# %%\ncode")
	require.Len(t, doc.Cells, 2)
	require.Equal(t, notebook.Cell{Kind: notebook.CellCode, Text: "import torch"}, doc.Cells[0])
	require.Equal(t, notebook.Cell{Kind: notebook.CellCode, Text: "code"}, doc.Cells[1])
}

func TestParseDropsEmptyCells(t *testing.T) {
	doc := notebook.ParseScript("# %%\n# %%\ncode")
	require.Len(t, doc.Cells, 1)
	require.Equal(t, "code", doc.Cells[0].Text)
}

func TestParseKeepsInteriorBlankLines(t *testing.T) {
	doc := notebook.ParseScript("# %%\na\n\nb")
	require.Len(t, doc.Cells, 1)
	require.Equal(t, "a\n\nb", doc.Cells[0].Text)
}

func TestParseKeepsTrailingBlankBeyondSeparator(t *testing.T) {
	// Only the single separator blank before the next marker is eaten;
	// blank lines that belong to the cell stay.
	doc := notebook.ParseScript("# %%\na\n\n\n# %%\nb")
	require.Len(t, doc.Cells, 2)
	require.Equal(t, "a\n", doc.Cells[0].Text)
	require.Equal(t, "b", doc.Cells[1].Text)
}

func TestParseTrailingNewlineIsNotALine(t *testing.T) {
	doc := notebook.ParseScript("# %%\ncode\n")
	require.Len(t, doc.Cells, 1)
	require.Equal(t, "code", doc.Cells[0].Text)
}

func TestParseIndentedMarker(t *testing.T) {
	doc := notebook.ParseScript("  # %% [markdown]\nnote")
	require.Len(t, doc.Cells, 1)
	require.Equal(t, notebook.CellMarkdown, doc.Cells[0].Kind)
}

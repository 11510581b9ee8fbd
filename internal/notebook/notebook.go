// Package notebook converts between percent-marker script text and an
// ordered notebook document. Conversion is pure and total: malformed or
// marker-less input is never rejected, it just becomes a single code
// cell.
package notebook

type CellKind string

const (
	CellCode     CellKind = "code"
	CellMarkdown CellKind = "markdown"
)

// Cell is one unit of a document. Text is verbatim, no escaping.
type Cell struct {
	Kind CellKind
	Text string
}

// Document is an ordered sequence of cells. Order is the execution and
// reading order and is preserved end-to-end.
type Document struct {
	Cells []Cell
}

const (
	// marker starts a new cell when a trimmed line begins with it.
	marker = "# %%"

	// markdownTag on a marker line selects the markdown kind for the
	// next cell.
	markdownTag = "[markdown]"

	// commentPrefix is prepended to every markdown line on render. It
	// is NOT stripped on parse; see the package tests for the
	// documented round-trip asymmetry.
	commentPrefix = "# "
)

package extract

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// minCellGap is the horizontal whitespace (in points) that separates
	// two word clusters into different cells on the same text row.
	minCellGap = 6.0
	// columnTolerance groups cell start positions from different rows
	// into one logical column.
	columnTolerance = 10.0
)

// PDFExtractor reconstructs tables from text-based PDFs. It reads the
// positioned words of each page and rebuilds a grid the same way a
// stream-flavor table parser does: words are merged into cells by
// horizontal gap, and cells from all rows are aligned against shared
// column positions. One page yields one table.
type PDFExtractor struct{}

// NewPDFExtractor returns a ready table extractor for PDF documents.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Tables implements TableExtractor.
func (e *PDFExtractor) Tables(ctx context.Context, data []byte) ([]Table, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var tables []Table
	for i := 1; i <= reader.NumPage(); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}

		table := pageTable(rows)
		if len(table) > 0 {
			tables = append(tables, table)
		}
	}
	return tables, nil
}

// cell is a run of words with a shared start position on one text row.
type cell struct {
	x    float64
	endX float64
	text string
}

// pageTable converts one page of positioned text rows into a grid.
func pageTable(rows pdf.Rows) Table {
	cellRows := make([][]cell, 0, len(rows))
	for _, row := range rows {
		if cells := clusterWords(row.Content, minCellGap); len(cells) > 0 {
			cellRows = append(cellRows, cells)
		}
	}
	if len(cellRows) == 0 {
		return nil
	}

	anchors := columnAnchors(cellRows, columnTolerance)
	table := make(Table, 0, len(cellRows))
	for _, cells := range cellRows {
		table = append(table, assignColumns(cells, anchors))
	}
	return table
}

// clusterWords merges positioned glyph runs into cells, splitting whenever
// the horizontal gap to the previous run exceeds the threshold. Input is
// assumed sorted by X, which GetTextByRow guarantees.
func clusterWords(words []pdf.Text, gap float64) []cell {
	var cells []cell
	for _, w := range words {
		if strings.TrimSpace(w.S) == "" && len(cells) == 0 {
			continue
		}
		if len(cells) > 0 && w.X-cells[len(cells)-1].endX <= gap {
			last := &cells[len(cells)-1]
			last.text += w.S
			last.endX = w.X + w.W
			continue
		}
		cells = append(cells, cell{x: w.X, endX: w.X + w.W, text: w.S})
	}

	out := cells[:0]
	for _, c := range cells {
		c.text = strings.TrimSpace(c.text)
		if c.text != "" {
			out = append(out, c)
		}
	}
	return out
}

// columnAnchors derives the shared column start positions of a page by
// clustering the start X of every cell across all rows.
func columnAnchors(rows [][]cell, tol float64) []float64 {
	var xs []float64
	for _, row := range rows {
		for _, c := range row {
			xs = append(xs, c.x)
		}
	}
	if len(xs) == 0 {
		return nil
	}

	sort.Float64s(xs)
	anchors := []float64{xs[0]}
	for _, x := range xs[1:] {
		if x-anchors[len(anchors)-1] > tol {
			anchors = append(anchors, x)
		}
	}
	return anchors
}

// assignColumns places each cell of a row into the grid column whose
// anchor is nearest to the cell's start. When two cells land in the same
// column the texts are joined with a space.
func assignColumns(cells []cell, anchors []float64) []string {
	row := make([]string, len(anchors))
	for _, c := range cells {
		idx := nearestAnchor(anchors, c.x)
		if row[idx] == "" {
			row[idx] = c.text
		} else {
			row[idx] += " " + c.text
		}
	}
	return row
}

func nearestAnchor(anchors []float64, x float64) int {
	best := 0
	for i := range anchors {
		if math.Abs(x-anchors[i]) < math.Abs(x-anchors[best]) {
			best = i
		}
	}
	return best
}

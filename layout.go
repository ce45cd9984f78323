package beamer

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// displayWidth measures the printed width of text in terminal cells. Wide
// runes count as two cells; ANSI escape sequences count as zero.
func displayWidth(text string) int {
	return ansi.PrintableRuneWidth(text)
}

func spansWidth(spans []TextSpan) int {
	width := 0
	for _, span := range spans {
		width += displayWidth(span.Text)
	}
	return width
}

// styledWord is one wrap-atomic word, possibly split into fragments where the
// inline style changes mid-word.
type styledWord []TextSpan

func (w styledWord) width() int {
	return spansWidth(w)
}

// splitWords breaks a span sequence into wrap-atomic words. Whitespace
// separates words; a style boundary inside a word starts a new fragment of
// the same word.
func splitWords(spans []TextSpan) []styledWord {
	var words []styledWord
	var current styledWord

	for _, span := range spans {
		fields := strings.Split(span.Text, " ")
		for i, field := range fields {
			if i > 0 && len(current) > 0 {
				words = append(words, current)
				current = nil
			}
			field = strings.Trim(field, "\t\r\n")
			if field == "" {
				continue
			}
			current = append(current, TextSpan{Text: field, Style: span.Style})
		}
	}
	if len(current) > 0 {
		words = append(words, current)
	}
	return words
}

// wrapSpans greedily wraps a span sequence to the given width. Words joined
// onto one line are separated by a single space merged into the preceding
// fragment. A word wider than the line gets a line of its own, unclipped.
func wrapSpans(spans []TextSpan, width int) [][]TextSpan {
	words := splitWords(spans)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		width = 1
	}

	var lines [][]TextSpan
	var line []TextSpan
	lineWidth := 0

	for _, word := range words {
		w := word.width()
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line)
			line = nil
			lineWidth = 0
		}
		if lineWidth > 0 {
			line[len(line)-1].Text += " "
			lineWidth++
		}
		line = append(line, word...)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func truncateWithEllipsis(text string, limit int) string {
	if displayWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	var b strings.Builder
	width := 0
	for _, r := range text {
		rw := displayWidth(string(r))
		if width+rw > limit-1 {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + "…"
}

// truncateSpans fits a span sequence into limit cells, ending with an
// ellipsis when content is cut.
func truncateSpans(spans []TextSpan, limit int) []TextSpan {
	if spansWidth(spans) <= limit {
		return spans
	}
	if limit <= 0 {
		return nil
	}
	var out []TextSpan
	remaining := limit - 1
	for _, span := range spans {
		w := displayWidth(span.Text)
		if w <= remaining {
			out = append(out, span)
			remaining -= w
			continue
		}
		var b strings.Builder
		for _, r := range span.Text {
			rw := displayWidth(string(r))
			if rw > remaining {
				break
			}
			b.WriteRune(r)
			remaining -= rw
		}
		if b.Len() > 0 {
			out = append(out, TextSpan{Text: b.String(), Style: span.Style})
		}
		break
	}
	if len(out) > 0 {
		out[len(out)-1].Text += "…"
	} else {
		out = []TextSpan{{Text: "…"}}
	}
	return out
}

const minColumnWidth = 3

// tableColumnWidths sizes a table's columns for the target width. Every
// column gets its natural width when the table fits; otherwise columns are
// scaled down proportionally, never below the minimum.
func tableColumnWidths(t Table, width int) []int {
	cols := t.Columns()
	if cols == 0 {
		return nil
	}

	natural := make([]int, cols)
	measureRow := func(row [][]TextSpan) {
		for i, cell := range row {
			if i >= cols {
				break
			}
			if w := spansWidth(cell); w > natural[i] {
				natural[i] = w
			}
		}
	}
	measureRow(t.Headers)
	for _, row := range t.Rows {
		measureRow(row)
	}
	total := 0
	for i := range natural {
		if natural[i] < minColumnWidth {
			natural[i] = minColumnWidth
		}
		total += natural[i]
	}

	// per column: 2 cells of padding; between columns: a 3-cell separator
	available := width - (cols-1)*3 - cols*2
	if available < cols*minColumnWidth {
		available = cols * minColumnWidth
	}
	if total <= available {
		return natural
	}

	scaled := make([]int, cols)
	for i, w := range natural {
		scaled[i] = (w*available + total - 1) / total
		if scaled[i] < minColumnWidth {
			scaled[i] = minColumnWidth
		}
	}
	return scaled
}

// alignSpans pads a cell's rendered width to the column width per its
// alignment, returning left and right padding cell counts.
func alignPadding(contentWidth, columnWidth int, align Alignment) (left, right int) {
	gap := columnWidth - contentWidth
	if gap <= 0 {
		return 0, 0
	}
	switch align {
	case AlignRight:
		return gap, 0
	case AlignCenter:
		return gap / 2, gap - gap/2
	default:
		return 0, gap
	}
}

package beamer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pkt.systems/beamer/internal/palette"
)

// StyledSpan is one styled fragment of a rich output line.
type StyledSpan struct {
	Text  string
	Style lipgloss.Style
}

// Line is one visual line of rich output, consumed by an interactive UI.
type Line []StyledSpan

// Render joins the line's fragments with their styles applied.
func (l Line) Render() string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(span.Style.Render(span.Text))
	}
	return b.String()
}

// Width returns the line's printed width in cells.
func (l Line) Width() int {
	width := 0
	for _, span := range l {
		width += displayWidth(span.Text)
	}
	return width
}

// RenderLines converts blocks into a structured styled-line sequence with the
// same layout as the flat renderer. Blocks are separated by one blank line.
func RenderLines(blocks []Block, t Theme, width int, hl Highlighter) []Line {
	if width < 1 {
		width = defaultWidth
	}
	lr := &lineRenderer{styles: newLineStyles(t.Palette()), pal: t.Palette(), width: width, hl: hl}
	lr.blocks(blocks)
	return lr.lines
}

type lineStyles struct {
	text           lipgloss.Style
	heading        lipgloss.Style
	code           lipgloss.Style
	dimmed         lipgloss.Style
	rule           lipgloss.Style
	marker         lipgloss.Style
	quoteBorder    lipgloss.Style
	tableBorder    lipgloss.Style
	emphasis       lipgloss.Style
	strong         lipgloss.Style
	emphasisStrong lipgloss.Style
	strike         lipgloss.Style
}

func fg(c palette.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

func newLineStyles(p palette.Palette) lineStyles {
	heading := fg(p.Heading)
	if p.HeadingBold {
		heading = heading.Bold(true)
	}
	return lineStyles{
		text:           fg(p.Body),
		heading:        heading,
		code:           fg(p.Code),
		dimmed:         fg(p.Dimmed),
		rule:           fg(p.Rule),
		marker:         fg(p.ListMarker),
		quoteBorder:    fg(p.QuoteBorder),
		tableBorder:    fg(p.TableBorder),
		emphasis:       fg(p.Emphasis).Italic(true),
		strong:         fg(p.Strong).Bold(true),
		emphasisStrong: fg(p.Strong).Bold(true).Italic(true),
		strike:         fg(p.Dimmed).Strikethrough(true),
	}
}

type lineRenderer struct {
	lines  []Line
	styles lineStyles
	pal    palette.Palette
	width  int
	hl     Highlighter
}

func (lr *lineRenderer) push(line Line) {
	lr.lines = append(lr.lines, line)
}

func (lr *lineRenderer) blocks(blocks []Block) {
	for i, block := range blocks {
		if i > 0 {
			lr.push(Line{})
		}
		lr.block(block)
	}
}

func (lr *lineRenderer) block(block Block) {
	switch b := block.(type) {
	case Heading:
		lr.heading(b)
	case Paragraph:
		for _, wrapped := range wrapSpans(b.Spans, lr.width) {
			lr.push(lr.styledLine(wrapped))
		}
	case Code:
		lr.code(b)
	case List:
		lr.list(b, 0)
	case BlockQuote:
		lr.quote(b)
	case Table:
		lr.table(b)
	case Rule:
		lr.push(Line{{Text: strings.Repeat("─", lr.width), Style: lr.styles.rule}})
	case Admonition:
		lr.admonition(b)
	case Image:
		lr.image(b)
	}
}

func (lr *lineRenderer) spanStyle(ts TextStyle) lipgloss.Style {
	switch {
	case ts.Code:
		return lr.styles.code
	case ts.Strikethrough:
		return lr.styles.strike
	case ts.Bold && ts.Italic:
		return lr.styles.emphasisStrong
	case ts.Bold:
		return lr.styles.strong
	case ts.Italic:
		return lr.styles.emphasis
	default:
		return lr.styles.text
	}
}

func (lr *lineRenderer) styledLine(spans []TextSpan) Line {
	line := make(Line, 0, len(spans))
	for _, span := range spans {
		line = append(line, StyledSpan{Text: span.Text, Style: lr.spanStyle(span.Style)})
	}
	return line
}

func (lr *lineRenderer) heading(h Heading) {
	glyph := headingGlyphs[0]
	if h.Level >= 1 && h.Level <= 6 {
		glyph = headingGlyphs[h.Level-1]
	}
	indent := displayWidth(glyph) + 1
	for i, wrapped := range wrapSpans(h.Spans, lr.width-indent) {
		var line Line
		if i == 0 {
			line = append(line, StyledSpan{Text: glyph + " ", Style: lr.styles.heading})
		} else {
			line = append(line, StyledSpan{Text: strings.Repeat(" ", indent)})
		}
		line = append(line, StyledSpan{Text: PlainText(wrapped), Style: lr.styles.heading})
		lr.push(line)
	}
}

func (lr *lineRenderer) code(c Code) {
	limit := lr.width - 4
	if limit < 1 {
		limit = 1
	}
	text := strings.TrimRight(c.Text, "\n")

	lr.push(Line{{Text: "```" + c.Language, Style: lr.styles.dimmed}})
	var highlighted [][]ColoredText
	if lr.hl != nil {
		highlighted = lr.hl.Highlight(text, c.Language, lr.pal.Code)
	} else {
		highlighted = plainLines(text, lr.pal.Code)
	}
	for _, frags := range highlighted {
		line := Line{{Text: "  "}}
		remaining := limit
		for _, frag := range frags {
			w := displayWidth(frag.Text)
			if w > remaining {
				frag.Text = truncateWithEllipsis(frag.Text, remaining)
				w = displayWidth(frag.Text)
			}
			line = append(line, StyledSpan{Text: frag.Text, Style: fg(frag.Color)})
			remaining -= w
			if remaining <= 0 {
				break
			}
		}
		lr.push(line)
	}
	lr.push(Line{{Text: "```", Style: lr.styles.dimmed}})
}

func (lr *lineRenderer) list(l List, indent int) {
	pad := strings.Repeat(" ", indent)
	for i, item := range l.Items {
		marker := "• "
		if l.Ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		hang := strings.Repeat(" ", displayWidth(marker))

		wrapped := wrapSpans(item.Spans, lr.width-indent-displayWidth(marker))
		if len(wrapped) == 0 && item.Nested == nil {
			continue
		}
		if len(wrapped) == 0 {
			wrapped = [][]TextSpan{nil}
		}
		for j, spans := range wrapped {
			var line Line
			if j == 0 {
				line = Line{{Text: pad}, {Text: marker, Style: lr.styles.marker}}
			} else {
				line = Line{{Text: pad + hang}}
			}
			line = append(line, lr.styledLine(spans)...)
			lr.push(line)
		}
		if item.Nested != nil {
			lr.list(*item.Nested, indent+2)
		}
	}
}

func (lr *lineRenderer) quote(q BlockQuote) {
	inner := &lineRenderer{styles: lr.styles, pal: lr.pal, width: lr.width - 2, hl: lr.hl}
	if inner.width < 1 {
		inner.width = 1
	}
	inner.blocks(q.Blocks)
	for _, nested := range inner.lines {
		line := Line{{Text: "│ ", Style: lr.styles.quoteBorder}}
		lr.push(append(line, nested...))
	}
}

func (lr *lineRenderer) table(t Table) {
	widths := tableColumnWidths(t, lr.width)
	if len(widths) == 0 {
		return
	}
	if len(t.Headers) > 0 {
		lr.push(lr.tableRow(t, t.Headers, widths, true))
		lr.push(lr.tableSeparator(widths))
	}
	for _, row := range t.Rows {
		lr.push(lr.tableRow(t, row, widths, false))
	}
}

func (lr *lineRenderer) tableRow(t Table, cells [][]TextSpan, widths []int, header bool) Line {
	line := Line{{Text: " "}}
	for i, width := range widths {
		if i > 0 {
			line = append(line,
				StyledSpan{Text: " "},
				StyledSpan{Text: "│", Style: lr.styles.tableBorder},
				StyledSpan{Text: " "})
		}
		var cell []TextSpan
		if i < len(cells) {
			cell = cells[i]
		}
		cell = truncateSpans(cell, width)
		align := AlignLeft
		if i < len(t.Alignments) {
			align = t.Alignments[i]
		}
		left, right := alignPadding(spansWidth(cell), width, align)
		if left > 0 {
			line = append(line, StyledSpan{Text: strings.Repeat(" ", left)})
		}
		if header {
			line = append(line, StyledSpan{Text: PlainText(cell), Style: lr.styles.strong})
		} else {
			line = append(line, lr.styledLine(cell)...)
		}
		if right > 0 {
			line = append(line, StyledSpan{Text: strings.Repeat(" ", right)})
		}
	}
	return append(line, StyledSpan{Text: " "})
}

func (lr *lineRenderer) tableSeparator(widths []int) Line {
	var b strings.Builder
	for i, width := range widths {
		if i > 0 {
			b.WriteString("┼")
		}
		b.WriteString(strings.Repeat("─", width+2))
	}
	return Line{{Text: b.String(), Style: lr.styles.tableBorder}}
}

func (lr *lineRenderer) admonition(a Admonition) {
	boxWidth := lr.width
	if boxWidth < 8 {
		boxWidth = 8
	}
	interior := boxWidth - 4

	border := fg(admonitionColor(lr.pal, a.Type))
	title := a.Title
	if title == "" {
		title = a.Type.DefaultTitle()
	}
	titleText := a.Type.Icon() + " " + title
	if runewidth.StringWidth(titleText) > interior {
		titleText = runewidth.Truncate(titleText, interior, "…")
	}

	lr.push(Line{{Text: "╭" + strings.Repeat("─", boxWidth-2) + "╮", Style: border}})
	lr.push(Line{
		{Text: "│ ", Style: border},
		{Text: titleText, Style: border.Bold(true)},
		{Text: strings.Repeat(" ", interior-runewidth.StringWidth(titleText)) + " "},
		{Text: "│", Style: border},
	})

	if len(a.Blocks) > 0 {
		lr.push(Line{{Text: "├" + strings.Repeat("─", boxWidth-2) + "┤", Style: border}})
		inner := &lineRenderer{styles: lr.styles, pal: lr.pal, width: interior, hl: lr.hl}
		inner.blocks(a.Blocks)
		for _, nested := range inner.lines {
			line := Line{{Text: "│ ", Style: border}}
			line = append(line, nested...)
			if pad := interior - nested.Width(); pad > 0 {
				line = append(line, StyledSpan{Text: strings.Repeat(" ", pad)})
			}
			line = append(line, StyledSpan{Text: " "}, StyledSpan{Text: "│", Style: border})
			lr.push(line)
		}
	}

	lr.push(Line{{Text: "╰" + strings.Repeat("─", boxWidth-2) + "╯", Style: border}})
}

func (lr *lineRenderer) image(img Image) {
	label := img.Path
	if img.Alt != "" {
		label = img.Alt + " (" + img.Path + ")"
	}
	lr.push(Line{{Text: truncateWithEllipsis("[image: "+label+"]", lr.width), Style: lr.styles.dimmed}})
}

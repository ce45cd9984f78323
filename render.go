package beamer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"pkt.systems/beamer/internal/palette"
)

const ansiReset = palette.Reset

const defaultWidth = 80

// one glyph per heading level, visually heaviest first
var headingGlyphs = [6]string{"▉", "▓", "▒", "░", "▌", "▌"}

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	highlighter Highlighter
	paging      bool
}

// WithHighlighter sets the syntax highlighter used for code blocks. Without
// one, code renders in the theme's code color.
func WithHighlighter(h Highlighter) RenderOption {
	return func(cfg *renderConfig) {
		cfg.highlighter = h
	}
}

// WithPaging enables a per-slide footer formatted from Meta.Paging.
func WithPaging(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.paging = enabled
	}
}

// Render writes a document as flat ANSI-styled text, one slide after another
// separated by a full-width rule. A sink error aborts rendering immediately.
func Render(w io.Writer, doc *Document, t Theme, width int, opts ...RenderOption) error {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if width < 1 {
		width = defaultWidth
	}

	total := len(doc.Slides)
	for i, slide := range doc.Slides {
		r := newBlockRenderer(t, width, cfg.highlighter)
		if i > 0 {
			r.b.WriteByte('\n')
			r.writeStyled(strings.Repeat("═", width), r.styles.Rule)
			r.b.WriteString("\n\n")
		}
		r.blocks(slide.Blocks)
		if cfg.paging && doc.Meta.Paging != "" {
			r.b.WriteByte('\n')
			r.writeStyled(fmt.Sprintf(doc.Meta.Paging, i+1, total), r.styles.Dimmed)
			r.b.WriteByte('\n')
		}
		if _, err := io.WriteString(w, r.b.String()); err != nil {
			return err
		}
	}
	return nil
}

// RenderSlide writes a single slide as flat ANSI-styled text.
func RenderSlide(w io.Writer, slide Slide, t Theme, width int, opts ...RenderOption) error {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if width < 1 {
		width = defaultWidth
	}
	r := newBlockRenderer(t, width, cfg.highlighter)
	r.blocks(slide.Blocks)
	_, err := io.WriteString(w, r.b.String())
	return err
}

type blockRenderer struct {
	b      strings.Builder
	styles Styles
	pal    palette.Palette
	width  int
	hl     Highlighter
	plain  bool
}

func newBlockRenderer(t Theme, width int, hl Highlighter) *blockRenderer {
	styles := t.Styles()
	return &blockRenderer{
		styles: styles,
		pal:    t.Palette(),
		width:  width,
		hl:     hl,
		plain:  styles == Styles{},
	}
}

// sub returns a renderer with the same theme at a narrower width, used to
// render nested content before framing it.
func (r *blockRenderer) sub(width int) *blockRenderer {
	if width < 1 {
		width = 1
	}
	return &blockRenderer{styles: r.styles, pal: r.pal, width: width, hl: r.hl, plain: r.plain}
}

func (r *blockRenderer) blocks(blocks []Block) {
	for i, block := range blocks {
		if i > 0 {
			r.b.WriteByte('\n')
		}
		r.block(block)
	}
}

func (r *blockRenderer) block(block Block) {
	switch b := block.(type) {
	case Heading:
		r.heading(b)
	case Paragraph:
		r.paragraph(b)
	case Code:
		r.code(b)
	case List:
		r.list(b, 0)
	case BlockQuote:
		r.quote(b)
	case Table:
		r.table(b)
	case Rule:
		r.rule()
	case Admonition:
		r.admonition(b)
	case Image:
		r.image(b)
	}
}

func (r *blockRenderer) writeStyled(text string, style Style) {
	if style.Prefix == "" {
		r.b.WriteString(text)
		return
	}
	r.b.WriteString(style.Prefix)
	r.b.WriteString(text)
	r.b.WriteString(ansiReset)
}

// spanStyle resolves an inline style to the theme's role. Inline code wins
// over emphasis.
func (r *blockRenderer) spanStyle(ts TextStyle) Style {
	switch {
	case ts.Code:
		return r.styles.CodeInline
	case ts.Strikethrough:
		return r.styles.Strikethrough
	case ts.Bold && ts.Italic:
		return r.styles.EmphasisStrong
	case ts.Bold:
		return r.styles.Strong
	case ts.Italic:
		return r.styles.Emphasis
	default:
		return r.styles.Text
	}
}

func (r *blockRenderer) writeSpans(spans []TextSpan) {
	for _, span := range spans {
		r.writeStyled(span.Text, r.spanStyle(span.Style))
	}
}

func (r *blockRenderer) heading(h Heading) {
	glyph := headingGlyphs[0]
	if h.Level >= 1 && h.Level <= 6 {
		glyph = headingGlyphs[h.Level-1]
	}
	indent := displayWidth(glyph) + 1
	lines := wrapSpans(h.Spans, r.width-indent)
	for i, line := range lines {
		if i == 0 {
			r.writeStyled(glyph, r.styles.Heading)
			r.b.WriteByte(' ')
		} else {
			r.b.WriteString(strings.Repeat(" ", indent))
		}
		r.writeStyled(PlainText(line), r.styles.Heading)
		r.b.WriteByte('\n')
	}
}

func (r *blockRenderer) paragraph(p Paragraph) {
	for _, line := range wrapSpans(p.Spans, r.width) {
		r.writeSpans(line)
		r.b.WriteByte('\n')
	}
}

func (r *blockRenderer) code(c Code) {
	limit := r.width - 4
	if limit < 1 {
		limit = 1
	}
	text := strings.TrimRight(c.Text, "\n")

	r.writeStyled("```"+c.Language, r.styles.Dimmed)
	r.b.WriteByte('\n')

	var lines [][]ColoredText
	if r.hl != nil {
		lines = r.hl.Highlight(text, c.Language, r.pal.Code)
	} else {
		lines = plainLines(text, r.pal.Code)
	}
	for _, line := range lines {
		r.b.WriteString("  ")
		remaining := limit
		for _, frag := range line {
			w := displayWidth(frag.Text)
			if w > remaining {
				frag.Text = truncateWithEllipsis(frag.Text, remaining)
				w = displayWidth(frag.Text)
			}
			style := Style{Prefix: frag.Color.Foreground()}
			if r.plain {
				style = Style{}
			}
			r.writeStyled(frag.Text, style)
			remaining -= w
			if remaining <= 0 {
				break
			}
		}
		r.b.WriteByte('\n')
	}

	r.writeStyled("```", r.styles.Dimmed)
	r.b.WriteByte('\n')
}

func (r *blockRenderer) list(l List, indent int) {
	pad := strings.Repeat(" ", indent)
	for i, item := range l.Items {
		marker := "• "
		if l.Ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		hang := strings.Repeat(" ", displayWidth(marker))

		lines := wrapSpans(item.Spans, r.width-indent-displayWidth(marker))
		if len(lines) == 0 && item.Nested == nil {
			continue
		}
		if len(lines) == 0 {
			lines = [][]TextSpan{nil}
		}
		for j, line := range lines {
			r.b.WriteString(pad)
			if j == 0 {
				r.writeStyled(marker, r.styles.ListMarker)
			} else {
				r.b.WriteString(hang)
			}
			r.writeSpans(line)
			r.b.WriteByte('\n')
		}
		if item.Nested != nil {
			r.list(*item.Nested, indent+2)
		}
	}
}

func (r *blockRenderer) quote(q BlockQuote) {
	inner := r.sub(r.width - 2)
	inner.blocks(q.Blocks)
	for _, line := range renderedLines(inner.b.String()) {
		r.writeStyled("│", r.styles.QuoteBorder)
		if line != "" {
			r.b.WriteByte(' ')
			r.b.WriteString(line)
		}
		r.b.WriteByte('\n')
	}
}

func (r *blockRenderer) table(t Table) {
	widths := tableColumnWidths(t, r.width)
	if len(widths) == 0 {
		return
	}
	if len(t.Headers) > 0 {
		r.tableRow(t, t.Headers, widths, true)
		r.tableSeparator(widths)
	}
	for _, row := range t.Rows {
		r.tableRow(t, row, widths, false)
	}
}

func (r *blockRenderer) tableRow(t Table, cells [][]TextSpan, widths []int, header bool) {
	r.b.WriteByte(' ')
	for i, width := range widths {
		if i > 0 {
			r.b.WriteByte(' ')
			r.writeStyled("│", r.styles.TableBorder)
			r.b.WriteByte(' ')
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
		r.b.WriteString(strings.Repeat(" ", left))
		if header {
			r.writeStyled(PlainText(cell), r.styles.Strong)
		} else {
			r.writeSpans(cell)
		}
		r.b.WriteString(strings.Repeat(" ", right))
	}
	r.b.WriteString(" \n")
}

func (r *blockRenderer) tableSeparator(widths []int) {
	for i, width := range widths {
		if i > 0 {
			r.writeStyled("┼", r.styles.TableBorder)
		}
		r.writeStyled(strings.Repeat("─", width+2), r.styles.TableBorder)
	}
	r.b.WriteByte('\n')
}

func (r *blockRenderer) rule() {
	r.writeStyled(strings.Repeat("─", r.width), r.styles.Rule)
	r.b.WriteByte('\n')
}

func (r *blockRenderer) admonition(a Admonition) {
	boxWidth := r.width
	if boxWidth < 8 {
		boxWidth = 8
	}
	interior := boxWidth - 4

	border := Style{Prefix: admonitionColor(r.pal, a.Type).Foreground()}
	titleStyle := Style{Prefix: palette.Bold + border.Prefix}
	if r.plain {
		border = Style{}
		titleStyle = Style{}
	}

	title := a.Title
	if title == "" {
		title = a.Type.DefaultTitle()
	}
	titleText := a.Type.Icon() + " " + title
	if runewidth.StringWidth(titleText) > interior {
		titleText = runewidth.Truncate(titleText, interior, "…")
	}

	r.writeStyled("╭"+strings.Repeat("─", boxWidth-2)+"╮", border)
	r.b.WriteByte('\n')

	r.writeStyled("│", border)
	r.b.WriteByte(' ')
	r.writeStyled(titleText, titleStyle)
	r.b.WriteString(strings.Repeat(" ", interior-runewidth.StringWidth(titleText)))
	r.b.WriteByte(' ')
	r.writeStyled("│", border)
	r.b.WriteByte('\n')

	if len(a.Blocks) > 0 {
		r.writeStyled("├"+strings.Repeat("─", boxWidth-2)+"┤", border)
		r.b.WriteByte('\n')

		inner := r.sub(interior)
		inner.blocks(a.Blocks)
		for _, line := range renderedLines(inner.b.String()) {
			r.writeStyled("│", border)
			r.b.WriteByte(' ')
			r.b.WriteString(line)
			if pad := interior - displayWidth(line); pad > 0 {
				r.b.WriteString(strings.Repeat(" ", pad))
			}
			r.b.WriteByte(' ')
			r.writeStyled("│", border)
			r.b.WriteByte('\n')
		}
	}

	r.writeStyled("╰"+strings.Repeat("─", boxWidth-2)+"╯", border)
	r.b.WriteByte('\n')
}

func (r *blockRenderer) image(img Image) {
	label := img.Path
	if img.Alt != "" {
		label = img.Alt + " (" + img.Path + ")"
	}
	r.writeStyled(truncateWithEllipsis("[image: "+label+"]", r.width), r.styles.Dimmed)
	r.b.WriteByte('\n')
}

// renderedLines splits finished sub-render output into lines, dropping the
// final newline.
func renderedLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

package beamer

// Document is the result of parsing a complete deck: metadata plus slides.
// A Document is built once per Parse call and never mutated afterwards.
type Document struct {
	Meta   Meta
	Slides []Slide
}

// Slide is an ordered sequence of blocks plus optional speaker notes.
type Slide struct {
	Blocks []Block
	Notes  string
}

// IsEmpty reports whether the slide has no content blocks.
func (s Slide) IsEmpty() bool {
	return len(s.Blocks) == 0
}

// Block is a structural content unit within a slide. The set of
// implementations is closed: Heading, Paragraph, Code, List, BlockQuote,
// Table, Rule, Admonition and Image.
type Block interface {
	block()
}

// Heading is a heading block with level 1-6.
type Heading struct {
	Level int
	Spans []TextSpan
}

// Paragraph is a run of styled text spans.
type Paragraph struct {
	Spans []TextSpan
}

// Code is a fenced or indented code block. An empty Language means no
// language hint was given.
type Code struct {
	Language string
	Text     string
}

// List is an ordered or unordered list.
type List struct {
	Ordered bool
	Items   []ListItem
}

// ListItem holds the item's spans and at most one nested sub-list.
type ListItem struct {
	Spans  []TextSpan
	Nested *List
}

// BlockQuote wraps nested blocks.
type BlockQuote struct {
	Blocks []Block
}

// Table holds header and body cell grids plus one alignment per column.
type Table struct {
	Headers    [][]TextSpan
	Rows       [][][]TextSpan
	Alignments []Alignment
}

// Columns returns the number of columns: the widest of the header row and
// any body row.
func (t Table) Columns() int {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// Cell returns the spans of a body cell, or nil when the indices are out of
// range. Missing cells render as empty.
func (t Table) Cell(row, col int) []TextSpan {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	cells := t.Rows[row]
	if col < 0 || col >= len(cells) {
		return nil
	}
	return cells[col]
}

// Rule is a thematic break.
type Rule struct{}

// Admonition is a styled callout with a semantic type, optional title and
// nested body blocks. An empty Title means the type's default title.
type Admonition struct {
	Type   AdmonitionType
	Title  string
	Blocks []Block
}

// Image references an image by path with alternate text.
type Image struct {
	Path string
	Alt  string
}

func (Heading) block()    {}
func (Paragraph) block()  {}
func (Code) block()       {}
func (List) block()       {}
func (BlockQuote) block() {}
func (Table) block()      {}
func (Rule) block()       {}
func (Admonition) block() {}
func (Image) block()      {}

// TextSpan is a run of text sharing one inline style.
type TextSpan struct {
	Text  string
	Style TextStyle
}

// TextStyle carries the inline style flags of a span.
type TextStyle struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Code          bool
}

// Alignment is a table column alignment.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// PlainText flattens spans into their unstyled text.
func PlainText(spans []TextSpan) string {
	switch len(spans) {
	case 0:
		return ""
	case 1:
		return spans[0].Text
	}
	total := 0
	for _, s := range spans {
		total += len(s.Text)
	}
	buf := make([]byte, 0, total)
	for _, s := range spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

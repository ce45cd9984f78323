package beamer

import (
	"errors"
	"testing"
)

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(doc.Slides) != 0 {
		t.Fatalf("expected zero slides, got %d", len(doc.Slides))
	}
}

func TestParseSingleHeading(t *testing.T) {
	doc, err := Parse("# H")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(doc.Slides) != 1 {
		t.Fatalf("expected one slide, got %d", len(doc.Slides))
	}
	blocks := doc.Slides[0].Blocks
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	h, ok := blocks[0].(Heading)
	if !ok {
		t.Fatalf("expected Heading, got %T", blocks[0])
	}
	if h.Level != 1 {
		t.Fatalf("expected level 1, got %d", h.Level)
	}
	if len(h.Spans) != 1 || h.Spans[0].Text != "H" {
		t.Fatalf("expected single span %q, got %#v", "H", h.Spans)
	}
}

func TestParseFrontmatterTheme(t *testing.T) {
	doc, err := Parse("---\ntheme: dark\n---\n# Slide")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Meta.Theme != "dark" {
		t.Fatalf("expected theme dark, got %q", doc.Meta.Theme)
	}
	if len(doc.Slides) != 1 {
		t.Fatalf("expected one slide, got %d", len(doc.Slides))
	}
	if _, ok := doc.Slides[0].Blocks[0].(Heading); !ok {
		t.Fatalf("expected heading, frontmatter leaked into body")
	}
}

func TestParseUnclosedFrontmatterFails(t *testing.T) {
	_, err := Parse("---\ntheme: dark\n# Slide")
	if !errors.Is(err, ErrUnclosedFrontmatter) {
		t.Fatalf("expected ErrUnclosedFrontmatter, got %v", err)
	}
}

func TestParseNestedList(t *testing.T) {
	doc, err := Parse("- A\n  - B")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	blocks := doc.Slides[0].Blocks
	list, ok := blocks[0].(List)
	if !ok {
		t.Fatalf("expected List, got %T", blocks[0])
	}
	if list.Ordered {
		t.Fatalf("expected unordered list")
	}
	if len(list.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(list.Items))
	}
	item := list.Items[0]
	if PlainText(item.Spans) != "A" {
		t.Fatalf("expected item A, got %q", PlainText(item.Spans))
	}
	if item.Nested == nil || len(item.Nested.Items) != 1 {
		t.Fatalf("expected one nested item, got %#v", item.Nested)
	}
	if PlainText(item.Nested.Items[0].Spans) != "B" {
		t.Fatalf("expected nested item B, got %q", PlainText(item.Nested.Items[0].Spans))
	}
}

func TestParseOrderedList(t *testing.T) {
	doc, err := Parse("1. one\n2. two")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	list, ok := doc.Slides[0].Blocks[0].(List)
	if !ok {
		t.Fatalf("expected List, got %T", doc.Slides[0].Blocks[0])
	}
	if !list.Ordered {
		t.Fatalf("expected ordered list")
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected two items, got %d", len(list.Items))
	}
}

func TestParseInlineStyles(t *testing.T) {
	doc, err := Parse("*i* **b** ~~s~~ `c`")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	p, ok := doc.Slides[0].Blocks[0].(Paragraph)
	if !ok {
		t.Fatalf("expected Paragraph, got %T", doc.Slides[0].Blocks[0])
	}

	var italic, bold, strike, code bool
	for _, span := range p.Spans {
		switch span.Text {
		case "i":
			italic = span.Style.Italic
		case "b":
			bold = span.Style.Bold
		case "s":
			strike = span.Style.Strikethrough
		case "c":
			code = span.Style.Code
		}
	}
	if !italic || !bold || !strike || !code {
		t.Fatalf("inline styles not all applied: italic=%v bold=%v strike=%v code=%v (%#v)",
			italic, bold, strike, code, p.Spans)
	}
}

func TestParseCodeBlock(t *testing.T) {
	doc, err := Parse("```go\nfmt.Println(1)\n```")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	code, ok := doc.Slides[0].Blocks[0].(Code)
	if !ok {
		t.Fatalf("expected Code, got %T", doc.Slides[0].Blocks[0])
	}
	if code.Language != "go" {
		t.Fatalf("expected language go, got %q", code.Language)
	}
	if code.Text != "fmt.Println(1)\n" {
		t.Fatalf("unexpected code text %q", code.Text)
	}
}

func TestParseCodeBlockWithoutLanguage(t *testing.T) {
	doc, err := Parse("```\nplain\n```")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	code := doc.Slides[0].Blocks[0].(Code)
	if code.Language != "" {
		t.Fatalf("expected empty language, got %q", code.Language)
	}
}

func TestParseBlockQuote(t *testing.T) {
	doc, err := Parse("> quoted text")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	quote, ok := doc.Slides[0].Blocks[0].(BlockQuote)
	if !ok {
		t.Fatalf("expected BlockQuote, got %T", doc.Slides[0].Blocks[0])
	}
	if len(quote.Blocks) != 1 {
		t.Fatalf("expected one nested block, got %d", len(quote.Blocks))
	}
	p := quote.Blocks[0].(Paragraph)
	if PlainText(p.Spans) != "quoted text" {
		t.Fatalf("unexpected quote content %q", PlainText(p.Spans))
	}
}

func TestParseTable(t *testing.T) {
	src := "| Name | Age |\n|:-----|----:|\n| Bob | 42 |"
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	table, ok := doc.Slides[0].Blocks[0].(Table)
	if !ok {
		t.Fatalf("expected Table, got %T", doc.Slides[0].Blocks[0])
	}
	if table.Columns() != 2 {
		t.Fatalf("expected 2 columns, got %d", table.Columns())
	}
	if PlainText(table.Headers[0]) != "Name" || PlainText(table.Headers[1]) != "Age" {
		t.Fatalf("unexpected headers %#v", table.Headers)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected one row, got %d", len(table.Rows))
	}
	if PlainText(table.Cell(0, 0)) != "Bob" || PlainText(table.Cell(0, 1)) != "42" {
		t.Fatalf("unexpected row %#v", table.Rows[0])
	}
	if table.Cell(5, 0) != nil || table.Cell(0, 5) != nil {
		t.Fatalf("out-of-range cell access must return nil")
	}
	if len(table.Alignments) != 2 || table.Alignments[0] != AlignLeft || table.Alignments[1] != AlignRight {
		t.Fatalf("unexpected alignments %#v", table.Alignments)
	}
}

func TestParseThematicBreak(t *testing.T) {
	doc, err := Parse("before\n\n***\n\nafter")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	blocks := doc.Slides[0].Blocks
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d (%#v)", len(blocks), blocks)
	}
	if _, ok := blocks[1].(Rule); !ok {
		t.Fatalf("expected Rule in the middle, got %T", blocks[1])
	}
}

func TestParseImage(t *testing.T) {
	doc, err := Parse("![diagram](img.png)")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	img, ok := doc.Slides[0].Blocks[0].(Image)
	if !ok {
		t.Fatalf("expected Image, got %T", doc.Slides[0].Blocks[0])
	}
	if img.Path != "img.png" || img.Alt != "diagram" {
		t.Fatalf("unexpected image %#v", img)
	}
}

func TestParseFencedAdmonition(t *testing.T) {
	doc, err := Parse(":::warning Watch out\nBody text\n:::")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	adm, ok := doc.Slides[0].Blocks[0].(Admonition)
	if !ok {
		t.Fatalf("expected Admonition, got %T", doc.Slides[0].Blocks[0])
	}
	if adm.Type != AdmonitionWarning {
		t.Fatalf("expected warning, got %v", adm.Type)
	}
	if adm.Title != "Watch out" {
		t.Fatalf("expected title %q, got %q", "Watch out", adm.Title)
	}
	if len(adm.Blocks) != 1 {
		t.Fatalf("expected one body block, got %d", len(adm.Blocks))
	}
	p := adm.Blocks[0].(Paragraph)
	if PlainText(p.Spans) != "Body text" {
		t.Fatalf("unexpected body %q", PlainText(p.Spans))
	}
}

func TestParseQuotedAdmonition(t *testing.T) {
	doc, err := Parse("> [!NOTE]\n> Hello there")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	adm, ok := doc.Slides[0].Blocks[0].(Admonition)
	if !ok {
		t.Fatalf("expected Admonition, got %T", doc.Slides[0].Blocks[0])
	}
	if adm.Type != AdmonitionNote {
		t.Fatalf("expected note, got %v", adm.Type)
	}
	if adm.Title != "" {
		t.Fatalf("expected empty title, got %q", adm.Title)
	}
	if len(adm.Blocks) != 1 {
		t.Fatalf("expected one body block, got %d", len(adm.Blocks))
	}
}

func TestParseAdmonitionAlias(t *testing.T) {
	doc, err := Parse(":::hint\nuse the source\n:::")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	adm := doc.Slides[0].Blocks[0].(Admonition)
	if adm.Type != AdmonitionTip {
		t.Fatalf("expected hint to resolve to tip, got %v", adm.Type)
	}
}

func TestParseUnknownAdmonitionDegrades(t *testing.T) {
	doc, err := Parse(":::zzz\ncontent survives\n:::")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	blocks := doc.Slides[0].Blocks
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	p, ok := blocks[0].(Paragraph)
	if !ok {
		t.Fatalf("expected Paragraph, got %T", blocks[0])
	}
	if PlainText(p.Spans) != "content survives" {
		t.Fatalf("unexpected content %q", PlainText(p.Spans))
	}
}

func TestParseAdmonitionNestedInSlide(t *testing.T) {
	src := "# Title\n\n:::tip\n- one\n- two\n:::\n\ntrailing"
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	blocks := doc.Slides[0].Blocks
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	adm := blocks[1].(Admonition)
	list, ok := adm.Blocks[0].(List)
	if !ok {
		t.Fatalf("expected nested List, got %T", adm.Blocks[0])
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected two items, got %d", len(list.Items))
	}
}

func TestParseSlideSeparatorInsideFence(t *testing.T) {
	src := "```\n---\n```\n\n---\n\nAfter"
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(doc.Slides) != 2 {
		t.Fatalf("expected two slides, got %d", len(doc.Slides))
	}
	code := doc.Slides[0].Blocks[0].(Code)
	if code.Text != "---\n" {
		t.Fatalf("expected literal --- inside fence, got %q", code.Text)
	}
}

func TestParseSpeakerNotes(t *testing.T) {
	doc, err := Parse("# T\n\nNote: hello\nNote: world")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	slide := doc.Slides[0]
	if slide.Notes != "hello\n\nworld" {
		t.Fatalf("unexpected notes %q", slide.Notes)
	}
	if len(slide.Blocks) != 1 {
		t.Fatalf("notes leaked into blocks: %#v", slide.Blocks)
	}
}

func TestParseSoftBreakBecomesSpace(t *testing.T) {
	doc, err := Parse("line one\nline two")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	p := doc.Slides[0].Blocks[0].(Paragraph)
	if PlainText(p.Spans) != "line one line two" {
		t.Fatalf("unexpected paragraph %q", PlainText(p.Spans))
	}
}

func TestParseAutoLink(t *testing.T) {
	doc, err := Parse("see <https://example.com> now")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	p := doc.Slides[0].Blocks[0].(Paragraph)
	if PlainText(p.Spans) != "see https://example.com now" {
		t.Fatalf("unexpected paragraph %q", PlainText(p.Spans))
	}
}

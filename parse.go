package beamer

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Parse converts a complete deck document into metadata and slides. The only
// failures are frontmatter ones; everything downstream is best-effort.
func Parse(src string) (*Document, error) {
	meta, body, err := ExtractMeta(src)
	if err != nil {
		return nil, err
	}
	return &Document{Meta: meta, Slides: ParseSlides(body)}, nil
}

// ParseSlides splits a document body into sections and parses each into a
// slide. Never fails.
func ParseSlides(body string) []Slide {
	sections := SplitSlides(body)
	slides := make([]Slide, 0, len(sections))
	for _, section := range sections {
		slides = append(slides, ParseSlide(section))
	}
	return slides
}

// ParseSlide parses one slide section into blocks and speaker notes.
func ParseSlide(section string) Slide {
	content, notes := extractNotes(section)
	preprocessed := preprocessAdmonitions(content)
	return Slide{Blocks: parseBlocks([]byte(preprocessed)), Notes: notes}
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))
}

// parseBlocks drives the tokenizer over one slide and assembles the block
// tree. The walk's enter/exit callbacks are the start/end event stream; an
// explicit frame stack tracks every open block scope.
func parseBlocks(source []byte) []Block {
	doc := newMarkdown().Parser().Parse(text.NewReader(source))
	p := &blockParser{source: source}
	_ = ast.Walk(doc, p.walk)
	// unterminated scopes (e.g. a missing admonition close marker) still
	// yield their accumulated content
	for len(p.stack) > 0 {
		p.closeTop()
	}
	return p.blocks
}

type frameKind uint8

const (
	frameHeading frameKind = iota
	frameParagraph
	frameCode
	frameList
	frameQuote
	frameTable
	frameAdmonition
)

// frame is one open block scope with only that scope's accumulation state.
type frame struct {
	kind frameKind

	level    int        // heading
	spans    []TextSpan // heading, paragraph
	language string     // code
	code     string     // code

	ordered    bool // list
	items      []ListItem
	itemSpans  []TextSpan
	itemNested *List

	blocks []Block // quote, admonition

	admType  AdmonitionType // admonition
	admTitle string

	headers  [][]TextSpan // table
	rows     [][][]TextSpan
	row      [][]TextSpan
	cell     []TextSpan
	aligns   []Alignment
	inHeader bool
}

// finalize converts an accumulated frame into its immutable block. Frames
// without content report ok=false and produce nothing.
func (f *frame) finalize() (Block, bool) {
	switch f.kind {
	case frameHeading:
		if len(f.spans) == 0 {
			return nil, false
		}
		return Heading{Level: f.level, Spans: f.spans}, true
	case frameParagraph:
		if len(f.spans) == 0 {
			return nil, false
		}
		return Paragraph{Spans: f.spans}, true
	case frameCode:
		return Code{Language: f.language, Text: f.code}, true
	case frameList:
		f.flushItem()
		if len(f.items) == 0 {
			return nil, false
		}
		return List{Ordered: f.ordered, Items: f.items}, true
	case frameQuote:
		return BlockQuote{Blocks: f.blocks}, true
	case frameTable:
		return Table{Headers: f.headers, Rows: f.rows, Alignments: f.aligns}, true
	case frameAdmonition:
		return Admonition{Type: f.admType, Title: f.admTitle, Blocks: f.blocks}, true
	}
	return nil, false
}

func (f *frame) flushItem() {
	if len(f.itemSpans) == 0 && f.itemNested == nil {
		return
	}
	f.items = append(f.items, ListItem{Spans: f.itemSpans, Nested: f.itemNested})
	f.itemSpans = nil
	f.itemNested = nil
}

// attachNested hangs a finished sub-list off the enclosing list's current
// item, or its last flushed item when the current one is already closed.
func (f *frame) attachNested(l List) {
	if len(f.itemSpans) > 0 || len(f.items) == 0 {
		f.itemNested = &l
		return
	}
	f.items[len(f.items)-1].Nested = &l
}

type blockParser struct {
	source []byte
	stack  []*frame
	blocks []Block
	style  TextStyle
}

func (p *blockParser) push(f *frame) {
	p.stack = append(p.stack, f)
}

func (p *blockParser) pop() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return f
}

func (p *blockParser) top() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *blockParser) topKind() (frameKind, bool) {
	if f := p.top(); f != nil {
		return f.kind, true
	}
	return 0, false
}

// closeTop finalizes the innermost frame and places the result.
func (p *blockParser) closeTop() {
	f := p.pop()
	if f == nil {
		return
	}
	block, ok := f.finalize()
	if !ok {
		return
	}
	p.place(block)
}

// place appends a finished block into the innermost scope that can hold it:
// a list frame adopts a closing sub-list, quote and admonition frames adopt
// any block, everything else lands in the slide's top-level list.
func (p *blockParser) place(block Block) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		f := p.stack[i]
		switch f.kind {
		case frameList:
			if l, isList := block.(List); isList {
				f.attachNested(l)
				return
			}
		case frameQuote, frameAdmonition:
			f.blocks = append(f.blocks, block)
			return
		}
	}
	p.blocks = append(p.blocks, block)
}

// addText appends text to the innermost frame's pending span buffer, tagged
// with the current inline style. Empty fragments are dropped.
func (p *blockParser) addText(txt string) {
	if txt == "" {
		return
	}
	f := p.top()
	if f == nil {
		return
	}
	switch f.kind {
	case frameHeading, frameParagraph:
		f.spans = append(f.spans, TextSpan{Text: txt, Style: p.style})
	case frameCode:
		f.code += txt
	case frameList:
		f.itemSpans = append(f.itemSpans, TextSpan{Text: txt, Style: p.style})
	case frameTable:
		f.cell = append(f.cell, TextSpan{Text: txt, Style: p.style})
	}
}

// addCodeSpan appends an inline code span; it always carries the code flag
// regardless of surrounding emphasis.
func (p *blockParser) addCodeSpan(txt string) {
	if txt == "" {
		return
	}
	f := p.top()
	if f == nil {
		return
	}
	span := TextSpan{Text: txt, Style: TextStyle{Code: true}}
	switch f.kind {
	case frameHeading, frameParagraph:
		f.spans = append(f.spans, span)
	case frameList:
		f.itemSpans = append(f.itemSpans, span)
	case frameTable:
		f.cell = append(f.cell, span)
	}
}

// handleMarker reacts to raw passthrough text: admonition open markers push a
// frame, close markers pop one, anything else is dropped.
func (p *blockParser) handleMarker(raw string) {
	if typ, title, ok := parseOpenMarker(raw); ok {
		p.push(&frame{kind: frameAdmonition, admType: typ, admTitle: title})
		return
	}
	if isCloseMarker(raw) {
		if kind, ok := p.topKind(); ok && kind == frameAdmonition {
			p.closeTop()
		}
	}
}

func (p *blockParser) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		if entering {
			p.push(&frame{kind: frameHeading, level: node.Level})
		} else {
			p.closeTop()
		}

	case *ast.Paragraph, *ast.TextBlock:
		// a list item's text flows straight into the item
		if kind, ok := p.topKind(); ok && kind == frameList {
			return ast.WalkContinue, nil
		}
		if entering {
			p.push(&frame{kind: frameParagraph})
		} else {
			p.closeTop()
		}

	case *ast.FencedCodeBlock:
		if entering {
			p.push(&frame{
				kind:     frameCode,
				language: string(node.Language(p.source)),
				code:     segmentsText(node.Lines(), p.source),
			})
			return ast.WalkSkipChildren, nil
		}
		p.closeTop()

	case *ast.CodeBlock:
		if entering {
			p.push(&frame{kind: frameCode, code: segmentsText(node.Lines(), p.source)})
			return ast.WalkSkipChildren, nil
		}
		p.closeTop()

	case *ast.List:
		if entering {
			p.push(&frame{kind: frameList, ordered: node.IsOrdered()})
		} else {
			p.closeTop()
		}

	case *ast.ListItem:
		if !entering {
			if f := p.top(); f != nil && f.kind == frameList {
				f.flushItem()
			}
		}

	case *ast.Blockquote:
		if entering {
			p.push(&frame{kind: frameQuote})
		} else {
			p.closeTop()
		}

	case *east.Table:
		if entering {
			p.push(&frame{kind: frameTable, aligns: convertAlignments(node.Alignments)})
		} else {
			p.closeTop()
		}

	case *east.TableHeader:
		if f := p.top(); f != nil && f.kind == frameTable {
			if entering {
				f.inHeader = true
			} else {
				if len(f.row) > 0 {
					f.headers = f.row
					f.row = nil
				}
				f.inHeader = false
			}
		}

	case *east.TableRow:
		if !entering {
			if f := p.top(); f != nil && f.kind == frameTable && len(f.row) > 0 {
				f.rows = append(f.rows, f.row)
				f.row = nil
			}
		}

	case *east.TableCell:
		if f := p.top(); f != nil && f.kind == frameTable {
			if entering {
				f.cell = nil
			} else {
				f.row = append(f.row, f.cell)
				f.cell = nil
			}
		}

	case *ast.Emphasis:
		if node.Level == 2 {
			p.style.Bold = entering
		} else {
			p.style.Italic = entering
		}

	case *east.Strikethrough:
		p.style.Strikethrough = entering

	case *ast.Text:
		if entering {
			p.addText(string(node.Segment.Value(p.source)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				p.addText(" ")
			}
		}

	case *ast.String:
		if entering {
			p.addText(string(node.Value))
		}

	case *ast.CodeSpan:
		if entering {
			p.addCodeSpan(childText(node, p.source))
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			p.addText(string(node.URL(p.source)))
		}

	case *ast.Image:
		if entering {
			p.place(Image{Path: string(node.Destination), Alt: childText(node, p.source)})
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			p.place(Rule{})
		}

	case *ast.HTMLBlock:
		if entering {
			p.handleMarker(segmentsText(node.Lines(), p.source))
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		if entering {
			p.handleMarker(segmentsText(node.Segments, p.source))
			return ast.WalkSkipChildren, nil
		}
	}

	return ast.WalkContinue, nil
}

func convertAlignments(aligns []east.Alignment) []Alignment {
	out := make([]Alignment, len(aligns))
	for i, a := range aligns {
		switch a {
		case east.AlignCenter:
			out[i] = AlignCenter
		case east.AlignRight:
			out[i] = AlignRight
		default:
			out[i] = AlignLeft
		}
	}
	return out
}

func segmentsText(segments *text.Segments, source []byte) string {
	if segments == nil {
		return ""
	}
	var buf []byte
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		buf = append(buf, seg.Value(source)...)
	}
	return string(buf)
}

func childText(n ast.Node, source []byte) string {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf = append(buf, t.Segment.Value(source)...)
		}
	}
	return string(buf)
}

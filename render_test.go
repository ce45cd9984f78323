package beamer

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func renderDoc(t *testing.T, src string, width int, opts ...RenderOption) string {
	t.Helper()
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	if err := Render(&out, doc, DefaultTheme(), width, opts...); err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func TestRenderWidthBounds(t *testing.T) {
	src := strings.Join([]string{
		"# Heading One With Several Words",
		"",
		"Paragraph with some emphasized *text* plus **bold** words and `inline code` that wraps.",
		"",
		"> Quote line one with more words to wrap around the bound",
		"",
		"- item one with a long line that should wrap cleanly at small widths",
		"  - nested item with more words and wrapping",
		"",
		":::tip Handy",
		"Callout body with enough words to wrap inside the box frame.",
		":::",
		"",
		"| Name | Role |",
		"|------|------|",
		"| Ada | first programmer of the analytical engine |",
	}, "\n")

	for width := 24; width <= 100; width += 4 {
		out := renderDoc(t, src, width)
		for i, line := range strings.Split(out, "\n") {
			if w := displayWidth(stripANSI(line)); w > width {
				t.Fatalf("width %d: line %d is %d wide: %q", width, i+1, w, stripANSI(line))
			}
		}
	}
}

func TestRenderSlideSeparator(t *testing.T) {
	out := renderDoc(t, "# One\n---\n# Two", 20)
	plain := stripANSI(out)
	if !strings.Contains(plain, strings.Repeat("═", 20)) {
		t.Fatalf("missing full-width slide separator:\n%s", plain)
	}
	if strings.Count(plain, strings.Repeat("═", 20)) != 1 {
		t.Fatalf("expected exactly one separator for two slides:\n%s", plain)
	}
}

func TestRenderHeadingGlyphs(t *testing.T) {
	out := stripANSI(renderDoc(t, "# One\n\n## Two\n\n### Three", 40))
	for _, prefix := range []string{"▉ One", "▓ Two", "▒ Three"} {
		if !strings.Contains(out, prefix) {
			t.Fatalf("missing heading glyph line %q in:\n%s", prefix, out)
		}
	}
}

func TestRenderOrderedListNumbering(t *testing.T) {
	out := stripANSI(renderDoc(t, "1. first\n2. second\n3. third", 40))
	for _, want := range []string{"1. first", "2. second", "3. third"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderBulletAndNestedIndent(t *testing.T) {
	out := stripANSI(renderDoc(t, "- top\n  - nested", 40))
	if !strings.Contains(out, "• top") {
		t.Fatalf("missing bullet in:\n%s", out)
	}
	if !strings.Contains(out, "  • nested") {
		t.Fatalf("missing indented nested bullet in:\n%s", out)
	}
}

func TestRenderBlockQuoteBorder(t *testing.T) {
	out := stripANSI(renderDoc(t, "> quoted words", 40))
	if !strings.Contains(out, "│ quoted words") {
		t.Fatalf("missing quote border in:\n%s", out)
	}
}

func TestRenderAdmonitionBox(t *testing.T) {
	out := stripANSI(renderDoc(t, ":::warning Careful\nThe body.\n:::", 40))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("expected a complete box, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[0], "╭") || !strings.HasSuffix(lines[0], "╮") {
		t.Fatalf("bad top border %q", lines[0])
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "╰") || !strings.HasSuffix(last, "╯") {
		t.Fatalf("bad bottom border %q", last)
	}
	want := displayWidth(lines[0])
	for i, line := range lines {
		if displayWidth(line) != want {
			t.Fatalf("box line %d width %d != %d: %q", i, displayWidth(line), want, line)
		}
	}
	if !strings.Contains(out, "⚠ Careful") {
		t.Fatalf("missing icon and title in:\n%s", out)
	}
	if !strings.Contains(out, "The body.") {
		t.Fatalf("missing body in:\n%s", out)
	}
}

func TestRenderAdmonitionDefaultTitle(t *testing.T) {
	out := stripANSI(renderDoc(t, "> [!NOTE]\n> hi", 40))
	if !strings.Contains(out, "Note") {
		t.Fatalf("missing default title in:\n%s", out)
	}
}

func TestRenderTableLayout(t *testing.T) {
	src := "| Name | Age |\n|:-----|----:|\n| Bob | 42 |"
	out := stripANSI(renderDoc(t, src, 40))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, separator and one row, got:\n%s", out)
	}
	if !strings.Contains(lines[0], "Name") || !strings.Contains(lines[0], "│") {
		t.Fatalf("bad header line %q", lines[0])
	}
	if !strings.Contains(lines[1], "┼") {
		t.Fatalf("bad separator line %q", lines[1])
	}
	if !strings.Contains(lines[2], "Bob") {
		t.Fatalf("bad row line %q", lines[2])
	}
	// Age is right-aligned, so 42 sits at the end of its column
	if !strings.HasSuffix(strings.TrimRight(lines[2], " "), "42") {
		t.Fatalf("expected right-aligned 42 in %q", lines[2])
	}
	for i := 1; i < len(lines); i++ {
		if displayWidth(lines[i]) != displayWidth(lines[0]) {
			t.Fatalf("ragged table: line %d is %d wide, header is %d", i, displayWidth(lines[i]), displayWidth(lines[0]))
		}
	}
}

func TestRenderCodeClipping(t *testing.T) {
	long := strings.Repeat("x", 120)
	out := stripANSI(renderDoc(t, "```\n"+long+"\n```", 40))
	for _, line := range strings.Split(out, "\n") {
		if displayWidth(line) > 40 {
			t.Fatalf("code line exceeds width: %q", line)
		}
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("expected clipped code to end in ellipsis:\n%s", out)
	}
}

func TestRenderCodeFences(t *testing.T) {
	out := stripANSI(renderDoc(t, "```go\nx := 1\n```", 40))
	if !strings.Contains(out, "```go") {
		t.Fatalf("missing opening fence in:\n%s", out)
	}
	if !strings.Contains(out, "  x := 1") {
		t.Fatalf("missing indented code line in:\n%s", out)
	}
}

func TestRenderPagingFooter(t *testing.T) {
	out := stripANSI(renderDoc(t, "# One\n---\n# Two", 40, WithPaging(true)))
	if !strings.Contains(out, "Slide 1 / 2") || !strings.Contains(out, "Slide 2 / 2") {
		t.Fatalf("missing paging footers in:\n%s", out)
	}
}

func TestRenderBoringThemeHasNoEscapes(t *testing.T) {
	doc, err := Parse("# H\n\ntext with **bold**\n\n```go\nx := 1\n```")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	if err := Render(&out, doc, BoringTheme(), 40); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out.String(), "\x1b") {
		t.Fatalf("boring output contains escape sequences: %q", out.String())
	}
}

func TestRenderImagePlaceholder(t *testing.T) {
	out := stripANSI(renderDoc(t, "![diagram](img.png)", 40))
	if !strings.Contains(out, "diagram") || !strings.Contains(out, "img.png") {
		t.Fatalf("missing image placeholder in:\n%s", out)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("sink closed")
}

func TestRenderPropagatesSinkError(t *testing.T) {
	doc, err := Parse("# H")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Render(failWriter{}, doc, DefaultTheme(), 40); err == nil {
		t.Fatalf("expected sink error")
	} else if !strings.Contains(err.Error(), "sink closed") {
		t.Fatalf("unexpected error %v", err)
	}
}

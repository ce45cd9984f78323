package beamer

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"pkt.systems/beamer/internal/palette"
)

// ColoredText is one fragment of a highlighted code line.
type ColoredText struct {
	Text  string
	Color palette.Color
}

// Highlighter colors code block content. Implementations return one slice of
// fragments per source line; fragments never contain newlines.
type Highlighter interface {
	Highlight(code, language string, fallback palette.Color) [][]ColoredText
}

type chromaHighlighter struct {
	style *chroma.Style
}

// NewChromaHighlighter returns a Highlighter backed by a chroma style. An
// unknown style name falls back to chroma's default.
func NewChromaHighlighter(styleName string) Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &chromaHighlighter{style: style}
}

func (h *chromaHighlighter) Highlight(code, language string, fallback palette.Color) [][]ColoredText {
	lexer := lexers.Get(language)
	if lexer == nil {
		return plainLines(code, fallback)
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainLines(code, fallback)
	}

	lines := [][]ColoredText{nil}
	for _, token := range iterator.Tokens() {
		color := fallback
		if entry := h.style.Get(token.Type); entry.Colour.IsSet() {
			color = palette.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
		}
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], ColoredText{Text: part, Color: color})
		}
	}
	return trimTrailingEmptyLines(lines)
}

func plainLines(code string, fallback palette.Color) [][]ColoredText {
	raw := strings.Split(code, "\n")
	lines := make([][]ColoredText, len(raw))
	for i, line := range raw {
		if line != "" {
			lines[i] = []ColoredText{{Text: line, Color: fallback}}
		}
	}
	return trimTrailingEmptyLines(lines)
}

func trimTrailingEmptyLines(lines [][]ColoredText) [][]ColoredText {
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

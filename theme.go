package beamer

import (
	"sort"
	"strings"

	"pkt.systems/beamer/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence. An empty
// prefix renders as plain text.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Text           Style
	Heading        Style
	Code           Style
	CodeInline     Style
	Dimmed         Style
	Rule           Style
	ListMarker     Style
	QuoteBorder    Style
	TableBorder    Style
	Emphasis       Style
	Strong         Style
	EmphasisStrong Style
	Strikethrough  Style
	Link           Style
}

// Theme provides named styles for slide rendering. Palette exposes the raw
// colors for layers that build their own styling, such as the rich line
// renderer and syntax highlighting fallbacks.
type Theme interface {
	Name() string
	Styles() Styles
	Palette() palette.Palette
}

type theme struct {
	name   string
	styles Styles
	pal    palette.Palette
}

func (t theme) Name() string             { return t.name }
func (t theme) Styles() Styles           { return t.styles }
func (t theme) Palette() palette.Palette { return t.pal }

// NewTheme returns a Theme from a palette definition.
func NewTheme(name string, p palette.Palette) Theme {
	return theme{name: name, styles: stylesFromPalette(p), pal: p}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	heading := p.Heading.Foreground()
	if p.HeadingBold {
		heading = palette.Bold + heading
	}
	return Styles{
		Text:           style(p.Body.Foreground()),
		Heading:        Style{Prefix: heading},
		Code:           style(p.Code.Foreground()),
		CodeInline:     style(p.Code.Foreground()),
		Dimmed:         style(p.Dimmed.Foreground()),
		Rule:           style(p.Rule.Foreground()),
		ListMarker:     style(p.ListMarker.Foreground()),
		QuoteBorder:    style(p.QuoteBorder.Foreground()),
		TableBorder:    style(p.TableBorder.Foreground()),
		Emphasis:       style(palette.Italic, p.Emphasis.Foreground()),
		Strong:         style(palette.Bold, p.Strong.Foreground()),
		EmphasisStrong: style(palette.Bold, palette.Italic, p.Strong.Foreground()),
		Strikethrough:  style(palette.Strikethrough, p.Dimmed.Foreground()),
		Link:           style(palette.Underline, p.Link.Foreground()),
	}
}

// admonitionColor maps a callout type to its theme category color.
func admonitionColor(p palette.Palette, typ AdmonitionType) palette.Color {
	switch typ {
	case AdmonitionTip, AdmonitionImportant:
		return p.Tip
	case AdmonitionWarning, AdmonitionCaution:
		return p.Warning
	case AdmonitionDanger, AdmonitionError, AdmonitionBug, AdmonitionFailure:
		return p.Danger
	case AdmonitionInfo, AdmonitionQuestion, AdmonitionQuote, AdmonitionTodo:
		return p.Info
	case AdmonitionSuccess, AdmonitionExample:
		return p.Success
	default:
		return p.Note
	}
}

var builtinThemes = map[string]Theme{
	"default":          NewTheme("default", palette.PaletteDefault),
	"dark":             NewTheme("dark", palette.PaletteDark),
	"light":            NewTheme("light", palette.PaletteLight),
	"dracula":          NewTheme("dracula", palette.PaletteDracula),
	"gruvbox":          NewTheme("gruvbox", palette.PaletteGruvbox),
	"nord":             NewTheme("nord", palette.PaletteNord),
	"solarized-dark":   NewTheme("solarized-dark", palette.PaletteSolarizedDark),
	"solarized-light":  NewTheme("solarized-light", palette.PaletteSolarizedLight),
	"catppuccin-mocha": NewTheme("catppuccin-mocha", palette.PaletteCatppuccinMocha),
	"tokyo-night":      NewTheme("tokyo-night", palette.PaletteTokyoNight),
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme with no styling at all, for plain output.
func BoringTheme() Theme {
	return theme{name: "boring"}
}

package beamer

import (
	"sort"
	"testing"

	"pkt.systems/beamer/internal/palette"
)

func TestThemeByName(t *testing.T) {
	for _, name := range []string{
		"default", "dark", "light", "dracula", "gruvbox", "nord",
		"solarized-dark", "solarized-light", "catppuccin-mocha", "tokyo-night",
	} {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("unexpected theme resolution")
	}
}

func TestThemeByNameEmptyAndNormalized(t *testing.T) {
	theme, ok := ThemeByName("")
	if !ok || theme.Name() != "default" {
		t.Fatalf("empty name must resolve to default, got %v %v", theme, ok)
	}
	if _, ok := ThemeByName("  NORD "); !ok {
		t.Fatalf("lookup must trim and lowercase")
	}
}

func TestAvailableThemesSorted(t *testing.T) {
	names := AvailableThemes()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("themes not sorted: %v", names)
	}
	if len(names) != len(builtinThemes) {
		t.Fatalf("expected %d themes, got %d", len(builtinThemes), len(names))
	}
}

func TestBoringThemeIsUnstyled(t *testing.T) {
	if styles := BoringTheme().Styles(); styles != (Styles{}) {
		t.Fatalf("boring theme must carry no styles: %#v", styles)
	}
}

func TestStylesFromPaletteHeadingBold(t *testing.T) {
	p := palette.PaletteDefault
	styles := stylesFromPalette(p)
	if styles.Heading.Prefix[:len(palette.Bold)] != palette.Bold {
		t.Fatalf("heading must be bold for this palette: %q", styles.Heading.Prefix)
	}
	p.HeadingBold = false
	styles = stylesFromPalette(p)
	if styles.Heading.Prefix == "" || styles.Heading.Prefix[:len(palette.Bold)] == palette.Bold {
		t.Fatalf("heading bold flag ignored: %q", styles.Heading.Prefix)
	}
}

func TestAdmonitionColorCategories(t *testing.T) {
	p := DefaultTheme().Palette()
	cases := []struct {
		typ  AdmonitionType
		want palette.Color
	}{
		{AdmonitionNote, p.Note},
		{AdmonitionAbstract, p.Note},
		{AdmonitionTip, p.Tip},
		{AdmonitionImportant, p.Tip},
		{AdmonitionWarning, p.Warning},
		{AdmonitionCaution, p.Warning},
		{AdmonitionDanger, p.Danger},
		{AdmonitionError, p.Danger},
		{AdmonitionBug, p.Danger},
		{AdmonitionFailure, p.Danger},
		{AdmonitionInfo, p.Info},
		{AdmonitionQuestion, p.Info},
		{AdmonitionQuote, p.Info},
		{AdmonitionTodo, p.Info},
		{AdmonitionSuccess, p.Success},
		{AdmonitionExample, p.Success},
	}
	for _, tc := range cases {
		if got := admonitionColor(p, tc.typ); got != tc.want {
			t.Fatalf("%v: got %v want %v", tc.typ, got, tc.want)
		}
	}
}

func TestPaletteColorSequences(t *testing.T) {
	c := palette.RGB(0x12, 0x34, 0x56)
	if c.Hex() != "#123456" {
		t.Fatalf("unexpected hex %q", c.Hex())
	}
	if c.Foreground() != "\x1b[38;2;18;52;86m" {
		t.Fatalf("unexpected sequence %q", c.Foreground())
	}
}

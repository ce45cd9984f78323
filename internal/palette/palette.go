// Package palette holds the color definitions for the built-in themes. Colors
// are plain 24-bit RGB values; rendering layers convert them to ANSI
// sequences or hex strings as needed.
package palette

import "fmt"

// SGR attribute prefixes shared by all palettes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Dim           = "\x1b[2m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Strikethrough = "\x1b[9m"
)

// Color is a 24-bit foreground color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Foreground returns the ANSI truecolor foreground sequence.
func (c Color) Foreground() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Hex returns the "#rrggbb" form used by style libraries.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette names the colors a theme assigns to each semantic role.
type Palette struct {
	Heading     Color
	Body        Color
	Code        Color
	Dimmed      Color
	Rule        Color
	ListMarker  Color
	QuoteBorder Color
	TableBorder Color
	Emphasis    Color
	Strong      Color
	Link        Color

	// callout category colors
	Note    Color
	Tip     Color
	Warning Color
	Danger  Color
	Info    Color
	Success Color

	HeadingBold bool
	CodeStyle   string // chroma style name for syntax highlighting
}

var PaletteDefault = Palette{
	Heading:     RGB(0x61, 0xaf, 0xef),
	Body:        RGB(0xab, 0xb2, 0xbf),
	Code:        RGB(0x98, 0xc3, 0x79),
	Dimmed:      RGB(0x5c, 0x63, 0x70),
	Rule:        RGB(0x5c, 0x63, 0x70),
	ListMarker:  RGB(0xc6, 0x78, 0xdd),
	QuoteBorder: RGB(0x56, 0xb6, 0xc2),
	TableBorder: RGB(0x5c, 0x63, 0x70),
	Emphasis:    RGB(0xe5, 0xc0, 0x7b),
	Strong:      RGB(0xe0, 0x6c, 0x75),
	Link:        RGB(0x56, 0xb6, 0xc2),
	Note:        RGB(0x61, 0xaf, 0xef),
	Tip:         RGB(0x98, 0xc3, 0x79),
	Warning:     RGB(0xe5, 0xc0, 0x7b),
	Danger:      RGB(0xe0, 0x6c, 0x75),
	Info:        RGB(0x56, 0xb6, 0xc2),
	Success:     RGB(0x98, 0xc3, 0x79),
	HeadingBold: true,
	CodeStyle:   "onedark",
}

var PaletteDark = Palette{
	Heading:     RGB(0xff, 0xff, 0xff),
	Body:        RGB(0xd0, 0xd0, 0xd0),
	Code:        RGB(0xa8, 0xcc, 0x8c),
	Dimmed:      RGB(0x6c, 0x6c, 0x6c),
	Rule:        RGB(0x4e, 0x4e, 0x4e),
	ListMarker:  RGB(0xd7, 0xaf, 0x87),
	QuoteBorder: RGB(0x87, 0xaf, 0xd7),
	TableBorder: RGB(0x6c, 0x6c, 0x6c),
	Emphasis:    RGB(0xd7, 0xd7, 0x87),
	Strong:      RGB(0xff, 0x87, 0x87),
	Link:        RGB(0x87, 0xd7, 0xff),
	Note:        RGB(0x87, 0xaf, 0xff),
	Tip:         RGB(0xa8, 0xcc, 0x8c),
	Warning:     RGB(0xd7, 0xaf, 0x5f),
	Danger:      RGB(0xff, 0x5f, 0x5f),
	Info:        RGB(0x5f, 0xd7, 0xd7),
	Success:     RGB(0x5f, 0xd7, 0x87),
	HeadingBold: true,
	CodeStyle:   "monokai",
}

var PaletteLight = Palette{
	Heading:     RGB(0x00, 0x5f, 0x87),
	Body:        RGB(0x26, 0x26, 0x26),
	Code:        RGB(0x00, 0x87, 0x00),
	Dimmed:      RGB(0x8a, 0x8a, 0x8a),
	Rule:        RGB(0xb2, 0xb2, 0xb2),
	ListMarker:  RGB(0x87, 0x00, 0xaf),
	QuoteBorder: RGB(0x00, 0x87, 0xaf),
	TableBorder: RGB(0x94, 0x94, 0x94),
	Emphasis:    RGB(0xaf, 0x87, 0x00),
	Strong:      RGB(0xd7, 0x00, 0x00),
	Link:        RGB(0x00, 0x5f, 0xd7),
	Note:        RGB(0x00, 0x5f, 0xd7),
	Tip:         RGB(0x00, 0x87, 0x00),
	Warning:     RGB(0xaf, 0x87, 0x00),
	Danger:      RGB(0xd7, 0x00, 0x00),
	Info:        RGB(0x00, 0x87, 0xaf),
	Success:     RGB(0x00, 0xaf, 0x5f),
	HeadingBold: true,
	CodeStyle:   "github",
}

var PaletteDracula = Palette{
	Heading:     RGB(0xbd, 0x93, 0xf9),
	Body:        RGB(0xf8, 0xf8, 0xf2),
	Code:        RGB(0x50, 0xfa, 0x7b),
	Dimmed:      RGB(0x62, 0x72, 0xa4),
	Rule:        RGB(0x62, 0x72, 0xa4),
	ListMarker:  RGB(0xff, 0x79, 0xc6),
	QuoteBorder: RGB(0x8b, 0xe9, 0xfd),
	TableBorder: RGB(0x62, 0x72, 0xa4),
	Emphasis:    RGB(0xf1, 0xfa, 0x8c),
	Strong:      RGB(0xff, 0x55, 0x55),
	Link:        RGB(0x8b, 0xe9, 0xfd),
	Note:        RGB(0xbd, 0x93, 0xf9),
	Tip:         RGB(0x50, 0xfa, 0x7b),
	Warning:     RGB(0xf1, 0xfa, 0x8c),
	Danger:      RGB(0xff, 0x55, 0x55),
	Info:        RGB(0x8b, 0xe9, 0xfd),
	Success:     RGB(0x50, 0xfa, 0x7b),
	HeadingBold: true,
	CodeStyle:   "dracula",
}

var PaletteGruvbox = Palette{
	Heading:     RGB(0xfa, 0xbd, 0x2f),
	Body:        RGB(0xeb, 0xdb, 0xb2),
	Code:        RGB(0xb8, 0xbb, 0x26),
	Dimmed:      RGB(0x92, 0x83, 0x74),
	Rule:        RGB(0x66, 0x5c, 0x54),
	ListMarker:  RGB(0xd3, 0x86, 0x9b),
	QuoteBorder: RGB(0x83, 0xa5, 0x98),
	TableBorder: RGB(0x92, 0x83, 0x74),
	Emphasis:    RGB(0xfa, 0xbd, 0x2f),
	Strong:      RGB(0xfb, 0x49, 0x34),
	Link:        RGB(0x83, 0xa5, 0x98),
	Note:        RGB(0x83, 0xa5, 0x98),
	Tip:         RGB(0xb8, 0xbb, 0x26),
	Warning:     RGB(0xfa, 0xbd, 0x2f),
	Danger:      RGB(0xfb, 0x49, 0x34),
	Info:        RGB(0x8e, 0xc0, 0x7c),
	Success:     RGB(0xb8, 0xbb, 0x26),
	HeadingBold: true,
	CodeStyle:   "gruvbox",
}

var PaletteNord = Palette{
	Heading:     RGB(0x88, 0xc0, 0xd0),
	Body:        RGB(0xd8, 0xde, 0xe9),
	Code:        RGB(0xa3, 0xbe, 0x8c),
	Dimmed:      RGB(0x4c, 0x56, 0x6a),
	Rule:        RGB(0x4c, 0x56, 0x6a),
	ListMarker:  RGB(0xb4, 0x8e, 0xad),
	QuoteBorder: RGB(0x81, 0xa1, 0xc1),
	TableBorder: RGB(0x4c, 0x56, 0x6a),
	Emphasis:    RGB(0xeb, 0xcb, 0x8b),
	Strong:      RGB(0xbf, 0x61, 0x6a),
	Link:        RGB(0x88, 0xc0, 0xd0),
	Note:        RGB(0x81, 0xa1, 0xc1),
	Tip:         RGB(0xa3, 0xbe, 0x8c),
	Warning:     RGB(0xeb, 0xcb, 0x8b),
	Danger:      RGB(0xbf, 0x61, 0x6a),
	Info:        RGB(0x88, 0xc0, 0xd0),
	Success:     RGB(0xa3, 0xbe, 0x8c),
	HeadingBold: true,
	CodeStyle:   "nord",
}

var PaletteSolarizedDark = Palette{
	Heading:     RGB(0x26, 0x8b, 0xd2),
	Body:        RGB(0x83, 0x94, 0x96),
	Code:        RGB(0x85, 0x99, 0x00),
	Dimmed:      RGB(0x58, 0x6e, 0x75),
	Rule:        RGB(0x58, 0x6e, 0x75),
	ListMarker:  RGB(0xd3, 0x36, 0x82),
	QuoteBorder: RGB(0x2a, 0xa1, 0x98),
	TableBorder: RGB(0x58, 0x6e, 0x75),
	Emphasis:    RGB(0xb5, 0x89, 0x00),
	Strong:      RGB(0xdc, 0x32, 0x2f),
	Link:        RGB(0x2a, 0xa1, 0x98),
	Note:        RGB(0x26, 0x8b, 0xd2),
	Tip:         RGB(0x85, 0x99, 0x00),
	Warning:     RGB(0xb5, 0x89, 0x00),
	Danger:      RGB(0xdc, 0x32, 0x2f),
	Info:        RGB(0x2a, 0xa1, 0x98),
	Success:     RGB(0x85, 0x99, 0x00),
	HeadingBold: true,
	CodeStyle:   "solarized-dark",
}

var PaletteSolarizedLight = Palette{
	Heading:     RGB(0x26, 0x8b, 0xd2),
	Body:        RGB(0x65, 0x7b, 0x83),
	Code:        RGB(0x85, 0x99, 0x00),
	Dimmed:      RGB(0x93, 0xa1, 0xa1),
	Rule:        RGB(0x93, 0xa1, 0xa1),
	ListMarker:  RGB(0xd3, 0x36, 0x82),
	QuoteBorder: RGB(0x2a, 0xa1, 0x98),
	TableBorder: RGB(0x93, 0xa1, 0xa1),
	Emphasis:    RGB(0xb5, 0x89, 0x00),
	Strong:      RGB(0xdc, 0x32, 0x2f),
	Link:        RGB(0x2a, 0xa1, 0x98),
	Note:        RGB(0x26, 0x8b, 0xd2),
	Tip:         RGB(0x85, 0x99, 0x00),
	Warning:     RGB(0xb5, 0x89, 0x00),
	Danger:      RGB(0xdc, 0x32, 0x2f),
	Info:        RGB(0x2a, 0xa1, 0x98),
	Success:     RGB(0x85, 0x99, 0x00),
	HeadingBold: true,
	CodeStyle:   "solarized-light",
}

var PaletteCatppuccinMocha = Palette{
	Heading:     RGB(0xcb, 0xa6, 0xf7),
	Body:        RGB(0xcd, 0xd6, 0xf4),
	Code:        RGB(0xa6, 0xe3, 0xa1),
	Dimmed:      RGB(0x6c, 0x70, 0x86),
	Rule:        RGB(0x58, 0x5b, 0x70),
	ListMarker:  RGB(0xf5, 0xc2, 0xe7),
	QuoteBorder: RGB(0x89, 0xdc, 0xeb),
	TableBorder: RGB(0x6c, 0x70, 0x86),
	Emphasis:    RGB(0xf9, 0xe2, 0xaf),
	Strong:      RGB(0xf3, 0x8b, 0xa8),
	Link:        RGB(0x89, 0xb4, 0xfa),
	Note:        RGB(0x89, 0xb4, 0xfa),
	Tip:         RGB(0xa6, 0xe3, 0xa1),
	Warning:     RGB(0xf9, 0xe2, 0xaf),
	Danger:      RGB(0xf3, 0x8b, 0xa8),
	Info:        RGB(0x94, 0xe2, 0xd5),
	Success:     RGB(0xa6, 0xe3, 0xa1),
	HeadingBold: true,
	CodeStyle:   "catppuccin-mocha",
}

var PaletteTokyoNight = Palette{
	Heading:     RGB(0x7a, 0xa2, 0xf7),
	Body:        RGB(0xc0, 0xca, 0xf5),
	Code:        RGB(0x9e, 0xce, 0x6a),
	Dimmed:      RGB(0x56, 0x5f, 0x89),
	Rule:        RGB(0x41, 0x48, 0x68),
	ListMarker:  RGB(0xbb, 0x9a, 0xf7),
	QuoteBorder: RGB(0x7d, 0xcf, 0xff),
	TableBorder: RGB(0x56, 0x5f, 0x89),
	Emphasis:    RGB(0xe0, 0xaf, 0x68),
	Strong:      RGB(0xf7, 0x76, 0x8e),
	Link:        RGB(0x7d, 0xcf, 0xff),
	Note:        RGB(0x7a, 0xa2, 0xf7),
	Tip:         RGB(0x9e, 0xce, 0x6a),
	Warning:     RGB(0xe0, 0xaf, 0x68),
	Danger:      RGB(0xf7, 0x76, 0x8e),
	Info:        RGB(0x7d, 0xcf, 0xff),
	Success:     RGB(0x9e, 0xce, 0x6a),
	HeadingBold: true,
	CodeStyle:   "tokyonight-night",
}

package beamer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Meta is the deck metadata from the optional frontmatter header. Fields
// missing from the header keep their defaults.
type Meta struct {
	Theme  string `yaml:"theme" toml:"theme"`
	Author string `yaml:"author" toml:"author"`
	Date   string `yaml:"date" toml:"date"`
	Paging string `yaml:"paging" toml:"paging"`
}

// DefaultMeta returns metadata with environment- and system-derived defaults:
// theme from BEAMER_THEME, author from USER/USERNAME, date is today, and a
// "Slide %d / %d" paging format.
func DefaultMeta() Meta {
	return Meta{
		Theme:  defaultThemeName(),
		Author: defaultAuthor(),
		Date:   time.Now().Format("2006-01-02"),
		Paging: "Slide %d / %d",
	}
}

func defaultThemeName() string {
	if name := os.Getenv("BEAMER_THEME"); name != "" {
		return name
	}
	return "default"
}

func defaultAuthor() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	if user := os.Getenv("USERNAME"); user != "" {
		return user
	}
	return "Unknown"
}

// ExtractMeta splits an optional leading frontmatter block from the document
// and decodes it. A "---" delimiter selects YAML, "+++" selects TOML; with
// neither present the defaults and the unchanged document are returned. A
// missing closing delimiter or an undecodable body aborts the parse.
func ExtractMeta(src string) (Meta, string, error) {
	trimmed := strings.TrimLeft(src, " \t\r\n")
	switch {
	case strings.HasPrefix(trimmed, "---"):
		return extractFrontmatter(trimmed[3:], "---", decodeYAMLMeta)
	case strings.HasPrefix(trimmed, "+++"):
		return extractFrontmatter(trimmed[3:], "+++", decodeTOMLMeta)
	default:
		return DefaultMeta(), src, nil
	}
}

func extractFrontmatter(rest, delim string, decode func(string, *Meta) error) (Meta, string, error) {
	header, body, found := splitOnDelimiterLine(rest, delim)
	if !found {
		return Meta{}, "", fmt.Errorf("%w (missing closing %s)", ErrUnclosedFrontmatter, delim)
	}
	meta := DefaultMeta()
	if strings.TrimSpace(header) != "" {
		if err := decode(header, &meta); err != nil {
			return Meta{}, "", fmt.Errorf("%w: %v", ErrBadFrontmatter, err)
		}
	}
	return meta, body, nil
}

// splitOnDelimiterLine finds the first line whose trimmed content equals
// delim and splits around it.
func splitOnDelimiterLine(src, delim string) (before, after string, found bool) {
	offset := 0
	for offset <= len(src) {
		lineEnd := strings.IndexByte(src[offset:], '\n')
		var line string
		next := len(src)
		if lineEnd >= 0 {
			line = src[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		} else {
			line = src[offset:]
		}
		if strings.TrimSpace(line) == delim {
			return src[:offset], src[next:], true
		}
		if lineEnd < 0 {
			break
		}
		offset = next
	}
	return "", "", false
}

func decodeYAMLMeta(header string, meta *Meta) error {
	return yaml.Unmarshal([]byte(header), meta)
}

func decodeTOMLMeta(header string, meta *Meta) error {
	_, err := toml.Decode(header, meta)
	return err
}

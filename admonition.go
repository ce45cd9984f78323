package beamer

import (
	"fmt"
	"strings"
)

// AdmonitionType is the semantic category of a callout block.
type AdmonitionType uint8

const (
	AdmonitionNote AdmonitionType = iota
	AdmonitionTip
	AdmonitionImportant
	AdmonitionWarning
	AdmonitionCaution
	AdmonitionDanger
	AdmonitionError
	AdmonitionInfo
	AdmonitionSuccess
	AdmonitionQuestion
	AdmonitionExample
	AdmonitionQuote
	AdmonitionAbstract
	AdmonitionTodo
	AdmonitionBug
	AdmonitionFailure
)

var admonitionNames = map[AdmonitionType]string{
	AdmonitionNote:      "note",
	AdmonitionTip:       "tip",
	AdmonitionImportant: "important",
	AdmonitionWarning:   "warning",
	AdmonitionCaution:   "caution",
	AdmonitionDanger:    "danger",
	AdmonitionError:     "error",
	AdmonitionInfo:      "info",
	AdmonitionSuccess:   "success",
	AdmonitionQuestion:  "question",
	AdmonitionExample:   "example",
	AdmonitionQuote:     "quote",
	AdmonitionAbstract:  "abstract",
	AdmonitionTodo:      "todo",
	AdmonitionBug:       "bug",
	AdmonitionFailure:   "failure",
}

func (t AdmonitionType) String() string {
	if name, ok := admonitionNames[t]; ok {
		return name
	}
	return "note"
}

// DefaultTitle returns the title used when the callout carries none.
func (t AdmonitionType) DefaultTitle() string {
	name := t.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Icon returns the glyph shown in the callout's title line.
func (t AdmonitionType) Icon() string {
	switch t {
	case AdmonitionNote, AdmonitionInfo:
		return "ⓘ"
	case AdmonitionTip:
		return "\U0001f4a1"
	case AdmonitionImportant:
		return "❗"
	case AdmonitionWarning, AdmonitionCaution:
		return "⚠"
	case AdmonitionDanger:
		return "⛔"
	case AdmonitionError, AdmonitionFailure:
		return "✗"
	case AdmonitionSuccess:
		return "✓"
	case AdmonitionQuestion:
		return "?"
	case AdmonitionExample:
		return "▸"
	case AdmonitionQuote:
		return "“"
	case AdmonitionAbstract:
		return "§"
	case AdmonitionTodo:
		return "☐"
	case AdmonitionBug:
		return "\U0001f41b"
	default:
		return "ⓘ"
	}
}

// ParseAdmonitionType resolves a type name case-insensitively, honoring the
// aliases hint->tip and caution/attention->warning.
func ParseAdmonitionType(name string) (AdmonitionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "note":
		return AdmonitionNote, nil
	case "tip", "hint":
		return AdmonitionTip, nil
	case "important":
		return AdmonitionImportant, nil
	case "warning", "caution", "attention":
		return AdmonitionWarning, nil
	case "danger":
		return AdmonitionDanger, nil
	case "error":
		return AdmonitionError, nil
	case "info":
		return AdmonitionInfo, nil
	case "success":
		return AdmonitionSuccess, nil
	case "question":
		return AdmonitionQuestion, nil
	case "example":
		return AdmonitionExample, nil
	case "quote":
		return AdmonitionQuote, nil
	case "abstract":
		return AdmonitionAbstract, nil
	case "todo":
		return AdmonitionTodo, nil
	case "bug":
		return AdmonitionBug, nil
	case "failure":
		return AdmonitionFailure, nil
	default:
		return AdmonitionNote, fmt.Errorf("%w: %q", ErrUnknownAdmonition, name)
	}
}

// preprocessAdmonitions rewrites both callout notations into blank-line
// framed <admonition> marker lines. The tokenizer surfaces the markers as raw
// HTML-block passthrough events and parses the framed body as ordinary
// markdown. Lines outside a callout pass through unchanged.
func preprocessAdmonitions(section string) string {
	var out strings.Builder
	lines := strings.Split(section, "\n")

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if name, title, ok := parseFenceOpener(trimmed); ok {
			writeOpenMarker(&out, name, title)
			i++
			for i < len(lines) {
				if strings.TrimSpace(lines[i]) == ":::" {
					i++
					break
				}
				out.WriteString(lines[i])
				out.WriteByte('\n')
				i++
			}
			writeCloseMarker(&out)
			continue
		}

		if name, title, ok := parseQuoteOpener(trimmed); ok {
			writeOpenMarker(&out, name, title)
			i++
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if !strings.HasPrefix(next, ">") {
					break
				}
				content := strings.TrimSpace(strings.TrimPrefix(next, ">"))
				if content != "" {
					out.WriteString(content)
					out.WriteByte('\n')
				}
				i++
			}
			writeCloseMarker(&out)
			continue
		}

		out.WriteString(line)
		out.WriteByte('\n')
		i++
	}

	return out.String()
}

// parseFenceOpener recognizes ":::type optional title".
func parseFenceOpener(trimmed string) (name, title string, ok bool) {
	if !strings.HasPrefix(trimmed, ":::") {
		return "", "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, ":::"))
	if rest == "" {
		return "", "", false
	}
	name, title, _ = strings.Cut(rest, " ")
	return strings.ToLower(name), strings.TrimSpace(title), true
}

// parseQuoteOpener recognizes "> [!TYPE] optional title".
func parseQuoteOpener(trimmed string) (name, title string, ok bool) {
	if !strings.HasPrefix(trimmed, ">") {
		return "", "", false
	}
	content := strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
	if !strings.HasPrefix(content, "[!") {
		return "", "", false
	}
	rest := strings.TrimPrefix(content, "[!")
	closing := strings.IndexByte(rest, ']')
	if closing < 0 {
		return "", "", false
	}
	return strings.ToLower(rest[:closing]), strings.TrimSpace(rest[closing+1:]), true
}

func writeOpenMarker(out *strings.Builder, name, title string) {
	out.WriteByte('\n')
	out.WriteString(`<admonition type="`)
	out.WriteString(name)
	out.WriteByte('"')
	if title != "" {
		out.WriteString(` title="`)
		out.WriteString(strings.ReplaceAll(title, `"`, "&quot;"))
		out.WriteByte('"')
	}
	out.WriteString(">\n\n")
}

func writeCloseMarker(out *strings.Builder) {
	out.WriteString("\n</admonition>\n\n")
}

// parseOpenMarker extracts the type and optional title from a raw
// <admonition> marker surfaced by the tokenizer. A marker with an unknown
// type is reported as not-a-marker so the parser ignores it.
func parseOpenMarker(raw string) (AdmonitionType, string, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "<admonition") {
		return 0, "", false
	}
	name, ok := markerAttr(trimmed, `type="`)
	if !ok {
		return 0, "", false
	}
	typ, err := ParseAdmonitionType(name)
	if err != nil {
		return 0, "", false
	}
	title, _ := markerAttr(trimmed, `title="`)
	return typ, strings.ReplaceAll(title, "&quot;", `"`), true
}

func isCloseMarker(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "</admonition>")
}

func markerAttr(marker, prefix string) (string, bool) {
	start := strings.Index(marker, prefix)
	if start < 0 {
		return "", false
	}
	rest := marker[start+len(prefix):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

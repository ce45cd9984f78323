// Package beamer parses markdown slide decks and renders them to terminals.
//
// A deck is one markdown document: optional frontmatter (YAML between ---
// delimiters or TOML between +++), then slides separated by standalone ---
// lines. Each slide parses into typed blocks (headings, paragraphs, code,
// lists, quotes, tables, rules, admonitions, images) which render either as
// flat ANSI text bounded to a target width, or as structured styled lines for
// an interactive presenter.
//
// Core properties:
//   - Parsing is total past the frontmatter; malformed markdown degrades to a
//     best-effort block tree instead of failing
//   - Every rendered line honors the caller's width, with word wrapping,
//     proportional table column sizing and box-drawn callouts
//   - Theme-driven styling via ANSI prefixes; syntax highlighting is a
//     caller-injected collaborator
//
// Example:
//
//	doc, err := beamer.Parse("# Hello\n\nSlides in, ANSI out.\n")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = beamer.Render(os.Stdout, doc, beamer.DefaultTheme(), 80)
//	if err != nil {
//		log.Fatal(err)
//	}
package beamer

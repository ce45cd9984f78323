package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"pkt.systems/beamer"
	"pkt.systems/beamer/internal/present"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/beamer")
}

func main() {
	var (
		themeName    string
		widthFlag    int
		outPath      string
		boring       bool
		paging       bool
		presentMode  bool
		validateMode bool
		strict       bool
		listThemes   bool
		showVersion  bool
	)

	flags := pflag.NewFlagSet("beamer", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", "", "Theme name (overrides frontmatter)")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&paging, "paging", false, "Append the paging footer to each slide")
	flags.BoolVarP(&presentMode, "present", "p", false, "Present interactively in the terminal")
	flags.BoolVar(&validateMode, "validate", false, "Validate the deck and report diagnostics")
	flags.BoolVar(&strict, "strict", false, "Treat validation warnings as failures")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVarP(&showVersion, "version", "v", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, versionLine())
		fmt.Fprintf(os.Stderr, "Usage: beamer [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, the deck is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, versionLine())
		return
	}

	if listThemes {
		printThemes()
		return
	}

	src, err := readInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}

	if validateMode {
		result := beamer.ValidateDocument(src)
		for _, msg := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
		}
		if !result.Valid(strict) {
			os.Exit(1)
		}
		return
	}

	doc, err := beamer.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		os.Exit(1)
	}

	theme, err := resolveTheme(themeName, doc.Meta.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		printThemes()
		os.Exit(2)
	}
	highlighter := beamer.NewChromaHighlighter(theme.Palette().CodeStyle)

	if presentMode {
		if err := present.Run(doc, theme, highlighter); err != nil {
			fmt.Fprintf(os.Stderr, "present: %v\n", err)
			os.Exit(1)
		}
		return
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	opts := []beamer.RenderOption{
		beamer.WithHighlighter(highlighter),
		beamer.WithPaging(paging),
	}
	if boring {
		theme = beamer.BoringTheme()
		opts = opts[1:] // plain code text, no highlighting
	}
	if err := beamer.Render(writer, doc, theme, resolveWidth(widthFlag), opts...); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

// resolveTheme applies the flag > frontmatter > default precedence. An
// unknown flag value is an error; an unknown frontmatter value falls back to
// the default with a warning.
func resolveTheme(flagName, metaName string) (beamer.Theme, error) {
	if flagName != "" {
		theme, ok := beamer.ThemeByName(flagName)
		if !ok {
			return nil, fmt.Errorf("unknown theme %q", flagName)
		}
		return theme, nil
	}
	theme, ok := beamer.ThemeByName(metaName)
	if !ok {
		fmt.Fprintf(os.Stderr, "warning: unknown theme %q in frontmatter, using default\n", metaName)
		return beamer.DefaultTheme(), nil
	}
	return theme, nil
}

func versionLine() string {
	return strings.TrimSpace(fmt.Sprintln(version.Module(), version.Current()))
}

func printThemes() {
	for _, name := range beamer.AvailableThemes() {
		fmt.Fprintln(os.Stdout, name)
	}
}

// readInputs concatenates the given deck files, separated so each file starts
// on its own slide. Without arguments the deck is read from stdin.
func readInputs(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	var parts []string
	for _, arg := range args {
		data, err := os.ReadFile(normalizePath(arg))
		if err != nil {
			return "", err
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n---\n"), nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconvAtoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func strconvAtoi(value string) (int, error) {
	var n int
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("invalid int")
		}
		n = n*10 + int(value[i]-'0')
	}
	return n, nil
}

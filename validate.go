package beamer

import (
	"fmt"
	"unicode/utf8"
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// CheckInput returns an error if the input is not valid UTF-8 or appears binary.
func CheckInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	if b == 0x7F {
		return true
	}
	return false
}

// ValidationResult collects diagnostics for one document.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

func (r *ValidationResult) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) AddWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Valid reports whether the document passed. In strict mode warnings fail
// the document too.
func (r *ValidationResult) Valid(strict bool) bool {
	if len(r.Errors) > 0 {
		return false
	}
	if strict && len(r.Warnings) > 0 {
		return false
	}
	return true
}

// ValidateDocument checks a raw document for input hygiene, parse failures
// and deck-level problems.
func ValidateDocument(src string) ValidationResult {
	var result ValidationResult

	if err := CheckInput([]byte(src)); err != nil {
		result.AddError("input: %v", err)
		return result
	}

	doc, err := Parse(src)
	if err != nil {
		result.AddError("parse: %v", err)
		return result
	}

	if len(doc.Slides) == 0 {
		result.AddError("document contains no slides")
	}
	if _, ok := ThemeByName(doc.Meta.Theme); !ok {
		result.AddWarning("unknown theme %q", doc.Meta.Theme)
	}
	if doc.Meta.Author == "" {
		result.AddWarning("author is empty")
	}
	for i, slide := range doc.Slides {
		if slide.IsEmpty() {
			result.AddWarning("slide %d has no content", i+1)
		}
	}
	return result
}

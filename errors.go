package beamer

import "errors"

var (
	// ErrUnclosedFrontmatter reports a frontmatter block without a closing
	// delimiter line.
	ErrUnclosedFrontmatter = errors.New("unclosed frontmatter block")
	// ErrBadFrontmatter reports a frontmatter body that failed to decode.
	ErrBadFrontmatter = errors.New("invalid frontmatter")
	// ErrUnknownAdmonition reports an unrecognized admonition type name.
	ErrUnknownAdmonition = errors.New("unknown admonition type")
	// ErrInvalidUTF8 reports input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

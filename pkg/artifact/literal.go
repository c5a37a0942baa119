package artifact

import (
	"fmt"
	"unicode/utf8"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/spf13/afero"
)

// Mode tells whether a literal payload is text or raw bytes.
type Mode int

const (
	ModeText Mode = iota
	ModeBytes
)

func (m Mode) String() string {
	if m == ModeText {
		return "text"
	}
	return "bytes"
}

// Literal is an artifact whose content is already in memory.
type Literal struct {
	base
	mode Mode
	data []byte
	src  string
}

// NewText creates a text literal. The content must be valid UTF-8 when written.
func NewText(url, text string) *Literal {
	return &Literal{base: newBase(url), mode: ModeText, data: []byte(text)}
}

// NewBytes creates a literal written byte for byte.
func NewBytes(url string, data []byte) *Literal {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Literal{base: newBase(url), mode: ModeBytes, data: cp}
}

// NewLiteral accepts a string or a byte slice and picks the mode from its type.
func NewLiteral(url string, content any) (*Literal, error) {
	switch c := content.(type) {
	case string:
		return NewText(url, c), nil
	case []byte:
		return NewBytes(url, c), nil
	default:
		return nil, errors.Newf(errors.ErrContentMode, "unexpected content type %q for output %q",
			fmt.Sprintf("%T", content), url).
			WithDetail("url", url)
	}
}

// WithSource records the input the literal was synthesized from.
func (l *Literal) WithSource(path string) *Literal {
	l.src = path
	return l
}

func (l *Literal) Mode() Mode { return l.mode }

// Bytes returns the payload. Callers must not modify it.
func (l *Literal) Bytes() []byte { return l.data }

func (l *Literal) Source() string { return l.src }

func (l *Literal) Write(fsys afero.Fs, buildDir string) (Outcome, error) {
	if l.mode == ModeText && !utf8.Valid(l.data) {
		return OutcomeWritten, errors.Newf(errors.ErrContentMode,
			"output %q is declared as text but holds invalid UTF-8", l.url).
			WithDetail("url", l.url)
	}
	dest := l.destination(buildDir)
	if err := afero.WriteFile(fsys, dest, l.data, 0644); err != nil {
		return OutcomeWritten, errors.Wrapf(err, errors.ErrFileWrite, "could not write output %q", l.url).
			WithDetail("url", l.url).
			WithDetail("destination", dest)
	}
	return OutcomeWritten, nil
}

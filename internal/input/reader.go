// Package input reads numbers and lines from an interactive text stream.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ErrEndOfInput is returned when the stream is exhausted before a value could be read.
var ErrEndOfInput = errors.New("end of input")

// errOutOfRange marks syntactically valid numbers that are too large or too
// precise to be a sensible amount.
var errOutOfRange = errors.New("number out of range")

const (
	maxIntegerDigits    = 309 // float64 magnitude
	maxFractionalDigits = 340
)

// Prompter is the output side the reader needs: prompts stay on the current
// line, notices end with a newline.
type Prompter interface {
	Prompt(text string) error
	Notice(text string) error
}

// Reader tokenizes an input stream into numbers or trimmed lines.
type Reader struct {
	src io.Reader
	in  *bufio.Reader
	out Prompter
}

// NewReader wraps src. Prompts and notices are written to out.
func NewReader(src io.Reader, out Prompter) *Reader {
	return &Reader{
		src: src,
		in:  bufio.NewReader(src),
		out: out,
	}
}

// ReadNumber emits prompt and reads whitespace-delimited tokens until one
// parses as a number. Each rejected token triggers invalidNotice once and the
// prompt again. The rest of the line after the accepted token is discarded.
func (r *Reader) ReadNumber(prompt, invalidNotice string) (decimal.Decimal, error) {
	for {
		if err := r.out.Prompt(prompt); err != nil {
			return decimal.Zero, err
		}

		tok, err := r.nextToken()
		if err != nil {
			return decimal.Zero, err
		}

		v, err := ParseNumber(tok)
		if err != nil {
			if err := r.out.Notice(invalidNotice); err != nil {
				return decimal.Zero, err
			}
			continue
		}

		if err := r.skipLine(); err != nil {
			return decimal.Zero, err
		}
		return v, nil
	}
}

// ReadLine emits prompt and returns the next line with surrounding
// whitespace removed. A final line without a newline still counts.
func (r *Reader) ReadLine(prompt string) (string, error) {
	if err := r.out.Prompt(prompt); err != nil {
		return "", err
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading line: %w", err)
		}
		if line == "" {
			return "", ErrEndOfInput
		}
	}
	return strings.TrimSpace(line), nil
}

// Close releases the underlying stream when it is closable.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// nextToken skips leading whitespace (newlines included) and returns the run
// of non-space runes that follows. The delimiter is left in the buffer.
func (r *Reader) nextToken() (string, error) {
	var b strings.Builder
	for {
		ch, _, err := r.in.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("reading token: %w", err)
			}
			if b.Len() == 0 {
				return "", ErrEndOfInput
			}
			return b.String(), nil
		}

		if unicode.IsSpace(ch) {
			if b.Len() == 0 {
				continue
			}
			if err := r.in.UnreadRune(); err != nil {
				return "", fmt.Errorf("reading token: %w", err)
			}
			return b.String(), nil
		}
		b.WriteRune(ch)
	}
}

// skipLine drops everything up to and including the next newline.
func (r *Reader) skipLine() error {
	_, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("skipping line: %w", err)
	}
	return nil
}

// ParseNumber parses a locale-independent real number using '.' as the
// decimal separator. An optional sign and exponent are accepted; NaN,
// infinities, hex and digit grouping are not.
func ParseNumber(tok string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %q: %w", tok, err)
	}
	if v.IsZero() {
		return decimal.Zero, nil
	}

	// Digits left of the point: NumDigits + Exponent.
	if int64(v.NumDigits())+int64(v.Exponent()) > maxIntegerDigits || -int64(v.Exponent()) > maxFractionalDigits {
		return decimal.Zero, fmt.Errorf("parsing %q: %w", tok, errOutOfRange)
	}
	return v, nil
}

package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures prompts and notices in the order they were emitted.
type recorder struct {
	events  []string
	failErr error
}

func (r *recorder) Prompt(text string) error {
	r.events = append(r.events, "prompt:"+text)
	return r.failErr
}

func (r *recorder) Notice(text string) error {
	r.events = append(r.events, "notice:"+text)
	return r.failErr
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func newTestReader(in string) (*Reader, *recorder) {
	rec := &recorder{}
	return NewReader(strings.NewReader(in), rec), rec
}

func TestReadNumber_FirstTokenValid(t *testing.T) {
	r, rec := newTestReader("2500.50\n")

	v, err := r.ReadNumber("amount: ", "bad")
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.RequireFromString("2500.5")), "got %s", v)
	assert.Equal(t, []string{"prompt:amount: "}, rec.events)
}

func TestReadNumber_RetriesOncePerInvalidToken(t *testing.T) {
	r, rec := newTestReader("abc\nxyz\n1000\n")

	v, err := r.ReadNumber("amount: ", "bad")
	require.NoError(t, err)
	assert.Equal(t, "1000", v.String())
	assert.Equal(t, []string{
		"prompt:amount: ",
		"notice:bad",
		"prompt:amount: ",
		"notice:bad",
		"prompt:amount: ",
	}, rec.events)
}

func TestReadNumber_InvalidTokensOnSameLine(t *testing.T) {
	r, rec := newTestReader("one two 3 four\nnext line\n")

	v, err := r.ReadNumber("n: ", "bad")
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())
	assert.Equal(t, 2, rec.count("notice:bad"))

	// " four" is discarded with the rest of the line.
	line, err := r.ReadLine("line: ")
	require.NoError(t, err)
	assert.Equal(t, "next line", line)
}

func TestReadNumber_ConsumesTrailingLine(t *testing.T) {
	r, _ := newTestReader("42   trailing junk\n  Rent  \n")

	_, err := r.ReadNumber("n: ", "bad")
	require.NoError(t, err)

	line, err := r.ReadLine("name: ")
	require.NoError(t, err)
	assert.Equal(t, "Rent", line)
}

func TestReadNumber_NegativeAndExponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"-50\n", "-50"},
		{"+7.25\n", "7.25"},
		{"1e3\n", "1000"},
		{".5\n", "0.5"},
		{"5.\n", "5"},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			r, rec := newTestReader(tt.in)
			v, err := r.ReadNumber("n: ", "bad")
			require.NoError(t, err)
			assert.True(t, v.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", v, tt.want)
			assert.Zero(t, rec.count("notice:bad"))
		})
	}
}

func TestReadNumber_EndOfInput(t *testing.T) {
	t.Run("empty stream", func(t *testing.T) {
		r, _ := newTestReader("")
		_, err := r.ReadNumber("n: ", "bad")
		assert.ErrorIs(t, err, ErrEndOfInput)
	})

	t.Run("only invalid tokens", func(t *testing.T) {
		r, rec := newTestReader("abc\n  \n")
		_, err := r.ReadNumber("n: ", "bad")
		assert.ErrorIs(t, err, ErrEndOfInput)
		assert.Equal(t, 1, rec.count("notice:bad"))
	})

	t.Run("token without newline", func(t *testing.T) {
		r, _ := newTestReader("12")
		v, err := r.ReadNumber("n: ", "bad")
		require.NoError(t, err)
		assert.Equal(t, "12", v.String())
	})
}

func TestReadNumber_PromptError(t *testing.T) {
	rec := &recorder{failErr: errors.New("broken pipe")}
	r := NewReader(strings.NewReader("1\n"), rec)

	_, err := r.ReadNumber("n: ", "bad")
	assert.EqualError(t, err, "broken pipe")
}

func TestReadLine(t *testing.T) {
	r, rec := newTestReader("  Groceries \t\n\nlast")

	line, err := r.ReadLine("name: ")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", line)

	line, err = r.ReadLine("name: ")
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = r.ReadLine("name: ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.ReadLine("name: ")
	assert.ErrorIs(t, err, ErrEndOfInput)
	assert.Equal(t, 4, rec.count("prompt:name: "))
}

func TestParseNumber_Rejects(t *testing.T) {
	for _, tok := range []string{"abc", "NaN", "Inf", "-Infinity", "0x10", "1,000", "1_000", ".", "1e", "--5", "1e400", "1e-400"} {
		t.Run(tok, func(t *testing.T) {
			_, err := ParseNumber(tok)
			assert.Error(t, err)
		})
	}
}

func TestParseNumber_Zero(t *testing.T) {
	for _, tok := range []string{"0", "-0", "0.00", "0e999999999"} {
		v, err := ParseNumber(tok)
		require.NoError(t, err, tok)
		assert.True(t, v.IsZero(), tok)
	}
}

type closeTracker struct {
	*strings.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestClose(t *testing.T) {
	src := &closeTracker{Reader: strings.NewReader("")}
	r := NewReader(src, &recorder{})
	require.NoError(t, r.Close())
	assert.True(t, src.closed)

	// Non-closable sources are fine.
	r, _ = newTestReader("x")
	assert.NoError(t, r.Close())
}

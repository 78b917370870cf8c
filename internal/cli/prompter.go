package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/theirongolddev/budget/internal/model"
)

// Prompter writes the session's prompts, notices and report blocks. Output is
// buffered and flushed after every call so a prompt is visible before input
// is awaited. The first write error sticks and is returned from every later call.
type Prompter struct {
	w   *bufio.Writer
	r   *Renderer
	err error
}

// NewPrompter buffers writes to out and styles report lines with r.
func NewPrompter(out io.Writer, r *Renderer) *Prompter {
	return &Prompter{
		w: bufio.NewWriter(out),
		r: r,
	}
}

// Prompt writes text without a trailing newline.
func (p *Prompter) Prompt(text string) error {
	p.write(text)
	return p.flush()
}

// Notice writes text as a full line.
func (p *Prompter) Notice(text string) error {
	p.write(text, "\n")
	return p.flush()
}

// Warn writes a rejection notice as a full line.
func (p *Prompter) Warn(text string) error {
	return p.Notice(p.r.Warning(text))
}

// Welcome writes the opening banner.
func (p *Prompter) Welcome() error {
	return p.lines(p.r.WelcomeLines())
}

// ExpenseHeader writes a blank line and the expense-phase instructions.
func (p *Prompter) ExpenseHeader() error {
	return p.lines([]string{"", ExpenseHeader})
}

// Summary writes the budget summary block.
func (p *Prompter) Summary(s model.Summary) error {
	return p.lines(p.r.SummaryLines(s))
}

// Farewell writes the closing banner.
func (p *Prompter) Farewell() error {
	return p.lines(p.r.FarewellLines())
}

func (p *Prompter) lines(ls []string) error {
	for _, l := range ls {
		p.write(l, "\n")
	}
	return p.flush()
}

func (p *Prompter) write(parts ...string) {
	if p.err != nil {
		return
	}
	for _, s := range parts {
		if _, err := p.w.WriteString(s); err != nil {
			p.err = fmt.Errorf("writing output: %w", err)
			return
		}
	}
}

func (p *Prompter) flush() error {
	if p.err != nil {
		return p.err
	}
	if err := p.w.Flush(); err != nil {
		p.err = fmt.Errorf("flushing output: %w", err)
	}
	return p.err
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/budget/internal/model"
	"github.com/theirongolddev/budget/internal/theme"
)

// ColorMode selects when styled output is produced.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps a config value to a ColorMode. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

// Renderer styles fixed report lines with the active theme. With colors off
// every method returns its input unchanged.
type Renderer struct {
	lg    *lipgloss.Renderer
	color bool
}

// NewRenderer detects color support on w, which should be the terminal the
// output ends up on rather than any buffer in front of it.
func NewRenderer(w io.Writer, mode ColorMode) *Renderer {
	lg := lipgloss.NewRenderer(w)

	switch mode {
	case ColorAlways:
		if lg.ColorProfile() == termenv.Ascii {
			lg.SetColorProfile(termenv.ANSI256)
		}
	case ColorNever:
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		lg:    lg,
		color: lg.ColorProfile() != termenv.Ascii,
	}
}

// Colored reports whether styling is applied.
func (r *Renderer) Colored() bool {
	return r.color
}

func (r *Renderer) render(fg lipgloss.Color, bold bool, s string) string {
	if !r.color {
		return s
	}
	return r.lg.NewStyle().Foreground(fg).Bold(bold).Render(s)
}

// Rule styles a separator line.
func (r *Renderer) Rule(s string) string {
	return r.render(theme.Active.Rule, false, s)
}

// Title styles a banner or section title.
func (r *Renderer) Title(s string) string {
	return r.render(theme.Active.Title, true, s)
}

// Text styles a plain report value line.
func (r *Renderer) Text(s string) string {
	return r.render(theme.Active.Text, false, s)
}

// Warning styles a rejection notice.
func (r *Renderer) Warning(s string) string {
	return r.render(theme.Active.Warning, false, s)
}

// Verdict styles a balance line by its verdict.
func (r *Renderer) Verdict(v model.Verdict, s string) string {
	switch v {
	case model.WithinBudget:
		return r.render(theme.Active.Within, true, s)
	case model.OverBudget:
		return r.render(theme.Active.Over, true, s)
	default:
		return r.render(theme.Active.Exact, true, s)
	}
}

// SummaryLines renders the summary block, leading blank line included.
func (r *Renderer) SummaryLines(s model.Summary) []string {
	return []string{
		"",
		r.Title(SummaryTitle),
		r.Text(IncomeLine(s)),
		r.Text(ExpensesLine(s)),
		r.Rule(SummaryRule),
		r.Verdict(s.Verdict, BalanceLine(s)),
	}
}

// WelcomeLines renders the opening banner.
func (r *Renderer) WelcomeLines() []string {
	return []string{r.Rule(BannerRule), r.Title(WelcomeTitle), r.Rule(BannerRule)}
}

// FarewellLines renders the closing banner.
func (r *Renderer) FarewellLines() []string {
	return []string{r.Rule(BannerRule), r.Title(FarewellText), r.Rule(BannerRule)}
}

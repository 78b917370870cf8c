// Package tracker drives one interactive budget session: income entry, the
// expense loop and the final summary.
package tracker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/theirongolddev/budget/internal/cli"
	"github.com/theirongolddev/budget/internal/config"
	"github.com/theirongolddev/budget/internal/input"
	"github.com/theirongolddev/budget/internal/model"
	"github.com/theirongolddev/budget/internal/pipeline"
)

// ErrIncomplete is returned in strict mode when input ends before "done".
var ErrIncomplete = errors.New("input ended before the session was complete")

// Sentinel ends the expense loop, compared case-insensitively.
const Sentinel = "done"

// State is a position in the expense loop.
type State int

const (
	AwaitingName State = iota
	AwaitingAmount
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingName:
		return "awaiting-name"
	case AwaitingAmount:
		return "awaiting-amount"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Options tune validation and end-of-input handling.
type Options struct {
	RejectNegativeIncome bool
	RejectEmptyNames     bool
	StrictEOF            bool
	Color                cli.ColorMode
	Logger               *log.Entry
}

// OptionsFromConfig maps the config file onto session options. An unknown
// color mode falls back to auto and is returned as an error for logging.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	mode, err := cli.ParseColorMode(cfg.Appearance.Color)
	return Options{
		RejectNegativeIncome: cfg.Input.RejectNegativeIncome,
		RejectEmptyNames:     cfg.Input.RejectEmptyNames,
		StrictEOF:            cfg.Input.StrictEOF,
		Color:                mode,
	}, err
}

// Session holds the process-local state of one run.
type Session struct {
	in     *input.Reader
	out    *cli.Prompter
	ledger pipeline.Accumulator
	opts   Options
	log    *log.Entry

	state   State
	income  decimal.Decimal
	pending string // expense name awaiting its amount
}

// New builds a session reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "session")
	}

	prompter := cli.NewPrompter(out, cli.NewRenderer(out, opts.Color))
	return &Session{
		in:    input.NewReader(in, prompter),
		out:   prompter,
		opts:  opts,
		log:   logger,
		state: AwaitingName,
	}
}

// State returns the current expense loop state.
func (s *Session) State() State {
	return s.state
}

// Run executes the whole session and returns the summary that was printed.
// End of input stops reading and still prints the summary unless StrictEOF
// is set. The input stream is closed before Run returns.
func (s *Session) Run() (model.Summary, error) {
	var summary model.Summary
	defer func() {
		if cerr := s.in.Close(); cerr != nil {
			s.log.Debugf("closing input: %v", cerr)
		}
	}()

	if err := s.out.Welcome(); err != nil {
		return summary, err
	}

	eof := false
	if err := s.readIncome(); err != nil {
		if !errors.Is(err, input.ErrEndOfInput) {
			return summary, err
		}
		eof = true
	}

	if !eof {
		if err := s.out.ExpenseHeader(); err != nil {
			return summary, err
		}
		if err := s.expenseLoop(); err != nil {
			if !errors.Is(err, input.ErrEndOfInput) {
				return summary, err
			}
			eof = true
		}
	}

	if eof {
		s.log.Infof("end of input in state %s", s.state)
		s.state = Terminated
		if s.opts.StrictEOF {
			return summary, ErrIncomplete
		}
	}

	summary = pipeline.Summarize(s.income, &s.ledger)
	s.log.WithFields(log.Fields{
		"entries": summary.Entries,
		"verdict": summary.Verdict.String(),
	}).Debug("session summarized")

	if err := s.out.Summary(summary); err != nil {
		return summary, err
	}
	if err := s.out.Farewell(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *Session) readIncome() error {
	for {
		v, err := s.in.ReadNumber(cli.IncomePrompt, cli.InvalidIncome)
		if err != nil {
			return fmt.Errorf("reading income: %w", err)
		}
		if s.opts.RejectNegativeIncome && v.IsNegative() {
			if err := s.out.Warn(cli.NegativeIncome); err != nil {
				return err
			}
			continue
		}
		s.income = v
		return nil
	}
}

func (s *Session) expenseLoop() error {
	for s.state != Terminated {
		var (
			next State
			err  error
		)
		switch s.state {
		case AwaitingName:
			next, err = s.awaitName()
		case AwaitingAmount:
			next, err = s.awaitAmount()
		}
		if err != nil {
			return err
		}
		if next != s.state {
			s.log.Debugf("state %s -> %s", s.state, next)
		}
		s.state = next
	}
	return nil
}

func (s *Session) awaitName() (State, error) {
	name, err := s.in.ReadLine(cli.NamePrompt)
	if err != nil {
		return s.state, fmt.Errorf("reading expense name: %w", err)
	}

	if strings.EqualFold(name, Sentinel) {
		return Terminated, nil
	}
	if name == "" && s.opts.RejectEmptyNames {
		if err := s.out.Warn(cli.EmptyName); err != nil {
			return s.state, err
		}
		return AwaitingName, nil
	}

	s.pending = name
	return AwaitingAmount, nil
}

func (s *Session) awaitAmount() (State, error) {
	amount, err := s.in.ReadNumber(cli.AmountPrompt(s.pending), cli.InvalidAmount)
	if err != nil {
		return s.state, fmt.Errorf("reading amount for %q: %w", s.pending, err)
	}

	expense := model.Expense{Name: s.pending, Amount: amount}
	s.pending = ""

	if err := s.ledger.Add(expense); err != nil {
		if !errors.Is(err, pipeline.ErrNegativeExpense) {
			return s.state, err
		}
		s.log.WithField("amount", amount.String()).Debug("rejected negative expense")
		if err := s.out.Warn(cli.NegativeExpense); err != nil {
			return s.state, err
		}
		return AwaitingName, nil
	}

	s.log.WithFields(log.Fields{
		"name":   expense.Name,
		"amount": amount.String(),
		"total":  s.ledger.Total().String(),
	}).Debug("expense accepted")
	return AwaitingName, nil
}

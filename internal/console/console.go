// Package console is a line-oriented renderer for a quiz session. It reads
// selections from an input stream and prints every state change.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/session"
)

// ErrInputClosed is returned when input ends before the session completes.
var ErrInputClosed = errors.New("input closed before the quiz was completed")

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
)

// Console drives a session from a line-based input and renders it as text.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	color   bool
}

// New creates a Console. Color enables ANSI highlighting.
func New(in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		color:   color,
	}
}

// Run loads the question set into s and plays it to completion.
func (c *Console) Run(ctx context.Context, s *session.Session, l session.Loader) (*session.SessionSummary, error) {
	s.Subscribe(c)

	c.printf("Loading questions...\n")
	if err := s.Load(ctx, l); err != nil {
		return nil, err
	}

	for !s.Phase().Terminal() {
		switch s.Phase() {
		case session.PhasePresenting:
			sel, ok, err := c.readSelection()
			if err != nil {
				return session.BuildSummary(s), err
			}
			if !ok {
				continue
			}
			if _, err := s.RequestSubmit(sel); err != nil {
				if errors.Is(err, session.ErrInvalidSelection) {
					c.printf("%s\n", c.paint(ansiYellow, "That option does not exist."))
					continue
				}
				return session.BuildSummary(s), err
			}

		case session.PhaseAnswered:
			c.printf("\nPress Enter for the next question: ")
			if !c.scanner.Scan() {
				c.printf("\n")
				if err := c.scanner.Err(); err != nil {
					return session.BuildSummary(s), err
				}
				return session.BuildSummary(s), ErrInputClosed
			}
			if err := s.RequestAdvance(); err != nil {
				return session.BuildSummary(s), err
			}
		}
	}

	return session.BuildSummary(s), nil
}

// readSelection prompts for 1-based option numbers. ok is false when the
// line could not be parsed and the prompt should be repeated.
func (c *Console) readSelection() (sel []int, ok bool, err error) {
	c.printf("\nSelect options (e.g. 1,3): ")
	if !c.scanner.Scan() {
		c.printf("\n")
		if err := c.scanner.Err(); err != nil {
			return nil, false, err
		}
		return nil, false, ErrInputClosed
	}

	sel, perr := ParseSelection(c.scanner.Text())
	if perr != nil {
		c.printf("%s\n", c.paint(ansiYellow, perr.Error()))
		return nil, false, nil
	}
	return sel, true, nil
}

// ParseSelection turns "1, 3" or "1 3" into zero-based indices. Blank input
// is an empty selection.
func ParseSelection(line string) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	sel := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%q is not an option number", f)
		}
		sel = append(sel, n-1)
	}
	return sel, nil
}

// OnStateChanged renders snap.
func (c *Console) OnStateChanged(snap session.Snapshot) {
	switch snap.Phase {
	case session.PhasePresenting:
		if snap.LastResult != nil && snap.LastResult.Outcome == quiz.NeedsSelection {
			c.printf("%s\n", c.paint(ansiYellow, quiz.Feedback(*snap.LastResult)))
			return
		}
		c.renderQuestion(snap)

	case session.PhaseAnswered:
		c.renderAnswered(snap)

	case session.PhaseCompleted:
		c.printf("\n%s\n", c.paint(ansiBlue, "Quiz Completed!"))
		c.printf("Your final score: %.2f points (max %.2f)\n", snap.Score, snap.MaxScore)
		c.printf("Thanks for playing!\n")

	case session.PhaseFailed:
		c.printf("%s\n", c.paint(ansiRed, "Error loading quiz data."))
		if snap.Err != nil {
			c.printf("%v\n", snap.Err)
		}
	}
}

func (c *Console) renderQuestion(snap session.Snapshot) {
	q := snap.CurrentQuestion
	if q == nil {
		return
	}
	c.printf("\n── Question %d/%d ──\n", snap.CurrentIndex+1, snap.Total)
	c.printf("%d. %s\n", snap.CurrentIndex+1, q.Text)
	for i, o := range q.Options {
		c.printf("  %d) %s\n", i+1, o.Text)
	}
}

func (c *Console) renderAnswered(snap session.Snapshot) {
	q, r := snap.CurrentQuestion, snap.LastResult
	if q == nil || r == nil {
		return
	}

	c.printf("\n")
	for i, o := range q.Options {
		line := fmt.Sprintf("  %d) %s", i+1, o.Text)
		switch {
		case r.IsCorrectOption(i):
			mark := "  "
			if r.IsSelected(i) {
				mark = " ✓"
			}
			c.printf("%s%s\n", c.paint(ansiGreen, line), mark)
		case r.IsSelected(i):
			c.printf("%s ✗\n", c.paint(ansiRed, line))
		default:
			c.printf("%s\n", line)
		}
	}

	color := ansiYellow
	switch r.Outcome {
	case quiz.Perfect:
		color = ansiGreen
	case quiz.TotallyIncorrect:
		color = ansiRed
	}
	c.printf("\n%s\n", c.paint(color, quiz.Feedback(*r)))
	c.printf("%s\n", quiz.Summary(*r))
}

func (c *Console) paint(code, s string) string {
	if !c.color {
		return s
	}
	return code + s + ansiReset
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

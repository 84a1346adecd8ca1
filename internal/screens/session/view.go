package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/quiz"
	sess "github.com/abhisek/mcquiz/internal/session"
	"github.com/abhisek/mcquiz/internal/ui/components"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch s.snap.Phase {
	case sess.PhaseLoading:
		return s.renderLoading(width)
	case sess.PhaseFailed:
		return renderError(width, s.snap.Err)
	case sess.PhasePresenting, sess.PhaseAnswered:
		return s.renderQuestion(width)
	}
	return ""
}

func (s *SessionScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n" + s.spinner.View() + " Loading questions...")
}

func renderError(width int, err error) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Wrong.Width(width).Align(lipgloss.Center).Render("Error loading quiz data."))
	b.WriteString("\n\n")
	if err != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(err.Error()))
	}
	return b.String()
}

func (s *SessionScreen) renderQuestion(width int) string {
	snap := s.snap
	q := snap.CurrentQuestion
	if q == nil {
		return ""
	}

	inner := width - 8
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString("\n")
	bar := components.NewProgressBar(snap.CurrentIndex+1, snap.Total, inner)
	b.WriteString(bar.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d", snap.CurrentIndex+1, snap.Total)))
	b.WriteString("\n")
	b.WriteString(theme.Question.Width(inner).Render(fmt.Sprintf("%d. %s", snap.CurrentIndex+1, q.Text)))
	b.WriteString("\n\n")
	b.WriteString(s.list.View())
	b.WriteString("\n")

	switch {
	case snap.Phase == sess.PhaseAnswered && snap.LastResult != nil:
		b.WriteString(renderVerdict(*snap.LastResult))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(quiz.Summary(*snap.LastResult)))
		b.WriteString("\n\n")
		next := "Press Enter for the next question"
		if snap.CurrentIndex+1 == snap.Total {
			next = "Press Enter to see your results"
		}
		b.WriteString(theme.Hint.Render(next))
	case s.notice != "":
		b.WriteString(theme.Prompt.Render(s.notice))
	default:
		b.WriteString(theme.Hint.Render("Select every correct option, then press Enter"))
	}

	return lipgloss.NewStyle().PaddingLeft(4).Render(b.String())
}

func renderVerdict(r quiz.Result) string {
	style := theme.Partial
	switch r.Outcome {
	case quiz.Perfect:
		style = theme.Perfect
	case quiz.TotallyIncorrect:
		style = theme.Wrong
	}
	return style.Render(quiz.Feedback(r))
}

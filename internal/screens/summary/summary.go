package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/session"
	"github.com/abhisek/mcquiz/internal/ui/layout"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// SummaryScreen displays the final report of a completed session.
type SummaryScreen struct {
	summary *session.SessionSummary
	retake  func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. retake builds the screen for another
// attempt; nil disables retaking.
func New(summary *session.SessionSummary, retake func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, retake: retake}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Completed"
}

func (s *SummaryScreen) Status() string {
	if s.summary == nil {
		return ""
	}
	return fmt.Sprintf("Score %.2f  ", s.summary.Score)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Exit"},
	}
	if s.retake != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		case "r":
			if s.retake == nil {
				return s, nil
			}
			next := s.retake()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center(theme.Title, "Quiz Completed!"))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Perfect, fmt.Sprintf("Your final score: %.2f points", sum.Score)))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint, fmt.Sprintf("out of a possible %.2f", sum.MaxScore)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 40)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		count int
		style lipgloss.Style
	}{
		{"Perfect", sum.Perfect, theme.Perfect},
		{"Partial", sum.Partial, theme.Partial},
		{"Totally incorrect", sum.TotallyIncorrect, theme.Wrong},
	}
	for _, r := range rows {
		line := fmt.Sprintf("%-18s %3d", r.label, r.count)
		b.WriteString(center(r.style, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(theme.Body, fmt.Sprintf("Questions answered: %d/%d", sum.Answered, sum.TotalQuestions)))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Hint, "Thanks for playing!"))

	return b.String()
}

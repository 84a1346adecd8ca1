package session

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/screens/help"
	"github.com/abhisek/mcquiz/internal/screens/summary"
	sess "github.com/abhisek/mcquiz/internal/session"
	"github.com/abhisek/mcquiz/internal/ui/components"
	"github.com/abhisek/mcquiz/internal/ui/layout"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// SessionScreen drives one quiz session. It observes the state machine
// and renders whatever snapshot it was last handed.
type SessionScreen struct {
	loader  sess.Loader
	session *sess.Session
	snap    sess.Snapshot
	list    components.Checklist
	spinner spinner.Model
	keys    keyMap
	notice  string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ sess.Observer = (*SessionScreen)(nil)

// New creates a SessionScreen that fetches its questions from loader.
func New(loader sess.Loader) *SessionScreen {
	s := &SessionScreen{
		loader: loader,
		keys:   defaultKeyMap(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
	s.session = sess.New(s)
	s.snap = s.session.Snapshot()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.spinner.Tick,
		s.load(),
	)
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

// Status shows the running score once questions are on screen.
func (s *SessionScreen) Status() string {
	if s.snap.Phase == sess.PhaseLoading || s.snap.Phase == sess.PhaseFailed {
		return ""
	}
	return fmt.Sprintf("Score %.2f  ", s.snap.Score)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.snap.Phase {
	case sess.PhasePresenting:
		return []layout.KeyHint{
			{Key: "Space/1-9", Description: "Toggle"},
			{Key: "Enter", Description: "Submit"},
			{Key: "?", Description: "Help"},
			{Key: "Q", Description: "Quit"},
		}
	case sess.PhaseAnswered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Q", Description: "Quit"},
		}
	case sess.PhaseFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Exit"},
		}
	}
	return nil
}

// OnStateChanged receives every transition of the underlying session.
func (s *SessionScreen) OnStateChanged(snap sess.Snapshot) {
	prev := s.snap
	s.snap = snap

	switch snap.Phase {
	case sess.PhasePresenting:
		if prev.Phase != sess.PhasePresenting || prev.CurrentIndex != snap.CurrentIndex {
			s.list = components.NewChecklist(*snap.CurrentQuestion)
			s.notice = ""
		}
		if snap.LastResult != nil && snap.LastResult.Outcome == quiz.NeedsSelection {
			s.notice = quiz.Feedback(*snap.LastResult)
		}
	case sess.PhaseAnswered:
		if snap.LastResult != nil {
			s.list.Reveal(*snap.LastResult)
		}
		s.notice = ""
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return s.handleLoaded(msg)

	case spinner.TickMsg:
		if s.snap.Phase != sess.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// load fetches the question set off the update loop.
func (s *SessionScreen) load() tea.Cmd {
	loader := s.loader
	return func() tea.Msg {
		qs, err := loader.Load(context.Background())
		return loadedMsg{Questions: qs, Err: err}
	}
}

func (s *SessionScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if err := s.session.Complete(msg.Questions, msg.Err); err != nil {
		return s, nil
	}
	if s.snap.Phase == sess.PhaseCompleted {
		return s, s.finish()
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return s, tea.Quit
	case key.Matches(msg, s.keys.Help):
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: help.New(s.keys)}
		}
	}

	switch s.snap.Phase {
	case sess.PhasePresenting:
		if key.Matches(msg, s.keys.Submit) {
			if _, err := s.session.RequestSubmit(s.list.Selected()); err != nil {
				s.notice = err.Error()
			}
			return s, nil
		}
		s.list = s.list.Update(msg)

	case sess.PhaseAnswered:
		if key.Matches(msg, s.keys.Next) {
			if err := s.session.RequestAdvance(); err != nil {
				s.notice = err.Error()
				return s, nil
			}
			if s.snap.Phase == sess.PhaseCompleted {
				return s, s.finish()
			}
		}

	case sess.PhaseFailed:
		if key.Matches(msg, s.keys.Submit) {
			return s, tea.Quit
		}
	}

	return s, nil
}

// finish swaps this screen for the final report. Retaking builds a fresh
// session over the same loader, which reshuffles.
func (s *SessionScreen) finish() tea.Cmd {
	sum := sess.BuildSummary(s.session)
	loader := s.loader
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(sum, func() screen.Screen { return New(loader) }),
		}
	}
}

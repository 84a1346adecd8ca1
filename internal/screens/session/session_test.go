package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screens/help"
	"github.com/abhisek/mcquiz/internal/screens/summary"
	sess "github.com/abhisek/mcquiz/internal/session"
)

// stubLoader returns a fixed question set.
type stubLoader struct {
	questions quiz.QuestionSet
	err       error
	calls     int
}

func (l *stubLoader) Load(context.Context) (quiz.QuestionSet, error) {
	l.calls++
	return l.questions, l.err
}

func testQuestions() quiz.QuestionSet {
	return quiz.QuestionSet{
		{
			Text: "Which are set operations?",
			Options: []quiz.Option{
				{Text: "Union", Correct: true},
				{Text: "Projection"},
				{Text: "Difference", Correct: true},
			},
		},
		{
			Text: "Which operator removes columns?",
			Options: []quiz.Option{
				{Text: "Selection"},
				{Text: "Projection", Correct: true},
			},
		},
	}
}

func press(s *SessionScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

func digit(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func loadedScreen(t *testing.T) (*SessionScreen, *stubLoader) {
	t.Helper()
	l := &stubLoader{questions: testQuestions()}
	s := New(l)
	s.Update(loadedMsg{Questions: l.questions})
	if s.snap.Phase != sess.PhasePresenting {
		t.Fatalf("Phase = %v, want presenting", s.snap.Phase)
	}
	return s, l
}

func TestSessionScreen_LoadCmdFetches(t *testing.T) {
	l := &stubLoader{questions: testQuestions()}
	s := New(l)

	msg := s.load()()
	got, ok := msg.(loadedMsg)
	if !ok {
		t.Fatalf("load() produced %T, want loadedMsg", msg)
	}
	if len(got.Questions) != 2 || l.calls != 1 {
		t.Errorf("loaded %d questions in %d calls, want 2 in 1", len(got.Questions), l.calls)
	}
}

func TestSessionScreen_LoadingView(t *testing.T) {
	s := New(&stubLoader{})
	if !strings.Contains(s.View(80, 24), "Loading questions") {
		t.Error("expected loading text before questions arrive")
	}
	if s.Status() != "" {
		t.Errorf("Status while loading = %q, want empty", s.Status())
	}
}

func TestSessionScreen_LoadFailure(t *testing.T) {
	s := New(&stubLoader{})
	s.Update(loadedMsg{Err: errors.New("connection refused")})

	if s.snap.Phase != sess.PhaseFailed {
		t.Fatalf("Phase = %v, want failed", s.snap.Phase)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Error loading quiz data.") || !strings.Contains(view, "connection refused") {
		t.Errorf("unexpected failure view:\n%s", view)
	}

	// Keys other than Enter do nothing once failed.
	if cmd := press(s, digit('1')); cmd != nil {
		t.Error("expected no command for option key after failure")
	}
	cmd := press(s, enter)
	if cmd == nil {
		t.Fatal("expected quit on Enter after failure")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestSessionScreen_EmptySetGoesStraightToSummary(t *testing.T) {
	s := New(&stubLoader{})
	_, cmd := s.Update(loadedMsg{Questions: quiz.QuestionSet{}})

	if s.snap.Phase != sess.PhaseCompleted {
		t.Fatalf("Phase = %v, want completed", s.snap.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
}

func TestSessionScreen_EmptySelectionNotice(t *testing.T) {
	s, _ := loadedScreen(t)
	press(s, enter)

	if s.snap.Phase != sess.PhasePresenting {
		t.Errorf("Phase = %v, want presenting", s.snap.Phase)
	}
	if s.snap.Score != 0 {
		t.Errorf("Score = %v, want 0", s.snap.Score)
	}
	if !strings.Contains(s.View(80, 24), "Please select at least one option!") {
		t.Error("expected the select-an-option notice")
	}
}

func TestSessionScreen_PerfectAnswer(t *testing.T) {
	s, _ := loadedScreen(t)
	press(s, digit('1'), digit('3'), enter)

	if s.snap.Phase != sess.PhaseAnswered {
		t.Fatalf("Phase = %v, want answered", s.snap.Phase)
	}
	if s.snap.Score != 0.5 {
		t.Errorf("Score = %v, want 0.5", s.snap.Score)
	}
	if !s.list.Revealed() {
		t.Error("expected checklist to be revealed after submission")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Perfect! You selected all 2 correct answers.") {
		t.Errorf("view missing perfect feedback:\n%s", view)
	}
	if !strings.Contains(s.Status(), "0.50") {
		t.Errorf("Status = %q, want it to show 0.50", s.Status())
	}
}

func TestSessionScreen_SpaceTogglesAtCursor(t *testing.T) {
	s, _ := loadedScreen(t)
	press(s,
		tea.KeyPressMsg{Code: tea.KeyDown},
		tea.KeyPressMsg{Code: tea.KeySpace},
		enter,
	)

	if s.snap.LastResult == nil || s.snap.LastResult.Outcome != quiz.TotallyIncorrect {
		t.Fatalf("LastResult = %+v, want totally incorrect", s.snap.LastResult)
	}
	if s.snap.Score != -0.25 {
		t.Errorf("Score = %v, want -0.25", s.snap.Score)
	}
}

func TestSessionScreen_TogglesIgnoredAfterSubmit(t *testing.T) {
	s, _ := loadedScreen(t)
	press(s, digit('1'), enter, digit('3'))

	if got := s.list.Selected(); len(got) != 1 || got[0] != 0 {
		t.Errorf("Selected = %v, want [0]", got)
	}
	if s.snap.Score != 0.25 {
		t.Errorf("Score = %v, want 0.25", s.snap.Score)
	}
}

func TestSessionScreen_AdvanceResetsChecklist(t *testing.T) {
	s, _ := loadedScreen(t)
	press(s, digit('1'), enter, enter)

	if s.snap.Phase != sess.PhasePresenting || s.snap.CurrentIndex != 1 {
		t.Fatalf("Phase = %v index %d, want presenting 1", s.snap.Phase, s.snap.CurrentIndex)
	}
	if s.list.Revealed() || len(s.list.Selected()) != 0 {
		t.Error("expected a fresh checklist for the next question")
	}
	if !strings.Contains(s.View(80, 24), "Question 2 of 2") {
		t.Error("expected question counter to advance")
	}
}

func TestSessionScreen_CompletionReplacesWithSummary(t *testing.T) {
	s, l := loadedScreen(t)
	press(s, digit('1'), digit('3'), enter, enter)
	press(s, digit('2'), enter)

	if !strings.Contains(s.View(80, 24), "see your results") {
		t.Error("expected last-question hint")
	}

	cmd := press(s, enter)
	if s.snap.Phase != sess.PhaseCompleted {
		t.Fatalf("Phase = %v, want completed", s.snap.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a replace command on completion")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	sum, ok := msg.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("replacement is %T, want *summary.SummaryScreen", msg.Screen)
	}
	if !strings.Contains(sum.View(80, 24), "Your final score: 0.75 points") {
		t.Error("summary does not show the final score")
	}

	// Retake builds a new session over the same loader.
	_, rcmd := sum.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	retake, ok := rcmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg for retake")
	}
	next, ok := retake.Screen.(*SessionScreen)
	if !ok {
		t.Fatalf("retake screen is %T, want *SessionScreen", retake.Screen)
	}
	if next.loader != l || next.snap.Phase != sess.PhaseLoading {
		t.Error("retake screen should reuse the loader and start loading")
	}
}

func TestSessionScreen_HelpPushes(t *testing.T) {
	s, _ := loadedScreen(t)
	cmd := press(s, tea.KeyPressMsg{Code: '?', Text: "?"})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*help.HelpScreen); !ok {
		t.Errorf("pushed %T, want *help.HelpScreen", msg.Screen)
	}
}

func TestSessionScreen_Quit(t *testing.T) {
	s, _ := loadedScreen(t)
	cmd := press(s, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := loadedScreen(t)
	if len(s.KeyHints()) != 4 {
		t.Errorf("presenting KeyHints = %d, want 4", len(s.KeyHints()))
	}
	press(s, digit('1'), enter)
	if len(s.KeyHints()) != 2 {
		t.Errorf("answered KeyHints = %d, want 2", len(s.KeyHints()))
	}
}

func TestKeyMap_PickHelpStatesDigitLimit(t *testing.T) {
	h := defaultKeyMap().Pick.Help()
	if !strings.Contains(h.Desc, "1-9") || !strings.Contains(h.Desc, "space") {
		t.Errorf("Pick help = %q, want it to name the 1-9 limit and the space fallback", h.Desc)
	}
}

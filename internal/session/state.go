package session

import "github.com/abhisek/mcquiz/internal/quiz"

// Phase is the state machine's current state.
type Phase int

const (
	PhaseLoading    Phase = iota // Waiting for the question set
	PhasePresenting              // Current question shown, awaiting a submission
	PhaseAnswered                // Feedback shown, awaiting advance
	PhaseCompleted               // Every question answered
	PhaseFailed                  // Question set could not be loaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseAnswered:
		return "answered"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

// AnswerState records whether the current question has been scored.
type AnswerState int

const (
	Unanswered AnswerState = iota
	Answered
)

func (a AnswerState) String() string {
	if a == Answered {
		return "answered"
	}
	return "unanswered"
}

// SessionState is the mutable state owned by a Session.
type SessionState struct {
	// Sequence is the shuffled question set, set once by the load.
	Sequence quiz.QuestionSet

	// CurrentIndex points into Sequence. It equals len(Sequence) once the
	// session is completed.
	CurrentIndex int

	// CumulativeScore is the running total of awarded points. It may be
	// negative.
	CumulativeScore float64

	// AnswerState guards the current question against a second submission.
	AnswerState AnswerState

	// Phase is the state machine's current state.
	Phase Phase

	// LastResult is the most recent submission for the current question,
	// including a NeedsSelection re-prompt. Nil after advancing.
	LastResult *quiz.Result

	// Err is the load failure when Phase is PhaseFailed.
	Err error

	// Outcomes counts scored submissions per outcome.
	Outcomes map[quiz.Outcome]int
}

// newSessionState returns the state of a session that is still loading.
func newSessionState() SessionState {
	return SessionState{
		Phase:    PhaseLoading,
		Outcomes: make(map[quiz.Outcome]int),
	}
}

// CurrentQuestion returns the question at CurrentIndex, or nil when there
// is none.
func (s *SessionState) CurrentQuestion() *quiz.Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Sequence) {
		return nil
	}
	return &s.Sequence[s.CurrentIndex]
}

// Snapshot is a read-only view of the session handed to renderers.
type Snapshot struct {
	SessionID string
	Phase     Phase

	// CurrentIndex is 0-based; Total is the number of questions.
	CurrentIndex int
	Total        int

	// CurrentQuestion is nil while loading, after failure and once completed.
	CurrentQuestion *quiz.Question
	AnswerState     AnswerState

	// LastResult is set after a submission to the current question.
	LastResult *quiz.Result

	Score    float64
	MaxScore float64
	Err      error
}

// Observer is the presentation layer's hook into the state machine.
type Observer interface {
	OnStateChanged(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) OnStateChanged(s Snapshot) { f(s) }

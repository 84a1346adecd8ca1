package session

import (
	"context"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/abhisek/mcquiz/internal/quiz"
)

// Loader supplies the shuffled question set.
type Loader interface {
	Load(ctx context.Context) (quiz.QuestionSet, error)
}

// Session runs one pass through a question set. It is not safe for
// concurrent use: events must be delivered one at a time.
type Session struct {
	id        string
	state     SessionState
	observers []Observer
}

// New creates a session in PhaseLoading.
func New(observers ...Observer) *Session {
	return &Session{
		id:        uuid.New().String(),
		state:     newSessionState(),
		observers: observers,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Subscribe registers an additional observer.
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Load fetches the question set and completes the Loading phase. It
// returns the load error, if any, after the session has moved to
// PhaseFailed.
func (s *Session) Load(ctx context.Context, l Loader) error {
	if s.state.Phase != PhaseLoading {
		return s.reject("load")
	}
	qs, err := l.Load(ctx)
	if cerr := s.Complete(qs, err); cerr != nil {
		return cerr
	}
	return err
}

// Complete delivers the outcome of a load performed elsewhere. A non-nil
// loadErr moves the session to PhaseFailed; an empty set completes it
// immediately. The session keeps its own copy of qs.
func (s *Session) Complete(qs quiz.QuestionSet, loadErr error) error {
	if s.state.Phase != PhaseLoading {
		return s.reject("complete load")
	}

	switch {
	case loadErr != nil:
		s.state.Phase = PhaseFailed
		s.state.Err = loadErr
		glog.Errorf("session %s: load failed: %v", s.id, loadErr)
	case len(qs) == 0:
		s.state.Sequence = qs.Clone()
		s.state.Phase = PhaseCompleted
	default:
		s.state.Sequence = qs.Clone()
		s.state.CurrentIndex = 0
		s.state.AnswerState = Unanswered
		s.state.Phase = PhasePresenting
	}

	s.transitioned()
	return nil
}

// RequestSubmit scores selected against the current question. An empty
// selection yields a NeedsSelection result and leaves the session in
// PhasePresenting with the score untouched.
func (s *Session) RequestSubmit(selected []int) (quiz.Result, error) {
	if s.state.Phase != PhasePresenting || s.state.AnswerState != Unanswered {
		return quiz.Result{}, s.reject("submit")
	}

	q := s.state.CurrentQuestion()
	if !quiz.ValidSelection(*q, selected) {
		glog.Warningf("session %s: rejected selection %v for question %d", s.id, selected, s.state.CurrentIndex)
		return quiz.Result{}, fmt.Errorf("%w: %v not within [0, %d)", ErrInvalidSelection, selected, len(q.Options))
	}

	res := quiz.Score(*q, selected)
	if res.Outcome != quiz.NeedsSelection {
		s.state.CumulativeScore += res.PointsAwarded
		s.state.AnswerState = Answered
		s.state.Phase = PhaseAnswered
		s.state.Outcomes[res.Outcome]++
	}
	res.RunningScore = s.state.CumulativeScore
	s.state.LastResult = cloneResult(res)

	s.transitioned()
	return res, nil
}

// RequestAdvance moves past an answered question, completing the session
// after the last one.
func (s *Session) RequestAdvance() error {
	if s.state.Phase != PhaseAnswered {
		return s.reject("advance")
	}

	s.state.CurrentIndex++
	s.state.LastResult = nil
	s.state.AnswerState = Unanswered
	if s.state.CurrentIndex >= len(s.state.Sequence) {
		s.state.Phase = PhaseCompleted
	} else {
		s.state.Phase = PhasePresenting
	}

	s.transitioned()
	return nil
}

// Snapshot returns the current read-only view.
func (s *Session) Snapshot() Snapshot {
	st := &s.state
	snap := Snapshot{
		SessionID:    s.id,
		Phase:        st.Phase,
		CurrentIndex: st.CurrentIndex,
		Total:        len(st.Sequence),
		AnswerState:  st.AnswerState,
		Score:        st.CumulativeScore,
		MaxScore:     st.Sequence.MaxScore(),
		Err:          st.Err,
	}
	if !st.Phase.Terminal() {
		if q := st.CurrentQuestion(); q != nil {
			cp := q.Clone()
			snap.CurrentQuestion = &cp
		}
	}
	if st.LastResult != nil {
		snap.LastResult = cloneResult(*st.LastResult)
	}
	return snap
}

// cloneResult copies r so callers cannot reach the session's slices.
func cloneResult(r quiz.Result) *quiz.Result {
	r.CorrectAnswers = append([]int(nil), r.CorrectAnswers...)
	r.Selected = append([]int(nil), r.Selected...)
	return &r
}

func (s *Session) reject(action string) error {
	err := &InvalidTransitionError{Action: action, Phase: s.state.Phase}
	glog.Warningf("session %s: %v", s.id, err)
	return err
}

func (s *Session) transitioned() {
	glog.V(1).Infof("session %s: %s index=%d/%d score=%.2f",
		s.id, s.state.Phase, s.state.CurrentIndex, len(s.state.Sequence), s.state.CumulativeScore)

	snap := s.Snapshot()
	for _, o := range s.observers {
		o.OnStateChanged(snap)
	}
}

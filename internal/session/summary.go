package session

import "github.com/abhisek/mcquiz/internal/quiz"

// SessionSummary holds the data displayed once a session has completed.
type SessionSummary struct {
	SessionID        string
	TotalQuestions   int
	Answered         int
	Score            float64
	MaxScore         float64
	Perfect          int
	Partial          int
	TotallyIncorrect int
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(s *Session) *SessionSummary {
	st := &s.state
	return &SessionSummary{
		SessionID:        s.id,
		TotalQuestions:   len(st.Sequence),
		Answered:         st.Outcomes[quiz.Perfect] + st.Outcomes[quiz.Partial] + st.Outcomes[quiz.TotallyIncorrect],
		Score:            st.CumulativeScore,
		MaxScore:         st.Sequence.MaxScore(),
		Perfect:          st.Outcomes[quiz.Perfect],
		Partial:          st.Outcomes[quiz.Partial],
		TotallyIncorrect: st.Outcomes[quiz.TotallyIncorrect],
	}
}

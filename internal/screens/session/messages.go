package session

import "github.com/abhisek/mcquiz/internal/quiz"

// loadedMsg carries the outcome of the background question fetch.
type loadedMsg struct {
	Questions quiz.QuestionSet
	Err       error
}

package quiz

// Option is one selectable choice within a question.
type Option struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Question is a prompt with an ordered list of options, any number of
// which may be correct. A question with no correct option is accepted
// as-is; no selection can answer it perfectly.
type Question struct {
	Text    string   `json:"question" yaml:"question"`
	Options []Option `json:"options" yaml:"options"`
}

// QuestionSet is the ordered sequence of questions for one session.
type QuestionSet []Question

// CorrectAnswers returns the indices of the correct options in order.
func (q Question) CorrectAnswers() []int {
	var idx []int
	for i, o := range q.Options {
		if o.Correct {
			idx = append(idx, i)
		}
	}
	return idx
}

// MaxPoints is the score a perfect answer to q is worth.
func (q Question) MaxPoints() float64 {
	return float64(len(q.CorrectAnswers())) * PointsPerOption
}

// MaxScore is the sum of MaxPoints over the whole set.
func (qs QuestionSet) MaxScore() float64 {
	var total float64
	for _, q := range qs {
		total += q.MaxPoints()
	}
	return total
}

// Clone returns a copy of q that shares no memory with it.
func (q Question) Clone() Question {
	q.Options = append([]Option(nil), q.Options...)
	return q
}

// Clone returns a deep copy of qs.
func (qs QuestionSet) Clone() QuestionSet {
	if qs == nil {
		return nil
	}
	out := make(QuestionSet, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

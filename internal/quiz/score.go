package quiz

import "sort"

// PointsPerOption is awarded for each correct selection and deducted for
// each wrong one.
const PointsPerOption = 0.25

// Outcome classifies a submitted answer.
type Outcome int

const (
	NeedsSelection   Outcome = iota // Nothing selected; nothing scored
	Perfect                         // Every correct option and nothing else
	TotallyIncorrect                // Only wrong options
	Partial                         // Anything in between
)

func (o Outcome) String() string {
	switch o {
	case NeedsSelection:
		return "needs-selection"
	case Perfect:
		return "perfect"
	case TotallyIncorrect:
		return "totally-incorrect"
	case Partial:
		return "partial"
	default:
		return "unknown"
	}
}

// Result is the scored feedback for one submission.
type Result struct {
	Outcome        Outcome
	CorrectCount   int
	IncorrectCount int
	TotalCorrect   int
	PointsAwarded  float64

	// RunningScore is the cumulative score after this result was applied.
	// Score leaves it zero; the session fills it in.
	RunningScore float64

	// CorrectAnswers and Selected are sorted option indices, kept for
	// highlighting.
	CorrectAnswers []int
	Selected       []int
}

// IsCorrectOption reports whether option i is one of the correct answers.
func (r Result) IsCorrectOption(i int) bool {
	return contains(r.CorrectAnswers, i)
}

// IsSelected reports whether option i was part of the submission.
func (r Result) IsSelected(i int) bool {
	return contains(r.Selected, i)
}

// Score grades selected against q. Duplicate indices count once. Score is
// pure: applying PointsAwarded to a running total is the caller's job.
func Score(q Question, selected []int) Result {
	sel := normalize(selected)
	correct := q.CorrectAnswers()

	res := Result{
		TotalCorrect:   len(correct),
		CorrectAnswers: correct,
		Selected:       sel,
	}
	if len(sel) == 0 {
		res.Outcome = NeedsSelection
		return res
	}

	for _, i := range sel {
		if contains(correct, i) {
			res.CorrectCount++
		}
	}
	res.IncorrectCount = len(sel) - res.CorrectCount
	res.PointsAwarded = float64(res.CorrectCount)*PointsPerOption - float64(res.IncorrectCount)*PointsPerOption

	switch {
	case res.CorrectCount == res.TotalCorrect && res.IncorrectCount == 0:
		res.Outcome = Perfect
	case res.CorrectCount == 0 && res.IncorrectCount > 0:
		res.Outcome = TotallyIncorrect
	default:
		res.Outcome = Partial
	}
	return res
}

// ValidSelection reports whether every index in selected addresses an
// option of q.
func ValidSelection(q Question, selected []int) bool {
	for _, i := range selected {
		if i < 0 || i >= len(q.Options) {
			return false
		}
	}
	return true
}

// normalize returns a sorted copy of selected without duplicates.
func normalize(selected []int) []int {
	if len(selected) == 0 {
		return nil
	}
	out := make([]int, len(selected))
	copy(out, selected)
	sort.Ints(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}

func contains(sorted []int, v int) bool {
	i := sort.SearchInts(sorted, v)
	return i < len(sorted) && sorted[i] == v
}

package quiz

import "fmt"

// Feedback returns the one-line verdict shown after a submission.
func Feedback(r Result) string {
	switch r.Outcome {
	case NeedsSelection:
		return "Please select at least one option!"
	case Perfect:
		return fmt.Sprintf("Perfect! You selected all %d correct answers.", r.TotalCorrect)
	case TotallyIncorrect:
		return fmt.Sprintf("Incorrect. You selected %d wrong answers.", r.IncorrectCount)
	default:
		return fmt.Sprintf("You selected %d correct answer(s) out of %d. Wrong selections: %d.",
			r.CorrectCount, r.TotalCorrect, r.IncorrectCount)
	}
}

// Summary returns the running-score line shown under the verdict.
// It is empty for NeedsSelection.
func Summary(r Result) string {
	if r.Outcome == NeedsSelection {
		return ""
	}
	return fmt.Sprintf("Score: %.2f points (%d/%d correct answers).",
		r.RunningScore, r.CorrectCount, r.TotalCorrect)
}

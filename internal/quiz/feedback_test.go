package quiz

import "testing"

func TestFeedback(t *testing.T) {
	q := sampleQuestion()
	tests := []struct {
		name     string
		selected []int
		want     string
	}{
		{"needs selection", nil, "Please select at least one option!"},
		{"perfect", []int{0, 2}, "Perfect! You selected all 2 correct answers."},
		{"totally incorrect", []int{1}, "Incorrect. You selected 1 wrong answers."},
		{"partial", []int{0, 1}, "You selected 1 correct answer(s) out of 2. Wrong selections: 1."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Feedback(Score(q, tt.selected)); got != tt.want {
				t.Errorf("Feedback = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	r := Score(sampleQuestion(), []int{0})
	r.RunningScore = 1.75

	want := "Score: 1.75 points (1/2 correct answers)."
	if got := Summary(r); got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
	if got := Summary(Score(sampleQuestion(), nil)); got != "" {
		t.Errorf("Summary for NeedsSelection = %q, want empty", got)
	}
}

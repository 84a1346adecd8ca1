package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/session"
)

type fixedLoader struct {
	qs  quiz.QuestionSet
	err error
}

func (l fixedLoader) Load(context.Context) (quiz.QuestionSet, error) { return l.qs, l.err }

func twoQuestions() quiz.QuestionSet {
	return quiz.QuestionSet{
		{Text: "First?", Options: []quiz.Option{{Text: "yes", Correct: true}, {Text: "no"}, {Text: "also yes", Correct: true}}},
		{Text: "Second?", Options: []quiz.Option{{Text: "right", Correct: true}, {Text: "wrong"}}},
	}
}

func run(t *testing.T, input string, l session.Loader) (string, *session.SessionSummary, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, false)
	sum, err := c.Run(context.Background(), session.New(), l)
	return out.String(), sum, err
}

func TestRun_FullSession(t *testing.T) {
	// Empty answer, then perfect; then a wrong answer.
	input := "\n1,3\n\n2\n\n"
	out, sum, err := run(t, input, fixedLoader{qs: twoQuestions()})
	require.NoError(t, err)

	assert.Contains(t, out, "1. First?")
	assert.Contains(t, out, "Please select at least one option!")
	assert.Contains(t, out, "Perfect! You selected all 2 correct answers.")
	assert.Contains(t, out, "Score: 0.50 points (2/2 correct answers).")
	assert.Contains(t, out, "2. Second?")
	assert.Contains(t, out, "Incorrect. You selected 1 wrong answers.")
	assert.Contains(t, out, "Quiz Completed!")
	assert.Contains(t, out, "Your final score: 0.25 points (max 0.75)")

	require.NotNil(t, sum)
	assert.Equal(t, 0.25, sum.Score)
	assert.Equal(t, 2, sum.Answered)
	assert.Equal(t, 1, sum.Perfect)
	assert.Equal(t, 1, sum.TotallyIncorrect)
}

func TestRun_BadInputRePrompts(t *testing.T) {
	input := "abc\n9\n1\n\n1\n\n"
	out, sum, err := run(t, input, fixedLoader{qs: twoQuestions()})
	require.NoError(t, err)

	assert.Contains(t, out, `"abc" is not an option number`)
	assert.Contains(t, out, "That option does not exist.")
	assert.Equal(t, 2, sum.Answered)
}

func TestRun_InputClosed(t *testing.T) {
	out, sum, err := run(t, "1\n", fixedLoader{qs: twoQuestions()})
	require.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, out, "You selected 1 correct answer(s) out of 2. Wrong selections: 0.")
	require.NotNil(t, sum)
	assert.Equal(t, 1, sum.Answered)
}

func TestRun_ReadErrorAfterAnswer(t *testing.T) {
	readErr := errors.New("terminal went away")
	in := io.MultiReader(strings.NewReader("1\n"), iotest.ErrReader(readErr))

	var out bytes.Buffer
	sum, err := New(in, &out, false).Run(context.Background(), session.New(), fixedLoader{qs: twoQuestions()})
	require.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, ErrInputClosed)
	require.NotNil(t, sum)
	assert.Equal(t, 1, sum.Answered)
}

func TestRun_LoadFailure(t *testing.T) {
	loadErr := errors.New("no such file")
	out, sum, err := run(t, "", fixedLoader{err: loadErr})
	require.ErrorIs(t, err, loadErr)
	assert.Nil(t, sum)
	assert.Contains(t, out, "Error loading quiz data.")
	assert.NotContains(t, out, "Question 1")
}

func TestRun_Highlighting(t *testing.T) {
	out, _, err := run(t, "1,2\n\n1\n\n", fixedLoader{qs: twoQuestions()})
	require.NoError(t, err)

	assert.Contains(t, out, "  1) yes ✓")
	assert.Contains(t, out, "  2) no ✗")
	assert.Contains(t, out, "  3) also yes  \n")
}

func TestRun_Color(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("1\n\n1\n\n"), &out, true)
	_, err := c.Run(context.Background(), session.New(), fixedLoader{qs: twoQuestions()})
	require.NoError(t, err)
	assert.Contains(t, out.String(), ansiGreen)
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"1,3", []int{0, 2}, false},
		{" 2 4 ", []int{1, 3}, false},
		{"1, 2,3", []int{0, 1, 2}, false},
		{"", []int{}, false},
		{"0", nil, true},
		{"x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSelection(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

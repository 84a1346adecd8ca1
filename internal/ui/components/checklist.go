package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// Checklist is a multiple-answer selector. Options are toggled with space
// at the cursor, or with a single digit for the first nine; submission is
// left to the owning screen.
type Checklist struct {
	Question quiz.Question
	Cursor   int
	checked  []bool
	result   *quiz.Result
}

// NewChecklist creates a checklist for q with nothing selected.
func NewChecklist(q quiz.Question) Checklist {
	return Checklist{
		Question: q,
		checked:  make([]bool, len(q.Options)),
	}
}

// Update handles cursor movement and toggling. It is inert once revealed.
func (c Checklist) Update(msg tea.Msg) Checklist {
	if c.result != nil {
		return c
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}

	switch k := kmsg.String(); k {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.checked)-1 {
			c.Cursor++
		}
	case "space", "x":
		c.Toggle(c.Cursor)
	default:
		if n, err := strconv.Atoi(k); err == nil {
			c.Toggle(n - 1)
		}
	}

	return c
}

// Toggle flips option i. Out-of-range indices are ignored.
func (c *Checklist) Toggle(i int) {
	if i < 0 || i >= len(c.checked) {
		return
	}
	c.checked = append([]bool(nil), c.checked...)
	c.checked[i] = !c.checked[i]
	c.Cursor = i
}

// Selected returns the checked option indices in ascending order.
func (c Checklist) Selected() []int {
	sel := []int{}
	for i, on := range c.checked {
		if on {
			sel = append(sel, i)
		}
	}
	return sel
}

// Reveal switches the checklist to its answered rendering.
func (c *Checklist) Reveal(r quiz.Result) {
	c.result = &r
}

// Revealed reports whether Reveal has been called.
func (c Checklist) Revealed() bool {
	return c.result != nil
}

// View renders the options. After Reveal, correct options are green and
// wrongly selected ones red.
func (c Checklist) View() string {
	var b strings.Builder

	for i, opt := range c.Question.Options {
		box := "[ ]"
		if c.checked[i] {
			box = "[x]"
		}

		if c.result == nil {
			prefix := "  "
			style := theme.Unselected
			if i == c.Cursor {
				prefix = "▸ "
				style = theme.Cursor
			}
			b.WriteString(style.Render(fmt.Sprintf("%s%s %d) %s", prefix, box, i+1, opt.Text)))
			b.WriteString("\n")
			continue
		}

		line := fmt.Sprintf("  %s %d) %s", box, i+1, opt.Text)
		switch {
		case c.result.IsCorrectOption(i) && c.result.IsSelected(i):
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case c.result.IsCorrectOption(i):
			b.WriteString(theme.Missed.Render(line))
		case c.result.IsSelected(i):
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		default:
			b.WriteString(theme.Dimmed.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

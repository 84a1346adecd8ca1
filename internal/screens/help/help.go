package help

import (
	"strings"

	bhelp "charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/ui/layout"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// HelpScreen lists every key binding of the screen below it.
type HelpScreen struct {
	keys bhelp.KeyMap
	help bhelp.Model
}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen for keys.
func New(keys bhelp.KeyMap) *HelpScreen {
	h := bhelp.New()
	h.ShowAll = true
	return &HelpScreen{keys: keys, help: h}
}

func (s *HelpScreen) Init() tea.Cmd {
	return nil
}

func (s *HelpScreen) Title() string {
	return "Help"
}

func (s *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "?", "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *HelpScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Card.Render(s.help.View(s.keys)), width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Each correct option picked adds 0.25 points; each wrong one subtracts 0.25."))
	return b.String()
}

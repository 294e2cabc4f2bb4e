// Package placeholder renders a stand-in screen for features that are
// unavailable, e.g. AI features without a configured provider.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/linguify/internal/screen"
	"github.com/tanvi/linguify/internal/ui/theme"
)

// PlaceholderScreen shows a title and an explanatory message.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a placeholder screen.
func New(title, message string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd { return nil }

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(p.title),
		"",
		theme.Subtitle.Render(p.message),
		"",
		theme.Hint.Render("Press Esc to go back"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

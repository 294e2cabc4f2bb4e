package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/linguify/internal/ui/theme"
)

// Selector cycles through a fixed list of options with the left and
// right arrow keys. Used for language, difficulty, and count pickers.
type Selector struct {
	Label   string
	Options []string
	Index   int
	Focused bool
}

// NewSelector creates a selector positioned on the first option.
func NewSelector(label string, options []string) Selector {
	return Selector{Label: label, Options: options}
}

// Update handles left/right cycling when focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused || len(s.Options) == 0 {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
	case "right", "l":
		s.Index = (s.Index + 1) % len(s.Options)
	}
	return s, nil
}

// Value returns the currently selected option.
func (s Selector) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index]
}

// SetValue moves the selector to the given option if present.
func (s *Selector) SetValue(value string) {
	for i, opt := range s.Options {
		if opt == value {
			s.Index = i
			return
		}
	}
}

// View renders the selector as "Label  ◂ value ▸".
func (s Selector) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	arrowStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.Focused {
		labelStyle = labelStyle.Bold(true)
		valueStyle = valueStyle.Foreground(theme.Primary).Bold(true)
		arrowStyle = arrowStyle.Foreground(theme.Primary)
	}

	return fmt.Sprintf("%s  %s %s %s",
		labelStyle.Render(s.Label),
		arrowStyle.Render("◂"),
		valueStyle.Render(s.Value()),
		arrowStyle.Render("▸"),
	)
}

// Package scoreboard implements the scoreboard screen: the top
// learners by experience.
package scoreboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/linguify/internal/account"
	sb "github.com/tanvi/linguify/internal/scoreboard"
	"github.com/tanvi/linguify/internal/screen"
	"github.com/tanvi/linguify/internal/ui/theme"
)

// ScoreboardScreen shows the ranking. It reads the account store on
// every View so awards from a just-finished quiz show up immediately.
type ScoreboardScreen struct {
	accounts *account.Store
}

var _ screen.Screen = (*ScoreboardScreen)(nil)

// New creates the scoreboard screen.
func New(accounts *account.Store) *ScoreboardScreen {
	return &ScoreboardScreen{accounts: accounts}
}

func (s *ScoreboardScreen) Init() tea.Cmd {
	return nil
}

func (s *ScoreboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *ScoreboardScreen) Title() string {
	return "Scoreboard"
}

func (s *ScoreboardScreen) View(width, height int) string {
	title := theme.Title.Render("Scoreboard")

	entries := sb.Top(s.accounts.All())

	var body string
	if len(entries) == 0 {
		body = theme.Subtitle.Render("No learners yet.")
	} else {
		body = s.renderTable(entries)
	}

	card := theme.Card.Width(min(52, width-4)).Render(body)
	content := lipgloss.JoinVertical(lipgloss.Center, title, "", card)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ScoreboardScreen) renderTable(entries []sb.Entry) string {
	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%-4s %-16s %8s %8s", "#", "Learner", "XP", "Quizzes"))

	rows := []string{header}
	for _, e := range entries {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if e.Rank == 1 {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		rows = append(rows, style.Render(
			fmt.Sprintf("%-4d %-16s %8d %8d",
				e.Rank, e.Username, e.Experience, e.CompletedQuizzes)))
	}
	return strings.Join(rows, "\n")
}

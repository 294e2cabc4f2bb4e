// Package home implements the signed-in landing screen: the main menu
// plus a snapshot of the learner's progress.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/linguify/internal/account"
	"github.com/tanvi/linguify/internal/assistant"
	"github.com/tanvi/linguify/internal/lessons"
	"github.com/tanvi/linguify/internal/llm"
	"github.com/tanvi/linguify/internal/quiz"
	"github.com/tanvi/linguify/internal/router"
	"github.com/tanvi/linguify/internal/screen"
	assistantscreen "github.com/tanvi/linguify/internal/screens/assistant"
	"github.com/tanvi/linguify/internal/screens/auth"
	lessonscreen "github.com/tanvi/linguify/internal/screens/lesson"
	"github.com/tanvi/linguify/internal/screens/placeholder"
	quizscreen "github.com/tanvi/linguify/internal/screens/quiz"
	roadmapscreen "github.com/tanvi/linguify/internal/screens/roadmap"
	scoreboardscreen "github.com/tanvi/linguify/internal/screens/scoreboard"
	"github.com/tanvi/linguify/internal/store"
	"github.com/tanvi/linguify/internal/ui/components"
	"github.com/tanvi/linguify/internal/ui/theme"
)

// Deps carries everything the home screen and its children need.
// Provider and the services built on it are nil when no LLM is
// configured; AI entries then open a placeholder.
type Deps struct {
	Username   string
	Accounts   *account.Store
	Engine     *quiz.Engine
	Provider   llm.Provider
	Lessons    *lessons.Generator
	Assistant  *assistant.Assistant
	EventRepo  store.EventRepo
	RoadmapDir string
}

// HomeScreen is the main menu after sign-in.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

func aiUnavailable(title string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: placeholder.New(title,
				"No LLM provider is configured. Set LINGUIFY_LLM_PROVIDER and an API key.")}
		}
	}
}

// New creates the home screen for a signed-in user.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "TAKE A QUIZ", Action: func() tea.Cmd {
			if deps.Engine == nil {
				return aiUnavailable("Quiz")()
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(deps.Username, deps.Accounts, deps.Engine, deps.Provider, deps.EventRepo),
				}
			}
		}},
		{Label: "LESSONS", Action: func() tea.Cmd {
			if deps.Lessons == nil {
				return aiUnavailable("Lessons")()
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessonscreen.New(deps.Lessons)}
			}
		}},
		{Label: "TEACHING ASSISTANT", Action: func() tea.Cmd {
			if deps.Assistant == nil {
				return aiUnavailable("Teaching Assistant")()
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: assistantscreen.New(deps.Assistant)}
			}
		}},
		{Label: "STUDY ROADMAP", Action: func() tea.Cmd {
			if deps.Provider == nil {
				return aiUnavailable("Study Roadmap")()
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roadmapscreen.New(deps.Provider, deps.RoadmapDir)}
			}
		}},
		{Label: "SCOREBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: scoreboardscreen.New(deps.Accounts)}
			}
		}},
		{Label: "SIGN OUT", Action: func() tea.Cmd {
			return func() tea.Msg { return auth.SignedOutMsg{} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	acct, err := h.deps.Accounts.Get(h.deps.Username)
	if err != nil {
		acct = &account.Account{Username: h.deps.Username, Level: 1}
	}

	greeting := theme.Title.Render("Hola, " + acct.Username + "!")

	stats := h.renderStats(acct, min(52, width-4))
	menu := theme.Card.Width(min(52, width-4)).Render(h.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Center,
		greeting, "", stats, "", menu)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats(acct *account.Account, width int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	lines := []string{
		label.Render("Level            ") + value.Render(fmt.Sprintf("%d", acct.Level)),
		label.Render("Experience       ") + value.Render(fmt.Sprintf("%d XP", acct.Experience)),
		label.Render("Streak           ") + value.Render(fmt.Sprintf("%d", acct.Streak)),
		label.Render("Quizzes finished ") + value.Render(fmt.Sprintf("%d", acct.CompletedQuizzes)),
	}
	if len(acct.WeakAreas) > 0 {
		lines = append(lines,
			label.Render("Focus on         ")+
				lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Join(acct.WeakAreas, ", ")))
	}

	// Experience toward the next level.
	bar := components.NewProgressBar("", float64(acct.Experience)/100, true, width-6)
	lines = append(lines, "", bar.View())

	return theme.Card.Width(width).Render(strings.Join(lines, "\n"))
}

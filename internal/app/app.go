package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/linguify/internal/account"
	"github.com/tanvi/linguify/internal/assistant"
	"github.com/tanvi/linguify/internal/lessons"
	"github.com/tanvi/linguify/internal/llm"
	"github.com/tanvi/linguify/internal/quiz"
	"github.com/tanvi/linguify/internal/router"
	"github.com/tanvi/linguify/internal/screen"
	"github.com/tanvi/linguify/internal/screens/auth"
	"github.com/tanvi/linguify/internal/screens/home"
	"github.com/tanvi/linguify/internal/store"
	"github.com/tanvi/linguify/internal/ui/layout"
)

// Options carries the services the UI is built on. Provider and the
// services derived from it may be nil when no LLM is configured.
type Options struct {
	Accounts   *account.Store
	Engine     *quiz.Engine
	Provider   llm.Provider
	Lessons    *lessons.Generator
	Assistant  *assistant.Assistant
	EventRepo  store.EventRepo
	RoadmapDir string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	user   string
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the sign-in screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(auth.New(opts.Accounts)),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) homeDeps() home.Deps {
	return home.Deps{
		Username:   m.user,
		Accounts:   m.opts.Accounts,
		Engine:     m.opts.Engine,
		Provider:   m.opts.Provider,
		Lessons:    m.opts.Lessons,
		Assistant:  m.opts.Assistant,
		EventRepo:  m.opts.EventRepo,
		RoadmapDir: m.opts.RoadmapDir,
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case auth.SignedInMsg:
		// Replace rather than push so Esc cannot back into the
		// credentials form.
		m.user = msg.Username
		cmd := m.router.Update(router.ReplaceScreenMsg{Screen: home.New(m.homeDeps())})
		return m, cmd

	case auth.SignedOutMsg:
		m.user = ""
		signIn := auth.New(m.opts.Accounts)
		m.router = router.New(signIn)
		return m, signIn.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	level, experience, streak := 0, 0, 0
	if m.user != "" {
		if acct, err := m.opts.Accounts.Get(m.user); err == nil {
			level = acct.Level
			experience = acct.Experience
			streak = acct.Streak
		}
	}
	header := layout.RenderHeader(title, level, experience, streak, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		return provider.KeyHints()
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

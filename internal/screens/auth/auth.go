// Package auth implements the sign-in / sign-up screen shown before
// anything else in the app.
package auth

import (
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/linguify/internal/account"
	"github.com/tanvi/linguify/internal/screen"
	"github.com/tanvi/linguify/internal/ui/components"
	"github.com/tanvi/linguify/internal/ui/layout"
	"github.com/tanvi/linguify/internal/ui/theme"
)

// SignedInMsg announces a successful sign-in or sign-up. The app model
// intercepts it and swaps in the home screen.
type SignedInMsg struct {
	Username string
}

// SignedOutMsg announces a sign-out from the home screen. The app
// model intercepts it and returns to a fresh auth screen.
type SignedOutMsg struct{}

type mode int

const (
	modeSignIn mode = iota
	modeSignUp
)

const (
	fieldUsername = iota
	fieldPassword
)

// AuthScreen collects credentials against the account store.
type AuthScreen struct {
	accounts *account.Store
	mode     mode
	focused  int
	username components.TextInput
	password components.TextInput
	errMsg   string
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates the auth screen in sign-in mode.
func New(accounts *account.Store) *AuthScreen {
	s := &AuthScreen{accounts: accounts}
	s.resetInputs()
	return s
}

func (s *AuthScreen) resetInputs() {
	s.username = components.NewTextInput("Username", false, 32)
	s.password = components.NewTextInput("Password", false, 64)
	s.password.Model.EchoMode = textinput.EchoPassword
	s.password.Model.Blur()
	s.focused = fieldUsername
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.username.Init()
}

func (s *AuthScreen) Title() string {
	if s.mode == modeSignUp {
		return "Sign Up"
	}
	return "Sign In"
}

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch mode"},
		{Key: "↑↓", Description: "Field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardToFocused(msg)
	}

	switch kmsg.String() {
	case "tab":
		if s.mode == modeSignIn {
			s.mode = modeSignUp
		} else {
			s.mode = modeSignIn
		}
		s.errMsg = ""
		return s, nil

	case "up", "down":
		s.errMsg = ""
		if s.focused == fieldUsername {
			s.focused = fieldPassword
			s.username.Model.Blur()
			return s, s.password.Model.Focus()
		}
		s.focused = fieldUsername
		s.password.Model.Blur()
		return s, s.username.Model.Focus()

	case "enter":
		return s.submit()
	}

	return s.forwardToFocused(msg)
}

func (s *AuthScreen) forwardToFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if s.focused == fieldUsername {
		s.username, cmd = s.username.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *AuthScreen) submit() (screen.Screen, tea.Cmd) {
	username := strings.TrimSpace(s.username.Value())
	password := s.password.Value()

	if username == "" || password == "" {
		s.errMsg = "Please enter both username and password."
		return s, nil
	}

	var err error
	if s.mode == modeSignUp {
		_, err = s.accounts.SignUp(username, password)
	} else {
		_, err = s.accounts.SignIn(username, password)
	}

	switch {
	case err == nil:
		return s, func() tea.Msg { return SignedInMsg{Username: username} }
	case errors.Is(err, account.ErrUsernameTaken):
		s.errMsg = "Username already exists."
	case errors.Is(err, account.ErrMissingCredentials):
		s.errMsg = "Please enter both username and password."
	case errors.Is(err, account.ErrInvalidCredentials):
		s.errMsg = "Invalid username or password."
	default:
		s.errMsg = err.Error()
	}
	return s, nil
}

func (s *AuthScreen) View(width, height int) string {
	title := theme.Title.Render("Welcome to Linguify")
	subtitle := theme.Subtitle.Render("Learn a language, one quiz at a time")

	tabs := s.renderTabs()

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.fieldLabel("Username", s.focused == fieldUsername),
		s.username.View(),
		"",
		s.fieldLabel("Password", s.focused == fieldPassword),
		s.password.View(),
	)

	card := theme.Card.Width(min(48, width-4)).Render(
		lipgloss.JoinVertical(lipgloss.Left, tabs, "", form),
	)

	sections := []string{title, subtitle, "", card}
	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AuthScreen) renderTabs() string {
	signIn := "Sign In"
	signUp := "Sign Up"
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(theme.TextDim)

	if s.mode == modeSignIn {
		return active.Render(signIn) + inactive.Render("    "+signUp)
	}
	return inactive.Render(signIn+"    ") + active.Render(signUp)
}

func (s *AuthScreen) fieldLabel(label string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render(label)
}

// Package assistant implements the teaching assistant screen: practice
// exercises on demand and free-form questions about the language.
package assistant

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	asst "github.com/tanvi/linguify/internal/assistant"
	"github.com/tanvi/linguify/internal/languages"
	"github.com/tanvi/linguify/internal/screen"
	"github.com/tanvi/linguify/internal/ui/components"
	"github.com/tanvi/linguify/internal/ui/layout"
	"github.com/tanvi/linguify/internal/ui/theme"
)

type mode int

const (
	modeExercise mode = iota
	modeChat
)

const (
	fieldType = iota
	fieldTarget
	fieldTopic
	numExerciseFields
)

type responseMsg struct {
	Text string
	Err  error
}

// AssistantScreen offers exercises and Q&A backed by the assistant
// service.
type AssistantScreen struct {
	assistant *asst.Assistant

	mode    mode
	focused int
	busy    bool

	exerciseType components.Selector
	target       components.Selector
	topic        components.TextInput
	question     components.TextInput

	response string
	errMsg   string
}

var _ screen.Screen = (*AssistantScreen)(nil)
var _ screen.KeyHintProvider = (*AssistantScreen)(nil)

// New creates the assistant screen in exercise mode.
func New(assistant *asst.Assistant) *AssistantScreen {
	types := make([]string, len(asst.ExerciseTypes))
	for i, t := range asst.ExerciseTypes {
		types[i] = string(t)
	}

	s := &AssistantScreen{
		assistant:    assistant,
		exerciseType: components.NewSelector("Exercise", types),
		target:       components.NewSelector("Language", languages.World),
		topic:        components.NewTextInput("e.g. past tense verbs", false, 64),
		question:     components.NewTextInput("Ask anything about the language...", false, 200),
	}
	s.target.SetValue("Spanish")
	s.exerciseType.Focused = true
	s.topic.Model.Blur()
	s.question.Model.Blur()
	return s
}

func (s *AssistantScreen) Init() tea.Cmd {
	return nil
}

func (s *AssistantScreen) Title() string {
	return "Teaching Assistant"
}

func (s *AssistantScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch mode"},
	}
	if s.mode == modeExercise {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Field"},
			layout.KeyHint{Key: "◂▸", Description: "Change"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Ask"},
		layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *AssistantScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case responseMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = "The assistant is unavailable: " + msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.response = msg.Text
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardInput(msg)
}

func (s *AssistantScreen) forwardInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if s.mode == modeChat {
		s.question, cmd = s.question.Update(msg)
	} else if s.focused == fieldTopic {
		s.topic, cmd = s.topic.Update(msg)
	}
	return s, cmd
}

func (s *AssistantScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}

	switch msg.String() {
	case "tab":
		return s.switchMode()
	case "enter":
		return s.submit()
	case "up", "down":
		if s.mode == modeExercise {
			delta := 1
			if msg.String() == "up" {
				delta = -1
			}
			return s.moveFocus(delta)
		}
	}

	var cmd tea.Cmd
	if s.mode == modeChat {
		s.question, cmd = s.question.Update(msg)
		return s, cmd
	}
	switch s.focused {
	case fieldType:
		s.exerciseType, cmd = s.exerciseType.Update(msg)
	case fieldTarget:
		s.target, cmd = s.target.Update(msg)
	case fieldTopic:
		s.topic, cmd = s.topic.Update(msg)
	}
	return s, cmd
}

func (s *AssistantScreen) switchMode() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	s.response = ""
	if s.mode == modeExercise {
		s.mode = modeChat
		s.topic.Model.Blur()
		return s, s.question.Model.Focus()
	}
	s.mode = modeExercise
	s.question.Model.Blur()
	if s.focused == fieldTopic {
		return s, s.topic.Model.Focus()
	}
	return s, nil
}

func (s *AssistantScreen) moveFocus(delta int) (screen.Screen, tea.Cmd) {
	s.setFocus(s.focused, false)
	s.focused = (s.focused + delta + numExerciseFields) % numExerciseFields
	s.setFocus(s.focused, true)

	if s.focused == fieldTopic {
		return s, s.topic.Model.Focus()
	}
	s.topic.Model.Blur()
	return s, nil
}

func (s *AssistantScreen) setFocus(field int, focused bool) {
	switch field {
	case fieldType:
		s.exerciseType.Focused = focused
	case fieldTarget:
		s.target.Focused = focused
	}
}

func (s *AssistantScreen) submit() (screen.Screen, tea.Cmd) {
	assistant := s.assistant

	if s.mode == modeChat {
		question := strings.TrimSpace(s.question.Value())
		if question == "" {
			s.errMsg = "Please type a question."
			return s, nil
		}
		s.busy = true
		s.errMsg = ""
		return s, func() tea.Msg {
			text, err := assistant.Ask(context.Background(), question)
			return responseMsg{Text: text, Err: err}
		}
	}

	topic := strings.TrimSpace(s.topic.Value())
	if topic == "" {
		s.errMsg = "Please enter a topic for the exercise."
		return s, nil
	}
	s.busy = true
	s.errMsg = ""

	typ := asst.ExerciseType(s.exerciseType.Value())
	target := s.target.Value()
	return s, func() tea.Msg {
		text, err := assistant.GenerateExercise(context.Background(), topic, target, typ)
		return responseMsg{Text: text, Err: err}
	}
}

func (s *AssistantScreen) View(width, height int) string {
	title := theme.Title.Render("Teaching Assistant")
	tabs := s.renderTabs()

	var form string
	if s.mode == modeExercise {
		topicLabel := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.focused == fieldTopic {
			topicLabel = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		form = lipgloss.JoinVertical(lipgloss.Left,
			s.exerciseType.View(),
			s.target.View(),
			"",
			topicLabel.Render("Topic"),
			s.topic.View(),
		)
	} else {
		form = s.question.View()
	}

	card := theme.Card.Width(min(64, width-4)).Render(
		lipgloss.JoinVertical(lipgloss.Left, tabs, "", form))

	sections := []string{title, "", card}

	switch {
	case s.busy:
		sections = append(sections, "", theme.Hint.Render("Thinking..."))
	case s.errMsg != "":
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	case s.response != "":
		answer := theme.Card.Width(min(68, width-4)).Render(
			lipgloss.NewStyle().Foreground(theme.Text).Width(min(64, width-8)).Render(s.response))
		sections = append(sections, "", answer)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssistantScreen) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(theme.TextDim)

	if s.mode == modeExercise {
		return active.Render("Exercises") + inactive.Render("    Chat")
	}
	return inactive.Render("Exercises    ") + active.Render("Chat")
}

// Package lesson implements the lesson screen: pick a topic and
// languages, then browse the generated vocabulary, grammar, and
// culture rows.
package lesson

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/linguify/internal/languages"
	"github.com/tanvi/linguify/internal/lessons"
	"github.com/tanvi/linguify/internal/screen"
	"github.com/tanvi/linguify/internal/ui/components"
	"github.com/tanvi/linguify/internal/ui/layout"
	"github.com/tanvi/linguify/internal/ui/theme"
)

type phase int

const (
	phaseSetup phase = iota
	phaseLoading
	phaseTable
)

const (
	fieldNative = iota
	fieldTarget
	fieldTopic
	numFields
)

type lessonReadyMsg struct {
	Rows []lessons.Row
	Err  error
}

// LessonScreen drives one lesson from setup to the row table.
type LessonScreen struct {
	generator *lessons.Generator

	phase   phase
	focused int

	native components.Selector
	target components.Selector
	topic  components.TextInput

	rows   []lessons.Row
	cursor int

	errMsg string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates the lesson screen in the setup phase.
func New(generator *lessons.Generator) *LessonScreen {
	s := &LessonScreen{
		generator: generator,
		native:    components.NewSelector("Native language", languages.World),
		target:    components.NewSelector("Learning", languages.World),
		topic:     components.NewTextInput("e.g. ordering at a restaurant", false, 64),
	}
	s.target.SetValue("Spanish")
	s.native.Focused = true
	s.topic.Model.Blur()
	return s
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return "Lessons"
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSetup:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Field"},
			{Key: "◂▸", Description: "Change"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseTable:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Browse"},
			{Key: "Enter", Description: "New lesson"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		return s.handleLessonReady(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseSetup && s.focused == fieldTopic {
		var cmd tea.Cmd
		s.topic, cmd = s.topic.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseSetup:
		switch key {
		case "up":
			return s.moveFocus(-1)
		case "down":
			return s.moveFocus(1)
		case "enter":
			return s.startGeneration()
		}
		var cmd tea.Cmd
		switch s.focused {
		case fieldNative:
			s.native, cmd = s.native.Update(msg)
		case fieldTarget:
			s.target, cmd = s.target.Update(msg)
		case fieldTopic:
			s.topic, cmd = s.topic.Update(msg)
		}
		return s, cmd

	case phaseTable:
		switch key {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.rows)-1 {
				s.cursor++
			}
		case "enter":
			s.phase = phaseSetup
			s.errMsg = ""
			return s, nil
		}
	}
	return s, nil
}

func (s *LessonScreen) moveFocus(delta int) (screen.Screen, tea.Cmd) {
	s.setFocus(s.focused, false)
	s.focused = (s.focused + delta + numFields) % numFields
	s.setFocus(s.focused, true)

	if s.focused == fieldTopic {
		return s, s.topic.Model.Focus()
	}
	s.topic.Model.Blur()
	return s, nil
}

func (s *LessonScreen) setFocus(field int, focused bool) {
	switch field {
	case fieldNative:
		s.native.Focused = focused
	case fieldTarget:
		s.target.Focused = focused
	}
}

func (s *LessonScreen) startGeneration() (screen.Screen, tea.Cmd) {
	topic := strings.TrimSpace(s.topic.Value())
	if topic == "" {
		s.errMsg = "Please enter a topic."
		return s, nil
	}

	s.errMsg = ""
	s.phase = phaseLoading

	generator := s.generator
	target := s.target.Value()
	native := s.native.Value()
	return s, func() tea.Msg {
		rows, err := generator.Generate(context.Background(), topic, target, native)
		return lessonReadyMsg{Rows: rows, Err: err}
	}
}

func (s *LessonScreen) handleLessonReady(msg lessonReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseSetup
		s.errMsg = "Lesson generation failed: " + msg.Err.Error()
		return s, nil
	}
	if len(msg.Rows) == 0 {
		s.phase = phaseSetup
		s.errMsg = "The lesson came back empty. Try a different topic."
		return s, nil
	}
	s.rows = msg.Rows
	s.cursor = 0
	s.phase = phaseTable
	return s, nil
}

func (s *LessonScreen) View(width, height int) string {
	var content string
	switch s.phase {
	case phaseSetup:
		content = s.viewSetup(width)
	case phaseLoading:
		content = lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Preparing your lesson..."),
			"",
			theme.Subtitle.Render(s.target.Value()+" · "+strings.TrimSpace(s.topic.Value())),
		)
	case phaseTable:
		content = s.viewTable(width, height)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LessonScreen) viewSetup(width int) string {
	title := theme.Title.Render("New Lesson")

	topicLabel := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focused == fieldTopic {
		topicLabel = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.native.View(),
		s.target.View(),
		"",
		topicLabel.Render("Topic"),
		s.topic.View(),
	)
	card := theme.Card.Width(min(56, width-4)).Render(form)

	sections := []string{title, "", card}
	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// viewTable shows one row at a time; empty sections are skipped so a
// sparse response still reads cleanly.
func (s *LessonScreen) viewTable(width, height int) string {
	row := s.rows[s.cursor]

	header := theme.Subtitle.Render(
		fmt.Sprintf("Entry %d of %d", s.cursor+1, len(s.rows)))

	sectionWidth := min(60, width-8)
	var lines []string
	appendSection := func(label, text, translation string) {
		if text == "" {
			return
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label),
			lipgloss.NewStyle().Foreground(theme.Text).Width(sectionWidth).Render(text))
		if translation != "" {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.TextDim).Width(sectionWidth).Render(translation))
		}
	}

	appendSection("Vocabulary", row.Vocabulary, row.VocabularyTranslation)
	appendSection("Grammar", row.GrammarPoints, row.GrammarTranslation)
	appendSection("Culture", row.CulturalInsights, row.CulturalTranslation)

	card := theme.Card.Width(min(64, width-4)).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.JoinVertical(lipgloss.Center, header, "", card)
}

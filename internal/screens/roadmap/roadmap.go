// Package roadmap implements the study roadmap screen: enter a career
// goal, read the generated plan, and optionally save it to disk.
package roadmap

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tanvi/linguify/internal/llm"
	rm "github.com/tanvi/linguify/internal/roadmap"
	"github.com/tanvi/linguify/internal/screen"
	"github.com/tanvi/linguify/internal/ui/components"
	"github.com/tanvi/linguify/internal/ui/layout"
	"github.com/tanvi/linguify/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseGenerating
	phaseView
)

type roadmapReadyMsg struct {
	Roadmap string
	Err     error
}

type savedMsg struct {
	Path string
	Err  error
}

// RoadmapScreen generates a study plan for a career goal.
type RoadmapScreen struct {
	provider llm.Provider
	saveDir  string

	phase   phase
	career  components.TextInput
	roadmap string
	scroll  int
	saved   string
	errMsg  string
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates the roadmap screen. Saved roadmaps are written to dir.
func New(provider llm.Provider, dir string) *RoadmapScreen {
	return &RoadmapScreen{
		provider: provider,
		saveDir:  dir,
		career:   components.NewTextInput("e.g. Software Engineer", false, 64),
	}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return s.career.Init()
}

func (s *RoadmapScreen) Title() string {
	return "Study Roadmap"
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseView:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "S", Description: "Save"},
			{Key: "Enter", Description: "New goal"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapReadyMsg:
		if msg.Err != nil {
			s.phase = phaseInput
			s.errMsg = "Roadmap generation failed: " + msg.Err.Error()
			return s, nil
		}
		s.roadmap = msg.Roadmap
		s.scroll = 0
		s.saved = ""
		s.phase = phaseView
		return s, nil

	case savedMsg:
		if msg.Err != nil {
			s.errMsg = "Could not save: " + msg.Err.Error()
			return s, nil
		}
		s.saved = msg.Path
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseInput {
		var cmd tea.Cmd
		s.career, cmd = s.career.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *RoadmapScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseInput:
		if key == "enter" {
			return s.startGeneration()
		}
		var cmd tea.Cmd
		s.career, cmd = s.career.Update(msg)
		return s, cmd

	case phaseView:
		switch key {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "s":
			return s.save()
		case "enter":
			s.phase = phaseInput
			s.errMsg = ""
			return s, s.career.Init()
		}
	}
	return s, nil
}

func (s *RoadmapScreen) startGeneration() (screen.Screen, tea.Cmd) {
	career := strings.TrimSpace(s.career.Value())
	if career == "" {
		s.errMsg = "Please enter a career goal."
		return s, nil
	}

	s.errMsg = ""
	s.phase = phaseGenerating

	provider := s.provider
	return s, func() tea.Msg {
		roadmap, err := rm.Generate(context.Background(), provider, career)
		return roadmapReadyMsg{Roadmap: roadmap, Err: err}
	}
}

func (s *RoadmapScreen) save() (screen.Screen, tea.Cmd) {
	if s.saved != "" {
		return s, nil
	}
	career := strings.TrimSpace(s.career.Value())
	dir := s.saveDir
	roadmap := s.roadmap
	return s, func() tea.Msg {
		path, err := rm.Save(dir, career, roadmap)
		return savedMsg{Path: path, Err: err}
	}
}

func (s *RoadmapScreen) View(width, height int) string {
	switch s.phase {
	case phaseGenerating:
		content := lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Charting your roadmap..."),
			"",
			theme.Subtitle.Render(strings.TrimSpace(s.career.Value())),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)

	case phaseView:
		return s.viewRoadmap(width, height)
	}

	title := theme.Title.Render("Study Roadmap")
	subtitle := theme.Subtitle.Render("What career are you studying toward?")
	card := theme.Card.Width(min(56, width-4)).Render(s.career.View())

	sections := []string{title, subtitle, "", card}
	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *RoadmapScreen) viewRoadmap(width, height int) string {
	bodyWidth := min(72, width-8)
	wrapped := lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth).Render(s.roadmap)
	lines := strings.Split(wrapped, "\n")

	visible := height - 8
	if visible < 1 {
		visible = 1
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}

	body := theme.Card.Width(min(76, width-4)).Render(
		strings.Join(lines[s.scroll:end], "\n"))

	sections := []string{body}
	if s.saved != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Success).Render("Saved to "+s.saved))
	} else if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

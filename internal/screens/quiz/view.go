package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tanvi/linguify/internal/ui/components"
	"github.com/tanvi/linguify/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	var content string
	switch s.phase {
	case phaseSetup:
		content = s.viewSetup(width)
	case phaseGenerating:
		content = s.viewGenerating()
	case phaseQuestion:
		content = s.viewQuestion(width)
	case phaseResults:
		content = s.viewResults(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) viewSetup(width int) string {
	title := theme.Title.Render("New Quiz")

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.native.View(),
		s.target.View(),
		"",
		s.topicLabel(),
		s.topic.View(),
		"",
		s.count.View(),
		s.difficulty.View(),
	)

	card := theme.Card.Width(min(56, width-4)).Render(form)

	sections := []string{title, "", card}
	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (s *QuizScreen) topicLabel() string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.focused == fieldTopic {
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return style.Render("Topic")
}

func (s *QuizScreen) viewGenerating() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Generating your quiz..."),
		"",
		theme.Subtitle.Render(fmt.Sprintf("%s, %s questions about %s",
			s.difficulty.Value(), s.count.Value(), s.params().Topic)),
	)
}

func (s *QuizScreen) viewQuestion(width int) string {
	q := s.quiz.Questions[s.current]

	total := len(s.quiz.Questions)
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.current+1, total),
		float64(s.current)/float64(total), false, min(60, width-8))
	progressLine := bar.View()
	questionText := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(64, width-8)).
		Render(q.Text)

	var answerArea string
	if len(q.Choices) > 0 {
		answerArea = s.choices.View()
	} else {
		answerArea = s.input.View()
	}

	sections := []string{progressLine, "", questionText, "", answerArea}

	if s.hinting {
		sections = append(sections, "", theme.Hint.Render("Thinking of a hint..."))
	} else if s.hint != "" {
		hint := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(min(64, width-8)).
			Render("Hint: " + s.hint)
		sections = append(sections, "", hint)
	}

	card := theme.Card.Width(min(68, width-4)).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
	return card
}

func (s *QuizScreen) viewResults(width int) string {
	title := theme.Title.Render("Quiz Complete!")

	acct, err := s.accounts.Get(s.username)
	summary := []string{
		fmt.Sprintf("Score        %d / %d  (%.0f%%)",
			s.result.Correct, s.result.Total, s.result.Accuracy()*100),
	}
	if err == nil {
		summary = append(summary,
			fmt.Sprintf("Experience   %d XP  (+%d)", acct.Experience, acct.Experience-s.xpBefore))
		if acct.Level > s.levelBefore {
			summary = append(summary, fmt.Sprintf("Level up!    Now level %d", acct.Level))
		}
	}
	summary = append(summary,
		fmt.Sprintf("Next time    try %s", s.nextDifficulty))

	statStyle := lipgloss.NewStyle().Foreground(theme.Text)
	statCard := theme.Card.Width(min(56, width-4)).Render(
		statStyle.Render(strings.Join(summary, "\n")))

	sections := []string{title, "", statCard}

	if s.analyzing {
		sections = append(sections, "", theme.Hint.Render("Analyzing your weak areas..."))
	} else if len(s.weakAreas) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Accent).Render(
				"Focus on: "+strings.Join(s.weakAreas, ", ")))
	}

	if review := s.viewMissed(width); review != "" {
		sections = append(sections, "", review)
	}

	sections = append(sections, "", theme.Hint.Render("Press Enter to return home"))
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// viewMissed lists each missed question with the correct answer and
// its explanation, when one was generated.
func (s *QuizScreen) viewMissed(width int) string {
	if len(s.result.Missed) == 0 {
		return ""
	}

	question := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	answer := lipgloss.NewStyle().Foreground(theme.Success)
	explanation := lipgloss.NewStyle().Foreground(theme.TextDim)

	var lines []string
	for _, q := range s.result.Missed {
		lines = append(lines, question.Render(q.Text))
		lines = append(lines, answer.Render("Answer: "+q.Answer))
		if q.Explanation != "" {
			lines = append(lines, explanation.Render(q.Explanation))
		}
		lines = append(lines, "")
	}
	lines = lines[:len(lines)-1]

	return theme.Card.Width(min(68, width-4)).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

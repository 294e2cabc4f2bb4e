// Package quiz implements the quiz flow: the setup form, the
// generation wait, answering question by question, and the results
// summary with progress updates.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/tanvi/linguify/internal/account"
	"github.com/tanvi/linguify/internal/languages"
	"github.com/tanvi/linguify/internal/llm"
	"github.com/tanvi/linguify/internal/progress"
	qz "github.com/tanvi/linguify/internal/quiz"
	"github.com/tanvi/linguify/internal/router"
	"github.com/tanvi/linguify/internal/screen"
	"github.com/tanvi/linguify/internal/store"
	"github.com/tanvi/linguify/internal/ui/components"
	"github.com/tanvi/linguify/internal/ui/layout"
)

type phase int

const (
	phaseSetup phase = iota
	phaseGenerating
	phaseQuestion
	phaseResults
)

// Setup form field order.
const (
	fieldNative = iota
	fieldTarget
	fieldTopic
	fieldCount
	fieldDifficulty
	numSetupFields
)

// QuizScreen drives one quiz from setup to results.
type QuizScreen struct {
	username  string
	accounts  *account.Store
	engine    *qz.Engine
	provider  llm.Provider
	eventRepo store.EventRepo

	phase   phase
	focused int

	native     components.Selector
	target     components.Selector
	topic      components.TextInput
	count      components.Selector
	difficulty components.Selector

	quiz    *qz.Quiz
	current int
	answers []qz.Answer
	input   components.TextInput
	choices components.ChoiceList
	hint    string
	hinting bool

	result         qz.Result
	xpBefore       int
	levelBefore    int
	nextDifficulty progress.Difficulty
	weakAreas      []string
	analyzing      bool

	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen in the setup phase. The difficulty
// selector starts at the level suggested by the user's last quiz.
func New(username string, accounts *account.Store, engine *qz.Engine, provider llm.Provider, eventRepo store.EventRepo) *QuizScreen {
	counts := make([]string, 0, qz.MaxQuestions-qz.MinQuestions+1)
	for n := qz.MinQuestions; n <= qz.MaxQuestions; n++ {
		counts = append(counts, fmt.Sprintf("%d", n))
	}

	diffs := make([]string, len(progress.Difficulties))
	for i, d := range progress.Difficulties {
		diffs[i] = string(d)
	}

	s := &QuizScreen{
		username:   username,
		accounts:   accounts,
		engine:     engine,
		provider:   provider,
		eventRepo:  eventRepo,
		native:     components.NewSelector("Native language", languages.World),
		target:     components.NewSelector("Learning", languages.World),
		topic:      components.NewTextInput("e.g. food, travel, greetings", false, 64),
		count:      components.NewSelector("Questions", counts),
		difficulty: components.NewSelector("Difficulty", diffs),
	}
	s.count.SetValue("10")
	s.difficulty.SetValue(string(progress.Medium))
	s.target.SetValue("Spanish")
	s.native.Focused = true
	s.topic.Model.Blur()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSetup:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Field"},
			{Key: "◂▸", Description: "Change"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Esc", Description: "Abandon"},
		}
	case phaseResults:
		return []layout.KeyHint{
			{Key: "Enter/Esc", Description: "Done"},
		}
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)
	case hintMsg:
		return s.handleHint(msg)
	case weakAreasMsg:
		return s.handleWeakAreas(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardInput(msg)
}

func (s *QuizScreen) forwardInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.phase {
	case phaseSetup:
		if s.focused == fieldTopic {
			s.topic, cmd = s.topic.Update(msg)
		}
	case phaseQuestion:
		if s.questionKind() != qz.KindMultipleChoice {
			s.input, cmd = s.input.Update(msg)
		}
	}
	return s, cmd
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseSetup:
		return s.handleSetupKey(msg, key)
	case phaseGenerating:
		return s, nil
	case phaseQuestion:
		return s.handleQuestionKey(msg, key)
	case phaseResults:
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *QuizScreen) handleSetupKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
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
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	case fieldDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	}
	return s, cmd
}

func (s *QuizScreen) moveFocus(delta int) (screen.Screen, tea.Cmd) {
	s.setFocus(s.focused, false)
	s.focused = (s.focused + delta + numSetupFields) % numSetupFields
	s.setFocus(s.focused, true)

	if s.focused == fieldTopic {
		return s, s.topic.Model.Focus()
	}
	s.topic.Model.Blur()
	return s, nil
}

func (s *QuizScreen) setFocus(field int, focused bool) {
	switch field {
	case fieldNative:
		s.native.Focused = focused
	case fieldTarget:
		s.target.Focused = focused
	case fieldCount:
		s.count.Focused = focused
	case fieldDifficulty:
		s.difficulty.Focused = focused
	}
}

func (s *QuizScreen) params() qz.Params {
	count := 0
	fmt.Sscanf(s.count.Value(), "%d", &count)
	return qz.Params{
		NativeLanguage: s.native.Value(),
		TargetLanguage: s.target.Value(),
		Topic:          strings.TrimSpace(s.topic.Value()),
		Count:          count,
		Difficulty:     progress.Difficulty(s.difficulty.Value()),
	}
}

func (s *QuizScreen) startGeneration() (screen.Screen, tea.Cmd) {
	params := s.params()
	if err := params.Validate(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	s.phase = phaseGenerating

	engine := s.engine
	return s, func() tea.Msg {
		quiz, err := engine.Generate(context.Background(), params)
		return quizReadyMsg{Quiz: quiz, Err: err}
	}
}

func (s *QuizScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	if msg.Err != nil {
		// Consolation point for the failed attempt.
		_ = s.accounts.Update(s.username, func(a *account.Account) {
			progress.AwardAttemptCredit(a)
		})
		s.phase = phaseSetup
		s.errMsg = "Quiz generation failed: " + msg.Err.Error()
		return s, nil
	}

	// Generation succeeded: award credit immediately, independent of
	// how the quiz is answered later.
	_ = s.accounts.Update(s.username, func(a *account.Account) {
		progress.AwardGenerationCredit(a)
	})

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendQuiz(ctx, store.QuizEventData{
			QuizID:         msg.Quiz.ID,
			Username:       s.username,
			Phase:          store.QuizGenerated,
			NativeLanguage: msg.Quiz.Params.NativeLanguage,
			TargetLanguage: msg.Quiz.Params.TargetLanguage,
			Topic:          msg.Quiz.Params.Topic,
			Difficulty:     string(msg.Quiz.Params.Difficulty),
			QuestionCount:  len(msg.Quiz.Questions),
		})
	}

	s.quiz = msg.Quiz
	s.current = 0
	s.answers = s.answers[:0]
	s.phase = phaseQuestion
	s.prepareQuestion()
	return s, s.questionCmd()
}

// questionCmd focuses the text input unless the current question is
// answered from the choice list.
func (s *QuizScreen) questionCmd() tea.Cmd {
	if s.questionKind() == qz.KindMultipleChoice {
		return nil
	}
	return s.input.Init()
}

// prepareQuestion resets the per-question inputs for s.current.
func (s *QuizScreen) prepareQuestion() {
	s.hint = ""
	s.hinting = false

	q := s.quiz.Questions[s.current]
	if q.Kind() == qz.KindMultipleChoice {
		s.choices = components.NewChoiceList(q.Choices)
		return
	}

	placeholder := "Type your answer..."
	if q.Kind() == qz.KindFillBlank && q.BlankCount() > 1 {
		placeholder = "Fill each blank, separated by commas..."
	}
	s.input = components.NewTextInput(placeholder, false, 80)
}

func (s *QuizScreen) questionKind() qz.Kind {
	if s.quiz == nil || s.current >= len(s.quiz.Questions) {
		return qz.KindFreeText
	}
	return s.quiz.Questions[s.current].Kind()
}

func (s *QuizScreen) handleQuestionKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter":
		return s.submitAnswer()
	case "tab":
		return s.requestHint()
	}

	var cmd tea.Cmd
	if s.questionKind() == qz.KindMultipleChoice {
		s.choices, cmd = s.choices.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *QuizScreen) requestHint() (screen.Screen, tea.Cmd) {
	if s.hinting || s.hint != "" || s.provider == nil {
		return s, nil
	}
	s.hinting = true

	provider := s.provider
	index := s.current
	question := s.quiz.Questions[index].Text
	targetLanguage := s.quiz.Params.TargetLanguage

	return s, func() tea.Msg {
		hint, err := qz.Hint(context.Background(), provider, question, targetLanguage)
		return hintMsg{QuestionIndex: index, Hint: hint, Err: err}
	}
}

func (s *QuizScreen) handleHint(msg hintMsg) (screen.Screen, tea.Cmd) {
	// Drop hints that arrive after the question has advanced.
	if s.phase != phaseQuestion || msg.QuestionIndex != s.current {
		return s, nil
	}
	s.hinting = false
	if msg.Err != nil {
		s.hint = "No hint available right now."
		return s, nil
	}
	s.hint = msg.Hint
	return s, nil
}

func (s *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.quiz.Questions[s.current]

	var answer qz.Answer
	switch q.Kind() {
	case qz.KindMultipleChoice:
		answer.Text = s.choices.Value()
	case qz.KindFillBlank:
		if q.BlankCount() > 1 {
			for _, part := range strings.Split(s.input.Value(), ",") {
				answer.Parts = append(answer.Parts, strings.TrimSpace(part))
			}
		} else {
			answer.Text = s.input.Value()
		}
	default:
		answer.Text = s.input.Value()
	}
	s.answers = append(s.answers, answer)

	if s.current+1 < len(s.quiz.Questions) {
		s.current++
		s.prepareQuestion()
		return s, s.questionCmd()
	}

	return s.finishQuiz()
}

func (s *QuizScreen) finishQuiz() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	s.result = qz.Grade(s.quiz, s.answers)

	if before, err := s.accounts.Get(s.username); err == nil {
		s.xpBefore = before.Experience
		s.levelBefore = before.Level
	}

	_ = s.accounts.Update(s.username, func(a *account.Account) {
		progress.Apply(a, s.result.Correct, s.result.Total)
	})

	s.nextDifficulty = progress.NextDifficulty(
		s.quiz.Params.Difficulty, s.result.Accuracy())

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendQuiz(ctx, store.QuizEventData{
			QuizID:         s.quiz.ID,
			Username:       s.username,
			Phase:          store.QuizGraded,
			NativeLanguage: s.quiz.Params.NativeLanguage,
			TargetLanguage: s.quiz.Params.TargetLanguage,
			Topic:          s.quiz.Params.Topic,
			Difficulty:     string(s.quiz.Params.Difficulty),
			QuestionCount:  s.result.Total,
			Correct:        s.result.Correct,
		})
	}

	s.phase = phaseResults

	// Kick off weak-area analysis for missed questions in the
	// background; the results view fills in when it lands.
	if s.provider != nil && len(s.result.Missed) > 0 {
		s.analyzing = true
		provider := s.provider
		targetLanguage := s.quiz.Params.TargetLanguage
		missed := s.result.Missed
		return s, func() tea.Msg {
			areas, err := qz.AnalyzeWeakAreas(context.Background(), provider, targetLanguage, missed)
			return weakAreasMsg{Areas: areas, Err: err}
		}
	}
	return s, nil
}

func (s *QuizScreen) handleWeakAreas(msg weakAreasMsg) (screen.Screen, tea.Cmd) {
	s.analyzing = false
	if msg.Err != nil {
		// Analysis is garnish; show results without it.
		return s, nil
	}
	s.weakAreas = msg.Areas
	_ = s.accounts.Update(s.username, func(a *account.Account) {
		a.WeakAreas = qz.MergeWeakAreas(a.WeakAreas, msg.Areas)
	})
	return s, nil
}

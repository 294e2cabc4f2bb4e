package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tanvi/linguify/internal/account"
	"github.com/tanvi/linguify/internal/llm"
	qz "github.com/tanvi/linguify/internal/quiz"
	"github.com/tanvi/linguify/internal/screen"
	"github.com/tanvi/linguify/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents []store.QuizEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendQuiz(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// questionsJSON builds a provider response with n valid questions.
// Question i expects the answer "hola<i>".
func questionsJSON(t *testing.T, n int) json.RawMessage {
	t.Helper()
	questions := make([]qz.Question, n)
	for i := range questions {
		questions[i] = qz.Question{
			Text:        fmt.Sprintf("Greeting %d in Spanish is ___", i),
			Answer:      fmt.Sprintf("hola%d", i),
			Explanation: "A common greeting.",
		}
	}
	data, err := json.Marshal(questions)
	if err != nil {
		t.Fatalf("marshal questions: %v", err)
	}
	return data
}

func testQuizScreen(provider llm.Provider) (*QuizScreen, *account.Store, *mockEventRepo) {
	accounts := account.NewStore()
	if _, err := accounts.SignUp("tanvi", "secret"); err != nil {
		panic(err)
	}
	eventRepo := &mockEventRepo{}
	engine := qz.NewEngine(provider, qz.DefaultConfig())
	s := New("tanvi", accounts, engine, provider, eventRepo)
	return s, accounts, eventRepo
}

// fillSetup puts the setup form into a valid state for a 5-question
// quiz about food.
func fillSetup(s *QuizScreen) {
	s.topic.Model.SetValue("food")
	s.count.SetValue("5")
}

func TestQuizScreen_Title(t *testing.T) {
	s, _, _ := testQuizScreen(llm.NewMockProvider())
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_SetupRequiresTopic(t *testing.T) {
	provider := llm.NewMockProvider()
	s, _, _ := testQuizScreen(provider)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*QuizScreen)

	if ss.errMsg == "" {
		t.Error("expected a validation error for an empty topic")
	}
	if ss.phase != phaseSetup {
		t.Errorf("phase = %d, want setup", ss.phase)
	}
	if cmd != nil {
		t.Error("expected no command for invalid params")
	}
	if provider.CallCount() != 0 {
		t.Errorf("CallCount = %d, want 0", provider.CallCount())
	}
}

func TestQuizScreen_GenerationSuccess(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: questionsJSON(t, 5)})
	s, accounts, eventRepo := testQuizScreen(provider)
	fillSetup(s)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	if scr.(*QuizScreen).phase != phaseGenerating {
		t.Fatalf("phase = %d, want generating", scr.(*QuizScreen).phase)
	}

	scr, _ = scr.Update(cmd())
	ss := scr.(*QuizScreen)

	if ss.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", ss.phase)
	}
	if len(ss.quiz.Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(ss.quiz.Questions))
	}

	// Generation awards its credit before any answers.
	acc, err := accounts.Get("tanvi")
	if err != nil {
		t.Fatal(err)
	}
	if acc.Experience != 5 {
		t.Errorf("Experience = %d, want 5", acc.Experience)
	}
	if acc.CompletedQuizzes != 1 {
		t.Errorf("CompletedQuizzes = %d, want 1", acc.CompletedQuizzes)
	}

	if len(eventRepo.quizEvents) != 1 {
		t.Fatalf("quiz events = %d, want 1", len(eventRepo.quizEvents))
	}
	ev := eventRepo.quizEvents[0]
	if ev.Phase != store.QuizGenerated {
		t.Errorf("event phase = %q, want %q", ev.Phase, store.QuizGenerated)
	}
	if ev.QuestionCount != 5 {
		t.Errorf("event question count = %d, want 5", ev.QuestionCount)
	}
	if ev.Username != "tanvi" {
		t.Errorf("event username = %q, want tanvi", ev.Username)
	}
	if ev.NativeLanguage == "" || ev.TargetLanguage != "Spanish" {
		t.Errorf("event languages = %q/%q, want native set and Spanish",
			ev.NativeLanguage, ev.TargetLanguage)
	}
}

func TestQuizScreen_GenerationFailure(t *testing.T) {
	// Empty mock queue: every attempt fails, the engine gives up.
	provider := llm.NewMockProvider()
	s, accounts, eventRepo := testQuizScreen(provider)
	fillSetup(s)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(cmd())
	ss := scr.(*QuizScreen)

	if ss.phase != phaseSetup {
		t.Errorf("phase = %d, want setup after failure", ss.phase)
	}
	if ss.errMsg == "" {
		t.Error("expected an error message after failed generation")
	}

	// Failed attempts still earn the consolation point.
	acc, _ := accounts.Get("tanvi")
	if acc.Experience != 1 {
		t.Errorf("Experience = %d, want 1", acc.Experience)
	}
	if acc.CompletedQuizzes != 0 {
		t.Errorf("CompletedQuizzes = %d, want 0", acc.CompletedQuizzes)
	}
	if len(eventRepo.quizEvents) != 0 {
		t.Errorf("quiz events = %d, want 0", len(eventRepo.quizEvents))
	}
}

func TestQuizScreen_AnswerFlow(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: questionsJSON(t, 5)})
	s, accounts, eventRepo := testQuizScreen(provider)
	fillSetup(s)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(cmd())

	// Answer the first three correctly, the rest wrong.
	for i := 0; i < 5; i++ {
		ss := scr.(*QuizScreen)
		if ss.phase != phaseQuestion {
			t.Fatalf("question %d: phase = %d, want question", i, ss.phase)
		}
		answer := "wrong"
		if i < 3 {
			answer = fmt.Sprintf("hola%d", i)
		}
		ss.input.Model.SetValue(answer)
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
	}

	ss := scr.(*QuizScreen)
	if ss.phase != phaseResults {
		t.Fatalf("phase = %d, want results", ss.phase)
	}
	if ss.result.Correct != 3 || ss.result.Total != 5 {
		t.Errorf("result = %d/%d, want 3/5", ss.result.Correct, ss.result.Total)
	}
	if len(ss.result.Missed) != 2 {
		t.Errorf("missed = %d, want 2", len(ss.result.Missed))
	}

	// Generation credit (5) plus 10 per correct answer.
	acc, _ := accounts.Get("tanvi")
	if acc.Experience != 35 {
		t.Errorf("Experience = %d, want 35", acc.Experience)
	}
	if acc.CompletedQuizzes != 2 {
		t.Errorf("CompletedQuizzes = %d, want 2", acc.CompletedQuizzes)
	}

	if len(eventRepo.quizEvents) != 2 {
		t.Fatalf("quiz events = %d, want 2", len(eventRepo.quizEvents))
	}
	graded := eventRepo.quizEvents[1]
	if graded.Phase != store.QuizGraded {
		t.Errorf("event phase = %q, want %q", graded.Phase, store.QuizGraded)
	}
	if graded.Correct != 3 {
		t.Errorf("event correct = %d, want 3", graded.Correct)
	}
}

func TestQuizScreen_Hint(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: questionsJSON(t, 5)},
		llm.MockResponse{Content: json.RawMessage("Think of a greeting.")},
	)
	s, _, _ := testQuizScreen(provider)
	fillSetup(s)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(cmd())

	scr, hintCmd := scr.Update(specialKey(tea.KeyTab))
	if hintCmd == nil {
		t.Fatal("expected a hint command")
	}
	if !scr.(*QuizScreen).hinting {
		t.Error("expected hinting state while the hint is in flight")
	}

	scr, _ = scr.Update(hintCmd())
	ss := scr.(*QuizScreen)
	if ss.hint != "Think of a greeting." {
		t.Errorf("hint = %q", ss.hint)
	}
	if ss.hinting {
		t.Error("expected hinting to be cleared")
	}
}

func TestQuizScreen_StaleHintDropped(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: questionsJSON(t, 5)})
	s, _, _ := testQuizScreen(provider)
	fillSetup(s)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(cmd())

	// A hint for question 0 arriving after advancing to question 1
	// must be ignored.
	scr.(*QuizScreen).input.Model.SetValue("hola0")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(hintMsg{QuestionIndex: 0, Hint: "stale"})

	if got := scr.(*QuizScreen).hint; got != "" {
		t.Errorf("hint = %q, want empty", got)
	}
}

func TestQuizScreen_WeakAreasMerged(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: questionsJSON(t, 5)})
	s, accounts, _ := testQuizScreen(provider)
	fillSetup(s)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(cmd())

	for i := 0; i < 5; i++ {
		scr.(*QuizScreen).input.Model.SetValue("wrong")
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
	}

	if !scr.(*QuizScreen).analyzing {
		t.Fatal("expected analysis to be running with missed questions")
	}

	scr, _ = scr.Update(weakAreasMsg{Areas: []string{"greetings", "vocabulary"}})
	ss := scr.(*QuizScreen)
	if ss.analyzing {
		t.Error("expected analysis to be finished")
	}

	acc, _ := accounts.Get("tanvi")
	if len(acc.WeakAreas) != 2 {
		t.Errorf("weak areas = %v, want 2 entries", acc.WeakAreas)
	}
}

func TestQuizScreen_View(t *testing.T) {
	s, _, _ := testQuizScreen(llm.NewMockProvider())
	if s.View(80, 24) == "" {
		t.Error("expected non-empty setup view")
	}
}

package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"quiz-gen", "hint", "quiz-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    50,
			Success:      true,
			RequestBody:  "[user]\nprompt",
			ResponseBody: "response",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not ordered newest first: %d then %d",
			events[0].Sequence, events[1].Sequence)
	}
	if events[0].RequestBody != "[user]\nprompt" {
		t.Errorf("RequestBody = %q", events[0].RequestBody)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d events with limit 2", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock",
		Model:    "mock",
		Purpose:  "chat",
		Success:  true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "chat" {
		t.Fatalf("got %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 40, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 60, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "hint", InputTokens: 10, OutputTokens: 5, LatencyMs: 20, Success: true},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}

	byPurpose := map[string]PurposeUsage{}
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}

	quizGen := byPurpose["quiz-gen"]
	if quizGen.Calls != 2 || quizGen.InputTokens != 200 || quizGen.OutputTokens != 100 {
		t.Errorf("quiz-gen usage = %+v", quizGen)
	}
	if quizGen.AvgLatencyMs != 50 {
		t.Errorf("quiz-gen avg latency = %d, want 50", quizGen.AvgLatencyMs)
	}
	if byPurpose["hint"].Calls != 1 {
		t.Errorf("hint usage = %+v", byPurpose["hint"])
	}
}

func TestAppendQuiz(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuiz(ctx, QuizEventData{
		QuizID:         "q-1",
		Username:       "tanvi",
		Phase:          QuizGenerated,
		NativeLanguage: "English",
		TargetLanguage: "Spanish",
		Topic:          "food",
		Difficulty:     "Medium",
		QuestionCount:  10,
	})
	if err != nil {
		t.Fatalf("append generated: %v", err)
	}

	err = repo.AppendQuiz(ctx, QuizEventData{
		QuizID:         "q-1",
		Username:       "tanvi",
		Phase:          QuizGraded,
		NativeLanguage: "English",
		TargetLanguage: "Spanish",
		Topic:          "food",
		Difficulty:     "Medium",
		QuestionCount:  10,
		Correct:        7,
	})
	if err != nil {
		t.Fatalf("append graded: %v", err)
	}

	count, err := s.Client().QuizEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("quiz events = %d, want 2", count)
	}

	stored, err := s.Client().QuizEvent.Query().First(ctx)
	if err != nil {
		t.Fatalf("query first: %v", err)
	}
	if stored.Username != "tanvi" {
		t.Errorf("Username = %q, want tanvi", stored.Username)
	}
	if stored.NativeLanguage != "English" {
		t.Errorf("NativeLanguage = %q, want English", stored.NativeLanguage)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "quiz_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

package scoreboard

import (
	"fmt"
	"testing"

	"github.com/tanvi/linguify/internal/account"
)

func acct(name string, xp, quizzes int) *account.Account {
	return &account.Account{Username: name, Experience: xp, CompletedQuizzes: quizzes}
}

func TestRank_SortsByExperienceDescending(t *testing.T) {
	entries := Rank([]*account.Account{
		acct("a", 50, 2),
		acct("b", 120, 4),
		acct("c", 50, 1),
	})

	want := []struct {
		rank int
		name string
	}{
		{1, "b"},
		{2, "a"}, // tie with c broken by sign-up order
		{3, "c"},
	}

	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Rank != w.rank || entries[i].Username != w.name {
			t.Errorf("entries[%d] = rank %d %q, want rank %d %q",
				i, entries[i].Rank, entries[i].Username, w.rank, w.name)
		}
	}
}

func TestRank_Empty(t *testing.T) {
	if entries := Rank(nil); len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestTop_TruncatesToDisplayLimit(t *testing.T) {
	var accounts []*account.Account
	for i := 0; i < 15; i++ {
		accounts = append(accounts, acct(fmt.Sprintf("u%02d", i), i*10, i))
	}

	top := Top(accounts)
	if len(top) != DisplayLimit {
		t.Fatalf("got %d entries, want %d", len(top), DisplayLimit)
	}
	if top[0].Username != "u14" {
		t.Errorf("top entry = %q, want %q", top[0].Username, "u14")
	}
	if top[0].Rank != 1 {
		t.Errorf("top rank = %d, want 1", top[0].Rank)
	}
}

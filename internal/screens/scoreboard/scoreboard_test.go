package scoreboard

import (
	"strings"
	"testing"

	"github.com/tanvi/linguify/internal/account"
)

func TestScoreboardScreen_View(t *testing.T) {
	accounts := account.NewStore()
	for _, name := range []string{"ana", "ben"} {
		if _, err := accounts.SignUp(name, "pw"); err != nil {
			t.Fatal(err)
		}
	}
	if err := accounts.Update("ben", func(a *account.Account) {
		a.Experience = 42
	}); err != nil {
		t.Fatal(err)
	}

	s := New(accounts)
	view := s.View(80, 24)

	if !strings.Contains(view, "ben") || !strings.Contains(view, "ana") {
		t.Error("expected both learners in the view")
	}
	if !strings.Contains(view, "42") {
		t.Error("expected experience column in the view")
	}
}

func TestScoreboardScreen_Empty(t *testing.T) {
	s := New(account.NewStore())
	view := s.View(80, 24)
	if !strings.Contains(view, "No learners yet.") {
		t.Error("expected empty-state message")
	}
}

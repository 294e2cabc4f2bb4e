package account

import (
	"errors"
	"testing"
)

func TestStore_SignUp(t *testing.T) {
	s := NewStore()

	acc, err := s.SignUp("maria", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Level != 1 {
		t.Errorf("new account level = %d, want 1", acc.Level)
	}
	if acc.Experience != 0 || acc.Streak != 0 || acc.CompletedQuizzes != 0 {
		t.Errorf("new account has progress: %+v", acc)
	}
}

func TestStore_SignUp_Duplicate(t *testing.T) {
	s := NewStore()
	if _, err := s.SignUp("maria", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := s.SignUp("maria", "other")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestStore_SignUp_MissingCredentials(t *testing.T) {
	s := NewStore()
	for _, pair := range [][2]string{{"", "pw"}, {"user", ""}, {"", ""}} {
		if _, err := s.SignUp(pair[0], pair[1]); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("SignUp(%q, %q): expected ErrMissingCredentials, got %v", pair[0], pair[1], err)
		}
	}
}

func TestStore_SignIn(t *testing.T) {
	s := NewStore()
	if _, err := s.SignUp("maria", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.SignIn("maria", "secret"); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if _, err := s.SignIn("maria", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.SignIn("nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStore_Update(t *testing.T) {
	s := NewStore()
	if _, err := s.SignUp("maria", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := s.Update("maria", func(a *Account) {
		a.Experience += 50
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acc, err := s.Get("maria")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Experience != 50 {
		t.Errorf("experience = %d, want 50", acc.Experience)
	}

	if err := s.Update("nobody", func(a *Account) {}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Get_ReturnsSnapshot(t *testing.T) {
	s := NewStore()
	if _, err := s.SignUp("maria", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acc, _ := s.Get("maria")
	acc.Experience = 999
	acc.WeakAreas = append(acc.WeakAreas, "verbs")

	fresh, _ := s.Get("maria")
	if fresh.Experience != 0 {
		t.Errorf("mutating a snapshot leaked into the store: experience = %d", fresh.Experience)
	}
	if len(fresh.WeakAreas) != 0 {
		t.Errorf("mutating a snapshot leaked into the store: weak areas = %v", fresh.WeakAreas)
	}
}

func TestStore_All_PreservesSignUpOrder(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"zoe", "anna", "mikhail"} {
		if _, err := s.SignUp(name, "pw"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all := s.All()
	want := []string{"zoe", "anna", "mikhail"}
	if len(all) != len(want) {
		t.Fatalf("got %d accounts, want %d", len(all), len(want))
	}
	for i, acc := range all {
		if acc.Username != want[i] {
			t.Errorf("all[%d] = %q, want %q", i, acc.Username, want[i])
		}
	}
}

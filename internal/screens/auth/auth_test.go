package auth

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tanvi/linguify/internal/account"
	"github.com/tanvi/linguify/internal/screen"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func setCredentials(s *AuthScreen, username, password string) {
	s.username.Model.SetValue(username)
	s.password.Model.SetValue(password)
}

func TestAuthScreen_SignUpThenSignIn(t *testing.T) {
	accounts := account.NewStore()
	s := New(accounts)

	// Switch to sign-up.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	ss := scr.(*AuthScreen)
	if ss.Title() != "Sign Up" {
		t.Fatalf("Title = %q, want Sign Up", ss.Title())
	}

	setCredentials(ss, "tanvi", "secret")
	_, cmd := ss.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after successful sign-up")
	}
	msg, ok := cmd().(SignedInMsg)
	if !ok {
		t.Fatalf("command produced %T, want SignedInMsg", cmd())
	}
	if msg.Username != "tanvi" {
		t.Errorf("Username = %q, want tanvi", msg.Username)
	}

	// A fresh screen signs the same user in.
	s2 := New(accounts)
	setCredentials(s2, "tanvi", "secret")
	_, cmd = s2.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after successful sign-in")
	}
	if _, ok := cmd().(SignedInMsg); !ok {
		t.Fatal("expected SignedInMsg after sign-in")
	}
}

func TestAuthScreen_DuplicateUsername(t *testing.T) {
	accounts := account.NewStore()
	if _, err := accounts.SignUp("tanvi", "secret"); err != nil {
		t.Fatal(err)
	}

	s := New(accounts)
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	ss := scr.(*AuthScreen)
	setCredentials(ss, "tanvi", "other")

	_, cmd := ss.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for a taken username")
	}
	if ss.errMsg != "Username already exists." {
		t.Errorf("errMsg = %q", ss.errMsg)
	}
}

func TestAuthScreen_WrongPassword(t *testing.T) {
	accounts := account.NewStore()
	if _, err := accounts.SignUp("tanvi", "secret"); err != nil {
		t.Fatal(err)
	}

	s := New(accounts)
	setCredentials(s, "tanvi", "nope")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for bad credentials")
	}
	if s.errMsg != "Invalid username or password." {
		t.Errorf("errMsg = %q", s.errMsg)
	}
}

func TestAuthScreen_MissingCredentials(t *testing.T) {
	s := New(account.NewStore())
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for empty credentials")
	}
	if s.errMsg != "Please enter both username and password." {
		t.Errorf("errMsg = %q", s.errMsg)
	}
}

func TestAuthScreen_View(t *testing.T) {
	s := New(account.NewStore())
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

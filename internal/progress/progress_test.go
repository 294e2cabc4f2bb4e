package progress

import (
	"testing"

	"github.com/tanvi/linguify/internal/account"
)

func TestApply_AwardsExperiencePerCorrectAnswer(t *testing.T) {
	acc := account.NewAccount("maria", "pw")
	Apply(acc, 3, 10)

	if acc.Experience != 30 {
		t.Errorf("experience = %d, want 30", acc.Experience)
	}
	if acc.CompletedQuizzes != 1 {
		t.Errorf("completed quizzes = %d, want 1", acc.CompletedQuizzes)
	}
}

func TestApply_StreakExtendsAtSeventyPercent(t *testing.T) {
	tests := []struct {
		name       string
		correct    int
		total      int
		wantStreak int
	}{
		{"exactly 70%", 7, 10, 1},
		{"above 70%", 9, 10, 1},
		{"below 70%", 6, 10, 0},
		{"zero correct", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := account.NewAccount("maria", "pw")
			Apply(acc, tt.correct, tt.total)
			if acc.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", acc.Streak, tt.wantStreak)
			}
		})
	}
}

func TestApply_LevelUpCarriesRemainder(t *testing.T) {
	acc := account.NewAccount("maria", "pw")
	acc.Experience = 95

	// 1/1 correct: 95 + 10 = 105 → level 2, 5 remaining.
	Apply(acc, 1, 1)

	if acc.Level != 2 {
		t.Errorf("level = %d, want 2", acc.Level)
	}
	if acc.Experience != 5 {
		t.Errorf("experience = %d, want 5", acc.Experience)
	}
}

func TestApply_MultiLevelJumpInOneGrading(t *testing.T) {
	acc := account.NewAccount("maria", "pw")
	acc.Experience = 95

	// 20/20 correct: 95 + 200 = 295 → two level-ups, 95 remaining.
	Apply(acc, 20, 20)

	if acc.Level != 3 {
		t.Errorf("level = %d, want 3", acc.Level)
	}
	if acc.Experience != 95 {
		t.Errorf("experience = %d, want 95", acc.Experience)
	}
}

func TestGenerationCredits_AreIndependentOfGrading(t *testing.T) {
	acc := account.NewAccount("maria", "pw")

	AwardGenerationCredit(acc)
	if acc.Experience != 5 || acc.CompletedQuizzes != 1 {
		t.Fatalf("after generation credit: exp=%d completed=%d, want 5/1", acc.Experience, acc.CompletedQuizzes)
	}

	// A full cycle applies both credits: generation then grading.
	Apply(acc, 5, 10)
	if acc.Experience != 55 {
		t.Errorf("experience = %d, want 55", acc.Experience)
	}
	if acc.CompletedQuizzes != 2 {
		t.Errorf("completed quizzes = %d, want 2", acc.CompletedQuizzes)
	}
}

func TestAwardAttemptCredit(t *testing.T) {
	acc := account.NewAccount("maria", "pw")
	AwardAttemptCredit(acc)

	if acc.Experience != 1 {
		t.Errorf("experience = %d, want 1", acc.Experience)
	}
	if acc.CompletedQuizzes != 0 {
		t.Errorf("failed generation must not count a completed quiz, got %d", acc.CompletedQuizzes)
	}
}

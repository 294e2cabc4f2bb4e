package progress

import "testing"

func TestNextDifficulty(t *testing.T) {
	tests := []struct {
		current  Difficulty
		accuracy float64
		want     Difficulty
	}{
		{Medium, 0.9, Hard},
		{Easy, 0.9, Medium},
		{Hard, 0.9, Medium},
		{Medium, 0.3, Easy},
		{Hard, 0.3, Medium},
		{Easy, 0.3, Medium},
		{Medium, 0.6, Medium},
		{Easy, 0.6, Easy},
		{Hard, 0.6, Hard},
		// Boundaries are exclusive on both sides.
		{Medium, 0.8, Medium},
		{Medium, 0.5, Medium},
	}

	for _, tt := range tests {
		got := NextDifficulty(tt.current, tt.accuracy)
		if got != tt.want {
			t.Errorf("NextDifficulty(%s, %.2f) = %s, want %s", tt.current, tt.accuracy, got, tt.want)
		}
	}
}

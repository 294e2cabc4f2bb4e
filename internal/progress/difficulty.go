package progress

// Difficulty is the three-level quiz difficulty ordinal.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the levels in ascending order for form selectors.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// NextDifficulty suggests the difficulty for the next quiz from the
// accuracy on the last one. Medium is the only pivot: Easy can never
// jump straight to Hard, nor Hard fall straight to Easy.
func NextDifficulty(current Difficulty, accuracy float64) Difficulty {
	if accuracy > 0.8 {
		if current == Medium {
			return Hard
		}
		return Medium
	}
	if accuracy < 0.5 {
		if current == Medium {
			return Easy
		}
		return Medium
	}
	return current
}

package quiz

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{"complete question", Question{Text: "Translate 'cat'", Answer: "gato"}, true},
		{"missing text", Question{Answer: "gato"}, false},
		{"missing answer", Question{Text: "Translate 'cat'"}, false},
		{
			"answer leaked into blank question",
			Question{Text: "El soy___ es importante.", Answer: "soy"},
			false,
		},
		{
			"answer split by underscores still leaks",
			Question{Text: "Yo s_o_y___ estudiante.", Answer: "soy"},
			false,
		},
		{
			"leak check is case-insensitive",
			Question{Text: "SOY va aquí: ___", Answer: "soy"},
			false,
		},
		{
			"clean blank question",
			Question{Text: "Yo ___ estudiante.", Answer: "soy"},
			true,
		},
		{
			"answer in non-blank question is fine",
			Question{Text: "What does 'gato' mean?", Answer: "gato"},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.q); got != tt.want {
				t.Errorf("Valid(%+v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	in := []Question{
		{Text: "q1", Answer: "a1"},
		{Text: "bad"},
		{Text: "q2", Answer: "a2"},
	}
	out := Filter(in)
	if len(out) != 2 || out[0].Text != "q1" || out[1].Text != "q2" {
		t.Errorf("Filter() = %v", out)
	}
}

package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a language tutor who writes quiz questions for learners. " +
	"Follow the requested output format exactly."

// buildPrompt renders the generation prompt for one quiz. The format
// section must stay in sync with ParseQuestions: the labels and the
// choice layout are what the fallback parser scans for.
func buildPrompt(p Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s level quiz for learning %s on the topic of %s.\n",
		p.Difficulty, p.TargetLanguage, p.Topic)
	fmt.Fprintf(&b, "The questions should be in %s, except for the specific %s words or phrases being asked about.\n",
		p.NativeLanguage, p.TargetLanguage)
	fmt.Fprintf(&b, "Include %d questions with a mix of the following types:\n", p.Count)
	b.WriteString("1. Multiple choice\n")
	b.WriteString("2. Fill in the blank\n")
	b.WriteString("3. Translation\n")
	b.WriteString("For each question, provide:\n")
	fmt.Fprintf(&b, "- The question (in %s, with %s words as needed)\n", p.NativeLanguage, p.TargetLanguage)
	fmt.Fprintf(&b, "- The correct answer (in %s)\n", p.TargetLanguage)
	fmt.Fprintf(&b, "- A detailed explanation of the answer (in %s), including:\n", p.NativeLanguage)
	b.WriteString("  * Why the answer is correct\n")
	b.WriteString("  * Common mistakes learners might make\n")
	b.WriteString("  * Additional context or related language points\n")
	fmt.Fprintf(&b, "- For multiple choice questions, include 4 choices labeled A, B, C, D (in %s)\n", p.TargetLanguage)
	b.WriteString("- For fill-in-the-blank questions:\n")
	b.WriteString("  * For Easy difficulty: Present a short sentence with one blank word to fill in\n")
	b.WriteString("  * For Medium difficulty: Present a longer sentence or two short sentences with one or two blanks to fill in\n")
	b.WriteString("  * For Hard difficulty: Present longer sentences with multiple blanks to fill in\n")
	fmt.Fprintf(&b, "  * The blank(s) should be word(s) or phrase(s) in %s\n", p.TargetLanguage)
	fmt.Fprintf(&b, "  * Represent blanks with %q (triple underscore)\n", BlankMarker)
	fmt.Fprintf(&b, "  * Provide a clue for the blank(s) in %s\n", p.NativeLanguage)
	b.WriteString("  * Do not include the answer(s) anywhere in the question text\n")
	b.WriteString("Format each question as follows:\n")
	b.WriteString("Question: [question text]\n")
	b.WriteString("Choices: A) [choice A], B) [choice B], C) [choice C], D) [choice D] (for multiple choice only)\n")
	fmt.Fprintf(&b, "Clue: [clue in %s] (for fill-in-the-blank only)\n", p.NativeLanguage)
	b.WriteString("Correct answer: [correct answer]\n")
	b.WriteString("Explanation: [detailed explanation]")
	return b.String()
}

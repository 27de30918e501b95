package llm

import (
	"fmt"
	"strings"

	"storyquest-backend/internal/model"
	"storyquest-backend/internal/quiz"
)

const systemPrompt = `You are a warm, encouraging reading teacher for young children. ` +
	`You grade short answers about storybooks. Always respond with a single JSON object and nothing else.`

// buildPrompt assembles the user message for one grading call: the question,
// the student's answer, the question-specific guidance, and the exact JSON
// schema the model must return.
func buildPrompt(spec *quiz.QuestionSpec, ans model.Answer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Story: %s\n", spec.Story)
	fmt.Fprintf(&b, "Question: %s\n", spec.Question)
	if spec.MultiPart {
		fmt.Fprintf(&b, "Student's combined answers: %s\n", ans.Joined())
	} else {
		fmt.Fprintf(&b, "Student's answer: %s\n", ans.Text())
	}
	if spec.CorrectAnswer != "" {
		fmt.Fprintf(&b, "Reference answer: %s\n", spec.CorrectAnswer)
	}
	if spec.Context != "" {
		b.WriteString("\nGrading guidance:\n")
		b.WriteString(spec.Context)
		b.WriteString("\n")
	}

	b.WriteString("\nRespond with exactly this JSON shape:\n")
	b.WriteString(`{"isCorrect": true or false, "message": "short encouraging feedback", ` +
		`"feedback_type": "excellent" | "good" | "partial" | "incorrect" | "needs_improvement", ` +
		`"show_answer": true or false`)
	if !spec.Subjective {
		b.WriteString(`, "correct_answer": "the reference answer"`)
	}
	if spec.CheckSpelling {
		b.WriteString(`, "misspelled_words": ["each misspelled word in the answer, empty if none"]`)
	}
	b.WriteString("}\n")

	b.WriteString("Rules: message must be 1-2 child-friendly sentences. ")
	if spec.Subjective {
		b.WriteString("This is an opinion question; accept any genuine answer and always set show_answer to false. ")
	} else {
		b.WriteString("Set show_answer to true only when the answer is wrong enough that seeing the reference answer helps. ")
	}
	b.WriteString("Never set show_answer to true when isCorrect is true.")

	return b.String()
}

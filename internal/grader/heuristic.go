// Package grader implements the deterministic keyword fallback grader.
// It never calls out, never fails, and always returns a complete verdict,
// so the orchestrator can rely on it whenever the AI path is unavailable.
package grader

import (
	"storyquest-backend/internal/model"
	"storyquest-backend/internal/quiz"
)

// Grade scores an answer against the spec's keyword tables and returns the
// matching tier verdict. Multi-part answers are joined into one lowercase
// blob before matching; there is no per-part scoring.
func Grade(spec *quiz.QuestionSpec, ans model.Answer) model.Verdict {
	joined := ans.Joined()

	// A negative keyword always overrides positive matches: an answer that
	// names the explicitly wrong thing is wrong no matter what else it says.
	if spec.MatchesNegative(joined) {
		return finish(spec, model.Verdict{
			IsCorrect:    false,
			Message:      spec.NegativeMessage,
			FeedbackType: model.FeedbackIncorrect,
			ShowAnswer:   true,
		})
	}

	score := spec.Score(joined)
	length := len(joined)

	for _, rule := range spec.Tiers {
		if score >= rule.MinScore && length >= rule.MinLength {
			return finish(spec, model.Verdict{
				IsCorrect:    rule.Correct,
				Message:      rule.Message,
				FeedbackType: rule.Tier,
				ShowAnswer:   rule.ShowAnswer,
			})
		}
	}

	// Specs end with a catch-all rule, so this is unreachable for any
	// well-formed spec; keep a safe verdict anyway.
	return finish(spec, model.Verdict{
		IsCorrect:    false,
		Message:      "Keep trying! Think about the story and answer again.",
		FeedbackType: model.FeedbackNeedsImprovement,
		ShowAnswer:   !spec.Subjective,
	})
}

// finish enforces the verdict invariants and fills the spec-derived fields:
// a correct answer is never revealed, subjective questions never reveal
// anything, and the spelling-checked variant always carries the
// misspelled_words field (empty here; only the AI grader detects spelling).
func finish(spec *quiz.QuestionSpec, v model.Verdict) model.Verdict {
	if v.IsCorrect || spec.Subjective {
		v.ShowAnswer = false
	}
	if v.ShowAnswer {
		v.CorrectAnswer = spec.CorrectAnswer
	}
	if spec.CheckSpelling && v.MisspelledWords == nil {
		v.MisspelledWords = []string{}
	}
	return v
}

package llm

import (
	"fmt"

	"storyquest-backend/internal/model"
)

// fieldAliases maps the field names models tend to invent back to the
// canonical schema. Normalization runs before validation so the rest of the
// pipeline only ever sees canonical names.
var fieldAliases = map[string]string{
	"result":     "message",
	"is_correct": "isCorrect",
	"correct":    "isCorrect",
	"feedback":   "message",
}

// Normalize rewrites aliased field names in a raw grading payload to their
// canonical forms. A canonical field already present wins over its alias.
// Unknown fields pass through untouched, and normalizing an already
// canonical payload is a no-op.
func Normalize(raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		canonical, ok := fieldAliases[k]
		if !ok {
			out[k] = v
			continue
		}
		if _, exists := raw[canonical]; !exists {
			out[canonical] = v
		}
	}
	return out
}

// ToVerdict validates a normalized payload and builds the typed verdict.
// isCorrect and message are required; feedback_type must be a known value
// when present and defaults from isCorrect when absent.
func ToVerdict(payload map[string]interface{}) (model.Verdict, error) {
	var v model.Verdict

	correct, ok := payload["isCorrect"].(bool)
	if !ok {
		return v, fmt.Errorf("normalize: missing or non-boolean isCorrect")
	}
	msg, ok := payload["message"].(string)
	if !ok || msg == "" {
		return v, fmt.Errorf("normalize: missing message")
	}
	v.IsCorrect = correct
	v.Message = msg

	if ft, ok := payload["feedback_type"].(string); ok {
		v.FeedbackType = model.FeedbackType(ft)
		if !v.FeedbackType.Valid() {
			return model.Verdict{}, fmt.Errorf("normalize: unknown feedback_type %q", ft)
		}
	} else if correct {
		v.FeedbackType = model.FeedbackGood
	} else {
		v.FeedbackType = model.FeedbackIncorrect
	}

	if show, ok := payload["show_answer"].(bool); ok {
		v.ShowAnswer = show
	}
	if ca, ok := payload["correct_answer"].(string); ok {
		v.CorrectAnswer = ca
	}
	if hi, ok := payload["highlight_issue"].(string); ok {
		v.HighlightIssue = hi
	}
	if words, ok := payload["misspelled_words"].([]interface{}); ok {
		ms := make([]string, 0, len(words))
		for _, w := range words {
			if s, ok := w.(string); ok {
				ms = append(ms, s)
			}
		}
		v.MisspelledWords = ms
	}
	return v, nil
}

// Package service holds the grading orchestrator and the voice session: the
// policy layer between transport and the two graders.
package service

import (
	"context"
	"unicode"

	"storyquest-backend/internal/grader"
	"storyquest-backend/internal/llm"
	"storyquest-backend/internal/model"
	"storyquest-backend/internal/quiz"
	logger "storyquest-backend/pkg/logging"
	"storyquest-backend/utilities"
)

// aiGrader is what the orchestrator needs from the LLM client. Narrowed to
// an interface so tests can force failures without a live endpoint.
type aiGrader interface {
	Configured() bool
	Grade(ctx context.Context, spec *quiz.QuestionSpec, ans model.Answer) (map[string]interface{}, error)
}

// EvaluationService grades student answers. Evaluate never returns an
// error: every failure mode collapses into a student-safe verdict.
type EvaluationService interface {
	Evaluate(ctx context.Context, questionID string, ans model.Answer) model.Verdict
}

type evaluationService struct {
	ai  aiGrader
	bus *utilities.EventBus
}

// NewEvaluationService wires the orchestrator. bus may be nil when nobody
// observes grading events (tests).
func NewEvaluationService(ai aiGrader, bus *utilities.EventBus) EvaluationService {
	return &evaluationService{ai: ai, bus: bus}
}

// Evaluate runs the full pipeline for one answer: pre-validation gate, then
// the AI grader, then the keyword fallback if the AI path is unavailable or
// fails in any way. Exactly one grading path produces the verdict; there are
// no retries and no blending.
func (s *evaluationService) Evaluate(ctx context.Context, questionID string, ans model.Answer) (v model.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic while grading question %s: %v", questionID, r)
			v = model.ErrorVerdict()
		}
	}()

	spec, ok := quiz.Get(questionID)
	if !ok {
		logger.Warn("grading requested for unknown question %q", questionID)
		return model.ErrorVerdict()
	}

	if gated, blocked := s.preValidate(spec, ans); blocked {
		return gated
	}

	if s.ai != nil && s.ai.Configured() {
		raw, err := s.ai.Grade(ctx, spec, ans)
		if err == nil {
			verdict, convErr := llm.ToVerdict(llm.Normalize(raw))
			if convErr == nil {
				verdict = enforce(spec, verdict)
				s.publish(spec, verdict, true)
				return verdict
			}
			logger.Warn("discarding AI verdict for question %s: %v", spec.ID, convErr)
		} else {
			logger.Warn("AI grading failed for question %s, using keyword fallback: %v", spec.ID, err)
		}
	}

	verdict := grader.Grade(spec, ans)
	s.publish(spec, verdict, false)
	return verdict
}

// preValidate applies the cheap mechanical checks before any grading
// happens: minimum length, then the leading-character rule. A failed check
// short-circuits with a guidance or correction verdict that never reveals
// the answer.
func (s *evaluationService) preValidate(spec *quiz.QuestionSpec, ans model.Answer) (model.Verdict, bool) {
	text := ans.Text()

	if spec.MinLength > 0 && len(text) < spec.MinLength {
		return model.Verdict{
			IsCorrect:    false,
			Message:      "Please provide a more complete answer.",
			FeedbackType: model.FeedbackGuidance,
			ShowAnswer:   false,
		}, true
	}

	runes := []rune(text)
	if len(runes) > 0 {
		switch spec.Leading {
		case quiz.LeadUpper:
			if !unicode.IsUpper(runes[0]) {
				return model.Verdict{
					IsCorrect:      false,
					Message:        "Remember to start your answer with a capital letter.",
					FeedbackType:   model.FeedbackCorrection,
					ShowAnswer:     false,
					HighlightIssue: "capitalization",
				}, true
			}
		case quiz.LeadLetter:
			if !unicode.IsLetter(runes[0]) {
				return model.Verdict{
					IsCorrect:    false,
					Message:      "Please start your answer with a letter.",
					FeedbackType: model.FeedbackGuidance,
					ShowAnswer:   false,
				}, true
			}
		}
	}
	return model.Verdict{}, false
}

// enforce applies the invariants no grader output may violate: a correct
// answer is never revealed, subjective questions reveal nothing and carry no
// reference answer, and spelling-checked questions always carry the
// misspelled_words field.
func enforce(spec *quiz.QuestionSpec, v model.Verdict) model.Verdict {
	if v.IsCorrect || spec.Subjective {
		v.ShowAnswer = false
	}
	if spec.Subjective {
		v.CorrectAnswer = ""
	} else if v.ShowAnswer && v.CorrectAnswer == "" {
		v.CorrectAnswer = spec.CorrectAnswer
	}
	if spec.CheckSpelling && v.MisspelledWords == nil {
		v.MisspelledWords = []string{}
	}
	return v
}

func (s *evaluationService) publish(spec *quiz.QuestionSpec, v model.Verdict, usedAI bool) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(utilities.EventEvaluationCompleted, utilities.EvaluationEvent{
		QuestionID: spec.ID,
		Correct:    v.IsCorrect,
		Feedback:   string(v.FeedbackType),
		UsedAI:     usedAI,
	})
}

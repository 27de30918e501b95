package model

import "strings"

// FeedbackType classifies the severity and tone of a grading verdict.
type FeedbackType string

const (
	FeedbackExcellent        FeedbackType = "excellent"
	FeedbackGood             FeedbackType = "good"
	FeedbackPartial          FeedbackType = "partial"
	FeedbackIncorrect        FeedbackType = "incorrect"
	FeedbackNeedsImprovement FeedbackType = "needs_improvement"
	FeedbackGuidance         FeedbackType = "guidance"
	FeedbackCorrection       FeedbackType = "correction"
	FeedbackError            FeedbackType = "error"
)

// Valid reports whether f is one of the enumerated feedback types.
func (f FeedbackType) Valid() bool {
	switch f {
	case FeedbackExcellent, FeedbackGood, FeedbackPartial, FeedbackIncorrect,
		FeedbackNeedsImprovement, FeedbackGuidance, FeedbackCorrection, FeedbackError:
		return true
	}
	return false
}

// Verdict is the structured grading result returned for one answer.
type Verdict struct {
	IsCorrect       bool         `json:"isCorrect"`
	Message         string       `json:"message"`
	FeedbackType    FeedbackType `json:"feedback_type"`
	ShowAnswer      bool         `json:"show_answer"`
	CorrectAnswer   string       `json:"correct_answer,omitempty"`
	MisspelledWords []string     `json:"misspelled_words,omitempty"`
	HighlightIssue  string       `json:"highlight_issue,omitempty"`
}

// ErrorVerdict is the generic "please try again" verdict returned when
// grading hits an unexpected internal failure. The student never sees a
// raw error.
func ErrorVerdict() Verdict {
	return Verdict{
		IsCorrect:    false,
		Message:      "Please try again.",
		FeedbackType: FeedbackError,
		ShowAnswer:   false,
	}
}

// Answer is a raw student submission: a single text, or an ordered list of
// texts for multi-part questions. Immutable once received.
type Answer struct {
	parts []string
}

// NewAnswer wraps a single-text submission.
func NewAnswer(text string) Answer {
	return Answer{parts: []string{strings.TrimSpace(text)}}
}

// NewMultiAnswer wraps a multi-part submission, preserving part order.
func NewMultiAnswer(parts []string) Answer {
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed = append(trimmed, strings.TrimSpace(p))
	}
	return Answer{parts: trimmed}
}

// Text returns the first part, which for single-text answers is the whole
// submission. Pre-validation rules apply to this form.
func (a Answer) Text() string {
	if len(a.parts) == 0 {
		return ""
	}
	return a.parts[0]
}

// Joined returns all parts joined into one lowercase blob, the form the
// keyword grader operates on.
func (a Answer) Joined() string {
	return strings.ToLower(strings.Join(a.parts, " "))
}

// IsEmpty reports whether the submission carries no usable text.
func (a Answer) IsEmpty() bool {
	for _, p := range a.parts {
		if p != "" {
			return false
		}
	}
	return true
}

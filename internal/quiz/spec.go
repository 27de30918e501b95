package quiz

import (
	"strings"

	"storyquest-backend/internal/model"
)

// LeadingRule is the character-class check applied to the first rune of an
// answer by the pre-validation gate.
type LeadingRule int

const (
	LeadAny    LeadingRule = iota // no leading-character check
	LeadUpper                     // must start with an uppercase letter
	LeadLetter                    // must start with any letter
)

// KeywordGroup is one independently counted set of keywords. An answer
// matches the group when it contains any of the group's words as a
// substring. Weight defaults to 1 when zero.
type KeywordGroup struct {
	Label  string
	Words  []string
	Weight int
}

func (g KeywordGroup) weight() int {
	if g.Weight == 0 {
		return 1
	}
	return g.Weight
}

// TierRule maps a matched-keyword score (and optionally a minimum answer
// length) to a verdict tier. Rules are evaluated in order; the first rule
// whose thresholds are met wins, so specs list them from best to worst and
// end with a catch-all (MinScore 0).
type TierRule struct {
	MinScore   int
	MinLength  int
	Tier       model.FeedbackType
	Correct    bool
	ShowAnswer bool
	Message    string
}

// QuestionSpec is the static configuration for one quiz question: everything
// the AI grader, the keyword grader, and the pre-validation gate need. Specs
// are process-wide constants, never mutated.
type QuestionSpec struct {
	ID       string
	Story    string
	Question string

	// CorrectAnswer is the reference answer revealed to the student when a
	// verdict calls for it. Empty for purely subjective questions.
	CorrectAnswer string

	// Subjective questions never reveal an answer and accept any genuine
	// response that clears the keyword/length bar.
	Subjective bool

	// CheckSpelling asks the AI grader to also report misspelled words
	// (title-question variant).
	CheckSpelling bool

	// MultiPart allows an ordered list of answer texts (events question).
	MultiPart bool

	// Context is the question-specific guidance block embedded in the
	// grading prompt: expected content, tier guidelines, tone.
	Context string

	// MaxTokens bounds the AI grader's output for this question.
	MaxTokens int

	// Pre-validation gate. MinLength 0 disables the length check.
	MinLength int
	Leading   LeadingRule

	// Keyword grading tables.
	Groups          []KeywordGroup
	Negative        []string
	NegativeMessage string
	Tiers           []TierRule
}

// Score sums the weights of the keyword groups matched by the joined
// lowercase answer text.
func (s *QuestionSpec) Score(joined string) int {
	total := 0
	for _, g := range s.Groups {
		if matchesAny(joined, g.Words) {
			total += g.weight()
		}
	}
	return total
}

// MatchesNegative reports whether the answer contains any keyword from the
// spec's negative set. A negative match always overrides positive matches.
func (s *QuestionSpec) MatchesNegative(joined string) bool {
	return matchesAny(joined, s.Negative)
}

// Specs store keywords lowercase; callers pass lowercase text.
func matchesAny(text string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(text, w) {
			return true
		}
	}
	return false
}

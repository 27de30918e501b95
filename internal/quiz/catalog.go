package quiz

import (
	"sort"
	"strings"
)

// catalog indexes every QuestionSpec by ID. Built once at init; read-only
// afterwards, so concurrent lookups need no locking. ordered preserves the
// authored quiz order per story for the voice flow.
var (
	catalog = map[string]*QuestionSpec{}
	ordered []*QuestionSpec
)

func init() {
	for _, s := range goldilocksSpecs {
		register(s)
	}
	for _, s := range peterSpecs {
		register(s)
	}
}

func register(s *QuestionSpec) {
	if _, dup := catalog[s.ID]; dup {
		panic("quiz: duplicate question spec " + s.ID)
	}
	catalog[s.ID] = s
	ordered = append(ordered, s)
}

// Get returns the spec for a question ID.
func Get(id string) (*QuestionSpec, bool) {
	s, ok := catalog[id]
	return s, ok
}

// IDs returns all question IDs in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IDsForStory returns the question IDs for one story in authored quiz
// order. Story matching is case-insensitive.
func IDsForStory(story string) []string {
	var ids []string
	for _, s := range ordered {
		if strings.EqualFold(s.Story, story) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Stories returns the distinct story titles in authored order.
func Stories() []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range ordered {
		if !seen[s.Story] {
			seen[s.Story] = true
			out = append(out, s.Story)
		}
	}
	return out
}

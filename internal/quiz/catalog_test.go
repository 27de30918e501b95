package quiz

import "testing"

func TestCatalogLookup(t *testing.T) {
	spec, ok := Get("peter-title")
	if !ok {
		t.Fatal("expected peter-title to exist")
	}
	if spec.Story != peterStory {
		t.Errorf("peter-title story = %q, want %q", spec.Story, peterStory)
	}
	if _, ok := Get("no-such-question"); ok {
		t.Error("expected lookup of unknown ID to fail")
	}
}

func TestCatalogSize(t *testing.T) {
	if got := len(IDs()); got != 21 {
		t.Errorf("catalog has %d questions, want 21", got)
	}
	if got := len(IDsForStory(goldilocksStory)); got != 8 {
		t.Errorf("goldilocks quiz has %d questions, want 8", got)
	}
	if got := len(IDsForStory(peterStory)); got != 13 {
		t.Errorf("peter quiz has %d questions, want 13", got)
	}
}

func TestIDsForStoryOrderAndCase(t *testing.T) {
	ids := IDsForStory("the tale of peter rabbit")
	if len(ids) == 0 {
		t.Fatal("story matching should be case-insensitive")
	}
	if ids[0] != "peter-title" {
		t.Errorf("first peter question = %q, want peter-title", ids[0])
	}
	if ids[len(ids)-1] != "peter-story-part" {
		t.Errorf("last peter question = %q, want peter-story-part", ids[len(ids)-1])
	}
}

func TestStories(t *testing.T) {
	stories := Stories()
	if len(stories) != 2 {
		t.Fatalf("Stories() = %v, want 2 entries", stories)
	}
	if stories[0] != goldilocksStory || stories[1] != peterStory {
		t.Errorf("Stories() = %v, wrong order or titles", stories)
	}
}

// Every spec must end with a catch-all tier, so grading always has a verdict
// to fall back on regardless of score and length.
func TestEverySpecHasCatchAllTier(t *testing.T) {
	for _, id := range IDs() {
		spec, _ := Get(id)
		if len(spec.Tiers) == 0 {
			t.Errorf("%s: no tier rules", id)
			continue
		}
		last := spec.Tiers[len(spec.Tiers)-1]
		if last.MinScore != 0 || last.MinLength != 0 {
			t.Errorf("%s: last tier is not a catch-all (MinScore=%d MinLength=%d)", id, last.MinScore, last.MinLength)
		}
	}
}

func TestSpecReferenceAnswers(t *testing.T) {
	for _, id := range IDs() {
		spec, _ := Get(id)
		if spec.Subjective && spec.CorrectAnswer != "" {
			t.Errorf("%s: subjective question carries a reference answer", id)
		}
		if !spec.Subjective && spec.CorrectAnswer == "" {
			t.Errorf("%s: objective question has no reference answer", id)
		}
	}
}

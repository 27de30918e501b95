package quiz

import "storyquest-backend/internal/model"

const goldilocksStory = "Goldilocks and the Three Bears"

// goldilocksSpecs covers the eight comprehension questions for the
// Goldilocks activity. The book endpoints never enforced the leading-letter
// gate, so these specs leave the gate disabled.
var goldilocksSpecs = []*QuestionSpec{
	{
		ID:            "goldilocks-title",
		Story:         goldilocksStory,
		Question:      "What is the title of the story?",
		CorrectAnswer: "Goldilocks and the Three Bears",
		CheckSpelling: true,
		MaxTokens:     200,
		Context: `The correct story title is: "Goldilocks and the Three Bears"
Also identify any misspelled English words in the answer and report them in "misspelled_words" (a simple list of strings, [] when there are none).
- If the answer is exactly correct or very close (like "goldilocks and the three bears"), mark as correct.
- If they have the main elements but are missing something (like just "Goldilocks"), mark as partial.
- If completely wrong, mark as incorrect.`,
		Groups: []KeywordGroup{
			{Label: "goldilocks", Words: []string{"goldilocks"}, Weight: 2},
			{Label: "three bears", Words: []string{"three bears", "3 bears"}, Weight: 2},
			{Label: "bears", Words: []string{"bear"}},
		},
		Tiers: []TierRule{
			{MinScore: 4, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You got the title right!"},
			{MinScore: 1, Tier: model.FeedbackPartial, ShowAnswer: true,
				Message: "You're close! The title includes the main character and the other characters in the story."},
			{Tier: model.FeedbackIncorrect, ShowAnswer: true,
				Message: "That's not quite right. Think about the main character and the other characters in the story."},
		},
	},
	{
		ID:            "goldilocks-author",
		Story:         goldilocksStory,
		Question:      "Who is the author of the story?",
		CorrectAnswer: "Traditional folk tale (no single author)",
		MaxTokens:     250,
		Context: `"Goldilocks" is a traditional folk tale. Correct answers include "Traditional", "Unknown", "Folk tale", or "Robert Southey".`,
		Groups: []KeywordGroup{
			{Label: "traditional", Words: []string{"traditional", "folk", "unknown", "anonymous", "southey"}},
		},
		Tiers: []TierRule{
			{MinScore: 1, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You understand that this is a traditional story."},
			{Tier: model.FeedbackIncorrect, ShowAnswer: true,
				Message: "Not quite. This is a very old story that doesn't have a single author."},
		},
	},
	{
		ID:            "goldilocks-genre",
		Story:         goldilocksStory,
		Question:      "Is this story Fiction or Non-Fiction?",
		CorrectAnswer: "Fiction",
		MaxTokens:     250,
		Context: `The correct genre is "Fiction" (or "Fairy Tale"). Explain in the feedback why the story is or isn't fiction.
- If they say "Non-Fiction", mark as incorrect and explain that the story is made up.`,
		Groups: []KeywordGroup{
			{Label: "fiction", Words: []string{"fiction", "fairy", "made-up", "made up", "imaginary"}},
		},
		Negative: []string{"non-fiction", "nonfiction", "non fiction"},
		NegativeMessage: "Not quite! The story is fiction because it's a made-up tale about talking bears.",
		Tiers: []TierRule{
			{MinScore: 1, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! \"Fiction\" is correct because the story is imaginary."},
			{Tier: model.FeedbackGuidance,
				Message: "Please answer either Fiction or Non-Fiction."},
		},
	},
	{
		ID:            "goldilocks-characters",
		Story:         goldilocksStory,
		Question:      "Who are the characters in the story?",
		CorrectAnswer: "Goldilocks, Papa Bear, Mama Bear, and Baby Bear",
		MaxTokens:     250,
		Context: `The characters are Goldilocks, Papa Bear, Mama Bear, and Baby Bear.
Guidelines: 4 characters = excellent, 3 = good, 2 = partial, 1 or fewer = needs_improvement. isCorrect is true for excellent and good.`,
		Groups: []KeywordGroup{
			{Label: "goldilocks", Words: []string{"goldilocks"}},
			{Label: "papa bear", Words: []string{"papa", "father", "big bear"}},
			{Label: "mama bear", Words: []string{"mama", "mother", "medium bear"}},
			{Label: "baby bear", Words: []string{"baby", "little", "small bear"}},
		},
		Tiers: []TierRule{
			{MinScore: 4, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You identified all the main characters."},
			{MinScore: 3, Tier: model.FeedbackGood, Correct: true,
				Message: "Good job! You got most of the characters."},
			{Tier: model.FeedbackPartial, ShowAnswer: true,
				Message: "You're on the right track, but there are more main characters."},
		},
	},
	{
		ID:            "goldilocks-setting",
		Story:         goldilocksStory,
		Question:      "Where does the story take place?",
		CorrectAnswer: "In the woods and at the bears' house",
		MaxTokens:     250,
		Context: `The setting is the woods/forest and the bears' house/cottage.
Guidelines: both woods and house = excellent, just one = good. isCorrect is true for excellent and good.`,
		Groups: []KeywordGroup{
			{Label: "woods", Words: []string{"wood", "forest"}},
			{Label: "house", Words: []string{"house", "home", "cottage"}},
		},
		Tiers: []TierRule{
			{MinScore: 2, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You identified both the woods and the house."},
			{MinScore: 1, Tier: model.FeedbackGood, Correct: true,
				Message: "Good! You identified one of the main settings."},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Think about where the story takes place."},
		},
	},
	{
		ID:        "goldilocks-events",
		Story:     goldilocksStory,
		Question:  "What are the main events of the story?",
		MultiPart: true,
		CorrectAnswer: "1. Goldilocks enters the bears' house\n" +
			"2. She tries their porridge, chairs, and beds\n" +
			"3. The bears find her and she runs away",
		MaxTokens: 500,
		Context: `The main events: Goldilocks enters the house, tries the porridge, chairs, and beds, the bears find her, she runs away.
Guidelines: 3+ events = excellent, 2 = good, 1 = partial. isCorrect is true for excellent and good. The answer may arrive as several parts; treat them as one summary.`,
		Groups: []KeywordGroup{
			{Label: "goldilocks", Words: []string{"goldilocks"}},
			{Label: "house", Words: []string{"house"}},
			{Label: "porridge", Words: []string{"porridge"}},
			{Label: "chair", Words: []string{"chair"}},
			{Label: "bed", Words: []string{"bed"}},
			{Label: "bears", Words: []string{"bear"}},
			{Label: "escape", Words: []string{"run", "ran"}},
		},
		Tiers: []TierRule{
			{MinScore: 5, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You identified many important events."},
			{MinScore: 2, Tier: model.FeedbackGood, Correct: true,
				Message: "Good job! You got several important story events."},
			{Tier: model.FeedbackPartial, ShowAnswer: true,
				Message: "You have some elements, but try to think of more major events."},
		},
	},
	{
		ID:         "goldilocks-favourite-character",
		Story:      goldilocksStory,
		Question:   "Who is your favourite character, and why?",
		Subjective: true,
		MaxTokens:  250,
		Context: `This is an opinion question about the student's favourite character.
Guidelines: valid character + reason = excellent/good, valid character with no reason = partial, no character = needs_improvement. Always be positive. isCorrect is true unless feedback is needs_improvement. Never reveal a correct answer; always set show_answer to false.`,
		Groups: []KeywordGroup{
			{Label: "character", Words: []string{"goldilocks", "papa", "mama", "baby", "bear"}},
			{Label: "reason", Words: []string{"because", "like", "favourite", "favorite"}},
		},
		Tiers: []TierRule{
			{MinScore: 2, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You chose a character and gave a great reason."},
			{MinScore: 1, Tier: model.FeedbackGood, Correct: true,
				Message: "You mentioned a character! Can you tell us more about why they are your favourite?"},
			{Tier: model.FeedbackNeedsImprovement,
				Message: "Remember to choose a character from the story."},
		},
	},
	{
		ID:         "goldilocks-favourite-part",
		Story:      goldilocksStory,
		Question:   "What was your favourite part of the story?",
		Subjective: true,
		MaxTokens:  250,
		Context: `This is an opinion question about the student's favourite part of the story.
Guidelines: a story part + reason = excellent/good, a story part with no reason = partial, no story part = needs_improvement. isCorrect is true unless feedback is needs_improvement. Never reveal a correct answer; always set show_answer to false.`,
		Groups: []KeywordGroup{
			{Label: "story part", Words: []string{"porridge", "chair", "bed", "bears", "house", "running", "run"}},
			{Label: "reason", Words: []string{"because", "liked", "favourite", "favorite", "funny"}},
		},
		Tiers: []TierRule{
			{MinScore: 2, Tier: model.FeedbackExcellent, Correct: true,
				Message: "That's a great choice! Thanks for explaining why you liked it."},
			{MinScore: 1, Tier: model.FeedbackGood, Correct: true,
				Message: "Good pick! Can you also tell me why that was your favourite part?"},
			{Tier: model.FeedbackNeedsImprovement,
				Message: "Try to think about a specific part of the story you liked."},
		},
	},
}

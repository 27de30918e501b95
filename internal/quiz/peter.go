package quiz

import "storyquest-backend/internal/model"

const peterStory = "The Tale of Peter Rabbit"

// peterSpecs covers the Peter Rabbit activity. Unlike the Goldilocks
// activity these questions run the pre-validation gate: a minimum length
// and a leading-character rule per question.
var peterSpecs = []*QuestionSpec{
	{
		ID:            "peter-title",
		Story:         peterStory,
		Question:      "What is the title of the story?",
		CorrectAnswer: "The Tale of Peter Rabbit",
		MaxTokens:     200,
		MinLength:     2,
		Leading:       LeadUpper,
		Context: `The correct story title is: "The Tale of Peter Rabbit"
- If the answer is exactly correct or very close (like "the tale of peter rabbit", "Tale of Peter Rabbit"), mark as correct.
- If they have "Peter Rabbit" but are missing "The Tale of", mark as good.
- If they just say "Peter" or "Rabbit", mark as partial.
- If completely wrong, mark as incorrect.`,
		Groups: []KeywordGroup{
			{Label: "peter", Words: []string{"peter"}},
			{Label: "rabbit", Words: []string{"rabbit"}},
			{Label: "tale", Words: []string{"tale", "story"}},
		},
		Tiers: []TierRule{
			{MinScore: 3, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You got the complete title right!"},
			{MinScore: 2, Tier: model.FeedbackGood, Correct: true,
				Message: "Great! You have the main character. The full title also mentions it being a \"Tale\"."},
			{MinScore: 1, Tier: model.FeedbackPartial, ShowAnswer: true,
				Message: "You have part of it! The title includes the main character's name and what kind of animal he is."},
			{Tier: model.FeedbackIncorrect, ShowAnswer: true,
				Message: "Think about the main character in this story - what is his name and what kind of animal is he?"},
		},
	},
	{
		ID:            "peter-author",
		Story:         peterStory,
		Question:      "Who is the author of the story?",
		CorrectAnswer: "Beatrix Potter",
		MaxTokens:     250,
		MinLength:     2,
		Leading:       LeadUpper,
		Context: `"The Tale of Peter Rabbit" was written by Beatrix Potter, a famous British author and illustrator.
- If they mention "Beatrix Potter" in any reasonable form, mark as correct.
- If they give a completely wrong author name, mark as incorrect.
- If they show partial understanding (only first or last name), provide gentle correction.`,
		Groups: []KeywordGroup{
			{Label: "beatrix", Words: []string{"beatrix"}},
			{Label: "potter", Words: []string{"potter"}},
		},
		Negative: []string{"seuss", "roald dahl", "rowling", "disney", "grimm"},
		NegativeMessage: "That author didn't write this story. The Tale of Peter Rabbit was written by a famous British author who also illustrated her books.",
		Tiers: []TierRule{
			{MinScore: 2, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! Beatrix Potter is indeed the author of The Tale of Peter Rabbit."},
			{MinScore: 1, Tier: model.FeedbackPartial, ShowAnswer: true,
				Message: "You got part of the name right! What is the author's full name?"},
			{Tier: model.FeedbackIncorrect, ShowAnswer: true,
				Message: "Think about the British author who wrote and illustrated this classic children's story in the early 1900s."},
		},
	},
	{
		ID:            "peter-genre",
		Story:         peterStory,
		Question:      "What genre is the story?",
		CorrectAnswer: "Fiction (Children's Literature)",
		MaxTokens:     250,
		MinLength:     2,
		Leading:       LeadUpper,
		Context: `"The Tale of Peter Rabbit" is children's fiction with fantasy elements (talking animals).
Correct answers include "Fiction", "Children's fiction", "Fantasy", "Children's literature", "Picture book", "Animal story", or any combination.
- If they say "Non-fiction", mark as incorrect with an explanation.
- If they give unrelated genres like "Mystery" or "Romance", mark as incorrect.`,
		Groups: []KeywordGroup{
			{Label: "fiction", Words: []string{"fiction", "story", "tale"}},
			{Label: "children", Words: []string{"children", "kids", "child"}},
			{Label: "fantasy", Words: []string{"fantasy", "animal", "talking"}},
		},
		Negative: []string{"non-fiction", "nonfiction", "non fiction", "true", "real", "fact",
			"mystery", "romance", "horror", "biography"},
		NegativeMessage: "Not quite! Peter Rabbit is actually fiction because it features imaginary talking animals and made-up events.",
		Tiers: []TierRule{
			{MinScore: 2, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You correctly identified this as children's fiction - a story written especially for young readers."},
			{MinScore: 1, Tier: model.FeedbackGood, Correct: true,
				Message: "Great! You're right that this is fiction. It's specifically children's literature with fantasy elements."},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Think about whether Peter Rabbit is a made-up story or a true story, and who it was written for."},
		},
	},
	{
		ID:            "peter-animal",
		Story:         peterStory,
		Question:      "What is the main animal in the story?",
		CorrectAnswer: "Rabbit",
		MaxTokens:     250,
		MinLength:     2,
		Leading:       LeadUpper,
		Context: `The main character Peter is a rabbit (bunny). Other animals (sparrows, a cat, a mouse) are minor characters; Mr. McGregor is a human.
- If they say "Rabbit" or "Bunny", mark as correct.
- If they say just "Peter", it's good but guide them to the animal type.
- If they mention minor animals or Mr. McGregor, explain these are not the main animal.`,
		Groups: []KeywordGroup{
			{Label: "rabbit", Words: []string{"rabbit", "bunny", "bunnies"}, Weight: 2},
			{Label: "peter", Words: []string{"peter"}},
		},
		Negative: []string{"sparrow", "bird", "cat", "mouse", "mcgregor", "human"},
		NegativeMessage: "That animal does appear in the story, but it isn't the main one. Think about what type of animal Peter is.",
		Tiers: []TierRule{
			{MinScore: 2, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Perfect! Rabbit is indeed the main animal in this story. Peter is a rabbit who gets into trouble in Mr. McGregor's garden."},
			{MinScore: 1, Tier: model.FeedbackGood, Correct: true,
				Message: "You're thinking of the right character! Peter is the main character, but what type of animal is he?"},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Think about the main character Peter. What type of animal is he? He has long ears and a fluffy tail."},
		},
	},
	{
		ID:            "peter-personality",
		Story:         peterStory,
		Question:      "How would you describe Peter's personality?",
		CorrectAnswer: "Curious, adventurous, mischievous, and disobedient",
		MaxTokens:     500,
		MinLength:     3,
		Leading:       LeadUpper,
		Context: `Expected personality traits include: curious, adventurous, mischievous, disobedient, brave, determined, clever, naughty, playful, energetic.
Evaluate whether the answer identifies traits that fit Peter's behaviour in the story, and whether it is specific and descriptive.`,
		Groups: []KeywordGroup{
			{Label: "traits", Words: []string{"curious", "adventurous", "mischievous", "disobedient",
				"brave", "determined", "clever", "naughty", "playful", "energetic",
				"bold", "daring", "rebellious"}},
		},
		Tiers: []TierRule{
			{MinScore: 1, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You correctly identified Peter Rabbit's personality. He is indeed curious, adventurous, and a little disobedient in the story."},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Try to describe Peter's character - is he careful and obedient, or curious and adventurous?"},
		},
	},
	{
		ID:            "peter-animal-2",
		Story:         peterStory,
		Question:      "What other main animals are in the story?",
		CorrectAnswer: "Rabbit (Flopsy, Mopsy, and Cotton-tail)",
		MaxTokens:     200,
		MinLength:     2,
		Leading:       LeadUpper,
		Context: `The other main animals are Peter's sisters (Flopsy, Mopsy, and Cotton-tail) and his mother - all rabbits.
- If they mention "Rabbit", the sisters by name, or "Mrs. Rabbit"/"Mother rabbit", mark as correct.
- If they say "Mr. McGregor" (a human) or animals not in the story, gently correct them.`,
		Groups: []KeywordGroup{
			{Label: "rabbit family", Words: []string{"rabbit", "flopsy", "mopsy", "cotton-tail",
				"cotton tail", "sister", "mother", "mom", "mum"}},
		},
		Negative: []string{"mcgregor", "farmer", "human", "person", "cat", "dog", "bird",
			"mouse", "squirrel", "fox", "bear", "wolf"},
		NegativeMessage: "Think about the other characters in the story. Who are the other animals that live with Peter? They are also rabbits like Peter.",
		Tiers: []TierRule{
			{MinScore: 1, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! You correctly identified another rabbit character from the story. The other main animals are Peter's sisters (Flopsy, Mopsy, and Cotton-tail) and his mother."},
			{Tier: model.FeedbackPartial, ShowAnswer: true,
				Message: "Think about Peter's family in the story. Who are the other animals that appear with him? They are the same type of animal as Peter."},
		},
	},
	{
		ID:            "peter-setting",
		Story:         peterStory,
		Question:      "Where does the story take place?",
		CorrectAnswer: "Mr. McGregor's garden",
		MaxTokens:     500,
		MinLength:     2,
		Leading:       LeadLetter,
		Context: `Expected settings include: Mr. McGregor's garden, the vegetable garden, the farm, the countryside, the field.
Evaluate whether the answer identifies where Peter gets into trouble.`,
		Groups: []KeywordGroup{
			{Label: "garden", Words: []string{"garden", "mcgregor", "vegetable", "farm",
				"field", "farmyard", "countryside", "yard", "plot", "patch"}},
		},
		Tiers: []TierRule{
			{MinScore: 1, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! The story takes place in Mr. McGregor's garden, where Peter gets into trouble."},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Think about where Peter goes even though his mother told him not to."},
		},
	},
	{
		ID:            "peter-problem",
		Story:         peterStory,
		Question:      "What is the main problem in the story?",
		CorrectAnswer: "Peter disobeyed his mother and went to Mr. McGregor's garden",
		MaxTokens:     500,
		MinLength:     2,
		Leading:       LeadLetter,
		Context: `Expected problems include: Peter disobeyed his mother, Peter went to Mr. McGregor's garden, Peter got caught/chased, Peter lost his clothes.
Evaluate whether the answer captures the central conflict: Peter's disobedience and the trouble with Mr. McGregor.`,
		Groups: []KeywordGroup{
			{Label: "problem", Words: []string{"disobey", "mother", "warning", "garden",
				"mcgregor", "caught", "chased", "trouble", "lost", "clothes",
				"danger", "forbidden", "shouldn't", "shouldnt"}},
		},
		Tiers: []TierRule{
			{MinScore: 1, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! Peter's disobedience and the resulting trouble with Mr. McGregor is indeed the central conflict of the story."},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Think about what Peter did wrong and what trouble he got into."},
		},
	},
	{
		ID:            "peter-solution",
		Story:         peterStory,
		Question:      "How was the problem solved?",
		CorrectAnswer: "Peter escaped from Mr. McGregor and returned home safely",
		MaxTokens:     500,
		MinLength:     2,
		Leading:       LeadLetter,
		Context: `Expected solutions include: Peter escaped from Mr. McGregor, Peter ran away, Peter got home safely, Peter's mother took care of him, Peter learned his lesson.
Evaluate whether the answer captures the resolution of the conflict.`,
		Groups: []KeywordGroup{
			{Label: "solution", Words: []string{"escape", "ran", "fled", "got away", "home",
				"safely", "saved", "rescued", "returned", "back", "mother",
				"learned", "lesson", "survived", "got out"}},
		},
		Tiers: []TierRule{
			{MinScore: 1, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! Peter's escape and safe return home is indeed how the problem was resolved."},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Think about how Peter got out of trouble and where he ended up."},
		},
	},
	{
		ID:            "peter-lesson",
		Story:         peterStory,
		Question:      "What lesson did Peter learn?",
		CorrectAnswer: "Peter learned to obey his mother and not to disobey warnings",
		MaxTokens:     500,
		MinLength:     2,
		Leading:       LeadLetter,
		Context: `Expected lessons include: Peter learned to obey his mother, to listen to warnings, that disobedience has consequences, to be more careful.
Evaluate whether the answer captures what Peter learned from his experience.`,
		Groups: []KeywordGroup{
			{Label: "lesson", Words: []string{"obey", "listen", "mother", "warning", "disobey",
				"lesson", "learn", "consequence", "careful", "follow", "rule",
				"obedient", "obedience"}},
		},
		Tiers: []TierRule{
			{MinScore: 1, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! Peter's experience taught him the importance of obedience and listening to his mother's warnings."},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Think about what Peter learned from his experience in the garden."},
		},
	},
	{
		ID:            "peter-moral",
		Story:         peterStory,
		Question:      "What is the moral of the story?",
		CorrectAnswer: "Listen to your parents and obey warnings",
		MaxTokens:     500,
		MinLength:     2,
		Leading:       LeadLetter,
		Context: `Expected morals include: listen to your parents, obey warnings, actions have consequences, don't go where you're not supposed to.
Evaluate whether the answer captures the moral lesson the story teaches the reader.`,
		Groups: []KeywordGroup{
			{Label: "moral", Words: []string{"listen", "obey", "parent", "mother", "father",
				"warning", "disobey", "consequence", "careful", "follow", "rule",
				"respect", "boundary", "lesson", "learn"}},
		},
		Tiers: []TierRule{
			{MinScore: 1, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Excellent! The story teaches us the importance of listening to our parents and following their warnings."},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Think about what the story teaches us about listening to parents."},
		},
	},
	{
		ID:         "peter-feelings",
		Story:      peterStory,
		Question:   "How did you feel while reading the story?",
		Subjective: true,
		MaxTokens:  250,
		MinLength:  3,
		Leading:    LeadUpper,
		Context: `This is a personal reflection question. There are no wrong emotions - any genuine feeling about reading the story is valid (excited, worried, curious, sad, relieved, amused...).
- Detailed feelings with explanations = excellent, basic feelings = good, vague responses like "ok" = encourage more detail.
- Never reveal a correct answer; always set show_answer to false. Always validate their emotional response.`,
		Groups: []KeywordGroup{
			{Label: "emotion", Words: []string{"happy", "excited", "joy", "fun", "good", "great",
				"love", "like", "enjoy", "amazing", "wonderful",
				"sad", "scared", "worried", "nervous", "anxious", "concerned",
				"upset", "angry", "afraid", "curious", "interested", "relieved"}},
			{Label: "reflection", Words: []string{"because", "when", "felt", "feel", "made me", "thought"}},
		},
		Tiers: []TierRule{
			{MinScore: 1, MinLength: 15, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Thank you for sharing your feelings about reading Peter Rabbit! It's wonderful when stories make us feel different emotions."},
			{MinScore: 1, MinLength: 8, Tier: model.FeedbackGood, Correct: true,
				Message: "Thanks for sharing how you felt! Reading can bring up many different emotions, and yours are completely valid."},
			{Tier: model.FeedbackNeedsImprovement,
				Message: "Please share more about your feelings while reading. Were you excited during Peter's adventure? Worried when he got in trouble?"},
		},
	},
	{
		ID:       "peter-story-part",
		Story:    peterStory,
		Question: "Which part of the story made you feel that way?",
		CorrectAnswer: "Examples: When Peter entered Mr. McGregor's garden, " +
			"When Mr. McGregor chased Peter, When Peter got caught in the net, " +
			"When Peter escaped and got home safely",
		MaxTokens: 250,
		MinLength: 5,
		Leading:   LeadUpper,
		Context: `This follows the feelings question: the student must connect their emotion to a specific story event (Peter entering the garden, the chase, getting caught in the net, escaping, being sick at home...).
- A specific story moment = excellent/good, a vague story reference = partial, no story part = needs_improvement.
- When show_answer is true, provide example story parts that could evoke emotions.`,
		Groups: []KeywordGroup{
			{Label: "garden", Words: []string{"garden", "mcgregor", "vegetables", "eating", "lettuce", "radish"}},
			{Label: "chase", Words: []string{"chase", "running", "run", "caught", "escape"}},
			{Label: "danger", Words: []string{"danger", "scared", "frightened", "net", "stuck"}},
			{Label: "home", Words: []string{"home", "mother", "sick", "medicine", "bed", "safe"}},
			{Label: "disobey", Words: []string{"disobey", "warning", "told not to", "naughty"}},
		},
		Tiers: []TierRule{
			{MinScore: 1, MinLength: 15, Tier: model.FeedbackExcellent, Correct: true,
				Message: "Perfect! You connected your feelings to a specific part of Peter's story. Different story events can make readers feel different emotions."},
			{MinScore: 1, Tier: model.FeedbackGood, Correct: true,
				Message: "Good connection! You identified a specific part of the story that caused your feelings."},
			{MinLength: 8, Tier: model.FeedbackPartial, ShowAnswer: true,
				Message: "Think of a specific moment or event in Peter's adventure that caused your feelings."},
			{Tier: model.FeedbackNeedsImprovement, ShowAnswer: true,
				Message: "Please describe a specific part of Peter Rabbit's story that made you feel a certain way."},
		},
	},
}

package service

import "errors"

var (
	// ErrUnknownStory means no questions exist for the requested story.
	ErrUnknownStory = errors.New("service: unknown story")

	// ErrSessionFinished means a voice session received a transcript after
	// its last question was already graded.
	ErrSessionFinished = errors.New("service: voice session already finished")
)

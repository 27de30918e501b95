package utilities

import "sync"

type EventHandler func(interface{})

// EventBus is a small in-process pub/sub used to decouple grading outcomes
// from whoever wants to observe them (logging, future analytics).
type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(event string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[event] = append(eb.handlers[event], handler)
}

func (eb *EventBus) Publish(event string, data interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if handlers, found := eb.handlers[event]; found {
		for _, handler := range handlers {
			go handler(data) // Run handlers asynchronously
		}
	}
}

// Global instance
var GlobalEventBus = NewEventBus()

// Event names published by the grading pipeline.
const (
	EventEvaluationCompleted = "evaluation.completed"
	EventVoiceSessionStarted = "voice.session.started"
	EventVoiceSessionEnded   = "voice.session.ended"
)

// EvaluationEvent is the payload for EventEvaluationCompleted.
type EvaluationEvent struct {
	QuestionID string
	Correct    bool
	Feedback   string
	UsedAI     bool
}

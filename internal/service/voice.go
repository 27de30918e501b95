package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"storyquest-backend/internal/model"
	"storyquest-backend/internal/quiz"
	logger "storyquest-backend/pkg/logging"
	"storyquest-backend/utilities"
)

// Synthesizer turns feedback text into audio. Implementations wrap a TTS
// provider; tests use stubs.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// VoiceTurn is the outcome of one spoken answer: the verdict plus the
// synthesized feedback audio. Audio is nil when synthesis failed; the
// session keeps going regardless.
type VoiceTurn struct {
	QuestionID string
	Verdict    model.Verdict
	Audio      []byte
	Done       bool
}

// VoiceSession walks a student through a fixed sequence of questions over a
// spoken channel. Each transcript is graded against the current question,
// then the session advances. Utterances are processed strictly one at a
// time.
type VoiceSession struct {
	ID string

	eval  EvaluationService
	synth Synthesizer
	bus   *utilities.EventBus

	mu        sync.Mutex
	questions []string
	pos       int
}

// VoiceService creates grading sessions for the voice channel.
type VoiceService interface {
	NewSession(story string) (*VoiceSession, error)
}

type voiceService struct {
	eval  EvaluationService
	synth Synthesizer
	bus   *utilities.EventBus
}

func NewVoiceService(eval EvaluationService, synth Synthesizer, bus *utilities.EventBus) VoiceService {
	return &voiceService{eval: eval, synth: synth, bus: bus}
}

// NewSession starts a session over every question of the given story, in
// catalog order.
func (s *voiceService) NewSession(story string) (*VoiceSession, error) {
	ids := quiz.IDsForStory(story)
	if len(ids) == 0 {
		return nil, ErrUnknownStory
	}
	sess := &VoiceSession{
		ID:        uuid.NewString(),
		eval:      s.eval,
		synth:     s.synth,
		bus:       s.bus,
		questions: ids,
	}
	if s.bus != nil {
		s.bus.Publish(utilities.EventVoiceSessionStarted, sess.ID)
	}
	logger.Info("voice session %s started for story %q (%d questions)", sess.ID, story, len(ids))
	return sess, nil
}

// Current returns the question the next transcript will be graded against,
// or false when the session is finished.
func (vs *VoiceSession) Current() (*quiz.QuestionSpec, bool) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.currentLocked()
}

func (vs *VoiceSession) currentLocked() (*quiz.QuestionSpec, bool) {
	if vs.pos >= len(vs.questions) {
		return nil, false
	}
	spec, ok := quiz.Get(vs.questions[vs.pos])
	return spec, ok
}

// HandleTranscript grades one spoken answer and synthesizes the feedback.
// Grading and synthesis run sequentially; a synthesis failure is logged and
// the turn is returned without audio, so one flaky TTS call never ends the
// session.
func (vs *VoiceSession) HandleTranscript(ctx context.Context, transcript string) (VoiceTurn, error) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	spec, ok := vs.currentLocked()
	if !ok {
		return VoiceTurn{Done: true}, ErrSessionFinished
	}

	verdict := vs.eval.Evaluate(ctx, spec.ID, model.NewAnswer(transcript))
	vs.pos++

	turn := VoiceTurn{
		QuestionID: spec.ID,
		Verdict:    verdict,
		Done:       vs.pos >= len(vs.questions),
	}

	if vs.synth != nil {
		audio, err := vs.synth.Synthesize(ctx, verdict.Message)
		if err != nil {
			logger.Warn("voice session %s: synthesis failed for question %s, continuing without audio: %v", vs.ID, spec.ID, err)
		} else {
			turn.Audio = audio
		}
	}

	if turn.Done {
		if vs.bus != nil {
			vs.bus.Publish(utilities.EventVoiceSessionEnded, vs.ID)
		}
		logger.Info("voice session %s finished", vs.ID)
	}
	return turn, nil
}

package service

import (
	"math/rand"

	"github.com/preptalk/preptalk/internal/model"
)

// AnswerScorer produces per-slot feedback for a submitted answer. The
// session state machine only depends on this seam, so a real analyzer can
// replace the default scorer without touching the transition logic.
type AnswerScorer interface {
	Score(question *model.Question, answer string) model.Feedback
}

const encouragementComment = "Good answer! Consider providing more specific examples to strengthen your response."

// RandomScorer draws fluency/clarity/confidence uniformly from [5,10] and
// attaches a fixed encouragement comment.
type RandomScorer struct{}

func NewRandomScorer() *RandomScorer {
	return &RandomScorer{}
}

func (s *RandomScorer) Score(_ *model.Question, _ string) model.Feedback {
	return model.Feedback{
		Fluency:    rand.Intn(6) + 5,
		Clarity:    rand.Intn(6) + 5,
		Confidence: rand.Intn(6) + 5,
		Comment:    encouragementComment,
	}
}

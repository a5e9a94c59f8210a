package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/preptalk/preptalk/config"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiScorer asks an LLM to rate an answer. When the client is not
// configured, or when a call fails, it falls back to the default scorer so
// submissions never block on the external service.
type GeminiScorer struct {
	client   *genai.GenerativeModel
	fallback AnswerScorer
}

func NewGeminiScorer(cfg *config.Config, fallback AnswerScorer) (*GeminiScorer, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiScorer will use the fallback scorer.")
		return &GeminiScorer{client: nil, fallback: fallback}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &GeminiScorer{client: client.GenerativeModel("gemini-1.5-flash"), fallback: fallback}, nil
}

func (s *GeminiScorer) Score(question *model.Question, answer string) model.Feedback {
	if s.client == nil {
		return s.fallback.Score(question, answer)
	}

	prompt := fmt.Sprintf(`You are an experienced interview coach evaluating a candidate's answer.

Question: %s

Candidate's answer: %s

Rate the answer on three axes, each an integer from 0 to 10, and give one
short paragraph of constructive feedback.

Format your response strictly as:
Fluency: [0-10]
Clarity: [0-10]
Confidence: [0-10]
Feedback: [one paragraph]`, question.Text, answer)

	resp, err := s.client.GenerateContent(context.Background(), genai.Text(prompt))
	if err != nil {
		log.Warn().Err(err).Uint("questionID", question.ID).Msg("GeminiScorer: generation failed, using fallback")
		return s.fallback.Score(question, answer)
	}

	raw := collectText(resp)
	feedback, ok := parseFeedback(raw)
	if !ok {
		log.Warn().Str("raw", raw).Msg("GeminiScorer: could not parse response, using fallback")
		return s.fallback.Score(question, answer)
	}
	return feedback
}

func collectText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return b.String()
}

// parseFeedback extracts the three axis scores and the feedback paragraph
// from the labelled response format.
func parseFeedback(raw string) (model.Feedback, bool) {
	var fb model.Feedback
	fluency, okF := parseAxis(raw, "Fluency:")
	clarity, okC := parseAxis(raw, "Clarity:")
	confidence, okN := parseAxis(raw, "Confidence:")
	if !okF || !okC || !okN {
		return fb, false
	}
	fb.Fluency = clamp(fluency, 0, 10)
	fb.Clarity = clamp(clarity, 0, 10)
	fb.Confidence = clamp(confidence, 0, 10)

	if idx := strings.Index(raw, "Feedback:"); idx != -1 {
		fb.Comment = strings.TrimSpace(raw[idx+len("Feedback:"):])
	}
	if fb.Comment == "" {
		fb.Comment = encouragementComment
	}
	return fb, true
}

func parseAxis(raw, prefix string) (int, bool) {
	idx := strings.Index(raw, prefix)
	if idx == -1 {
		return 0, false
	}
	rest := raw[idx+len(prefix):]
	if end := strings.Index(rest, "\n"); end != -1 {
		rest = rest[:end]
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, false
	}
	value, err := strconv.Atoi(strings.Trim(fields[0], "[]"))
	if err != nil {
		return 0, false
	}
	return value, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

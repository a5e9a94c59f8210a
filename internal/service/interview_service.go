package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preptalk/preptalk/internal/apperror"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type InterviewService interface {
	Create(principal *model.User, req dto.CreateInterviewRequest) (*dto.InterviewResponse, error)
	Get(principal *model.User, id uint) (*dto.InterviewResponse, error)
	SubmitAnswer(principal *model.User, id uint, slotIndex int, req dto.SubmitAnswerRequest) (*dto.InterviewResponse, error)
	Complete(principal *model.User, id uint) (*dto.InterviewResponse, error)
	Bookmark(principal *model.User, id uint) (*dto.BookmarkResponse, error)
	ListForUser(principal *model.User) (*dto.InterviewListResponse, error)
	Analytics(principal *model.User) (*dto.AnalyticsResponse, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	questionRepo  repository.QuestionRepository
	scorer        AnswerScorer
}

func NewInterviewService(interviewRepo repository.InterviewRepository, questionRepo repository.QuestionRepository, scorer AnswerScorer) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		questionRepo:  questionRepo,
		scorer:        scorer,
	}
}

// Create builds a session with one empty slot per question id, in the given
// order. The question list is immutable afterwards.
func (s *interviewService) Create(principal *model.User, req dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	if len(req.QuestionIDs) == 0 {
		return nil, apperror.Validationf("question list must not be empty")
	}

	questions, err := s.questionRepo.FindByIDs(req.QuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading questions: %w", err)
	}
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}
	mode := req.Mode
	if mode == "" {
		mode = model.ModeText
	}

	interview := model.Interview{
		UserID:     principal.ID,
		Title:      req.Title,
		JobRole:    req.JobRole,
		Difficulty: difficulty,
		Mode:       mode,
		Status:     model.InterviewInProgress,
	}
	for i, qid := range req.QuestionIDs {
		if _, ok := byID[qid]; !ok {
			return nil, apperror.Validationf("question %d does not exist", qid)
		}
		interview.Slots = append(interview.Slots, model.InterviewSlot{
			SlotIndex:  i,
			QuestionID: qid,
		})
	}

	if err := s.interviewRepo.Create(&interview); err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("Create: failed to create interview")
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	// Fill in the preloaded question data for the response.
	for i := range interview.Slots {
		interview.Slots[i].Question = byID[interview.Slots[i].QuestionID]
	}
	return &dto.InterviewResponse{Success: true, Interview: interviewView(&interview, false)}, nil
}

// Get returns a session with sample answers resolved. Readable by the owner
// or an admin.
func (s *interviewService) Get(principal *model.User, id uint) (*dto.InterviewResponse, error) {
	interview, err := s.loadOwned(principal, id, true)
	if err != nil {
		return nil, err
	}
	return &dto.InterviewResponse{Success: true, Interview: interviewView(interview, true)}, nil
}

// SubmitAnswer records one slot's answer, scores it, and auto-completes the
// session once every slot holds a non-empty answer. All checks run before
// any mutation; on failure the stored session is untouched.
func (s *interviewService) SubmitAnswer(principal *model.User, id uint, slotIndex int, req dto.SubmitAnswerRequest) (*dto.InterviewResponse, error) {
	interview, err := s.loadOwned(principal, id, false)
	if err != nil {
		return nil, err
	}
	if slotIndex < 0 || slotIndex >= len(interview.Slots) {
		return nil, fmt.Errorf("%w: slot %d of %d", apperror.ErrIndexOutOfRange, slotIndex, len(interview.Slots))
	}

	slot := &interview.Slots[slotIndex]
	slot.Answer = req.Answer
	if req.VideoURL != "" {
		slot.VideoURL = req.VideoURL
	}
	if req.AudioURL != "" {
		slot.AudioURL = req.AudioURL
	}
	slot.Feedback = s.scorer.Score(&slot.Question, req.Answer)

	allAnswered := true
	for i := range interview.Slots {
		if strings.TrimSpace(interview.Slots[i].Answer) == "" {
			allAnswered = false
			break
		}
	}
	if allAnswered {
		if model.CanTransition(interview.Status, model.InterviewCompleted) {
			interview.Status = model.InterviewCompleted
		}
		// The auto-completion average runs over every slot; by this point
		// all of them carry feedback.
		interview.OverallScore = overallScore(interview.Slots, false)
	}

	if err := s.interviewRepo.Update(interview); err != nil {
		log.Error().Err(err).Uint("interviewID", id).Int("slot", slotIndex).Msg("SubmitAnswer: failed to save interview")
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}
	return &dto.InterviewResponse{Success: true, Interview: interviewView(interview, false)}, nil
}

// Complete marks the session completed regardless of answer coverage. The
// score averages only the answered slots; with none answered it stays 0.
func (s *interviewService) Complete(principal *model.User, id uint) (*dto.InterviewResponse, error) {
	interview, err := s.loadOwned(principal, id, false)
	if err != nil {
		return nil, err
	}

	if model.CanTransition(interview.Status, model.InterviewCompleted) {
		interview.Status = model.InterviewCompleted
	}
	if answeredCount(interview.Slots) > 0 {
		interview.OverallScore = overallScore(interview.Slots, true)
	}

	if err := s.interviewRepo.Update(interview); err != nil {
		log.Error().Err(err).Uint("interviewID", id).Msg("Complete: failed to save interview")
		return nil, fmt.Errorf("failed to complete interview: %w", err)
	}
	return &dto.InterviewResponse{Success: true, Interview: interviewView(interview, false)}, nil
}

// Bookmark toggles the bookmark flag and returns only the new value.
func (s *interviewService) Bookmark(principal *model.User, id uint) (*dto.BookmarkResponse, error) {
	interview, err := s.loadOwned(principal, id, false)
	if err != nil {
		return nil, err
	}

	interview.IsBookmarked = !interview.IsBookmarked
	if err := s.interviewRepo.Update(interview); err != nil {
		log.Error().Err(err).Uint("interviewID", id).Msg("Bookmark: failed to save interview")
		return nil, fmt.Errorf("failed to bookmark interview: %w", err)
	}
	return &dto.BookmarkResponse{Success: true, IsBookmarked: interview.IsBookmarked}, nil
}

// ListForUser returns the principal's sessions newest first. Questions are
// resolved to their display fields only; sample answers are reserved for
// the single-session read path.
func (s *interviewService) ListForUser(principal *model.User) (*dto.InterviewListResponse, error) {
	interviews, err := s.interviewRepo.FindAllByUser(principal.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("ListForUser: failed to fetch interviews")
		return nil, fmt.Errorf("error fetching interviews: %w", err)
	}

	views := make([]dto.InterviewView, 0, len(interviews))
	for i := range interviews {
		views = append(views, interviewView(&interviews[i], false))
	}
	return &dto.InterviewListResponse{Success: true, Interviews: views}, nil
}

// Analytics aggregates read-only over the principal's completed sessions.
func (s *interviewService) Analytics(principal *model.User) (*dto.AnalyticsResponse, error) {
	completed, err := s.interviewRepo.FindCompletedByUser(principal.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("Analytics: failed to fetch interviews")
		return nil, fmt.Errorf("error fetching analytics: %w", err)
	}

	analytics := dto.Analytics{
		ScoreProgression: []dto.ScorePoint{},
		StrengthAreas:    []string{},
		ImprovementAreas: []string{},
	}
	if len(completed) == 0 {
		return &dto.AnalyticsResponse{Success: true, Analytics: analytics}, nil
	}

	var totalScore float64
	for _, interview := range completed {
		totalScore += interview.OverallScore
		switch interview.Difficulty {
		case model.DifficultyEasy:
			analytics.InterviewsByDifficulty.Easy++
		case model.DifficultyMedium:
			analytics.InterviewsByDifficulty.Medium++
		case model.DifficultyHard:
			analytics.InterviewsByDifficulty.Hard++
		}
		// FindCompletedByUser returns creation-time ascending order.
		analytics.ScoreProgression = append(analytics.ScoreProgression, dto.ScorePoint{
			Date:  interview.CreatedAt,
			Score: interview.OverallScore,
			Title: interview.Title,
		})
	}

	analytics.TotalInterviews = len(completed)
	analytics.AverageScore = totalScore / float64(len(completed))
	analytics.StrengthAreas = []string{"Communication", "Technical knowledge", "Problem-solving"}
	analytics.ImprovementAreas = []string{"Confidence", "Specific examples", "Structured answers"}

	return &dto.AnalyticsResponse{Success: true, Analytics: analytics}, nil
}

// loadOwned fetches a session and enforces the ownership rule. Admins may
// read any session (adminRead), but mutating paths are owner-only.
func (s *interviewService) loadOwned(principal *model.User, id uint, adminRead bool) (*model.Interview, error) {
	interview, err := s.interviewRepo.FindByIDWithSlots(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("interview %d", id)
		}
		return nil, fmt.Errorf("error fetching interview %d: %w", id, err)
	}
	if interview.UserID != principal.ID {
		if !(adminRead && principal.Role == model.RoleAdmin) {
			return nil, apperror.Forbiddenf("not authorized to access interview %d", id)
		}
	}
	return interview, nil
}

func answeredCount(slots []model.InterviewSlot) int {
	n := 0
	for i := range slots {
		if strings.TrimSpace(slots[i].Answer) != "" {
			n++
		}
	}
	return n
}

// overallScore computes the 0-100 aggregate, averaging (f+c+k)/3 per slot
// and rescaling by 10. With answeredOnly the average runs over slots whose
// answer text is non-empty; otherwise over every slot.
func overallScore(slots []model.InterviewSlot, answeredOnly bool) float64 {
	var sum float64
	var n int
	for i := range slots {
		if answeredOnly && strings.TrimSpace(slots[i].Answer) == "" {
			continue
		}
		fb := slots[i].Feedback
		sum += float64(fb.Fluency+fb.Clarity+fb.Confidence) / 3.0
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) * 10
}

// interviewView maps the aggregate onto its response shape.
// withSampleAnswers controls whether slot questions expose their sample
// answers.
func interviewView(interview *model.Interview, withSampleAnswers bool) dto.InterviewView {
	view := dto.InterviewView{
		ID:              interview.ID,
		UserID:          interview.UserID,
		Title:           interview.Title,
		JobRole:         interview.JobRole,
		Difficulty:      interview.Difficulty,
		Mode:            interview.Mode,
		Status:          interview.Status,
		OverallScore:    interview.OverallScore,
		Duration:        interview.Duration,
		FeedbackSummary: interview.FeedbackSummary,
		IsBookmarked:    interview.IsBookmarked,
		Slots:           make([]dto.SlotView, 0, len(interview.Slots)),
		CreatedAt:       interview.CreatedAt,
		UpdatedAt:       interview.UpdatedAt,
	}
	for i := range interview.Slots {
		slot := &interview.Slots[i]
		question := dto.SlotQuestionView{
			ID:         slot.QuestionID,
			Text:       slot.Question.Text,
			Category:   slot.Question.Category,
			Difficulty: slot.Question.Difficulty,
		}
		if withSampleAnswers {
			question.SampleAnswer = slot.Question.SampleAnswer
		}
		view.Slots = append(view.Slots, dto.SlotView{
			SlotIndex: slot.SlotIndex,
			Question:  question,
			Answer:    slot.Answer,
			VideoURL:  slot.VideoURL,
			AudioURL:  slot.AudioURL,
			Feedback: dto.FeedbackView{
				Fluency:    slot.Feedback.Fluency,
				Clarity:    slot.Feedback.Clarity,
				Confidence: slot.Feedback.Confidence,
				Comment:    slot.Feedback.Comment,
			},
		})
	}
	return view
}

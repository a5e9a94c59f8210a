package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/jinzhu/copier"
	"github.com/preptalk/preptalk/internal/apperror"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	List(filter dto.QuestionFilter, page, limit int) (*dto.QuestionListResponse, error)
	GetByID(id uint) (*dto.QuestionDetailResponse, error)
	Create(principal *model.User, req dto.CreateQuestionRequest) (*dto.QuestionDetailResponse, error)
	Update(principal *model.User, id uint, req dto.UpdateQuestionRequest) (*dto.QuestionDetailResponse, error)
	Delete(principal *model.User, id uint) error
	RandomSample(jobRole, difficulty string, count int) (*dto.QuestionsResponse, error)
	Generate(principal *model.User, req dto.GenerateQuestionsRequest) (*dto.QuestionsResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) List(filter dto.QuestionFilter, page, limit int) (*dto.QuestionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	questions, total, err := s.repo.FindFiltered(filter, page, limit)
	if err != nil {
		log.Error().Err(err).Msg("List: failed to fetch questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	views := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		views = append(views, questionView(&questions[i]))
	}
	return &dto.QuestionListResponse{
		Success:   true,
		Questions: views,
		Pagination: dto.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *questionService) GetByID(id uint) (*dto.QuestionDetailResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("question %d", id)
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}
	return &dto.QuestionDetailResponse{Success: true, Question: questionView(question)}, nil
}

func (s *questionService) Create(principal *model.User, req dto.CreateQuestionRequest) (*dto.QuestionDetailResponse, error) {
	if !principal.IsElevated() {
		return nil, apperror.Forbiddenf("only recruiters and admins may create questions")
	}
	if !model.ValidCategory(req.Category) {
		return nil, apperror.Validationf("unknown category %q", req.Category)
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}

	question := model.Question{
		Text:         req.Text,
		Category:     req.Category,
		JobRole:      req.JobRole,
		Difficulty:   difficulty,
		SampleAnswer: req.SampleAnswer,
		Tags:         req.Tags,
		CreatedByID:  principal.ID,
	}
	if question.Tags == nil {
		question.Tags = []string{}
	}
	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Create: failed to create question")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return &dto.QuestionDetailResponse{Success: true, Question: questionView(&question)}, nil
}

func (s *questionService) Update(principal *model.User, id uint, req dto.UpdateQuestionRequest) (*dto.QuestionDetailResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("question %d", id)
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}
	if question.CreatedByID != principal.ID && !principal.IsElevated() {
		return nil, apperror.Forbiddenf("not authorized to update question %d", id)
	}

	if req.Category != "" && !model.ValidCategory(req.Category) {
		return nil, apperror.Validationf("unknown category %q", req.Category)
	}
	if req.Text != "" {
		question.Text = req.Text
	}
	if req.Category != "" {
		question.Category = req.Category
	}
	if req.JobRole != "" {
		question.JobRole = req.JobRole
	}
	if req.Difficulty != "" {
		question.Difficulty = req.Difficulty
	}
	if req.SampleAnswer != "" {
		question.SampleAnswer = req.SampleAnswer
	}
	if req.Tags != nil {
		question.Tags = req.Tags
	}

	if err := s.repo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Update: failed to save question")
		return nil, fmt.Errorf("failed to update question %d: %w", id, err)
	}
	return &dto.QuestionDetailResponse{Success: true, Question: questionView(question)}, nil
}

func (s *questionService) Delete(principal *model.User, id uint) error {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFoundf("question %d", id)
		}
		return fmt.Errorf("error fetching question %d: %w", id, err)
	}
	if question.CreatedByID != principal.ID && !principal.IsElevated() {
		return apperror.Forbiddenf("not authorized to delete question %d", id)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

func (s *questionService) RandomSample(jobRole, difficulty string, count int) (*dto.QuestionsResponse, error) {
	if jobRole == "" {
		return nil, apperror.Validationf("job role is required")
	}
	if count < 1 {
		count = 5
	}

	questions, err := s.repo.RandomSample(jobRole, difficulty, count)
	if err != nil {
		log.Error().Err(err).Str("jobRole", jobRole).Msg("RandomSample: repository error")
		return nil, fmt.Errorf("error sampling questions: %w", err)
	}

	views := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		views = append(views, questionView(&questions[i]))
	}
	return &dto.QuestionsResponse{Success: true, Questions: views}, nil
}

// Generate persists a random selection from the canned per-role question
// bank, marked as AI-generated. Selection is without replacement.
func (s *questionService) Generate(principal *model.User, req dto.GenerateQuestionsRequest) (*dto.QuestionsResponse, error) {
	if req.JobRole == "" {
		return nil, apperror.Validationf("job role is required")
	}
	count := req.Count
	if count < 1 {
		count = 5
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}

	bank, ok := generatedQuestionBank[req.JobRole]
	if !ok {
		bank = genericQuestionBank
	}
	pool := make([]string, len(bank))
	copy(pool, bank)
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if count > len(pool) {
		count = len(pool)
	}

	questions := make([]model.Question, 0, count)
	for _, text := range pool[:count] {
		questions = append(questions, model.Question{
			Text:          text,
			Category:      "other",
			JobRole:       req.JobRole,
			Difficulty:    difficulty,
			Tags:          []string{},
			CreatedByID:   principal.ID,
			IsAIGenerated: true,
		})
	}
	if err := s.repo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Str("jobRole", req.JobRole).Msg("Generate: failed to persist questions")
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	views := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		views = append(views, questionView(&questions[i]))
	}
	return &dto.QuestionsResponse{Success: true, Questions: views}, nil
}

func questionView(q *model.Question) dto.QuestionResponse {
	var view dto.QuestionResponse
	copier.Copy(&view, q)
	if view.Tags == nil {
		view.Tags = []string{}
	}
	if q.CreatedBy != nil {
		view.CreatedByName = q.CreatedBy.Name
	}
	return view
}

package repository

import (
	"strings"

	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	CreateBatch(questions []model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	FindFiltered(filter dto.QuestionFilter, page, limit int) ([]model.Question, int64, error)
	RandomSample(jobRole, difficulty string, count int) ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) CreateBatch(questions []model.Question) error {
	return r.db.Create(&questions).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("CreatedBy").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindFiltered(filter dto.QuestionFilter, page, limit int) ([]model.Question, int64, error) {
	query := r.db.Model(&model.Question{})

	if filter.JobRole != "" {
		query = query.Where("job_role = ?", filter.JobRole)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		// Case-insensitive substring match across text, job role and the
		// JSON-encoded tag list. LOWER/LIKE keeps this portable across
		// postgres and the sqlite test databases.
		needle := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(text) LIKE ? OR LOWER(job_role) LIKE ? OR LOWER(CAST(tags AS TEXT)) LIKE ?",
			needle, needle, needle,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.Question
	offset := (page - 1) * limit
	err := query.Preload("CreatedBy").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// RandomSample selects up to count questions matching the filter, uniformly
// at random without replacement.
func (r *questionRepository) RandomSample(jobRole, difficulty string, count int) ([]model.Question, error) {
	query := r.db.Where("job_role = ?", jobRole)
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var questions []model.Question
	if err := query.Order("RANDOM()").Limit(count).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}

package repository

import (
	"github.com/preptalk/preptalk/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(interview *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	FindByIDWithSlots(id uint) (*model.Interview, error)
	FindAllByUser(userID uint) ([]model.Interview, error)
	FindCompletedByUser(userID uint) ([]model.Interview, error)
	Update(interview *model.Interview) error
	UpdateSlot(slot *model.InterviewSlot) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	// GORM creates the associated slots alongside the interview.
	return r.db.Create(interview).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var interview model.Interview
	if err := r.db.First(&interview, id).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindByIDWithSlots(id uint) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("interview_slots.slot_index ASC")
		}).
		Preload("Slots.Question").
		First(&interview, id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) FindAllByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("interview_slots.slot_index ASC")
		}).
		Preload("Slots.Question").
		Order("created_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) FindCompletedByUser(userID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.
		Where("user_id = ? AND status = ?", userID, model.InterviewCompleted).
		Order("created_at ASC").
		Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) Update(interview *model.Interview) error {
	// FullSaveAssociations so edits to existing slot rows (answers,
	// feedback) are written back, not just the interview row.
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(interview).Error
}

func (r *interviewRepository) UpdateSlot(slot *model.InterviewSlot) error {
	return r.db.Save(slot).Error
}

package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// QuestionCategories is the closed set of accepted question categories.
var QuestionCategories = []string{
	"technical", "behavioral", "hr", "problem-solving",
	"leadership", "project-management", "other",
}

type Question struct {
	ID            uint                        `gorm:"primarykey" json:"id"`
	Text          string                      `json:"text" gorm:"type:text;not null;index"`
	Category      string                      `json:"category" gorm:"not null;index"`
	JobRole       string                      `json:"job_role" gorm:"not null;index"`
	Difficulty    string                      `json:"difficulty" gorm:"not null;default:'medium'"` // "easy", "medium", "hard"
	SampleAnswer  string                      `json:"sample_answer,omitempty" gorm:"type:text"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	CreatedByID   uint                        `json:"created_by_id" gorm:"index"`
	CreatedBy     *User                       `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	IsAIGenerated bool                        `json:"is_ai_generated"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	DeletedAt     gorm.DeletedAt              `gorm:"index" json:"-"`
}

// ValidCategory reports whether c belongs to the closed category enum.
func ValidCategory(c string) bool {
	for _, known := range QuestionCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidDifficulty reports whether d is one of the accepted difficulty levels.
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

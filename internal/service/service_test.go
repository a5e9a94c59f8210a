package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/preptalk/preptalk/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. The DSN is keyed by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Interview{},
		&model.InterviewSlot{},
		&model.Post{},
		&model.Comment{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, role string) *model.User {
	t.Helper()
	user := model.User{
		Name:     name,
		Email:    strings.ToLower(name) + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedQuestions(t *testing.T, db *gorm.DB, creatorID uint, texts ...string) []uint {
	t.Helper()
	ids := make([]uint, 0, len(texts))
	for _, text := range texts {
		question := model.Question{
			Text:        text,
			Category:    "technical",
			JobRole:     "Software Engineer",
			Difficulty:  model.DifficultyMedium,
			Tags:        []string{},
			CreatedByID: creatorID,
		}
		require.NoError(t, db.Create(&question).Error)
		ids = append(ids, question.ID)
	}
	return ids
}

// fixedScorer returns the same feedback for every answer, so score math in
// tests is deterministic.
type fixedScorer struct {
	fb model.Feedback
}

func (s fixedScorer) Score(_ *model.Question, _ string) model.Feedback {
	return s.fb
}

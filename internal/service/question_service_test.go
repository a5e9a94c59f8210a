package service

import (
	"testing"

	"github.com/preptalk/preptalk/internal/apperror"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuestionService(t *testing.T) (QuestionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewQuestionService(repository.NewQuestionRepository(db)), db
}

func TestCreateQuestion(t *testing.T) {
	svc, db := newQuestionService(t)
	recruiter := seedUser(t, db, "Rita", model.RoleRecruiter)

	resp, err := svc.Create(recruiter, dto.CreateQuestionRequest{
		Text:     "Walk me through a system you designed",
		Category: "technical",
		JobRole:  "Software Engineer",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, model.DifficultyMedium, resp.Question.Difficulty)
	assert.NotNil(t, resp.Question.Tags)
	assert.Equal(t, recruiter.ID, resp.Question.CreatedByID)
	assert.False(t, resp.Question.IsAIGenerated)
}

func TestCreateQuestionRejections(t *testing.T) {
	svc, db := newQuestionService(t)
	plain := seedUser(t, db, "Paul", model.RoleUser)
	recruiter := seedUser(t, db, "Rita", model.RoleRecruiter)

	_, err := svc.Create(plain, dto.CreateQuestionRequest{
		Text: "x", Category: "technical", JobRole: "SE",
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = svc.Create(recruiter, dto.CreateQuestionRequest{
		Text: "x", Category: "astrology", JobRole: "SE",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestListQuestionsFilterAndPagination(t *testing.T) {
	svc, db := newQuestionService(t)
	recruiter := seedUser(t, db, "Rita", model.RoleRecruiter)

	seed := []model.Question{
		{Text: "Explain goroutines", Category: "technical", JobRole: "Software Engineer", Difficulty: model.DifficultyMedium, Tags: []string{"go"}, CreatedByID: recruiter.ID},
		{Text: "Describe a team conflict", Category: "behavioral", JobRole: "Software Engineer", Difficulty: model.DifficultyEasy, Tags: []string{}, CreatedByID: recruiter.ID},
		{Text: "Explain SQL joins", Category: "technical", JobRole: "Data Analyst", Difficulty: model.DifficultyMedium, Tags: []string{"sql"}, CreatedByID: recruiter.ID},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	resp, err := svc.List(dto.QuestionFilter{Category: "technical"}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
	assert.EqualValues(t, 2, resp.Pagination.Total)
	assert.Equal(t, 1, resp.Pagination.Pages)

	resp, err = svc.List(dto.QuestionFilter{JobRole: "Data Analyst"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "Explain SQL joins", resp.Questions[0].Text)

	// search is case-insensitive over the question text
	resp, err = svc.List(dto.QuestionFilter{Search: "GOROUTINES"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "Explain goroutines", resp.Questions[0].Text)

	// limit 2 over 3 rows gives two pages
	resp, err = svc.List(dto.QuestionFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
	assert.Equal(t, 2, resp.Pagination.Pages)
	resp, err = svc.List(dto.QuestionFilter{}, 2, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 1)
}

func TestGetQuestionNotFound(t *testing.T) {
	svc, _ := newQuestionService(t)
	_, err := svc.GetByID(404)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateQuestion(t *testing.T) {
	svc, db := newQuestionService(t)
	recruiter := seedUser(t, db, "Rita", model.RoleRecruiter)
	other := seedUser(t, db, "Paul", model.RoleUser)

	created, err := svc.Create(recruiter, dto.CreateQuestionRequest{
		Text: "Original text", Category: "technical", JobRole: "SE", SampleAnswer: "Keep me",
	})
	require.NoError(t, err)
	id := created.Question.ID

	_, err = svc.Update(other, id, dto.UpdateQuestionRequest{Text: "hijacked"})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	// empty fields keep their stored values
	updated, err := svc.Update(recruiter, id, dto.UpdateQuestionRequest{Difficulty: model.DifficultyHard})
	require.NoError(t, err)
	assert.Equal(t, "Original text", updated.Question.Text)
	assert.Equal(t, "Keep me", updated.Question.SampleAnswer)
	assert.Equal(t, model.DifficultyHard, updated.Question.Difficulty)

	_, err = svc.Update(recruiter, id, dto.UpdateQuestionRequest{Category: "astrology"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestDeleteQuestion(t *testing.T) {
	svc, db := newQuestionService(t)
	recruiter := seedUser(t, db, "Rita", model.RoleRecruiter)
	other := seedUser(t, db, "Paul", model.RoleUser)

	created, err := svc.Create(recruiter, dto.CreateQuestionRequest{
		Text: "Delete me", Category: "technical", JobRole: "SE",
	})
	require.NoError(t, err)
	id := created.Question.ID

	assert.ErrorIs(t, svc.Delete(other, id), apperror.ErrForbidden)
	require.NoError(t, svc.Delete(recruiter, id))
	_, err = svc.GetByID(id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRandomSample(t *testing.T) {
	svc, db := newQuestionService(t)
	recruiter := seedUser(t, db, "Rita", model.RoleRecruiter)

	texts := make([]string, 10)
	for i := range texts {
		texts[i] = "question"
	}
	seedQuestions(t, db, recruiter.ID, texts...)

	resp, err := svc.RandomSample("Software Engineer", "", 5)
	require.NoError(t, err)
	require.Len(t, resp.Questions, 5)

	// sampling is without replacement
	seen := make(map[uint]bool)
	for _, q := range resp.Questions {
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}

	// asking for more than exist returns everything available
	resp, err = svc.RandomSample("Software Engineer", "", 50)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 10)

	_, err = svc.RandomSample("", "", 5)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestGenerateQuestions(t *testing.T) {
	svc, db := newQuestionService(t)
	user := seedUser(t, db, "Paul", model.RoleUser)

	resp, err := svc.Generate(user, dto.GenerateQuestionsRequest{
		JobRole: "Software Engineer",
		Count:   4,
	})
	require.NoError(t, err)
	require.Len(t, resp.Questions, 4)
	for _, q := range resp.Questions {
		assert.True(t, q.IsAIGenerated)
		assert.Equal(t, "other", q.Category)
		assert.Equal(t, "Software Engineer", q.JobRole)
		assert.Equal(t, model.DifficultyMedium, q.Difficulty)
	}

	// generated questions land in the catalog
	var count int64
	require.NoError(t, db.Model(&model.Question{}).Where("is_ai_generated = ?", true).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestGenerateQuestionsUnknownRole(t *testing.T) {
	svc, db := newQuestionService(t)
	user := seedUser(t, db, "Paul", model.RoleUser)

	// roles without a dedicated bank fall back to the generic one
	resp, err := svc.Generate(user, dto.GenerateQuestionsRequest{
		JobRole: "Marine Biologist",
		Count:   20,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Questions, len(genericQuestionBank))

	_, err = svc.Generate(user, dto.GenerateQuestionsRequest{})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

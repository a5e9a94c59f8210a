package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, category := range QuestionCategories {
		assert.True(t, ValidCategory(category))
	}
	assert.False(t, ValidCategory("astrology"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("Technical")) // case-sensitive
}

func TestValidDifficulty(t *testing.T) {
	assert.True(t, ValidDifficulty(DifficultyEasy))
	assert.True(t, ValidDifficulty(DifficultyMedium))
	assert.True(t, ValidDifficulty(DifficultyHard))
	assert.False(t, ValidDifficulty("impossible"))
	assert.False(t, ValidDifficulty(""))
}

func TestIsElevated(t *testing.T) {
	assert.False(t, (&User{Role: RoleUser}).IsElevated())
	assert.True(t, (&User{Role: RoleRecruiter}).IsElevated())
	assert.True(t, (&User{Role: RoleAdmin}).IsElevated())
}

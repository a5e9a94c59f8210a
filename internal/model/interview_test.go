package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{InterviewInProgress, InterviewCompleted, true},
		{InterviewCompleted, InterviewReviewed, true},
		{InterviewInProgress, InterviewReviewed, true},
		{InterviewCompleted, InterviewCompleted, true},
		{InterviewCompleted, InterviewInProgress, false},
		{InterviewReviewed, InterviewCompleted, false},
		{InterviewReviewed, InterviewInProgress, false},
		{"bogus", InterviewCompleted, false},
		{InterviewInProgress, "bogus", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestValidMode(t *testing.T) {
	assert.True(t, ValidMode(ModeVideo))
	assert.True(t, ValidMode(ModeAudio))
	assert.True(t, ValidMode(ModeText))
	assert.False(t, ValidMode("telepathy"))
	assert.False(t, ValidMode(""))
}

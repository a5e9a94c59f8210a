package dto

import "time"

// CreateQuestionRequest is for recruiters/admins adding catalog entries.
type CreateQuestionRequest struct {
	Text         string   `json:"text" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	JobRole      string   `json:"job_role" binding:"required"`
	Difficulty   string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	SampleAnswer string   `json:"sample_answer"`
	Tags         []string `json:"tags"`
}

// UpdateQuestionRequest patches an existing question; empty fields keep
// their stored value.
type UpdateQuestionRequest struct {
	Text         string   `json:"text"`
	Category     string   `json:"category"`
	JobRole      string   `json:"job_role"`
	Difficulty   string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	SampleAnswer string   `json:"sample_answer"`
	Tags         []string `json:"tags"`
}

// QuestionFilter captures the catalog list query surface.
type QuestionFilter struct {
	JobRole    string
	Category   string
	Difficulty string
	Search     string
}

type QuestionResponse struct {
	ID            uint      `json:"id"`
	Text          string    `json:"text"`
	Category      string    `json:"category"`
	JobRole       string    `json:"job_role"`
	Difficulty    string    `json:"difficulty"`
	SampleAnswer  string    `json:"sample_answer,omitempty"`
	Tags          []string  `json:"tags"`
	CreatedByID   uint      `json:"created_by_id"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	IsAIGenerated bool      `json:"is_ai_generated"`
	CreatedAt     time.Time `json:"created_at"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type QuestionListResponse struct {
	Success    bool               `json:"success"`
	Questions  []QuestionResponse `json:"questions"`
	Pagination Pagination         `json:"pagination"`
}

type QuestionDetailResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

type QuestionsResponse struct {
	Success   bool               `json:"success"`
	Questions []QuestionResponse `json:"questions"`
}

// GenerateQuestionsRequest drives the canned question generation pathway.
type GenerateQuestionsRequest struct {
	JobRole    string `json:"job_role" binding:"required"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Count      int    `json:"count" binding:"omitempty,min=1,max=20"`
}

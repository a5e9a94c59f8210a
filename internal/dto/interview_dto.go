package dto

import "time"

// CreateInterviewRequest starts a session with a fixed, ordered question list.
type CreateInterviewRequest struct {
	Title       string `json:"title" binding:"required"`
	JobRole     string `json:"job_role" binding:"required"`
	Difficulty  string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	QuestionIDs []uint `json:"question_ids" binding:"required,min=1"`
	Mode        string `json:"mode" binding:"omitempty,oneof=video audio text"`
}

// SubmitAnswerRequest carries one slot's answer text plus optional media.
type SubmitAnswerRequest struct {
	Answer   string `json:"answer"`
	VideoURL string `json:"video_url"`
	AudioURL string `json:"audio_url"`
}

// SlotQuestionView is the question projection embedded in a slot. The
// sample answer is only populated on the single-interview read path.
type SlotQuestionView struct {
	ID           uint   `json:"id"`
	Text         string `json:"text"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	SampleAnswer string `json:"sample_answer,omitempty"`
}

type FeedbackView struct {
	Fluency    int    `json:"fluency"`
	Clarity    int    `json:"clarity"`
	Confidence int    `json:"confidence"`
	Comment    string `json:"comment"`
}

type SlotView struct {
	SlotIndex int              `json:"slot_index"`
	Question  SlotQuestionView `json:"question"`
	Answer    string           `json:"answer"`
	VideoURL  string           `json:"video_url,omitempty"`
	AudioURL  string           `json:"audio_url,omitempty"`
	Feedback  FeedbackView     `json:"feedback"`
}

type InterviewView struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"user_id"`
	Title           string     `json:"title"`
	JobRole         string     `json:"job_role"`
	Difficulty      string     `json:"difficulty"`
	Mode            string     `json:"mode"`
	Status          string     `json:"status"`
	OverallScore    float64    `json:"overall_score"`
	Duration        int        `json:"duration"`
	FeedbackSummary string     `json:"feedback_summary,omitempty"`
	IsBookmarked    bool       `json:"is_bookmarked"`
	Slots           []SlotView `json:"slots"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type InterviewResponse struct {
	Success   bool          `json:"success"`
	Interview InterviewView `json:"interview"`
}

type InterviewListResponse struct {
	Success    bool            `json:"success"`
	Interviews []InterviewView `json:"interviews"`
}

type BookmarkResponse struct {
	Success      bool `json:"success"`
	IsBookmarked bool `json:"is_bookmarked"`
}

// ScorePoint is one entry of the chronological score progression.
type ScorePoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
	Title string    `json:"title"`
}

type DifficultyBuckets struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

type Analytics struct {
	TotalInterviews        int               `json:"totalInterviews"`
	AverageScore           float64           `json:"averageScore"`
	InterviewsByDifficulty DifficultyBuckets `json:"interviewsByDifficulty"`
	ScoreProgression       []ScorePoint      `json:"scoreProgression"`
	StrengthAreas          []string          `json:"strengthAreas"`
	ImprovementAreas       []string          `json:"improvementAreas"`
}

type AnalyticsResponse struct {
	Success   bool      `json:"success"`
	Analytics Analytics `json:"analytics"`
}

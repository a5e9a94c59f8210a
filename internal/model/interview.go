package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	InterviewInProgress = "in-progress"
	InterviewCompleted  = "completed"
	InterviewReviewed   = "reviewed"

	ModeVideo = "video"
	ModeAudio = "audio"
	ModeText  = "text"
)

// Interview is the session aggregate: an ordered list of question slots
// owned by a single user, with a derived overall score in [0,100].
type Interview struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	User            *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title           string          `json:"title" gorm:"not null"`
	JobRole         string          `json:"job_role" gorm:"not null"`
	Difficulty      string          `json:"difficulty" gorm:"not null;default:'medium'"`
	Mode            string          `json:"mode" gorm:"not null;default:'text'"` // "video", "audio", "text"
	Status          string          `json:"status" gorm:"not null;default:'in-progress'"`
	OverallScore    float64         `json:"overall_score"` // derived, 0-100
	Duration        int             `json:"duration"`      // seconds
	FeedbackSummary string          `json:"feedback_summary,omitempty" gorm:"type:text"`
	IsBookmarked    bool            `json:"is_bookmarked"`
	Slots           []InterviewSlot `json:"slots,omitempty" gorm:"foreignKey:InterviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

// InterviewSlot is one question-answer pairing, addressed by its fixed
// creation-time index. Feedback fields stay zero until the slot is scored.
type InterviewSlot struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	InterviewID uint      `json:"interview_id" gorm:"not null;index"`
	SlotIndex   int       `json:"slot_index" gorm:"not null"`
	QuestionID  uint      `json:"question_id" gorm:"not null;index"`
	Question    Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer      string    `json:"answer" gorm:"type:text"`
	VideoURL    string    `json:"video_url,omitempty"`
	AudioURL    string    `json:"audio_url,omitempty"`
	Feedback    Feedback  `json:"feedback" gorm:"embedded;embeddedPrefix:feedback_"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Feedback is the per-slot scored sub-record.
type Feedback struct {
	Fluency    int    `json:"fluency"`    // 0-10
	Clarity    int    `json:"clarity"`    // 0-10
	Confidence int    `json:"confidence"` // 0-10
	Comment    string `json:"comment" gorm:"type:text"`
}

// statusRank orders the forward-only lifecycle.
var statusRank = map[string]int{
	InterviewInProgress: 0,
	InterviewCompleted:  1,
	InterviewReviewed:   2,
}

// CanTransition reports whether moving from into to would keep the status
// monotone. Re-asserting the current status is allowed.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

// ValidMode reports whether m is one of the accepted interview modes.
func ValidMode(m string) bool {
	return m == ModeVideo || m == ModeAudio || m == ModeText
}

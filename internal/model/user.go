package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

type User struct {
	ID             uint                         `gorm:"primarykey" json:"id"`
	Name           string                       `json:"name" gorm:"not null"`
	Email          string                       `json:"email" gorm:"not null;uniqueIndex"`
	Password       string                       `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Role           string                       `json:"role" gorm:"not null;default:'user'"` // "user", "recruiter", "admin"
	JobRole        string                       `json:"job_role"`
	Experience     int                          `json:"experience"` // years
	Skills         datatypes.JSONSlice[string]  `json:"skills"`
	Resume         string                       `json:"resume"`
	ProfilePicture string                       `json:"profile_picture"`
	Interviews     []Interview                  `json:"interviews,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
	DeletedAt      gorm.DeletedAt               `gorm:"index" json:"-"`
}

// IsElevated reports whether the user may manage catalog questions.
func (u *User) IsElevated() bool {
	return u.Role == RoleRecruiter || u.Role == RoleAdmin
}

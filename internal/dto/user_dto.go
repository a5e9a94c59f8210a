package dto

import "time"

// UpdateProfileRequest patches the calling user's own record. Zero-valued
// fields are left untouched.
type UpdateProfileRequest struct {
	Name       string   `json:"name"`
	Password   string   `json:"password" binding:"omitempty,min=6"`
	JobRole    string   `json:"job_role"`
	Experience *int     `json:"experience"`
	Skills     []string `json:"skills"`
}

// ProfileView is the full own-profile projection (no credential hash).
type ProfileView struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	JobRole        string    `json:"job_role"`
	Experience     int       `json:"experience"`
	Skills         []string  `json:"skills"`
	Resume         string    `json:"resume"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProfileResponse struct {
	Success bool        `json:"success"`
	User    ProfileView `json:"user"`
}

// UploadResponse returns the stored path for an uploaded file.
type UploadResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
}

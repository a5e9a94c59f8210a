package dto

import "time"

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdatePostRequest patches title/content; empty fields keep their value.
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentView struct {
	ID         uint      `json:"id"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type PostView struct {
	ID         uint          `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	AuthorID   uint          `json:"author_id"`
	AuthorName string        `json:"author_name,omitempty"`
	Likes      int           `json:"likes"`
	Comments   []CommentView `json:"comments"`
	CreatedAt  time.Time     `json:"created_at"`
}

type PostResponse struct {
	Success bool     `json:"success"`
	Post    PostView `json:"post"`
}

type PostListResponse struct {
	Success bool       `json:"success"`
	Posts   []PostView `json:"posts"`
}

type LikeResponse struct {
	Success bool `json:"success"`
	Likes   int  `json:"likes"`
}

package service

import (
	"errors"
	"fmt"

	"github.com/preptalk/preptalk/internal/apperror"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ForumService interface {
	ListPosts() (*dto.PostListResponse, error)
	GetPost(id uint) (*dto.PostResponse, error)
	CreatePost(principal *model.User, req dto.CreatePostRequest) (*dto.PostResponse, error)
	UpdatePost(principal *model.User, id uint, req dto.UpdatePostRequest) (*dto.PostResponse, error)
	DeletePost(principal *model.User, id uint) error
	AddComment(principal *model.User, postID uint, req dto.AddCommentRequest) (*dto.PostResponse, error)
	LikePost(postID uint) (*dto.LikeResponse, error)
}

type forumService struct {
	postRepo repository.PostRepository
}

func NewForumService(postRepo repository.PostRepository) ForumService {
	return &forumService{postRepo: postRepo}
}

func (s *forumService) ListPosts() (*dto.PostListResponse, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListPosts: failed to fetch posts")
		return nil, fmt.Errorf("error fetching posts: %w", err)
	}
	views := make([]dto.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, postView(&posts[i]))
	}
	return &dto.PostListResponse{Success: true, Posts: views}, nil
}

func (s *forumService) GetPost(id uint) (*dto.PostResponse, error) {
	post, err := s.findPost(id)
	if err != nil {
		return nil, err
	}
	return &dto.PostResponse{Success: true, Post: postView(post)}, nil
}

func (s *forumService) CreatePost(principal *model.User, req dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := model.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: principal.ID,
	}
	if err := s.postRepo.Create(&post); err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("CreatePost: failed to create post")
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	post.Author = principal
	return &dto.PostResponse{Success: true, Post: postView(&post)}, nil
}

func (s *forumService) UpdatePost(principal *model.User, id uint, req dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.findPost(id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != principal.ID {
		return nil, apperror.Forbiddenf("not authorized to update post %d", id)
	}
	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}
	return &dto.PostResponse{Success: true, Post: postView(post)}, nil
}

func (s *forumService) DeletePost(principal *model.User, id uint) error {
	post, err := s.findPost(id)
	if err != nil {
		return err
	}
	if post.AuthorID != principal.ID {
		return apperror.Forbiddenf("not authorized to delete post %d", id)
	}
	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}
	return nil
}

func (s *forumService) AddComment(principal *model.User, postID uint, req dto.AddCommentRequest) (*dto.PostResponse, error) {
	if _, err := s.findPost(postID); err != nil {
		return nil, err
	}
	comment := model.Comment{
		PostID:   postID,
		AuthorID: principal.ID,
		Content:  req.Content,
	}
	if err := s.postRepo.AddComment(&comment); err != nil {
		log.Error().Err(err).Uint("postID", postID).Msg("AddComment: failed to create comment")
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	post, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}
	return &dto.PostResponse{Success: true, Post: postView(post)}, nil
}

// LikePost increments the like counter. Repeated likes from the same user
// are not deduplicated.
func (s *forumService) LikePost(postID uint) (*dto.LikeResponse, error) {
	likes, err := s.postRepo.IncrementLikes(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("post %d", postID)
		}
		return nil, fmt.Errorf("failed to like post %d: %w", postID, err)
	}
	return &dto.LikeResponse{Success: true, Likes: likes}, nil
}

func (s *forumService) findPost(id uint) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("post %d", id)
		}
		return nil, fmt.Errorf("error fetching post %d: %w", id, err)
	}
	return post, nil
}

func postView(post *model.Post) dto.PostView {
	view := dto.PostView{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		Likes:     post.Likes,
		Comments:  make([]dto.CommentView, 0, len(post.Comments)),
		CreatedAt: post.CreatedAt,
	}
	if post.Author != nil {
		view.AuthorName = post.Author.Name
	}
	for i := range post.Comments {
		comment := &post.Comments[i]
		cv := dto.CommentView{
			ID:        comment.ID,
			AuthorID:  comment.AuthorID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if comment.Author != nil {
			cv.AuthorName = comment.Author.Name
		}
		view.Comments = append(view.Comments, cv)
	}
	return view
}

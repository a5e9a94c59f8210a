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

func newForumService(t *testing.T) (ForumService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewForumService(repository.NewPostRepository(db)), db
}

func TestCreateAndGetPost(t *testing.T) {
	svc, db := newForumService(t)
	author := seedUser(t, db, "Alice", model.RoleUser)

	created, err := svc.CreatePost(author, dto.CreatePostRequest{
		Title:   "How do I prepare for system design rounds?",
		Content: "Looking for resources.",
	})
	require.NoError(t, err)
	assert.True(t, created.Success)
	assert.Equal(t, author.ID, created.Post.AuthorID)
	assert.Equal(t, "Alice", created.Post.AuthorName)
	assert.Zero(t, created.Post.Likes)
	assert.Empty(t, created.Post.Comments)

	got, err := svc.GetPost(created.Post.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Post.Title, got.Post.Title)
	assert.Equal(t, "Alice", got.Post.AuthorName)

	_, err = svc.GetPost(404)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdatePostAuthorOnly(t *testing.T) {
	svc, db := newForumService(t)
	author := seedUser(t, db, "Alice", model.RoleUser)
	other := seedUser(t, db, "Bob", model.RoleUser)

	created, err := svc.CreatePost(author, dto.CreatePostRequest{Title: "Original", Content: "Body"})
	require.NoError(t, err)
	id := created.Post.ID

	_, err = svc.UpdatePost(other, id, dto.UpdatePostRequest{Title: "Hijacked"})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	updated, err := svc.UpdatePost(author, id, dto.UpdatePostRequest{Title: "Edited"})
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Post.Title)
	// empty fields keep their value
	assert.Equal(t, "Body", updated.Post.Content)
}

func TestDeletePostAuthorOnly(t *testing.T) {
	svc, db := newForumService(t)
	author := seedUser(t, db, "Alice", model.RoleUser)
	other := seedUser(t, db, "Bob", model.RoleUser)

	created, err := svc.CreatePost(author, dto.CreatePostRequest{Title: "To delete", Content: "Body"})
	require.NoError(t, err)
	id := created.Post.ID

	assert.ErrorIs(t, svc.DeletePost(other, id), apperror.ErrForbidden)
	require.NoError(t, svc.DeletePost(author, id))
	_, err = svc.GetPost(id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddComment(t *testing.T) {
	svc, db := newForumService(t)
	author := seedUser(t, db, "Alice", model.RoleUser)
	commenter := seedUser(t, db, "Bob", model.RoleUser)

	created, err := svc.CreatePost(author, dto.CreatePostRequest{Title: "Question", Content: "Body"})
	require.NoError(t, err)

	resp, err := svc.AddComment(commenter, created.Post.ID, dto.AddCommentRequest{Content: "Try mock interviews."})
	require.NoError(t, err)
	require.Len(t, resp.Post.Comments, 1)
	assert.Equal(t, commenter.ID, resp.Post.Comments[0].AuthorID)
	assert.Equal(t, "Bob", resp.Post.Comments[0].AuthorName)
	assert.Equal(t, "Try mock interviews.", resp.Post.Comments[0].Content)

	_, err = svc.AddComment(commenter, 404, dto.AddCommentRequest{Content: "lost"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLikePost(t *testing.T) {
	svc, db := newForumService(t)
	author := seedUser(t, db, "Alice", model.RoleUser)

	created, err := svc.CreatePost(author, dto.CreatePostRequest{Title: "Likeable", Content: "Body"})
	require.NoError(t, err)
	id := created.Post.ID

	resp, err := svc.LikePost(id)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Likes)

	// likes are a plain counter, repeat likes stack
	resp, err = svc.LikePost(id)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Likes)

	_, err = svc.LikePost(404)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

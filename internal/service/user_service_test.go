package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/preptalk/preptalk/internal/apperror"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// stubBlobs records the last Save call and returns a canned path.
type stubBlobs struct {
	path string
	err  error
	kind string
}

func (s *stubBlobs) Save(_ context.Context, kind string, _ io.Reader, _ int64, _, _ string) (string, error) {
	s.kind = kind
	return s.path, s.err
}

func newUserService(t *testing.T, blobs *stubBlobs) (UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(repository.NewUserRepository(db), blobs), db
}

func TestGetProfile(t *testing.T) {
	svc, db := newUserService(t, &stubBlobs{})
	user := seedUser(t, db, "Alice", model.RoleUser)

	resp, err := svc.GetProfile(user)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, user.Email, resp.User.Email)
	// skills serialize as an empty list, never null
	assert.NotNil(t, resp.User.Skills)
}

func TestUpdateProfile(t *testing.T) {
	svc, db := newUserService(t, &stubBlobs{})
	user := seedUser(t, db, "Alice", model.RoleUser)

	years := 4
	resp, err := svc.UpdateProfile(user, dto.UpdateProfileRequest{
		JobRole:    "Backend Engineer",
		Experience: &years,
		Skills:     []string{"go", "postgres"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", resp.User.JobRole)
	assert.Equal(t, 4, resp.User.Experience)
	assert.Equal(t, []string{"go", "postgres"}, resp.User.Skills)
	// untouched fields keep their value
	assert.Equal(t, "Alice", resp.User.Name)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "Backend Engineer", stored.JobRole)
}

func TestUpdateProfilePassword(t *testing.T) {
	svc, db := newUserService(t, &stubBlobs{})
	user := seedUser(t, db, "Alice", model.RoleUser)

	_, err := svc.UpdateProfile(user, dto.UpdateProfileRequest{Password: "new-secret"})
	require.NoError(t, err)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "new-secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("new-secret")))
}

func TestAttachResume(t *testing.T) {
	blobs := &stubBlobs{path: "resume/abc.pdf"}
	svc, db := newUserService(t, blobs)
	user := seedUser(t, db, "Alice", model.RoleUser)

	path, err := svc.AttachResume(context.Background(), user, strings.NewReader("%PDF-"), 5, "application/pdf", "cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "resume/abc.pdf", path)
	assert.Equal(t, "resume", blobs.kind)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "resume/abc.pdf", stored.Resume)
}

func TestAttachAvatarRejected(t *testing.T) {
	blobs := &stubBlobs{err: apperror.ErrUnsupportedMediaType}
	svc, db := newUserService(t, blobs)
	user := seedUser(t, db, "Alice", model.RoleUser)

	_, err := svc.AttachAvatar(context.Background(), user, strings.NewReader("nope"), 4, "application/zip", "x.zip")
	assert.ErrorIs(t, err, apperror.ErrUnsupportedMediaType)

	// a rejected upload leaves the stored record alone
	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Empty(t, stored.ProfilePicture)
}

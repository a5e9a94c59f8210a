package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/preptalk/preptalk/config"
	"github.com/preptalk/preptalk/internal/apperror"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{JWT: config.JWT{Secret: "test-secret", ExpiryDay: 1}}
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(dto.RegisterRequest{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.True(t, registered.Success)
	assert.Equal(t, "alice@example.com", registered.User.Email)
	assert.Equal(t, model.RoleUser, registered.User.Role)
	assert.NotEmpty(t, registered.Token)

	// the issued token resolves back to the same user
	principal, err := svc.ResolvePrincipal(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, principal.ID)

	loggedIn, err := svc.Login(dto.LoginRequest{Email: "ALICE@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterRequest{Name: "Imposter", Email: "ALICE@example.com", Password: "different"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateEmail)
}

func TestRegisterExplicitRole(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(dto.RegisterRequest{
		Name:     "Rita",
		Email:    "rita@example.com",
		Password: "hunter22",
		Role:     model.RoleRecruiter,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleRecruiter, resp.User.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, unknownErr, apperror.ErrUnauthorized)

	_, badPassErr := svc.Login(dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, badPassErr, apperror.ErrUnauthorized)

	// unknown email and wrong password are indistinguishable to the caller
	assert.Equal(t, unknownErr.Error(), badPassErr.Error())
}

func TestResolvePrincipalRejectsBadTokens(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.ResolvePrincipal("not-a-token")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)
	_, err = svc.ResolvePrincipal(forged)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.ResolvePrincipal(expired)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestResolvePrincipalDeletedUser(t *testing.T) {
	svc := newAuthService(t)

	// valid signature but the subject no longer exists
	ghost, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 9999,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ResolvePrincipal(ghost)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

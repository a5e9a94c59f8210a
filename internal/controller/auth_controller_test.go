package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/preptalk/preptalk/config"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/middleware"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/preptalk/preptalk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthRouter wires real services over an in-memory database, the same
// shape the fx graph builds in production.
func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	cfg := &config.Config{JWT: config.JWT{Secret: "test-secret", ExpiryDay: 1}}
	authService := service.NewAuthService(repository.NewUserRepository(db), cfg)
	authController := NewAuthController(authService)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)
	api.GET("/whoami", middleware.RequireAuth(authService), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"id": middleware.Principal(ctx).ID})
	})
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router := newAuthRouter(t)

	rec := postJSON(t, router, "/api/auth/register", dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
	// the credential hash never leaks through the envelope
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterEndpointValidation(t *testing.T) {
	router := newAuthRouter(t)

	// binding rejects a short password before the service runs
	rec := postJSON(t, router, "/api/auth/register", dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "abc",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, router, "/api/auth/register", dto.RegisterRequest{
		Name: "Alice", Email: "not-an-email", Password: "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	router := newAuthRouter(t)

	payload := dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/auth/register", payload).Code)

	rec := postJSON(t, router, "/api/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "already registered")
}

func TestLoginEndpoint(t *testing.T) {
	router := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/auth/register", dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "hunter22",
	}).Code)

	rec := postJSON(t, router, "/api/auth/login", dto.LoginRequest{
		Email: "alice@example.com", Password: "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// the issued token opens protected routes
	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	authed := httptest.NewRecorder()
	router.ServeHTTP(authed, req)
	assert.Equal(t, http.StatusOK, authed.Code)

	bad := postJSON(t, router, "/api/auth/login", dto.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
}

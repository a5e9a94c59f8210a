package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/preptalk/preptalk/config"
	"github.com/preptalk/preptalk/internal/apperror"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	ResolvePrincipal(token string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrDuplicateEmail, email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("email", email).Msg("Register: email lookup failed")
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	user := model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Success: true,
		User:    dto.UserView{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
		Token:   token,
	}, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and bad password return the same error so callers
	// cannot enumerate accounts.
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperror.ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid email or password", apperror.ErrUnauthorized)
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Success: true,
		User:    dto.UserView{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
		Token:   token,
	}, nil
}

// ResolvePrincipal verifies the token's signature and expiry and loads the
// referenced user. Pure read path, used as a precondition by every
// protected operation.
func (s *authService) ResolvePrincipal(tokenString string) (*model.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid or expired token", apperror.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: malformed token claims", apperror.ErrUnauthorized)
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: malformed token subject", apperror.ErrUnauthorized)
	}

	user, err := s.userRepo.FindByID(uint(sub))
	if err != nil {
		return nil, fmt.Errorf("%w: user no longer exists", apperror.ErrUnauthorized)
	}
	return user, nil
}

func (s *authService) signToken(userID uint) (string, error) {
	expiryDays := s.cfg.JWT.ExpiryDay
	if expiryDays <= 0 {
		expiryDays = 30
	}
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Duration(expiryDays) * 24 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

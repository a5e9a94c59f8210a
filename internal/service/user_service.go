package service

import (
	"context"
	"fmt"
	"io"

	"github.com/jinzhu/copier"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/repository"
	"github.com/preptalk/preptalk/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	GetProfile(principal *model.User) (*dto.ProfileResponse, error)
	UpdateProfile(principal *model.User, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	AttachResume(ctx context.Context, principal *model.User, r io.Reader, size int64, mime, name string) (string, error)
	AttachAvatar(ctx context.Context, principal *model.User, r io.Reader, size int64, mime, name string) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	blobs    storage.BlobStore
}

func NewUserService(userRepo repository.UserRepository, blobs storage.BlobStore) UserService {
	return &userService{userRepo: userRepo, blobs: blobs}
}

func (s *userService) GetProfile(principal *model.User) (*dto.ProfileResponse, error) {
	return profileResponse(principal)
}

func (s *userService) UpdateProfile(principal *model.User, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if req.Name != "" {
		principal.Name = req.Name
	}
	if req.JobRole != "" {
		principal.JobRole = req.JobRole
	}
	if req.Experience != nil {
		principal.Experience = *req.Experience
	}
	if req.Skills != nil {
		principal.Skills = req.Skills
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		principal.Password = string(hash)
	}

	if err := s.userRepo.Update(principal); err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("UpdateProfile: failed to save user")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profileResponse(principal)
}

// AttachResume stores the uploaded document and records its path on the user.
func (s *userService) AttachResume(ctx context.Context, principal *model.User, r io.Reader, size int64, mime, name string) (string, error) {
	path, err := s.blobs.Save(ctx, storage.KindResume, r, size, mime, name)
	if err != nil {
		return "", err
	}
	principal.Resume = path
	if err := s.userRepo.Update(principal); err != nil {
		return "", fmt.Errorf("failed to attach resume: %w", err)
	}
	return path, nil
}

// AttachAvatar stores the uploaded image and records its path on the user.
func (s *userService) AttachAvatar(ctx context.Context, principal *model.User, r io.Reader, size int64, mime, name string) (string, error) {
	path, err := s.blobs.Save(ctx, storage.KindImage, r, size, mime, name)
	if err != nil {
		return "", err
	}
	principal.ProfilePicture = path
	if err := s.userRepo.Update(principal); err != nil {
		return "", fmt.Errorf("failed to attach profile picture: %w", err)
	}
	return path, nil
}

func profileResponse(user *model.User) (*dto.ProfileResponse, error) {
	var view dto.ProfileView
	if err := copier.Copy(&view, user); err != nil {
		return nil, fmt.Errorf("error preparing profile response: %w", err)
	}
	if view.Skills == nil {
		view.Skills = []string{}
	}
	return &dto.ProfileResponse{Success: true, User: view}, nil
}

// Package auth
package auth

import (
	"context"
	"errors"
	"fmt"

	"marketx/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo   domain.UserRepository
	tokens domain.TokenManager
}

func NewService(repo domain.UserRepository, tokens domain.TokenManager) domain.AuthService {
	return &service{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) error {
	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashedPwd),
	}

	return s.repo.Create(ctx, user)
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &domain.AuthResponse{
		User:        user,
		AccessToken: token,
	}, nil
}

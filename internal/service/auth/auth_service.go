package auth

import (
	"context"
	"errors"
	"time"

	"flightdesk/internal/domain"
	"flightdesk/internal/repository"
	"flightdesk/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

type Service struct {
	users  repository.UserRepository
	tokens *TokenIssuer
	log    logger.Logger
}

func NewService(users repository.UserRepository, tokens *TokenIssuer, log logger.Logger) *Service {
	return &Service{users: users, tokens: tokens, log: log}
}

func (s *Service) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("failed to update last login", "user_id", user.ID, "error", err)
	} else {
		user.LastLogin = &now
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, AccessToken: token}, nil
}

var _ AuthUseCase = (*Service)(nil)

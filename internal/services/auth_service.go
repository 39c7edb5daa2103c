package services

import (
	"context"
	"strings"

	"moneymanager/internal/client"
	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/logger"
	"moneymanager/internal/models"
)

// authService handles login, registration and the stored session.
type authService struct {
	api     AuthAPI
	session SessionStore
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(api AuthAPI, session SessionStore) AuthServicer {
	return &authService{api: api, session: session}
}

// Login authenticates with the auth service and stores the returned token.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	result, err := s.api.Login(ctx, client.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return s.store(ctx, result)
}

// Register creates an account with the auth service and stores the token.
func (s *authService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username, email and password are required")
	}

	result, err := s.api.Register(ctx, client.Credentials{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return s.store(ctx, result)
}

func (s *authService) store(ctx context.Context, result *client.AuthResult) (*models.User, error) {
	user := result.User
	if err := s.session.Save(ctx, result.Token, &user); err != nil {
		return nil, err
	}
	logger.Get().Infow("session stored", "email", user.Email)
	return &user, nil
}

// Logout forgets the stored session.
func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// CurrentUser returns the stored profile.
func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.session.User(ctx)
}

// Authenticated returns nil when a usable token is stored.
func (s *authService) Authenticated(ctx context.Context) error {
	_, err := s.session.Token(ctx)
	return err
}

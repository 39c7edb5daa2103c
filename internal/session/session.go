package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"moneymanager/internal/clock"
	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/logger"
	"moneymanager/internal/models"
)

// Fixed storage keys.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Session is the explicit authentication context handed to every outbound
// call. It replaces any process-wide default header.
type Session struct {
	store Store
	clock clock.Clock
}

// New returns a Session over store.
func New(store Store, clk clock.Clock) *Session {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Session{store: store, clock: clk}
}

// Save stores the token and the user profile.
func (s *Session) Save(ctx context.Context, token string, user *models.User) error {
	if token == "" {
		return apperrors.WithMessage(apperrors.ErrUnauthorized, "no token received")
	}
	if err := s.store.Put(ctx, TokenKey, token); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if user == nil {
		return nil
	}
	data, err := json.Marshal(user)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.store.Put(ctx, UserKey, string(data)); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Token returns the stored token. A JWT whose exp claim has passed is
// removed and reported as unauthorized.
func (s *Session) Token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, TokenKey)
	if errors.Is(err, ErrNotFound) || token == "" {
		return "", apperrors.ErrUnauthorized
	}
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if exp, ok := expiry(token); ok && !s.clock.Now().Before(exp) {
		logger.Get().Infow("stored token expired", "expired_at", exp)
		if err := s.Clear(ctx); err != nil {
			return "", err
		}
		return "", apperrors.WithMessage(apperrors.ErrUnauthorized, "Session expired, please log in again")
	}
	return token, nil
}

// User returns the stored profile.
func (s *Session) User(ctx context.Context) (*models.User, error) {
	if _, err := s.Token(ctx); err != nil {
		return nil, err
	}
	raw, err := s.store.Get(ctx, UserKey)
	if errors.Is(err, ErrNotFound) {
		return &models.User{}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// Clear forgets the token and profile.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, TokenKey, UserKey); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Sign sets the Authorization header on req. It satisfies client.Signer.
func (s *Session) Sign(ctx context.Context, req *http.Request) error {
	token, err := s.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// expiry reads the exp claim of a JWT without verifying its signature; the
// signing key belongs to the auth service. Opaque tokens report ok=false.
func expiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

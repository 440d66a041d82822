package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"nextsite-backend/pkg/auth"
	apperrors "nextsite-backend/pkg/errors"
)

// AuthService implements the portal's single-password login.
type AuthService struct {
	portalPassword string
	sessions       *auth.SessionManager
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(portalPassword string, sessions *auth.SessionManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		portalPassword: portalPassword,
		sessions:       sessions,
		logger:         logger,
	}
}

// Login verifies the portal password and mints a session token.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if s.portalPassword == "" {
		return "", apperrors.NewUnavailableError("portal login")
	}
	if !auth.ConstantTimeEquals(password, s.portalPassword) {
		s.logger.Warn("portal login rejected")
		return "", apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.sessions.Issue(time.Now())
	if err != nil {
		return "", apperrors.NewInternalError("session issuing failed").WithCause(err)
	}

	s.logger.Info("portal login accepted")
	return token, nil
}

// VerifySession checks a presented session token.
func (s *AuthService) VerifySession(token string) error {
	if err := s.sessions.Verify(token); err != nil {
		return apperrors.NewUnauthorizedError("invalid session")
	}
	return nil
}

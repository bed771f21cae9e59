package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bierecode/backend/internal/model"
	"github.com/bierecode/backend/internal/repository"
	"github.com/bierecode/backend/pkg/auth"
)

// SessionService manages DB-backed login sessions. Implements
// auth.SessionResolver.
type SessionService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
}

// NewSessionService creates a SessionService.
func NewSessionService(sessionRepo repository.SessionRepository, userRepo repository.UserRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo, userRepo: userRepo}
}

// CreateSession generates a new opaque token, stores it, and returns
// the session. ipAddress comes from the normalized forwarded-for header.
func (s *SessionService) CreateSession(ctx context.Context, userID, ipAddress, userAgent string) (*model.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &model.Session{
		Token:     token,
		UserID:    userID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: now,
		ExpiresAt: now.Add(auth.SessionDuration),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	slog.Debug("session created", "user_id", userID, "expires_at", session.ExpiresAt)
	return session, nil
}

// ResolveSession validates a token and returns the acting user's id and
// role. Expired sessions are deleted on sight. Implements
// auth.SessionResolver.
func (s *SessionService) ResolveSession(ctx context.Context, token string) (string, string, error) {
	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		return "", "", errors.New("invalid session")
	}
	if session.Expired(time.Now()) {
		_ = s.sessionRepo.DeleteByToken(ctx, token)
		return "", "", errors.New("session expired")
	}
	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return "", "", err
	}
	return user.ID, user.RoleOrDefault(), nil
}

// DeleteSession removes a session (logout).
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	return s.sessionRepo.DeleteByToken(ctx, token)
}

// DeleteAllSessions removes every session for a user (forced logout).
func (s *SessionService) DeleteAllSessions(ctx context.Context, userID string) error {
	return s.sessionRepo.DeleteByUserID(ctx, userID)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/bierecode/backend/internal/model"
	"github.com/bierecode/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock SessionRepository
// ---------------------------------------------------------------------------

type mockSessionRepo struct {
	createFunc         func(ctx context.Context, s *model.Session) error
	findByTokenFunc    func(ctx context.Context, token string) (*model.Session, error)
	deleteByTokenFunc  func(ctx context.Context, token string) error
	deleteByUserIDFunc func(ctx context.Context, userID string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, s *model.Session) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}
func (m *mockSessionRepo) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	if m.findByTokenFunc != nil {
		return m.findByTokenFunc(ctx, token)
	}
	return nil, repository.ErrNotFound
}
func (m *mockSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	if m.deleteByTokenFunc != nil {
		return m.deleteByTokenFunc(ctx, token)
	}
	return nil
}
func (m *mockSessionRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if m.deleteByUserIDFunc != nil {
		return m.deleteByUserIDFunc(ctx, userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CreateSession
// ---------------------------------------------------------------------------

func TestSessionService_CreateSession(t *testing.T) {
	var stored *model.Session
	sessions := &mockSessionRepo{
		createFunc: func(ctx context.Context, s *model.Session) error {
			stored = s
			return nil
		},
	}
	svc := NewSessionService(sessions, &mockUserRepo{})

	session, err := svc.CreateSession(context.Background(), "u1", "203.0.113.9", "curl/8.0")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if session.Token == "" {
		t.Error("expected a token")
	}
	if stored == nil || stored.Token != session.Token {
		t.Error("expected session to be persisted")
	}
	if stored.IPAddress != "203.0.113.9" || stored.UserAgent != "curl/8.0" {
		t.Errorf("expected request metadata to be captured, got %+v", stored)
	}
	if !stored.ExpiresAt.After(time.Now().Add(6 * 24 * time.Hour)) {
		t.Errorf("expected roughly 7 day expiry, got %v", stored.ExpiresAt)
	}
}

func TestSessionService_CreateSession_UniqueTokens(t *testing.T) {
	svc := NewSessionService(&mockSessionRepo{}, &mockUserRepo{})

	a, err := svc.CreateSession(context.Background(), "u1", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := svc.CreateSession(context.Background(), "u1", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Token == b.Token {
		t.Error("expected distinct tokens")
	}
}

// ---------------------------------------------------------------------------
// ResolveSession
// ---------------------------------------------------------------------------

func TestSessionService_ResolveSession_Valid(t *testing.T) {
	sessions := &mockSessionRepo{
		findByTokenFunc: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{Token: token, UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	users := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Role: "manager"}, nil
		},
	}
	svc := NewSessionService(sessions, users)

	userID, role, err := svc.ResolveSession(context.Background(), "tok")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if userID != "u1" || role != "manager" {
		t.Errorf("expected u1/manager, got %s/%s", userID, role)
	}
}

func TestSessionService_ResolveSession_DefaultRole(t *testing.T) {
	sessions := &mockSessionRepo{
		findByTokenFunc: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{Token: token, UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	users := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
	}
	svc := NewSessionService(sessions, users)

	_, role, err := svc.ResolveSession(context.Background(), "tok")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if role != "user" {
		t.Errorf("expected default role user, got %q", role)
	}
}

func TestSessionService_ResolveSession_Expired(t *testing.T) {
	var deleted string
	sessions := &mockSessionRepo{
		findByTokenFunc: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{Token: token, UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute)}, nil
		},
		deleteByTokenFunc: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	svc := NewSessionService(sessions, &mockUserRepo{})

	if _, _, err := svc.ResolveSession(context.Background(), "stale"); err == nil {
		t.Error("expected error for expired session")
	}
	if deleted != "stale" {
		t.Errorf("expected expired session to be deleted, got %q", deleted)
	}
}

func TestSessionService_ResolveSession_UnknownToken(t *testing.T) {
	svc := NewSessionService(&mockSessionRepo{}, &mockUserRepo{})

	if _, _, err := svc.ResolveSession(context.Background(), "nope"); err == nil {
		t.Error("expected error for unknown token")
	}
}

package repository

import (
	"context"

	"github.com/bierecode/backend/internal/model"
)

// DB reports liveness of the relational store.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	// List returns every account ordered by creation time ascending.
	List(ctx context.Context) ([]*model.User, error)
	// UpdateRole assigns a role and refreshes updated_at. An empty role
	// is stored as NULL. Returns the updated account.
	UpdateRole(ctx context.Context, id, role string) (*model.User, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// UpdateRepository abstracts the key-value store holding update records
// under the `update:` prefix. Get-then-put sequences are not atomic:
// concurrent edits to the same id race and the later write wins.
type UpdateRepository interface {
	Get(ctx context.Context, id string) (*model.Update, error)
	Put(ctx context.Context, u *model.Update) error
	Delete(ctx context.Context, id string) error
	// List scans every key under the prefix. Order is unspecified.
	List(ctx context.Context) ([]*model.Update, error)
}

// DemoRepository holds demo-day submissions under the `demo:` prefix.
// Append-only: no delete.
type DemoRepository interface {
	Put(ctx context.Context, d *model.DemoSubmission) error
	List(ctx context.Context) ([]*model.DemoSubmission, error)
}

package service

import (
	"context"
	"sort"
	"time"

	"github.com/bierecode/backend/internal/model"
	"github.com/bierecode/backend/internal/repository"
	"github.com/google/uuid"
)

// DemoService handles demo-days pitch submissions. Submissions are
// append-only; no caller may amend or delete one.
type DemoService interface {
	// Create assigns id and created and persists the submission.
	Create(ctx context.Context, d *model.DemoSubmission) error
	// List returns all submissions ordered by created descending.
	List(ctx context.Context) ([]*model.DemoSubmission, error)
}

type demoService struct {
	repo repository.DemoRepository
}

// NewDemoService creates a DemoService.
func NewDemoService(repo repository.DemoRepository) DemoService {
	return &demoService{repo: repo}
}

func (s *demoService) Create(ctx context.Context, d *model.DemoSubmission) error {
	d.ID = uuid.NewString()
	d.Created = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Put(ctx, d)
}

func (s *demoService) List(ctx context.Context) ([]*model.DemoSubmission, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedTime().After(subs[j].CreatedTime())
	})
	return subs, nil
}

package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bierecode/backend/internal/model"
	"github.com/bierecode/backend/internal/repository"
	"github.com/google/uuid"
)

// UpdateFilter narrows a listing. Zero-value fields match everything.
type UpdateFilter struct {
	Language string
	Type     string
	Tag      string
}

// UpdateService is the business logic for community update records.
type UpdateService interface {
	// List returns matching records ordered by created descending.
	List(ctx context.Context, filter UpdateFilter) ([]*model.Update, error)
	GetByID(ctx context.Context, id string) (*model.Update, error)
	// Create assigns id and created, normalizes tags and event, and
	// persists the record.
	Create(ctx context.Context, u *model.Update) error
	// Save re-normalizes a merged record, stamps updated, and persists
	// it. The caller is responsible for the merge itself.
	Save(ctx context.Context, u *model.Update) error
	// Delete removes a record, reading it first so an absent id is
	// reported as repository.ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type updateService struct {
	repo repository.UpdateRepository
}

// NewUpdateService creates an UpdateService.
func NewUpdateService(repo repository.UpdateRepository) UpdateService {
	return &updateService{repo: repo}
}

func (s *updateService) List(ctx context.Context, filter UpdateFilter) ([]*model.Update, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := []*model.Update{}
	for _, u := range all {
		if filter.Language != "" && u.Language != filter.Language {
			continue
		}
		if filter.Type != "" && u.Type != filter.Type {
			continue
		}
		if filter.Tag != "" && !containsTag(u.Tags, filter.Tag) {
			continue
		}
		matched = append(matched, u)
	}

	// Newest first. Records with an unparseable created timestamp get
	// time zero and sort as oldest.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedTime().After(matched[j].CreatedTime())
	})
	return matched, nil
}

func (s *updateService) GetByID(ctx context.Context, id string) (*model.Update, error) {
	return s.repo.Get(ctx, id)
}

func (s *updateService) Create(ctx context.Context, u *model.Update) error {
	u.ID = uuid.NewString()
	u.Created = time.Now().UTC().Format(time.RFC3339)
	u.Updated = ""
	normalizeUpdate(u)
	return s.repo.Put(ctx, u)
}

func (s *updateService) Save(ctx context.Context, u *model.Update) error {
	u.Updated = time.Now().UTC().Format(time.RFC3339)
	normalizeUpdate(u)
	return s.repo.Put(ctx, u)
}

func (s *updateService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// normalizeUpdate applies the storage invariants: tags are trimmed,
// deduplicated and never nil; the event object is dropped entirely when
// the record is not an event or when every event field is empty.
func normalizeUpdate(u *model.Update) {
	u.Tags = normalizeTags(u.Tags)
	if u.Type != model.UpdateTypeEvent || u.Event.IsEmpty() {
		u.Event = nil
	}
}

func normalizeTags(tags []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

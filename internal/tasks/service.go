package tasks

import (
	"context"

	"github.com/taskhive/taskhive/internal/shared"
)

// RepositoryPort defines data access methods for tasks.
type RepositoryPort interface {
	Insert(ctx context.Context, task Task) (Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Task, error)
	Get(ctx context.Context, id string) (*Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, id string) error
}

// Service handles task business logic: ownership enforcement and the
// default status. The cache may be nil.
type Service struct {
	repo  RepositoryPort
	cache *ListCache
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, cache *ListCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Create persists a new task owned by ownerID. Status defaults to
// "pending" when the caller omits it.
func (s *Service) Create(ctx context.Context, ownerID string, input CreateInput) (Task, error) {
	status := input.Status
	if status == "" {
		status = StatusPending
	}
	task, err := s.repo.Insert(ctx, Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		OwnerID:     ownerID,
	})
	if err != nil {
		return Task{}, err
	}
	s.cache.Invalidate(ctx, ownerID)
	return task, nil
}

// List returns all tasks owned by ownerID; an empty slice when none exist.
func (s *Service) List(ctx context.Context, ownerID string) ([]Task, error) {
	if cached, ok := s.cache.Get(ctx, ownerID); ok {
		return cached, nil
	}
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, ownerID, tasks)
	return tasks, nil
}

// Get fetches a single task. Reads are owner-scoped: a task owned by
// another user is reported as not found so identifiers cannot be probed.
func (s *Service) Get(ctx context.Context, id, callerID string) (Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if task.OwnerID != callerID {
		return Task{}, shared.ErrNotFound
	}
	return *task, nil
}

// Update applies the set fields of patch to a task owned by callerID.
func (s *Service) Update(ctx context.Context, id, callerID string, patch Patch) (Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if task.OwnerID != callerID {
		return Task{}, shared.ErrNotOwner
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	updated, err := s.repo.Update(ctx, *task)
	if err != nil {
		return Task{}, err
	}
	s.cache.Invalidate(ctx, callerID)
	return updated, nil
}

// Delete removes a task owned by callerID.
func (s *Service) Delete(ctx context.Context, id, callerID string) error {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if task.OwnerID != callerID {
		return shared.ErrNotOwner
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, callerID)
	return nil
}

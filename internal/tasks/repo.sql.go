package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/taskhive/internal/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert persists a new task. The identifier is assigned here.
func (r *Repository) Insert(ctx context.Context, task Task) (Task, error) {
	task.ID = uuid.NewString()
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tasks (id, title, description, status, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		task.ID, task.Title, task.Description, task.Status, task.OwnerID, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return Task{}, err
	}
	return task, nil
}

// ListByOwner returns all tasks owned by ownerID in insertion order.
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, status, owner_id, created_at, updated_at
		 FROM tasks WHERE owner_id = $1 ORDER BY created_at`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Status,
			&task.OwnerID, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get fetches a task by identifier.
func (r *Repository) Get(ctx context.Context, id string) (*Task, error) {
	var task Task
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, status, owner_id, created_at, updated_at
		 FROM tasks WHERE id = $1`,
		id,
	).Scan(&task.ID, &task.Title, &task.Description, &task.Status,
		&task.OwnerID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Update overwrites the mutable fields of a task.
func (r *Repository) Update(ctx context.Context, task Task) (Task, error) {
	task.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx,
		`UPDATE tasks SET title = $2, description = $3, status = $4, updated_at = $5 WHERE id = $1`,
		task.ID, task.Title, task.Description, task.Status, task.UpdatedAt,
	)
	if err != nil {
		return Task{}, err
	}
	if tag.RowsAffected() == 0 {
		return Task{}, shared.ErrNotFound
	}
	return task, nil
}

// Delete removes a task by identifier.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ RepositoryPort = (*Repository)(nil)

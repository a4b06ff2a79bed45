package tasks

import "time"

// StatusPending is the status assigned to tasks created without one.
// Status is otherwise a free-form string; no transition graph is enforced.
const StatusPending = "pending"

// Task represents a task record owned by exactly one user. The owner is
// set at creation and never reassigned.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateInput carries the caller-supplied fields for a new task.
type CreateInput struct {
	Title       string
	Description string
	Status      string
}

// Patch enumerates the mutable fields of a task. Nil pointers leave the
// stored value untouched; anything else the caller sends is ignored.
type Patch struct {
	Title       *string
	Description *string
	Status      *string
}

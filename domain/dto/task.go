package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssignTaskRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"required,max=1000"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	Priority    string    `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	AssignedTo  string    `json:"assignedTo" validate:"required,uuid"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Pending' 'In Progress' 'Completed'"`
}

// UpdateTaskRequest carries a partial update. Absent (zero) fields leave the
// stored value untouched, so an explicit empty string cannot clear a field.
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"omitempty,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	AssignedTo  string     `json:"assignedTo" validate:"omitempty,uuid"`
}

type TaskResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DueDate     time.Time        `json:"dueDate"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	AssignedTo  uuid.UUID        `json:"assignedTo"`
	AssignedBy  uuid.UUID        `json:"assignedBy"`
	Assignee    *IdentitySummary `json:"assignee,omitempty"`
	Assigner    *IdentitySummary `json:"assigner,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// IdentitySummary is the populated name/email view of a task reference.
type IdentitySummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

package services

import (
	"context"

	"github.com/google/uuid"

	"taskassign/domain/dto"
	"taskassign/domain/models"
)

// TaskService owns task entities and their transitions.
type TaskService interface {
	// AssignTask creates a task after verifying that both the assigning admin
	// and the target user exist. No write happens on either miss.
	AssignTask(ctx context.Context, adminID uuid.UUID, req *dto.AssignTaskRequest) (*models.Task, error)
	GetUserTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string) error
	UpdateTaskFields(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}
